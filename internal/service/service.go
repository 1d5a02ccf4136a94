// Package service defines the backend-agnostic interface for exporting
// tasks to a remote task service.
package service

import (
	"context"
	"errors"
)

var (
	// ErrNotFound is returned when a remote list does not exist.
	ErrNotFound = errors.New("not found")

	// ErrAmbiguous is returned when a list name matches more than one list.
	ErrAmbiguous = errors.New("ambiguous")

	// ErrAuth is returned when credentials are missing, expired or revoked.
	ErrAuth = errors.New("auth error")
)

// Service is the remote side of push.
// Commands never import the Google SDK directly.
type Service interface {
	// DefaultList returns the account's default task list.
	DefaultList(ctx context.Context) (TaskList, error)

	// ResolveList finds a list by name (case-insensitive, trimmed).
	// Returns ErrNotFound or ErrAmbiguous.
	ResolveList(ctx context.Context, name string) (TaskList, error)

	// CreateTask creates a task in the given list.
	CreateTask(ctx context.Context, listID string, task Task) error
}
