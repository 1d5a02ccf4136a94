// Package testutil provides testing utilities.
package testutil

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"todo/internal/service"
)

// DefaultListID is the ID used for the default list.
const DefaultListID = "@default"

// FakeService is an in-memory implementation of service.Service for testing.
type FakeService struct {
	mu    sync.RWMutex
	lists []service.TaskList
	tasks map[string][]service.Task // listID -> tasks

	// Error injection for testing
	DefaultListErr error
	ResolveListErr error
	CreateTaskErr  error

	// FailAfter makes CreateTask fail once this many tasks were created.
	// Zero disables it.
	FailAfter int
	created   int
}

// NewFakeService creates a new FakeService with a default list.
func NewFakeService() *FakeService {
	return &FakeService{
		lists: []service.TaskList{
			{ID: DefaultListID, Title: "My Tasks", IsDefault: true},
		},
		tasks: map[string][]service.Task{DefaultListID: nil},
	}
}

// AddList adds a list to the fake service.
func (f *FakeService) AddList(id, title string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lists = append(f.lists, service.TaskList{ID: id, Title: title})
	if _, ok := f.tasks[id]; !ok {
		f.tasks[id] = nil
	}
}

// Tasks returns a copy of the tasks created in a list.
func (f *FakeService) Tasks(listID string) []service.Task {
	f.mu.RLock()
	defer f.mu.RUnlock()
	out := make([]service.Task, len(f.tasks[listID]))
	copy(out, f.tasks[listID])
	return out
}

// DefaultList implements service.Service.
func (f *FakeService) DefaultList(ctx context.Context) (service.TaskList, error) {
	if f.DefaultListErr != nil {
		return service.TaskList{}, f.DefaultListErr
	}
	f.mu.RLock()
	defer f.mu.RUnlock()
	for _, l := range f.lists {
		if l.IsDefault {
			return l, nil
		}
	}
	return service.TaskList{}, fmt.Errorf("default list: %w", service.ErrNotFound)
}

// ResolveList implements service.Service.
func (f *FakeService) ResolveList(ctx context.Context, name string) (service.TaskList, error) {
	if f.ResolveListErr != nil {
		return service.TaskList{}, f.ResolveListErr
	}
	f.mu.RLock()
	defer f.mu.RUnlock()

	want := strings.ToLower(strings.TrimSpace(name))
	var matches []service.TaskList
	for _, l := range f.lists {
		if strings.ToLower(strings.TrimSpace(l.Title)) == want {
			matches = append(matches, l)
		}
	}

	switch len(matches) {
	case 0:
		return service.TaskList{}, service.ErrNotFound
	case 1:
		return matches[0], nil
	default:
		return service.TaskList{}, service.ErrAmbiguous
	}
}

// CreateTask implements service.Service.
func (f *FakeService) CreateTask(ctx context.Context, listID string, t service.Task) error {
	if f.CreateTaskErr != nil {
		return f.CreateTaskErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.FailAfter > 0 && f.created >= f.FailAfter {
		return fmt.Errorf("quota exceeded")
	}
	if _, ok := f.tasks[listID]; !ok {
		return service.ErrNotFound
	}
	f.tasks[listID] = append(f.tasks[listID], t)
	f.created++
	return nil
}
