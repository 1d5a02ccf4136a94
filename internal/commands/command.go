// Package commands provides the command interface and implementations.
package commands

import (
	"context"
	"flag"
	"io"

	"github.com/charmbracelet/log"

	"todo/internal/config"
	"todo/internal/service"
	"todo/internal/task"
)

// Env is what a command runs against.
type Env struct {
	// Config is always set.
	Config *config.Config

	// Store is nil unless NeedsStore returns true.
	Store *task.Store

	// Remote is nil unless NeedsRemote returns true.
	Remote service.Service

	// Logger is always set.
	Logger *log.Logger
}

// Command defines the interface for CLI commands.
type Command interface {
	// Name returns the primary command name.
	Name() string

	// Aliases returns alternative names for the command.
	Aliases() []string

	// Synopsis returns a short description for help output.
	Synopsis() string

	// Usage returns the usage string for help output.
	Usage() string

	// NeedsStore returns true if the command works on the task file.
	// The dispatcher loads the store before Run and saves it afterwards.
	NeedsStore() bool

	// NeedsRemote returns true if the command talks to Google Tasks.
	NeedsRemote() bool

	// RegisterFlags registers command-specific flags.
	RegisterFlags(fs *flag.FlagSet)

	// Run executes the command.
	// args contains positional arguments after flag parsing.
	// Returns exit code.
	Run(ctx context.Context, env *Env, args []string, out, errOut io.Writer) int
}
