// Package cli parses the command line and runs one command per invocation.
package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"

	"todo/internal/commands"
	"todo/internal/config"
	"todo/internal/exitcode"
	"todo/internal/logging"
	"todo/internal/service"
	"todo/internal/storage"
)

// ServiceFactory creates the remote Service from config.
// Used to inject the backend during dispatch.
type ServiceFactory func(ctx context.Context, cfg *config.Config) (service.Service, error)

// Dispatcher handles command-line parsing and dispatch.
type Dispatcher struct {
	registry *commands.Registry
	factory  ServiceFactory
}

// NewDispatcher creates a new dispatcher with the given registry and service factory.
func NewDispatcher(registry *commands.Registry, factory ServiceFactory) *Dispatcher {
	return &Dispatcher{
		registry: registry,
		factory:  factory,
	}
}

// Run parses arguments and dispatches to the appropriate command.
// Returns the exit code.
func (d *Dispatcher) Run(ctx context.Context, args []string, out, errOut io.Writer) int {
	if len(args) == 0 {
		fmt.Fprintln(errOut, commands.UsageHint)
		return exitcode.UserError
	}

	cmdName := args[0]

	// Flags require a command in front of them.
	if strings.HasPrefix(cmdName, "-") {
		fmt.Fprintf(errOut, "error: unknown command: %s\n", cmdName)
		return exitcode.UserError
	}

	cmd, ok := d.registry.Find(cmdName)
	if !ok {
		fmt.Fprintf(errOut, "error: unknown command: %s\n", cmdName)
		if suggestion, ok := d.registry.Suggest(cmdName); ok {
			fmt.Fprintf(errOut, "did you mean %q?\n", suggestion)
		}
		return exitcode.UserError
	}

	return d.dispatchCommand(ctx, cmd, args[1:], out, errOut)
}

func (d *Dispatcher) dispatchCommand(ctx context.Context, cmd commands.Command, args []string, out, errOut io.Writer) int {
	fs := flag.NewFlagSet(cmd.Name(), flag.ContinueOnError)
	fs.SetOutput(io.Discard) // We handle errors ourselves

	// Common flags
	var configDir string
	var dataFile string
	var quiet bool
	var debug bool

	fs.StringVar(&configDir, "config", "", "")
	fs.StringVar(&dataFile, "file", "", "")
	fs.BoolVar(&quiet, "quiet", false, "")
	fs.BoolVar(&debug, "debug", false, "")

	cmd.RegisterFlags(fs)

	if err := fs.Parse(operandArgs(fs, args)); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fmt.Fprintf(out, "usage: %s\n", cmd.Usage())
			return exitcode.Success
		}
		fmt.Fprintf(errOut, "error: %s\n", flagErrorMessage(err))
		return exitcode.UserError
	}

	positionalArgs := fs.Args()

	cfg, err := config.Load(configDir)
	if err != nil {
		fmt.Fprintf(errOut, "error: %s\n", err)
		return exitcode.AuthError
	}
	if dataFile != "" {
		cfg.SetDataFile(dataFile)
	}
	cfg.Quiet = quiet
	cfg.Debug = debug

	logger := logging.New(errOut, logging.OptionsFromConfig(cfg))
	logger.Debug("dispatch", "command", cmd.Name(), "args", positionalArgs)

	env := &commands.Env{Config: cfg, Logger: logger}

	if cmd.NeedsRemote() {
		svc, code := d.remote(ctx, cfg, errOut)
		if svc == nil {
			return code
		}
		env.Remote = svc
	}

	if !cmd.NeedsStore() {
		return cmd.Run(ctx, env, positionalArgs, out, errOut)
	}

	file := storage.NewFile(cfg.DataFile, logger)
	env.Store = file.Load()

	code := cmd.Run(ctx, env, positionalArgs, out, errOut)

	// The store is saved even when the command rejected its input.
	if err := file.Save(env.Store); err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		if code == exitcode.Success {
			code = exitcode.StorageError
		}
	}
	return code
}

// remote builds the remote service, or reports why it could not.
func (d *Dispatcher) remote(ctx context.Context, cfg *config.Config, errOut io.Writer) (service.Service, int) {
	if d.factory == nil {
		fmt.Fprintln(errOut, "error: no remote backend configured")
		return nil, exitcode.AuthError
	}
	svc, err := d.factory(ctx, cfg)
	if err != nil {
		if errors.Is(err, service.ErrAuth) {
			fmt.Fprintf(errOut, "error: not logged in (run: todo login): %v\n", err)
			return nil, exitcode.AuthError
		}
		fmt.Fprintf(errOut, "error: backend error: %s\n", err)
		return nil, exitcode.BackendError
	}
	return svc, exitcode.Success
}

// operandArgs ends flag parsing before the first negative integer, so
// "del -3" reaches the command as an id instead of an unknown flag.
// Values of non-bool flags are skipped.
func operandArgs(fs *flag.FlagSet, args []string) []string {
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" || arg == "-" || !strings.HasPrefix(arg, "-") {
			return args
		}
		if _, err := strconv.Atoi(arg); err == nil {
			out := make([]string, 0, len(args)+1)
			out = append(out, args[:i]...)
			out = append(out, "--")
			return append(out, args[i:]...)
		}
		name := strings.TrimLeft(arg, "-")
		if strings.Contains(name, "=") {
			continue
		}
		if f := fs.Lookup(name); f != nil && !isBoolFlag(f) {
			i++
		}
	}
	return args
}

func isBoolFlag(f *flag.Flag) bool {
	b, ok := f.Value.(interface{ IsBoolFlag() bool })
	return ok && b.IsBoolFlag()
}

// flagErrorMessage rewrites flag package errors into the CLI's wording.
func flagErrorMessage(err error) string {
	errStr := err.Error()

	if name, ok := strings.CutPrefix(errStr, "flag provided but not defined: "); ok {
		return "unknown flag: " + name
	}
	return errStr
}

