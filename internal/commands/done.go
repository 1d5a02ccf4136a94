package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"todo/internal/exitcode"
	"todo/internal/task"
)

func init() {
	Register(&DoneCmd{})
	Register(&UndoCmd{})
}

// DoneCmd implements the done command.
type DoneCmd struct{}

func (c *DoneCmd) Name() string      { return "done" }
func (c *DoneCmd) Aliases() []string { return nil }
func (c *DoneCmd) Synopsis() string  { return "Mark tasks completed" }
func (c *DoneCmd) Usage() string     { return "todo done <id>..." }
func (c *DoneCmd) NeedsStore() bool  { return true }
func (c *DoneCmd) NeedsRemote() bool { return false }

func (c *DoneCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *DoneCmd) Run(ctx context.Context, env *Env, args []string, out, errOut io.Writer) int {
	return applyToIDs(env, "complete", (*task.Store).Complete, args, out, errOut)
}

// UndoCmd implements the undo command.
type UndoCmd struct{}

func (c *UndoCmd) Name() string      { return "undo" }
func (c *UndoCmd) Aliases() []string { return nil }
func (c *UndoCmd) Synopsis() string  { return "Mark tasks not completed" }
func (c *UndoCmd) Usage() string     { return "todo undo <id>..." }
func (c *UndoCmd) NeedsStore() bool  { return true }
func (c *UndoCmd) NeedsRemote() bool { return false }

func (c *UndoCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *UndoCmd) Run(ctx context.Context, env *Env, args []string, out, errOut io.Writer) int {
	return applyToIDs(env, "uncomplete", (*task.Store).Uncomplete, args, out, errOut)
}

// applyToIDs parses every id first, then applies op to each.
// Unknown ids are skipped silently apart from a debug log line.
func applyToIDs(env *Env, action string, op func(*task.Store, int) bool, args []string, out, errOut io.Writer) int {
	ids, err := ParseTaskIDs(args)
	if err != nil {
		if errors.Is(err, ErrTaskIDRequired) {
			fmt.Fprintln(errOut, "error: task id required")
		} else {
			fmt.Fprintf(errOut, "error: %v\n", err)
		}
		return exitcode.UserError
	}

	for _, id := range ids {
		if op(env.Store, id) {
			env.Logger.Debug(action, "id", id)
		} else {
			env.Logger.Debug("task not found", "action", action, "id", id)
		}
	}

	if !env.Config.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return exitcode.Success
}
