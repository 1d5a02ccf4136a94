package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"todo/internal/exitcode"
	"todo/internal/service"
	"todo/internal/task"
)

func init() {
	Register(&PushCmd{})
}

// PushCmd copies local tasks into a Google Tasks list.
// The local store is read, never changed.
type PushCmd struct {
	listName string
	all      bool
}

// SetListName sets the target list name (for testing).
func (c *PushCmd) SetListName(name string) {
	c.listName = name
}

// SetAll includes completed tasks (for testing).
func (c *PushCmd) SetAll(all bool) {
	c.all = all
}

func (c *PushCmd) Name() string      { return "push" }
func (c *PushCmd) Aliases() []string { return nil }
func (c *PushCmd) Synopsis() string  { return "Copy tasks to Google Tasks" }
func (c *PushCmd) Usage() string     { return "todo push [--list <list-name>] [--all]" }
func (c *PushCmd) NeedsStore() bool  { return true }
func (c *PushCmd) NeedsRemote() bool { return true }

func (c *PushCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.listName, "list", "", "")
	fs.StringVar(&c.listName, "l", "", "")
	fs.BoolVar(&c.all, "all", false, "")
}

func (c *PushCmd) Run(ctx context.Context, env *Env, args []string, out, errOut io.Writer) int {
	if len(args) > 0 {
		fmt.Fprintf(errOut, "error: unexpected argument: %s\n", args[0])
		return exitcode.UserError
	}

	listName := strings.TrimSpace(c.listName)
	if listName == "" {
		listName = strings.TrimSpace(env.Config.GoogleList)
	}

	var list service.TaskList
	var err error
	if listName != "" {
		list, err = env.Remote.ResolveList(ctx, listName)
	} else {
		list, err = env.Remote.DefaultList(ctx)
	}
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			fmt.Fprintf(errOut, "error: list not found: %s\n", listName)
			return exitcode.UserError
		case errors.Is(err, service.ErrAmbiguous):
			fmt.Fprintf(errOut, "error: ambiguous list name: %s\n", listName)
			return exitcode.UserError
		}
		return backendFailure(errOut, err)
	}

	pushed := 0
	for _, t := range env.Store.All() {
		if t.Completed && !c.all {
			continue
		}
		if err := env.Remote.CreateTask(ctx, list.ID, remoteTask(t)); err != nil {
			fmt.Fprintf(errOut, "error: pushed %d tasks before failure\n", pushed)
			return backendFailure(errOut, err)
		}
		env.Logger.Debug("pushed task", "id", t.ID, "list", list.Title)
		pushed++
	}

	if !env.Config.Quiet {
		fmt.Fprintf(out, "pushed %d tasks to %s\n", pushed, list.Title)
	}
	return exitcode.Success
}

func remoteTask(t task.Task) service.Task {
	return service.Task{
		Title:     t.Description,
		Notes:     fmt.Sprintf("todo #%d", t.ID),
		Completed: t.Completed,
	}
}

// backendFailure reports a remote error and picks its exit code.
func backendFailure(errOut io.Writer, err error) int {
	if errors.Is(err, service.ErrAuth) {
		fmt.Fprintf(errOut, "error: auth error: %v\n", err)
		return exitcode.AuthError
	}
	fmt.Fprintf(errOut, "error: backend error: %v\n", err)
	return exitcode.BackendError
}
