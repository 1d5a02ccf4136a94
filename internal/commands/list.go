package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"todo/internal/exitcode"
	"todo/internal/output"
)

func init() {
	Register(&ListCmd{})
}

// ListCmd implements the list command.
type ListCmd struct {
	plain   bool
	pending bool
}

// SetPlain selects plain line output (for testing).
func (c *ListCmd) SetPlain(plain bool) {
	c.plain = plain
}

// SetPending hides completed tasks (for testing).
func (c *ListCmd) SetPending(pending bool) {
	c.pending = pending
}

func (c *ListCmd) Name() string      { return "list" }
func (c *ListCmd) Aliases() []string { return []string{"ls"} }
func (c *ListCmd) Synopsis() string  { return "List tasks" }
func (c *ListCmd) Usage() string     { return "todo list [--plain] [--pending]" }
func (c *ListCmd) NeedsStore() bool  { return true }
func (c *ListCmd) NeedsRemote() bool { return false }

func (c *ListCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.BoolVar(&c.plain, "plain", false, "")
	fs.BoolVar(&c.pending, "pending", false, "")
}

func (c *ListCmd) Run(ctx context.Context, env *Env, args []string, out, errOut io.Writer) int {
	if len(args) > 0 {
		fmt.Fprintf(errOut, "error: unexpected argument: %s\n", args[0])
		return exitcode.UserError
	}

	all := env.Store.All()
	tasks := all
	if c.pending {
		tasks = output.Pending(all)
	}

	if c.plain {
		output.FormatPlain(out, tasks)
		return exitcode.Success
	}

	output.FormatTable(out, tasks)
	if !env.Config.Quiet && len(all) > 0 {
		fmt.Fprintln(out, output.Summary(all))
	}
	return exitcode.Success
}
