package commands

import (
	"context"
	"flag"
	"io"

	"todo/internal/task"
)

func init() {
	Register(&DelCmd{})
}

// DelCmd implements the del command.
type DelCmd struct{}

func (c *DelCmd) Name() string      { return "del" }
func (c *DelCmd) Aliases() []string { return []string{"rm"} }
func (c *DelCmd) Synopsis() string  { return "Delete tasks" }
func (c *DelCmd) Usage() string     { return "todo del <id>..." }
func (c *DelCmd) NeedsStore() bool  { return true }
func (c *DelCmd) NeedsRemote() bool { return false }

func (c *DelCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *DelCmd) Run(ctx context.Context, env *Env, args []string, out, errOut io.Writer) int {
	return applyToIDs(env, "delete", (*task.Store).Delete, args, out, errOut)
}
