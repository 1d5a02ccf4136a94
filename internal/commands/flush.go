package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"todo/internal/exitcode"
)

func init() {
	Register(&FlushCmd{})
}

// FlushCmd implements the flush command.
type FlushCmd struct{}

func (c *FlushCmd) Name() string      { return "flush" }
func (c *FlushCmd) Aliases() []string { return nil }
func (c *FlushCmd) Synopsis() string  { return "Delete every task" }
func (c *FlushCmd) Usage() string     { return "todo flush" }
func (c *FlushCmd) NeedsStore() bool  { return true }
func (c *FlushCmd) NeedsRemote() bool { return false }

func (c *FlushCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *FlushCmd) Run(ctx context.Context, env *Env, args []string, out, errOut io.Writer) int {
	n := env.Store.Len()
	env.Store.Clear()
	env.Logger.Debug("flushed tasks", "count", n, "next_id", env.Store.NextID())

	if !env.Config.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return exitcode.Success
}
