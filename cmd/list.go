package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/networth/renderer"
	"github.com/google/subcommands"
)

type listCmd struct{}

func (*listCmd) Name() string     { return "list" }
func (*listCmd) Synopsis() string { return "list tracked assets grouped by category" }
func (*listCmd) Usage() string {
	return `nw list

  Lists every tracked asset grouped by primary category, with per-category
  and grand totals.
`
}

func (*listCmd) SetFlags(f *flag.FlagSet) {}

func (p *listCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg := LoadConfig()
	store, closer, err := OpenStore(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer closeStore(closer)

	printMarkdown(renderer.ListMarkdown(store.Assets(), cfg.Currency))
	return subcommands.ExitSuccess
}
