package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type rmCmd struct {
	name string
}

func (*rmCmd) Name() string     { return "rm" }
func (*rmCmd) Synopsis() string { return "stop tracking an asset" }
func (*rmCmd) Usage() string {
	return `nw rm -name <asset>

  Removes the asset and its whole transaction ledger from the tracker.
`
}

func (p *rmCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.name, "name", "", "Asset display name.")
}

func (p *rmCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if p.name == "" {
		fmt.Fprintln(os.Stderr, "Error: -name is required.")
		return subcommands.ExitUsageError
	}

	store, closer, err := OpenStore(LoadConfig())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer closeStore(closer)

	asset, ok := store.FindByName(p.name)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: no asset named %q.\n", p.name)
		return subcommands.ExitFailure
	}
	if err := store.Remove(asset.ID); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Removed %q.\n", asset.Name)
	return subcommands.ExitSuccess
}
