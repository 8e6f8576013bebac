package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

type balanceCmd struct {
	name   string
	amount string
}

func (*balanceCmd) Name() string     { return "balance" }
func (*balanceCmd) Synopsis() string { return "overwrite an asset's balance directly" }
func (*balanceCmd) Usage() string {
	return `nw balance -name <asset> -amount <amount>

  Overwrites the asset's balance without recording a transaction. The ledger
  history is left as-is, so reconstructed history will not account for this
  change; prefer 'nw tx -delta' when the change should be auditable.
`
}

func (p *balanceCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.name, "name", "", "Asset display name.")
	f.StringVar(&p.amount, "amount", "", "New balance.")
}

func (p *balanceCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if p.name == "" || p.amount == "" {
		fmt.Fprintln(os.Stderr, "Error: -name and -amount are required.")
		return subcommands.ExitUsageError
	}
	amount, err := decimal.NewFromString(p.amount)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing amount: %v\n", err)
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
	if err := store.SetBalance(asset.ID, amount); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	refreshed, _ := store.Find(asset.ID)
	fmt.Printf("Balance of %q set to %s.\n", refreshed.Name, refreshed.Money())
	return subcommands.ExitSuccess
}
