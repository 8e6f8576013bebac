package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/etnz/networth"
	"github.com/etnz/networth/renderer"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

type txCmd struct {
	name  string
	delta string
	kind  string
	note  string
}

func (*txCmd) Name() string     { return "tx" }
func (*txCmd) Synopsis() string { return "append a transaction to an asset, or list its ledger" }
func (*txCmd) Usage() string {
	return `nw tx -name <asset> [-delta <amount> [-kind <kind>] [-note <text>]]

  Without -delta, prints the asset's transaction ledger. With -delta, appends
  a transaction: the asset balance moves by the signed delta and the ledger
  keeps the record. Transactions are never edited afterwards.
`
}

func (p *txCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.name, "name", "", "Asset display name.")
	f.StringVar(&p.delta, "delta", "", "Signed balance change.")
	f.StringVar(&p.kind, "kind", "", "Transaction kind (adjustment, inflow, outflow, appreciation, depreciation).")
	f.StringVar(&p.note, "note", "", "Free-text note.")
}

func (p *txCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	if p.delta == "" {
		printMarkdown(renderer.TransactionsMarkdown(asset))
		return subcommands.ExitSuccess
	}

	delta, err := decimal.NewFromString(p.delta)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing delta: %v\n", err)
		return subcommands.ExitUsageError
	}
	kind := networth.TransactionKind(p.kind)
	if p.kind == "" {
		kind = networth.Inflow
		if delta.IsNegative() {
			kind = networth.Outflow
		}
	}

	tx := networth.NewTransaction(time.Now(), delta, kind, p.note)
	if err := store.AppendTransaction(asset.ID, tx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	refreshed, _ := store.Find(asset.ID)
	fmt.Printf("Recorded %s on %q, balance now %s.\n",
		networth.M(delta, refreshed.Currency).SignedString(), refreshed.Name, refreshed.Money())
	return subcommands.ExitSuccess
}
