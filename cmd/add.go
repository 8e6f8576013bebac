package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/networth"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

type addCmd struct {
	name        string
	category    string
	subcategory string
	balance     string
	institution string
	notes       string
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "track a new asset" }
func (*addCmd) Usage() string {
	return `nw add -name <name> -c <category> -balance <amount> [-sub <subcategory>] [-institution <name>] [-notes <text>]

  Adds a new asset to the tracker. The category is one of liquid, fixed or
  investment. The subcategory defaults to the category's first built-in one;
  naming an unknown subcategory creates a custom one.
`
}

func (p *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.name, "name", "", "Asset display name.")
	f.StringVar(&p.category, "c", "", "Primary category (liquid, fixed, investment).")
	f.StringVar(&p.subcategory, "sub", "", "Subcategory name.")
	f.StringVar(&p.balance, "balance", "", "Initial balance.")
	f.StringVar(&p.institution, "institution", "", "Institution holding the asset.")
	f.StringVar(&p.notes, "notes", "", "Free-text note.")
}

func (p *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if p.name == "" || p.category == "" || p.balance == "" {
		fmt.Fprintln(os.Stderr, "Error: -name, -c and -balance are required.")
		return subcommands.ExitUsageError
	}
	category, ok := networth.ParseCategory(p.category)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown category %q.\n", p.category)
		return subcommands.ExitUsageError
	}
	balance, err := decimal.NewFromString(p.balance)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing balance: %v\n", err)
		return subcommands.ExitUsageError
	}

	store, closer, err := OpenStore(LoadConfig())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer closeStore(closer)

	subName := p.subcategory
	if subName == "" {
		if defaults := category.DefaultSubcategories(); len(defaults) > 0 {
			subName = defaults[0].Name
		}
	}
	sub := networth.FindOrCreateSubcategory(store.Assets(), category, subName)

	asset := networth.NewAsset(p.name, category, sub, balance)
	asset.Institution = p.institution
	asset.Notes = p.notes
	store.Add(asset)

	fmt.Printf("Added %q (%s/%s) with balance %s.\n", asset.Name, asset.Category, sub.Name, asset.Money())
	return subcommands.ExitSuccess
}

func closeStore(closer func() error) {
	if closer == nil {
		return
	}
	if err := closer(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not close store: %v\n", err)
	}
}
