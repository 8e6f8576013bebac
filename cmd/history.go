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
)

type historyCmd struct {
	period string
	start  string
	end    string
}

func (*historyCmd) Name() string     { return "history" }
func (*historyCmd) Synopsis() string { return "show reconstructed balances over the window" }
func (*historyCmd) Usage() string {
	return `nw history [-p <period> | -s <start> [-e <end>]]

  Reconstructs the portfolio balance at evenly spaced instants across the
  window, by rolling the transaction ledger backward from current balances.
`
}

func (p *historyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.period, "p", "month", "Predefined period ("+periodNames()+").")
	f.StringVar(&p.start, "s", "", "Start of a custom window (2006-01-02). Overrides -p.")
	f.StringVar(&p.end, "e", "", "End of a custom window, defaults to now.")
}

func (p *historyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	period, err := resolvePeriod(p.period, p.start, p.end)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}

	cfg := LoadConfig()
	store, closer, err := OpenStore(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer closeStore(closer)

	stats := networth.ComputeStatistics(store.Assets(), period, time.Now())
	printMarkdown(renderer.HistoryMarkdown(stats, cfg.Currency))
	return subcommands.ExitSuccess
}
