package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/etnz/networth"
	"github.com/etnz/networth/date"
	"github.com/etnz/networth/renderer"
	"github.com/google/subcommands"
)

type summaryCmd struct {
	period string
	start  string
	end    string
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "show portfolio totals, change and distribution" }
func (*summaryCmd) Usage() string {
	return `nw summary [-p <period> | -s <start> [-e <end>]]

  Computes the portfolio statistics over the selected window: total balance,
  change within the window, change rate and the category/subcategory
  distribution.
`
}

func (p *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.period, "p", "month", "Predefined period ("+periodNames()+").")
	f.StringVar(&p.start, "s", "", "Start of a custom window (2006-01-02). Overrides -p.")
	f.StringVar(&p.end, "e", "", "End of a custom window, defaults to now.")
}

func (p *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	printMarkdown(renderer.SummaryMarkdown(stats, cfg.Currency))
	return subcommands.ExitSuccess
}

// resolvePeriod builds the statistics period from the -p/-s/-e flags.
func resolvePeriod(periodFlag, startFlag, endFlag string) (date.Period, error) {
	if startFlag == "" {
		period, err := date.ParsePeriod(periodFlag)
		if err != nil {
			return date.Period{}, fmt.Errorf("error parsing period: %w", err)
		}
		return period, nil
	}

	start, err := time.ParseInLocation("2006-01-02", startFlag, time.Local)
	if err != nil {
		return date.Period{}, fmt.Errorf("error parsing start date: %w", err)
	}
	if endFlag == "" {
		return date.Custom(date.Since(start)), nil
	}
	end, err := time.ParseInLocation("2006-01-02", endFlag, time.Local)
	if err != nil {
		return date.Period{}, fmt.Errorf("error parsing end date: %w", err)
	}
	return date.Custom(date.NewRange(start, end)), nil
}

// periodNames joins the preset period names for the flag help.
func periodNames() string {
	names := make([]string, 0, len(date.Presets()))
	for _, p := range date.Presets() {
		names = append(names, p.String())
	}
	return strings.Join(names, ", ")
}
