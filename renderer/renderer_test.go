package renderer

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/etnz/networth"
	"github.com/etnz/networth/date"
)

var renderRef = time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)

func renderAssets() []networth.Asset {
	checking := networth.NewAsset("Checking", networth.Liquid, networth.NewSubcategory("Checking"), decimal.NewFromInt(1000))
	checking.Transactions = []networth.Transaction{
		networth.NewTransaction(renderRef.AddDate(0, 0, -3), decimal.NewFromInt(100), networth.Inflow, "salary"),
	}
	fund := networth.NewAsset("Fund", networth.Investment, networth.NewSubcategory("Funds"), decimal.NewFromInt(4000))
	return []networth.Asset{checking, fund}
}

func TestSummaryMarkdown(t *testing.T) {
	stats := networth.ComputeStatistics(renderAssets(), date.Month, renderRef)

	got := SummaryMarkdown(stats, networth.DefaultCurrency)

	for _, want := range []string{
		"# Portfolio Summary",
		"| Total balance |",
		"| Change rate |",
		"## Distribution",
		"| investment | 80.00% |",
		"| liquid | 20.00% |",
		"### investment",
		"| Funds | 100.00% |",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("summary misses %q:\n%s", want, got)
		}
	}
}

func TestSummaryMarkdown_noDistributionOnEmptyPortfolio(t *testing.T) {
	stats := networth.ComputeStatistics(nil, date.Month, renderRef)

	got := SummaryMarkdown(stats, networth.DefaultCurrency)

	if strings.Contains(got, "## Distribution") {
		t.Errorf("empty portfolio renders a distribution section:\n%s", got)
	}
}

func TestHistoryMarkdown(t *testing.T) {
	stats := networth.ComputeStatistics(renderAssets(), date.Month, renderRef)

	got := HistoryMarkdown(stats, networth.DefaultCurrency)

	if rows := strings.Count(got, "\n| 2025-"); rows != networth.DefaultSnapshotSteps {
		t.Errorf("got %d snapshot rows, want %d:\n%s", rows, networth.DefaultSnapshotSteps, got)
	}
	if !strings.Contains(got, "| Date | liquid | fixed | investment | Total |") {
		t.Errorf("history misses the header row:\n%s", got)
	}
}

func TestListMarkdown(t *testing.T) {
	got := ListMarkdown(renderAssets(), networth.DefaultCurrency)

	for _, want := range []string{"## liquid:", "## investment:", "| Checking |", "| Fund |", "Total:"} {
		if !strings.Contains(got, want) {
			t.Errorf("list misses %q:\n%s", want, got)
		}
	}
}

func TestListMarkdown_empty(t *testing.T) {
	got := ListMarkdown(nil, networth.DefaultCurrency)
	if !strings.Contains(got, "No assets tracked yet.") {
		t.Errorf("empty list = %q", got)
	}
}

func TestTransactionsMarkdown(t *testing.T) {
	asset := renderAssets()[0]

	got := TransactionsMarkdown(asset)

	for _, want := range []string{"# Checking:", "| 2025-06-12 | inflow |", "| salary |"} {
		if !strings.Contains(got, want) {
			t.Errorf("ledger misses %q:\n%s", want, got)
		}
	}
	if empty := TransactionsMarkdown(renderAssets()[1]); !strings.Contains(empty, "No transactions recorded.") {
		t.Errorf("empty ledger = %q", empty)
	}
}
