// Package renderer turns computed statistics and asset collections into
// markdown reports for the terminal.
package renderer

import (
	"fmt"
	"sort"
	"strings"

	"github.com/etnz/networth"
)

// SummaryMarkdown renders the portfolio statistics as a markdown report:
// totals, change over the period, and the category/subcategory distribution.
func SummaryMarkdown(s networth.Statistics, currency string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Portfolio Summary (%s)\n\n", s.Period)
	fmt.Fprintf(&b, "Window: %s\n\n", s.Range)
	fmt.Fprintf(&b, "| | |\n|---|---:|\n")
	fmt.Fprintf(&b, "| Total balance | %s |\n", networth.M(s.TotalBalance, currency))
	fmt.Fprintf(&b, "| Change | %s |\n", networth.M(s.TotalChange, currency).SignedString())
	fmt.Fprintf(&b, "| Change rate | %s |\n", s.FormattedChangeRate())

	if len(s.Distribution.CategoryShare) > 0 {
		fmt.Fprintf(&b, "\n## Distribution\n\n")
		fmt.Fprintf(&b, "| Category | Share |\n|---|---:|\n")
		for _, c := range sortedCategories(s.Distribution.CategoryShare) {
			fmt.Fprintf(&b, "| %s | %s |\n", c, networth.P(s.Distribution.CategoryShare[c]))
		}
	}

	for _, c := range sortedCategories(s.Distribution.SubcategoryShare) {
		fmt.Fprintf(&b, "\n### %s\n\n", c)
		fmt.Fprintf(&b, "| Subcategory | Share |\n|---|---:|\n")
		shares := s.Distribution.SubcategoryShare[c]
		names := make([]string, 0, len(shares))
		for name := range shares {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			fmt.Fprintf(&b, "| %s | %s |\n", name, networth.P(shares[name]))
		}
	}

	return b.String()
}

// HistoryMarkdown renders the reconstructed snapshots as a markdown table,
// one row per snapshot, one column per category plus the grand total.
func HistoryMarkdown(s networth.Statistics, currency string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Portfolio History (%s)\n\n", s.Period)
	categories := networth.Categories()

	fmt.Fprintf(&b, "| Date |")
	for _, c := range categories {
		fmt.Fprintf(&b, " %s |", c)
	}
	fmt.Fprintf(&b, " Total |\n")
	fmt.Fprintf(&b, "|---|%s---:|\n", strings.Repeat("---:|", len(categories)))

	for _, snap := range s.Snapshots {
		fmt.Fprintf(&b, "| %s |", snap.Time.Format("2006-01-02 15:04"))
		for _, c := range categories {
			fmt.Fprintf(&b, " %s |", networth.M(snap.CategoryTotals[c], currency))
		}
		fmt.Fprintf(&b, " %s |\n", networth.M(snap.TotalBalance, currency))
	}
	return b.String()
}

func sortedCategories[V any](m map[networth.Category]V) []networth.Category {
	keys := make([]networth.Category, 0, len(m))
	for c := range m {
		keys = append(keys, c)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}
