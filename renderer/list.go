package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/networth"
	"github.com/shopspring/decimal"
)

// ListMarkdown renders the asset collection grouped by primary category,
// with per-section and grand totals.
func ListMarkdown(assets []networth.Asset, currency string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Assets\n")

	if len(assets) == 0 {
		fmt.Fprintf(&b, "\nNo assets tracked yet.\n")
		return b.String()
	}

	for _, section := range networth.Sections(assets) {
		fmt.Fprintf(&b, "\n## %s: %s\n\n", section.Category, networth.M(section.TotalBalance(), currency))
		fmt.Fprintf(&b, "| Name | Subcategory | Balance | Institution | Updated |\n")
		fmt.Fprintf(&b, "|---|---|---:|---|---|\n")
		for _, a := range section.Assets {
			fmt.Fprintf(&b, "| %s | %s | %s | %s | %s |\n",
				a.Name, a.Subcategory.Name, a.Money(), a.Institution, a.LastUpdated.Format("2006-01-02"))
		}
	}

	total := networth.M(totalBalance(assets), currency)
	fmt.Fprintf(&b, "\nTotal: %s\n", total)
	return b.String()
}

// TransactionsMarkdown renders one asset's ledger in insertion order.
func TransactionsMarkdown(a networth.Asset) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s: %s\n\n", a.Name, a.Money())

	if len(a.Transactions) == 0 {
		fmt.Fprintf(&b, "No transactions recorded.\n")
		return b.String()
	}

	fmt.Fprintf(&b, "| Date | Kind | Delta | Note |\n|---|---|---:|---|\n")
	for _, tx := range a.Transactions {
		fmt.Fprintf(&b, "| %s | %s | %s | %s |\n",
			tx.OccurredAt.Format("2006-01-02"), tx.Kind,
			networth.M(tx.AmountDelta, a.Currency).SignedString(), tx.Note)
	}
	return b.String()
}

func totalBalance(assets []networth.Asset) decimal.Decimal {
	total := decimal.Zero
	for _, a := range assets {
		total = total.Add(a.Balance)
	}
	return total
}
