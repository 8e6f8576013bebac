package networth

import (
	"time"

	"github.com/etnz/networth/date"
	"github.com/shopspring/decimal"
)

// DefaultSnapshotSteps is the number of evenly spaced snapshots reconstructed
// over a statistics range.
const DefaultSnapshotSteps = 6

// Snapshot is a reconstructed view of the portfolio at a single past instant.
// It is only ever produced by ComputeStatistics and never persisted.
type Snapshot struct {
	Time           time.Time
	TotalBalance   decimal.Decimal
	CategoryTotals map[Category]decimal.Decimal
}

// Distribution holds the category and subcategory shares of the portfolio.
// Subcategories are keyed by name: two subcategory instances with the same
// name merge, whatever their ids.
type Distribution struct {
	CategoryShare    map[Category]decimal.Decimal
	SubcategoryShare map[Category]map[string]decimal.Decimal
}

// Statistics is the full computed result for one (asset set, period) pair.
type Statistics struct {
	ComputedAt   time.Time
	Period       date.Period
	Range        date.Range
	TotalBalance decimal.Decimal
	TotalChange  decimal.Decimal
	// ChangeRate is TotalChange over the balance as it was before the
	// period's change. It is nil when that base is exactly zero.
	ChangeRate   *decimal.Decimal
	Distribution Distribution
	Snapshots    []Snapshot
}

// FormattedChangeRate renders the change rate as a signed percentage, or "-"
// when there is no meaningful rate.
func (s Statistics) FormattedChangeRate() string {
	if s.ChangeRate == nil {
		return "-"
	}
	return P(*s.ChangeRate).SignedString()
}

// ComputeStatistics derives the portfolio statistics for the given assets
// over the period anchored on ref. It is pure: it only reads the assets and
// returns freshly computed values.
func ComputeStatistics(assets []Asset, period date.Period, ref time.Time) Statistics {
	r := period.Resolve(ref)

	totalBalance := decimal.Zero
	for _, a := range assets {
		totalBalance = totalBalance.Add(a.Balance)
	}

	change := decimal.Zero
	for _, a := range assets {
		for _, tx := range a.Transactions {
			if r.Contains(tx.OccurredAt) {
				change = change.Add(tx.AmountDelta)
			}
		}
	}

	// The base is the balance as it was before this period's change.
	var changeRate *decimal.Decimal
	if base := totalBalance.Sub(change); !base.IsZero() {
		rate := change.Div(base)
		changeRate = &rate
	}

	return Statistics{
		ComputedAt:   ref,
		Period:       period,
		Range:        r,
		TotalBalance: totalBalance,
		TotalChange:  change,
		ChangeRate:   changeRate,
		Distribution: Distribution{
			CategoryShare:    categoryShare(totalsByCategory(assets), totalBalance),
			SubcategoryShare: subcategoryShare(totalsBySubcategory(assets)),
		},
		Snapshots: makeSnapshots(assets, r, DefaultSnapshotSteps),
	}
}

func totalsByCategory(assets []Asset) map[Category]decimal.Decimal {
	totals := make(map[Category]decimal.Decimal)
	for _, a := range assets {
		totals[a.Category] = totals[a.Category].Add(a.Balance)
	}
	return totals
}

func totalsBySubcategory(assets []Asset) map[Category]map[string]decimal.Decimal {
	totals := make(map[Category]map[string]decimal.Decimal)
	for _, a := range assets {
		sub := totals[a.Category]
		if sub == nil {
			sub = make(map[string]decimal.Decimal)
			totals[a.Category] = sub
		}
		sub[a.Subcategory.Name] = sub[a.Subcategory.Name].Add(a.Balance)
	}
	return totals
}

// categoryShare divides each category total by the grand total. A zero grand
// total yields an empty map rather than a division by zero.
func categoryShare(totals map[Category]decimal.Decimal, total decimal.Decimal) map[Category]decimal.Decimal {
	share := make(map[Category]decimal.Decimal)
	if total.IsZero() {
		return share
	}
	for c, t := range totals {
		share[c] = t.Div(total)
	}
	return share
}

// subcategoryShare divides each subcategory total by its category total.
// Categories whose total is zero are omitted entirely.
func subcategoryShare(totals map[Category]map[string]decimal.Decimal) map[Category]map[string]decimal.Decimal {
	share := make(map[Category]map[string]decimal.Decimal)
	for c, subTotals := range totals {
		categoryTotal := decimal.Zero
		for _, t := range subTotals {
			categoryTotal = categoryTotal.Add(t)
		}
		if categoryTotal.IsZero() {
			continue
		}
		subShare := make(map[string]decimal.Decimal, len(subTotals))
		for name, t := range subTotals {
			subShare[name] = t.Div(categoryTotal)
		}
		share[c] = subShare
	}
	return share
}

// makeSnapshots reconstructs steps evenly spaced snapshots from the range
// start to its end, both included. A snapshot is only emitted when its
// computed instant does not overshoot the range end.
func makeSnapshots(assets []Asset, r date.Range, steps int) []Snapshot {
	if steps <= 1 {
		return nil
	}
	duration := r.Duration()
	if duration == 0 {
		return []Snapshot{snapshotAt(assets, r.Start)}
	}

	interval := duration / time.Duration(steps-1)
	snapshots := make([]Snapshot, 0, steps)
	for step := 0; step < steps; step++ {
		at := r.Start.Add(time.Duration(step) * interval)
		if at.After(r.End) {
			continue
		}
		snapshots = append(snapshots, snapshotAt(assets, at))
	}
	return snapshots
}

func snapshotAt(assets []Asset, at time.Time) Snapshot {
	totals := make(map[Category]decimal.Decimal)
	total := decimal.Zero
	for _, a := range assets {
		b := BalanceAt(a, at)
		totals[a.Category] = totals[a.Category].Add(b)
		total = total.Add(b)
	}
	return Snapshot{Time: at, TotalBalance: total, CategoryTotals: totals}
}

// BalanceAt reconstructs the asset's balance as of a past instant by strict
// linear backward reconstruction: the base is the current balance minus every
// transaction delta, and the balance at t adds back the deltas that occurred
// on or before t. This is only meaningful when the current balance already
// reflects every transaction appended to the asset.
func BalanceAt(a Asset, at time.Time) decimal.Decimal {
	base := a.Balance
	applied := decimal.Zero
	for _, tx := range a.Transactions {
		base = base.Sub(tx.AmountDelta)
		if !tx.OccurredAt.After(at) {
			applied = applied.Add(tx.AmountDelta)
		}
	}
	return base.Add(applied)
}
