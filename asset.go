package networth

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DefaultCurrency is the currency code given to new assets. The tracker is
// single-currency: no conversion ever happens between assets.
const DefaultCurrency = "CNY"

// Category is the closed primary classification of an asset.
type Category string

const (
	Liquid     Category = "liquid"
	Fixed      Category = "fixed"
	Investment Category = "investment"
)

// Categories lists the primary categories in display order.
func Categories() []Category {
	return []Category{Liquid, Fixed, Investment}
}

// ParseCategory parses a primary category name.
func ParseCategory(s string) (Category, bool) {
	switch Category(s) {
	case Liquid, Fixed, Investment:
		return Category(s), true
	default:
		return "", false
	}
}

// DefaultSubcategories returns the fixed, ordered list of built-in
// subcategories for the category. Each call mints fresh identities; callers
// group subcategories by name, never by id.
func (c Category) DefaultSubcategories() []Subcategory {
	switch c {
	case Liquid:
		return []Subcategory{
			newDefaultSubcategory("Checking"),
			newDefaultSubcategory("Cash"),
			newDefaultSubcategory("Money Market"),
		}
	case Fixed:
		return []Subcategory{
			newDefaultSubcategory("Real Estate"),
			newDefaultSubcategory("Vehicle"),
		}
	case Investment:
		return []Subcategory{
			newDefaultSubcategory("Stocks"),
			newDefaultSubcategory("Funds"),
			newDefaultSubcategory("Bonds"),
			newDefaultSubcategory("Gold"),
		}
	default:
		return nil
	}
}

// Subcategory is the open, user-extensible sub-classification of an asset.
// Custom subcategories are not catalogued anywhere: they are discovered by
// scanning existing assets.
type Subcategory struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	IsDefault bool      `json:"isDefault"`
}

// NewSubcategory returns a custom (non-default) subcategory with that name.
func NewSubcategory(name string) Subcategory {
	return Subcategory{ID: uuid.New(), Name: name, IsDefault: false}
}

func newDefaultSubcategory(name string) Subcategory {
	return Subcategory{ID: uuid.New(), Name: name, IsDefault: true}
}

// TransactionKind classifies how a balance moved. It is informational only
// and never affects arithmetic.
type TransactionKind string

const (
	Adjustment   TransactionKind = "adjustment"
	Inflow       TransactionKind = "inflow"
	Outflow      TransactionKind = "outflow"
	Appreciation TransactionKind = "appreciation"
	Depreciation TransactionKind = "depreciation"
)

// Transaction is a signed balance adjustment. Transactions are immutable
// once appended to an asset: they are never edited, only added.
type Transaction struct {
	ID          uuid.UUID       `json:"id"`
	OccurredAt  time.Time       `json:"occurredAt"`
	AmountDelta decimal.Decimal `json:"amountDelta"`
	Kind        TransactionKind `json:"kind"`
	Note        string          `json:"note,omitempty"`
}

// NewTransaction returns a transaction with a fresh identity.
func NewTransaction(occurredAt time.Time, delta decimal.Decimal, kind TransactionKind, note string) Transaction {
	return Transaction{
		ID:          uuid.New(),
		OccurredAt:  occurredAt,
		AmountDelta: delta,
		Kind:        kind,
		Note:        note,
	}
}

// Asset is a tracked financial holding. Balance is a running value stored
// alongside the transaction list; statistics assume it equals the initial
// balance plus the sum of every transaction delta, and reconstruct history
// backward from it.
type Asset struct {
	ID          uuid.UUID       `json:"id"`
	Name        string          `json:"name"`
	Category    Category        `json:"primaryCategory"`
	Subcategory Subcategory     `json:"subcategory"`
	Balance     decimal.Decimal `json:"balance"`
	Currency    string          `json:"currencyCode"`
	Institution string          `json:"institution,omitempty"`
	Notes       string          `json:"notes,omitempty"`
	LastUpdated time.Time       `json:"lastUpdated"`
	// Transactions are kept in insertion order, not time order.
	Transactions []Transaction `json:"transactions"`
}

// NewAsset returns an asset in the default currency with no transactions.
func NewAsset(name string, category Category, sub Subcategory, balance decimal.Decimal) Asset {
	return Asset{
		ID:          uuid.New(),
		Name:        name,
		Category:    category,
		Subcategory: sub,
		Balance:     balance,
		Currency:    DefaultCurrency,
		LastUpdated: time.Now(),
	}
}

// clone returns a copy of the asset whose transaction slice is independent
// from the original, so that readers never share mutable state with the store.
func (a Asset) clone() Asset {
	c := a
	c.Transactions = make([]Transaction, len(a.Transactions))
	copy(c.Transactions, a.Transactions)
	return c
}

// Money returns the asset's balance as a displayable Money value.
func (a Asset) Money() Money {
	return M(a.Balance, a.Currency)
}

// Section groups the assets of one primary category.
type Section struct {
	Category Category
	Assets   []Asset
}

// TotalBalance sums the balances of the section's assets.
func (s Section) TotalBalance() decimal.Decimal {
	total := decimal.Zero
	for _, a := range s.Assets {
		total = total.Add(a.Balance)
	}
	return total
}

// Sections groups assets by primary category, sorted by category name.
// Empty categories are omitted.
func Sections(assets []Asset) []Section {
	byCategory := make(map[Category][]Asset)
	for _, a := range assets {
		byCategory[a.Category] = append(byCategory[a.Category], a)
	}
	keys := make([]Category, 0, len(byCategory))
	for c := range byCategory {
		keys = append(keys, c)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	sections := make([]Section, 0, len(keys))
	for _, c := range keys {
		sections = append(sections, Section{Category: c, Assets: byCategory[c]})
	}
	return sections
}

// AvailableSubcategories returns the category's default subcategories plus
// every custom subcategory discovered on the given assets, deduplicated by
// name (first instance wins) and sorted by name.
func AvailableSubcategories(assets []Asset, c Category) []Subcategory {
	combined := c.DefaultSubcategories()
	for _, a := range assets {
		if a.Category == c && !a.Subcategory.IsDefault {
			combined = append(combined, a.Subcategory)
		}
	}
	byName := make(map[string]Subcategory)
	for _, sub := range combined {
		if _, ok := byName[sub.Name]; !ok {
			byName[sub.Name] = sub
		}
	}
	unique := make([]Subcategory, 0, len(byName))
	for _, sub := range byName {
		unique = append(unique, sub)
	}
	sort.Slice(unique, func(i, j int) bool { return unique[i].Name < unique[j].Name })
	return unique
}

// FindOrCreateSubcategory returns the known subcategory with that name for
// the category, or a new custom one. Matching is exact-string on the name.
func FindOrCreateSubcategory(assets []Asset, c Category, name string) Subcategory {
	for _, sub := range AvailableSubcategories(assets, c) {
		if sub.Name == name {
			return sub
		}
	}
	return NewSubcategory(name)
}
