package networth

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func strPtr(s string) *string           { return &s }
func catPtr(c Category) *Category       { return &c }
func decPtr(v float64) *decimal.Decimal { d := D(v); return &d }
func idPtr(id uuid.UUID) *uuid.UUID     { return &id }

func TestApply_add(t *testing.T) {
	store, _ := newTestStore()

	cmd := Command{
		Action:          ActionAdd,
		AssetName:       strPtr("Emergency Fund"),
		PrimaryCategory: catPtr(Liquid),
		Amount:          decPtr(30000),
		Notes:           strPtr("add my Emergency Fund balance of 3万"),
	}
	if err := Apply(cmd, store); err != nil {
		t.Fatalf("Apply() failed: %v", err)
	}

	assets := store.Assets()
	if len(assets) != 1 {
		t.Fatalf("got %d assets, want 1", len(assets))
	}
	a := assets[0]
	if a.Name != "Emergency Fund" || a.Category != Liquid {
		t.Errorf("added asset = %q/%s", a.Name, a.Category)
	}
	if !a.Balance.Equal(D(30000)) {
		t.Errorf("balance = %s, want 30000", a.Balance)
	}
	// The subcategory defaults to the category's first built-in name but is
	// constructed as a custom instance.
	if a.Subcategory.Name != "Checking" || a.Subcategory.IsDefault {
		t.Errorf("subcategory = %+v, want custom %q", a.Subcategory, "Checking")
	}
	if len(a.Transactions) != 0 {
		t.Errorf("new asset carries %d transactions, want none", len(a.Transactions))
	}
}

func TestApply_addMissingFields(t *testing.T) {
	testCases := []struct {
		name string
		cmd  Command
	}{
		{name: "no amount", cmd: Command{Action: ActionAdd, AssetName: strPtr("X"), PrimaryCategory: catPtr(Liquid)}},
		{name: "no category", cmd: Command{Action: ActionAdd, AssetName: strPtr("X"), Amount: decPtr(1)}},
		{name: "no name", cmd: Command{Action: ActionAdd, PrimaryCategory: catPtr(Liquid), Amount: decPtr(1)}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			store, storage := newTestStore()
			err := Apply(tc.cmd, store)
			if !errors.Is(err, ErrInvalidCommand) {
				t.Errorf("Apply() = %v, want ErrInvalidCommand", err)
			}
			if storage.saves != 0 {
				t.Errorf("store persisted %d times on a rejected command", storage.saves)
			}
		})
	}
}

func TestApply_updateAmountThenDelta(t *testing.T) {
	// Amount overwrites the balance to 200, but the delta append works on the
	// store's balance (100) and its result replaces the local copy: the final
	// balance is 150, not 250.
	asset := liquidAsset("Checking", 100)
	store, _ := newTestStore(asset)

	cmd := Command{
		Action:    ActionUpdate,
		AssetName: strPtr("Checking"),
		Amount:    decPtr(200),
		Delta:     decPtr(50),
	}
	if err := Apply(cmd, store); err != nil {
		t.Fatalf("Apply() failed: %v", err)
	}

	got, _ := store.Find(asset.ID)
	if want := D(150); !got.Balance.Equal(want) {
		t.Errorf("balance = %s, want %s", got.Balance, want)
	}
	if len(got.Transactions) != 1 {
		t.Fatalf("got %d transactions, want 1", len(got.Transactions))
	}
	if tx := got.Transactions[0]; !tx.AmountDelta.Equal(D(50)) || tx.Kind != Inflow {
		t.Errorf("transaction = %s/%s, want +50 inflow", tx.AmountDelta, tx.Kind)
	}
}

func TestApply_updateAmountOnly(t *testing.T) {
	asset := liquidAsset("Checking", 100)
	store, _ := newTestStore(asset)

	cmd := Command{Action: ActionUpdate, AssetName: strPtr("Checking"), Amount: decPtr(200)}
	if err := Apply(cmd, store); err != nil {
		t.Fatalf("Apply() failed: %v", err)
	}

	got, _ := store.Find(asset.ID)
	if want := D(200); !got.Balance.Equal(want) {
		t.Errorf("balance = %s, want %s", got.Balance, want)
	}
	if len(got.Transactions) != 0 {
		t.Errorf("amount overwrite recorded %d transactions, want none", len(got.Transactions))
	}
}

func TestApply_updateNegativeDelta(t *testing.T) {
	asset := liquidAsset("Checking", 100)
	store, _ := newTestStore(asset)

	cmd := Command{Action: ActionUpdate, AssetName: strPtr("Checking"), Delta: decPtr(-30), Notes: strPtr("rent")}
	if err := Apply(cmd, store); err != nil {
		t.Fatalf("Apply() failed: %v", err)
	}

	got, _ := store.Find(asset.ID)
	if want := D(70); !got.Balance.Equal(want) {
		t.Errorf("balance = %s, want %s", got.Balance, want)
	}
	if tx := got.Transactions[0]; tx.Kind != Outflow || tx.Note != "rent" {
		t.Errorf("transaction = %s/%q, want outflow with the command note", tx.Kind, tx.Note)
	}
}

func TestApply_updateFields(t *testing.T) {
	asset := liquidAsset("Old Fund", 100)
	store, _ := newTestStore(asset)

	cmd := Command{
		Action:          ActionUpdate,
		AssetID:         idPtr(asset.ID),
		PrimaryCategory: catPtr(Investment),
		SubcategoryName: strPtr("Crypto"),
		Institution:     strPtr("Some Broker"),
		Notes:           strPtr("moved"),
	}
	if err := Apply(cmd, store); err != nil {
		t.Fatalf("Apply() failed: %v", err)
	}

	got, _ := store.Find(asset.ID)
	if got.Category != Investment {
		t.Errorf("category = %s, want investment", got.Category)
	}
	if got.Subcategory.Name != "Crypto" || got.Subcategory.IsDefault {
		t.Errorf("subcategory = %+v, want custom Crypto", got.Subcategory)
	}
	if got.Institution != "Some Broker" || got.Notes != "moved" {
		t.Errorf("institution/notes = %q/%q", got.Institution, got.Notes)
	}
}

func TestApply_updateUnknownAsset(t *testing.T) {
	store, _ := newTestStore(liquidAsset("Checking", 100))

	cmd := Command{Action: ActionUpdate, AssetName: strPtr("Nope"), Amount: decPtr(1)}
	if err := Apply(cmd, store); !errors.Is(err, ErrAssetNotFound) {
		t.Errorf("Apply() = %v, want ErrAssetNotFound", err)
	}
}

func TestApply_deleteByName(t *testing.T) {
	asset := liquidAsset("Checking", 100)
	store, _ := newTestStore(asset, liquidAsset("Savings", 50))

	cmd := Command{Action: ActionDelete, AssetName: strPtr("Checking")}
	if err := Apply(cmd, store); err != nil {
		t.Fatalf("Apply() failed: %v", err)
	}
	if assets := store.Assets(); len(assets) != 1 || assets[0].Name != "Savings" {
		t.Errorf("remaining assets = %v", assets)
	}
}

func TestApply_deleteMissingAsset(t *testing.T) {
	store, _ := newTestStore(liquidAsset("Checking", 100))

	cmd := Command{Action: ActionDelete, AssetID: idPtr(uuid.New())}
	if err := Apply(cmd, store); !errors.Is(err, ErrAssetNotFound) {
		t.Errorf("Apply() = %v, want ErrAssetNotFound", err)
	}
	if assets := store.Assets(); len(assets) != 1 {
		t.Errorf("store content changed on a failed delete: %v", assets)
	}
}

func TestApply_unknownAction(t *testing.T) {
	store, _ := newTestStore()
	if err := Apply(Command{Action: "merge"}, store); !errors.Is(err, ErrInvalidCommand) {
		t.Errorf("Apply() = %v, want ErrInvalidCommand", err)
	}
}
