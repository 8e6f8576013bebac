package networth

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ErrInvalidCommand is returned when a command lacks the fields required by
// its action.
var ErrInvalidCommand = errors.New("invalid command")

// Action discriminates the command variants.
type Action string

const (
	ActionAdd    Action = "add"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
)

// Valid reports whether the action is one of the closed set.
func (a Action) Valid() bool {
	switch a {
	case ActionAdd, ActionUpdate, ActionDelete:
		return true
	}
	return false
}

// Command is a structured mutation instruction. Every field besides Action is
// optional: absence is semantically "not specified", distinct from zero.
type Command struct {
	Action          Action           `json:"action"`
	AssetName       *string          `json:"assetName,omitempty"`
	AssetID         *uuid.UUID       `json:"assetID,omitempty"`
	PrimaryCategory *Category        `json:"primaryCategory,omitempty"`
	SubcategoryName *string          `json:"subcategoryName,omitempty"`
	Amount          *decimal.Decimal `json:"amount,omitempty"`
	Delta           *decimal.Decimal `json:"delta,omitempty"`
	Institution     *string          `json:"institution,omitempty"`
	Notes           *string          `json:"notes,omitempty"`
}

// fallbackSubcategoryName names the subcategory of an added asset when
// neither the command nor the category defaults provide one.
const fallbackSubcategoryName = "Other"

// Apply executes the command against the store. Validation failures surface
// before any store call, so add and delete are atomic relative to validation.
// Update's amount-overwrite and delta-append steps are deliberately applied
// in sequence without rollback.
func Apply(cmd Command, store *Store) error {
	switch cmd.Action {
	case ActionAdd:
		return applyAdd(cmd, store)
	case ActionUpdate:
		return applyUpdate(cmd, store)
	case ActionDelete:
		return applyDelete(cmd, store)
	default:
		return fmt.Errorf("unknown action %q: %w", cmd.Action, ErrInvalidCommand)
	}
}

func applyAdd(cmd Command, store *Store) error {
	if cmd.AssetName == nil || cmd.PrimaryCategory == nil || cmd.Amount == nil {
		return fmt.Errorf("add requires a name, a category and an amount: %w", ErrInvalidCommand)
	}

	subName := fallbackSubcategoryName
	if defaults := cmd.PrimaryCategory.DefaultSubcategories(); len(defaults) > 0 {
		subName = defaults[0].Name
	}
	if cmd.SubcategoryName != nil {
		subName = *cmd.SubcategoryName
	}

	asset := NewAsset(*cmd.AssetName, *cmd.PrimaryCategory, NewSubcategory(subName), *cmd.Amount)
	if cmd.Institution != nil {
		asset.Institution = *cmd.Institution
	}
	if cmd.Notes != nil {
		asset.Notes = *cmd.Notes
	}
	store.Add(asset)
	return nil
}

func applyUpdate(cmd Command, store *Store) error {
	asset, ok := resolveTarget(store.Assets(), cmd)
	if !ok {
		return fmt.Errorf("update: %w", ErrAssetNotFound)
	}

	// Field updates in fixed order, each independent. The amount overwrite
	// happens on the local copy only: a subsequent delta append goes through
	// the store and its result replaces the copy, so the overwrite is lost
	// whenever both fields are present.
	if cmd.Amount != nil {
		asset.Balance = *cmd.Amount
	}
	if cmd.Delta != nil {
		kind := Inflow
		if cmd.Delta.IsNegative() {
			kind = Outflow
		}
		note := ""
		if cmd.Notes != nil {
			note = *cmd.Notes
		}
		tx := NewTransaction(time.Now(), *cmd.Delta, kind, note)
		if err := store.AppendTransaction(asset.ID, tx); err != nil {
			return err
		}
		// The append moved the balance independently, re-read the asset.
		if refreshed, ok := store.Find(asset.ID); ok {
			asset = refreshed
		}
	}
	if cmd.PrimaryCategory != nil {
		asset.Category = *cmd.PrimaryCategory
	}
	if cmd.SubcategoryName != nil {
		asset.Subcategory = NewSubcategory(*cmd.SubcategoryName)
	}
	if cmd.Institution != nil {
		asset.Institution = *cmd.Institution
	}
	if cmd.Notes != nil {
		asset.Notes = *cmd.Notes
	}
	return store.Update(asset)
}

func applyDelete(cmd Command, store *Store) error {
	id := cmd.AssetID
	if id == nil && cmd.AssetName != nil {
		if asset, ok := store.FindByName(*cmd.AssetName); ok {
			id = &asset.ID
		}
	}
	if id == nil {
		return fmt.Errorf("delete: %w", ErrAssetNotFound)
	}
	return store.Remove(*id)
}

// resolveTarget finds the asset the update command refers to. The name match
// is checked before the id match, both exact.
func resolveTarget(assets []Asset, cmd Command) (Asset, bool) {
	for _, a := range assets {
		if cmd.AssetName != nil && a.Name == *cmd.AssetName {
			return a, true
		}
		if cmd.AssetID != nil && a.ID == *cmd.AssetID {
			return a, true
		}
	}
	return Asset{}, false
}
