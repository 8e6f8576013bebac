package networth

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

func TestEncodeDecodeAssets(t *testing.T) {
	when := time.Date(2025, time.May, 1, 10, 0, 0, 0, time.UTC)
	asset := NewAsset("Brokerage", Investment, NewSubcategory("Funds"), D(120000.50))
	asset.Institution = "Some Broker"
	asset.Notes = "long term"
	asset.Transactions = []Transaction{NewTransaction(when, D(-99.95), Outflow, "fees")}

	var buf bytes.Buffer
	if err := EncodeAssets(&buf, []Asset{asset}); err != nil {
		t.Fatalf("EncodeAssets() failed: %v", err)
	}

	// one asset per line, amounts as bare numbers
	if lines := strings.Count(buf.String(), "\n"); lines != 1 {
		t.Errorf("encoded %d lines, want 1", lines)
	}
	if !strings.Contains(buf.String(), `"balance":120000.5`) {
		t.Errorf("balance not encoded as a bare number: %s", buf.String())
	}

	decoded, err := DecodeAssets(&buf)
	if err != nil {
		t.Fatalf("DecodeAssets() failed: %v", err)
	}
	if len(decoded) != 1 {
		t.Fatalf("decoded %d assets, want 1", len(decoded))
	}
	got := decoded[0]
	if got.ID != asset.ID || got.Name != asset.Name || got.Category != asset.Category {
		t.Errorf("decoded asset = %+v", got)
	}
	if !got.Balance.Equal(asset.Balance) {
		t.Errorf("balance = %s, want %s", got.Balance, asset.Balance)
	}
	if len(got.Transactions) != 1 || !got.Transactions[0].AmountDelta.Equal(D(-99.95)) {
		t.Errorf("transactions = %+v", got.Transactions)
	}
}

func TestDecodeAssets_skipsEmptyLinesAndRejectsGarbage(t *testing.T) {
	if assets, err := DecodeAssets(strings.NewReader("\n\n")); err != nil || len(assets) != 0 {
		t.Errorf("DecodeAssets(empty lines) = %v, %v", assets, err)
	}
	if _, err := DecodeAssets(strings.NewReader("not json\n")); err == nil {
		t.Error("DecodeAssets(garbage) expected an error")
	}
}
