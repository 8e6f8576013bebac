package networth

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// EncodeAssets writes the assets as JSONL, one asset per line, suitable for
// human review and version control.
func EncodeAssets(w io.Writer, assets []Asset) error {
	enc := json.NewEncoder(w)
	for _, a := range assets {
		if err := enc.Encode(a); err != nil {
			return fmt.Errorf("could not encode asset %q: %w", a.Name, err)
		}
	}
	return nil
}

// DecodeAssets reads a JSONL stream of assets, skipping empty lines.
func DecodeAssets(r io.Reader) ([]Asset, error) {
	var assets []Asset
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var a Asset
		if err := json.Unmarshal(line, &a); err != nil {
			return nil, fmt.Errorf("could not decode asset line %q: %w", string(line), err)
		}
		assets = append(assets, a)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("could not read assets: %w", err)
	}
	return assets, nil
}
