package assist

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/etnz/networth"
	"github.com/shopspring/decimal"
)

// defaultAssetName names an added asset when the instruction does not carry
// an extractable name. The interpreter never rejects an add outright.
const defaultAssetName = "New Asset"

// RuleBased is a deterministic, stateless stand-in for a language-model
// client. It extracts the instruction back out of the prompt, interprets it
// with fixed keyword rules and answers with the command as JSON.
type RuleBased struct{}

func (RuleBased) Complete(ctx context.Context, prompt string) (string, error) {
	idx := strings.LastIndex(prompt, instructionHeader)
	if idx < 0 {
		return "", fmt.Errorf("prompt carries no instruction section: %w", ErrInvalidResponse)
	}
	instruction := prompt[idx+len(instructionHeader):]
	if cut := strings.Index(instruction, jsonOnlySentinel); cut >= 0 {
		instruction = instruction[:cut]
	}
	instruction = strings.TrimSpace(instruction)

	cmd := Interpret(instruction)
	data, err := json.Marshal(cmd)
	if err != nil {
		return "", fmt.Errorf("could not encode command: %w", ErrDecodingFailed)
	}
	return string(data), nil
}

// Keyword families, bilingual (English and Chinese). Evaluation order is
// fixed: delete rules, then add rules, then update as the fallback.
var (
	deleteKeywords = []string{"删除", "移除", "delete", "remove"}
	addKeywords    = []string{"新增", "添加", "create", "add"}

	// nameMarkers are possessive/reference words preceding an asset name.
	nameMarkers = []string{"我的", "把", "将", "给", "My ", "my ", "The ", "the "}
	// balanceKeywords terminate the name span started by a marker.
	balanceKeywords = []string{"余额", "balance"}

	decreaseKeywords = []string{"减少", "支出", "下降", "decrease", "spent", "loss", "drop"}
	increaseKeywords = []string{"增加", "收入", "上涨", "increase", "gain", "income", "rise"}

	investmentKeywords = []string{"投资", "基金", "股票", "invest", "stock", "fund"}
	fixedKeywords      = []string{"房", "车", "house", "property", "estate", "car"}
	liquidKeywords     = []string{"现金", "存款", "活期", "cash", "saving", "deposit", "checking"}
)

// tenThousand is the unit word that multiplies any extracted amount by
// 10,000 whenever it appears anywhere in the instruction, regardless of its
// position relative to the number.
const tenThousand = "万"

var amountPattern = regexp.MustCompile(`[0-9]+(?:\.[0-9]+)?`)

// Interpret translates a free-text instruction into a command. It is pure
// and deterministic, and never fails: unextractable fields stay unset and
// validation is deferred to the applier.
func Interpret(instruction string) networth.Command {
	lower := strings.ToLower(instruction)

	if containsAny(lower, deleteKeywords) {
		return networth.Command{
			Action:    networth.ActionDelete,
			AssetName: extractName(instruction),
		}
	}

	if containsAny(lower, addKeywords) {
		name := extractName(instruction)
		if name == nil {
			fallback := defaultAssetName
			name = &fallback
		}
		return networth.Command{
			Action:          networth.ActionAdd,
			AssetName:       name,
			PrimaryCategory: extractCategory(lower),
			Amount:          extractAmount(instruction),
			Notes:           &instruction,
		}
	}

	return networth.Command{
		Action:    networth.ActionUpdate,
		AssetName: extractName(instruction),
		Amount:    extractAmount(instruction),
		Delta:     extractDelta(instruction, lower),
		Notes:     &instruction,
	}
}

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

// extractName scans for the first marker word and takes the span between it
// and the next balance keyword, trimmed. A marker without a balance keyword
// after it does not match; the scan then tries the next marker.
func extractName(instruction string) *string {
	for _, marker := range nameMarkers {
		idx := strings.Index(instruction, marker)
		if idx < 0 {
			continue
		}
		rest := instruction[idx+len(marker):]
		for _, kw := range balanceKeywords {
			if j := strings.Index(rest, kw); j >= 0 {
				name := strings.TrimSpace(rest[:j])
				return &name
			}
		}
	}
	return nil
}

// extractAmount takes the first numeric token of the instruction and applies
// the ten-thousand unit rule.
func extractAmount(instruction string) *decimal.Decimal {
	match := amountPattern.FindString(instruction)
	if match == "" {
		return nil
	}
	amount, err := decimal.NewFromString(match)
	if err != nil {
		return nil
	}
	if strings.Contains(instruction, tenThousand) {
		amount = amount.Mul(decimal.NewFromInt(10_000))
	}
	return &amount
}

// extractDelta reuses the amount extraction; the sign comes from the
// direction keyword families. Without a direction keyword there is no delta,
// even when an amount is present.
func extractDelta(instruction, lower string) *decimal.Decimal {
	amount := extractAmount(instruction)
	if amount == nil {
		return nil
	}
	if containsAny(lower, decreaseKeywords) {
		neg := amount.Neg()
		return &neg
	}
	if containsAny(lower, increaseKeywords) {
		return amount
	}
	return nil
}

// extractCategory tries the keyword families in fixed priority order:
// investment, then fixed, then liquid.
func extractCategory(lower string) *networth.Category {
	pick := func(c networth.Category) *networth.Category { return &c }
	if containsAny(lower, investmentKeywords) {
		return pick(networth.Investment)
	}
	if containsAny(lower, fixedKeywords) {
		return pick(networth.Fixed)
	}
	if containsAny(lower, liquidKeywords) {
		return pick(networth.Liquid)
	}
	return nil
}
