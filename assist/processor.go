package assist

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/etnz/networth"
)

// Prompt section markers. RuleBased relies on them to recover the raw
// instruction; a real model client would simply follow them.
const (
	instructionHeader = "Instruction:"
	jsonOnlySentinel  = "Return only the JSON object, with no extra text."
)

const commandSchema = `{
  "action": "add|update|delete",
  "assetName": "string?",
  "assetID": "uuid-string?",
  "primaryCategory": "liquid|fixed|investment?",
  "subcategoryName": "string?",
  "amount": number?,
  "delta": number?,
  "institution": "string?",
  "notes": "string?"
}`

// Processor runs the instruction-to-command pipeline: build the prompt, ask
// the client, decode its answer into a command.
type Processor struct {
	Client Client
}

// NewProcessor returns a processor around the given client.
func NewProcessor(client Client) Processor {
	return Processor{Client: client}
}

// Process translates the instruction into a command, given the current asset
// inventory for reference resolution context.
func (p Processor) Process(ctx context.Context, instruction string, assets []networth.Asset) (networth.Command, error) {
	prompt := BuildPrompt(instruction, assets)
	raw, err := p.Client.Complete(ctx, prompt)
	if err != nil {
		return networth.Command{}, fmt.Errorf("instruction pipeline: %w", err)
	}
	return ParseCommand(raw)
}

// Result reports the outcome of an asynchronous instruction.
type Result struct {
	Command networth.Command
	Err     error
}

// Go runs interpret-then-apply as a single task and reports completion on the
// returned channel. The store mutex still serializes the apply step against
// any concurrent direct mutation.
func (p Processor) Go(ctx context.Context, instruction string, store *networth.Store) <-chan Result {
	ch := make(chan Result, 1)
	go func() {
		defer close(ch)
		cmd, err := p.Process(ctx, instruction, store.Assets())
		if err == nil {
			err = networth.Apply(cmd, store)
		}
		ch <- Result{Command: cmd, Err: err}
	}()
	return ch
}

// ParseCommand decodes the client's raw textual output into a command.
func ParseCommand(raw string) (networth.Command, error) {
	var cmd networth.Command
	if err := json.Unmarshal([]byte(raw), &cmd); err != nil {
		return networth.Command{}, fmt.Errorf("could not parse %q: %v: %w", raw, err, ErrDecodingFailed)
	}
	if !cmd.Action.Valid() {
		return networth.Command{}, fmt.Errorf("unknown action %q: %w", cmd.Action, ErrDecodingFailed)
	}
	if cmd.PrimaryCategory != nil {
		if _, ok := networth.ParseCategory(string(*cmd.PrimaryCategory)); !ok {
			return networth.Command{}, fmt.Errorf("unknown category %q: %w", *cmd.PrimaryCategory, ErrDecodingFailed)
		}
	}
	return cmd, nil
}

// BuildPrompt lays out the full prompt: role, command schema, field
// semantics, the current asset inventory, the instruction and the JSON-only
// sentinel.
func BuildPrompt(instruction string, assets []networth.Asset) string {
	sections := []string{
		"You are the assistant of a personal net-worth tracker. Translate the user instruction into exactly one mutation command, returned as JSON.",
		"The command must follow this exact shape:",
		commandSchema,
		"amount is an absolute balance; delta is a signed change applied on top of the current balance.",
		"For add commands, assetName, primaryCategory and amount are required; leave unknown fields null.",
		"Current assets:",
		formatAssets(assets),
		instructionHeader + "\n" + instruction,
		jsonOnlySentinel,
	}
	return strings.Join(sections, "\n\n")
}

func formatAssets(assets []networth.Asset) string {
	if len(assets) == 0 {
		return "(none)"
	}
	lines := make([]string, 0, len(assets))
	for _, a := range assets {
		lines = append(lines, fmt.Sprintf("- id: %s, name: %s, category: %s, subcategory: %s, balance: %s",
			a.ID, a.Name, a.Category, a.Subcategory.Name, a.Balance))
	}
	return strings.Join(lines, "\n")
}
