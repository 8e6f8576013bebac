package cmd

import (
	"bufio"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/etnz/networth/assist"
	"github.com/google/subcommands"
)

type assistCmd struct{}

func (*assistCmd) Name() string     { return "assist" }
func (*assistCmd) Synopsis() string { return "drive the tracker with free-text instructions" }
func (*assistCmd) Usage() string {
	return `nw assist [instruction ...]

  Starts an interactive session translating free-text instructions into asset
  commands and applying them, e.g.:

    assist> add my Vanguard fund balance of 2万
    assist> my Vanguard fund balance increased by 1500

  Instructions passed as arguments are executed first. Type 'bye' to exit.
`
}

func (*assistCmd) SetFlags(f *flag.FlagSet) {}

const replPrompt = "assist> "

func (p *assistCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, closer, err := OpenStore(LoadConfig())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer closeStore(closer)

	processor := assist.NewProcessor(assist.RuleBased{})
	prompts := f.Args()
	reader := bufio.NewReader(os.Stdin)

	fmt.Println("Welcome to the net-worth assistant. Type 'bye' to exit.")
	for {
		fmt.Print(replPrompt)
		var input string
		// Flush instructions from the argument list before asking the user.
		if len(prompts) > 0 {
			input, prompts = prompts[0], prompts[1:]
			fmt.Println(input)
		} else {
			line, err := reader.ReadString('\n')
			if err != nil {
				if err == io.EOF {
					return subcommands.ExitSuccess // Clean exit on Ctrl+D
				}
				fmt.Fprintln(os.Stderr, err)
				return subcommands.ExitFailure
			}
			input = line
		}
		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		if input == "bye" {
			return subcommands.ExitSuccess
		}

		result := <-processor.Go(ctx, input, store)
		if result.Err != nil {
			fmt.Printf("Instruction failed: %v\n", result.Err)
			continue
		}
		applied, _ := json.Marshal(result.Command)
		fmt.Printf("Done. Applied %s\n", applied)
	}
}
