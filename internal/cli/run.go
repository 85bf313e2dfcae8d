package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/enetx/g"
	"github.com/spf13/cobra"

	"github.com/enetx/dfa"
)

var errRejected = errors.New("one or more inputs were rejected")

func runCmd(opts *options) *cobra.Command {
	var (
		trace, strict bool
		sep           string
	)

	c := &cobra.Command{
		Use:   "run INPUT...",
		Short: "Decide whether each input is accepted",
		Long:  "Decide whether each input is accepted. Each character is one symbol unless --sep is given.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, log, err := opts.load(cmd)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			rejected := 0

			for _, arg := range args {
				input := g.String(arg)
				v := process(d, input, sep)

				log.Debug("input.processed",
					"input", arg,
					"accepted", v.Accepted,
					"reason", v.Reason.String(),
					"state", string(v.State),
				)

				fmt.Fprintln(out, describe(input, v))
				if trace {
					fmt.Fprintln(out, "  path:", v.Path.Join(" -> "))
				}

				if !v.Accepted {
					rejected++
				}
			}

			if strict && rejected > 0 {
				return fmt.Errorf("%w: %d of %d", errRejected, rejected, len(args))
			}

			return nil
		},
	}

	c.Flags().BoolVar(&trace, "trace", false, "print the states visited for each input")
	c.Flags().StringVar(&sep, "sep", "", "split inputs on this separator instead of one symbol per character")
	c.Flags().BoolVar(&strict, "strict", false, "exit with an error if any input is rejected")
	return c
}

// process reads input one rune per symbol, or as sep-separated symbols when
// sep is set. An empty input is the empty sequence either way.
func process(d *dfa.DFA, input g.String, sep string) dfa.Verdict {
	if sep == "" {
		return d.ProcessString(input)
	}

	var symbols g.Slice[dfa.Symbol]
	if input != "" {
		for _, part := range strings.Split(string(input), sep) {
			symbols.Push(dfa.Symbol(part))
		}
	}

	return d.Process(symbols)
}
