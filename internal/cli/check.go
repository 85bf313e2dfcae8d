package cli

import (
	"fmt"
	"unicode/utf8"

	"github.com/spf13/cobra"
)

func checkCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Validate the automaton definition",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			d, _, err := opts.load(cmd)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "OK")
			fmt.Fprintf(out, "states: %d, symbols: %d, accepting: %d, complete: %t\n",
				len(d.States()), len(d.Alphabet()), len(d.AcceptStates()), d.Complete())

			for _, sym := range d.Alphabet() {
				if utf8.RuneCountInString(string(sym)) != 1 {
					fmt.Fprintln(out, "note: some symbols are not single characters; use run --sep")
					break
				}
			}

			return nil
		},
	}
}
