// Package cli implements the dfa command: it loads an automaton definition,
// feeds inputs to it and reports the verdicts.
package cli

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/enetx/dfa"
)

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

type options struct {
	def   string
	debug bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:          "dfa",
		Short:        "Run inputs through a deterministic finite automaton",
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVarP(&opts.def, "def", "d", "",
		"automaton definition (.yaml, .yml or .json); defaults to the built-in example")
	cmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "enable debug logging to stderr")

	cmd.AddCommand(runCmd(opts), checkCmd(opts), showCmd(opts))
	return cmd
}

// load returns the automaton selected by --def and a logger for the command.
func (o *options) load(cmd *cobra.Command) (*dfa.DFA, *slog.Logger, error) {
	log := newLogger(cmd.ErrOrStderr(), o.debug)

	if o.def == "" {
		d, err := example()
		if err != nil {
			return nil, log, err
		}

		log.Debug("definition.loaded", "source", "builtin", "states", len(d.States()))
		return d, log, nil
	}

	d, err := dfa.LoadFile(o.def)
	if err != nil {
		log.Debug("definition.invalid", "path", o.def, "err", err)
		return nil, log, err
	}

	log.Debug("definition.loaded", "source", o.def, "states", len(d.States()), "complete", d.Complete())
	return d, log, nil
}

// example is the automaton over {0,1} whose language is the strings ending
// in "01".
func example() (*dfa.DFA, error) {
	return dfa.NewBuilder("A").
		States("A", "B", "C").
		Alphabet("0", "1").
		Accept("C").
		Transition("A", "0", "B").
		Transition("A", "1", "A").
		Transition("B", "0", "B").
		Transition("B", "1", "C").
		Transition("C", "0", "B").
		Transition("C", "1", "A").
		Build()
}
