package cli

import (
	"github.com/enetx/g"

	"github.com/enetx/dfa"
)

// describe renders a verdict as a sentence for humans.
func describe(input g.String, v dfa.Verdict) g.String {
	if v.Accepted {
		return g.Format("The string \"{}\" is accepted by the DFA.", input)
	}

	var why g.String

	switch v.Reason {
	case dfa.ReasonUnknownSymbol:
		why = g.Format("the symbol \"{}\" doesn't belong to the alphabet", v.Symbol)
	case dfa.ReasonUndefinedTransition:
		why = g.Format("no transition from \"{}\" on \"{}\"", v.State, v.Symbol)
	default:
		why = g.Format("\"{}\" is not an accepting state", v.State)
	}

	return g.Format("The string \"{}\" is rejected by the DFA: {}.", input, why)
}
