package dfa

import (
	"fmt"

	"github.com/enetx/g"
)

// Reason classifies why an input was rejected.
type Reason int

const (
	// ReasonNone is the reason of an accepted input.
	ReasonNone Reason = iota
	// ReasonUnknownSymbol: a token outside the alphabet was read.
	ReasonUnknownSymbol
	// ReasonUndefinedTransition: the transition function has no entry for the
	// current state and the token read.
	ReasonUndefinedTransition
	// ReasonNotInAcceptState: the input was consumed but the final state is
	// not accepting.
	ReasonNotInAcceptState
)

func (r Reason) String() string {
	switch r {
	case ReasonNone:
		return "none"
	case ReasonUnknownSymbol:
		return "unknown symbol"
	case ReasonUndefinedTransition:
		return "undefined transition"
	case ReasonNotInAcceptState:
		return "not in accept state"
	default:
		return fmt.Sprintf("Reason(%d)", int(r))
	}
}

// String describes the verdict, e.g. `accepted in "C"` or
// `rejected: unknown symbol "2" at position 0`.
func (v Verdict) String() string {
	if v.Accepted {
		return string(g.Format("accepted in \"{}\"", v.State))
	}

	switch v.Reason {
	case ReasonUnknownSymbol:
		return string(g.Format("rejected: unknown symbol \"{}\" at position {}", v.Symbol, v.Position))
	case ReasonUndefinedTransition:
		return string(g.Format("rejected: undefined transition from \"{}\" on \"{}\" at position {}",
			v.State, v.Symbol, v.Position))
	default:
		return string(g.Format("rejected: final state \"{}\" is not accepting", v.State))
	}
}

// Eq reports whether two verdicts are identical, path included.
func (v Verdict) Eq(o Verdict) bool {
	return v.Accepted == o.Accepted &&
		v.Reason == o.Reason &&
		v.State == o.State &&
		v.Symbol == o.Symbol &&
		v.Position == o.Position &&
		v.Path.Eq(o.Path)
}
