package dfa

import "github.com/enetx/g"

type (
	// State identifies a state of the automaton.
	State g.String
	// Symbol identifies a letter of the input alphabet.
	Symbol g.String

	// Key indexes the transition function: the state the automaton is in and
	// the symbol it reads.
	Key struct {
		From State
		On   Symbol
	}

	// Rule is a single entry of the transition function in its serialisable form.
	Rule struct {
		From State  `json:"from" yaml:"from"`
		On   Symbol `json:"on"   yaml:"on"`
		To   State  `json:"to"   yaml:"to"`
	}

	// Definition is the five-tuple (Q, Σ, δ, q0, F) as supplied by a caller.
	// Slices stand in for sets; repeated entries collapse.
	Definition struct {
		States      g.Slice[State]  `json:"states"      yaml:"states"`
		Alphabet    g.Slice[Symbol] `json:"alphabet"    yaml:"alphabet"`
		Start       State           `json:"start"       yaml:"start"`
		Accept      g.Slice[State]  `json:"accept"      yaml:"accept"`
		Transitions g.Slice[Rule]   `json:"transitions" yaml:"transitions"`
	}

	// DFA is a validated, immutable deterministic finite automaton.
	// A *DFA may be shared by any number of goroutines.
	DFA struct {
		states   g.Set[State]
		alphabet g.Set[Symbol]
		start    State
		accept   g.Set[State]
		delta    g.Map[Key, State]
	}

	// Run is the execution context of a single walk over an input.
	// It is owned by one caller and must not be shared.
	Run struct {
		dfa      *DFA
		current  State
		path     g.Slice[State]
		consumed int
		halt     *Verdict
	}

	// Verdict is the outcome of running an input through a DFA.
	Verdict struct {
		// Accepted reports whether the input belongs to the language.
		Accepted bool
		// Reason is ReasonNone for accepted input, otherwise why it was rejected.
		Reason Reason
		// State is the state the walk ended in.
		State State
		// Symbol is the offending token for ReasonUnknownSymbol and
		// ReasonUndefinedTransition.
		Symbol Symbol
		// Position is the index of the offending token, or the input length
		// when the whole input was consumed.
		Position int
		// Path lists the visited states, start state first.
		Path g.Slice[State]
	}
)
