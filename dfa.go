// Package dfa implements deterministic finite automata: a validated, immutable
// five-tuple of states, alphabet, transition function, start state and
// accepting states, and a single-pass recognizer that decides whether an input
// sequence belongs to the automaton's language. It is built with types and
// utilities from the github.com/enetx/g library.
package dfa

import (
	"errors"

	"github.com/enetx/g"
	"github.com/enetx/g/cmp"
)

// New validates the five-tuple and returns the automaton it describes.
// The arguments are copied; later changes to them do not affect the result.
// On any violated invariant New returns a nil *DFA and an error matching
// ErrInvalidDefinition.
func New(
	states g.Set[State],
	alphabet g.Set[Symbol],
	start State,
	accept g.Set[State],
	delta g.Map[Key, State],
) (*DFA, error) {
	d := &DFA{
		states:   g.NewSet[State](),
		alphabet: g.NewSet[Symbol](),
		start:    start,
		accept:   g.NewSet[State](),
		delta:    g.NewMap[Key, State](),
	}

	for s := range states {
		d.states.Insert(s)
	}

	for a := range alphabet {
		d.alphabet.Insert(a)
	}

	for s := range accept {
		d.accept.Insert(s)
	}

	for key, to := range delta {
		d.delta[key] = to
	}

	if err := validate(d.states, d.alphabet, d.start, d.accept, d.delta); err != nil {
		return nil, err
	}

	return d, nil
}

// Build validates the definition and returns the automaton it describes.
// Besides the invariants checked by New, it rejects rules that send the same
// (state, symbol) pair to different targets.
func (def Definition) Build() (*DFA, error) {
	delta := g.NewMap[Key, State]()

	var conflicts []error

	for _, r := range def.Transitions {
		key := Key{From: r.From, On: r.On}
		if to, ok := delta[key]; ok {
			if to != r.To {
				conflicts = append(conflicts, &ErrConflictingTransition{From: r.From, Symbol: r.On, To: to, Other: r.To})
			}

			continue
		}

		delta[key] = r.To
	}

	d, err := New(g.SetOf(def.States...), g.SetOf(def.Alphabet...), def.Start, g.SetOf(def.Accept...), delta)

	if len(conflicts) > 0 {
		return nil, errors.Join(append(conflicts, err)...)
	}

	return d, err
}

// Builder assembles a Definition with chained calls.
type Builder struct {
	def Definition
}

// NewBuilder starts a definition with the given start state.
// The start state is not declared implicitly; list it in States.
func NewBuilder(start State) *Builder {
	return &Builder{def: Definition{Start: start}}
}

// States declares states.
func (b *Builder) States(states ...State) *Builder {
	b.def.States.Push(states...)
	return b
}

// Alphabet declares input symbols.
func (b *Builder) Alphabet(symbols ...Symbol) *Builder {
	b.def.Alphabet.Push(symbols...)
	return b
}

// Accept marks states as accepting.
func (b *Builder) Accept(states ...State) *Builder {
	b.def.Accept.Push(states...)
	return b
}

// Transition adds the rule from --on--> to.
func (b *Builder) Transition(from State, on Symbol, to State) *Builder {
	b.def.Transitions.Push(Rule{From: from, On: on, To: to})
	return b
}

// Definition returns a copy of the definition assembled so far.
func (b *Builder) Definition() Definition {
	return Definition{
		States:      b.def.States.Clone(),
		Alphabet:    b.def.Alphabet.Clone(),
		Start:       b.def.Start,
		Accept:      b.def.Accept.Clone(),
		Transitions: b.def.Transitions.Clone(),
	}
}

// Build validates the assembled definition. See Definition.Build.
func (b *Builder) Build() (*DFA, error) { return b.Definition().Build() }

// Start returns the start state.
func (d *DFA) Start() State { return d.start }

// States returns the declared states in ascending order.
func (d *DFA) States() g.Slice[State] {
	states := d.states.ToSlice()
	states.SortBy(cmp.Cmp)

	return states
}

// Alphabet returns the input symbols in ascending order.
func (d *DFA) Alphabet() g.Slice[Symbol] {
	alphabet := d.alphabet.ToSlice()
	alphabet.SortBy(cmp.Cmp)

	return alphabet
}

// AcceptStates returns the accepting states in ascending order.
func (d *DFA) AcceptStates() g.Slice[State] {
	accept := d.accept.ToSlice()
	accept.SortBy(cmp.Cmp)

	return accept
}

// IsAccepting reports whether s is an accepting state.
func (d *DFA) IsAccepting(s State) bool { return d.accept.Contains(s) }

// Next returns δ(from, on). The second result is false when the transition
// function is undefined for the pair.
func (d *DFA) Next(from State, on Symbol) (State, bool) {
	to, ok := d.delta[Key{From: from, On: on}]
	return to, ok
}

// Complete reports whether the transition function is total over
// states × alphabet.
func (d *DFA) Complete() bool { return len(d.delta) == len(d.states)*len(d.alphabet) }

// Definition returns the canonical definition of the automaton: every set
// sorted, transitions ordered by source state then symbol.
func (d *DFA) Definition() Definition {
	rules := make(g.Slice[Rule], 0, len(d.delta))
	for _, key := range sortedKeys(d.delta) {
		rules.Push(Rule{From: key.From, On: key.On, To: d.delta[key]})
	}

	return Definition{
		States:      d.States(),
		Alphabet:    d.Alphabet(),
		Start:       d.start,
		Accept:      d.AcceptStates(),
		Transitions: rules,
	}
}
