package dfa

import (
	"errors"
	"fmt"
)

// ErrInvalidDefinition is matched (via errors.Is) by every error returned when
// an automaton definition violates a structural invariant.
var ErrInvalidDefinition = errors.New("dfa: invalid definition")

// ErrEmptySet is returned when the state set or the alphabet is empty.
type ErrEmptySet struct {
	// Set names the empty component ("states" or "alphabet").
	Set string
}

func (e *ErrEmptySet) Error() string {
	return fmt.Sprintf("dfa: invalid definition: %s must not be empty", e.Set)
}

func (e *ErrEmptySet) Is(target error) bool { return target == ErrInvalidDefinition }

// ErrUndeclaredState is returned when the start state, an accepting state or a
// transition refers to a state that is not in the state set.
type ErrUndeclaredState struct {
	// Role describes where the state was referenced, e.g. "start state",
	// "accept state", "transition source" or "transition target".
	Role  string
	State State
}

func (e *ErrUndeclaredState) Error() string {
	return fmt.Sprintf("dfa: invalid definition: %s %q is not a declared state", e.Role, e.State)
}

func (e *ErrUndeclaredState) Is(target error) bool { return target == ErrInvalidDefinition }

// ErrUndeclaredSymbol is returned when a transition is labelled with a symbol
// outside the alphabet.
type ErrUndeclaredSymbol struct {
	From   State
	Symbol Symbol
}

func (e *ErrUndeclaredSymbol) Error() string {
	return fmt.Sprintf("dfa: invalid definition: transition from %q on %q uses a symbol outside the alphabet",
		e.From, e.Symbol)
}

func (e *ErrUndeclaredSymbol) Is(target error) bool { return target == ErrInvalidDefinition }

// ErrConflictingTransition is returned when a definition maps the same
// (state, symbol) pair to two different targets. Such a table describes a
// non-deterministic automaton.
type ErrConflictingTransition struct {
	From   State
	Symbol Symbol
	To     State
	Other  State
}

func (e *ErrConflictingTransition) Error() string {
	return fmt.Sprintf("dfa: invalid definition: transition from %q on %q leads to both %q and %q",
		e.From, e.Symbol, e.To, e.Other)
}

func (e *ErrConflictingTransition) Is(target error) bool { return target == ErrInvalidDefinition }
