package dfa

import (
	"iter"
	"slices"
	"unicode/utf8"

	"github.com/enetx/g"
)

// NewRun starts a walk at the start state.
func (d *DFA) NewRun() *Run {
	return &Run{
		dfa:     d,
		current: d.start,
		path:    g.Slice[State]{d.start},
	}
}

// Current returns the state the walk is in.
func (r *Run) Current() State { return r.current }

// Path returns a copy of the visited states, start state first.
func (r *Run) Path() g.Slice[State] { return r.path.Clone() }

// Halted reports whether the walk stopped early on an unknown symbol or an
// undefined transition.
func (r *Run) Halted() bool { return r.halt != nil }

// Step consumes one symbol. It returns false once the walk has halted, either
// on this symbol or earlier; further calls are no-ops.
func (r *Run) Step(sym Symbol) bool {
	if r.halt != nil {
		return false
	}

	if !r.dfa.alphabet.Contains(sym) {
		r.stop(ReasonUnknownSymbol, sym)
		return false
	}

	next, ok := r.dfa.delta[Key{From: r.current, On: sym}]
	if !ok {
		r.stop(ReasonUndefinedTransition, sym)
		return false
	}

	r.current = next
	r.path.Push(next)
	r.consumed++

	return true
}

func (r *Run) stop(reason Reason, sym Symbol) {
	r.halt = &Verdict{
		Reason:   reason,
		State:    r.current,
		Symbol:   sym,
		Position: r.consumed,
	}
}

// Verdict returns the outcome of the walk so far: the halting verdict if the
// walk stopped early, otherwise acceptance of the current state.
func (r *Run) Verdict() Verdict {
	if r.halt != nil {
		v := *r.halt
		v.Path = r.path.Clone()

		return v
	}

	v := Verdict{
		Accepted: true,
		State:    r.current,
		Position: r.consumed,
		Path:     r.path.Clone(),
	}

	if !r.dfa.accept.Contains(r.current) {
		v.Accepted = false
		v.Reason = ReasonNotInAcceptState
	}

	return v
}

// Process runs input through the automaton in a single pass. It stops reading
// at the first symbol outside the alphabet or the first undefined transition.
// Process never fails: every input, including an empty one, yields a Verdict.
func (d *DFA) Process(input g.Slice[Symbol]) Verdict {
	return d.ProcessSeq(slices.Values(input))
}

// ProcessSeq is Process over an iterator. No token past a halting one is pulled.
func (d *DFA) ProcessSeq(seq iter.Seq[Symbol]) Verdict {
	r := d.NewRun()

	for sym := range seq {
		if !r.Step(sym) {
			break
		}
	}

	return r.Verdict()
}

// ProcessString runs s through the automaton, one rune per symbol.
// A byte that is not part of valid UTF-8 is read as a one-byte symbol of its
// own, so it is reported as written rather than as U+FFFD.
func (d *DFA) ProcessString(s g.String) Verdict {
	return d.ProcessSeq(func(yield func(Symbol) bool) {
		for i := 0; i < len(s); {
			_, size := utf8.DecodeRuneInString(string(s[i:]))
			if !yield(Symbol(s[i : i+size])) {
				return
			}

			i += size
		}
	})
}

// Accepts reports whether s, read one rune per symbol, is in the language.
func (d *DFA) Accepts(s g.String) bool { return d.ProcessString(s).Accepted }
