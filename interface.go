package dfa

import (
	"iter"

	"github.com/enetx/g"
)

// Recognizer decides membership of input sequences in a language.
type Recognizer interface {
	Process(g.Slice[Symbol]) Verdict
	ProcessSeq(iter.Seq[Symbol]) Verdict
	ProcessString(g.String) Verdict
	Accepts(g.String) bool
}

// Interface compliance check.
var _ Recognizer = (*DFA)(nil)
