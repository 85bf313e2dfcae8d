package dfa

import (
	"cmp"
	"errors"
	"slices"

	"github.com/enetx/g"
)

// validate checks the structural invariants of an automaton and returns every
// violation, in a stable order, joined into one error.
func validate(
	states g.Set[State],
	alphabet g.Set[Symbol],
	start State,
	accept g.Set[State],
	delta g.Map[Key, State],
) error {
	var errs []error

	if len(states) == 0 {
		errs = append(errs, &ErrEmptySet{Set: "states"})
	}

	if len(alphabet) == 0 {
		errs = append(errs, &ErrEmptySet{Set: "alphabet"})
	}

	if !states.Contains(start) {
		errs = append(errs, &ErrUndeclaredState{Role: "start state", State: start})
	}

	for _, s := range sorted(accept.ToSlice()) {
		if !states.Contains(s) {
			errs = append(errs, &ErrUndeclaredState{Role: "accept state", State: s})
		}
	}

	for _, key := range sortedKeys(delta) {
		if !states.Contains(key.From) {
			errs = append(errs, &ErrUndeclaredState{Role: "transition source", State: key.From})
		}

		if !alphabet.Contains(key.On) {
			errs = append(errs, &ErrUndeclaredSymbol{From: key.From, Symbol: key.On})
		}

		if to := delta[key]; !states.Contains(to) {
			errs = append(errs, &ErrUndeclaredState{Role: "transition target", State: to})
		}
	}

	return errors.Join(errs...)
}

func sorted[T ~string](s g.Slice[T]) g.Slice[T] {
	slices.Sort(s)
	return s
}

func sortedKeys(delta g.Map[Key, State]) []Key {
	keys := make([]Key, 0, len(delta))
	for key := range delta {
		keys = append(keys, key)
	}

	slices.SortFunc(keys, func(a, b Key) int {
		return cmp.Or(cmp.Compare(a.From, b.From), cmp.Compare(a.On, b.On))
	})

	return keys
}
