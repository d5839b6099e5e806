package zset

import (
	"cmp"

	"golang.org/x/exp/constraints"
)

// ScoreHandler supplies a total order over scores plus a way to combine
// a score with an increment. Implementations must treat scores as
// immutable: Sum must return a fresh value, never mutate either argument.
type ScoreHandler[S any] interface {
	// Compare returns a negative number if a < b, zero if a == b under
	// this order, and a positive number if a > b.
	Compare(a, b S) int
	// Sum returns old combined with delta. It may return an error if the
	// combination is not defined for this score type (e.g. a handler
	// that does not support negative increments).
	Sum(old, delta S) (S, error)
}

// MemberOrder supplies a total order over members, used to break ties
// between members that share a score. Equality under this order must
// coincide with the identity used by the membership map (Go's ==, since
// members are constrained to be comparable).
type MemberOrder[M any] interface {
	Compare(a, b M) int
}

// Numeric is the set of scalar types for which ordinary addition defines
// a sensible Sum.
type Numeric interface {
	constraints.Integer | constraints.Float
}

// NumericScores is the default ScoreHandler for any ordered numeric
// type. Sum is plain addition and never errors.
type NumericScores[S Numeric] struct{}

func (NumericScores[S]) Compare(a, b S) int { return cmp.Compare(a, b) }

func (NumericScores[S]) Sum(old, delta S) (S, error) { return old + delta, nil }

// OrderedMembers is the default MemberOrder for any cmp.Ordered member
// type (integers, floats, strings).
type OrderedMembers[M cmp.Ordered] struct{}

func (OrderedMembers[M]) Compare(a, b M) int { return cmp.Compare(a, b) }
