package zset

import (
	"errors"
	"fmt"
)

// ErrNegativeOffset is returned by RangeByScore when offset is negative.
var ErrNegativeOffset = errors.New("zset: offset must be >= 0")

// wrapIncrementErr attaches the member to a ScoreHandler.Sum failure so
// callers can still errors.Is/errors.As through to the underlying cause.
func wrapIncrementErr[M any](member M, err error) error {
	return fmt.Errorf("zset: increment member %v: %w", member, err)
}
