package zset

// ScoreRange describes a score interval with optionally-exclusive
// endpoints: [Min, Max] by default, or (Min, Max), [Min, Max), (Min, Max]
// depending on MinExclusive/MaxExclusive.
type ScoreRange[S any] struct {
	Min, Max     S
	MinExclusive bool
	MaxExclusive bool
}
