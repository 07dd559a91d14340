package impl

import (
	"context"
	"time"
)

// stageOutcome is the result of a stage whose failure must not fail the caller.
// Err is kept for logging; Value is always usable.
type stageOutcome[T any] struct {
	Value T
	Err   error
}

// Degraded reports whether the stage fell back.
func (o stageOutcome[T]) Degraded() bool {
	return o.Err != nil
}

// bestEffort runs fn detached from the caller's cancellation and bounded by timeout.
// On error the outcome carries fallback as its value.
func bestEffort[T any](ctx context.Context, timeout time.Duration, fallback T, fn func(context.Context) (T, error)) stageOutcome[T] {
	stageCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), timeout)
	defer cancel()

	value, err := fn(stageCtx)
	if err != nil {
		return stageOutcome[T]{Value: fallback, Err: err}
	}

	return stageOutcome[T]{Value: value}
}
