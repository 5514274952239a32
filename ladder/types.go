// Package ladder provides tunable options, result types, and error
// definitions for shortest word-ladder search over a wordidx.Index.
package ladder

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for ladder search.
var (
	// ErrIndexNil is returned if a nil index pointer is passed.
	ErrIndexNil = errors.New("ladder: index is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("ladder: invalid option supplied")

	// ErrNoLadder is the sentinel matched by errors.Is when a search
	// exhausts its frontier without reaching the end word.
	ErrNoLadder = errors.New("ladder: no ladder exists")
)

// NoLadderError reports that no transformation sequence connects Start
// to End within the dictionary. It carries the failing pair for
// diagnostic reporting and unwraps to ErrNoLadder.
// It is an expected per-query outcome, not a fault: callers processing
// batches should report it and continue with the remaining pairs.
type NoLadderError struct {
	Start, End string
}

// Error implements the error interface.
func (e *NoLadderError) Error() string {
	return fmt.Sprintf("ladder: no ladder from %q to %q", e.Start, e.End)
}

// Unwrap makes errors.Is(err, ErrNoLadder) hold.
func (e *NoLadderError) Unwrap() error { return ErrNoLadder }

// Option configures ladder search via functional arguments.
// If an Option is invalid (e.g. negative round limit), it is recorded
// internally and surfaced as ErrOptionViolation when Shortest is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize a search.
type Options struct {
	// Ctx allows cancellation and deadlines; checked once per round.
	Ctx context.Context

	// MaxRounds, if > 0, stops expanding beyond this many rounds.
	// A ladder longer than the limit reports as NoLadderError.
	// A value of 0 explicitly disables the limit.
	MaxRounds int

	// OnLayer is called after each completed round with the round's
	// depth (1-based) and the number of nodes it produced.
	OnLayer func(depth, size int)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - context.Background()
//   - no round limit (MaxRounds == 0)
//   - no-op OnLayer hook.
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		MaxRounds: 0,
		OnLayer:   func(int, int) {},
		err:       nil,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxRounds stops the search after the given number of expansion rounds.
//
//	n > 0: limit to n rounds
//	n == 0: explicit no limit
//	n < 0: invalid option → ErrOptionViolation
func WithMaxRounds(n int) Option {
	return func(o *Options) {
		switch {
		case n < 0:
			o.err = fmt.Errorf("%w: MaxRounds cannot be negative (%d)", ErrOptionViolation, n)
		case n == 0:
			// explicit "no limit"
			o.MaxRounds = 0
		default:
			o.MaxRounds = n
		}
	}
}

// WithOnLayer registers a callback observing each completed round.
func WithOnLayer(fn func(depth, size int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnLayer = fn
		}
	}
}

// Result holds a shortest ladder: the ordered words from start to end
// inclusive, each consecutive pair differing in exactly one position.
type Result struct {
	Words []string
}

// Len reports the ladder length in edges: len(Words) - 1.
// A trivial start == end ladder has length 0.
func (r *Result) Len() int { return len(r.Words) - 1 }
