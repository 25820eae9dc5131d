// Package mincut defines configuration options and sentinel errors for
// randomized minimum-cut estimation.
package mincut

import (
	"errors"
	"math"
	"math/rand"
)

// Sentinel errors returned by Karger.
var (
	// ErrNilGraph indicates a nil *core.Graph was passed in.
	ErrNilGraph = errors.New("mincut: graph is nil")

	// ErrTooSmall indicates the graph holds fewer than two vertices, so no
	// cut exists.
	ErrTooSmall = errors.New("mincut: graph needs at least two vertices")

	// ErrDeclined indicates the caller-supplied confirmation gate rejected
	// the run after seeing the trial count.
	ErrDeclined = errors.New("mincut: estimation declined by confirmation gate")

	// ErrBadTrialFactor indicates a non-positive trial factor.
	ErrBadTrialFactor = errors.New("mincut: trial factor must be positive")
)

// DefaultTrialFactor scales the standard Karger trial bound. Factor 1 keeps
// the full round(n² ln n) trial count.
const DefaultTrialFactor = 1.0

// Trials returns the number of contraction trials run for an n-vertex
// graph at the given confidence factor: round(factor · n² · ln n), and at
// least 1 for any n ≥ 2. Under the standard contraction bound a single
// trial succeeds with probability ≥ 2/(n(n-1)), so n² ln n independent
// trials drive the failure probability below 1/n².
func Trials(n int, factor float64) int {
	if n < 2 {
		return 0
	}
	t := int(math.Round(factor * float64(n) * float64(n) * math.Log(float64(n))))
	if t < 1 {
		t = 1
	}

	return t
}

// Options configures a Karger run.
type Options struct {
	// TrialFactor scales the round(n² ln n) trial bound. Default 1.
	TrialFactor float64

	// TrialOverride, when positive, fixes the trial count outright and
	// bypasses the bound entirely.
	TrialOverride int

	// Confirm, when non-nil, is shown the trial count before any work
	// starts; returning false aborts with ErrDeclined.
	Confirm func(trials int) bool

	// Progress, when non-nil, is invoked after each completed trial with
	// (done, total). Invocations are serialized even under parallelism.
	Progress func(done, total int)

	// Rand supplies the randomness source. Default: a fresh source seeded
	// from the global generator. Trials under parallelism each derive an
	// independent source from it.
	Rand *rand.Rand

	// Parallelism bounds the number of concurrently running trials.
	// Values below 2 run trials sequentially.
	Parallelism int
}

// Option is a functional option for configuring Karger.
type Option func(*Options)

// WithTrialFactor scales the trial bound; factor must be positive.
func WithTrialFactor(factor float64) Option {
	return func(o *Options) {
		if factor <= 0 {
			panic(ErrBadTrialFactor.Error())
		}
		o.TrialFactor = factor
	}
}

// WithTrials fixes the trial count outright, bypassing the n² ln n bound.
// Lower counts trade confidence for speed.
func WithTrials(trials int) Option {
	return func(o *Options) { o.TrialOverride = trials }
}

// WithConfirm installs an accept/decline gate consulted with the trial
// count before estimation starts. Declining aborts with ErrDeclined.
func WithConfirm(fn func(trials int) bool) Option {
	return func(o *Options) { o.Confirm = fn }
}

// WithProgress installs a per-trial completion hook, e.g. for console
// progress rendering.
func WithProgress(fn func(done, total int)) Option {
	return func(o *Options) { o.Progress = fn }
}

// WithRand sets the randomness source, making runs reproducible.
func WithRand(r *rand.Rand) Option {
	return func(o *Options) {
		if r != nil {
			o.Rand = r
		}
	}
}

// WithParallelism runs up to k trials concurrently. Each trial operates on
// its own disjoint copy of the store, so trials share no mutable state.
func WithParallelism(k int) Option {
	return func(o *Options) { o.Parallelism = k }
}

// DefaultOptions returns the baseline configuration: full trial bound,
// sequential execution, no gate, no progress hook.
func DefaultOptions() Options {
	return Options{
		TrialFactor: DefaultTrialFactor,
	}
}
