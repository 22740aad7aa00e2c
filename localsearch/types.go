// Package localsearch defines the problem contract, options and run results
// for hill climbing.
package localsearch

// DefaultMaxIterations is the budget used by DefaultOptions.
const DefaultMaxIterations = 1000

// Problem is the capability contract a search state must satisfy.
//
//   - Successors returns the states reachable in one move. The slice must be
//     finite and may be empty (a dead end). It must not mutate the receiver.
//   - Evaluate returns the score of the receiver. It must be a pure function
//     of the state: the search relies on repeated calls agreeing.
//
// T is normally the implementing type itself, e.g. Problem[Tour, float64].
type Problem[T any, S any] interface {
	Successors() []T
	Evaluate() S
}

// StopReason tells which transition ended a run.
type StopReason int

const (
	// StopBudget: the iteration budget was used up (or was zero).
	StopBudget StopReason = iota

	// StopDeadEnd: the current state has no successors.
	StopDeadEnd

	// StopLocalOptimum: no successor scores strictly higher than the current state.
	StopLocalOptimum
)

// String implements fmt.Stringer.
func (r StopReason) String() string {
	switch r {
	case StopBudget:
		return "budget"
	case StopDeadEnd:
		return "dead-end"
	case StopLocalOptimum:
		return "local-optimum"
	default:
		return "unknown"
	}
}

// Step describes one accepted move and is passed to the OnStep hook.
type Step struct {
	// Iteration is the 1-based loop iteration that produced the move.
	Iteration int

	// Accepted is the number of moves taken so far, including this one.
	Accepted int

	// Candidates is the number of successors that were scored.
	Candidates int

	// Score is the score of the newly adopted state.
	Score any
}

// Option configures a run via functional arguments.
type Option func(*Options)

// Options holds the iteration budget and hooks of a run.
type Options struct {
	// MaxIterations caps the number of loop iterations. Values ≤ 0 mean
	// the initial state is returned without generating any successors.
	MaxIterations int

	// OnStep is called after every accepted move.
	OnStep func(Step)
}

// DefaultOptions returns Options with sane defaults:
//   - MaxIterations = DefaultMaxIterations
//   - no-op OnStep hook
func DefaultOptions() Options {
	return Options{
		MaxIterations: DefaultMaxIterations,
		OnStep:        func(Step) {},
	}
}

// WithMaxIterations sets the iteration budget.
func WithMaxIterations(n int) Option {
	return func(o *Options) {
		o.MaxIterations = n
	}
}

// WithOnStep registers a callback run after every accepted move.
func WithOnStep(fn func(Step)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnStep = fn
		}
	}
}

func buildOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// Result is the outcome of a traced run.
type Result[T any, S any] struct {
	// State is the final current state.
	State T

	// Score is State.Evaluate().
	Score S

	// Iterations counts executed loop bodies (each one generates successors).
	Iterations int

	// Accepted counts adopted moves; always ≤ Iterations.
	Accepted int

	// Evaluations counts calls to Evaluate made by the search.
	Evaluations int

	// Reason tells why the run ended.
	Reason StopReason
}
