// Package dijkstra defines the types, sentinel errors and configuration
// options for the battery-constrained shortest-path solver.
//
// See doc.go for the algorithmic contract and FindPath in dijkstra.go for
// the solver itself.
package dijkstra

import "errors"

// Sentinel errors returned by FindPath.
var (
	// ErrNilGraph indicates that a nil *graph.Graph was passed to FindPath.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrInvalidEndpoint indicates that the source or destination node does
	// not exist in the provided graph.
	ErrInvalidEndpoint = errors.New("dijkstra: invalid source or destination node")

	// ErrEmptyGraph indicates that the provided graph contains no nodes.
	ErrEmptyGraph = errors.New("dijkstra: graph is empty")

	// ErrBadBattery signals a non-positive battery budget passed to
	// WithBattery. Surfaced as a panic by the option constructor: a
	// non-positive budget is a programming error, not a runtime condition.
	ErrBadBattery = errors.New("dijkstra: battery budget must be positive")

	// ErrBadMileage signals a non-positive mileage rate passed to
	// WithMileage. Surfaced as a panic by the option constructor; a zero
	// rate would divide by zero inside the consumption model.
	ErrBadMileage = errors.New("dijkstra: mileage rate must be positive")
)

// Defaults applied when the corresponding option is not supplied.
const (
	// DefaultBattery is the battery budget assumed when WithBattery is not used.
	DefaultBattery = int64(100)

	// DefaultMileage is the distance-per-battery-unit divisor assumed when
	// WithMileage is not used. An edge of weight w consumes
	// max(1, w/DefaultMileage) units.
	DefaultMileage = int64(10)
)

// Status messages carried in Result.Status.
const (
	// StatusFound reports a successful route computation.
	StatusFound = "Path found successfully"

	// StatusTrivial reports the degenerate source==destination case.
	StatusTrivial = "Source and destination are the same"

	// StatusInfeasible reports that no route fits the battery budget,
	// including the case where the destination is simply unreachable.
	StatusInfeasible = "No path exists within battery constraints"
)

// Result is the outcome of a single FindPath invocation. It is produced
// once, never mutated afterwards, and safe to copy.
//
// On Feasible=false, Path is empty and the totals are zero; Status explains
// why. Sentinel-error failures return a zero Result alongside the error.
type Result struct {
	// Path is the ordered node sequence from source to destination,
	// inclusive. Empty when no feasible route exists.
	Path []int64

	// TotalDistance is the sum of edge weights along Path.
	TotalDistance int64

	// BatteryUsed is the cumulative battery consumption along Path.
	BatteryUsed int64

	// Feasible reports whether a route within the budget was found.
	Feasible bool

	// Status is a human-readable summary of the outcome.
	Status string
}

// Options configures a FindPath run.
//
// Source, Target — endpoint node IDs; both must exist in the graph unless
// they are equal (the trivial case short-circuits before validation, as the
// degenerate route consumes nothing regardless of the graph).
// Battery       — hard budget on cumulative consumption. Must be positive.
// Mileage       — distance-per-battery-unit divisor. Must be positive.
type Options struct {
	Source  int64 // starting node ID
	Target  int64 // destination node ID
	Battery int64 // battery budget (hard ceiling)
	Mileage int64 // distance units covered per battery unit
}

// Option is a functional option mutating Options before a run.
type Option func(*Options)

// Source sets the starting node ID.
func Source(id int64) Option {
	return func(o *Options) { o.Source = id }
}

// Target sets the destination node ID.
func Target(id int64) Option {
	return func(o *Options) { o.Target = id }
}

// WithBattery sets the battery budget. Panics on non-positive values;
// option constructors validate eagerly so misuse fails at configuration
// time rather than mid-search.
func WithBattery(budget int64) Option {
	if budget <= 0 {
		panic(ErrBadBattery.Error())
	}

	return func(o *Options) { o.Battery = budget }
}

// WithMileage sets the distance-per-battery-unit divisor.
// Panics on non-positive values for the same reason as WithBattery.
func WithMileage(rate int64) Option {
	if rate <= 0 {
		panic(ErrBadMileage.Error())
	}

	return func(o *Options) { o.Mileage = rate }
}

// DefaultOptions returns an Options value for the given endpoints with the
// default battery and mileage. Use it as the starting point for functional
// overrides.
func DefaultOptions(source, target int64) Options {
	return Options{
		Source:  source,
		Target:  target,
		Battery: DefaultBattery,
		Mileage: DefaultMileage,
	}
}
