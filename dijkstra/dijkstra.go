package dijkstra

import (
	"fmt"
	"math"

	"github.com/voltano/evrange/graph"
	"github.com/voltano/evrange/minheap"
)

// infinity is the "not yet reached" sentinel for distance and battery maps.
const infinity = int64(math.MaxInt64)

// FindPath computes the minimum-distance route from Options.Source to
// Options.Target whose cumulative battery consumption stays within
// Options.Battery. See the package documentation for the consumption model
// and the single-label limitation.
//
// Validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. Source == Target short-circuits to a trivial single-node route.
//  3. Both endpoints must exist in g (ErrInvalidEndpoint).
//  4. g must contain at least one node (ErrEmptyGraph).
//
// Returns:
//
//   - Result: route, totals, feasibility flag and status message.
//     Infeasibility is reported through the Result, not the error.
//   - err: one of the sentinel errors above, or a wrapped internal error
//     if the queue invariants are ever violated (a solver bug, not a data
//     condition).
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V)
func FindPath(g *graph.Graph, opts ...Option) (Result, error) {
	// 1) Build the effective options from defaults plus overrides.
	cfg := DefaultOptions(0, 0)
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate the graph handle before touching it.
	if g == nil {
		return Result{}, ErrNilGraph
	}

	// 3) Degenerate route: nothing to traverse, nothing consumed.
	//    Checked before endpoint validation so the answer does not depend
	//    on the graph at all.
	if cfg.Source == cfg.Target {
		return Result{
			Path:     []int64{cfg.Source},
			Feasible: true,
			Status:   StatusTrivial,
		}, nil
	}

	// 4) Both endpoints must exist; no partial computation otherwise.
	if !g.HasNode(cfg.Source) || !g.HasNode(cfg.Target) {
		return Result{}, ErrInvalidEndpoint
	}

	// 5) Guard the empty graph explicitly, mirroring the endpoint check.
	if g.NodeCount() == 0 {
		return Result{}, ErrEmptyGraph
	}

	// 6) Run the search with per-run state; the graph is only read.
	r := &runner{
		g:       g,
		options: cfg,
		dist:    make(map[int64]int64, g.NodeCount()),
		used:    make(map[int64]int64, g.NodeCount()),
		prev:    make(map[int64]int64, g.NodeCount()),
		pq:      minheap.New(),
	}

	r.init()
	if err := r.process(); err != nil {
		return Result{}, err
	}

	return r.result(), nil
}

// runner holds the mutable state of a single FindPath execution.
type runner struct {
	g       *graph.Graph    // input graph; read-only during the run
	options Options         // effective configuration
	dist    map[int64]int64 // node ID → best known distance from source
	used    map[int64]int64 // node ID → battery consumed along that best path
	prev    map[int64]int64 // node ID → predecessor on the best path
	pq      *minheap.MinHeap
}

// init seeds per-node state and queues the source.
func (r *runner) init() {
	// 1) Every node starts unreachable: infinite distance and consumption,
	//    no predecessor (absence from prev is the "none" marker).
	for _, n := range r.g.Nodes() {
		r.dist[n.ID] = infinity
		r.used[n.ID] = infinity
	}

	// 2) The source costs nothing to reach.
	r.dist[r.options.Source] = 0
	r.used[r.options.Source] = 0

	// 3) Seed the queue with (source, 0).
	r.pq.Insert(r.options.Source, 0)
}

// process is the main extraction loop. It settles nodes in increasing
// distance order and stops early once the target is extracted; this is safe
// because weights and battery costs are non-negative, so no later
// extraction can improve on an already settled distance.
func (r *runner) process() error {
	for !r.pq.IsEmpty() {
		// 1) Extract the unsettled node with the smallest distance.
		u, _, err := r.pq.ExtractMin()
		if err != nil {
			// Unreachable given the IsEmpty guard; wrap rather than drop.
			return fmt.Errorf("dijkstra: queue invariant violated: %w", err)
		}

		// 2) Early exit: the target's distance is final once extracted.
		if u == r.options.Target {
			break
		}

		// 3) Relax every edge out of u.
		if err := r.relax(u); err != nil {
			return err
		}
	}

	return nil
}

// relax attempts to improve each neighbor of u through the edge u—v,
// subject to the battery ceiling.
//
// Assumes dist[u] and used[u] are finalized before the call.
func (r *runner) relax(u int64) error {
	nbrs, err := r.g.Neighbors(u)
	if err != nil {
		// A queued node vanished from the graph mid-run; the read-only
		// contract was broken by the caller.
		return fmt.Errorf("dijkstra: neighbors of %d: %w", u, err)
	}

	for _, nb := range nbrs {
		v, w := nb.ID, nb.Weight

		// 1) Battery charge for this edge: distance-proportional with a
		//    floor of one unit, so cheap edges still drain the budget.
		cost := w / r.options.Mileage
		if cost < 1 {
			cost = 1
		}

		// 2) Candidate cumulative figures for reaching v through u.
		newUsed := r.used[u] + cost
		newDist := r.dist[u] + w

		// 3) Relax only when the candidate fits the budget AND strictly
		//    improves distance. The budget test is on this candidate
		//    path's own consumption; v keeps a single label (see doc.go).
		if newUsed > r.options.Battery || newDist >= r.dist[v] {
			continue
		}

		r.dist[v] = newDist
		r.used[v] = newUsed
		r.prev[v] = u

		// 4) Queue or re-prioritize v under its improved distance.
		if r.pq.Contains(v) {
			if err := r.pq.DecreaseKey(v, newDist); err != nil {
				return fmt.Errorf("dijkstra: decrease-key for %d: %w", v, err)
			}
		} else {
			r.pq.Insert(v, newDist)
		}
	}

	return nil
}

// result assembles the final Result, reconstructing the route by walking
// predecessor links backwards from the target.
func (r *runner) result() Result {
	target := r.options.Target

	// Unreached target means no route fit the budget.
	if r.dist[target] == infinity {
		return Result{Status: StatusInfeasible}
	}

	// Walk target → source; the source has no prev entry, ending the walk.
	var path []int64
	cur := target
	for {
		path = append(path, cur)
		p, ok := r.prev[cur]
		if !ok {
			break
		}
		cur = p
	}

	// Reverse in place to get source → target order.
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return Result{
		Path:          path,
		TotalDistance: r.dist[target],
		BatteryUsed:   r.used[target],
		Feasible:      true,
		Status:        StatusFound,
	}
}
