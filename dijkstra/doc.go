// Package dijkstra provides a battery-constrained variant of Dijkstra's
// shortest-path algorithm for a single source/destination pair on weighted
// undirected graphs.
//
// Overview:
//
//   - FindPath computes the minimum-distance route between two nodes such
//     that cumulative battery consumption never exceeds a hard budget.
//   - Traversing an edge of weight w consumes max(1, w/mileage) battery
//     units. The floor of one unit per edge keeps consumption moving even
//     across near-zero-weight edges.
//   - The battery budget is a feasibility filter, not a second objective:
//     among routes that fit the budget, only distance is minimized.
//
// The relaxation keeps a single (distance, batteryUsed) label per node and
// improves it only when the candidate path strictly improves distance while
// staying under budget. It does not maintain a Pareto frontier of
// (distance, battery) pairs, so a destination reachable only through a
// longer-but-thriftier route that lost an intermediate node's label to a
// shorter, hungrier route can be reported infeasible even though a feasible
// route exists. This single-label behavior is part of the package contract;
// callers needing exact resource-constrained routing want a bi-criteria
// search, which this package deliberately is not.
//
// Performance and complexity:
//
//   - Time:  O((V + E) log V)
//   - Each node is extracted from the indexed queue at most once.
//   - Each relaxation is one Insert or DecreaseKey, O(log V) each.
//   - Space: O(V)
//   - Distance, battery and predecessor maps, plus at most one queue
//     entry per node (the indexed queue never holds duplicates).
//
// Error handling (sentinel errors):
//
//   - ErrNilGraph:        the graph argument is nil.
//   - ErrInvalidEndpoint: source or destination is absent from the graph.
//   - ErrEmptyGraph:      the graph has no nodes.
//
// Infeasibility (valid endpoints but no route within the budget, including
// plain disconnection) is not an error: FindPath returns a Result with
// Feasible=false and an explanatory Status. It is an expected, common
// outcome, unlike the sentinel conditions above.
//
// Example usage:
//
//	g := graph.New("demo")
//	g.AddEdge(1, 2, 10)
//	g.AddEdge(2, 3, 10)
//
//	res, err := dijkstra.FindPath(g,
//	    dijkstra.Source(1),
//	    dijkstra.Target(3),
//	    dijkstra.WithBattery(2),
//	    dijkstra.WithMileage(10),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.Path, res.TotalDistance, res.BatteryUsed)
package dijkstra
