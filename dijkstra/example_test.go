// Package dijkstra_test provides runnable examples for the
// battery-constrained solver, verified via "go test -run Example".
package dijkstra_test

import (
	"fmt"

	"github.com/voltano/evrange/dijkstra"
	"github.com/voltano/evrange/graph"
)

// ExampleFindPath demonstrates a feasible route on the three-node corridor.
// With mileage 10 each edge consumes exactly one battery unit.
func ExampleFindPath() {
	// 1) Build the corridor 1 —10— 2 —10— 3.
	g := graph.New("corridor")
	_ = g.AddEdge(1, 2, 10)
	_ = g.AddEdge(2, 3, 10)

	// 2) Ask for 1 → 3 with a budget of two battery units.
	res, err := dijkstra.FindPath(g,
		dijkstra.Source(1),
		dijkstra.Target(3),
		dijkstra.WithBattery(2),
		dijkstra.WithMileage(10),
	)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	// 3) The route takes both edges: 20 distance units, 2 battery units.
	fmt.Printf("path=%v distance=%d battery=%d\n", res.Path, res.TotalDistance, res.BatteryUsed)
	// Output: path=[1 2 3] distance=20 battery=2
}

// ExampleFindPath_infeasible shows that running out of budget is an expected
// outcome reported through the Result, not an error.
func ExampleFindPath_infeasible() {
	g := graph.New("corridor")
	_ = g.AddEdge(1, 2, 10)
	_ = g.AddEdge(2, 3, 10)

	// One battery unit cannot cover the two edges to node 3.
	res, err := dijkstra.FindPath(g,
		dijkstra.Source(1),
		dijkstra.Target(3),
		dijkstra.WithBattery(1),
		dijkstra.WithMileage(10),
	)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	fmt.Printf("feasible=%v status=%q\n", res.Feasible, res.Status)
	// Output: feasible=false status="No path exists within battery constraints"
}
