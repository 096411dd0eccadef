// Command evrange-route solves one battery-constrained routing request.
//
// It reads a graph file and a route request file, runs the solver, writes
// the result JSON and prints a human-readable summary. Infeasible routes
// are a normal outcome (exit 0, success=false in the result file); only
// I/O problems and invalid parameters exit non-zero.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/voltano/evrange/dijkstra"
	"github.com/voltano/evrange/graphio"
)

func main() {
	var (
		graphPath  = flag.String("graph", "graph.json", "graph file to route on")
		inputPath  = flag.String("input", "route_input.json", "route request file")
		outputPath = flag.String("output", "route.json", "route result file to write")
	)
	flag.Parse()

	g, err := graphio.LoadGraph(*graphPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "could not read graph: %v\n", err)
		os.Exit(1)
	}

	req, err := graphio.LoadRouteRequest(*inputPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "could not read route request: %v\n", err)
		os.Exit(1)
	}
	if err := req.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "invalid route request: %v\n", err)
		os.Exit(1)
	}

	res, err := dijkstra.FindPath(g,
		dijkstra.Source(req.Source),
		dijkstra.Target(req.Destination),
		dijkstra.WithBattery(req.Battery),
		dijkstra.WithMileage(req.Mileage),
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "routing failed: %v\n", err)
		os.Exit(1)
	}

	out := graphio.NewRouteResult(res, req.Battery)
	if err := graphio.SaveRouteResult(out, *outputPath); err != nil {
		fmt.Fprintf(os.Stderr, "could not write result: %v\n", err)
		os.Exit(1)
	}

	if res.Feasible {
		fmt.Printf("Path found: %s\n", formatPath(res.Path))
		fmt.Printf("Total distance: %d\n", res.TotalDistance)
		fmt.Printf("Battery used: %d/%d\n", res.BatteryUsed, req.Battery)
	} else {
		fmt.Printf("Pathfinding failed: %s\n", res.Status)
	}
}

// formatPath renders a route as "1 -> 2 -> 3".
func formatPath(path []int64) string {
	parts := make([]string, len(path))
	for i, id := range path {
		parts[i] = fmt.Sprintf("%d", id)
	}

	return strings.Join(parts, " -> ")
}
