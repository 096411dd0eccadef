// Package graphio persists routing instances and results as JSON files,
// using the flat file shapes of the surrounding tooling:
//
//	graph file:        {"name", "nodes":[{"id","x","y"}], "edges":[{"from","to","weight"}]}
//	generator request: {"nodeCount", "method"}
//	route request:     {"source", "destination", "battery", "mileage"}
//	route result:      {"success", "message", "path", "totalDistance",
//	                    "totalBatteryUsed", "batteryRemaining"}
//
// Encoding is deterministic: nodes are written sorted by ID and each
// undirected edge exactly once, emitted from its smaller endpoint. Requests
// decode over pre-filled defaults, so absent fields fall back rather than
// zeroing out.
package graphio

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/voltano/evrange/dijkstra"
	"github.com/voltano/evrange/graph"
)

// ErrNonPositiveParam indicates a route request carried a zero or negative
// battery or mileage. The solver's consumption model divides by mileage, so
// requests must be rejected before invoking it.
var ErrNonPositiveParam = errors.New("graphio: battery and mileage must be positive")

// Defaults applied to request fields absent from the JSON input.
const (
	DefaultNodeCount   = 10
	DefaultMethod      = "random"
	DefaultSource      = int64(1)
	DefaultDestination = int64(2)
)

// jsonIndent matches the 4-space pretty-printing of the companion tooling.
const jsonIndent = "    "

// nodeJSON is the wire shape of one graph node.
type nodeJSON struct {
	ID int64   `json:"id"`
	X  float64 `json:"x"`
	Y  float64 `json:"y"`
}

// edgeJSON is the wire shape of one undirected edge.
type edgeJSON struct {
	From   int64 `json:"from"`
	To     int64 `json:"to"`
	Weight int64 `json:"weight"`
}

// graphJSON is the wire shape of a complete instance file.
type graphJSON struct {
	Name  string     `json:"name"`
	Nodes []nodeJSON `json:"nodes"`
	Edges []edgeJSON `json:"edges"`
}

// GenRequest parameterizes instance generation.
type GenRequest struct {
	// NodeCount is the number of nodes to generate. Defaults to 10.
	NodeCount int `json:"nodeCount"`

	// Method selects the topology ("random" or "sliding_window").
	// Defaults to "random".
	Method string `json:"method"`
}

// RouteRequest parameterizes one solver invocation.
type RouteRequest struct {
	// Source and Destination are the endpoint node IDs. Default 1 and 2.
	Source      int64 `json:"source"`
	Destination int64 `json:"destination"`

	// Battery is the consumption budget. Defaults to dijkstra.DefaultBattery.
	Battery int64 `json:"battery"`

	// Mileage is the distance-per-battery-unit divisor.
	// Defaults to dijkstra.DefaultMileage.
	Mileage int64 `json:"mileage"`
}

// Validate rejects parameter combinations the solver's contract leaves
// undefined. Returns ErrNonPositiveParam for zero or negative battery or
// mileage.
func (r RouteRequest) Validate() error {
	if r.Battery <= 0 || r.Mileage <= 0 {
		return ErrNonPositiveParam
	}

	return nil
}

// RouteResult is the wire shape of a solver outcome. On failure only the
// success flag and the message are serialized; the route fields appear on
// success alone, where explicit zeros are meaningful (the trivial
// single-node route legitimately reports distance 0).
type RouteResult struct {
	Success          bool    `json:"success"`
	Message          string  `json:"message"`
	Path             []int64 `json:"path,omitempty"`
	TotalDistance    int64   `json:"totalDistance"`
	TotalBatteryUsed int64   `json:"totalBatteryUsed"`
	BatteryRemaining int64   `json:"batteryRemaining"`
}

// MarshalJSON emits the two-field failure document when Success is false.
// A plain omitempty cannot express this: the totals must be omitted on
// failure yet present as zeros on a zero-cost success.
func (r RouteResult) MarshalJSON() ([]byte, error) {
	if !r.Success {
		return json.Marshal(struct {
			Success bool   `json:"success"`
			Message string `json:"message"`
		}{Success: r.Success, Message: r.Message})
	}

	// Alias drops the method set, so the full shape marshals plainly.
	type full RouteResult

	return json.Marshal(full(r))
}

// NewRouteResult converts a solver Result into its wire shape.
// battery is the budget of the originating request, used to report the
// remaining charge on success.
func NewRouteResult(res dijkstra.Result, battery int64) RouteResult {
	out := RouteResult{
		Success: res.Feasible,
		Message: res.Status,
	}
	if res.Feasible {
		out.Path = res.Path
		out.TotalDistance = res.TotalDistance
		out.TotalBatteryUsed = res.BatteryUsed
		out.BatteryRemaining = battery - res.BatteryUsed
	}

	return out
}

// EncodeGraph serializes g into the instance file shape with 4-space
// indentation. Nodes appear sorted by ID; every undirected edge appears
// exactly once, written from its smaller endpoint.
func EncodeGraph(g *graph.Graph) ([]byte, error) {
	doc := graphJSON{Name: g.Name()}

	for _, n := range g.Nodes() {
		doc.Nodes = append(doc.Nodes, nodeJSON{ID: n.ID, X: n.X, Y: n.Y})

		nbrs, err := g.Neighbors(n.ID)
		if err != nil {
			return nil, fmt.Errorf("graphio: encode neighbors of %d: %w", n.ID, err)
		}
		for _, nb := range nbrs {
			// Dedup: emit from the smaller endpoint only (loops qualify).
			if n.ID <= nb.ID {
				doc.Edges = append(doc.Edges, edgeJSON{From: n.ID, To: nb.ID, Weight: nb.Weight})
			}
		}
	}

	return json.MarshalIndent(doc, "", jsonIndent)
}

// DecodeGraph parses an instance file back into a Graph. Edges are rebuilt
// through graph.AddEdge, so adjacency symmetry holds by construction.
func DecodeGraph(data []byte) (*graph.Graph, error) {
	var doc graphJSON
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("graphio: decode graph: %w", err)
	}

	g := graph.New(doc.Name)
	for _, n := range doc.Nodes {
		g.AddNode(n.ID, n.X, n.Y)
	}
	for _, e := range doc.Edges {
		if err := g.AddEdge(e.From, e.To, e.Weight); err != nil {
			return nil, fmt.Errorf("graphio: decode edge %d-%d: %w", e.From, e.To, err)
		}
	}

	return g, nil
}

// SaveGraph writes g to path in the instance file shape.
func SaveGraph(g *graph.Graph, path string) error {
	data, err := EncodeGraph(g)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("graphio: write graph: %w", err)
	}

	return nil
}

// LoadGraph reads an instance file from path.
func LoadGraph(path string) (*graph.Graph, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("graphio: read graph: %w", err)
	}

	return DecodeGraph(data)
}

// LoadGenRequest reads a generator request from path, filling absent fields
// with the documented defaults.
func LoadGenRequest(path string) (GenRequest, error) {
	req := GenRequest{NodeCount: DefaultNodeCount, Method: DefaultMethod}

	data, err := os.ReadFile(path)
	if err != nil {
		return GenRequest{}, fmt.Errorf("graphio: read generator request: %w", err)
	}
	// Unmarshal over the defaults: present fields override, absent stay.
	if err := json.Unmarshal(data, &req); err != nil {
		return GenRequest{}, fmt.Errorf("graphio: decode generator request: %w", err)
	}

	return req, nil
}

// LoadRouteRequest reads a route request from path, filling absent fields
// with the documented defaults. The request is not validated here; call
// Validate before handing it to the solver.
func LoadRouteRequest(path string) (RouteRequest, error) {
	req := RouteRequest{
		Source:      DefaultSource,
		Destination: DefaultDestination,
		Battery:     dijkstra.DefaultBattery,
		Mileage:     dijkstra.DefaultMileage,
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return RouteRequest{}, fmt.Errorf("graphio: read route request: %w", err)
	}
	if err := json.Unmarshal(data, &req); err != nil {
		return RouteRequest{}, fmt.Errorf("graphio: decode route request: %w", err)
	}

	return req, nil
}

// EncodeRouteResult serializes a route result with 4-space indentation.
func EncodeRouteResult(res RouteResult) ([]byte, error) {
	return json.MarshalIndent(res, "", jsonIndent)
}

// SaveRouteResult writes a route result to path.
func SaveRouteResult(res RouteResult, path string) error {
	data, err := EncodeRouteResult(res)
	if err != nil {
		return fmt.Errorf("graphio: encode route result: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("graphio: write route result: %w", err)
	}

	return nil
}
