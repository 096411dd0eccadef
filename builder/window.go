package builder

import (
	"fmt"
	"math"

	"github.com/voltano/evrange/graph"
)

// SlidingWindow builds a roughly linear graph with n nodes (IDs 1..n).
//
// Nodes are spread horizontally across the canvas with small vertical
// jitter. Each node links to neighbors within a ±⌊√n⌋ index window with
// probability 0.8·exp(-d / (window/2)) for index distance d, using weights
// in [1, 100]. Each node additionally has a 10% chance of one long-range
// link anywhere in the instance, biased +50 heavier.
//
// Returns ErrTooFewNodes if n < 2 (the linear layout needs two endpoints)
// and ErrNeedRandSource without an RNG.
//
// Complexity: O(n·√n).
func SlidingWindow(n int, opts ...Option) (*graph.Graph, error) {
	if n < 2 {
		return nil, fmt.Errorf("%w: need at least 2 nodes, got %d", ErrTooFewNodes, n)
	}

	cfg := newBuilderConfig(opts...)
	if cfg.rng == nil {
		return nil, ErrNeedRandSource
	}
	rng := cfg.rng

	name := cfg.name
	if name == "" {
		name = fmt.Sprintf("Sliding_Window_Graph_%d", n)
	}
	g := graph.New(name)

	// 1) Linear layout: evenly spaced x, jittered y around the centerline.
	const (
		span       = 700.0
		centerline = 400.0
		yJitter    = 50.0
	)
	for i := 1; i <= n; i++ {
		x := float64(i-1)*(span/float64(n-1)) + canvasMin
		y := centerline + uniform(rng, -yJitter, yJitter)
		g.AddNode(int64(i), x, y)
	}

	// 2) Window size ~ √n, at least one.
	window := int(math.Sqrt(float64(n)))
	if window < 1 {
		window = 1
	}

	for i := 1; i <= n; i++ {
		// 3) Link within the window with exponentially decaying probability.
		lo, hi := i-window, i+window
		if lo < 1 {
			lo = 1
		}
		if hi > n {
			hi = n
		}
		for j := lo; j <= hi; j++ {
			if j == i {
				continue
			}

			d := float64(i - j)
			if d < 0 {
				d = -d
			}
			connectionProb := 0.8 * math.Exp(-d/(float64(window)/2.0))

			if rng.Float64() < connectionProb {
				w := int64(1 + rng.Intn(100))
				if err := g.AddEdge(int64(i), int64(j), w); err != nil {
					return nil, err
				}
			}
		}

		// 4) Occasional long-range link: heavier, anywhere in the instance.
		if rng.Float64() < 0.1 {
			distant := int64(1 + rng.Intn(n))
			if distant != int64(i) && !g.HasEdge(int64(i), distant) {
				w := int64(1+rng.Intn(100)) + 50
				if err := g.AddEdge(int64(i), distant, w); err != nil {
					return nil, err
				}
			}
		}
	}

	return g, nil
}

// ByMethod dispatches to the named topology constructor. Method names match
// the generator request file format: MethodRandom or MethodSlidingWindow.
// Returns ErrUnknownMethod for anything else.
func ByMethod(method string, n int, opts ...Option) (*graph.Graph, error) {
	switch method {
	case MethodRandom:
		return Random(n, opts...)
	case MethodSlidingWindow:
		return SlidingWindow(n, opts...)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMethod, method)
	}
}
