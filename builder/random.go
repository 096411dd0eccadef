package builder

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/voltano/evrange/graph"
)

// Canvas bounds for generated layouts. Positions stay inside a 800×800
// viewport with a 50-unit margin on every side.
const (
	canvasMin = 50.0
	canvasMax = 750.0
)

// Weight bounds for the clustered geometric topology.
const (
	minGeoWeight = int64(10)
	maxGeoWeight = int64(200)
)

// Random builds a clustered geometric graph with n nodes (IDs 1..n).
//
// Construction:
//  1. Scatter max(3, n/10) cluster centers uniformly across the canvas.
//  2. Place each node near a uniformly chosen center with Gaussian jitter
//     (σ=100), clamped to the canvas.
//  3. For each node pair within connection range, link with a probability
//     that decays over three distance bands (0.7 / 0.4 / 0.1, and 0.02
//     beyond range), each draw perturbed by ±20% noise. Per-node degree is
//     capped at min(n-1, 3√n).
//  4. Any node that gained no edge is connected to its nearest remaining
//     neighbor so the instance has no isolated nodes.
//
// Edge weight grows with Euclidean distance (distance/5 plus bounded noise),
// clamped to [10, 200].
//
// Returns ErrTooFewNodes if n < 1 and ErrNeedRandSource without an RNG.
//
// Complexity: O(n²) pairwise scan; intended for instance sizes where the
// solver, not the generator, is the interesting part.
func Random(n int, opts ...Option) (*graph.Graph, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: need at least 1 node, got %d", ErrTooFewNodes, n)
	}

	cfg := newBuilderConfig(opts...)
	if cfg.rng == nil {
		return nil, ErrNeedRandSource
	}
	rng := cfg.rng

	name := cfg.name
	if name == "" {
		name = fmt.Sprintf("Random_Graph_%d", n)
	}
	g := graph.New(name)

	// 1) Cluster centers: more nodes, more clusters.
	clusterCount := n / 10
	if clusterCount < 3 {
		clusterCount = 3
	}
	type point struct{ x, y float64 }
	clusters := make([]point, clusterCount)
	for i := range clusters {
		clusters[i] = point{x: uniform(rng, canvasMin, canvasMax), y: uniform(rng, canvasMin, canvasMax)}
	}

	// 2) Nodes gather around their cluster with clamped Gaussian jitter.
	const jitterSigma = 100.0
	for i := 1; i <= n; i++ {
		c := clusters[int(rng.Float64()*float64(clusterCount))%clusterCount]
		x := clamp(c.x+rng.NormFloat64()*jitterSigma, canvasMin, canvasMax)
		y := clamp(c.y+rng.NormFloat64()*jitterSigma, canvasMin, canvasMax)
		g.AddNode(int64(i), x, y)
	}

	// Connection range scales with instance size.
	maxConnectionDistance := 300.0 * math.Sqrt(float64(n)) / 10.0

	maxConnections := int(math.Sqrt(float64(n)) * 3)
	if maxConnections > n-1 {
		maxConnections = n - 1
	}

	// 3) Distance-banded probabilistic linking.
	for i := 1; i <= n; i++ {
		ni, err := g.Node(int64(i))
		if err != nil {
			return nil, err
		}

		connections := 0
		for j := i + 1; j <= n && connections < maxConnections; j++ {
			nj, err := g.Node(int64(j))
			if err != nil {
				return nil, err
			}

			distance := math.Hypot(ni.X-nj.X, ni.Y-nj.Y)

			var connectionProb float64
			switch {
			case distance < maxConnectionDistance*0.3:
				connectionProb = 0.7
			case distance < maxConnectionDistance*0.6:
				connectionProb = 0.4
			case distance < maxConnectionDistance:
				connectionProb = 0.1
			default:
				connectionProb = 0.02
			}

			// ±20% multiplicative noise on the band probability.
			connectionProb *= 0.8 + rng.Float64()*0.4

			if rng.Float64() < connectionProb && !g.HasEdge(int64(i), int64(j)) {
				if err := g.AddEdge(int64(i), int64(j), geoWeight(rng, distance)); err != nil {
					return nil, err
				}
				connections++
			}
		}

		// 4) Connectivity fallback: never leave a node isolated.
		if connections == 0 && i < n {
			nearest, minDist := int64(-1), math.MaxFloat64
			for j := i + 1; j <= n; j++ {
				if g.HasEdge(int64(i), int64(j)) {
					continue
				}
				nj, err := g.Node(int64(j))
				if err != nil {
					return nil, err
				}
				if d := math.Hypot(ni.X-nj.X, ni.Y-nj.Y); d < minDist {
					minDist = d
					nearest = int64(j)
				}
			}
			if nearest != -1 {
				w := int64(minDist / 5.0)
				if w < minGeoWeight {
					w = minGeoWeight
				}
				if err := g.AddEdge(int64(i), nearest, w); err != nil {
					return nil, err
				}
			}
		}
	}

	return g, nil
}

// geoWeight derives an edge weight from geometric distance with bounded
// noise, clamped to [minGeoWeight, maxGeoWeight].
func geoWeight(rng *rand.Rand, distance float64) int64 {
	base := int64(distance / 5.0)
	noise := (minGeoWeight + rng.Int63n(maxGeoWeight-minGeoWeight+1)) % 30
	w := base + noise
	if w < minGeoWeight {
		w = minGeoWeight
	}
	if w > maxGeoWeight {
		w = maxGeoWeight
	}

	return w
}

// uniform draws a float64 uniformly from [lo, hi).
func uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

// clamp bounds v to [lo, hi].
func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}

	return v
}
