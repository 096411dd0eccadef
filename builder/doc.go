// Package builder synthesizes random routing instances: weighted undirected
// graphs with 2D layouts suitable for the battery-constrained solver and for
// external visualization.
//
// Two topologies are provided:
//
//   - Random — a clustered geometric graph. Nodes gather around a handful of
//     cluster centers in an 800×800 canvas; connection probability falls off
//     with Euclidean distance, edge weight grows with it. Every node is
//     guaranteed at least one incident edge.
//   - SlidingWindow — a roughly linear layout where each node connects to
//     neighbors within a ±⌊√n⌋ index window, with occasional heavier
//     long-range links.
//
// All randomness flows through an explicitly injected *rand.Rand; there is
// no process-global generator. Stochastic constructors refuse to run without
// one (ErrNeedRandSource); pass WithSeed for reproducible fixtures or
// WithRand to share a source across calls.
//
// Errors (sentinel):
//
//   - ErrTooFewNodes     — node count below the topology's minimum.
//   - ErrNeedRandSource  — no RNG supplied to a stochastic constructor.
//   - ErrUnknownMethod   — ByMethod received an unrecognized method name.
package builder
