// Package evrange is an in-memory toolkit for battery-constrained route
// planning on weighted undirected graphs.
//
// 🔋 What is evrange?
//
//	A small, focused library that answers one question well: what is the
//	shortest route between two charging nodes that a vehicle can actually
//	complete on its current battery?
//		• graph/    — weighted undirected graphs with 2D node positions
//		• minheap/  — indexed min-priority-queue with true decrease-key
//		• dijkstra/ — the battery-constrained shortest-path solver
//		• builder/  — deterministic random instance generators
//		• graphio/  — JSON persistence for graphs, requests and routes
//
// ✨ Why choose evrange?
//
//   - Minimal API with clear, intuitive naming
//   - Deterministic by construction — seedable generators, sorted accessors
//   - Pure Go — no cgo, no hidden deps
//   - Explicit errors — sentinel values, errors.Is-friendly
//
// Quick ASCII example:
//
//	    1───2───3
//	        │
//	        4
//
//	With battery 2 and mileage 10, the route 1→3 costs one battery unit
//	per edge: feasible. With battery 1 it is not.
//
// Dive into the per-package docs for the full contracts, complexity notes
// and worked examples.
//
//	go get github.com/voltano/evrange
package evrange
