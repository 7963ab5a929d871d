// Package subway builds and queries the MBTA subway connectivity graph.
//
// The graph connects every pair of stops that share a route, with each
// edge carrying the set of routes serving that pair. FindPath runs a
// breadth-first search over it that prefers staying on the arrival
// route when several routes cover the same edge.
//
// Everything here operates on an immutable Network snapshot assembled
// once at startup by Repository.Load.
package subway
