package subway

import "sort"

// BuildGraph turns a route -> stops mapping into an undirected
// connectivity graph. Every pair of distinct stops on a route gets an
// edge carrying that route; a pair served by several routes ends up
// with a single edge carrying all of them. The pairwise closure models
// "reachable via this route", not track adjacency, so a route with n
// stops contributes O(n^2) edges. Subway networks are small enough
// that this never matters.
func BuildGraph(routeStops map[string][]string) Graph {
	adjacency := map[string]map[string]map[string]struct{}{}

	for routeID, stops := range routeStops {
		for _, stop := range stops {
			for _, other := range stops {
				if stop == other {
					continue
				}
				neighbors, ok := adjacency[stop]
				if !ok {
					neighbors = map[string]map[string]struct{}{}
					adjacency[stop] = neighbors
				}
				routes, ok := neighbors[other]
				if !ok {
					routes = map[string]struct{}{}
					neighbors[other] = routes
				}
				routes[routeID] = struct{}{}
			}
		}
	}

	// Freeze into the final form with deterministic ordering.
	graph := make(Graph, len(adjacency))
	for stop, neighbors := range adjacency {
		connections := make([]Connection, 0, len(neighbors))
		for neighbor, routeSet := range neighbors {
			routes := make([]string, 0, len(routeSet))
			for routeID := range routeSet {
				routes = append(routes, routeID)
			}
			sort.Strings(routes)
			connections = append(connections, Connection{Stop: neighbor, Routes: routes})
		}
		sort.Slice(connections, func(i, j int) bool {
			return connections[i].Stop < connections[j].Stop
		})
		graph[stop] = connections
	}
	return graph
}
