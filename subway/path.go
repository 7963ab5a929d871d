package subway

import "errors"

// StopNotFoundError reports a start or destination stop that the graph
// does not know about.
type StopNotFoundError struct {
	Stop string
}

func (e *StopNotFoundError) Error() string { return "stop not found: " + e.Stop }

// ErrNoPath means both stops exist but live in disconnected components.
var ErrNoPath = errors.New("no path between stops")

// pathState is one frontier entry: the stop being expanded plus the
// stop and route sequences that led there. A stop reachable by several
// routes gets one entry per route so that different route histories
// stay distinguishable.
type pathState struct {
	stop   string
	stops  []string
	routes []string
}

// FindPath returns the hops of a shortest (fewest-edge) path from
// start to end, or a zero-length slice when start == end. Among
// equal-length paths the search prefers staying on the route it
// arrived on: when an edge carries several routes, the arrival route
// is tried first and the rest in lexicographic order. The first path
// dequeued at a stop wins, so this is an exploration bias that tends
// to reduce transfers, not a minimum-transfer guarantee.
func FindPath(graph Graph, start, end string) ([]Hop, error) {
	if _, ok := graph[start]; !ok {
		return nil, &StopNotFoundError{Stop: start}
	}
	if _, ok := graph[end]; !ok {
		return nil, &StopNotFoundError{Stop: end}
	}
	if start == end {
		return []Hop{}, nil
	}

	visited := map[string]struct{}{}
	queue := []pathState{{stop: start}}

	for head := 0; head < len(queue); head++ {
		current := queue[head]

		if current.stop == end {
			return buildHops(current), nil
		}
		if _, seen := visited[current.stop]; seen {
			continue
		}
		visited[current.stop] = struct{}{}

		arrivalRoute := ""
		if len(current.routes) > 0 {
			arrivalRoute = current.routes[len(current.routes)-1]
		}

		for _, connection := range graph[current.stop] {
			for _, route := range orderRoutes(connection.Routes, arrivalRoute) {
				queue = append(queue, pathState{
					stop:   connection.Stop,
					stops:  appendPath(current.stops, current.stop),
					routes: appendPath(current.routes, route),
				})
			}
		}
	}

	return nil, ErrNoPath
}

func buildHops(s pathState) []Hop {
	stops := appendPath(s.stops, s.stop)
	hops := make([]Hop, len(s.routes))
	for i, route := range s.routes {
		hops[i] = Hop{From: stops[i], Route: route, To: stops[i+1]}
	}
	return hops
}

// orderRoutes puts the arrival route first, keeping the remaining
// routes in their stored lexicographic order. The input is never
// mutated since Connection slices are shared across the graph.
func orderRoutes(routes []string, arrivalRoute string) []string {
	if arrivalRoute == "" {
		return routes
	}
	found := false
	for _, r := range routes {
		if r == arrivalRoute {
			found = true
			break
		}
	}
	if !found {
		return routes
	}
	ordered := make([]string, 0, len(routes))
	ordered = append(ordered, arrivalRoute)
	for _, r := range routes {
		if r != arrivalRoute {
			ordered = append(ordered, r)
		}
	}
	return ordered
}

// appendPath copies before appending; frontier entries share prefixes
// and a plain append could alias their backing arrays.
func appendPath(path []string, next string) []string {
	extended := make([]string, len(path)+1)
	copy(extended, path)
	extended[len(path)] = next
	return extended
}
