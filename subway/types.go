package subway

// Route is one subway line as reported by the MBTA API.
type Route struct {
	ID       string
	LongName string
}

// Connection is a single edge endpoint: a neighboring stop plus every
// route that links the two stops directly. Routes is sorted and a pair
// of stops has exactly one Connection between them in each direction.
type Connection struct {
	Stop   string
	Routes []string
}

// Graph maps a stop name to its direct connections. Stop names are
// assumed unique across the network.
type Graph map[string][]Connection

// Hop is one leg of a planned trip: board Route at From, get off at To.
type Hop struct {
	From  string
	Route string
	To    string
}

// Network is the subway snapshot the queries run against. It is built
// once at startup and never mutated, so concurrent reads are safe.
type Network struct {
	Routes     []Route
	RouteStops map[string][]string
	Graph      Graph
}
