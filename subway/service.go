package subway

import "sort"

// TransferStation is a stop served by two or more routes.
type TransferStation struct {
	Stop   string
	Routes []string
}

// NetworkStats answers the route statistics question. MostStops and
// FewestStops hold every route tied at the extreme so ties are
// reported rather than silently dropped.
type NetworkStats struct {
	MostStops   []string
	FewestStops []string
	MaxStops    int
	MinStops    int
	Transfers   []TransferStation
}

// Service exposes the three queries over an immutable Network. It only
// returns data; rendering belongs to the caller.
type Service struct {
	network *Network
}

func NewService(network *Network) *Service {
	return &Service{network: network}
}

// RouteNames returns the long names of all subway routes in API order.
func (s *Service) RouteNames() []string {
	names := make([]string, 0, len(s.network.Routes))
	for _, route := range s.network.Routes {
		names = append(names, route.LongName)
	}
	return names
}

// StopsOnRoute returns the stop names served by one route.
func (s *Service) StopsOnRoute(routeID string) []string {
	return s.network.RouteStops[routeID]
}

// StopNames returns every stop in the graph, sorted.
func (s *Service) StopNames() []string {
	names := make([]string, 0, len(s.network.Graph))
	for stop := range s.network.Graph {
		names = append(names, stop)
	}
	sort.Strings(names)
	return names
}

// Stats computes the stop-count extremes and the transfer stations.
func (s *Service) Stats() NetworkStats {
	var stats NetworkStats
	if len(s.network.RouteStops) == 0 {
		return stats
	}

	first := true
	for _, stops := range s.network.RouteStops {
		n := len(stops)
		if first || n > stats.MaxStops {
			stats.MaxStops = n
		}
		if first || n < stats.MinStops {
			stats.MinStops = n
		}
		first = false
	}
	for routeID, stops := range s.network.RouteStops {
		if len(stops) == stats.MaxStops {
			stats.MostStops = append(stats.MostStops, routeID)
		}
		if len(stops) == stats.MinStops {
			stats.FewestStops = append(stats.FewestStops, routeID)
		}
	}
	sort.Strings(stats.MostStops)
	sort.Strings(stats.FewestStops)

	// Invert route -> stops to find stops on more than one route.
	stopRoutes := map[string]map[string]struct{}{}
	for routeID, stops := range s.network.RouteStops {
		for _, stop := range stops {
			if stopRoutes[stop] == nil {
				stopRoutes[stop] = map[string]struct{}{}
			}
			stopRoutes[stop][routeID] = struct{}{}
		}
	}
	for stop, routeSet := range stopRoutes {
		if len(routeSet) < 2 {
			continue
		}
		routes := make([]string, 0, len(routeSet))
		for routeID := range routeSet {
			routes = append(routes, routeID)
		}
		sort.Strings(routes)
		stats.Transfers = append(stats.Transfers, TransferStation{Stop: stop, Routes: routes})
	}
	sort.Slice(stats.Transfers, func(i, j int) bool {
		return stats.Transfers[i].Stop < stats.Transfers[j].Stop
	})

	return stats
}

// PlanTrip finds a path between two named stops.
func (s *Service) PlanTrip(start, end string) ([]Hop, error) {
	return FindPath(s.network.Graph, start, end)
}
