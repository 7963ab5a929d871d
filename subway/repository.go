package subway

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/mcsjb/mbta/logging"
	"github.com/mcsjb/mbta/mbta"
)

// Client is the slice of the MBTA API client the repository needs.
type Client interface {
	GetRoutes(ctx context.Context, routeTypes []int) (*mbta.RoutesResponse, error)
	GetStops(ctx context.Context, routeID string) (*mbta.StopsResponse, error)
}

// Repository assembles the subway Network from the MBTA API.
type Repository struct {
	client     Client
	routeTypes []int
	log        *zap.SugaredLogger
}

func NewRepository(client Client, routeTypes []int) *Repository {
	return &Repository{
		client:     client,
		routeTypes: routeTypes,
		log:        logging.GetLogger(),
	}
}

// Load fetches all subway routes, the stops on each route, and builds
// the connectivity graph. Any API failure aborts the load; the queries
// cannot run on a partial network.
func (r *Repository) Load(ctx context.Context) (*Network, error) {
	routesRes, err := r.client.GetRoutes(ctx, r.routeTypes)
	if err != nil {
		return nil, fmt.Errorf("fetch routes: %w", err)
	}

	routes := make([]Route, 0, len(routesRes.Data))
	for _, rd := range routesRes.Data {
		routes = append(routes, Route{ID: rd.ID, LongName: rd.Attributes.LongName})
	}
	r.log.Infow("fetched subway routes", "count", len(routes))

	routeStops := make(map[string][]string, len(routes))
	for _, route := range routes {
		stopsRes, err := r.client.GetStops(ctx, route.ID)
		if err != nil {
			return nil, fmt.Errorf("fetch stops for route %s: %w", route.ID, err)
		}
		stops := make([]string, 0, len(stopsRes.Data))
		for _, sd := range stopsRes.Data {
			stops = append(stops, sd.Attributes.Name)
		}
		routeStops[route.ID] = stops
		r.log.Debugw("fetched stops", "route", route.ID, "count", len(stops))
	}

	graph := BuildGraph(routeStops)
	r.log.Infow("built connectivity graph", "stops", len(graph))

	return &Network{Routes: routes, RouteStops: routeStops, Graph: graph}, nil
}
