package mbta

// Typed JSON:API responses for the two MBTA v3 endpoints this program
// uses. Decoded payloads are checked against the validate tags so a
// schema drift surfaces as a *ValidationError instead of zero values
// leaking into the graph.

type StopAttributes struct {
	Name string `json:"name" validate:"required"`
}

type StopData struct {
	ID         string         `json:"id" validate:"required"`
	Attributes StopAttributes `json:"attributes"`
}

type StopsResponse struct {
	Data []StopData `json:"data" validate:"dive"`
}

type RouteAttributes struct {
	Color                 string   `json:"color"`
	Description           string   `json:"description"`
	DirectionDestinations []string `json:"direction_destinations"`
	DirectionNames        []string `json:"direction_names"`
	FareClass             string   `json:"fare_class"`
	ListedRoute           bool     `json:"listed_route"`
	LongName              string   `json:"long_name" validate:"required"`
	ShortName             string   `json:"short_name"`
	SortOrder             int      `json:"sort_order"`
	TextColor             string   `json:"text_color"`
	// GTFS route type: 0 tram/light rail, 1 subway, 2 rail, 3 bus, 4 ferry.
	Type int `json:"type" validate:"gte=0,lte=4"`
}

type RouteData struct {
	ID         string          `json:"id" validate:"required"`
	Type       string          `json:"type"`
	Attributes RouteAttributes `json:"attributes"`
}

type RoutesResponse struct {
	Data []RouteData `json:"data" validate:"dive"`
}
