package response

import "github.com/saywin/airport-api-service/internal/domain"

// RouteList shows airport names instead of nested objects, for list views.
type RouteList struct {
	ID          uint   `json:"id"`
	Distance    int    `json:"distance"`
	Source      string `json:"source"`
	Destination string `json:"destination"`
}

func NewRouteList(route domain.Route) RouteList {
	return RouteList{
		ID:          route.ID,
		Distance:    route.Distance,
		Source:      route.Source.Name,
		Destination: route.Destination.Name,
	}
}

func NewRouteLists(routes []domain.Route) []RouteList {
	out := make([]RouteList, 0, len(routes))
	for _, r := range routes {
		out = append(out, NewRouteList(r))
	}

	return out
}
