package placemap

import (
	"context"
	"time"

	"github.com/jdevelop/placesmap/placesapi"
)

// Searcher runs a nearby search. *placesapi.Client satisfies it.
type Searcher interface {
	SearchNearby(ctx context.Context, req placesapi.SearchRequest) ([]placesapi.Place, error)
}

type Report struct {
	Received int
	Markers  int
	Skipped  int
}

// Compose renders already fetched places onto a fresh map centered on the
// search origin and attaches the legend.
func Compose(places []placesapi.Place, origin, current LatLng, weekday time.Weekday) (*Document, Report) {
	doc := NewMap(origin)
	doc, skipped := AddMarkers(doc, places, current, weekday)
	doc = AddLegend(doc)
	return doc, Report{
		Received: len(places),
		Markers:  len(doc.Markers),
		Skipped:  skipped,
	}
}

// Build fetches places around the request origin and composes the map.
func Build(ctx context.Context, s Searcher, req placesapi.SearchRequest, current LatLng, weekday time.Weekday) (*Document, Report, error) {
	places, err := s.SearchNearby(ctx, req)
	if err != nil {
		return nil, Report{}, err
	}
	origin := LatLng{Lat: req.Latitude, Lon: req.Longitude}
	doc, report := Compose(places, origin, current, weekday)
	return doc, report, nil
}
