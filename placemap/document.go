package placemap

import (
	"html/template"
	"sort"
)

const (
	ZoomStart = 15
	MinZoom   = 11
)

// RegionBounds is the rectangle panning is restricted to (Great Britain and
// Ireland).
var RegionBounds = Bounds{
	SouthWest: LatLng{Lat: 48, Lon: -9},
	NorthEast: LatLng{Lat: 60, Lon: 3},
}

type LatLng struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

type Bounds struct {
	SouthWest LatLng `json:"southWest"`
	NorthEast LatLng `json:"northEast"`
}

// Icon describes a beautify-style marker icon.
type Icon struct {
	Name        string `json:"icon"`
	Prefix      string `json:"prefix"`
	TextColor   string `json:"textColor"`
	BorderColor string `json:"borderColor"`
}

// Marker is one point on the map. Details is a plain-text summary kept out of
// the HTML page and used by the KML export.
type Marker struct {
	Position LatLng   `json:"position"`
	Icon     Icon     `json:"icon"`
	Tooltip  string   `json:"tooltip,omitempty"`
	Popup    string   `json:"popup,omitempty"`
	Tags     []string `json:"tags,omitempty"`
	Details  string   `json:"-"`
}

// Document is the composed map: a canvas, its markers and overlays.
type Document struct {
	Center       LatLng
	ZoomStart    int
	MinZoom      int
	MaxBounds    Bounds
	ControlScale bool
	Markers      []Marker
	Overlays     []template.HTML
}

// NewMap returns an empty canvas centered on center.
func NewMap(center LatLng) *Document {
	return &Document{
		Center:       center,
		ZoomStart:    ZoomStart,
		MinZoom:      MinZoom,
		MaxBounds:    RegionBounds,
		ControlScale: true,
	}
}

func (d *Document) AddMarker(m Marker) {
	d.Markers = append(d.Markers, m)
}

// Categories returns the sorted union of every marker's tags.
func (d *Document) Categories() []string {
	seen := make(map[string]struct{})
	for _, m := range d.Markers {
		for _, t := range m.Tags {
			seen[t] = struct{}{}
		}
	}
	out := make([]string, 0, len(seen))
	for t := range seen {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}
