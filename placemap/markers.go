package placemap

import (
	"fmt"
	"log"
	"math"
	"time"

	"github.com/jdevelop/placesmap/placesapi"
)

// RatingColors runs from worst to best.
var RatingColors = [5]string{"#ff4545", "#ffa534", "#ffe234", "#b7dd29", "#57e32c"}

const (
	DefaultIcon   = ""
	UserTag       = "user_location"
	userIconColor = "dodgerblue"
	iconPrefix    = "fa"
)

var typesToIcon = map[string]string{
	"bakery":               "utensils",
	"bar":                  "martini-glass-citrus",
	"barbecue_restaurant":  "utensils",
	"chinese_restaurant":   "bowl-rice",
	"coffee_shop":          "mug-saucer",
	"french_restaurant":    "utensils",
	"greek_restaurant":     "utensils",
	"hamburger_restaurant": "burger",
	"ice_cream_shop":       "ice-cream",
	"indian_restaurant":    "utensils",
	"italian_restaurant":   "pizza-slice",
	"japanese_restaurant":  "fish",
	"pizza_restaurant":     "pizza-slice",
	"sandwich_shop":        "hotdog",
	"seafood_restaurant":   "fish",
	"steak_house":          "utensils",
	"sushi_restaurant":     "fish",
	"thai_restaurant":      "shrimp",
	"turkish_restaurant":   "shish-kebab",
	"restaurant":           "utensils",
}

var genericTags = map[string]struct{}{
	"food":              {},
	"point_of_interest": {},
	"establishment":     {},
}

// RatingBucket maps a rating to an index into RatingColors, clamped to 0..4.
func RatingBucket(rating float64) int {
	if math.IsNaN(rating) {
		return 0
	}
	idx := int(math.Ceil(rating)) - 1
	if idx < 0 {
		return 0
	}
	if idx >= len(RatingColors) {
		return len(RatingColors) - 1
	}
	return idx
}

func RatingColor(rating float64) string {
	return RatingColors[RatingBucket(rating)]
}

// IconFor returns the icon of the first type with a known mapping, in the
// order the types are listed.
func IconFor(types []string) string {
	for _, t := range types {
		if icon, ok := typesToIcon[t]; ok {
			return icon
		}
	}
	return DefaultIcon
}

// StripGenericTags drops food, point_of_interest and establishment. Absent
// generic tags are ignored. The input slice is not modified.
func StripGenericTags(types []string) []string {
	out := make([]string, 0, len(types))
	for _, t := range types {
		if _, generic := genericTags[t]; generic {
			continue
		}
		out = append(out, t)
	}
	return out
}

func userMarker(current LatLng) Marker {
	return Marker{
		Position: current,
		Icon: Icon{
			Name:        "user",
			Prefix:      iconPrefix,
			TextColor:   userIconColor,
			BorderColor: userIconColor,
		},
		Tags: []string{UserTag},
	}
}

func placeMarker(p placesapi.Place, weekday time.Weekday) (Marker, error) {
	popup, err := PopupHTML(p, weekday)
	if err != nil {
		return Marker{}, err
	}
	color := RatingColor(*p.Rating)
	return Marker{
		Position: LatLng{Lat: p.Location.Latitude, Lon: p.Location.Longitude},
		Icon: Icon{
			Name:        IconFor(p.Types),
			Prefix:      iconPrefix,
			TextColor:   color,
			BorderColor: color,
		},
		Tooltip: p.Title(),
		Popup:   popup,
		Tags:    StripGenericTags(p.Types),
		Details: fmt.Sprintf("Rating: %.1f/5.0\n%s", *p.Rating, p.FormattedAddress),
	}, nil
}

// AddMarkers adds the current-location marker followed by one marker per
// valid place. Places missing a required field are skipped and counted.
func AddMarkers(doc *Document, places []placesapi.Place, current LatLng, weekday time.Weekday) (*Document, int) {
	doc.AddMarker(userMarker(current))

	skipped := 0
	for i, p := range places {
		if err := placesapi.ValidatePlace(p); err != nil {
			log.Printf("skipping place %d (%s): %v", i, p.Name, err)
			skipped++
			continue
		}
		m, err := placeMarker(p, weekday)
		if err != nil {
			log.Printf("skipping place %d (%s): %v", i, p.Name, err)
			skipped++
			continue
		}
		doc.AddMarker(m)
	}
	return doc, skipped
}
