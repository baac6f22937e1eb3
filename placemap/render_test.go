package placemap

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jdevelop/placesmap/placesapi"
)

func renderHTML(t *testing.T, doc *Document) (string, *goquery.Document) {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, doc.WriteHTML(&buf))
	parsed, err := goquery.NewDocumentFromReader(strings.NewReader(buf.String()))
	require.NoError(t, err)
	return buf.String(), parsed
}

func TestAddLegendOnce(t *testing.T) {
	doc := AddLegend(NewMap(LatLng{}))
	require.Len(t, doc.Overlays, 1)

	_, page := renderHTML(t, doc)
	legend := page.Find(".rating-legend")
	require.Equal(t, 1, legend.Length())
	assert.Equal(t, 5, legend.Find(".rating-swatch").Length())
	assert.Contains(t, legend.Text(), "bad")
	assert.Contains(t, legend.Text(), "good")

	legend.Find(".rating-swatch").Each(func(i int, s *goquery.Selection) {
		style, _ := s.Attr("style")
		assert.Contains(t, style, RatingColors[i])
	})
}

func TestAddLegendTwiceAddsTwoOverlays(t *testing.T) {
	doc := AddLegend(AddLegend(NewMap(LatLng{})))
	require.Len(t, doc.Overlays, 2)

	_, page := renderHTML(t, doc)
	assert.Equal(t, 2, page.Find(".rating-legend").Length())
}

func TestWriteHTMLEmbedsMapConfigAndMarkers(t *testing.T) {
	center := LatLng{Lat: 53.41058, Lon: -2.97794}
	places := []placesapi.Place{testPlace("Golden Dragon", 4.2, "chinese_restaurant", "food")}
	doc, _ := AddMarkers(NewMap(center), places, center, time.Monday)
	doc = AddLegend(doc)

	_, page := renderHTML(t, doc)
	require.Equal(t, 1, page.Find("#map").Length())

	var script string
	page.Find("script").Each(func(_ int, s *goquery.Selection) {
		if strings.Contains(s.Text(), "L.map(") {
			script = s.Text()
		}
	})
	require.NotEmpty(t, script)
	assert.Contains(t, script, `"zoomStart":15`)
	assert.Contains(t, script, `"minZoom":11`)
	assert.Contains(t, script, `"controlScale":true`)
	assert.Contains(t, script, `"lat":53.41058`)
	assert.Contains(t, script, `"tooltip":"Golden Dragon"`)
	assert.Contains(t, script, `"icon":"bowl-rice"`)
	assert.Contains(t, script, `"tags":["chinese_restaurant"]`)
	assert.Contains(t, script, `"icon":"user"`)
	assert.NotContains(t, script, "Rating: 4.2", "details stay out of the page")
}

func TestWriteHTMLEmptyDocument(t *testing.T) {
	_, page := renderHTML(t, NewMap(LatLng{Lat: 51.5, Lon: -0.12}))
	assert.Zero(t, page.Find(".rating-legend").Length())

	var found bool
	page.Find("script").Each(func(_ int, s *goquery.Selection) {
		if strings.Contains(s.Text(), "var markers = []") {
			found = true
		}
	})
	assert.True(t, found)
}
