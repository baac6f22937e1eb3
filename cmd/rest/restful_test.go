package main

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jdevelop/placesmap/config"
	"github.com/jdevelop/placesmap/placesapi"
)

type fakeSearcher struct {
	got    placesapi.SearchRequest
	places []placesapi.Place
	err    error
}

func (f *fakeSearcher) SearchNearby(_ context.Context, req placesapi.SearchRequest) ([]placesapi.Place, error) {
	f.got = req
	return f.places, f.err
}

func testViper() *viper.Viper {
	v := viper.New()
	v.Set(config.SearchRadius, 2000)
	v.Set(config.SearchTypes, []string{"chinese_restaurant"})
	v.Set(config.SearchMax, 20)
	return v
}

func onePlace() []placesapi.Place {
	rating := 4.2
	return []placesapi.Place{{
		Types:               []string{"chinese_restaurant", "food"},
		DisplayName:         &placesapi.LocalizedText{Text: "Golden Dragon"},
		Location:            &placesapi.LatLng{Latitude: 53.41, Longitude: -2.97},
		FormattedAddress:    "1 Nelson St",
		Rating:              &rating,
		CurrentOpeningHours: &placesapi.OpeningHours{OpenNow: true},
	}}
}

func serve(t *testing.T, s *fakeSearcher, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	newRouter(testViper(), s, "/api/").ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestMapEndpointRendersHTML(t *testing.T) {
	s := &fakeSearcher{places: onePlace()}
	rec := serve(t, s, "/api/map?lat=53.41058&lon=-2.97794&types=chinese_restaurant,thai_restaurant&max=5")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
	assert.Equal(t, []string{"chinese_restaurant", "thai_restaurant"}, s.got.Types)
	assert.Equal(t, 5, s.got.MaxResultCount)
	assert.Equal(t, 2000.0, s.got.Radius)

	page, err := goquery.NewDocumentFromReader(rec.Body)
	require.NoError(t, err)
	assert.Equal(t, 1, page.Find(".rating-legend").Length())
}

func TestExportEndpointWritesKML(t *testing.T) {
	rec := serve(t, &fakeSearcher{places: onePlace()}, "/api/export?lat=53.41058&lon=-2.97794")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/vnd.google-earth.kml+xml", rec.Header().Get("Content-Type"))
	assert.True(t, strings.Contains(rec.Body.String(), "<name>Golden Dragon</name>"))
}

func TestMapEndpointRejectsBadParameters(t *testing.T) {
	for _, target := range []string{
		"/api/map?lon=-2.97794",
		"/api/map?lat=abc&lon=-2.97794",
		"/api/map?lat=53.4&lon=-2.9&radius=60000",
		"/api/map?lat=53.4&lon=-2.9&max=0",
	} {
		s := &fakeSearcher{}
		rec := serve(t, s, target)
		assert.Equal(t, http.StatusBadRequest, rec.Code, target)
		assert.Empty(t, s.got.Types, target)
	}
}

func TestMapEndpointReportsUpstreamFailure(t *testing.T) {
	rec := serve(t, &fakeSearcher{err: errors.New("request failed with status 500")}, "/api/map?lat=53.4&lon=-2.9")
	assert.Equal(t, http.StatusBadGateway, rec.Code)
}
