package placemap

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jdevelop/placesmap/placesapi"
)

func TestWriteKMLGroupsPlacesByCategory(t *testing.T) {
	places := []placesapi.Place{
		testPlace("Golden Dragon", 4.2, "chinese_restaurant", "restaurant", "food"),
		testPlace("Generic Grub", 3.0, "food", "point_of_interest", "establishment"),
	}
	doc, _ := AddMarkers(NewMap(LatLng{}), places, LatLng{Lat: 53.4, Lon: -2.9}, time.Monday)

	var buf bytes.Buffer
	require.NoError(t, WriteKML(doc, &buf))
	out := buf.String()

	assert.Contains(t, out, "<name>chinese_restaurant</name>")
	assert.Contains(t, out, "<name>restaurant</name>")
	assert.Contains(t, out, "<name>Undefined</name>")
	assert.Contains(t, out, "<name>You are here</name>")
	assert.Equal(t, 2, strings.Count(out, "<name>Golden Dragon</name>"))
	assert.Contains(t, out, "<name>Generic Grub</name>")
	assert.Contains(t, out, "Rating: 4.2/5.0")

	// folders are written in name order
	assert.Less(t, strings.Index(out, "<name>Undefined</name>"), strings.Index(out, "<name>chinese_restaurant</name>"))
	assert.Less(t, strings.Index(out, "<name>chinese_restaurant</name>"), strings.Index(out, "<name>restaurant</name>"))
}
