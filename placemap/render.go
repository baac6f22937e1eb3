package placemap

import (
	"html/template"
	"io"
)

var documentTemplate = template.Must(template.New("map").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<link rel="stylesheet" href="https://cdn.jsdelivr.net/npm/leaflet@1.9.4/dist/leaflet.css">
<link rel="stylesheet" href="https://cdnjs.cloudflare.com/ajax/libs/font-awesome/6.5.1/css/all.min.css">
<link rel="stylesheet" href="https://cdn.jsdelivr.net/gh/marslan390/BeautifyMarker/leaflet-beautify-marker-icon.min.css">
<script src="https://cdn.jsdelivr.net/npm/leaflet@1.9.4/dist/leaflet.js"></script>
<script src="https://cdn.jsdelivr.net/gh/marslan390/BeautifyMarker/leaflet-beautify-marker-icon.min.js"></script>
<style>html,body{width:100%;height:100%;margin:0;padding:0}#map{position:absolute;top:0;bottom:0;right:0;left:0}</style>
</head>
<body>
<div id="map"></div>
{{- range .Overlays}}
{{.}}
{{- end}}
<script>
var config = {{.Config}};
var markers = {{.Markers}};
var map = L.map("map", {
  center: [config.center.lat, config.center.lon],
  zoom: config.zoomStart,
  minZoom: config.minZoom,
  maxBounds: [[config.maxBounds.southWest.lat, config.maxBounds.southWest.lon], [config.maxBounds.northEast.lat, config.maxBounds.northEast.lon]]
});
L.tileLayer("https://{s}.tile.openstreetmap.org/{z}/{x}/{y}.png", {
  attribution: "&copy; OpenStreetMap contributors",
  minZoom: config.minZoom
}).addTo(map);
if (config.controlScale) {
  L.control.scale().addTo(map);
}
markers.forEach(function (m) {
  var marker = L.marker([m.position.lat, m.position.lon], {
    icon: L.BeautifyIcon.icon({
      icon: m.icon.icon,
      iconShape: "marker",
      prefix: m.icon.prefix,
      textColor: m.icon.textColor,
      borderColor: m.icon.borderColor
    }),
    tags: m.tags || []
  }).addTo(map);
  if (m.tooltip) {
    marker.bindTooltip(m.tooltip);
  }
  if (m.popup) {
    marker.bindPopup(m.popup, {maxWidth: 320});
  }
});
</script>
</body>
</html>
`))

type mapConfig struct {
	Center       LatLng `json:"center"`
	ZoomStart    int    `json:"zoomStart"`
	MinZoom      int    `json:"minZoom"`
	MaxBounds    Bounds `json:"maxBounds"`
	ControlScale bool   `json:"controlScale"`
}

// WriteHTML serializes the document as a standalone Leaflet page.
func (d *Document) WriteHTML(w io.Writer) error {
	markers := d.Markers
	if markers == nil {
		markers = []Marker{}
	}
	return documentTemplate.Execute(w, struct {
		Config   mapConfig
		Markers  []Marker
		Overlays []template.HTML
	}{
		Config: mapConfig{
			Center:       d.Center,
			ZoomStart:    d.ZoomStart,
			MinZoom:      d.MinZoom,
			MaxBounds:    d.MaxBounds,
			ControlScale: d.ControlScale,
		},
		Markers:  markers,
		Overlays: d.Overlays,
	})
}
