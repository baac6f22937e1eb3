package placemap

import (
	"io"
	"sort"

	"github.com/twpayne/go-kml"
)

const undefinedFolder = "Undefined"

func placemark(m Marker, name string) *kml.CompoundElement {
	children := []kml.Element{
		kml.Name(name),
		kml.Point(
			kml.Coordinates(kml.Coordinate{Lon: m.Position.Lon, Lat: m.Position.Lat}),
		),
	}
	if m.Details != "" {
		children = append(children, kml.Description(m.Details))
	}
	return kml.Placemark(children...)
}

func isUserMarker(m Marker) bool {
	return len(m.Tags) == 1 && m.Tags[0] == UserTag
}

// BuildKML groups place markers into one folder per category. A place with
// several categories appears in each of their folders.
func BuildKML(doc *Document) *kml.CompoundElement {
	folders := make(map[string]*kml.CompoundElement)

	k := kml.KML()
	d := kml.Document()

	for _, m := range doc.Markers {
		if isUserMarker(m) {
			d.Add(placemark(m, "You are here"))
			continue
		}
		tags := m.Tags
		if len(tags) == 0 {
			tags = []string{undefinedFolder}
		}
		for _, c := range tags {
			folder := folders[c]
			if folder == nil {
				folder = kml.Folder(kml.Name(c))
				folders[c] = folder
			}
			folder.Add(placemark(m, m.Tooltip))
		}
	}

	names := make([]string, 0, len(folders))
	for name := range folders {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		d.Add(folders[name])
	}

	k.Add(d)
	return k
}

func WriteKML(doc *Document, w io.Writer) error {
	return BuildKML(doc).WriteIndent(w, "", "  ")
}
