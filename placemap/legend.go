package placemap

import (
	"bytes"
	"html/template"
)

var legendTemplate = template.Must(template.New("legend").Parse(`<div class="rating-legend" style="position:fixed;bottom:15px;right:5px;width:200px;max-width:80%;height:45px;z-index:9999;font-size:14px;background-color:#ffffff">
<div>rating</div>
<div style="width:100%">
{{- range .}}
<div class="rating-swatch" style="float:left;width:20%;height:10px;background-color:{{.}}"></div>
{{- end}}
</div>
<div><div style="float:left">bad</div><div style="float:right">good</div></div>
</div>`))

var legendHTML = func() template.HTML {
	var buf bytes.Buffer
	if err := legendTemplate.Execute(&buf, RatingColors); err != nil {
		panic(err)
	}
	return template.HTML(buf.String())
}()

// AddLegend appends the rating legend overlay. Calling it twice adds two
// overlays.
func AddLegend(doc *Document) *Document {
	doc.Overlays = append(doc.Overlays, legendHTML)
	return doc
}
