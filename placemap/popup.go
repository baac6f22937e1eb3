package placemap

import (
	"bytes"
	"html/template"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/jdevelop/placesmap/placesapi"
)

const priceLevelPrefix = "PRICE_LEVEL_"

var hoursSpaces = strings.NewReplacer("\u2009", " ", "\u202f", " ")

type popupReview struct {
	Author   string
	PhotoURI string
	Rating   float64
	When     string
	Text     string
}

type popupData struct {
	Name        string
	Rating      float64
	PriceLevel  string
	PrimaryType string
	Address     string
	Phone       string
	OpenNow     bool
	HoursToday  string
	Reviews     []popupReview
}

var popupTemplate = template.Must(template.New("popup").Parse(`<style>
.details-line{border-top-style:solid;border-color:lightgray;display:flex;flex-direction:row;justify-content:start;align-items:baseline}
.title-line{background-color:dodgerblue}
.flex-container{display:flex;align-items:stretch;height:30px}
.flex-container>i{display:flex;flex-direction:row;justify-content:center;align-items:center;border-top:1px solid #eee}
.flex-container>div{border-top:1px solid #eee;display:flex;flex-direction:row;justify-content:start;align-items:center}
</style>
<div class="place-card" style="height:400px;width:300px;overflow-y:auto">
<div class="title-line">
<div style="margin-left:15px;margin-top:10px"><span class="place-name" style="color:white;width:80%;line-height:22px">{{.Name}}</span></div>
<div style="margin:8px 0 0 15px"><span class="place-rating" style="font-size:12px;color:#fff">{{printf "%.1f" .Rating}}</span><span style="font-size:12px;color:#BCBCBC">/5.0</span></div>
{{- if .PriceLevel}}
<div class="place-price" style="margin-left:15px;color:#fff;font-size:12px"><span>Price Level:</span> <span>{{.PriceLevel}}</span></div>
{{- end}}
{{- if .PrimaryType}}
<div class="place-type" style="margin-left:15px;color:#fff;font-size:14px"><span>{{.PrimaryType}}</span></div>
{{- end}}
</div>
<div style="width:100%;border-bottom:1px solid gray">
<div class="flex-container"><i class="fa-solid fa-location-dot" style="flex:0 0 40px"></i><div class="place-address" style="flex-grow:8">{{.Address}}</div></div>
<div class="flex-container"><i class="fa-solid fa-phone" style="flex:0 0 40px"></i><div class="place-phone" style="flex-grow:8">{{.Phone}}</div></div>
</div>
<div>
<div style="border-bottom:1px solid #eee;height:30px;line-height:30px"><div style="width:30%;float:left">Opening Hours</div>
{{- if .OpenNow}}<div class="place-open" style="width:70%;float:left;color:green">Open now</div>{{else}}<div class="place-open" style="width:70%;float:left;color:red">Closed</div>{{end}}</div>
{{- if .HoursToday}}
<div class="place-hours" style="width:100%;border-bottom:1px solid gray;height:30px;line-height:30px">{{.HoursToday}}</div>
{{- end}}
</div>
<div class="place-reviews">
<div style="border-bottom:1px solid #eee;height:30px;line-height:30px">reviews</div>
{{- range .Reviews}}
<div class="review" style="border-bottom:1px solid #eee;width:270px">
<div style="height:50px">
<div style="margin:10px 0 0 10px;float:left;height:40px"><img width="40" height="40" src="{{.PhotoURI}}"></div>
<div style="margin:10px 0 0 10px;height:40px;width:140px;float:left"><div class="review-author" style="height:20px">{{.Author}}</div><div class="review-rating" style="height:20px">{{printf "%.1f" .Rating}}</div></div>
<div class="review-when" style="margin-top:30px;width:70px;float:right">{{.When}}</div>
</div>
{{- if .Text}}
<div class="review-text" style="width:270px;word-break:break-word;margin:10px;clear:both">{{.Text}}</div>
{{- end}}
</div>
{{- end}}
</div>
</div>`))

// PriceLevelLabel turns PRICE_LEVEL_VERY_EXPENSIVE into "Very Expensive".
func PriceLevelLabel(level string) string {
	rest := strings.TrimPrefix(level, priceLevelPrefix)
	return cases.Title(language.English).String(strings.ReplaceAll(strings.ToLower(rest), "_", " "))
}

// weekdayIndex maps a weekday onto weekdayDescriptions, which start on Monday.
func weekdayIndex(wd time.Weekday) int {
	return (int(wd) + 6) % 7
}

func hoursFor(h *placesapi.OpeningHours, wd time.Weekday) string {
	if h == nil {
		return ""
	}
	idx := weekdayIndex(wd)
	if idx >= len(h.WeekdayDescriptions) {
		return ""
	}
	return hoursSpaces.Replace(h.WeekdayDescriptions[idx])
}

func newPopupData(p placesapi.Place, wd time.Weekday) popupData {
	data := popupData{
		Name:       p.Title(),
		Address:    p.FormattedAddress,
		HoursToday: hoursFor(p.CurrentOpeningHours, wd),
	}
	if p.Rating != nil {
		data.Rating = *p.Rating
	}
	if p.PriceLevel != nil {
		data.PriceLevel = PriceLevelLabel(*p.PriceLevel)
	}
	if p.PrimaryTypeDisplayName != nil {
		data.PrimaryType = p.PrimaryTypeDisplayName.Text
	}
	if p.InternationalPhoneNumber != nil {
		data.Phone = *p.InternationalPhoneNumber
	}
	if p.CurrentOpeningHours != nil {
		data.OpenNow = p.CurrentOpeningHours.OpenNow
	}
	for _, r := range p.Reviews {
		pr := popupReview{
			Author:   r.AuthorAttribution.DisplayName,
			PhotoURI: r.AuthorAttribution.PhotoURI,
			Rating:   r.Rating,
			When:     r.RelativePublishTimeDescription,
		}
		if r.OriginalText != nil {
			pr.Text = r.OriginalText.Text
		}
		data.Reviews = append(data.Reviews, pr)
	}
	return data
}

// PopupHTML renders the detail card of a place. Text from the API is escaped.
func PopupHTML(p placesapi.Place, wd time.Weekday) (string, error) {
	var buf bytes.Buffer
	if err := popupTemplate.Execute(&buf, newPopupData(p, wd)); err != nil {
		return "", err
	}
	return buf.String(), nil
}
