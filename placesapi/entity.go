package placesapi

// SearchRequest describes one nearby search around an origin.
type SearchRequest struct {
	Latitude       float64  `validate:"latitude"`
	Longitude      float64  `validate:"longitude"`
	Radius         float64  `validate:"gt=0,lte=50000"`
	Types          []string `validate:"min=1,dive,required"`
	MaxResultCount int      `validate:"min=1,max=20"`
}

type LatLng struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type LocalizedText struct {
	Text         string `json:"text"`
	LanguageCode string `json:"languageCode,omitempty"`
}

type OpeningHours struct {
	OpenNow             bool     `json:"openNow"`
	WeekdayDescriptions []string `json:"weekdayDescriptions"`
}

type AuthorAttribution struct {
	DisplayName string `json:"displayName"`
	URI         string `json:"uri,omitempty"`
	PhotoURI    string `json:"photoUri"`
}

type Review struct {
	Name                           string            `json:"name,omitempty"`
	RelativePublishTimeDescription string            `json:"relativePublishTimeDescription"`
	Rating                         float64           `json:"rating"`
	Text                           *LocalizedText    `json:"text,omitempty"`
	OriginalText                   *LocalizedText    `json:"originalText,omitempty"`
	AuthorAttribution              AuthorAttribution `json:"authorAttribution"`
}

// Place is one entry of a nearby search response. Pointer fields are
// optional and nil when the API omitted them.
type Place struct {
	Name                     string         `json:"name"`
	Types                    []string       `json:"types" validate:"required,min=1"`
	DisplayName              *LocalizedText `json:"displayName" validate:"required"`
	Location                 *LatLng        `json:"location" validate:"required"`
	FormattedAddress         string         `json:"formattedAddress" validate:"required"`
	Rating                   *float64       `json:"rating" validate:"required"`
	CurrentOpeningHours      *OpeningHours  `json:"currentOpeningHours" validate:"required"`
	Reviews                  []Review       `json:"reviews,omitempty"`
	InternationalPhoneNumber *string        `json:"internationalPhoneNumber,omitempty"`
	PriceLevel               *string        `json:"priceLevel,omitempty"`
	PrimaryTypeDisplayName   *LocalizedText `json:"primaryTypeDisplayName,omitempty"`
}

// Title returns the display name, or the resource name when it is missing.
func (p Place) Title() string {
	if p.DisplayName != nil {
		return p.DisplayName.Text
	}
	return p.Name
}

type searchResponse struct {
	Places []Place `json:"places"`
}

type searchLocationRestriction struct {
	Circle struct {
		Center LatLng  `json:"center"`
		Radius float64 `json:"radius"`
	} `json:"circle"`
}

type searchBody struct {
	IncludedTypes        []string                  `json:"includedTypes"`
	ExcludedPrimaryTypes []string                  `json:"excludedPrimaryTypes"`
	MaxResultCount       int                       `json:"maxResultCount"`
	LocationRestriction  searchLocationRestriction `json:"locationRestriction"`
}
