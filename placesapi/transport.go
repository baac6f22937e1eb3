package placesapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

const (
	DefaultEndpoint = "https://places.googleapis.com/v1/places:searchNearby"

	headerAPIKey    = "X-Goog-Api-Key"
	headerFieldMask = "X-Goog-FieldMask"

	// lodging results are never wanted on a restaurant map
	excludedPrimaryType = "hotel"
)

// FieldMask lists exactly the place fields the renderer consumes.
var FieldMask = strings.Join([]string{
	"places.name",
	"places.types",
	"places.displayName",
	"places.location",
	"places.internationalPhoneNumber",
	"places.formattedAddress",
	"places.rating",
	"places.priceLevel",
	"places.reviews",
	"places.currentOpeningHours",
	"places.primaryTypeDisplayName",
}, ",")

var ErrInvalidRequest = errors.New("invalid search request")

var defaultHTTPClient = &http.Client{
	Timeout: 15 * time.Second,
}

var validate = validator.New()

// Validate checks the request against the bounds the places API accepts.
func (r SearchRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}
	return nil
}

// ValidatePlace reports whether a place carries every field the renderer
// treats as required.
func ValidatePlace(p Place) error {
	return validate.Struct(p)
}

type Client struct {
	key       string
	endpoint  string
	debugFile string
}

type Option func(*Client)

func WithEndpoint(endpoint string) Option {
	return func(c *Client) {
		c.endpoint = endpoint
	}
}

// WithDebugFile sets where the raw response body is written. An empty path
// disables the copy.
func WithDebugFile(path string) Option {
	return func(c *Client) {
		c.debugFile = path
	}
}

func NewClient(key string, opts ...Option) *Client {
	c := &Client{
		key:       key,
		endpoint:  DefaultEndpoint,
		debugFile: DefaultDebugFile,
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

func newSearchBody(req SearchRequest) searchBody {
	body := searchBody{
		IncludedTypes:        req.Types,
		ExcludedPrimaryTypes: []string{excludedPrimaryType},
		MaxResultCount:       req.MaxResultCount,
	}
	body.LocationRestriction.Circle.Center = LatLng{Latitude: req.Latitude, Longitude: req.Longitude}
	body.LocationRestriction.Circle.Radius = req.Radius
	return body
}

func (c *Client) postJSON(ctx context.Context, in interface{}) ([]byte, error) {
	payload, err := json.Marshal(in)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(headerAPIKey, c.key)
	req.Header.Set(headerFieldMask, FieldMask)

	resp, err := defaultHTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("places request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		content, readErr := io.ReadAll(io.LimitReader(resp.Body, 4096))
		if readErr != nil {
			return nil, fmt.Errorf("request failed with status %s", resp.Status)
		}
		msg := strings.TrimSpace(string(content))
		if msg == "" {
			return nil, fmt.Errorf("request failed with status %s", resp.Status)
		}
		return nil, fmt.Errorf("request failed with status %s: %s", resp.Status, msg)
	}

	return io.ReadAll(resp.Body)
}

// SearchNearby issues a single nearby search. The raw body is copied to the
// debug file before parsing. There is no retry.
func (c *Client) SearchNearby(ctx context.Context, req SearchRequest) ([]Place, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	content, err := c.postJSON(ctx, newSearchBody(req))
	if err != nil {
		return nil, err
	}

	if c.debugFile != "" {
		if err := writeDebugFile(c.debugFile, content); err != nil {
			return nil, err
		}
	}

	return parsePlaces(content)
}

func parsePlaces(content []byte) ([]Place, error) {
	var resp searchResponse
	if err := json.Unmarshal(content, &resp); err != nil {
		return nil, fmt.Errorf("decode places response: %w", err)
	}
	return resp.Places, nil
}
