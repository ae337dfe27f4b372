// Package geocoding implements service.Geocoder against OpenCage and
// Nominatim, with an optional Redis cache in front.
package geocoding

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"estate/internal/domain/entity"
	"estate/internal/domain/service"
	"estate/internal/errors"
)

const (
	defaultOpenCageURL = "https://api.opencagedata.com/geocode/v1/json"
	forwardResultLimit = 5
)

type openCageResponse struct {
	Results []struct {
		Formatted string `json:"formatted"`
		Geometry  struct {
			Lat float64 `json:"lat"`
			Lng float64 `json:"lng"`
		} `json:"geometry"`
	} `json:"results"`
	Status struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"status"`
}

type openCageGeocoder struct {
	client  *http.Client
	baseURL string
	apiKey  string
}

// NewOpenCage returns a Geocoder backed by the OpenCage Data API.
func NewOpenCage(client *http.Client, baseURL, apiKey string) service.Geocoder {
	if baseURL == "" {
		baseURL = defaultOpenCageURL
	}

	return &openCageGeocoder{client: client, baseURL: baseURL, apiKey: apiKey}
}

func (g *openCageGeocoder) Forward(ctx context.Context, query, countryCode string) ([]service.GeocodeResult, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("limit", strconv.Itoa(forwardResultLimit))
	if countryCode != "" {
		params.Set("countrycode", countryCode)
	}

	resp, err := g.get(ctx, params)
	if err != nil {
		return nil, err
	}

	results := make([]service.GeocodeResult, 0, len(resp.Results))
	for _, r := range resp.Results {
		results = append(results, service.GeocodeResult{
			Point:       entity.GeoPoint{Latitude: r.Geometry.Lat, Longitude: r.Geometry.Lng},
			DisplayName: r.Formatted,
		})
	}

	return results, nil
}

func (g *openCageGeocoder) Reverse(ctx context.Context, point entity.GeoPoint) (string, error) {
	params := url.Values{}
	params.Set("q", fmt.Sprintf("%f,%f", point.Latitude, point.Longitude))
	params.Set("limit", "1")

	resp, err := g.get(ctx, params)
	if err != nil {
		return "", err
	}
	if len(resp.Results) == 0 {
		return "", nil
	}

	return resp.Results[0].Formatted, nil
}

func (g *openCageGeocoder) get(ctx context.Context, params url.Values) (*openCageResponse, error) {
	params.Set("key", g.apiKey)
	params.Set("no_annotations", "1")

	var out openCageResponse
	if err := getJSON(ctx, g.client, g.baseURL+"?"+params.Encode(), "", &out); err != nil {
		return nil, errors.Wrap(err, "opencage")
	}

	return &out, nil
}
