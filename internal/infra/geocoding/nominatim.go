package geocoding

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"estate/internal/domain/entity"
	"estate/internal/domain/service"
	"estate/internal/errors"
)

const defaultNominatimURL = "https://nominatim.openstreetmap.org"

type nominatimPlace struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
}

type nominatimReverse struct {
	DisplayName string `json:"display_name"`
	Error       string `json:"error"`
}

type nominatimGeocoder struct {
	client    *http.Client
	baseURL   string
	userAgent string
}

// NewNominatim returns a Geocoder backed by an OpenStreetMap Nominatim server.
// Nominatim's usage policy requires an identifying User-Agent.
func NewNominatim(client *http.Client, baseURL, userAgent string) service.Geocoder {
	if baseURL == "" {
		baseURL = defaultNominatimURL
	}

	return &nominatimGeocoder{client: client, baseURL: strings.TrimRight(baseURL, "/"), userAgent: userAgent}
}

func (g *nominatimGeocoder) Forward(ctx context.Context, query, countryCode string) ([]service.GeocodeResult, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("format", "jsonv2")
	params.Set("limit", strconv.Itoa(forwardResultLimit))
	if countryCode != "" {
		params.Set("countrycodes", strings.ToLower(countryCode))
	}

	var places []nominatimPlace
	if err := getJSON(ctx, g.client, g.baseURL+"/search?"+params.Encode(), g.userAgent, &places); err != nil {
		return nil, errors.Wrap(err, "nominatim search")
	}

	results := make([]service.GeocodeResult, 0, len(places))
	for _, p := range places {
		lat, latErr := strconv.ParseFloat(p.Lat, 64)
		lng, lngErr := strconv.ParseFloat(p.Lon, 64)
		if latErr != nil || lngErr != nil {
			continue
		}
		results = append(results, service.GeocodeResult{
			Point:       entity.GeoPoint{Latitude: lat, Longitude: lng},
			DisplayName: p.DisplayName,
		})
	}

	return results, nil
}

func (g *nominatimGeocoder) Reverse(ctx context.Context, point entity.GeoPoint) (string, error) {
	params := url.Values{}
	params.Set("lat", strconv.FormatFloat(point.Latitude, 'f', -1, 64))
	params.Set("lon", strconv.FormatFloat(point.Longitude, 'f', -1, 64))
	params.Set("format", "jsonv2")

	var out nominatimReverse
	if err := getJSON(ctx, g.client, g.baseURL+"/reverse?"+params.Encode(), g.userAgent, &out); err != nil {
		return "", errors.Wrap(err, "nominatim reverse")
	}

	// Nominatim answers 200 with an error field for points it cannot name.
	if out.Error != "" {
		return "", nil
	}

	return out.DisplayName, nil
}
