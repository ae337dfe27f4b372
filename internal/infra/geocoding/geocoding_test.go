package geocoding

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"estate/internal/domain/entity"
	"estate/internal/domain/service"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestOpenCage_Forward(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Koregaon Park, Pune", r.URL.Query().Get("q"))
		assert.Equal(t, "in", r.URL.Query().Get("countrycode"))
		assert.Equal(t, "secret", r.URL.Query().Get("key"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"results":[
			{"formatted":"Koregaon Park, Pune, Maharashtra, India","geometry":{"lat":18.5362,"lng":73.8939}},
			{"formatted":"Koregaon, Satara","geometry":{"lat":17.7,"lng":74.1}}
		],"status":{"code":200,"message":"OK"}}`)
	}))
	defer srv.Close()

	g := NewOpenCage(srv.Client(), srv.URL, "secret")

	results, err := g.Forward(context.Background(), "Koregaon Park, Pune", "in")
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "Koregaon Park, Pune, Maharashtra, India", results[0].DisplayName)
	assert.InDelta(t, 18.5362, results[0].Point.Latitude, 1e-9)
	assert.InDelta(t, 73.8939, results[0].Point.Longitude, 1e-9)
}

func TestOpenCage_ReverseEmpty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "0.000000,0.000000", r.URL.Query().Get("q"))
		_, _ = io.WriteString(w, `{"results":[],"status":{"code":200,"message":"OK"}}`)
	}))
	defer srv.Close()

	name, err := NewOpenCage(srv.Client(), srv.URL, "k").Reverse(context.Background(), entity.GeoPoint{})
	require.NoError(t, err)
	assert.Empty(t, name)
}

func TestOpenCage_ProviderErrorIsUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, `{"status":{"code":402,"message":"quota exceeded"}}`, http.StatusPaymentRequired)
	}))
	defer srv.Close()

	_, err := NewOpenCage(srv.Client(), srv.URL, "k").Forward(context.Background(), "Pune", "in")
	require.Error(t, err)
	assert.ErrorIs(t, err, service.ErrGeocoderUnavailable)
	assert.Contains(t, err.Error(), "status 402")
}

func TestNominatim_ForwardAndReverse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "estate-test/1.0", r.Header.Get("User-Agent"))

		switch r.URL.Path {
		case "/search":
			assert.Equal(t, "in", r.URL.Query().Get("countrycodes"))
			_, _ = io.WriteString(w, `[{"lat":"19.0760","lon":"72.8777","display_name":"Mumbai, Maharashtra, India"},{"lat":"bad","lon":"1","display_name":"skipped"}]`)
		case "/reverse":
			if r.URL.Query().Get("lat") == "0" {
				_, _ = io.WriteString(w, `{"error":"Unable to geocode"}`)

				return
			}
			_, _ = io.WriteString(w, `{"display_name":"Bandra West, Mumbai"}`)
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	g := NewNominatim(srv.Client(), srv.URL+"/", "estate-test/1.0")

	results, err := g.Forward(context.Background(), "Mumbai", "IN")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.InDelta(t, 19.076, results[0].Point.Latitude, 1e-9)

	name, err := g.Reverse(context.Background(), entity.GeoPoint{Latitude: 19.06, Longitude: 72.83})
	require.NoError(t, err)
	assert.Equal(t, "Bandra West, Mumbai", name)

	name, err = g.Reverse(context.Background(), entity.GeoPoint{})
	require.NoError(t, err)
	assert.Empty(t, name)
}

func TestGetJSON_TransportFailure(t *testing.T) {
	client := &http.Client{Timeout: 50 * time.Millisecond}

	var out map[string]any
	err := getJSON(context.Background(), client, "http://127.0.0.1:1/unreachable", "", &out)
	assert.ErrorIs(t, err, service.ErrGeocoderUnavailable)
}

type countingGeocoder struct {
	forwardCalls atomic.Int32
	reverseCalls atomic.Int32
	results      []service.GeocodeResult
	name         string
}

func (c *countingGeocoder) Forward(context.Context, string, string) ([]service.GeocodeResult, error) {
	c.forwardCalls.Add(1)

	return c.results, nil
}

func (c *countingGeocoder) Reverse(context.Context, entity.GeoPoint) (string, error) {
	c.reverseCalls.Add(1)

	return c.name, nil
}

func TestWithCache(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()

	inner := &countingGeocoder{
		results: []service.GeocodeResult{{Point: entity.GeoPoint{Latitude: 12.97, Longitude: 77.59}, DisplayName: "Bengaluru"}},
		name:    "MG Road, Bengaluru",
	}
	g := WithCache(inner, client, time.Hour, newDiscardLogger())
	ctx := context.Background()

	for range 2 {
		results, err := g.Forward(ctx, "  Bengaluru ", "in")
		require.NoError(t, err)
		assert.Equal(t, inner.results, results)
	}
	_, err := g.Forward(ctx, "bengaluru", "IN")
	require.NoError(t, err)
	assert.Equal(t, int32(1), inner.forwardCalls.Load(), "normalized queries share one cache entry")

	point := entity.GeoPoint{Latitude: 12.97599, Longitude: 77.60592}
	for range 2 {
		name, err := g.Reverse(ctx, point)
		require.NoError(t, err)
		assert.Equal(t, "MG Road, Bengaluru", name)
	}
	assert.Equal(t, int32(1), inner.reverseCalls.Load())
}

func TestWithCache_DoesNotCacheMisses(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()

	inner := &countingGeocoder{}
	g := WithCache(inner, client, time.Hour, newDiscardLogger())

	for range 2 {
		results, err := g.Forward(context.Background(), "nowhere", "in")
		require.NoError(t, err)
		assert.Empty(t, results)
	}
	assert.Equal(t, int32(2), inner.forwardCalls.Load())
}
