package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalizeEnvKey(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"geocoding": map[string]any{
			"apiKey":      "",
			"countryCode": "in",
		},
		"listing": map[string]any{
			"defaultRadiusKm": 20,
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "GEOCODING_APIKEY", want: "geocoding.apiKey"},
		{envKey: "GEOCODING_COUNTRYCODE", want: "geocoding.countryCode"},
		{envKey: "LISTING_DEFAULTRADIUSKM", want: "listing.defaultRadiusKm"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			assert.Equal(t, tt.want, canonicalizeEnvKey(tt.envKey, existing))
		})
	}
}

func TestLoadWithEnv_EnvOverridesYAML(t *testing.T) {
	dir := t.TempDir()
	yamlBody := `
env:
  serviceName: estate
listing:
  defaultRadiusKm: 20
geocoding:
  provider: nominatim
  countryCode: in
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "app.yaml"), []byte(yamlBody), 0o600))

	t.Chdir(dir)
	t.Setenv("GEOCODING_PROVIDER", "opencage")
	t.Setenv("LISTING_MAXRADIUSKM", "50")

	cfg, err := LoadWithEnv[Config]("app")
	require.NoError(t, err)

	assert.Equal(t, "estate", cfg.Env.ServiceName)
	assert.Equal(t, "opencage", cfg.Geocoding.Provider)
	assert.Equal(t, "in", cfg.Geocoding.CountryCode)
	assert.InDelta(t, 20.0, cfg.Listing.DefaultRadiusKm, 1e-9)
	assert.InDelta(t, 50.0, cfg.Listing.MaxRadiusKm, 1e-9)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := LoadWithEnv[Config]("absent")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "absent.yaml not found")
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.InDelta(t, 20.0, cfg.Listing.DefaultRadiusKm, 1e-9)
	assert.InDelta(t, 28.6139, cfg.Geocoding.DefaultLatitude, 1e-9)
	assert.InDelta(t, 77.2090, cfg.Geocoding.DefaultLongitude, 1e-9)
	assert.Equal(t, "New Delhi, India", cfg.Geocoding.DefaultPlaceName)
	assert.Equal(t, 6, cfg.Auth.OTPLength)
	assert.Equal(t, 5*time.Minute, cfg.Auth.OTPTTL)

	custom := &Config{Geocoding: &GeocodingConfig{DefaultLatitude: 19.07, DefaultLongitude: 72.87, DefaultPlaceName: "Mumbai"}}
	applyDefaults(custom)
	assert.InDelta(t, 19.07, custom.Geocoding.DefaultLatitude, 1e-9)
	assert.Equal(t, "Mumbai", custom.Geocoding.DefaultPlaceName)
}
