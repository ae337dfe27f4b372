package geocoding

import (
	"log/slog"
	"net/http"

	"estate/config"
	"estate/internal/domain/constants"
	"estate/internal/domain/service"
	"estate/internal/errors"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// Params defines the required parameters
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
	Redis  *redis.Client `optional:"true"`
}

// NewGeocoder builds the configured provider, cached when Redis is available.
func NewGeocoder(params Params) (service.Geocoder, error) {
	cfg := params.Config.Geocoding
	client := &http.Client{Timeout: cfg.Timeout}

	var geocoder service.Geocoder
	switch cfg.Provider {
	case constants.GeocoderOpenCage, "":
		if cfg.APIKey == "" {
			return nil, errors.New("geocoding.apiKey is required for opencage")
		}
		geocoder = NewOpenCage(client, cfg.BaseURL, cfg.APIKey)
	case constants.GeocoderNominatim:
		geocoder = NewNominatim(client, cfg.BaseURL, cfg.UserAgent)
	default:
		return nil, errors.Errorf("unknown geocoding provider: %s", cfg.Provider)
	}

	params.Logger.Info("geocoder configured", slog.String("provider", cfg.Provider), slog.Bool("cached", params.Redis != nil))

	if params.Redis == nil {
		return geocoder, nil
	}

	return WithCache(geocoder, params.Redis, cfg.CacheTTL, params.Logger), nil
}
