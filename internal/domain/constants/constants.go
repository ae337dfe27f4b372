// Package constants holds configuration values shared across layers.
package constants

const (
	EnvDevelop    = "develop"
	EnvProduction = "production"
)

// Event publisher providers.
const (
	PubSubProviderLocal    = "local"
	PubSubProviderGoogle   = "google"
	PubSubProviderRabbitMQ = "rabbitmq"
	PubSubProviderNoop     = "noop"
)

// Geocoding providers.
const (
	GeocoderOpenCage  = "opencage"
	GeocoderNominatim = "nominatim"
)

// Image storage providers.
const (
	StorageCloudinary = "cloudinary"
	StorageBlob       = "blob"
)

// Cache key prefixes.
const (
	CachePrefixListingFeed = "listings:all"
	CachePrefixGeocode     = "geocode"
)
