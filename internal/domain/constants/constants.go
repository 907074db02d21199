// Package constants holds values shared across layers.
package constants

const (
	// EnvDevelop is the development environment name.
	EnvDevelop = "develop"

	// PubSubProviderLocal pushes events to a local worker over HTTP.
	PubSubProviderLocal = "local"
	// PubSubProviderGoogle publishes events to Google Cloud Pub/Sub.
	PubSubProviderGoogle = "google"

	// LocatorPostGIS resolves connections with PostGIS queries.
	LocatorPostGIS = "postgis"
	// LocatorMemory resolves connections against an in-memory grid of all roads.
	LocatorMemory = "memory"
)
