// Package constants holds shared application-level constants.
package constants

// Deployment environments.
const (
	EnvDevelop    = "develop"
	EnvProduction = "production"
)

// Pub/Sub provider types.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)
