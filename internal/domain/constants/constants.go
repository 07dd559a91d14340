package constants

// Environments
const (
	EnvDevelop    = "develop"
	EnvProduction = "production"
)

// Pub/Sub providers
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Notification channels
const (
	NotificationProviderSMTP     = "smtp"
	NotificationProviderFirebase = "firebase"
	NotificationProviderPubSub   = "pubsub"
	NotificationProviderLog      = "log"
)

// Context keys set by the auth middleware
const (
	ContextKeyUserID = "userID"
	ContextKeyRole   = "role"
)

// SRID is the spatial reference used for all stored geometry (WGS 84)
const SRID = 4326
