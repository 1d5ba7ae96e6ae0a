package common

const (
	// PreferenceNamespaceSettings is the namespace of the local preference store
	// holding the endpoint override.
	PreferenceNamespaceSettings = "settings"
	// PreferenceKeyAPIBaseURL holds the user-overridden trading API base URL.
	// Absence of the key means "use the compiled default".
	PreferenceKeyAPIBaseURL = "api_base_url"

	DefaultTimeoutSeconds = 30

	DefaultTradesLimit      = 50
	DefaultNewsLimit        = 50
	DefaultFetchHours       = 24
	DefaultEquityInterval   = "daily"
	DefaultRecentTradesSize = 20

	NewsStatusPending = "pending"
)
