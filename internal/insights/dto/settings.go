package dto

// SetAPIURLRequest is the body used to override the trading API base URL.
type SetAPIURLRequest struct {
	URL string `json:"url"`
}

// APIURLResponse describes the endpoint configuration.
type APIURLResponse struct {
	EffectiveURL   string `json:"effective_url"`
	DefaultURL     string `json:"default_url"`
	OverrideActive bool   `json:"override_active"`
}
