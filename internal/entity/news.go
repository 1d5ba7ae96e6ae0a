package entity

// NewsItem is a news article attached to a ticker together with its analysis.
// Status moves from "pending" to analyzed on the server.
type NewsItem struct {
	ID             int      `json:"id"`
	Ticker         string   `json:"ticker" validate:"required"`
	Title          string   `json:"title" validate:"required"`
	Summary        string   `json:"summary"`
	PublishedDate  *string  `json:"published_date"`
	Source         *string  `json:"source"`
	URL            *string  `json:"url"`
	RelevanceScore *float64 `json:"relevance_score"`
	Status         string   `json:"status" validate:"required"`
	Sentiment      *string  `json:"sentiment"`
	Justification  *string  `json:"justification"`
	FetchedAt      string   `json:"fetched_at"`
	AnalyzedAt     *string  `json:"analyzed_at"`
}

// IsPending reports whether the item still awaits analysis.
func (n NewsItem) IsPending() bool {
	return n.Status == "pending"
}

// APIServiceStatus is the availability of one upstream service used by the
// trading backend.
type APIServiceStatus struct {
	Available     bool    `json:"available"`
	CooldownUntil *string `json:"cooldown_until"`
	Message       *string `json:"message"`
}

// APIStatus reports the upstream services the backend depends on for
// fetching and analysis.
type APIStatus struct {
	Gemini       APIServiceStatus `json:"gemini"`
	AlphaVantage APIServiceStatus `json:"alpha_vantage"`
}
