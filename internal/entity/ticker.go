package entity

// Ticker is a tracked symbol with its optional aggregated sentiment.
type Ticker struct {
	ID        int              `json:"id"`
	Ticker    string           `json:"ticker" validate:"required"`
	Name      *string          `json:"name"`
	AddedAt   string           `json:"added_at"`
	IsActive  bool             `json:"is_active"`
	Sentiment *TickerSentiment `json:"sentiment"`
}

// TickerSentiment is the server-side aggregate of analyzed news for a ticker.
type TickerSentiment struct {
	Ticker          string  `json:"ticker" validate:"required"`
	Score           float64 `json:"score"`
	NormalizedScore float64 `json:"normalized_score"`
	SentimentLabel  *string `json:"sentiment_label"`
	Signal          *string `json:"signal"`
	Confidence      float64 `json:"confidence"`
	PositiveCount   int     `json:"positive_count"`
	NegativeCount   int     `json:"negative_count"`
	NeutralCount    int     `json:"neutral_count"`
	TotalAnalyzed   int     `json:"total_analyzed"`
	TotalPending    int     `json:"total_pending"`
	UpdatedAt       *string `json:"updated_at"`
}

// Level classifies the normalized score for display.
func (s TickerSentiment) Level() SentimentLevel {
	return LevelFromScore(s.NormalizedScore)
}

// Trend classifies the direction of the normalized score.
func (s TickerSentiment) Trend() Trend {
	return TrendFromScore(s.NormalizedScore)
}
