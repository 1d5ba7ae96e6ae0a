package entity

// SentimentLevel is the display bucket of a sentiment score or label.
type SentimentLevel string

const (
	SentimentHighlyPositive SentimentLevel = "Highly Positive"
	SentimentPositive       SentimentLevel = "Positive"
	SentimentNeutral        SentimentLevel = "Neutral"
	SentimentNegative       SentimentLevel = "Negative"
	SentimentHighlyNegative SentimentLevel = "Highly Negative"
)

// LevelFromScore buckets a normalized score.
func LevelFromScore(score float64) SentimentLevel {
	switch {
	case score >= 0.5:
		return SentimentHighlyPositive
	case score >= 0.2:
		return SentimentPositive
	case score >= -0.2:
		return SentimentNeutral
	case score >= -0.5:
		return SentimentNegative
	default:
		return SentimentHighlyNegative
	}
}

// LevelFromLabel maps a server label; unknown labels are neutral.
func LevelFromLabel(label *string) SentimentLevel {
	if label == nil {
		return SentimentNeutral
	}
	switch l := SentimentLevel(*label); l {
	case SentimentHighlyPositive, SentimentPositive, SentimentNegative, SentimentHighlyNegative:
		return l
	default:
		return SentimentNeutral
	}
}

// Signal is the trading recommendation derived from sentiment.
type Signal string

const (
	SignalStrongBuy  Signal = "STRONG BUY"
	SignalBuy        Signal = "BUY"
	SignalHold       Signal = "HOLD"
	SignalSell       Signal = "SELL"
	SignalStrongSell Signal = "STRONG SELL"
)

// SignalFrom maps a server signal; unknown or missing signals are HOLD.
func SignalFrom(signal *string) Signal {
	if signal == nil {
		return SignalHold
	}
	switch s := Signal(*signal); s {
	case SignalStrongBuy, SignalBuy, SignalSell, SignalStrongSell:
		return s
	default:
		return SignalHold
	}
}

// Trend is the direction shown next to a score.
type Trend string

const (
	TrendUp   Trend = "up"
	TrendFlat Trend = "flat"
	TrendDown Trend = "down"
)

// TrendFromScore uses a ±0.1 dead band.
func TrendFromScore(score float64) Trend {
	switch {
	case score > 0.1:
		return TrendUp
	case score < -0.1:
		return TrendDown
	default:
		return TrendFlat
	}
}
