package entity

// BotStatusDetail is one running bot instance within a status snapshot.
// SessionID is the identity that is stable across polls.
type BotStatusDetail struct {
	SessionID        string     `json:"session_id" validate:"required"`
	Symbol           *string    `json:"symbol"`
	Strategy         *string    `json:"strategy"`
	IsRunning        bool       `json:"is_running"`
	StartedAt        *string    `json:"started_at"`
	UptimeSeconds    *int64     `json:"uptime_seconds"`
	KillSwitchActive bool       `json:"kill_switch_active"`
	LastSignalType   *string    `json:"last_signal_type"`
	LastSignalTime   *string    `json:"last_signal_time"`
	LastHeartbeat    *string    `json:"last_heartbeat"`
	Config           *BotConfig `json:"config"`
}

// SymbolOrEmpty returns the bot's symbol, or "" when it has none.
func (b BotStatusDetail) SymbolOrEmpty() string {
	if b.Symbol == nil {
		return ""
	}
	return *b.Symbol
}

// DisplayName is the symbol when known, otherwise a short session prefix.
func (b BotStatusDetail) DisplayName() string {
	if s := b.SymbolOrEmpty(); s != "" {
		return s
	}
	if len(b.SessionID) > 8 {
		return b.SessionID[:8]
	}
	return b.SessionID
}

// BotConfig is the configuration snapshot a bot was started with.
type BotConfig struct {
	Symbol              *string     `json:"symbol"`
	Strategy            *string     `json:"strategy"`
	Broker              *string     `json:"broker"`
	TradingMode         *string     `json:"trading_mode"`
	Interval            *string     `json:"interval"`
	MLModel             *string     `json:"ml_model"`
	ConfidenceThreshold Decimal     `json:"confidence_threshold"`
	InitialBalance      Decimal     `json:"initial_balance"`
	RiskConfig          *RiskConfig `json:"risk_config"`
}

// RiskConfig holds the bot's risk limits as percentages.
type RiskConfig struct {
	MaxPositionPct  Decimal `json:"max_position_pct"`
	MaxDailyLossPct Decimal `json:"max_daily_loss_pct"`
	StopLossPct     Decimal `json:"stop_loss_pct"`
	TakeProfitPct   Decimal `json:"take_profit_pct"`
}

// BotTrade is one executed trade. Numeric fields keep their decimal text.
type BotTrade struct {
	ID        ID      `json:"id"`
	SessionID *string `json:"session_id"`
	Symbol    string  `json:"symbol" validate:"required"`
	Side      string  `json:"side" validate:"required"`
	Quantity  Decimal `json:"quantity"`
	Price     Decimal `json:"price"`
	PnL       Decimal `json:"pnl"`
	Fees      Decimal `json:"fees"`
	Timestamp string  `json:"timestamp" validate:"required"`
	IsPaper   bool    `json:"is_paper"`
}

// BotPerformance summarizes a bot's trading history.
type BotPerformance struct {
	TotalTrades    int     `json:"total_trades"`
	WinningTrades  int     `json:"winning_trades"`
	LosingTrades   int     `json:"losing_trades"`
	WinRate        Decimal `json:"win_rate"`
	TotalReturn    Decimal `json:"total_return"`
	ReturnPercent  Decimal `json:"return_percent"`
	StartBalance   Decimal `json:"start_balance"`
	CurrentBalance Decimal `json:"current_balance"`
	MaxDrawdown    Decimal `json:"max_drawdown"`
	SharpeRatio    Decimal `json:"sharpe_ratio"`
	ProfitFactor   Decimal `json:"profit_factor"`
	AverageWin     Decimal `json:"average_win"`
	AverageLoss    Decimal `json:"average_loss"`
}

// EquityDataPoint is one sample of the equity curve.
type EquityDataPoint struct {
	Timestamp   string  `json:"timestamp" validate:"required"`
	Equity      Decimal `json:"equity"`
	PnL         Decimal `json:"pnl"`
	DrawdownPct Decimal `json:"drawdown_pct"`
}
