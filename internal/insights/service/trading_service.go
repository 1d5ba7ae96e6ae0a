package service

import (
	"context"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang-trading-insights/internal/entity"
	"golang-trading-insights/internal/insights/dto"
	"golang-trading-insights/internal/insights/repository"
	"golang-trading-insights/pkg/logger"

	"go.uber.org/zap"
)

const maxSymbolLength = 10

// TradingService wraps the trading backend calls into Results.
type TradingService interface {
	ListTickers(ctx context.Context) Result[[]entity.Ticker]
	AddTicker(ctx context.Context, symbol, name string) Result[*entity.Ticker]
	RemoveTicker(ctx context.Context, symbol string) Result[struct{}]
	GetTicker(ctx context.Context, symbol string) Result[*entity.Ticker]
	GetTickerNews(ctx context.Context, symbol string, params dto.NewsParams) Result[*dto.NewsListResponse]
	GetTickerSentiment(ctx context.Context, symbol string) Result[*entity.TickerSentiment]
	RefreshTicker(ctx context.Context, symbol string, hours int) Result[string]
	AnalyzeTicker(ctx context.Context, symbol string) Result[string]
	GetAPIStatus(ctx context.Context) Result[*entity.APIStatus]
}

// NewTradingService creates a new trading service.
func NewTradingService(tradingRepo repository.TradingAPIRepository, log *logger.Logger) TradingService {
	return &tradingService{
		tradingRepo: tradingRepo,
		logger:      log,
	}
}

type tradingService struct {
	tradingRepo repository.TradingAPIRepository
	logger      *logger.Logger
}

// NormalizeSymbol trims and upper-cases symbol and checks it is 1-10 letters
// or digits.
func NormalizeSymbol(symbol string) (string, error) {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	if symbol == "" {
		return "", &ValidationError{Field: "ticker", Message: "Ticker symbol is required"}
	}
	if utf8.RuneCountInString(symbol) > maxSymbolLength {
		return "", &ValidationError{Field: "ticker", Message: "Ticker must be 1-10 characters"}
	}
	for _, r := range symbol {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return "", &ValidationError{Field: "ticker", Message: "Ticker must contain only letters and digits"}
		}
	}
	return symbol, nil
}

func (s *tradingService) fail(ctx context.Context, msg string, err error, fields ...zap.Field) {
	if IsValidation(err) {
		return
	}
	s.logger.ErrorContext(ctx, msg, append(fields, logger.ErrorField(err))...)
}

// ListTickers returns every tracked ticker.
func (s *tradingService) ListTickers(ctx context.Context) Result[[]entity.Ticker] {
	resp, err := s.tradingRepo.ListTickers(ctx)
	if err != nil {
		s.fail(ctx, "Failed to list tickers", err)
		return FromError[[]entity.Ticker](err)
	}
	return Success(resp.Tickers)
}

// AddTicker validates and upper-cases the symbol before calling the backend.
// A blank name is sent as null.
func (s *tradingService) AddTicker(ctx context.Context, symbol, name string) Result[*entity.Ticker] {
	normalized, err := NormalizeSymbol(symbol)
	if err != nil {
		return FromError[*entity.Ticker](err)
	}

	req := dto.TickerCreateRequest{Ticker: normalized}
	if trimmed := strings.TrimSpace(name); trimmed != "" {
		req.Name = &trimmed
	}

	ticker, err := s.tradingRepo.AddTicker(ctx, req)
	if err != nil {
		s.fail(ctx, "Failed to add ticker", err, logger.StringField("ticker", normalized))
		return FromError[*entity.Ticker](err)
	}
	s.logger.InfoContext(ctx, "Ticker added", logger.StringField("ticker", normalized))
	return Success(ticker)
}

// RemoveTicker stops tracking symbol.
func (s *tradingService) RemoveTicker(ctx context.Context, symbol string) Result[struct{}] {
	normalized, err := NormalizeSymbol(symbol)
	if err != nil {
		return FromError[struct{}](err)
	}
	if err := s.tradingRepo.RemoveTicker(ctx, normalized); err != nil {
		s.fail(ctx, "Failed to remove ticker", err, logger.StringField("ticker", normalized))
		return FromError[struct{}](err)
	}
	s.logger.InfoContext(ctx, "Ticker removed", logger.StringField("ticker", normalized))
	return Success(struct{}{})
}

func (s *tradingService) GetTicker(ctx context.Context, symbol string) Result[*entity.Ticker] {
	normalized, err := NormalizeSymbol(symbol)
	if err != nil {
		return FromError[*entity.Ticker](err)
	}
	ticker, err := s.tradingRepo.GetTicker(ctx, normalized)
	if err != nil {
		s.fail(ctx, "Failed to get ticker", err, logger.StringField("ticker", normalized))
	}
	return From(ticker, err)
}

func (s *tradingService) GetTickerNews(ctx context.Context, symbol string, params dto.NewsParams) Result[*dto.NewsListResponse] {
	normalized, err := NormalizeSymbol(symbol)
	if err != nil {
		return FromError[*dto.NewsListResponse](err)
	}
	news, err := s.tradingRepo.GetTickerNews(ctx, normalized, params)
	if err != nil {
		s.fail(ctx, "Failed to get ticker news", err, logger.StringField("ticker", normalized))
	}
	return From(news, err)
}

func (s *tradingService) GetTickerSentiment(ctx context.Context, symbol string) Result[*entity.TickerSentiment] {
	normalized, err := NormalizeSymbol(symbol)
	if err != nil {
		return FromError[*entity.TickerSentiment](err)
	}
	sentiment, err := s.tradingRepo.GetTickerSentiment(ctx, normalized)
	if err != nil {
		s.fail(ctx, "Failed to get ticker sentiment", err, logger.StringField("ticker", normalized))
	}
	return From(sentiment, err)
}

// RefreshTicker asks the backend to fetch news for the last hours (default
// 24) and returns its acknowledgement message.
func (s *tradingService) RefreshTicker(ctx context.Context, symbol string, hours int) Result[string] {
	normalized, err := NormalizeSymbol(symbol)
	if err != nil {
		return FromError[string](err)
	}
	ack, err := s.tradingRepo.TriggerFetch(ctx, normalized, dto.FetchParams{Hours: hours})
	if err != nil {
		s.fail(ctx, "Failed to trigger news fetch", err, logger.StringField("ticker", normalized))
		return FromError[string](err)
	}
	return Success(ackMessage(ack, "Refresh triggered"))
}

// AnalyzeTicker asks the backend to analyze pending news.
func (s *tradingService) AnalyzeTicker(ctx context.Context, symbol string) Result[string] {
	normalized, err := NormalizeSymbol(symbol)
	if err != nil {
		return FromError[string](err)
	}
	ack, err := s.tradingRepo.TriggerAnalysis(ctx, normalized)
	if err != nil {
		s.fail(ctx, "Failed to trigger analysis", err, logger.StringField("ticker", normalized))
		return FromError[string](err)
	}
	return Success(ackMessage(ack, "Analysis triggered"))
}

func (s *tradingService) GetAPIStatus(ctx context.Context) Result[*entity.APIStatus] {
	status, err := s.tradingRepo.GetAPIStatus(ctx)
	if err != nil {
		s.logger.DebugContext(ctx, "API status unavailable", logger.ErrorField(err))
	}
	return From(status, err)
}

func ackMessage(ack *dto.ActionResponse, fallback string) string {
	if ack == nil || ack.Message == "" {
		return fallback
	}
	return ack.Message
}
