package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"golang-trading-insights/internal/entity"
	"golang-trading-insights/internal/insights/dto"
	"golang-trading-insights/internal/insights/repository"
	"golang-trading-insights/pkg/common"
	"golang-trading-insights/pkg/logger"

	"github.com/patrickmn/go-cache"
)

const (
	snapshotCacheKey = "bot_status_snapshot"

	SlotBots        = "bots"
	SlotPerformance = "performance"
	SlotTrades      = "trades"
	SlotEquity      = "equity"
)

// SelectionPolicy picks the bot shown by default from a snapshot. The backend
// declares no primary bot, so this is a display choice only.
type SelectionPolicy func(bots []entity.BotStatusDetail) *entity.BotStatusDetail

// FirstBotPolicy selects entry 0.
func FirstBotPolicy(bots []entity.BotStatusDetail) *entity.BotStatusDetail {
	bot, err := FirstBot(bots)
	if err != nil {
		return nil
	}
	return bot
}

// RunningFirstPolicy prefers the first running bot and falls back to entry 0.
func RunningFirstPolicy(bots []entity.BotStatusDetail) *entity.BotStatusDetail {
	for i := range bots {
		if bots[i].IsRunning {
			return &bots[i]
		}
	}
	return FirstBotPolicy(bots)
}

// FirstBot returns entry 0 or ErrNoBotsFound.
func FirstBot(bots []entity.BotStatusDetail) (*entity.BotStatusDetail, error) {
	if len(bots) == 0 {
		return nil, ErrNoBotsFound
	}
	return &bots[0], nil
}

// FindBySymbol returns the first bot trading symbol, case-insensitively.
func FindBySymbol(bots []entity.BotStatusDetail, symbol string) (*entity.BotStatusDetail, error) {
	for i := range bots {
		if strings.EqualFold(bots[i].SymbolOrEmpty(), symbol) {
			return &bots[i], nil
		}
	}
	return nil, &DomainNotFoundError{Resource: "bot", Key: symbol}
}

// FindBySession returns the bot with the given session id.
func FindBySession(bots []entity.BotStatusDetail, sessionID string) (*entity.BotStatusDetail, error) {
	for i := range bots {
		if bots[i].SessionID == sessionID {
			return &bots[i], nil
		}
	}
	return nil, &DomainNotFoundError{Resource: "bot session", Key: sessionID}
}

// BotInsights is the composite view of the bot insights screen.
type BotInsights struct {
	AllBots       []entity.BotStatusDetail `json:"all_bots"`
	SelectedBot   *entity.BotStatusDetail  `json:"selected_bot"`
	Performance   *entity.BotPerformance   `json:"performance"`
	RecentTrades  []entity.BotTrade        `json:"recent_trades"`
	EquityData    []entity.EquityDataPoint `json:"equity_data"`
	TradesSummary entity.TradeSummary      `json:"trades_summary"`
	DegradedSlots []string                 `json:"degraded_slots,omitempty"`
}

// InsightsParams tunes one insights load. An empty SessionID selects through
// the service's SelectionPolicy.
type InsightsParams struct {
	SessionID string
}

// BotServiceConfig holds the bot insight defaults.
type BotServiceConfig struct {
	SnapshotTTL       time.Duration
	RecentTradesLimit int
	EquityInterval    string
	IsPaper           bool
	Policy            SelectionPolicy
}

// BotService wraps the bot-telemetry calls into Results and assembles the
// insights composite.
type BotService interface {
	AllBotStatus(ctx context.Context) Result[*dto.MultiBotStatusResponse]
	Trades(ctx context.Context, params dto.TradesParams) Result[*dto.BotTradesResponse]
	Performance(ctx context.Context, params dto.PerformanceParams) Result[*entity.BotPerformance]
	EquityCurve(ctx context.Context, params dto.EquityParams) Result[*dto.BotEquityResponse]
	Config(ctx context.Context) Result[*entity.BotConfig]
	FirstBotStatus(ctx context.Context) Result[*entity.BotStatusDetail]
	BotStatusBySymbol(ctx context.Context, symbol string) Result[*entity.BotStatusDetail]
	Insights(ctx context.Context, params InsightsParams) Result[*BotInsights]
	Select(bots []entity.BotStatusDetail, sessionID string) *entity.BotStatusDetail
}

// NewBotService creates a new bot service. A zero SnapshotTTL disables the
// snapshot cache so every derived lookup fetches a fresh snapshot.
func NewBotService(botRepo repository.BotAPIRepository, cfg BotServiceConfig, log *logger.Logger) BotService {
	if cfg.RecentTradesLimit <= 0 {
		cfg.RecentTradesLimit = common.DefaultRecentTradesSize
	}
	if cfg.EquityInterval == "" {
		cfg.EquityInterval = common.DefaultEquityInterval
	}
	if cfg.Policy == nil {
		cfg.Policy = FirstBotPolicy
	}

	s := &botService{
		botRepo: botRepo,
		cfg:     cfg,
		logger:  log,
	}
	if cfg.SnapshotTTL > 0 {
		s.snapshots = cache.New(cfg.SnapshotTTL, 2*cfg.SnapshotTTL)
	}
	return s
}

type botService struct {
	botRepo   repository.BotAPIRepository
	cfg       BotServiceConfig
	logger    *logger.Logger
	snapshots *cache.Cache
}

// fetchSnapshot always calls the backend and refreshes the cache.
func (s *botService) fetchSnapshot(ctx context.Context) (*dto.MultiBotStatusResponse, error) {
	snapshot, err := s.botRepo.GetBotStatus(ctx)
	if err != nil {
		return nil, err
	}
	if s.snapshots != nil {
		s.snapshots.SetDefault(snapshotCacheKey, snapshot)
	}
	return snapshot, nil
}

// snapshot returns a cached snapshot when one is fresh.
func (s *botService) snapshot(ctx context.Context) (*dto.MultiBotStatusResponse, error) {
	if s.snapshots != nil {
		if cached, ok := s.snapshots.Get(snapshotCacheKey); ok {
			return cached.(*dto.MultiBotStatusResponse), nil
		}
	}
	return s.fetchSnapshot(ctx)
}

func (s *botService) paper() *bool {
	isPaper := s.cfg.IsPaper
	return &isPaper
}

func (s *botService) AllBotStatus(ctx context.Context) Result[*dto.MultiBotStatusResponse] {
	snapshot, err := s.fetchSnapshot(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "Failed to get bot status", logger.ErrorField(err))
	}
	return From(snapshot, err)
}

func (s *botService) Trades(ctx context.Context, params dto.TradesParams) Result[*dto.BotTradesResponse] {
	trades, err := s.botRepo.GetTrades(ctx, params)
	if err != nil {
		s.logger.ErrorContext(ctx, "Failed to get bot trades", logger.ErrorField(err))
	}
	return From(trades, err)
}

// Performance treats a 404 as "no trading history yet": Success with nil data.
func (s *botService) Performance(ctx context.Context, params dto.PerformanceParams) Result[*entity.BotPerformance] {
	perf, err := s.botRepo.GetPerformance(ctx, params)
	perf, err = notFoundAsEmpty(perf, err)
	if err != nil {
		s.logger.ErrorContext(ctx, "Failed to get bot performance", logger.ErrorField(err))
	}
	return From(perf, err)
}

func (s *botService) EquityCurve(ctx context.Context, params dto.EquityParams) Result[*dto.BotEquityResponse] {
	equity, err := s.botRepo.GetEquityCurve(ctx, params)
	if err != nil {
		s.logger.ErrorContext(ctx, "Failed to get equity curve", logger.ErrorField(err))
	}
	return From(equity, err)
}

func (s *botService) Config(ctx context.Context) Result[*entity.BotConfig] {
	cfg, err := s.botRepo.GetBotConfig(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "Failed to get bot config", logger.ErrorField(err))
	}
	return From(cfg, err)
}

// FirstBotStatus fails with ErrNoBotsFound on an empty snapshot.
func (s *botService) FirstBotStatus(ctx context.Context) Result[*entity.BotStatusDetail] {
	snapshot, err := s.snapshot(ctx)
	if err != nil {
		return FromError[*entity.BotStatusDetail](err)
	}
	bot, err := FirstBot(snapshot.Bots)
	return From(bot, err)
}

// BotStatusBySymbol fails with a DomainNotFoundError when no bot trades
// symbol.
func (s *botService) BotStatusBySymbol(ctx context.Context, symbol string) Result[*entity.BotStatusDetail] {
	snapshot, err := s.snapshot(ctx)
	if err != nil {
		return FromError[*entity.BotStatusDetail](err)
	}
	bot, err := FindBySymbol(snapshot.Bots, strings.TrimSpace(symbol))
	return From(bot, err)
}

// Select keeps sessionID when it is still present, otherwise applies the
// selection policy.
func (s *botService) Select(bots []entity.BotStatusDetail, sessionID string) *entity.BotStatusDetail {
	if sessionID != "" {
		if bot, err := FindBySession(bots, sessionID); err == nil {
			return bot
		}
	}
	return s.cfg.Policy(bots)
}

// Insights loads status, performance, recent trades and the equity curve
// concurrently. The bot snapshot is the primary slot: its failure makes the
// result an Error. Any other failed slot is left empty and listed in
// DegradedSlots.
func (s *botService) Insights(ctx context.Context, params InsightsParams) Result[*BotInsights] {
	var (
		snapshot *dto.MultiBotStatusResponse
		perf     *entity.BotPerformance
		trades   *dto.BotTradesResponse
		equity   *dto.BotEquityResponse
	)

	outcomes := FetchAll(ctx, s.logger,
		Fetcher{Slot: SlotBots, Primary: true, Run: Into(&snapshot, s.fetchSnapshot)},
		Fetcher{Slot: SlotPerformance, Run: Into(&perf, func(ctx context.Context) (*entity.BotPerformance, error) {
			found, err := s.botRepo.GetPerformance(ctx, dto.PerformanceParams{IsPaper: s.paper()})
			return notFoundAsEmpty(found, err)
		})},
		Fetcher{Slot: SlotTrades, Run: Into(&trades, func(ctx context.Context) (*dto.BotTradesResponse, error) {
			return s.botRepo.GetTrades(ctx, dto.TradesParams{Limit: s.cfg.RecentTradesLimit, IsPaper: s.paper()})
		})},
		Fetcher{Slot: SlotEquity, Run: Into(&equity, func(ctx context.Context) (*dto.BotEquityResponse, error) {
			return s.botRepo.GetEquityCurve(ctx, dto.EquityParams{Interval: s.cfg.EquityInterval, IsPaper: s.paper()})
		})},
	)

	if failure := outcomes.PrimaryFailure(); failure != nil {
		return FromError[*BotInsights](failure.Err)
	}

	insights := &BotInsights{
		AllBots:      []entity.BotStatusDetail{},
		Performance:  perf,
		RecentTrades: []entity.BotTrade{},
		EquityData:   []entity.EquityDataPoint{},
	}
	if snapshot.Bots != nil {
		insights.AllBots = snapshot.Bots
	}
	insights.SelectedBot = s.Select(insights.AllBots, params.SessionID)
	if trades != nil {
		insights.RecentTrades = trades.Trades
	}
	if equity != nil {
		insights.EquityData = equity.DataPoints
	}
	for _, failed := range outcomes.Failed() {
		insights.DegradedSlots = append(insights.DegradedSlots, failed.Slot)
	}

	summary, err := entity.SummarizeTrades(insights.RecentTrades)
	if err != nil {
		s.logger.WarnContext(ctx, "Failed to summarize trades", logger.ErrorField(err))
	}
	insights.TradesSummary = summary

	return Success(insights)
}

// IsNoBotsFound reports whether err is ErrNoBotsFound.
func IsNoBotsFound(err error) bool {
	return errors.Is(err, ErrNoBotsFound)
}
