package presenter

import (
	"context"

	"golang-trading-insights/internal/insights/service"
	"golang-trading-insights/pkg/logger"
)

// BotInsightsState is the bot insights screen.
type BotInsightsState struct {
	Insights     service.Result[*service.BotInsights] `json:"insights"`
	IsRefreshing bool                                 `json:"is_refreshing"`
}

// BotInsightsPresenter drives the bot insights screen.
type BotInsightsPresenter struct {
	bots   service.BotService
	state  *State[BotInsightsState]
	scope  *Scope
	logger *logger.Logger
}

// NewBotInsightsPresenter creates a BotInsightsPresenter in the Loading state.
func NewBotInsightsPresenter(ctx context.Context, bots service.BotService, log *logger.Logger) *BotInsightsPresenter {
	return &BotInsightsPresenter{
		bots:   bots,
		state:  NewState(BotInsightsState{Insights: service.Loading[*service.BotInsights]()}),
		scope:  NewScope(ctx, log),
		logger: log,
	}
}

// State exposes the published state.
func (p *BotInsightsPresenter) State() *State[BotInsightsState] { return p.state }

// Load replaces the screen with Loading and fetches every slot.
func (p *BotInsightsPresenter) Load() bool {
	return p.scope.Go("load_bot_insights", func(ctx context.Context) {
		selected := p.selectedSession()
		p.state.Update(func(s BotInsightsState) BotInsightsState {
			s.Insights = service.Loading[*service.BotInsights]()
			return s
		})
		p.publish(ctx, selected)
	})
}

// Refresh fetches every slot while the previous result stays on screen.
func (p *BotInsightsPresenter) Refresh() bool {
	return p.scope.Go("refresh_bot_insights", p.RefreshContext)
}

// RefreshContext is the synchronous form of Refresh used by background
// pollers.
func (p *BotInsightsPresenter) RefreshContext(ctx context.Context) {
	p.state.Update(func(s BotInsightsState) BotInsightsState {
		s.IsRefreshing = true
		return s
	})
	p.publish(ctx, p.selectedSession())
}

func (p *BotInsightsPresenter) publish(ctx context.Context, sessionID string) {
	result := p.bots.Insights(ctx, service.InsightsParams{SessionID: sessionID})
	if p.scope.Closed() {
		return
	}
	p.state.Set(BotInsightsState{Insights: result})
}

func (p *BotInsightsPresenter) selectedSession() string {
	if insights, ok := p.state.Value().Insights.Get(); ok && insights != nil && insights.SelectedBot != nil {
		return insights.SelectedBot.SessionID
	}
	return ""
}

// SelectBot switches the selected bot within the current snapshot without
// refetching.
func (p *BotInsightsPresenter) SelectBot(sessionID string) error {
	var selectErr error
	p.state.Update(func(s BotInsightsState) BotInsightsState {
		insights, ok := s.Insights.Get()
		if !ok || insights == nil {
			selectErr = &service.DomainNotFoundError{Resource: "bot session", Key: sessionID}
			return s
		}
		bot, err := service.FindBySession(insights.AllBots, sessionID)
		if err != nil {
			selectErr = err
			return s
		}
		next := *insights
		next.SelectedBot = bot
		s.Insights = service.Success(&next)
		return s
	})
	return selectErr
}

// Wait blocks until pending actions finish.
func (p *BotInsightsPresenter) Wait() { p.scope.Wait() }

// Close cancels pending actions.
func (p *BotInsightsPresenter) Close() { p.scope.Close() }
