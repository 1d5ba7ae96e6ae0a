package presenter

import (
	"context"
	"testing"

	"golang-trading-insights/pkg/logger"
	"golang-trading-insights/pkg/restclient"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTickerDetailPresenter_LoadWithSecondaryFailures(t *testing.T) {
	trading := &fakeTrading{newsErr: errNetwork}
	p := NewTickerDetailPresenter(context.Background(), trading, logger.NewNop())

	p.Load("AAPL")
	p.Wait()

	state := p.State().Value()
	assert.False(t, state.IsLoading)
	assert.Empty(t, state.Error)
	require.NotNil(t, state.Ticker)
	assert.Equal(t, "AAPL", state.Ticker.Ticker)
	assert.Empty(t, state.News)
	assert.Nil(t, state.APIStatus)
}

func TestTickerDetailPresenter_PrimaryFailureIsScreenError(t *testing.T) {
	trading := &fakeTrading{tickerErr: &restclient.HTTPStatusError{StatusCode: 404, Message: "Ticker not found"}}
	p := NewTickerDetailPresenter(context.Background(), trading, logger.NewNop())

	p.Load("NOPE")
	p.Wait()

	state := p.State().Value()
	assert.False(t, state.IsLoading)
	assert.Equal(t, "Error: 404 - Ticker not found", state.Error)
	assert.Nil(t, state.Ticker)
}

func TestTickerDetailPresenter_FetchNewsReloads(t *testing.T) {
	trading := &fakeTrading{}
	p := NewTickerDetailPresenter(context.Background(), trading, logger.NewNop())

	p.FetchNews("AAPL")
	p.Wait()

	state := p.State().Value()
	assert.False(t, state.IsFetching)
	assert.Equal(t, "Fetched 4 articles", state.ActionMessage)
	assert.Equal(t, 1, trading.detailCalls)
	assert.Len(t, state.News, 1)
	assert.Equal(t, 1, state.PendingCount)
}

func TestTickerDetailPresenter_AnalyzeFailureShowsMessage(t *testing.T) {
	trading := &fakeTrading{}
	p := NewTickerDetailPresenter(context.Background(), trading, logger.NewNop())

	p.AnalyzeNews("AAPL")
	p.Wait()

	state := p.State().Value()
	assert.False(t, state.IsAnalyzing)
	assert.Equal(t, "Error: 429 - Gemini cooldown", state.ActionMessage)
	assert.Equal(t, 0, trading.detailCalls)

	p.ClearActionMessage()
	assert.Empty(t, p.State().Value().ActionMessage)
}

func TestTickerDetailPresenter_CancelledLoadPublishesError(t *testing.T) {
	p := NewTickerDetailPresenter(context.Background(), &fakeTrading{}, logger.NewNop())
	defer p.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	p.load(ctx, "AAPL")

	state := p.State().Value()
	assert.False(t, state.IsLoading)
	assert.Equal(t, "context canceled", state.Error)
}
