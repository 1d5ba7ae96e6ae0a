package presenter

import (
	"context"
	"errors"
	"testing"
	"time"

	"golang-trading-insights/internal/insights/service"
	"golang-trading-insights/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const defaultURL = "http://10.0.2.2:8000"

func newSettingsPresenter(t *testing.T, prefs *memoryPreferences) (*SettingsPresenter, service.SettingsService) {
	t.Helper()
	settings := service.NewSettingsService(prefs, "", defaultURL, logger.NewNop())
	p := NewSettingsPresenter(context.Background(), settings, logger.NewNop())
	t.Cleanup(p.Close)
	return p, settings
}

func TestSettingsPresenter_SeedsFromStore(t *testing.T) {
	prefs := &memoryPreferences{values: map[string]string{"settings/api_base_url": "https://saved.example.com"}}
	p, _ := newSettingsPresenter(t, prefs)

	state := p.State().Value()
	assert.Equal(t, "https://saved.example.com", state.CurrentURL)
	assert.Equal(t, "https://saved.example.com", state.InputURL)
	assert.Equal(t, defaultURL, state.DefaultURL)
	assert.True(t, state.IsCustomURLSet)
}

func TestSettingsPresenter_SaveAndReset(t *testing.T) {
	p, settings := newSettingsPresenter(t, &memoryPreferences{values: map[string]string{}})

	p.UpdateInputURL("https://example.com/")
	require.True(t, p.SaveURL())
	p.Wait()

	assert.True(t, p.State().Value().SaveSuccess)
	assert.Equal(t, "https://example.com", settings.EffectiveURL(context.Background()))
	assert.Eventually(t, func() bool {
		s := p.State().Value()
		return s.CurrentURL == "https://example.com" && s.IsCustomURLSet
	}, time.Second, 10*time.Millisecond)

	p.ClearSuccessMessage()
	assert.False(t, p.State().Value().SaveSuccess)

	require.True(t, p.ResetToDefault())
	p.Wait()

	assert.Equal(t, defaultURL, settings.EffectiveURL(context.Background()))
	assert.Eventually(t, func() bool {
		s := p.State().Value()
		return s.CurrentURL == defaultURL && !s.IsCustomURLSet && s.InputURL == ""
	}, time.Second, 10*time.Millisecond)
}

func TestSettingsPresenter_RejectsInvalidInput(t *testing.T) {
	prefs := &memoryPreferences{values: map[string]string{}}
	p, _ := newSettingsPresenter(t, prefs)

	assert.False(t, p.SaveURL())
	assert.Equal(t, "URL cannot be empty", p.State().Value().Error)

	p.UpdateInputURL("example.com")
	assert.Empty(t, p.State().Value().Error)
	assert.False(t, p.SaveURL())
	assert.Equal(t, "URL must start with http:// or https://", p.State().Value().Error)
	assert.Empty(t, prefs.values)
}

func TestSettingsPresenter_SaveFailure(t *testing.T) {
	p, _ := newSettingsPresenter(t, &memoryPreferences{values: map[string]string{}, setErr: errors.New("read-only store")})

	p.UpdateInputURL("https://example.com")
	require.True(t, p.SaveURL())
	p.Wait()

	state := p.State().Value()
	assert.False(t, state.IsSaving)
	assert.False(t, state.SaveSuccess)
	assert.Equal(t, "Failed to save: read-only store", state.Error)
}

// writeOnSubscribe lands an override at the moment the presenter subscribes.
type writeOnSubscribe struct {
	service.SettingsService
	url string
}

func (w *writeOnSubscribe) Subscribe(bufSize int) (int, <-chan service.SettingsEvent) {
	_ = w.SettingsService.SetOverride(context.Background(), w.url)
	return w.SettingsService.Subscribe(bufSize)
}

func TestSettingsPresenter_MirrorsOverrideSetWhileSubscribing(t *testing.T) {
	inner := service.NewSettingsService(&memoryPreferences{values: map[string]string{}}, "", defaultURL, logger.NewNop())
	p := NewSettingsPresenter(context.Background(), &writeOnSubscribe{SettingsService: inner, url: "https://racing.example.com"}, logger.NewNop())
	t.Cleanup(p.Close)

	assert.Eventually(t, func() bool {
		state := p.State().Value()
		return state.CurrentURL == "https://racing.example.com" && state.IsCustomURLSet
	}, time.Second, 5*time.Millisecond)
}
