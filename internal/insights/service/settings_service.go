package service

import (
	"context"
	"strings"
	"sync"

	"golang-trading-insights/internal/insights/repository"
	"golang-trading-insights/pkg/common"
	"golang-trading-insights/pkg/logger"
)

// SettingsEvent is published whenever the endpoint override changes.
type SettingsEvent struct {
	EffectiveURL   string
	OverrideActive bool
}

// SettingsService holds the optional override of the trading API base URL.
// It satisfies repository.BaseURLResolver.
type SettingsService interface {
	EffectiveURL(ctx context.Context) string
	DefaultURL() string
	SetOverride(ctx context.Context, url string) error
	ClearOverride(ctx context.Context) error
	IsOverrideActive(ctx context.Context) bool
	Subscribe(bufSize int) (int, <-chan SettingsEvent)
	Unsubscribe(id int)
}

// NewSettingsService creates a SettingsService persisting through prefs.
func NewSettingsService(prefs repository.PreferenceRepository, namespace, defaultURL string, log *logger.Logger) SettingsService {
	if namespace == "" {
		namespace = common.PreferenceNamespaceSettings
	}
	return &settingsService{
		prefs:      prefs,
		namespace:  namespace,
		defaultURL: defaultURL,
		logger:     log,
		subs:       make(map[int]chan SettingsEvent),
	}
}

type settingsService struct {
	prefs      repository.PreferenceRepository
	namespace  string
	defaultURL string
	logger     *logger.Logger

	// writeMu serializes mutations so events are published in write order.
	writeMu sync.Mutex

	subsMu    sync.Mutex
	nextSubID int
	subs      map[int]chan SettingsEvent
}

func (s *settingsService) override(ctx context.Context) (string, bool) {
	value, ok, err := s.prefs.Get(ctx, s.namespace, common.PreferenceKeyAPIBaseURL)
	if err != nil {
		s.logger.WarnContext(ctx, "Failed to read endpoint override, using default", logger.ErrorField(err))
		return "", false
	}
	return value, ok
}

// EffectiveURL returns the override when present, otherwise the default. A
// storage error counts as no override.
func (s *settingsService) EffectiveURL(ctx context.Context) string {
	if value, ok := s.override(ctx); ok {
		return value
	}
	return s.defaultURL
}

func (s *settingsService) DefaultURL() string {
	return s.defaultURL
}

// IsOverrideActive reports whether an override is persisted, even one equal to
// the default.
func (s *settingsService) IsOverrideActive(ctx context.Context) bool {
	_, ok := s.override(ctx)
	return ok
}

// SetOverride validates, normalizes and persists url. The URL is not probed.
func (s *settingsService) SetOverride(ctx context.Context, url string) error {
	cleaned, err := NormalizeBaseURL(url)
	if err != nil {
		return err
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	if err := s.prefs.Set(ctx, s.namespace, common.PreferenceKeyAPIBaseURL, cleaned); err != nil {
		s.logger.ErrorContext(ctx, "Failed to persist endpoint override", logger.ErrorField(err))
		return err
	}
	s.logger.InfoContext(ctx, "Endpoint override set", logger.StringField("url", cleaned))
	s.broadcast(SettingsEvent{EffectiveURL: cleaned, OverrideActive: true})
	return nil
}

// ClearOverride removes the override, reverting to the default.
func (s *settingsService) ClearOverride(ctx context.Context) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	if err := s.prefs.Delete(ctx, s.namespace, common.PreferenceKeyAPIBaseURL); err != nil {
		s.logger.ErrorContext(ctx, "Failed to clear endpoint override", logger.ErrorField(err))
		return err
	}
	s.logger.InfoContext(ctx, "Endpoint override cleared")
	s.broadcast(SettingsEvent{EffectiveURL: s.defaultURL, OverrideActive: false})
	return nil
}

// Subscribe returns a channel receiving every later change. Slow consumers
// have events dropped.
func (s *settingsService) Subscribe(bufSize int) (int, <-chan SettingsEvent) {
	ch := make(chan SettingsEvent, bufSize)
	s.subsMu.Lock()
	id := s.nextSubID
	s.nextSubID++
	s.subs[id] = ch
	s.subsMu.Unlock()
	return id, ch
}

// Unsubscribe removes a subscriber and closes its channel.
func (s *settingsService) Unsubscribe(id int) {
	s.subsMu.Lock()
	if ch, ok := s.subs[id]; ok {
		delete(s.subs, id)
		close(ch)
	}
	s.subsMu.Unlock()
}

func (s *settingsService) broadcast(e SettingsEvent) {
	s.subsMu.Lock()
	defer s.subsMu.Unlock()
	for _, ch := range s.subs {
		select {
		case ch <- e:
		default:
		}
	}
}

// NormalizeBaseURL trims whitespace and trailing slashes and checks the
// scheme.
func NormalizeBaseURL(url string) (string, error) {
	url = strings.TrimSpace(url)
	if url == "" {
		return "", &ConfigError{Kind: InvalidURLFormat}
	}
	if !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
		return "", &ConfigError{Kind: InvalidURLFormat, URL: url}
	}
	return strings.TrimRight(url, "/"), nil
}
