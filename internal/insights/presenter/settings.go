package presenter

import (
	"context"

	"golang-trading-insights/internal/insights/service"
	"golang-trading-insights/pkg/logger"
	"golang-trading-insights/pkg/utils"
)

// SettingsState is the endpoint settings screen.
type SettingsState struct {
	CurrentURL     string `json:"current_url"`
	InputURL       string `json:"input_url"`
	DefaultURL     string `json:"default_url"`
	IsCustomURLSet bool   `json:"is_custom_url_set"`
	IsSaving       bool   `json:"is_saving"`
	SaveSuccess    bool   `json:"save_success"`
	Error          string `json:"error,omitempty"`
}

// SettingsPresenter mirrors the endpoint configuration and edits it.
type SettingsPresenter struct {
	settings service.SettingsService
	state    *State[SettingsState]
	scope    *Scope
	subID    int
	logger   *logger.Logger
}

// NewSettingsPresenter creates a SettingsPresenter seeded from the store and
// subscribed to its changes until Close.
func NewSettingsPresenter(ctx context.Context, settings service.SettingsService, log *logger.Logger) *SettingsPresenter {
	// Subscribe before seeding; a change in between is replayed from the channel.
	id, events := settings.Subscribe(8)

	active := settings.IsOverrideActive(ctx)
	current := settings.EffectiveURL(ctx)
	initial := SettingsState{
		CurrentURL:     current,
		DefaultURL:     settings.DefaultURL(),
		IsCustomURLSet: active,
	}
	if active {
		initial.InputURL = current
	}

	p := &SettingsPresenter{
		settings: settings,
		state:    NewState(initial),
		scope:    NewScope(ctx, log),
		subID:    id,
		logger:   log,
	}
	utils.GoSafe(func() {
		for e := range events {
			p.apply(e)
		}
	})
	return p
}

func (p *SettingsPresenter) apply(e service.SettingsEvent) {
	p.state.Update(func(s SettingsState) SettingsState {
		s.CurrentURL = e.EffectiveURL
		s.IsCustomURLSet = e.OverrideActive
		if e.OverrideActive {
			s.InputURL = e.EffectiveURL
		} else {
			s.InputURL = ""
		}
		return s
	})
}

// State exposes the published state.
func (p *SettingsPresenter) State() *State[SettingsState] { return p.state }

func (p *SettingsPresenter) UpdateInputURL(url string) {
	p.state.Update(func(s SettingsState) SettingsState {
		s.InputURL = url
		s.Error = ""
		s.SaveSuccess = false
		return s
	})
}

// SaveURL persists the input URL as the override. Invalid input is rejected
// without touching the store.
func (p *SettingsPresenter) SaveURL() bool {
	input := p.state.Value().InputURL
	if _, err := service.NormalizeBaseURL(input); err != nil {
		p.state.Update(func(s SettingsState) SettingsState {
			s.Error = service.UserMessage(err)
			return s
		})
		return false
	}

	return p.scope.Go("save_url", func(ctx context.Context) {
		p.state.Update(func(s SettingsState) SettingsState {
			s.IsSaving = true
			s.Error = ""
			return s
		})
		err := p.settings.SetOverride(ctx, input)
		p.state.Update(func(s SettingsState) SettingsState {
			s.IsSaving = false
			if err != nil {
				s.Error = "Failed to save: " + err.Error()
				return s
			}
			s.SaveSuccess = true
			return s
		})
	})
}

// ResetToDefault removes the override.
func (p *SettingsPresenter) ResetToDefault() bool {
	return p.scope.Go("reset_url", func(ctx context.Context) {
		p.state.Update(func(s SettingsState) SettingsState {
			s.IsSaving = true
			s.Error = ""
			return s
		})
		err := p.settings.ClearOverride(ctx)
		p.state.Update(func(s SettingsState) SettingsState {
			s.IsSaving = false
			if err != nil {
				s.Error = "Failed to reset: " + err.Error()
				return s
			}
			s.SaveSuccess = true
			s.InputURL = ""
			return s
		})
	})
}

func (p *SettingsPresenter) ClearSuccessMessage() {
	p.state.Update(func(s SettingsState) SettingsState {
		s.SaveSuccess = false
		return s
	})
}

// Wait blocks until pending actions finish.
func (p *SettingsPresenter) Wait() { p.scope.Wait() }

// Close stops mirroring the store and cancels pending actions.
func (p *SettingsPresenter) Close() {
	p.settings.Unsubscribe(p.subID)
	p.scope.Close()
}
