package service

import (
	"context"
	"sync"
	"time"

	"golang-trading-insights/internal/entity"
	"golang-trading-insights/pkg/logger"
	"golang-trading-insights/pkg/telegram"
)

// AlertService notifies about bot state transitions between polls.
type AlertService interface {
	// Check fetches a fresh snapshot and sends one notification batch for the
	// transitions since the previous successful check. The first check only
	// records a baseline.
	Check(ctx context.Context) ([]entity.BotAlert, error)
}

type alertService struct {
	bots     BotService
	notifier telegram.Notifier
	logger   *logger.Logger
	now      func() time.Time

	mu       sync.Mutex
	previous []entity.BotStatusDetail
	seeded   bool
}

// NewAlertService creates a new AlertService.
func NewAlertService(bots BotService, notifier telegram.Notifier, log *logger.Logger) AlertService {
	return &alertService{
		bots:     bots,
		notifier: notifier,
		logger:   log,
		now:      time.Now,
	}
}

func (s *alertService) Check(ctx context.Context) ([]entity.BotAlert, error) {
	snapshot, err := s.bots.AllBotStatus(ctx).Unwrap()
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.seeded {
		s.previous = snapshot.Bots
		s.seeded = true
		s.logger.DebugContext(ctx, "Bot alert baseline recorded", logger.IntField("bots", len(snapshot.Bots)))
		return nil, nil
	}

	alerts := entity.DetectBotAlerts(s.previous, snapshot.Bots)
	s.previous = snapshot.Bots
	if len(alerts) == 0 {
		return nil, nil
	}

	s.logger.InfoContext(ctx, "Bot state changed", logger.IntField("alerts", len(alerts)))
	for _, msg := range telegram.FormatBotAlerts(s.now(), alerts) {
		if err := s.notifier.SendMessage(msg); err != nil {
			s.logger.ErrorContext(ctx, "Failed to send bot alert", logger.ErrorField(err))
			return alerts, err
		}
	}
	return alerts, nil
}
