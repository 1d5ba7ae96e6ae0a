package poller

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang-trading-insights/pkg/logger"
	"golang-trading-insights/pkg/utils"

	"github.com/robfig/cron/v3"
)

// Poller refreshes screen states on cron schedules.
type Poller struct {
	logger     *logger.Logger
	cronParser cron.Parser
	stopChan   chan struct{}
	stopOnce   sync.Once
	wg         sync.WaitGroup
	now        func() time.Time
}

// NewPoller creates a new Poller.
func NewPoller(log *logger.Logger) *Poller {
	return &Poller{
		logger:     log,
		cronParser: cron.NewParser(cron.SecondOptional | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor),
		stopChan:   make(chan struct{}),
		now:        time.Now,
	}
}

// RegisterCronHandler runs fn at every activation of expr until ctx is done or
// Stop is called. Each run is bounded by timeout. An empty expr registers
// nothing.
func (p *Poller) RegisterCronHandler(ctx context.Context, fn func(ctx context.Context), expr string, timeout time.Duration, name string) error {
	if expr == "" {
		p.logger.Info("Cron handler disabled", logger.Field("name", name))
		return nil
	}
	schedule, err := p.cronParser.Parse(expr)
	if err != nil {
		return fmt.Errorf("invalid cron expression for %s: %w", name, err)
	}

	p.logger.Info("Registering cron handler",
		logger.Field("name", name),
		logger.Field("expression", expr),
		logger.Field("timeout", timeout))
	p.wg.Add(1)
	utils.GoSafe(func() {
		defer p.wg.Done()
		for {
			now := p.now()
			timer := time.NewTimer(schedule.Next(now).Sub(now))
			select {
			case <-timer.C:
				runCtx, cancel := context.WithTimeout(ctx, timeout)
				fn(runCtx)
				cancel()
			case <-ctx.Done():
				timer.Stop()
				p.logger.Info("Cron handler stopping due to context cancellation", logger.Field("name", name))
				return
			case <-p.stopChan:
				timer.Stop()
				p.logger.Info("Cron handler stopping", logger.Field("name", name))
				return
			}
		}
	})
	return nil
}

// Stop gracefully shuts down every handler.
func (p *Poller) Stop() {
	p.stopOnce.Do(func() { close(p.stopChan) })
	p.wg.Wait()
	p.logger.Info("Poller stopped")
}
