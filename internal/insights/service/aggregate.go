package service

import (
	"context"
	"sync"

	"golang-trading-insights/pkg/logger"
	"golang-trading-insights/pkg/utils"
)

// Fetcher is one independent sub-fetch of a composite view. Run must write
// only to its own accumulator.
type Fetcher struct {
	Slot    string
	Primary bool
	Run     func(ctx context.Context) error
}

// Outcome records how one Fetcher finished.
type Outcome struct {
	Slot    string
	Primary bool
	Err     error
}

// Outcomes are the results of FetchAll in Fetcher order.
type Outcomes []Outcome

// PrimaryFailure returns the first failed primary outcome, or nil.
func (o Outcomes) PrimaryFailure() *Outcome {
	for i := range o {
		if o[i].Primary && o[i].Err != nil {
			return &o[i]
		}
	}
	return nil
}

// Failed returns the outcomes that carry an error.
func (o Outcomes) Failed() []Outcome {
	var failed []Outcome
	for _, out := range o {
		if out.Err != nil {
			failed = append(failed, out)
		}
	}
	return failed
}

// AllFailed reports whether every fetch failed.
func (o Outcomes) AllFailed() bool {
	return len(o) > 0 && len(o.Failed()) == len(o)
}

// Err returns the error recorded for slot.
func (o Outcomes) Err(slot string) error {
	for _, out := range o {
		if out.Slot == slot {
			return out.Err
		}
	}
	return nil
}

// Into adapts a typed call into a Fetcher body that stores its value in dst
// on success and leaves dst untouched on failure.
func Into[T any](dst *T, fn func(ctx context.Context) (T, error)) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		v, err := fn(ctx)
		if err != nil {
			return err
		}
		*dst = v
		return nil
	}
}

// FetchAll runs every fetcher concurrently and waits for all of them. A failing
// fetcher never stops the others; callers decide from the outcomes whether the
// composite is fatal or degraded.
func FetchAll(ctx context.Context, log *logger.Logger, fetchers ...Fetcher) Outcomes {
	outcomes := make(Outcomes, len(fetchers))
	var wg sync.WaitGroup
	for i, f := range fetchers {
		outcomes[i] = Outcome{Slot: f.Slot, Primary: f.Primary}
		wg.Add(1)
		i, f := i, f
		utils.GoSafe(func() {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					outcomes[i].Err = utils.PanicError(r)
				}
			}()
			outcomes[i].Err = f.Run(ctx)
		})
	}
	wg.Wait()

	for _, out := range outcomes {
		if out.Err != nil {
			log.WarnContext(ctx, "Sub-fetch failed",
				logger.StringField("slot", out.Slot),
				logger.BoolField("primary", out.Primary),
				logger.ErrorField(out.Err))
		}
	}
	return outcomes
}
