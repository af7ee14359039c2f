package daemon

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"github.com/lukasz-zimnoch/trading"
)

// Cycler runs a single trading cycle.
type Cycler interface {
	Trade(ctx context.Context) (*trading.TradeRecord, error)
}

// Scheduler triggers trading cycles at a fixed interval. Cycles run
// sequentially on the scheduler goroutine so a slow cycle delays the next
// one instead of overlapping with it.
type Scheduler struct {
	logger   trading.Logger
	cycler   Cycler
	interval time.Duration
	limit    int

	cycles atomic.Int64
	failed atomic.Int64
	done   chan struct{}
}

// RunScheduler runs the first cycle immediately and then one cycle per
// interval until the context is done. A positive limit stops the scheduler
// after that many cycles.
func RunScheduler(
	ctx context.Context,
	logger trading.Logger,
	cycler Cycler,
	interval time.Duration,
	limit int,
) *Scheduler {
	scheduler := &Scheduler{
		logger:   logger.WithField("interval", interval.String()),
		cycler:   cycler,
		interval: interval,
		limit:    limit,
		done:     make(chan struct{}),
	}

	go scheduler.loop(ctx)

	return scheduler
}

func (s *Scheduler) loop(ctx context.Context) {
	defer close(s.done)

	s.logger.Infof("running scheduler")
	defer s.logger.Infof("terminating scheduler")

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		s.runCycle(ctx)

		if s.limit > 0 && s.Cycles() >= int64(s.limit) {
			s.logger.Infof("cycle limit [%v] reached", s.limit)
			return
		}

		select {
		case <-ticker.C:
		case <-ctx.Done():
			s.logger.Infof("scheduler context is done")
			return
		}
	}
}

func (s *Scheduler) runCycle(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}

	cycleCtx, cancelCycleCtx := context.WithTimeout(ctx, s.interval)
	defer cancelCycleCtx()

	s.cycles.Add(1)

	record, err := s.cycler.Trade(cycleCtx)
	if err != nil {
		if errors.Is(err, trading.ErrCycleInProgress) {
			s.logger.Warningf("skipping tick: [%v]", err)
			return
		}

		s.failed.Add(1)
		s.logger.Errorf("trading cycle error: [%v]", err)
		return
	}

	s.logger.Debugf("trading cycle finished with record [%v]", record.ID)
}

// Cycles returns the number of cycles started so far.
func (s *Scheduler) Cycles() int64 {
	return s.cycles.Load()
}

// FailedCycles returns the number of cycles that ended with an error.
func (s *Scheduler) FailedCycles() int64 {
	return s.failed.Load()
}

// Done is closed once the scheduler stops.
func (s *Scheduler) Done() <-chan struct{} {
	return s.done
}
