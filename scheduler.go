package grasp

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
)

// Ticker is anything driven once per display refresh. *Engine implements it.
type Ticker interface {
	Tick()
}

// Scheduler drives a Ticker and keeps driving it no matter what a single
// tick does: panics are recovered, logged and counted.
type Scheduler struct {
	ticker Ticker
	logger *zap.Logger
	frames uint64
	faults uint64
}

// NewScheduler returns a scheduler for t. A nil logger discards reports.
func NewScheduler(t Ticker, logger *zap.Logger) *Scheduler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Scheduler{ticker: t, logger: logger}
}

// Step runs one tick inside the fault boundary. A recovered panic is logged
// and returned wrapped in ErrTickFault; the caller should carry on.
func (s *Scheduler) Step() (err error) {
	s.frames++
	defer func() {
		if r := recover(); r != nil {
			s.faults++
			err = fmt.Errorf("%w: frame %d: %v", ErrTickFault, s.frames, r)
			s.logger.Error("tick failed",
				zap.Uint64("frame", s.frames),
				zap.Uint64("faults", s.faults),
				zap.Any("panic", r),
				zap.Stack("stack"))
		}
	}()
	s.ticker.Tick()
	return nil
}

// Run steps every interval until ctx is done. It returns ctx.Err().
func (s *Scheduler) Run(ctx context.Context, interval time.Duration) error {
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			_ = s.Step()
		}
	}
}

// Frames returns the number of steps taken.
func (s *Scheduler) Frames() uint64 {
	return s.frames
}

// Faults returns the number of recovered tick panics.
func (s *Scheduler) Faults() uint64 {
	return s.faults
}

// Interval returns the tick period for tps ticks per second (DefaultTPS when
// tps is not positive).
func Interval(tps int) time.Duration {
	if tps <= 0 {
		tps = DefaultTPS
	}
	return time.Second / time.Duration(tps)
}
