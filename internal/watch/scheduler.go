package watch

import (
	"context"
	"log"
	"time"
)

// MinInterval is the floor for the periodic check; shop rotations are
// daily, so checking more often than hourly only burns quota.
const MinInterval = time.Hour

// Scheduler runs the checker periodically. Each invocation is
// independent; overlapping runs are absorbed by the daily gate in the
// decision logic.
type Scheduler struct {
	checker  *Checker
	interval time.Duration
	cancel   context.CancelFunc
	done     chan struct{}
}

// NewScheduler creates a scheduler. Intervals below MinInterval are
// clamped up to it.
func NewScheduler(checker *Checker, interval time.Duration) *Scheduler {
	if interval < MinInterval {
		interval = MinInterval
	}
	return &Scheduler{checker: checker, interval: interval}
}

// Start launches the periodic loop: one immediate check, then one per
// interval until Stop or ctx cancellation.
func (s *Scheduler) Start(ctx context.Context) {
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	log.Printf("shop-update checker running every %v", s.interval)
	go func() {
		defer close(s.done)

		s.runOnce(ctx)
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				s.runOnce(ctx)
			case <-ctx.Done():
				log.Println("shop-update checker stopped")
				return
			}
		}
	}()
}

// Stop cancels the loop and waits for it to exit.
func (s *Scheduler) Stop() {
	if s.cancel != nil {
		s.cancel()
		<-s.done
	}
}

func (s *Scheduler) runOnce(ctx context.Context) {
	res, err := s.checker.Run(ctx)
	if err != nil {
		// Terminal for this invocation; the next tick retries.
		log.Printf("shop check failed: %v", err)
		return
	}
	if res.ShopUpdated {
		log.Printf("shop updated, %d watched item(s) present", len(res.WatchedFound))
	}
}
