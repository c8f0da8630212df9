package loop

import (
	"sync/atomic"
	"time"
)

// Scheduler is a one-shot timer that is explicitly armed for every step.
// A fire disarms it; the loop decides whether to arm it again.
type Scheduler struct {
	interval time.Duration
	timer    *time.Timer
	armed    atomic.Bool
}

func NewScheduler(interval time.Duration) *Scheduler {
	return &Scheduler{interval: interval}
}

func (s *Scheduler) Interval() time.Duration {
	return s.interval
}

// Arm schedules the next fire one interval from now. Arming an armed
// scheduler keeps the pending deadline.
func (s *Scheduler) Arm() {
	if s.armed.Load() {
		return
	}
	if s.timer == nil {
		s.timer = time.NewTimer(s.interval)
	} else {
		s.timer.Reset(s.interval)
	}
	s.armed.Store(true)
}

func (s *Scheduler) Disarm() {
	if !s.armed.Load() {
		return
	}
	s.timer.Stop()
	s.armed.Store(false)
}

func (s *Scheduler) Armed() bool {
	return s.armed.Load()
}

// C is nil while disarmed, so a select on it blocks forever.
func (s *Scheduler) C() <-chan time.Time {
	if !s.armed.Load() {
		return nil
	}
	return s.timer.C
}

func (s *Scheduler) fired() {
	s.armed.Store(false)
}
