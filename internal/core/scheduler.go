package core

import "time"

// Scheduler is a cooperative, single-threaded timer wheel driven by a
// virtual clock. The platform advances it once per simulation tick; every
// due callback runs to completion before the next one starts, so callbacks
// may freely mutate shared game state without locking.
//
// Scheduler is not safe for concurrent use.
type Scheduler struct {
	now    time.Duration
	tasks  []*Task
	nextID uint64
}

// Task is a handle to a scheduled callback.
type Task struct {
	id        uint64
	period    time.Duration // zero for one-shot tasks
	due       time.Duration
	fn        func()
	cancelled bool
	sched     *Scheduler
}

// NewScheduler creates a scheduler with its clock at zero.
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Now returns the scheduler's virtual time.
func (s *Scheduler) Now() time.Duration {
	return s.now
}

// Every arms fn to run every period, first firing one period from now.
// A non-positive period is treated as one nanosecond.
func (s *Scheduler) Every(period time.Duration, fn func()) *Task {
	if period <= 0 {
		period = time.Nanosecond
	}
	return s.arm(period, period, fn)
}

// After arms fn to run once, delay from now.
func (s *Scheduler) After(delay time.Duration, fn func()) *Task {
	if delay < 0 {
		delay = 0
	}
	return s.arm(0, delay, fn)
}

func (s *Scheduler) arm(period, delay time.Duration, fn func()) *Task {
	s.nextID++
	t := &Task{
		id:     s.nextID,
		period: period,
		due:    s.now + delay,
		fn:     fn,
		sched:  s,
	}
	s.tasks = append(s.tasks, t)
	return t
}

// Advance moves the clock forward by dt, firing every callback that falls
// due in order of due time (ties broken by arming order). It returns the
// number of callbacks executed. Callbacks armed during Advance fire within
// the same call if they fall due before the new time.
func (s *Scheduler) Advance(dt time.Duration) int {
	target := s.now + dt
	fired := 0

	for {
		t := s.nextDue(target)
		if t == nil {
			break
		}

		s.now = t.due
		if t.period > 0 {
			t.due += t.period
		} else {
			t.cancelled = true
		}

		t.fn()
		fired++
	}

	s.now = target
	s.compact()
	return fired
}

// nextDue returns the earliest live task due at or before target.
func (s *Scheduler) nextDue(target time.Duration) *Task {
	var best *Task
	for _, t := range s.tasks {
		if t.cancelled || t.due > target {
			continue
		}
		if best == nil || t.due < best.due || (t.due == best.due && t.id < best.id) {
			best = t
		}
	}
	return best
}

// compact drops cancelled and completed tasks.
func (s *Scheduler) compact() {
	live := s.tasks[:0]
	for _, t := range s.tasks {
		if !t.cancelled {
			live = append(live, t)
		}
	}
	for i := len(live); i < len(s.tasks); i++ {
		s.tasks[i] = nil
	}
	s.tasks = live
}

// Pending returns the number of armed tasks.
func (s *Scheduler) Pending() int {
	n := 0
	for _, t := range s.tasks {
		if !t.cancelled {
			n++
		}
	}
	return n
}

// CancelAll disarms every task.
func (s *Scheduler) CancelAll() {
	for _, t := range s.tasks {
		t.cancelled = true
	}
	s.compact()
}

// Cancel disarms the task. Cancelling from inside the task's own callback
// makes the running invocation the last one. Cancel is idempotent and safe
// on a nil handle.
func (t *Task) Cancel() {
	if t == nil {
		return
	}
	t.cancelled = true
}
