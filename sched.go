package spritesheet

import (
	"sync"
	"time"
)

// Scheduler coalesces rapid successive layout requests into a single
// engine run. Each Update restarts a quiescence timer; the engine runs
// only after the timer expires with no newer Update. A generation counter
// gives last-invocation-wins semantics: a result that was superseded
// while the engine ran is released and never delivered.
//
// The engine itself has no notion of cancellation; the Scheduler is the
// call-site policy the engine's contract asks of its caller.
type Scheduler struct {
	delay   time.Duration
	deliver func(*Sheet, error)

	mu     sync.Mutex
	gen    uint64
	timer  *time.Timer
	closed bool

	// wg tracks the pending timer and any in-flight run so Close can
	// wait for them.
	wg sync.WaitGroup
}

// NewScheduler returns a Scheduler that waits delay after the last Update
// before generating, then hands the result to deliver. deliver is called
// from the timer's goroutine, at most once per surviving generation.
func NewScheduler(delay time.Duration, deliver func(*Sheet, error)) *Scheduler {
	return &Scheduler{delay: delay, deliver: deliver}
}

// Update schedules a regeneration with the given frames and options,
// superseding any pending or in-flight one. The frame slice is copied so
// later caller-side removal does not race the engine.
func (s *Scheduler) Update(frames []Frame, opts Options) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.gen++
	gen := s.gen
	snapshot := append([]Frame(nil), frames...)
	if s.timer != nil && s.timer.Stop() {
		s.wg.Done()
	}
	s.wg.Add(1)
	s.timer = time.AfterFunc(s.delay, func() {
		defer s.wg.Done()
		s.run(gen, snapshot, opts)
	})
}

// run executes one generation. Results from a stale generation are
// released, not delivered.
func (s *Scheduler) run(gen uint64, frames []Frame, opts Options) {
	s.mu.Lock()
	stale := s.closed || gen != s.gen
	s.mu.Unlock()
	if stale {
		return
	}

	sheet, err := Generate(frames, &opts)

	s.mu.Lock()
	stale = s.closed || gen != s.gen
	s.mu.Unlock()
	if stale {
		if sheet != nil {
			sheet.Handle.Release()
		}
		return
	}
	s.deliver(sheet, err)
}

// Close cancels any pending regeneration, waits for an in-flight run
// (including its deliver call) to finish, and rejects further Updates.
// After Close returns, deliver will not be called again. Close must not
// be called from within deliver.
func (s *Scheduler) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	if s.timer != nil && s.timer.Stop() {
		s.wg.Done()
	}
	s.mu.Unlock()
	s.wg.Wait()
}
