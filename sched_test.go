package spritesheet

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/fortytw2/leaktest"
)

func TestSchedulerCoalescesRapidUpdates(t *testing.T) {
	defer leaktest.Check(t)()

	results := make(chan *Sheet, 8)
	s := NewScheduler(30*time.Millisecond, func(sheet *Sheet, err error) {
		if err != nil {
			t.Errorf("deliver error: %v", err)
			return
		}
		results <- sheet
	})
	defer s.Close()

	frames := uniformFrames(3, 4, 4)
	// A burst of edits within the quiescence window must collapse into a
	// single run using the last configuration.
	for pad := 0; pad < 5; pad++ {
		s.Update(frames, Options{Mode: ModeHorizontal, Padding: pad})
	}

	select {
	case sheet := <-results:
		defer sheet.Handle.Release()
		// Last edit had padding 4: width = 3*4 + 2*4.
		if sheet.Width != 20 {
			t.Errorf("width = %d, want 20 (last update wins)", sheet.Width)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("no result delivered")
	}

	select {
	case extra := <-results:
		extra.Handle.Release()
		t.Error("superseded updates must not deliver")
	case <-time.After(100 * time.Millisecond):
	}
}

func TestSchedulerDeliversError(t *testing.T) {
	defer leaktest.Check(t)()

	errs := make(chan error, 1)
	s := NewScheduler(5*time.Millisecond, func(sheet *Sheet, err error) {
		errs <- err
	})
	defer s.Close()

	s.Update(nil, Options{})

	select {
	case err := <-errs:
		if err == nil {
			t.Error("expected ErrEmptyInput delivery")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("no delivery")
	}
}

func TestSchedulerCloseCancelsPending(t *testing.T) {
	defer leaktest.Check(t)()

	delivered := make(chan struct{}, 1)
	s := NewScheduler(50*time.Millisecond, func(sheet *Sheet, err error) {
		if sheet != nil {
			sheet.Handle.Release()
		}
		delivered <- struct{}{}
	})

	s.Update(uniformFrames(2, 2, 2), Options{})
	s.Close()

	select {
	case <-delivered:
		t.Error("closed scheduler must not deliver")
	case <-time.After(150 * time.Millisecond):
	}

	// Updates after Close are rejected silently.
	s.Update(uniformFrames(2, 2, 2), Options{})
	select {
	case <-delivered:
		t.Error("update after Close must not deliver")
	case <-time.After(100 * time.Millisecond):
	}
}

func TestSchedulerCloseWaitsForInFlight(t *testing.T) {
	defer leaktest.Check(t)()

	started := make(chan struct{})
	var finished atomic.Bool
	s := NewScheduler(time.Millisecond, func(sheet *Sheet, err error) {
		close(started)
		time.Sleep(50 * time.Millisecond)
		if sheet != nil {
			sheet.Handle.Release()
		}
		finished.Store(true)
	})

	s.Update(uniformFrames(1, 2, 2), Options{})
	<-started
	s.Close()
	if !finished.Load() {
		t.Error("Close returned before the in-flight delivery finished")
	}
}

func TestSchedulerSequentialGenerations(t *testing.T) {
	defer leaktest.Check(t)()

	results := make(chan *Sheet, 2)
	s := NewScheduler(10*time.Millisecond, func(sheet *Sheet, err error) {
		if err != nil {
			t.Errorf("deliver error: %v", err)
			return
		}
		results <- sheet
	})
	defer s.Close()

	frames := uniformFrames(2, 4, 4)

	s.Update(frames, Options{Mode: ModeHorizontal})
	first := <-results
	if first.Width != 8 {
		t.Errorf("first width = %d, want 8", first.Width)
	}

	// A later edit regenerates; the caller releases the superseded sheet.
	s.Update(frames, Options{Mode: ModeVertical})
	second := <-results
	first.Handle.Release()
	defer second.Handle.Release()

	if second.Width != 4 || second.Height != 8 {
		t.Errorf("second = %dx%d, want 4x8", second.Width, second.Height)
	}
	if _, ok := Lookup(first.Handle.URL()); ok {
		t.Error("released handle still dereferenceable")
	}
}
