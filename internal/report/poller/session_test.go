package poller

import (
	"context"
	"sync"
	"testing"
	"time"

	"visibility-srv/internal/model"
	"visibility-srv/pkg/log"
)

type tickerSet struct {
	mu      sync.Mutex
	tickers []*fakeTicker
	created chan *fakeTicker
}

func (s *tickerSet) newTicker(time.Duration) Ticker {
	ft := newFakeTicker()
	s.mu.Lock()
	s.tickers = append(s.tickers, ft)
	s.mu.Unlock()
	s.created <- ft
	return ft
}

func (s *tickerSet) next(t *testing.T) *fakeTicker {
	t.Helper()
	select {
	case ft := <-s.created:
		return ft
	case <-time.After(time.Second):
		t.Fatal("ticker not created")
		return nil
	}
}

func TestSession_BeginReplacesActive(t *testing.T) {
	ts := &tickerSet{created: make(chan *fakeTicker, 4)}
	release := make(chan struct{})
	reader := ReaderFunc(func(ctx context.Context, id string) (*model.Report, error) {
		if id == "old" {
			<-release
			return &model.Report{ID: id, Status: model.StatusCompleted}, nil
		}
		return &model.Report{ID: id, Status: model.StatusCompleted}, nil
	})
	s := NewSession(New(reader, log.NewNopLogger(), Config{NewTicker: ts.newTicker}))

	var mu sync.Mutex
	var doneIDs []string
	onDone := func(res Result, err error) {
		mu.Lock()
		doneIDs = append(doneIDs, res.ReportID)
		mu.Unlock()
	}

	s.Begin(context.Background(), "old", nil, onDone)
	oldTicker := ts.next(t)
	oldTicker.tick(t)

	s.Begin(context.Background(), "new", nil, onDone)
	if got := s.ActiveID(); got != "new" {
		t.Fatalf("ActiveID() = %q, want new", got)
	}
	newTicker := ts.next(t)
	newTicker.tick(t)

	// The stale read finishes with a completed record after being replaced.
	close(release)
	s.Wait()

	mu.Lock()
	defer mu.Unlock()
	if len(doneIDs) != 1 || doneIDs[0] != "new" {
		t.Errorf("onDone ids = %v, want [new]", doneIDs)
	}
	if got := s.ActiveID(); got != "" {
		t.Errorf("ActiveID() after done = %q, want empty", got)
	}
}

func TestSession_CancelSuppressesDone(t *testing.T) {
	ts := &tickerSet{created: make(chan *fakeTicker, 1)}
	var reads int
	var mu sync.Mutex
	reader := ReaderFunc(func(ctx context.Context, id string) (*model.Report, error) {
		mu.Lock()
		reads++
		mu.Unlock()
		return &model.Report{ID: id, Status: model.StatusProcessing}, nil
	})
	s := NewSession(New(reader, log.NewNopLogger(), Config{NewTicker: ts.newTicker}))

	called := false
	s.Begin(context.Background(), "r1", nil, func(Result, error) { called = true })
	ft := ts.next(t)
	ft.tick(t)

	s.Cancel()
	s.Wait()

	if called {
		t.Error("onDone called after Cancel")
	}
	if ft.tick(t) {
		t.Error("tick consumed after Cancel")
	}
	mu.Lock()
	defer mu.Unlock()
	if reads != 1 {
		t.Errorf("reads = %d, want 1", reads)
	}
	if got := s.ActiveID(); got != "" {
		t.Errorf("ActiveID() = %q, want empty", got)
	}
}

func TestSession_SlowCallbackDoesNotBlockCancel(t *testing.T) {
	ts := &tickerSet{created: make(chan *fakeTicker, 2)}
	reader := ReaderFunc(func(ctx context.Context, id string) (*model.Report, error) {
		return &model.Report{ID: id, Status: model.StatusProcessing}, nil
	})
	s := NewSession(New(reader, log.NewNopLogger(), Config{NewTicker: ts.newTicker}))

	entered := make(chan struct{})
	release := make(chan struct{})
	s.Begin(context.Background(), "r1", func(Update) {
		close(entered)
		<-release
	}, nil)
	ts.next(t).tick(t)

	select {
	case <-entered:
	case <-time.After(time.Second):
		t.Fatal("onUpdate not called")
	}

	// The update callback is still running; Cancel and Begin must not wait for it.
	returned := make(chan struct{})
	go func() {
		s.Cancel()
		s.Begin(context.Background(), "r2", nil, nil)
		close(returned)
	}()
	select {
	case <-returned:
	case <-time.After(time.Second):
		t.Fatal("Cancel/Begin blocked behind a running callback")
	}
	if got := s.ActiveID(); got != "r2" {
		t.Errorf("ActiveID() = %q, want r2", got)
	}

	close(release)
	s.Cancel()
	s.Wait()
}
