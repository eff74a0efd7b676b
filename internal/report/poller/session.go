package poller

import (
	"context"
	"sync"
)

// Session holds at most one active poll. Begin on a new id cancels the
// previous poll; callbacks from a superseded poll are dropped.
type Session struct {
	p *Poller

	mu       sync.Mutex
	gen      uint64
	activeID string
	cancel   context.CancelFunc
	wg       sync.WaitGroup
}

// NewSession creates a Session backed by p.
func NewSession(p *Poller) *Session {
	return &Session{p: p}
}

// Begin starts polling reportID in the background and cancels whatever was
// active. onUpdate and onDone may be nil. onDone is called at most once and
// only if the poll is still the active one when it finishes.
func (s *Session) Begin(ctx context.Context, reportID string, onUpdate func(Update), onDone func(Result, error)) {
	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
	}
	s.gen++
	gen := s.gen
	pctx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.activeID = reportID
	s.wg.Add(1)
	s.mu.Unlock()

	go func() {
		defer s.wg.Done()
		defer cancel()

		res, err := s.p.Poll(pctx, reportID, func(u Update) {
			if s.current(gen, false) && onUpdate != nil {
				onUpdate(u)
			}
		})

		if s.current(gen, true) && onDone != nil {
			onDone(res, err)
		}
	}()
}

// current reports whether gen is still the active poll. With finish set it
// also clears the active poll. Callbacks run after the lock is released so a
// slow callback never blocks Begin or Cancel.
func (s *Session) current(gen uint64, finish bool) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.gen {
		return false
	}
	if finish {
		s.activeID = ""
		s.cancel = nil
	}
	return true
}

// Cancel stops the active poll. Its onDone is not called.
func (s *Session) Cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	s.gen++
	s.activeID = ""
}

// ActiveID returns the id being polled, or "" when idle.
func (s *Session) ActiveID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.activeID
}

// Wait blocks until every poll started by Begin has returned.
func (s *Session) Wait() {
	s.wg.Wait()
}
