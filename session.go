package textimg

import (
	"context"
	"errors"
	"sync"
)

// Preview is one delivery from a Session: either a finished render or
// the error that stopped it. Superseded renders are never delivered.
type Preview struct {
	Result *RenderResult
	Err    error
}

// Session runs interactive preview renders off the caller's goroutine
// with a last-submitted-wins contract: at most one render is in flight,
// and submitting a new style cancels and discards any render still
// running for an older one. Stale requests are never queued.
type Session struct {
	renderer *Renderer

	mu     sync.Mutex
	gen    uint64
	cancel context.CancelFunc
	closed bool

	updates chan Preview
}

// NewSession creates a Session delivering previews on Updates().
func NewSession(r *Renderer) *Session {
	return &Session{
		renderer: r,
		updates:  make(chan Preview, 1),
	}
}

// Updates returns the channel finished previews are delivered on. The
// channel holds only the most recent preview; a newer result replaces an
// unconsumed older one. It is closed by Close.
func (s *Session) Updates() <-chan Preview {
	return s.updates
}

// Submit starts rendering style, canceling any in-flight render. The
// call returns immediately; the result arrives on Updates() unless a
// newer Submit supersedes it first. Submit after Close is a no-op.
func (s *Session) Submit(style Style) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	if s.cancel != nil {
		s.cancel()
	}
	s.gen++
	gen := s.gen
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	s.mu.Unlock()

	go s.run(ctx, gen, style)
}

func (s *Session) run(ctx context.Context, gen uint64, style Style) {
	result, err := s.renderer.Render(ctx, style)

	s.mu.Lock()
	defer s.mu.Unlock()

	// A newer Submit owns the session now; this render is stale even if
	// it finished before cancellation took effect.
	if s.closed || gen != s.gen {
		return
	}
	if errors.Is(err, context.Canceled) {
		return
	}

	// Replace an unconsumed older preview so the channel always holds
	// the latest.
	select {
	case <-s.updates:
	default:
	}
	s.updates <- Preview{Result: result, Err: err}
}

// Close cancels any in-flight render and closes Updates(). Close is
// idempotent.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	s.closed = true
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	close(s.updates)
}
