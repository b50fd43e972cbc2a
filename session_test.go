package textimg

import (
	"testing"
	"time"
)

func TestSessionDeliversResult(t *testing.T) {
	s := NewSession(testRenderer())
	defer s.Close()

	s.Submit(baseStyle())

	select {
	case p := <-s.Updates():
		if p.Err != nil {
			t.Fatalf("preview error: %v", p.Err)
		}
		if p.Result == nil || p.Result.Pixmap.Width() != 200 {
			t.Errorf("unexpected result %+v", p.Result)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("no preview delivered")
	}
}

func TestSessionDeliversErrors(t *testing.T) {
	s := NewSession(testRenderer())
	defer s.Close()

	bad := baseStyle()
	bad.SizePt = 0
	s.Submit(bad)

	select {
	case p := <-s.Updates():
		if p.Err == nil {
			t.Error("invalid style should deliver an error preview")
		}
	case <-time.After(5 * time.Second):
		t.Fatal("no preview delivered")
	}
}

func TestSessionLastSubmittedWins(t *testing.T) {
	s := NewSession(testRenderer())
	defer s.Close()

	// Burst of submissions; only the last one's canvas width may arrive
	// last. Earlier results are either superseded or replaced in the
	// buffer before being read.
	for i := 0; i < 5; i++ {
		style := baseStyle()
		style.Canvas.WidthPx = 100 + i
		s.Submit(style)
	}
	final := baseStyle()
	final.Canvas.WidthPx = 321
	s.Submit(final)

	deadline := time.After(10 * time.Second)
	for {
		select {
		case p := <-s.Updates():
			if p.Err != nil {
				t.Fatalf("preview error: %v", p.Err)
			}
			if p.Result.Pixmap.Width() == 321 {
				return
			}
		case <-deadline:
			t.Fatal("final submission never delivered")
		}
	}
}

func TestSessionCloseStopsDelivery(t *testing.T) {
	s := NewSession(testRenderer())

	s.Submit(baseStyle())
	s.Close()
	s.Close() // idempotent

	// Submit after Close is a no-op.
	s.Submit(baseStyle())

	// The channel is closed; draining it terminates.
	for range s.Updates() {
	}
}
