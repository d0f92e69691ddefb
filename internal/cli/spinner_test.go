package cli

import (
	"context"
	"testing"
	"time"
)

func TestSpinner_StartStop(t *testing.T) {
	s := newSpinnerWithContext(context.Background(), "working")
	s.Start()
	time.Sleep(100 * time.Millisecond)
	s.Stop()
}

func TestSpinner_StopIsIdempotent(t *testing.T) {
	s := newSpinnerWithContext(context.Background(), "working")
	s.Start()
	s.Stop()
	s.Stop()
}

func TestSpinner_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	s := newSpinnerWithContext(ctx, "working")
	s.Start()

	cancel()
	time.Sleep(100 * time.Millisecond)

	if !s.Cancelled() {
		t.Error("Cancelled() = false after context cancellation")
	}
	s.Stop()
}

func TestSpinner_StopWithOutcome(t *testing.T) {
	s := newSpinnerWithContext(context.Background(), "saving")
	s.Start()
	s.StopWithSuccess("saved")

	s = newSpinnerWithContext(context.Background(), "saving")
	s.Start()
	s.StopWithError("save failed")
}
