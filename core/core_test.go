package core

import (
	"errors"
	"testing"
)

// TestRatingMultipliers tests the spawn and drop multipliers per rating
func TestRatingMultipliers(t *testing.T) {
	tests := []struct {
		r    Rating
		want float64
	}{
		{RatingPerfect, 1.0},
		{RatingNormal, 0.5},
		{RatingFailed, 0},
		{RatingNone, 0},
	}
	for _, tc := range tests {
		if got := tc.r.CountMultiplier(); got != tc.want {
			t.Errorf("%s.CountMultiplier() = %v, want %v", tc.r, got, tc.want)
		}
		if got := tc.r.DropMultiplier(); got != tc.want {
			t.Errorf("%s.DropMultiplier() = %v, want %v", tc.r, got, tc.want)
		}
	}
}

// TestGoPropagatesError tests that the recovery wrapper is transparent without a panic
func TestGoPropagatesError(t *testing.T) {
	sentinel := errors.New("boom")
	if err := Go(func() error { return sentinel })(); !errors.Is(err, sentinel) {
		t.Errorf("err = %v, want sentinel", err)
	}
}

// TestGoRecoversPanic tests that a panic runs the cleanup hook and exits
func TestGoRecoversPanic(t *testing.T) {
	cleaned := false
	exitCode := -1

	oldExit := crashExit
	crashExit = func(code int) { exitCode = code }
	defer func() { crashExit = oldExit }()

	SetCrashHandler(func() { cleaned = true })
	defer SetCrashHandler(nil)

	_ = Go(func() error { panic("test crash") })()

	if !cleaned {
		t.Error("cleanup hook not called")
	}
	if exitCode != 1 {
		t.Errorf("exit code = %d, want 1", exitCode)
	}
}
