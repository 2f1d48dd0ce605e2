package socket

import (
	"testing"
	"time"
)

func TestRetryDelay(t *testing.T) {
	base := 2 * time.Second

	tests := []struct {
		name     string
		failures int
		want     time.Duration
	}{
		{"zero failures", 0, 2 * time.Second},
		{"negative failures", -1, 2 * time.Second},
		{"one failure", 1, 4 * time.Second},
		{"two failures", 2, 8 * time.Second},
		{"three failures", 3, 16 * time.Second},
		{"four failures capped", 4, 30 * time.Second}, // Would be 32s, capped to 30s
		{"many failures capped", 10, 30 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := retryDelay(tt.failures, base)
			if got != tt.want {
				t.Errorf("retryDelay(%d, %v) = %v, want %v", tt.failures, base, got, tt.want)
			}
		})
	}
}

func TestRetryDelay_MaxCap(t *testing.T) {
	base := 2 * time.Second
	for failures := 0; failures <= 20; failures++ {
		got := retryDelay(failures, base)
		if got > maxRetryDelay {
			t.Errorf("retryDelay(%d, %v) = %v, exceeds maxRetryDelay %v", failures, base, got, maxRetryDelay)
		}
	}
}

func TestWithJitter_StaysWithinBounds(t *testing.T) {
	d := 10 * time.Second
	lo := time.Duration(float64(d) * (1 - jitterFraction))
	hi := time.Duration(float64(d) * (1 + jitterFraction))

	for i := 0; i < 100; i++ {
		got := withJitter(d)
		if got < lo || got > hi {
			t.Fatalf("withJitter(%v) = %v, want within [%v, %v]", d, got, lo, hi)
		}
	}
}

func TestWithJitter_ZeroPassesThrough(t *testing.T) {
	if got := withJitter(0); got != 0 {
		t.Fatalf("withJitter(0) = %v, want 0", got)
	}
}
