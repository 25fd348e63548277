package events

import (
	"context"
	"errors"
	"testing"
	"time"
)

// recordingSleep returns a SleepFunc that records requested durations
// without waiting.
func recordingSleep(sleeps *[]time.Duration) SleepFunc {
	return func(_ context.Context, d time.Duration) error {
		*sleeps = append(*sleeps, d)
		return nil
	}
}

func TestDefaultRetryConfig(t *testing.T) {
	cfg := DefaultRetryConfig()

	if cfg.MaxAttempts != 3 {
		t.Errorf("MaxAttempts = %d, want 3", cfg.MaxAttempts)
	}
	if cfg.InitialBackoff != 2*time.Second {
		t.Errorf("InitialBackoff = %v, want 2s", cfg.InitialBackoff)
	}
}

func TestRetryWithBackoff_Success(t *testing.T) {
	var sleeps []time.Duration
	cfg := RetryConfig{MaxAttempts: 3, InitialBackoff: 2 * time.Second, Sleep: recordingSleep(&sleeps)}

	callCount := 0
	err := retryWithBackoff(context.Background(), cfg, func() error {
		callCount++
		return nil
	})

	if err != nil {
		t.Errorf("Expected no error, got %v", err)
	}
	if callCount != 1 {
		t.Errorf("Expected 1 call, got %d", callCount)
	}
	if len(sleeps) != 0 {
		t.Errorf("Expected no sleeps, got %v", sleeps)
	}
}

func TestRetryWithBackoff_SuccessAfterRetry(t *testing.T) {
	var sleeps []time.Duration
	cfg := RetryConfig{MaxAttempts: 3, InitialBackoff: 2 * time.Second, Sleep: recordingSleep(&sleeps)}

	// Fails twice, then succeeds.
	callCount := 0
	err := retryWithBackoff(context.Background(), cfg, func() error {
		callCount++
		if callCount < 3 {
			return errors.New("connection reset")
		}
		return nil
	})

	if err != nil {
		t.Errorf("Expected no error, got %v", err)
	}
	if callCount != 3 {
		t.Errorf("Expected 3 calls, got %d", callCount)
	}

	// Backoff doubles: base, then base*2.
	want := []time.Duration{2 * time.Second, 4 * time.Second}
	if len(sleeps) != len(want) {
		t.Fatalf("Expected %d sleeps, got %d (%v)", len(want), len(sleeps), sleeps)
	}
	for i := range want {
		if sleeps[i] != want[i] {
			t.Errorf("Sleep %d = %v, want %v", i, sleeps[i], want[i])
		}
	}
}

func TestRetryWithBackoff_MaxAttemptsExhausted(t *testing.T) {
	var sleeps []time.Duration
	cfg := RetryConfig{MaxAttempts: 3, InitialBackoff: 2 * time.Second, Sleep: recordingSleep(&sleeps)}

	callCount := 0
	testErr := errors.New("persistent dial error")
	err := retryWithBackoff(context.Background(), cfg, func() error {
		callCount++
		return testErr
	})

	if err == nil {
		t.Fatal("Expected error, got nil")
	}
	if !errors.Is(err, ErrRetryExhausted) {
		t.Errorf("Expected ErrRetryExhausted, got %v", err)
	}
	if !errors.Is(err, testErr) {
		t.Errorf("Expected wrapped last error, got %v", err)
	}
	if callCount != 3 {
		t.Errorf("Expected 3 calls (MaxAttempts), got %d", callCount)
	}
	// No sleep after the final attempt.
	if len(sleeps) != 2 {
		t.Errorf("Expected 2 sleeps (MaxAttempts - 1), got %d", len(sleeps))
	}
}

func TestRetryWithBackoff_ContextCancelledDuringBackoff(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// Default sleep is context-aware; a cancelled context aborts the
	// backoff wait before the next attempt.
	cfg := RetryConfig{MaxAttempts: 3, InitialBackoff: time.Hour}

	callCount := 0
	err := retryWithBackoff(ctx, cfg, func() error {
		callCount++
		return errors.New("error")
	})

	if err == nil {
		t.Fatal("Expected error, got nil")
	}
	if !errors.Is(err, ErrContextCancelled) {
		t.Errorf("Expected ErrContextCancelled, got %v", err)
	}
	if callCount != 1 {
		t.Errorf("Expected 1 call before cancellation, got %d", callCount)
	}
}

func TestRetryWithBackoff_SingleAttempt(t *testing.T) {
	var sleeps []time.Duration
	cfg := RetryConfig{MaxAttempts: 1, InitialBackoff: 2 * time.Second, Sleep: recordingSleep(&sleeps)}

	callCount := 0
	err := retryWithBackoff(context.Background(), cfg, func() error {
		callCount++
		return errors.New("error")
	})

	if err == nil {
		t.Fatal("Expected error, got nil")
	}
	if callCount != 1 {
		t.Errorf("Expected 1 call, got %d", callCount)
	}
	if len(sleeps) != 0 {
		t.Errorf("Expected no sleeps, got %v", sleeps)
	}
}
