package resilience

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestExecuteRunsCallbackOnce(t *testing.T) {
	guard := NewGuard(Config{BreakerEnabled: false})

	attempts := 0
	errBoom := errors.New("boom")
	err := guard.Execute(context.Background(), "op", func(context.Context) error {
		attempts++
		return errBoom
	}, nil)

	if !errors.Is(err, errBoom) {
		t.Fatalf("expected the callback error, got %v", err)
	}
	if attempts != 1 {
		t.Fatalf("guard must never retry, got %d attempts", attempts)
	}
}

func TestBreakerOpensOnRecordedFailures(t *testing.T) {
	guard := NewGuard(Config{
		BreakerEnabled:          true,
		BreakerMinRequests:      3,
		BreakerFailureRatio:     0.5,
		BreakerOpenTimeout:      time.Minute,
		BreakerHalfOpenMaxCalls: 1,
		RatePerSecond:           1000,
		RateBurst:               1000,
	})

	errDown := errors.New("backend down")
	for i := 0; i < 3; i++ {
		_ = guard.Execute(context.Background(), "list", func(context.Context) error {
			return errDown
		}, nil)
	}

	err := guard.Execute(context.Background(), "list", func(context.Context) error {
		t.Fatalf("callback must not run while the circuit is open")
		return nil
	}, nil)
	if !IsCircuitOpen(err) {
		t.Fatalf("expected open-circuit error, got %v", err)
	}
}

func TestClassifierKeepsClientErrorsOffTheBreaker(t *testing.T) {
	guard := NewGuard(Config{
		BreakerEnabled:          true,
		BreakerMinRequests:      3,
		BreakerFailureRatio:     0.5,
		BreakerOpenTimeout:      time.Minute,
		BreakerHalfOpenMaxCalls: 1,
		RatePerSecond:           1000,
		RateBurst:               1000,
	})

	errBadRequest := errors.New("bad request")
	classifier := func(err error) ErrorClassification {
		return ErrorClassification{RecordFailure: !errors.Is(err, errBadRequest)}
	}

	for i := 0; i < 10; i++ {
		_ = guard.Execute(context.Background(), "list", func(context.Context) error {
			return errBadRequest
		}, classifier)
	}

	ran := false
	_ = guard.Execute(context.Background(), "list", func(context.Context) error {
		ran = true
		return nil
	}, classifier)
	if !ran {
		t.Fatalf("client errors tripped the breaker")
	}
}

func TestExecuteHonoursContextCancellation(t *testing.T) {
	guard := NewGuard(Config{BreakerEnabled: false, RatePerSecond: 0.001, RateBurst: 1})

	// Burn the single burst token.
	if err := guard.Execute(context.Background(), "op", func(context.Context) error { return nil }, nil); err != nil {
		t.Fatalf("first call should pass the limiter, got %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	err := guard.Execute(ctx, "op", func(context.Context) error { return nil }, nil)
	if err == nil {
		t.Fatalf("expected a limiter wait error after context timeout")
	}
}
