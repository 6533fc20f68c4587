package probe

import (
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestTry_Success(t *testing.T) {
	got, ok := Try("test.success", func() (int, error) { return 42, nil })
	if !ok {
		t.Fatal("Try() ok = false, want true")
	}
	if got != 42 {
		t.Errorf("Try() = %d, want 42", got)
	}
}

func TestTry_Error(t *testing.T) {
	before := testutil.ToFloat64(probeFailures.WithLabelValues("test.error"))

	got, ok := Try("test.error", func() (string, error) {
		return "partial", errors.New("source missing")
	})
	if ok {
		t.Fatal("Try() ok = true, want false")
	}
	if got != "" {
		t.Errorf("Try() = %q, want zero value", got)
	}

	after := testutil.ToFloat64(probeFailures.WithLabelValues("test.error"))
	if after != before+1 {
		t.Errorf("failure counter = %v, want %v", after, before+1)
	}
}

func TestTry_Panic(t *testing.T) {
	got, ok := Try("test.panic", func() ([]string, error) {
		panic("probe exploded")
	})
	if ok {
		t.Fatal("Try() ok = true after panic, want false")
	}
	if got != nil {
		t.Errorf("Try() = %v after panic, want nil", got)
	}
}

func TestRun_Fallback(t *testing.T) {
	got := Run("test.fallback", func() (float64, error) {
		return 0, errors.New("unavailable")
	}, 99.5)
	if got != 99.5 {
		t.Errorf("Run() = %v, want fallback 99.5", got)
	}

	got = Run("test.fallback", func() (float64, error) { return 1.5, nil }, 99.5)
	if got != 1.5 {
		t.Errorf("Run() = %v, want 1.5", got)
	}
}

func TestFirst_ShortCircuits(t *testing.T) {
	var calls []string
	got, err := First(
		func() (string, error) {
			calls = append(calls, "a")
			return "", errors.New("a failed")
		},
		func() (string, error) {
			calls = append(calls, "b")
			return "from-b", nil
		},
		func() (string, error) {
			calls = append(calls, "c")
			return "from-c", nil
		},
	)
	if err != nil {
		t.Fatalf("First() error = %v", err)
	}
	if got != "from-b" {
		t.Errorf("First() = %q, want from-b", got)
	}
	if len(calls) != 2 {
		t.Errorf("sources called = %v, want [a b]", calls)
	}
}

func TestFirst_AllFail(t *testing.T) {
	primary := errors.New("primary down")
	_, err := First(
		func() (int, error) { return 0, primary },
		func() (int, error) { return 0, errors.New("secondary down") },
	)
	if !errors.Is(err, primary) {
		t.Errorf("First() error = %v, want the first source's error", err)
	}
}

func TestFirst_NoSources(t *testing.T) {
	_, err := First[int]()
	if err == nil {
		t.Fatal("First() with no sources should error")
	}
}
