package matchers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

const (
	waitTimeout = time.Second
	maxRecorded = 64
)

// Matcher records every matched value, so a test can wait for
// a call made from another goroutine.
type Matcher struct {
	t        *testing.T
	recorded chan any
}

func NewMatcher(t *testing.T) *Matcher {
	return &Matcher{
		t:        t,
		recorded: make(chan any, maxRecorded),
	}
}

func (m *Matcher) trigger(value any) {
	select {
	case m.recorded <- value:
	default:
		m.t.Errorf("matcher recorded more than %d values", maxRecorded)
	}
}

// Wait returns the oldest recorded value and fails the test on timeout.
func (m *Matcher) Wait() any {
	timer := time.NewTimer(waitTimeout)
	defer timer.Stop()

	select {
	case value := <-m.recorded:
		return value
	case <-timer.C:
		require.FailNow(m.t, "timeout waiting for a matching call")
		return nil
	}
}
