// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package sampling

import (
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

func testClock() clockwork.FakeClock {
	return clockwork.NewFakeClockAt(time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC))
}

func TestRateLimitingCapsDecisionsPerSecond(t *testing.T) {
	clock := testClock()
	s := NewRateLimiting(2, clock)

	sampled := 0
	for i := 0; i < 5; i++ {
		if s.ShouldSample(params(traceIDWithSuffix(uint64(i)), "op")).Decision == sdktrace.RecordAndSample {
			sampled++
		}
	}
	assert.Equal(t, 2, sampled)

	// a fresh second opens a fresh budget
	clock.Advance(time.Second)
	assert.Equal(t, sdktrace.RecordAndSample, s.ShouldSample(params(traceIDWithSuffix(99), "op")).Decision)
}

func TestRateLimitingWithinSameSecond(t *testing.T) {
	clock := testClock()
	s := NewRateLimiting(1, clock)

	assert.Equal(t, sdktrace.RecordAndSample, s.ShouldSample(params(traceIDWithSuffix(1), "op")).Decision)

	// sub-second progress does not refill the budget
	clock.Advance(300 * time.Millisecond)
	assert.Equal(t, sdktrace.Drop, s.ShouldSample(params(traceIDWithSuffix(2), "op")).Decision)
	clock.Advance(300 * time.Millisecond)
	assert.Equal(t, sdktrace.Drop, s.ShouldSample(params(traceIDWithSuffix(3), "op")).Decision)

	clock.Advance(400 * time.Millisecond)
	assert.Equal(t, sdktrace.RecordAndSample, s.ShouldSample(params(traceIDWithSuffix(4), "op")).Decision)
}

func TestRateLimitingZeroDropsEverything(t *testing.T) {
	clock := testClock()
	s := NewRateLimiting(0, clock)

	for i := 0; i < 10; i++ {
		assert.Equal(t, sdktrace.Drop, s.ShouldSample(params(traceIDWithSuffix(uint64(i)), "op")).Decision)
		clock.Advance(250 * time.Millisecond)
	}
}

func TestRateLimitingClampsNegativeCap(t *testing.T) {
	s := NewRateLimiting(-5, testClock())
	assert.Equal(t, int64(0), s.MaxTracesPerSecond())
}

func TestRateLimitingNeverExceedsCap(t *testing.T) {
	const limit = 7
	const seconds = 5

	clock := testClock()
	s := NewRateLimiting(limit, clock)

	// irregular arrival pattern across several seconds
	sampled := 0
	for i := 0; i < seconds*50; i++ {
		if s.ShouldSample(params(traceIDWithSuffix(uint64(i)), "op")).Decision == sdktrace.RecordAndSample {
			sampled++
		}
		clock.Advance(20 * time.Millisecond)
	}
	assert.LessOrEqual(t, sampled, limit*seconds)
}

func TestRateLimitingDescription(t *testing.T) {
	assert.Equal(t, "RateLimitingSampler{999}", NewRateLimiting(999, testClock()).Description())
}
