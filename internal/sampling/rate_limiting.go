// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package sampling // import "github.com/open-telemetry/opentelemetry-collector-contrib/pkg/jaegerremotesampler/internal/sampling"

import (
	"fmt"
	"sync"

	"github.com/jonboulle/clockwork"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
)

// RateLimitingSampler accepts at most maxTracesPerSecond traces within a
// wall-clock second and drops the rest. The trace id plays no part in the
// decision; the counter resets when the current second advances.
type RateLimitingSampler struct {
	maxTracesPerSecond int64
	clock              clockwork.Clock

	mu               sync.Mutex
	currentSecond    int64
	tracesThisSecond int64
}

var _ sdktrace.Sampler = (*RateLimitingSampler)(nil)

// NewRateLimiting creates a rate limiting sampler. A cap of zero (or below)
// drops every trace.
func NewRateLimiting(maxTracesPerSecond int64, clock clockwork.Clock) *RateLimitingSampler {
	if maxTracesPerSecond < 0 {
		maxTracesPerSecond = 0
	}
	return &RateLimitingSampler{
		maxTracesPerSecond: maxTracesPerSecond,
		clock:              clock,
	}
}

// MaxTracesPerSecond returns the configured cap.
func (s *RateLimitingSampler) MaxTracesPerSecond() int64 {
	return s.maxTracesPerSecond
}

// ShouldSample implements sdktrace.Sampler.
func (s *RateLimitingSampler) ShouldSample(p sdktrace.SamplingParameters) sdktrace.SamplingResult {
	psc := trace.SpanContextFromContext(p.ParentContext)
	decision := sdktrace.Drop
	if s.allow() {
		decision = sdktrace.RecordAndSample
	}
	return sdktrace.SamplingResult{
		Decision:   decision,
		Tracestate: psc.TraceState(),
	}
}

func (s *RateLimitingSampler) allow() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock.Now().Unix()
	if s.currentSecond != now {
		s.currentSecond = now
		s.tracesThisSecond = 0
	}
	if s.tracesThisSecond < s.maxTracesPerSecond {
		s.tracesThisSecond++
		return true
	}
	return false
}

// Description implements sdktrace.Sampler.
func (s *RateLimitingSampler) Description() string {
	return fmt.Sprintf("RateLimitingSampler{%d}", s.maxTracesPerSecond)
}
