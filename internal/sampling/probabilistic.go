// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package sampling // import "github.com/open-telemetry/opentelemetry-collector-contrib/pkg/jaegerremotesampler/internal/sampling"

import (
	"encoding/binary"
	"fmt"

	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
)

// ProbabilisticSampler samples a fixed fraction of traces, deciding purely
// from the trace identifier so that the same trace id always yields the same
// decision. The lower eight bytes of the id are read as a big-endian integer
// and shifted right one bit; the trace is sampled when the resulting 63-bit
// value falls below samplingRate * 2^63.
type ProbabilisticSampler struct {
	samplingRate float64
	upperBound   uint64
}

var _ sdktrace.Sampler = (*ProbabilisticSampler)(nil)

// NewProbabilistic creates a trace-id ratio sampler. Rates outside [0, 1] are
// clamped.
func NewProbabilistic(samplingRate float64) *ProbabilisticSampler {
	if samplingRate < 0 {
		samplingRate = 0
	}
	if samplingRate > 1 {
		samplingRate = 1
	}
	return &ProbabilisticSampler{
		samplingRate: samplingRate,
		upperBound:   uint64(samplingRate * (1 << 63)),
	}
}

// SamplingRate returns the configured ratio.
func (s *ProbabilisticSampler) SamplingRate() float64 {
	return s.samplingRate
}

// ShouldSample implements sdktrace.Sampler.
func (s *ProbabilisticSampler) ShouldSample(p sdktrace.SamplingParameters) sdktrace.SamplingResult {
	psc := trace.SpanContextFromContext(p.ParentContext)
	decision := sdktrace.Drop
	if binary.BigEndian.Uint64(p.TraceID[8:16])>>1 < s.upperBound {
		decision = sdktrace.RecordAndSample
	}
	return sdktrace.SamplingResult{
		Decision:   decision,
		Tracestate: psc.TraceState(),
	}
}

// Description implements sdktrace.Sampler.
func (s *ProbabilisticSampler) Description() string {
	return fmt.Sprintf("TraceIdRatioBased{%.6f}", s.samplingRate)
}
