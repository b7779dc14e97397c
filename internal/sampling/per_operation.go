// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package sampling // import "github.com/open-telemetry/opentelemetry-collector-contrib/pkg/jaegerremotesampler/internal/sampling"

import (
	"fmt"

	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// PerOperationSampler routes each decision to a probabilistic sampler chosen
// by span name, falling back to a default ratio for operations the remote
// manager did not mention.
type PerOperationSampler struct {
	defaultSampler *ProbabilisticSampler
	samplers       map[string]*ProbabilisticSampler
}

var _ sdktrace.Sampler = (*PerOperationSampler)(nil)

// NewPerOperation creates a sampler with per-span-name overrides on top of a
// default trace-id ratio.
func NewPerOperation(defaultSamplingRate float64, operations []OperationStrategy) *PerOperationSampler {
	samplers := make(map[string]*ProbabilisticSampler, len(operations))
	for _, op := range operations {
		samplers[op.Operation] = NewProbabilistic(op.SamplingRate)
	}
	return &PerOperationSampler{
		defaultSampler: NewProbabilistic(defaultSamplingRate),
		samplers:       samplers,
	}
}

// ShouldSample implements sdktrace.Sampler.
func (s *PerOperationSampler) ShouldSample(p sdktrace.SamplingParameters) sdktrace.SamplingResult {
	if sampler, ok := s.samplers[p.Name]; ok {
		return sampler.ShouldSample(p)
	}
	return s.defaultSampler.ShouldSample(p)
}

// Description implements sdktrace.Sampler.
func (s *PerOperationSampler) Description() string {
	return fmt.Sprintf("PerOperationSampler{default=%s,operations=%d}", s.defaultSampler.Description(), len(s.samplers))
}
