// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

// Package sampling holds the decision strategies a remote sampler can be
// instructed to run, plus the descriptor type the strategy fetchers translate
// wire responses into.
package sampling // import "github.com/open-telemetry/opentelemetry-collector-contrib/pkg/jaegerremotesampler/internal/sampling"

import (
	"github.com/jonboulle/clockwork"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// StrategyKind enumerates the strategy families understood by the client.
type StrategyKind int

const (
	// Probabilistic samples a fixed fraction of the trace-id space.
	Probabilistic StrategyKind = iota
	// RateLimiting caps the number of sampled traces per second.
	RateLimiting
)

// OperationStrategy is a per-span-name probabilistic override.
type OperationStrategy struct {
	Operation    string
	SamplingRate float64
}

// Descriptor is the parsed form of a sampling strategy response. Exactly one
// of SamplingRate and MaxTracesPerSecond is meaningful, selected by Kind. A
// non-empty Operations list takes precedence over Kind when the strategy is
// built. Descriptors are immutable once constructed.
type Descriptor struct {
	Kind StrategyKind

	// SamplingRate is the trace-id ratio for Probabilistic strategies, in [0, 1].
	SamplingRate float64

	// MaxTracesPerSecond is the cap for RateLimiting strategies.
	MaxTracesPerSecond int64

	// DefaultSamplingRate and Operations carry per-operation overrides when the
	// response included them.
	DefaultSamplingRate float64
	Operations          []OperationStrategy
}

// Equal reports whether two descriptors describe the same strategy. The
// poller uses it to leave a live strategy in place when consecutive polls
// return the same policy, so the rate limiter's window state is not reset on
// every poll.
func (d Descriptor) Equal(other Descriptor) bool {
	if d.Kind != other.Kind ||
		d.SamplingRate != other.SamplingRate ||
		d.MaxTracesPerSecond != other.MaxTracesPerSecond ||
		d.DefaultSamplingRate != other.DefaultSamplingRate ||
		len(d.Operations) != len(other.Operations) {
		return false
	}
	for i, op := range d.Operations {
		if op != other.Operations[i] {
			return false
		}
	}
	return true
}

// NewStrategy builds the decision strategy described by d.
func NewStrategy(d Descriptor) sdktrace.Sampler {
	if len(d.Operations) > 0 {
		return NewPerOperation(d.DefaultSamplingRate, d.Operations)
	}
	if d.Kind == RateLimiting {
		return NewRateLimiting(d.MaxTracesPerSecond, clockwork.NewRealClock())
	}
	return NewProbabilistic(d.SamplingRate)
}
