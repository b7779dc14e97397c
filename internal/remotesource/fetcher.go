// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

// Package remotesource fetches sampling strategies from a Jaeger sampling
// manager and translates the wire responses into strategy descriptors.
package remotesource // import "github.com/open-telemetry/opentelemetry-collector-contrib/pkg/jaegerremotesampler/internal/remotesource"

import (
	"context"
	"errors"
	"fmt"

	"github.com/jaegertracing/jaeger-idl/proto-gen/api_v2"

	"github.com/open-telemetry/opentelemetry-collector-contrib/pkg/jaegerremotesampler/internal/sampling"
)

// ErrInvalidStrategy marks responses whose strategy kind or parameters have
// no usable translation. Callers treat it like any other fetch failure: log
// and keep the current strategy.
var ErrInvalidStrategy = errors.New("invalid sampling strategy response")

// Fetcher retrieves the current sampling strategy for a service. A fetch
// issues exactly one request and carries no state between calls.
type Fetcher interface {
	Fetch(ctx context.Context, serviceName string) (sampling.Descriptor, error)
}

func descriptorFromResponse(resp *api_v2.SamplingStrategyResponse) (sampling.Descriptor, error) {
	var d sampling.Descriptor

	// per-operation overrides win over the service-wide strategy when present
	if ops := resp.GetOperationSampling(); ops != nil && len(ops.GetPerOperationStrategies()) > 0 {
		d.DefaultSamplingRate = ops.GetDefaultSamplingProbability()
		for _, op := range ops.GetPerOperationStrategies() {
			d.Operations = append(d.Operations, sampling.OperationStrategy{
				Operation:    op.GetOperation(),
				SamplingRate: op.GetProbabilisticSampling().GetSamplingRate(),
			})
		}
		return d, nil
	}

	switch resp.GetStrategyType() {
	case api_v2.SamplingStrategyType_PROBABILISTIC:
		rate := resp.GetProbabilisticSampling().GetSamplingRate()
		if rate < 0 || rate > 1 {
			return sampling.Descriptor{}, fmt.Errorf("%w: sampling rate %v outside [0,1]", ErrInvalidStrategy, rate)
		}
		d.Kind = sampling.Probabilistic
		d.SamplingRate = rate
	case api_v2.SamplingStrategyType_RATE_LIMITING:
		maxTracesPerSecond := resp.GetRateLimitingSampling().GetMaxTracesPerSecond()
		if maxTracesPerSecond < 0 {
			return sampling.Descriptor{}, fmt.Errorf("%w: negative rate limit %d", ErrInvalidStrategy, maxTracesPerSecond)
		}
		d.Kind = sampling.RateLimiting
		d.MaxTracesPerSecond = int64(maxTracesPerSecond)
	default:
		return sampling.Descriptor{}, fmt.Errorf("%w: unsupported strategy type %v", ErrInvalidStrategy, resp.GetStrategyType())
	}
	return d, nil
}
