// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package jaegerremotesampler // import "github.com/open-telemetry/opentelemetry-collector-contrib/pkg/jaegerremotesampler"

import (
	"fmt"
	"io"
	"sync/atomic"

	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"

	"github.com/open-telemetry/opentelemetry-collector-contrib/pkg/jaegerremotesampler/internal/remotesource"
	"github.com/open-telemetry/opentelemetry-collector-contrib/pkg/jaegerremotesampler/internal/sampling"
)

// activeStrategy pairs a built strategy with the descriptor it came from, so
// a reader never observes one without the other.
type activeStrategy struct {
	sampler    sdktrace.Sampler
	descriptor sampling.Descriptor
}

// RemoteSampler is a trace sampler whose decision strategy is periodically
// replaced with whatever the remote sampling manager prescribes for the
// configured service. Until the first successful poll it samples
// probabilistically at the configured initial rate. Decisions never touch the
// network; only the background poller does.
type RemoteSampler struct {
	serviceName string
	logger      *zap.Logger

	// written only by the poller, read by every ShouldSample call
	active atomic.Pointer[activeStrategy]

	poller *poller
}

var (
	_ sdktrace.Sampler = (*RemoteSampler)(nil)
	_ io.Closer        = (*RemoteSampler)(nil)
)

// New creates a remote sampler and starts polling the sampling manager in the
// background. It does not block on the first fetch; the returned sampler is
// usable immediately.
func New(cfg Config) (*RemoteSampler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg.setDefaults()

	var fetcher remotesource.Fetcher
	if cfg.Conn != nil {
		fetcher = remotesource.NewGRPCFetcher(cfg.Conn)
	} else {
		fetcher = remotesource.NewHTTPFetcher(cfg.Endpoint)
	}
	return newRemoteSampler(cfg, fetcher), nil
}

// newRemoteSampler wires an arbitrary fetcher, which tests substitute with
// fakes. cfg is assumed validated and defaulted.
func newRemoteSampler(cfg Config, fetcher remotesource.Fetcher) *RemoteSampler {
	s := &RemoteSampler{
		serviceName: cfg.ServiceName,
		logger:      cfg.Logger,
	}
	initial := sampling.Descriptor{Kind: sampling.Probabilistic, SamplingRate: cfg.InitialSamplingRate}
	s.active.Store(&activeStrategy{
		sampler:    sampling.NewProbabilistic(cfg.InitialSamplingRate),
		descriptor: initial,
	})
	s.poller = newPoller(s, fetcher, cfg)
	s.poller.start()
	return s
}

// ShouldSample delegates to the currently active strategy. It performs a
// single atomic load and never blocks.
func (s *RemoteSampler) ShouldSample(p sdktrace.SamplingParameters) sdktrace.SamplingResult {
	return s.active.Load().sampler.ShouldSample(p)
}

// Description identifies the sampler together with its active strategy.
func (s *RemoteSampler) Description() string {
	return fmt.Sprintf("RemoteSampler{%s}", s.active.Load().sampler.Description())
}

// Close stops the background polling and waits for an in-flight fetch to
// finish. The last applied strategy stays active for any further decisions.
// Close is idempotent.
func (s *RemoteSampler) Close() error {
	s.poller.stop()
	return nil
}

// setStrategy atomically publishes a freshly built strategy. Only the poller
// calls it.
func (s *RemoteSampler) setStrategy(a *activeStrategy) {
	s.active.Store(a)
}

func (s *RemoteSampler) activeStrategy() *activeStrategy {
	return s.active.Load()
}
