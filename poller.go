// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package jaegerremotesampler // import "github.com/open-telemetry/opentelemetry-collector-contrib/pkg/jaegerremotesampler"

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/open-telemetry/opentelemetry-collector-contrib/pkg/jaegerremotesampler/internal/remotesource"
	"github.com/open-telemetry/opentelemetry-collector-contrib/pkg/jaegerremotesampler/internal/sampling"
)

// poller periodically fetches the sampling strategy for the service and
// publishes it into the sampler.
type poller struct {
	sampler      *RemoteSampler
	fetcher      remotesource.Fetcher
	serviceName  string
	interval     time.Duration
	fetchTimeout time.Duration
	logger       *zap.Logger

	ctx      context.Context
	cancel   context.CancelFunc
	wg       sync.WaitGroup
	stopOnce sync.Once
}

func newPoller(s *RemoteSampler, fetcher remotesource.Fetcher, cfg Config) *poller {
	ctx, cancel := context.WithCancel(context.Background())
	return &poller{
		sampler:      s,
		fetcher:      fetcher,
		serviceName:  cfg.ServiceName,
		interval:     cfg.PollingInterval,
		fetchTimeout: cfg.FetchTimeout,
		logger:       cfg.Logger,
		ctx:          ctx,
		cancel:       cancel,
	}
}

func (p *poller) start() {
	p.wg.Add(1)
	go p.loop()
}

// loop fetches once right away, then on every tick until stopped. The fetch
// runs synchronously inside the loop, so there is never more than one
// outstanding request; ticks elapsing during a slow fetch coalesce.
func (p *poller) loop() {
	defer p.wg.Done()

	p.updateOnce()

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()
	for {
		select {
		case <-p.ctx.Done():
			return
		case <-ticker.C:
			p.updateOnce()
		}
	}
}

// updateOnce performs a single fetch-and-apply cycle. Any failure leaves the
// currently active strategy untouched; the next tick tries again.
func (p *poller) updateOnce() {
	ctx, cancel := context.WithTimeout(p.ctx, p.fetchTimeout)
	defer cancel()

	descriptor, err := p.fetcher.Fetch(ctx, p.serviceName)
	if err != nil {
		p.logger.Warn("failed to fetch the sampling strategy, keeping the current one",
			zap.String("service", p.serviceName),
			zap.Error(err))
		return
	}

	if descriptor.Equal(p.sampler.activeStrategy().descriptor) {
		p.logger.Debug("sampling strategy unchanged")
		return
	}

	strategy := sampling.NewStrategy(descriptor)
	p.sampler.setStrategy(&activeStrategy{sampler: strategy, descriptor: descriptor})
	p.logger.Debug("sampling strategy updated", zap.String("strategy", strategy.Description()))
}

// stop halts the ticker and waits for the loop, and with it any in-flight
// fetch, to return.
func (p *poller) stop() {
	p.stopOnce.Do(func() {
		p.cancel()
		p.wg.Wait()
	})
}
