// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package remotesource // import "github.com/open-telemetry/opentelemetry-collector-contrib/pkg/jaegerremotesampler/internal/remotesource"

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/jaegertracing/jaeger-idl/proto-gen/api_v2"

	"github.com/open-telemetry/opentelemetry-collector-contrib/pkg/jaegerremotesampler/internal/sampling"
)

// HTTPFetcher retrieves sampling strategies from the JSON endpoint exposed by
// Jaeger agents and collectors, typically :5778/sampling.
type HTTPFetcher struct {
	endpoint string
	client   *http.Client
}

var _ Fetcher = (*HTTPFetcher)(nil)

// NewHTTPFetcher creates a fetcher against the given sampling endpoint URL.
func NewHTTPFetcher(endpoint string) *HTTPFetcher {
	return &HTTPFetcher{
		endpoint: endpoint,
		client:   &http.Client{},
	}
}

// Fetch implements Fetcher.
func (f *HTTPFetcher) Fetch(ctx context.Context, serviceName string) (sampling.Descriptor, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.endpoint, nil)
	if err != nil {
		return sampling.Descriptor{}, fmt.Errorf("failed to build sampling strategy request: %w", err)
	}
	q := req.URL.Query()
	q.Set("service", serviceName)
	req.URL.RawQuery = q.Encode()

	resp, err := f.client.Do(req)
	if err != nil {
		return sampling.Descriptor{}, fmt.Errorf("failed to get sampling strategy: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return sampling.Descriptor{}, fmt.Errorf("%w: status %d from sampling endpoint", ErrInvalidStrategy, resp.StatusCode)
	}

	var strategy api_v2.SamplingStrategyResponse
	if err := json.NewDecoder(resp.Body).Decode(&strategy); err != nil {
		return sampling.Descriptor{}, fmt.Errorf("%w: cannot decode body: %s", ErrInvalidStrategy, err)
	}
	return descriptorFromResponse(&strategy)
}
