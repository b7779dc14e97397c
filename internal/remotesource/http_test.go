// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package remotesource

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jaegertracing/jaeger-idl/proto-gen/api_v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/open-telemetry/opentelemetry-collector-contrib/pkg/jaegerremotesampler/internal/sampling"
)

func TestHTTPFetcher(t *testing.T) {
	var requestedService string
	srv := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		requestedService = r.URL.Query().Get("service")
		resp := &api_v2.SamplingStrategyResponse{
			StrategyType:          api_v2.SamplingStrategyType_PROBABILISTIC,
			ProbabilisticSampling: &api_v2.ProbabilisticSamplingStrategy{SamplingRate: 0.25},
		}
		jsonBytes, err := json.Marshal(resp)
		require.NoError(t, err)
		rw.Header().Add("Content-Type", "application/json")
		_, _ = rw.Write(jsonBytes)
	}))
	defer srv.Close()

	d, err := NewHTTPFetcher(srv.URL).Fetch(context.Background(), "my-service")
	require.NoError(t, err)
	assert.Equal(t, "my-service", requestedService)
	assert.Equal(t, sampling.Probabilistic, d.Kind)
	assert.Equal(t, 0.25, d.SamplingRate)
}

func TestHTTPFetcherServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, _ *http.Request) {
		http.Error(rw, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := NewHTTPFetcher(srv.URL).Fetch(context.Background(), "my-service")
	assert.ErrorIs(t, err, ErrInvalidStrategy)
}

func TestHTTPFetcherUndecodableBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, _ *http.Request) {
		_, _ = rw.Write([]byte("not json"))
	}))
	defer srv.Close()

	_, err := NewHTTPFetcher(srv.URL).Fetch(context.Background(), "my-service")
	assert.ErrorIs(t, err, ErrInvalidStrategy)
}

func TestHTTPFetcherUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close()

	_, err := NewHTTPFetcher(srv.URL).Fetch(context.Background(), "my-service")
	assert.ErrorContains(t, err, "failed to get sampling strategy")
}
