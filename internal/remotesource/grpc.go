// Copyright The OpenTelemetry Authors
// Copyright (c) 2018 The Jaeger Authors.
// SPDX-License-Identifier: Apache-2.0

package remotesource // import "github.com/open-telemetry/opentelemetry-collector-contrib/pkg/jaegerremotesampler/internal/remotesource"

import (
	"context"
	"fmt"

	"github.com/jaegertracing/jaeger-idl/proto-gen/api_v2"
	"google.golang.org/grpc"

	"github.com/open-telemetry/opentelemetry-collector-contrib/pkg/jaegerremotesampler/internal/sampling"
)

// GRPCFetcher retrieves sampling strategies from a collector over gRPC.
type GRPCFetcher struct {
	client api_v2.SamplingManagerClient
}

var _ Fetcher = (*GRPCFetcher)(nil)

// NewGRPCFetcher creates a fetcher on an established client connection. The
// caller keeps ownership of the connection.
func NewGRPCFetcher(conn *grpc.ClientConn) *GRPCFetcher {
	return &GRPCFetcher{
		client: api_v2.NewSamplingManagerClient(conn),
	}
}

// Fetch implements Fetcher.
func (f *GRPCFetcher) Fetch(ctx context.Context, serviceName string) (sampling.Descriptor, error) {
	resp, err := f.client.GetSamplingStrategy(ctx, &api_v2.SamplingStrategyParameters{ServiceName: serviceName})
	if err != nil {
		return sampling.Descriptor{}, fmt.Errorf("failed to get sampling strategy: %w", err)
	}
	return descriptorFromResponse(resp)
}
