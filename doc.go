// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

// Package jaegerremotesampler implements a trace sampler that periodically
// fetches its sampling strategy from a Jaeger remote sampling manager, so a
// central service can retune sampling at runtime without restarting the
// instrumented process.
package jaegerremotesampler // import "github.com/open-telemetry/opentelemetry-collector-contrib/pkg/jaegerremotesampler"
