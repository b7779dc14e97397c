// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package jaegerremotesampler // import "github.com/open-telemetry/opentelemetry-collector-contrib/pkg/jaegerremotesampler"

import (
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc"
)

const (
	defaultPollingInterval     = time.Minute
	defaultFetchTimeout        = 10 * time.Second
	defaultInitialSamplingRate = 0.001
)

var (
	errMissingServiceName = errors.New("the service name has not been provided")
	errMissingSource      = errors.New("a gRPC connection or an HTTP endpoint for the sampling manager has not been provided")
	errTooManySources     = errors.New("only one of gRPC connection and HTTP endpoint may be provided")
)

// Config has the settings for a remote sampler.
type Config struct {
	// ServiceName is the lookup key sent to the sampling manager on every
	// poll. Required.
	ServiceName string

	// Conn is an established connection to a gRPC sampling manager. The
	// sampler uses it for the lifetime of the polling loop but does not close
	// it. Exactly one of Conn and Endpoint must be set.
	Conn *grpc.ClientConn

	// Endpoint is the base URL of an HTTP sampling endpoint, e.g.
	// "http://localhost:5778/sampling".
	Endpoint string

	// PollingInterval is the period between strategy fetches. Defaults to one
	// minute.
	PollingInterval time.Duration

	// FetchTimeout bounds a single strategy fetch. Defaults to ten seconds.
	FetchTimeout time.Duration

	// InitialSamplingRate is the trace-id ratio used until the first
	// successful poll. Defaults to 0.001.
	InitialSamplingRate float64

	// Logger receives poll failures and strategy updates. Defaults to a nop
	// logger.
	Logger *zap.Logger
}

// Validate checks if the sampler configuration is valid.
func (cfg *Config) Validate() error {
	if cfg.ServiceName == "" {
		return errMissingServiceName
	}
	if cfg.Conn == nil && cfg.Endpoint == "" {
		return errMissingSource
	}
	if cfg.Conn != nil && cfg.Endpoint != "" {
		return errTooManySources
	}
	if cfg.PollingInterval < 0 {
		return fmt.Errorf("negative polling interval: %v", cfg.PollingInterval)
	}
	if cfg.FetchTimeout < 0 {
		return fmt.Errorf("negative fetch timeout: %v", cfg.FetchTimeout)
	}
	if cfg.InitialSamplingRate < 0 || cfg.InitialSamplingRate > 1 {
		return fmt.Errorf("initial sampling rate %v outside [0,1]", cfg.InitialSamplingRate)
	}
	return nil
}

func (cfg *Config) setDefaults() {
	if cfg.PollingInterval == 0 {
		cfg.PollingInterval = defaultPollingInterval
	}
	if cfg.FetchTimeout == 0 {
		cfg.FetchTimeout = defaultFetchTimeout
	}
	if cfg.InitialSamplingRate == 0 {
		cfg.InitialSamplingRate = defaultInitialSamplingRate
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
}
