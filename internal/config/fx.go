package config

import (
	"github.com/smallbiznis/reviewqr/internal/observability/metrics"
	"github.com/smallbiznis/reviewqr/internal/observability/tracing"
	"github.com/smallbiznis/reviewqr/internal/poster/sweep"
	"go.uber.org/fx"
)

var Module = fx.Module("config",
	fx.Provide(Load),
	fx.Provide(metricsConfig),
	fx.Provide(tracingConfig),
	fx.Provide(sweepConfig),
)

func metricsConfig(cfg Config) metrics.Config {
	return metrics.Config{
		ServiceName: cfg.ServiceName,
		Environment: cfg.Environment,
	}
}

func tracingConfig(cfg Config) tracing.Config {
	return tracing.Config{
		Enabled:          cfg.TracingEnabled,
		ServiceName:      cfg.ServiceName,
		ServiceVersion:   cfg.ServiceVersion,
		Environment:      cfg.Environment,
		ExporterEndpoint: cfg.TracingExporterEndpoint,
		ExporterProtocol: cfg.TracingExporterProtocol,
		SamplingRatio:    cfg.TracingSamplingRatio,
	}
}

func sweepConfig(cfg Config) sweep.Config {
	return sweep.Config{
		Enabled:      cfg.SweepEnabled,
		MaxAge:       cfg.SweepMaxAge,
		PollInterval: cfg.SweepPollInterval,
	}
}
