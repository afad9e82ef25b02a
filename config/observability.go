package config

import "strings"

const defaultServiceName = "smart-locker-panel"

// ObservabilityConfig groups configuration that controls metrics and tracing.
type ObservabilityConfig struct {
	Metrics ObservabilityMetricsConfig
	Tracing ObservabilityTracingConfig
}

// Sanitize applies guardrails to observability sub-configs.
func (c *ObservabilityConfig) Sanitize() {
	c.Metrics.Sanitize()
	c.Tracing.Sanitize()
}

// ObservabilityMetricsConfig controls the Prometheus /metrics endpoint.
type ObservabilityMetricsConfig struct {
	Enabled bool `env:"METRICS_ENABLED" envDefault:"false"`
	// Token, when set, must be presented as a bearer token to scrape /metrics.
	Token string `env:"METRICS_TOKEN"`
}

// Sanitize normalises metrics configuration values.
func (c *ObservabilityMetricsConfig) Sanitize() {
	c.Token = strings.TrimSpace(c.Token)
}

// ObservabilityTracingConfig controls OTLP trace export.
type ObservabilityTracingConfig struct {
	Endpoint    string `env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	Insecure    bool   `env:"OTEL_EXPORTER_OTLP_INSECURE" envDefault:"false"`
	ServiceName string `env:"OTEL_SERVICE_NAME"           envDefault:"smart-locker-panel"`
}

// Sanitize normalises tracing configuration values.
func (c *ObservabilityTracingConfig) Sanitize() {
	c.Endpoint = strings.TrimSpace(c.Endpoint)
	if c.ServiceName = strings.TrimSpace(c.ServiceName); c.ServiceName == "" {
		c.ServiceName = defaultServiceName
	}
}

// IsEnabled reports whether an exporter endpoint is configured.
func (c *ObservabilityTracingConfig) IsEnabled() bool {
	return c.Endpoint != ""
}
