// Package telemetry provides OpenTelemetry tracing over OTLP/HTTP.
package telemetry

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
)

const (
	serviceName    = "tileutil"
	serviceVersion = "0.1.0"
)

// Config selects where spans are exported.
type Config struct {
	// Endpoint is the OTLP/HTTP collector URL. Tracing is disabled when empty.
	Endpoint string
	// Headers is a comma separated list of key=value pairs sent with every
	// export request, in the OTEL_EXPORTER_OTLP_HEADERS format.
	Headers string
}

// Enabled reports whether spans will be exported.
func (c Config) Enabled() bool {
	return c.Endpoint != ""
}

// Setup installs a global tracer provider exporting to cfg.Endpoint.
// With no endpoint the global no-op provider stays in place and the
// returned shutdown does nothing.
//
// Returns a shutdown function that should be called on application exit.
func Setup(ctx context.Context, cfg Config) (shutdown func(context.Context) error, err error) {
	if !cfg.Enabled() {
		return func(context.Context) error { return nil }, nil
	}

	headers, err := ParseHeaders(cfg.Headers)
	if err != nil {
		return nil, err
	}

	exporter, err := otlptracehttp.New(ctx,
		otlptracehttp.WithEndpointURL(cfg.Endpoint),
		otlptracehttp.WithHeaders(headers),
	)
	if err != nil {
		return nil, err
	}

	// We create our own resource without merging with Default() to avoid schema URL conflicts
	res, err := resource.New(ctx,
		resource.WithAttributes(
			attribute.String("service.name", serviceName),
			attribute.String("service.version", serviceVersion),
			attribute.String("telemetry.sdk.language", "go"),
			attribute.String("host.name", getHostname()),
			attribute.String("os.type", runtime.GOOS),
			attribute.String("process.runtime.version", runtime.Version()),
		),
	)
	if err != nil {
		return nil, err
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.TraceContext{})

	return tp.Shutdown, nil
}

// ParseHeaders splits "k1=v1,k2=v2" into a map. Blank entries are skipped.
func ParseHeaders(s string) (map[string]string, error) {
	headers := make(map[string]string)
	for _, pair := range strings.Split(s, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		k, v, ok := strings.Cut(pair, "=")
		k = strings.TrimSpace(k)
		if !ok || k == "" {
			return nil, fmt.Errorf("invalid OTLP header %q: want key=value", pair)
		}
		headers[k] = strings.TrimSpace(v)
	}
	return headers, nil
}

// Tracer returns a named tracer for the given component.
func Tracer(name string) trace.Tracer {
	return otel.GetTracerProvider().Tracer(serviceName + "/" + name)
}

// getHostname returns the system hostname, or "unknown" if it cannot be determined.
func getHostname() string {
	hostname, err := os.Hostname()
	if err != nil {
		return "unknown"
	}
	return hostname
}
