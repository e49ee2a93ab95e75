package telemetry

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/hashicorp/go-retryablehttp"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.30.0"
)

// shutdowner is satisfied by providers and exporters alike.
type shutdowner interface {
	Shutdown(ctx context.Context) error
}

// InitOpenTelemetry sets up OpenTelemetry tracing and metrics.
// An endpoint set to "-" disables that signal.
type InitOpenTelemetry struct {
	Logger          *log.Logger `resolve:""`
	ServiceName     string      `config:"OTEL_SERVICE_NAME" default:"careadvisor"`
	TracesEndpoint  string      `config:"OTEL_EXPORTER_OTLP_TRACES_ENDPOINT" default:"-"`
	MetricsEndpoint string      `config:"OTEL_EXPORTER_OTLP_METRICS_ENDPOINT" default:"-"`
	SampleRatio     string      `config:"OTEL_TRACES_SAMPLE_RATIO" default:"1"`
	shutdowns       []namedShutdown
}

type namedShutdown struct {
	name string
	s    shutdowner
}

// Initialize sets up OpenTelemetry tracing and exporting.
func (o *InitOpenTelemetry) Initialize(ctx context.Context) (context.Context, error) {
	otel.SetTextMapPropagator(newPropagator())

	res, err := newAppResource(ctx, o.ServiceName)
	if err != nil {
		return ctx, err
	}

	if enabled(o.TracesEndpoint) {
		ratio, err := parseSampleRatio(o.SampleRatio)
		if err != nil {
			return ctx, err
		}
		tp, se, err := newTracerProvider(ctx, res, ratio)
		if err != nil {
			return ctx, err
		}
		otel.SetTracerProvider(tp)
		o.shutdowns = append(o.shutdowns, namedShutdown{"tracer provider", tp}, namedShutdown{"span exporter", se})
	}

	if enabled(o.MetricsEndpoint) {
		mp, me, err := newMeterProvider(ctx, res)
		if err != nil {
			return ctx, err
		}
		otel.SetMeterProvider(mp)
		o.shutdowns = append(o.shutdowns, namedShutdown{"meter provider", mp}, namedShutdown{"meter exporter", me})
	}

	return ctx, nil
}

// Close flushes and shuts down whatever Initialize started.
func (o *InitOpenTelemetry) Close() {
	if len(o.shutdowns) == 0 {
		return
	}

	cancelCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	for _, sd := range o.shutdowns {
		if err := sd.s.Shutdown(cancelCtx); err != nil {
			o.Logger.Printf("Error shutting down %s: %v", sd.name, err)
		}
	}
	o.shutdowns = nil
}

// InitHttpClient initializes an HTTP client instrumented with OpenTelemetry
// and with retry capabilities. Model backends and the sentiment classifier share it.
type InitHttpClient struct {
	Logger       *log.Logger   `resolve:""`
	RetryMax     int           `config:"HTTP_CLIENT_RETRY_MAX" default:"3"`
	RetryWaitMax time.Duration `config:"HTTP_CLIENT_RETRY_WAIT_MAX" default:"5s"`
}

func (i InitHttpClient) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register(i.newClient())
	return ctx, nil
}

func (i InitHttpClient) newClient() *http.Client {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryWaitMax = i.RetryWaitMax
	retryClient.RetryMax = i.RetryMax
	retryClient.CheckRetry = dontRetry500StatusPolicy(retryablehttp.ErrorPropagatedRetryPolicy)
	retryClient.Logger = i.Logger

	stdClient := retryClient.StandardClient()
	stdClient.Transport = otelhttp.NewTransport(
		stdClient.Transport,
		otelhttp.WithSpanNameFormatter(SpanNameFormatter),
	)
	return stdClient
}

// newPropagator creates a new composite text map propagator.
func newPropagator() propagation.TextMapPropagator {
	return propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	)
}

func newAppResource(ctx context.Context, serviceName string) (*resource.Resource, error) {
	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceNameKey.String(serviceName),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create resource: %w", err)
	}
	return res, nil
}

func enabled(endpoint string) bool {
	return endpoint != "" && endpoint != "-"
}

// dontRetry500StatusPolicy is a retry policy for the retryablehttp client that prevents
// retries on HTTP 500 Internal Server Error responses.
func dontRetry500StatusPolicy(policy retryablehttp.CheckRetry) retryablehttp.CheckRetry {
	return func(ctx context.Context, resp *http.Response, err error) (bool, error) {
		// do not retry on context.Canceled or context.DeadlineExceeded
		if ctx.Err() != nil {
			return false, ctx.Err()
		}

		if resp != nil && resp.StatusCode == http.StatusInternalServerError {
			return false, err
		}
		return policy(ctx, resp, err)
	}
}
