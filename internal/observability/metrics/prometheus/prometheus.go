package prometheus

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	pm "github.com/grpc-ecosystem/go-grpc-middleware/providers/prometheus"
	"github.com/opentracing/opentracing-go"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/uber/jaeger-client-go"
	"go.uber.org/zap"
)

var SrvMetrics = pm.NewServerMetrics(
	pm.WithServerHandlingTimeHistogram(
		pm.WithHistogramBuckets(
			[]float64{0.001, 0.01, 0.1, 0.3, 0.6, 1, 3, 6, 9, 20, 30, 60, 90, 120},
		),
	),
)

var requestMetrics = prometheus.NewHistogramVec(
	prometheus.HistogramOpts{
		Name:    "request_duration_seconds",
		Help:    "Request duration in seconds",
		Buckets: prometheus.DefBuckets,
	},
	[]string{"status", "op"},
)

func Exemplar(ctx context.Context) prometheus.Labels {
	if span := opentracing.SpanFromContext(ctx); span != nil {
		if sc, ok := span.Context().(jaeger.SpanContext); ok {
			return prometheus.Labels{"traceID": sc.TraceID().String()}
		}
	}
	return nil
}

func ObserveRequest(d time.Duration, status int, op string) {
	requestMetrics.With(
		prometheus.Labels{
			"status": strconv.Itoa(status),
			"op":     op,
		},
	).Observe(d.Seconds())
}

type Metric struct {
	srv *http.Server
}

func New(port int) *Metric {
	prometheus.MustRegister(requestMetrics, SrvMetrics)

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	return &Metric{
		srv: &http.Server{
			Addr:    fmt.Sprintf(":%v", port),
			Handler: mux,
		},
	}
}

func (m *Metric) Start(ctx context.Context) {
	go func() {
		zap.L().Info(
			"Starting metrics server",
			zap.String("addr", m.srv.Addr),
		)

		err := m.srv.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			zap.L().Error("Metrics server error", zap.Error(err))
		}
	}()

	<-ctx.Done()
	if err := m.srv.Shutdown(context.Background()); err != nil {
		zap.L().Error("failed to shutdown metrics server", zap.Error(err))
	}
	zap.L().Info("Metrics server has been stopped")
}
