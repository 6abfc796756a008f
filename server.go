package main

import (
	"PostFeed/api"
	"PostFeed/confirm"
	"PostFeed/dataset"
	"PostFeed/internal/logger"
	"PostFeed/internal/telemetry"
	"PostFeed/reaction"
	"PostFeed/storage/memory"
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
)

func main() {
	log := logger.Default()
	cfg := loadConfig()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	tracerProvider, shutdownTracing, err := telemetry.Init(ctx, telemetry.Config{
		Endpoint:    cfg.OTLPEndpoint,
		ServiceName: cfg.ServiceName,
		Environment: cfg.Environment,
		SampleRatio: cfg.SampleRatio,
	})
	if err != nil {
		log.Errorf("tracing disabled: %v", err)
		tracerProvider = otel.GetTracerProvider()
		shutdownTracing = func(context.Context) error { return nil }
	}
	defer func() {
		c, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = shutdownTracing(c)
	}()

	source := dataset.NewStatic(cfg.DatasetPath)
	store := memory.New(dataset.LoadPosts(ctx, source, log))

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	confirmer := confirm.NewSimulated(cfg.ConfirmLatency, cfg.ConfirmFailureRate)
	log.Infof("confirmer: latency %s, failure rate %.2f", cfg.ConfirmLatency, cfg.ConfirmFailureRate)

	res := &api.Resolver{
		Storage: store,
		Reactions: reaction.NewController(store, confirmer,
			reaction.WithLogger(log),
			reaction.WithMetrics(reaction.NewMetrics(registry)),
			reaction.WithTracer(tracerProvider.Tracer(reaction.TracerName)),
		),
		Source: source,
		Log:    log,
	}

	handler := otelhttp.NewHandler(api.NewRouter(res, registry), "http.server",
		otelhttp.WithTracerProvider(tracerProvider))

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       90 * time.Second,
	}

	go func() {
		<-ctx.Done()
		c, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(c); err != nil {
			log.Errorf("shutdown: %v", err)
		}
	}()

	log.Infof("Server running on http://localhost:%s/posts", cfg.Port)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Errorf("server: %v", err)
		os.Exit(1)
	}
}
