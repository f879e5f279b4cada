package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/tochemey/goakt/v3/actor"
	golog "github.com/tochemey/goakt/v3/log"

	"github.com/lao-tseu-is-alive/go-flock-simulation/pkg/game"
	"github.com/lao-tseu-is-alive/go-flock-simulation/pkg/observability"
	"github.com/lao-tseu-is-alive/go-flock-simulation/pkg/simulation"
)

var logLevels = map[string]golog.Level{
	"debug": golog.DebugLevel,
	"info":  golog.InfoLevel,
	"warn":  golog.WarningLevel,
	"error": golog.ErrorLevel,
}

func main() {
	configFile := flag.String("config", "", "JSON or TOML config file, built-in defaults when empty")
	schemaFile := flag.String("schema", "", "JSON schema for the config file, built-in schema when empty")
	metricsAddr := flag.String("metrics-addr", "", "serve Prometheus metrics on this address, e.g. :9090")
	trace := flag.Bool("trace", false, "export a span per simulation step")
	traceExporter := flag.String("trace-exporter", "stdout", "span exporter: stdout or otlp")
	otlpEndpoint := flag.String("otlp-endpoint", "localhost:4317", "OTLP gRPC collector address")
	logLevel := flag.String("log-level", "info", "debug, info, warn, error or off")
	flag.Parse()

	ctx := context.Background()

	// 1. Configuration
	cfg := simulation.DefaultConfig()
	if *configFile != "" {
		var err error
		if cfg, err = simulation.LoadConfig(*configFile, *schemaFile); err != nil {
			log.Fatal(err)
		}
	}

	// 2. Logging, shared by the actors
	var logger golog.Logger = golog.DiscardLogger
	if level, ok := logLevels[*logLevel]; ok {
		logger = golog.New(level, os.Stdout)
	}

	// 3. Observability
	shutdownTracing, err := observability.InitTracing(ctx, observability.TracingConfig{
		Enabled:     *trace,
		ServiceName: "boids",
		Exporter:    *traceExporter,
		Endpoint:    *otlpEndpoint,
	}, logger)
	if err != nil {
		log.Fatal(err)
	}
	defer observability.ShutdownWithTimeout(ctx, shutdownTracing, logger)

	registry := prometheus.NewRegistry()
	metrics, err := observability.NewFlockCollector(registry)
	if err != nil {
		log.Fatal(err)
	}
	if *metricsAddr != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", metrics.Handler())
		srv := &http.Server{Addr: *metricsAddr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
		go func() {
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Errorf("metrics server: %v", err)
			}
		}()
		defer srv.Shutdown(ctx)
	}

	// 4. Actor system hosting the flock
	system, err := actor.NewActorSystem("FlockWorld", actor.WithLogger(logger))
	if err != nil {
		log.Fatal(err)
	}
	if err := system.Start(ctx); err != nil {
		log.Fatal(err)
	}
	defer system.Stop(ctx)

	g, err := game.NewGame(ctx, cfg, system, metrics)
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowSize(int(cfg.WorldWidth), int(cfg.WorldHeight))
	ebiten.SetWindowTitle("Boids")
	ebiten.SetScreenClearedEveryFrame(cfg.TrailAlpha >= 1)
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
