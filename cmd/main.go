package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/samandr77/microservices/dealsync/internal/api"
	"github.com/samandr77/microservices/dealsync/internal/clients/hubspot"
	"github.com/samandr77/microservices/dealsync/internal/service"
	"github.com/samandr77/microservices/dealsync/pkg/broker"
	"github.com/samandr77/microservices/dealsync/pkg/config"
	"github.com/samandr77/microservices/dealsync/pkg/logger"
)

const (
	ReadTimeout     = 3 * time.Second
	WriteTimeout    = time.Minute
	ShutdownTimeout = 10 * time.Second
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.New(".env")
	panicOnErr("load config", err)

	l, err := logger.New(cfg.Logger.Level)
	panicOnErr("create logger", err)

	if cfg.HubSpot.Token == "" {
		slog.WarnContext(ctx, "HUBSPOT_TOKEN is not set, every CRM call will be rejected")
	}

	crm := hubspot.NewClient(cfg.HubSpot)

	var producer service.Producer

	if cfg.Kafka.Enabled {
		p := broker.NewProducer(l, cfg.Kafka.Brokers, cfg.Kafka.DealSyncedTopic)
		defer p.Close()

		producer = p
	}

	s := service.New(crm, producer, service.Settings{
		JobNumberField: cfg.HubSpot.JobNumberField,
		Pipeline:       cfg.HubSpot.Pipeline,
	})

	handler := api.NewHandler(s)
	mw := api.NewMiddleware(cfg.HTTP.APIKeyEnabled, cfg.HTTP.APIKey)

	router := api.NewRouter(handler, mw, cfg.HTTP.AllowedOrigins)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:      router,
		ReadTimeout:  ReadTimeout,
		WriteTimeout: WriteTimeout,
	}

	var wg sync.WaitGroup

	wg.Add(1)

	go func() {
		defer wg.Done()

		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Panicf("listen and serve: %s", err)
		}
	}()

	slog.InfoContext(ctx, "service started", "port", cfg.HTTP.Port, "kafka", cfg.Kafka.Enabled)

	wg.Add(1)

	go func() {
		defer wg.Done()

		ch := make(chan os.Signal, 1)
		signal.Notify(ch, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
		sig := <-ch

		slog.InfoContext(ctx, "got OS signal", "signal", sig.String())

		shutdownCtx, shutdownCancel := context.WithTimeout(ctx, ShutdownTimeout)
		defer shutdownCancel()

		err := server.Shutdown(shutdownCtx)
		if err != nil {
			slog.ErrorContext(ctx, "server shutdown", "error", err)
		}
	}()

	wg.Wait()
}

func panicOnErr(msg string, err error) {
	if err != nil {
		log.Panicf("%s: %s", msg, err)
	}
}
