package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"golang.org/x/sync/errgroup"

	kafkalib "github.com/s21platform/kafka-lib"
	logger_lib "github.com/s21platform/logger-lib"

	"github.com/jobdesk/messaging-service/internal/client/email"
	"github.com/jobdesk/messaging-service/internal/config"
	"github.com/jobdesk/messaging-service/internal/infra"
	"github.com/jobdesk/messaging-service/internal/pkg/jwt"
	"github.com/jobdesk/messaging-service/internal/pkg/permission"
	"github.com/jobdesk/messaging-service/internal/pkg/tx"
	"github.com/jobdesk/messaging-service/internal/pkg/validator"
	db "github.com/jobdesk/messaging-service/internal/repository/postgres"
	"github.com/jobdesk/messaging-service/internal/rest"
)

func main() {
	cfg := config.MustLoad()
	logger := logger_lib.New(cfg.Logger.Host, cfg.Logger.Port, cfg.Service.Name, cfg.Platform.Env)

	dbRepo := db.New(cfg)
	defer dbRepo.Close()

	emailClient := email.New(cfg)
	defer emailClient.Close()

	producerConfig := kafkalib.DefaultProducerConfig(cfg.Kafka.Host, cfg.Kafka.Port, cfg.Kafka.NotificationTopic)
	notificationProducer := kafkalib.NewProducer(producerConfig)

	vldtr := validator.New()
	jwtGenerator := jwt.New(cfg.Auth.JWTSecret)
	gate := permission.New(dbRepo)

	handler := rest.New(dbRepo, gate, emailClient, notificationProducer, vldtr)
	router := chi.NewRouter()

	router.Use(func(next http.Handler) http.Handler {
		return infra.AuthHTTP(next, jwtGenerator)
	})
	router.Use(func(next http.Handler) http.Handler {
		return infra.LoggerHTTP(next, logger)
	})
	router.Use(func(next http.Handler) http.Handler {
		return tx.TxMiddlewareHTTP(dbRepo)(next)
	})

	rest.AttachRoutes(router, handler)

	httpServer := &http.Server{
		Handler: router,
	}

	listener, err := net.Listen("tcp", fmt.Sprintf(":%s", cfg.Service.Port))
	if err != nil {
		logger.Error(fmt.Sprintf("failed to start TCP listener: %v", err))
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := httpServer.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("HTTP server error: %v", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gCtx.Done()
		return httpServer.Shutdown(context.Background())
	})

	if err := g.Wait(); err != nil {
		logger.Error(fmt.Sprintf("server error: %v", err))
	}
}
