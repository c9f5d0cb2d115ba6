package main

import (
	"context"
	"envelope-orchestrator/config"
	_ "envelope-orchestrator/docs"
	"envelope-orchestrator/internal/handler"
	"envelope-orchestrator/internal/repository"
	"envelope-orchestrator/internal/security"
	"envelope-orchestrator/internal/service"
	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
)

// @title Envelope-orchestrator
// @version 1.0
// @description REST API сборки конвертов на подпись и отслеживания прогресса подписания

// @host localhost:8080
func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.LoadConfig("config.yaml")
	if err != nil {
		log.Fatalf("Ошибка загрузки конфигурации: %v", err)
	}

	db, err := config.SetupDatabase(cfg.DatabaseConfig.DSN)
	if err != nil {
		log.Fatalf("Не удалось подключиться к БД: %v", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("Ошибка при закрытии БД: %v", err)
		}
	}()

	if err := config.RunMigrations(ctx, db); err != nil {
		log.Fatalf("Не удалось применить миграции: %v", err)
	}

	redisClient, err := config.SetupRedis(&cfg.RedisConfig)
	if err != nil {
		log.Fatalf("Ошибка подключения к Redis: %v", err)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Printf("Ошибка при закрытии Redis: %v", err)
		}
	}()

	srv, router := config.SetupServer(cfg.ServerAddr)

	tokenSafety := time.Duration(cfg.TTL.TokenSafety) * time.Second
	downloadTTL := time.Duration(cfg.TTL.DownloadURL) * time.Second
	esignClient := &http.Client{Timeout: cfg.ESignTimeout()}
	formFillClient := &http.Client{Timeout: cfg.FormFillTimeout()}

	tokenCache := repository.NewTokenCacheRepository(redisClient)
	accountRepo := repository.NewAccountRepository(db)

	s3Service, err := service.NewS3Service(ctx, &cfg.S3Config)
	if err != nil {
		log.Fatalf("Ошибка создания S3 сервиса: %v", err)
	}

	oauthService := security.NewOAuthService(&cfg.ESign, esignClient, tokenCache, tokenSafety)
	credentialsService := service.NewCredentialsService(accountRepo, oauthService, cfg.ESign.APIBaseURL, tokenSafety)
	formFillService := service.NewFormFillService(&cfg.FormFill, formFillClient, tokenCache, tokenSafety)
	esignService := service.NewESignService(esignClient)

	envelopeService := service.NewEnvelopeService(formFillService, esignService, credentialsService, s3Service, downloadTTL)
	statusService := service.NewStatusService(esignService, credentialsService)
	accountService := service.NewAccountService(accountRepo)

	envelopeHandler := handler.NewEnvelopeHandler(envelopeService, statusService)
	accountHandler := handler.NewAccountHandler(accountService)

	router.Use(security.UserMiddleware)
	router.Get("/swagger/*", httpSwagger.WrapHandler)
	router.Get("/api/health", handler.Health)

	setupEnvelopeRoutes(router, envelopeHandler)
	setupAccountRoutes(router, accountHandler)

	runServer(ctx, srv)
}

func setupEnvelopeRoutes(r chi.Router, h *handler.EnvelopeHandler) {
	r.Route("/api/envelopes", func(r chi.Router) {
		r.Post("/", h.CreateEnvelope)
		r.Post("/linked", h.CreateLinkedEnvelope)
		r.Get("/", h.ListEnvelopes)

		r.Route("/{envelopeId}", func(r chi.Router) {
			r.Get("/", h.GetEnvelope)
			r.Get("/signers-status", h.GetSignersStatus)
			r.Get("/download", h.DownloadEnvelope)
		})
	})
}

func setupAccountRoutes(r chi.Router, h *handler.AccountHandler) {
	r.Route("/api/accounts", func(r chi.Router) {
		r.Get("/", h.ListAccounts)

		r.Route("/{accountId}", func(r chi.Router) {
			r.Get("/", h.GetAccount)
			r.Put("/default", h.SetDefaultAccount)
			r.Delete("/", h.DeleteAccount)
		})
	})
}

func runServer(ctx context.Context, server *http.Server) {
	serverErrors := make(chan error, 1)
	go func() {
		log.Println("сервер запущен на " + server.Addr)
		serverErrors <- server.ListenAndServe()
	}()

	signalChannel := make(chan os.Signal, 1)
	signal.Notify(signalChannel, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil {
			log.Fatalf("ошибка работы сервера: %v", err)
		}
	case sig := <-signalChannel:
		log.Printf("получен сигнал %v остановки работы сервера ", sig)
	}

	shutDownCtx, shutDownCancel := context.WithTimeout(ctx, 5*time.Second)
	defer shutDownCancel()

	if err := server.Shutdown(shutDownCtx); err != nil {
		log.Printf("ошибка при остановке сервера: %v", err)
	} else {
		log.Println("Сервер успешно остановлен")
	}
}
