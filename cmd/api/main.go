package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"mypets-voice/internal/adapters/auth/identity"
	"mypets-voice/internal/adapters/generation/openai"
	pg "mypets-voice/internal/adapters/storage/postgres"
	"mypets-voice/internal/adapters/storage/redisstore"
	"mypets-voice/internal/config"
	"mypets-voice/internal/platform/logger"
	"mypets-voice/internal/ports/auth"
	"mypets-voice/internal/router"

	"github.com/redis/go-redis/v9"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.NewFromEnv().Error("invalid configuration", map[string]any{"error": err})
		os.Exit(1)
	}

	log := logger.New(logger.Options{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
		App:    cfg.AppName,
	})

	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration", map[string]any{"error": err})
		os.Exit(1)
	}

	ctx := context.Background()

	var db *sql.DB
	if cfg.DBDSN != "" {
		db, err = pg.Open(cfg.DBDSN)
		if err != nil {
			log.Error("postgres open failed", map[string]any{"error": err})
			os.Exit(1)
		}
		defer db.Close()

		if cfg.DBAutoMigrate {
			if err := pg.Migrate(ctx, db); err != nil {
				log.Error("postgres migrate failed", map[string]any{"error": err})
				os.Exit(1)
			}
		}
	}

	var rdb redis.UniversalClient
	if cfg.ConversationStore == config.ConversationStoreRedis {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		defer client.Close()

		pctx, cancel := context.WithTimeout(ctx, 3*time.Second)
		err := redisstore.Ping(pctx, client)
		cancel()
		if err != nil {
			log.Error("redis ping failed", map[string]any{"error": err, "addr": cfg.RedisAddr})
			os.Exit(1)
		}
		rdb = client
	}

	gen := openai.NewClient(openai.Config{
		APIKey:  cfg.OpenAIAPIKey,
		BaseURL: cfg.OpenAIBaseURL,
		Model:   cfg.OpenAIModel,
		Timeout: cfg.GenerationTimeout,
	}, log)
	if !gen.Configured() {
		log.Warn("OPENAI_API_KEY not set: chat and diary will answer 503", nil)
	}

	// Sin verifier => modo dev (X-Debug-User-ID).
	var verifier auth.AuthVerifier
	if cfg.AuthVerifyURL != "" {
		verifier = identity.NewVerifier(identity.NewClient(identity.Config{
			VerifyURL: cfg.AuthVerifyURL,
			APIKey:    cfg.AuthAPIKey,
		}))
	} else {
		log.Warn("AUTH_VERIFY_URL not set: accepting X-Debug-User-ID (dev mode)", nil)
	}

	r := router.NewRouter(router.Options{
		AuthVerifier:      verifier,
		DB:                db,
		ConversationStore: cfg.ConversationStore,
		Redis:             rdb,
		Generator:         gen,
		GenerationTimeout: cfg.GenerationTimeout,
		Logger:            log,
	})

	// WriteTimeout tiene que cubrir la generación completa.
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: cfg.GenerationTimeout + 15*time.Second,
	}

	go func() {
		stop := make(chan os.Signal, 1)
		signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
		<-stop

		sctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(sctx)
	}()

	log.Info("starting server", map[string]any{
		"addr":               srv.Addr,
		"conversation_store": string(cfg.ConversationStore),
		"model":              cfg.OpenAIModel,
	})
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Error("server error", map[string]any{"error": err})
		os.Exit(1)
	}
}
