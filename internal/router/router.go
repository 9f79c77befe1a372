package router

import (
	"database/sql"
	"net/http"
	"time"

	_ "mypets-voice/docs"
	mem "mypets-voice/internal/adapters/storage/memory"
	pg "mypets-voice/internal/adapters/storage/postgres"
	"mypets-voice/internal/adapters/storage/redisstore"
	"mypets-voice/internal/config"
	"mypets-voice/internal/domain/conversations"
	"mypets-voice/internal/domain/diaries"
	"mypets-voice/internal/domain/healthrecords"
	"mypets-voice/internal/domain/interactions"
	"mypets-voice/internal/domain/personas"
	"mypets-voice/internal/middleware"
	"mypets-voice/internal/platform/logger"
	"mypets-voice/internal/ports/auth"
	"mypets-voice/internal/ports/generation"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/redis/go-redis/v9"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	AuthVerifier auth.AuthVerifier // puede ser nil (modo dev)

	// Opcional: si viene, personas, diario y libreta sanitaria van a Postgres. Si no, in-memory.
	DB *sql.DB

	// Backend del historial de chat. Vacío => postgres si hay DB, si no memory.
	ConversationStore config.ConversationStore
	Redis             redis.UniversalClient
	RedisPrefix       string

	// Puede ser nil: chat y diario responden 503.
	Generator         generation.Generator
	GenerationTimeout time.Duration

	Logger logger.Logger
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(requestLogger(log))

	r.Use(middleware.AccountContext(opts.AuthVerifier))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	var (
		personaRepo personas.Repository
		turnRepo    conversations.Repository
		diaryRepo   diaries.Repository
		healthRepo  healthrecords.Repository
	)

	if opts.DB != nil {
		personaRepo = pg.NewPersonasRepo(opts.DB)
		diaryRepo = pg.NewDiariesRepo(opts.DB)
		healthRepo = pg.NewHealthRecordsRepo(opts.DB)
	} else {
		personaRepo = mem.NewPersonaRepo()
		diaryRepo = mem.NewDiaryRepo()
		healthRepo = mem.NewHealthRecordRepo()
	}

	store := opts.ConversationStore
	switch {
	case store == config.ConversationStoreRedis && opts.Redis != nil:
		turnRepo = redisstore.NewTurnsRepo(opts.Redis, opts.RedisPrefix)
	case (store == config.ConversationStorePostgres || store == "") && opts.DB != nil:
		store = config.ConversationStorePostgres
		turnRepo = pg.NewTurnsRepo(opts.DB)
	default:
		store = config.ConversationStoreMemory
		turnRepo = mem.NewTurnRepo()
	}

	log.Info("repositories ready", map[string]any{
		"personas":       backendName(opts.DB),
		"diary":          backendName(opts.DB),
		"health_records": backendName(opts.DB),
		"conversations":  string(store),
	})

	// Services por módulo
	personasSvc := personas.NewService(personaRepo)
	interactionsSvc := interactions.NewService(personasSvc, turnRepo, diaryRepo, opts.Generator, interactions.Options{
		GenerationTimeout: opts.GenerationTimeout,
		Logger:            log,
	})
	healthSvc := healthrecords.NewService(healthRepo, personasSvc)

	// Rutas por módulo
	personas.RegisterRoutes(r, personasSvc)
	interactions.RegisterRoutes(r, interactionsSvc)
	healthrecords.RegisterRoutes(r, healthSvc)

	return r
}

func backendName(db *sql.DB) string {
	if db != nil {
		return "postgres"
	}
	return "memory"
}

// requestLogger loguea cada request con status y duración.
func requestLogger(log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			log.WithContext(r.Context()).Info("http request", map[string]any{
				"method":      r.Method,
				"path":        r.URL.Path,
				"status":      ww.Status(),
				"duration_ms": time.Since(start).Milliseconds(),
			})
		})
	}
}
