package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"mypets-voice/internal/platform/logger"
)

type ConversationStore string

const (
	ConversationStoreMemory   ConversationStore = "memory"
	ConversationStorePostgres ConversationStore = "postgres"
	ConversationStoreRedis    ConversationStore = "redis"
)

type Config struct {
	Port string

	LogLevel  logger.Level
	LogFormat logger.Format
	AppName   string

	// Vacío = repos in-memory.
	DBDSN         string
	DBAutoMigrate bool

	// Backend del historial de chat. Default: postgres si hay DB_DSN, si no memory.
	ConversationStore ConversationStore
	RedisAddr         string
	RedisPassword     string
	RedisDB           int

	// Sin OPENAI_API_KEY el servicio arranca igual; la generación responde "unconfigured".
	OpenAIAPIKey      string
	OpenAIBaseURL     string
	OpenAIModel       string
	GenerationTimeout time.Duration

	// Vacíos = modo dev (X-Debug-User-ID).
	AuthVerifyURL string
	AuthAPIKey    string
}

func getEnv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func getBoolEnv(key string, def bool) bool {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}

// Load lee las env vars y arma la config. No valida; ver Validate.
func Load() (Config, error) {
	cfg := Config{
		Port:      getEnv("PORT", "8080"),
		LogLevel:  logger.ParseLevel(os.Getenv("LOG_LEVEL")),
		LogFormat: logger.ParseFormat(os.Getenv("LOG_FORMAT")),
		AppName:   getEnv("APP_NAME", "mypets-voice"),

		DBDSN:         getEnv("DB_DSN", ""),
		DBAutoMigrate: getBoolEnv("DB_AUTO_MIGRATE", true),

		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),

		OpenAIAPIKey:      getEnv("OPENAI_API_KEY", ""),
		OpenAIBaseURL:     getEnv("OPENAI_BASE_URL", ""),
		OpenAIModel:       getEnv("OPENAI_MODEL", "gpt-4o-mini"),
		GenerationTimeout: 30 * time.Second,

		AuthVerifyURL: getEnv("AUTH_VERIFY_URL", ""),
		AuthAPIKey:    getEnv("AUTH_API_KEY", ""),
	}

	def := ConversationStoreMemory
	if cfg.DBDSN != "" {
		def = ConversationStorePostgres
	}
	cfg.ConversationStore = ConversationStore(strings.ToLower(getEnv("CONVERSATION_STORE", string(def))))

	if v := getEnv("REDIS_DB", ""); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("REDIS_DB: %w", err)
		}
		cfg.RedisDB = n
	}

	if v := getEnv("GENERATION_TIMEOUT", ""); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("GENERATION_TIMEOUT: %w", err)
		}
		cfg.GenerationTimeout = d
	}

	return cfg, nil
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.Port) == "" {
		return errors.New("PORT must not be empty")
	}
	if c.GenerationTimeout <= 0 {
		return errors.New("GENERATION_TIMEOUT must be > 0")
	}
	switch c.ConversationStore {
	case ConversationStoreMemory:
	case ConversationStorePostgres:
		if c.DBDSN == "" {
			return errors.New("CONVERSATION_STORE=postgres requires DB_DSN")
		}
	case ConversationStoreRedis:
		if c.RedisAddr == "" {
			return errors.New("CONVERSATION_STORE=redis requires REDIS_ADDR")
		}
	default:
		return fmt.Errorf("unknown CONVERSATION_STORE %q", c.ConversationStore)
	}
	if (c.AuthVerifyURL == "") != (c.AuthAPIKey == "") {
		return errors.New("AUTH_VERIFY_URL and AUTH_API_KEY must be set together")
	}
	if c.RedisDB < 0 {
		return errors.New("REDIS_DB must be >= 0")
	}
	return nil
}
