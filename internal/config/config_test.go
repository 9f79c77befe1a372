package config

import (
	"testing"
	"time"

	"mypets-voice/internal/platform/logger"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"PORT", "LOG_LEVEL", "LOG_FORMAT", "APP_NAME",
		"DB_DSN", "DB_AUTO_MIGRATE", "CONVERSATION_STORE",
		"REDIS_ADDR", "REDIS_PASSWORD", "REDIS_DB",
		"OPENAI_API_KEY", "OPENAI_BASE_URL", "OPENAI_MODEL", "GENERATION_TIMEOUT",
		"AUTH_VERIFY_URL", "AUTH_API_KEY",
	} {
		t.Setenv(k, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != "8080" {
		t.Fatalf("Port=%q", cfg.Port)
	}
	if cfg.LogLevel != logger.Info || cfg.LogFormat != logger.FormatText {
		t.Fatalf("log level=%v format=%v", cfg.LogLevel, cfg.LogFormat)
	}
	if cfg.ConversationStore != ConversationStoreMemory {
		t.Fatalf("ConversationStore=%q", cfg.ConversationStore)
	}
	if cfg.GenerationTimeout != 30*time.Second {
		t.Fatalf("GenerationTimeout=%v", cfg.GenerationTimeout)
	}
	if cfg.OpenAIAPIKey != "" {
		t.Fatalf("OpenAIAPIKey should be empty")
	}
	if !cfg.DBAutoMigrate {
		t.Fatalf("DBAutoMigrate should default to true")
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

func TestLoad_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9090")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("DB_DSN", "postgres://localhost/pets")
	t.Setenv("CONVERSATION_STORE", "Redis")
	t.Setenv("REDIS_DB", "2")
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("GENERATION_TIMEOUT", "5s")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != "9090" || cfg.LogFormat != logger.FormatJSON {
		t.Fatalf("Port=%q LogFormat=%q", cfg.Port, cfg.LogFormat)
	}
	if cfg.ConversationStore != ConversationStoreRedis || cfg.RedisDB != 2 {
		t.Fatalf("store=%q db=%d", cfg.ConversationStore, cfg.RedisDB)
	}
	if cfg.OpenAIAPIKey != "sk-test" || cfg.GenerationTimeout != 5*time.Second {
		t.Fatalf("key=%q timeout=%v", cfg.OpenAIAPIKey, cfg.GenerationTimeout)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

func TestLoad_PostgresDefaultWhenDSN(t *testing.T) {
	clearEnv(t)
	t.Setenv("DB_DSN", "postgres://localhost/pets")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.ConversationStore != ConversationStorePostgres {
		t.Fatalf("ConversationStore=%q", cfg.ConversationStore)
	}
}

func TestLoad_InvalidDuration(t *testing.T) {
	clearEnv(t)
	t.Setenv("GENERATION_TIMEOUT", "soon")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid GENERATION_TIMEOUT")
	}
}

func TestValidate_Errors(t *testing.T) {
	base := Config{Port: "8080", GenerationTimeout: time.Second, ConversationStore: ConversationStoreMemory}

	bad := base
	bad.ConversationStore = ConversationStorePostgres
	if err := bad.Validate(); err == nil {
		t.Fatalf("postgres store without DSN should fail")
	}

	bad = base
	bad.ConversationStore = "mongo"
	if err := bad.Validate(); err == nil {
		t.Fatalf("unknown store should fail")
	}

	bad = base
	bad.GenerationTimeout = 0
	if err := bad.Validate(); err == nil {
		t.Fatalf("zero timeout should fail")
	}

	bad = base
	bad.AuthVerifyURL = "https://accounts.local/verify"
	if err := bad.Validate(); err == nil {
		t.Fatalf("auth url without api key should fail")
	}
}
