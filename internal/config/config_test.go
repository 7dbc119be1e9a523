package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/riskibarqy/learnquest/internal/platform/logging"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.StoreDriver != StoreMemory {
		t.Fatalf("expected memory store by default, got %q", cfg.StoreDriver)
	}
	if cfg.RankWriteChunkSize != 500 || cfg.RankWriteWorkers != 4 {
		t.Fatalf("unexpected rank write defaults: chunk=%d workers=%d", cfg.RankWriteChunkSize, cfg.RankWriteWorkers)
	}
	if !cfg.SwaggerEnabled {
		t.Fatalf("expected swagger enabled outside prod")
	}
	if cfg.LogLevel != logging.LevelInfo {
		t.Fatalf("unexpected log level: %v", cfg.LogLevel)
	}
}

func TestLoad_AppEnvValidation(t *testing.T) {
	t.Setenv("APP_ENV", "invalid")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid APP_ENV")
	}
}

func TestLoad_SwaggerDisabledInProd(t *testing.T) {
	t.Setenv("APP_ENV", EnvProd)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.SwaggerEnabled {
		t.Fatalf("expected swagger disabled in prod")
	}
}

func TestLoad_StoreDriver(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("STORE_DRIVER", "Mongo")
	t.Setenv("MONGO_URI", "mongodb://mongo:27017")
	t.Setenv("MONGO_DATABASE", "lq")
	t.Setenv("MONGO_CONNECT_TIMEOUT", "3s")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.StoreDriver != StoreMongo {
		t.Fatalf("expected mongo store, got %q", cfg.StoreDriver)
	}
	if cfg.MongoURI != "mongodb://mongo:27017" || cfg.MongoDatabase != "lq" || cfg.MongoConnectTimeout != 3*time.Second {
		t.Fatalf("unexpected mongo config: %+v", cfg)
	}

	t.Setenv("STORE_DRIVER", "redis")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for unknown STORE_DRIVER")
	}
}

func TestLoad_RejectsNonPositiveValues(t *testing.T) {
	tests := []struct {
		key   string
		value string
	}{
		{key: "RANK_WRITE_CHUNK_SIZE", value: "0"},
		{key: "RANK_WRITE_WORKERS", value: "-1"},
		{key: "CACHE_TTL", value: "0s"},
		{key: "WS_BROADCAST_WORKERS", value: "0"},
		{key: "MONGO_CONNECT_TIMEOUT", value: "-1s"},
		{key: "RANK_WRITE_WORKERS", value: "many"},
	}

	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			t.Setenv("APP_ENV", EnvDev)
			t.Setenv(tt.key, tt.value)
			if _, err := Load(); err == nil {
				t.Fatalf("expected error for %s=%s", tt.key, tt.value)
			}
		})
	}
}

func TestLoad_UptraceRequiresDSNWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "true")
	t.Setenv("UPTRACE_DSN", "")
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when UPTRACE_ENABLED=true without UPTRACE_DSN")
	}
}

func TestLoad_UptraceDSNFromOTLPHeaders(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "true")
	t.Setenv("UPTRACE_DSN", "")
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", `foo=bar, uptrace-dsn="https://token@api.uptrace.dev?grpc=4317"`)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.UptraceDSN != "https://token@api.uptrace.dev?grpc=4317" {
		t.Fatalf("unexpected UptraceDSN: %q", cfg.UptraceDSN)
	}
}

func TestLoad_OriginLists(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example.com, https://b.example.com,")
	t.Setenv("WS_ALLOWED_ORIGINS", "https://a.example.com")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if len(cfg.CORSAllowedOrigins) != 2 || cfg.CORSAllowedOrigins[1] != "https://b.example.com" {
		t.Fatalf("unexpected CORS origins: %v", cfg.CORSAllowedOrigins)
	}
	if len(cfg.WSAllowedOrigins) != 1 {
		t.Fatalf("unexpected websocket origins: %v", cfg.WSAllowedOrigins)
	}
}

func TestLoadDotEnv_DoesNotOverrideEnvironment(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	if err := os.WriteFile(path, []byte("LQ_TEST_FROM_FILE=file\nLQ_TEST_PRESET=file\n"), 0o600); err != nil {
		t.Fatalf("write env file: %v", err)
	}

	t.Setenv("LQ_TEST_PRESET", "process")
	t.Setenv("LQ_TEST_FROM_FILE", "")
	os.Unsetenv("LQ_TEST_FROM_FILE")

	if err := LoadDotEnv(path, filepath.Join(dir, "missing.env")); err != nil {
		t.Fatalf("load dotenv: %v", err)
	}
	if got := os.Getenv("LQ_TEST_FROM_FILE"); got != "file" {
		t.Fatalf("expected value from file, got %q", got)
	}
	if got := os.Getenv("LQ_TEST_PRESET"); got != "process" {
		t.Fatalf("expected process value to win, got %q", got)
	}
}

func TestLoad_StoreBreaker(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("STORE_BREAKER_ENABLED", "false")
	t.Setenv("STORE_BREAKER_FAILURE_THRESHOLD", "3")
	t.Setenv("STORE_BREAKER_OPEN_TIMEOUT", "30s")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.StoreBreaker.Enabled || cfg.StoreBreaker.FailureThreshold != 3 || cfg.StoreBreaker.OpenTimeout != 30*time.Second {
		t.Fatalf("unexpected breaker config: %+v", cfg.StoreBreaker)
	}
	if cfg.StoreBreaker.HalfOpenMaxReq != 2 {
		t.Fatalf("unexpected half-open default: %d", cfg.StoreBreaker.HalfOpenMaxReq)
	}

	t.Setenv("STORE_BREAKER_OPEN_TIMEOUT", "soon")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid breaker timeout")
	}
}
