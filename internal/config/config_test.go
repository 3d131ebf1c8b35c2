package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"SERVICE_NAME", "SERVER_PORT", "LOG_LEVEL", "DB_DRIVER", "JWT_TTL", "KAFKA_BROKERS"} {
		t.Setenv(k, "")
	}
	t.Setenv("DATABASE_URL", "postgres://localhost/shop")
	t.Setenv("JWT_SECRET", "secret")

	cfg := Load()

	assert.Equal(t, "shop", cfg.ServiceName)
	assert.Equal(t, 8080, cfg.ServerPort)
	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, "postgres", cfg.DBDriver)
	assert.Equal(t, 2*time.Hour, cfg.JWTTTL)
	assert.Nil(t, cfg.KafkaBrokers)
	require.NoError(t, cfg.Validate())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("JWT_TTL", "15m")
	t.Setenv("KAFKA_BROKERS", "kafka-1:9092, kafka-2:9092,")

	cfg := Load()

	assert.Equal(t, 9090, cfg.ServerPort)
	assert.Equal(t, "sqlite", cfg.DBDriver)
	assert.Equal(t, 15*time.Minute, cfg.JWTTTL)
	assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, cfg.KafkaBrokers)
}

func TestLoad_BadNumbersFallBack(t *testing.T) {
	t.Setenv("SERVER_PORT", "eighty")
	t.Setenv("JWT_TTL", "soon")

	cfg := Load()

	assert.Equal(t, 8080, cfg.ServerPort)
	assert.Equal(t, 2*time.Hour, cfg.JWTTTL)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{
			name:    "missing database url",
			cfg:     Config{JWTSecret: []byte("s"), JWTTTL: time.Hour},
			wantErr: "DATABASE_URL",
		},
		{
			name:    "missing secret",
			cfg:     Config{DatabaseURL: "x", JWTTTL: time.Hour},
			wantErr: "JWT_SECRET",
		},
		{
			name:    "half manager bootstrap",
			cfg:     Config{DatabaseURL: "x", JWTSecret: []byte("s"), JWTTTL: time.Hour, ManagerUsername: "boss"},
			wantErr: "BOOTSTRAP_MANAGER_PASSWORD",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("SHOP_TEST_FROM_FILE=yes\n"), 0o600))
	t.Setenv("SHOP_TEST_FROM_FILE", "")
	require.NoError(t, os.Unsetenv("SHOP_TEST_FROM_FILE"))

	LoadEnvFile(path)
	assert.Equal(t, "yes", os.Getenv("SHOP_TEST_FROM_FILE"))

	LoadEnvFile(filepath.Join(t.TempDir(), "missing.env"))
}
