package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

type Config struct {
	ServiceName string
	ServerPort  int
	LogLevel    string

	DatabaseURL string
	DBDriver    string

	JWTSecret []byte
	JWTTTL    time.Duration

	KafkaBrokers []string

	ManagerUsername string
	ManagerPassword string
}

// LoadEnvFile seeds the process environment from a dotenv file. A missing
// file is not an error: the system environment is used as is.
func LoadEnvFile(path string) {
	if err := godotenv.Load(path); err != nil {
		log.Info().Str("path", path).Err(err).Msg("env file not loaded, using system environment")
	}
}

func Load() Config {
	return Config{
		ServiceName: EnvDefault("SERVICE_NAME", "shop"),
		ServerPort:  EnvIntDefault("SERVER_PORT", 8080),
		LogLevel:    EnvDefault("LOG_LEVEL", "info"),

		DatabaseURL: os.Getenv("DATABASE_URL"),
		DBDriver:    EnvDefault("DB_DRIVER", "postgres"),

		JWTSecret: []byte(os.Getenv("JWT_SECRET")),
		JWTTTL:    EnvDurationDefault("JWT_TTL", 2*time.Hour),

		KafkaBrokers: CSV(os.Getenv("KAFKA_BROKERS")),

		ManagerUsername: os.Getenv("BOOTSTRAP_MANAGER_USERNAME"),
		ManagerPassword: os.Getenv("BOOTSTRAP_MANAGER_PASSWORD"),
	}
}

func (c Config) Validate() error {
	var errs []error
	if c.DatabaseURL == "" {
		errs = append(errs, missing("DATABASE_URL"))
	}
	if len(c.JWTSecret) == 0 {
		errs = append(errs, missing("JWT_SECRET"))
	}
	if c.JWTTTL <= 0 {
		errs = append(errs, fmt.Errorf("JWT_TTL must be positive, got %s", c.JWTTTL))
	}
	if (c.ManagerUsername == "") != (c.ManagerPassword == "") {
		errs = append(errs, errors.New("BOOTSTRAP_MANAGER_USERNAME and BOOTSTRAP_MANAGER_PASSWORD must be set together"))
	}
	return errors.Join(errs...)
}

func (c Config) Addr() string {
	return ":" + strconv.Itoa(c.ServerPort)
}

func missing(name string) error {
	return fmt.Errorf("missing required env %s", name)
}

func CSV(v string) []string {
	if v == "" {
		return nil
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

func EnvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func EnvIntDefault(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func EnvDurationDefault(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return def
	}
	return d
}
