package config

import (
	"log"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type key string

const (
	KeyLogger  = key("logger")
	KeyMetrics = key("metrics")
	KeyActor   = key("actor")
)

type Config struct {
	Service  Service
	Postgres Postgres
	Kafka    Kafka
	Email    Email
	Auth     Auth
	Logger   Logger
	Metrics  Metrics
	Platform Platform
}

type Service struct {
	Port string `env:"MESSAGING_SERVICE_PORT"`
	Name string `env:"MESSAGING_SERVICE_NAME"`
}

type Postgres struct {
	User     string `env:"MESSAGING_SERVICE_POSTGRES_USER"`
	Password string `env:"MESSAGING_SERVICE_POSTGRES_PASSWORD"`
	Database string `env:"MESSAGING_SERVICE_POSTGRES_DB"`
	Host     string `env:"MESSAGING_SERVICE_POSTGRES_HOST"`
	Port     string `env:"MESSAGING_SERVICE_POSTGRES_PORT"`
}

type Kafka struct {
	Host              string `env:"KAFKA_HOST"`
	Port              string `env:"KAFKA_PORT"`
	NotificationTopic string `env:"KAFKA_NOTIFICATION_TOPIC"`
}

type Email struct {
	BaseURL string        `env:"EMAIL_GATEWAY_BASE_URL"`
	APIKey  string        `env:"EMAIL_GATEWAY_API_KEY"`
	From    string        `env:"EMAIL_GATEWAY_FROM"`
	Timeout time.Duration `env:"EMAIL_GATEWAY_TIMEOUT" env-default:"5s"`
}

type Auth struct {
	JWTSecret string `env:"MESSAGING_SERVICE_JWT_SECRET"`
}

type Logger struct {
	Host string `env:"LOGGER_SERVICE_HOST"`
	Port string `env:"LOGGER_SERVICE_PORT"`
}

type Metrics struct {
	Host string `env:"GRAFANA_HOST"`
	Port int    `env:"GRAFANA_PORT"`
}

type Platform struct {
	Env string `env:"ENV"`
}

func MustLoad() *Config {
	cfg := &Config{}

	if err := cleanenv.ReadEnv(cfg); err != nil {
		log.Fatalf("failed to read env variables: %s", err)
	}

	return cfg
}
