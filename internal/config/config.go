package config

import (
	"log"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Chat     ChatConfig
	LLM      LLMConfig
	Tracing  TracingConfig
}

type AppConfig struct {
	Port               string `env:"APP_PORT" envDefault:"3000"`
	Environment        string `env:"GO_ENV" envDefault:"development"`
	LogFilePath        string `env:"LOG_FILE_PATH" envDefault:"app.log.csv"`
	WsLogFilePath      string `env:"WS_LOG_FILE_PATH" envDefault:"logs/chat_ws.log"`
	CorsAllowedOrigins string `env:"CORS_ALLOWED_ORIGINS" envDefault:"http://localhost:8080,http://127.0.0.1:8080"`
	NatsURL            string `env:"NATS_URL" envDefault:"nats://localhost:4222"`
	RedisURL           string `env:"REDIS_URL" envDefault:"redis://localhost:6379"`
}

type DatabaseConfig struct {
	Connection string `env:"DB_CONNECTION_STRING"`
}

type ChatConfig struct {
	MaxMessageSize int64         `env:"WS_MAX_MESSAGE_SIZE" envDefault:"32768"`
	EventsTopic    string        `env:"CHAT_EVENTS_TOPIC" envDefault:"CHAT_EXCHANGE_COMPLETED"`
	PresenceTTL    time.Duration `env:"CHAT_PRESENCE_TTL" envDefault:"2h"`
}

type LLMConfig struct {
	TogetherAIEndpoint string        `env:"TOGETHERAI_CHAT_ENDPOINT" envDefault:"https://api.together.xyz/v1/chat/completions"`
	OpenAIEndpoint     string        `env:"OPENAI_CHAT_ENDPOINT" envDefault:"https://api.openai.com/v1/chat/completions"`
	RequestTimeout     time.Duration `env:"LLM_REQUEST_TIMEOUT" envDefault:"120s"`
	DefaultDomain      string        `env:"LLM_DEFAULT_DOMAIN" envDefault:"togetherai"`
}

type TracingConfig struct {
	Enabled     bool   `env:"OTEL_ENABLED" envDefault:"false"`
	Endpoint    string `env:"OTEL_EXPORTER_OTLP_ENDPOINT" envDefault:"localhost:4318"`
	ServiceName string `env:"OTEL_SERVICE_NAME" envDefault:"ai-chatroom-backend"`
}

// Endpoints maps each supported remote domain to its chat-completions URL.
func (c LLMConfig) Endpoints() map[string]string {
	return map[string]string{
		"togetherai": c.TogetherAIEndpoint,
		"openai":     c.OpenAIEndpoint,
	}
}

func (c AppConfig) IsProduction() bool {
	return c.Environment == "production"
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	cfg, err := Parse()
	if err != nil {
		log.Fatalf("[FATAL] Invalid configuration: %v", err)
	}
	return cfg
}

// Parse reads the configuration from the process environment only.
func Parse() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
