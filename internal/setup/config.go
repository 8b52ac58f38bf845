package setup

import (
	"os"
	"strconv"
	"time"

	"github.com/povarna/generative-ai-agents/travel-agent/internal/agent"
	"github.com/povarna/generative-ai-agents/travel-agent/internal/corrector"
	"github.com/povarna/generative-ai-agents/travel-agent/internal/database"
	"github.com/povarna/generative-ai-agents/travel-agent/internal/llm"
)

type Config struct {
	AWSRegion         string
	ClaudeModelID     string
	OpenAIKey         string
	OpenAIModelID     string
	AgentURL          string
	DefaultProvider   string
	Temperature       float64
	MaxTokens         int
	RegenerateTimeout time.Duration
	TopicsConfigPath  string

	APIPort       string
	RedisAddr     string
	RedisPassword string
	Postgres      database.Config
	LogLevel      string
}

func LoadConfig() *Config {
	return &Config{
		AWSRegion:         getEnv("AWS_REGION", "us-east-1"),
		ClaudeModelID:     getEnv("CLAUDE_MODEL_ID", ""),
		OpenAIKey:         getEnv("OPEN_AI_KEY", ""),
		OpenAIModelID:     getEnv("OPEN_AI_MODEL_ID", "gpt-4o-mini"),
		AgentURL:          getEnv("AGENT_URL", ""),
		DefaultProvider:   getEnv("DEFAULT_LLM_PROVIDER", llm.ProviderBedrock),
		Temperature:       getEnvFloat("TEMPERATURE", agent.DefaultTemperature),
		MaxTokens:         getEnvInt("MAX_TOKENS", agent.DefaultMaxTokens),
		RegenerateTimeout: getEnvDuration("REGENERATE_TIMEOUT", corrector.DefaultRegenerateTimeout),
		TopicsConfigPath:  getEnv("TOPICS_CONFIG_PATH", "configs/topics.yaml"),

		APIPort:       getEnv("TRAVEL_AGENT_API_PORT", "8080"),
		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		Postgres: database.Config{
			Host:     getEnv("POSTGRES_HOST", ""),
			Port:     getEnv("POSTGRES_PORT", "5432"),
			User:     getEnv("POSTGRES_USER", "postgres"),
			Password: getEnv("POSTGRES_PASSWORD", ""),
			Database: getEnv("POSTGRES_DB", "travel"),
			SSLMode:  getEnv("POSTGRES_SSLMODE", "disable"),
			MaxConns: int32(getEnvInt("POSTGRES_MAX_CONNS", 10)),
		},
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}
}

func getEnv(key string, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		value = defaultValue
	}

	return value
}

func getEnvFloat(key string, defaultValue float64) float64 {
	valueStr := os.Getenv(key)
	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		value = defaultValue
	}

	return value
}

func getEnvInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		value = defaultValue
	}

	return value
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value, err := time.ParseDuration(os.Getenv(key))
	if err != nil || value <= 0 {
		value = defaultValue
	}

	return value
}
