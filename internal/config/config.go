package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	SessionBackendMemory = "memory"
	SessionBackendRedis  = "redis"
)

type Config struct {
	Port        string
	Environment string
	LogFile     string

	DataDir           string
	QuestionBankPath  string
	RubricPath        string
	ResultsLogPath    string
	QuestionStatsPath string

	QuizSize       int
	SessionBackend string
	SessionTTL     time.Duration
	RedisURL       string

	Events EventConfig
}

// LoadConfig reads the environment, after loading .env when one exists
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	dataDir := getEnv("DATA_DIR", "data")
	ttl, err := time.ParseDuration(getEnv("SESSION_TTL", "0s"))
	if err != nil {
		return nil, err
	}

	return &Config{
		Port:        getEnv("PORT", "8080"),
		Environment: getEnv("ENVIRONMENT", "development"),
		LogFile:     getEnv("LOG_FILE", ""),

		DataDir:           dataDir,
		QuestionBankPath:  getEnv("QUESTION_BANK_PATH", filepath.Join(dataDir, "questions.json")),
		RubricPath:        getEnv("RUBRIC_PATH", filepath.Join(dataDir, "rubric.json")),
		ResultsLogPath:    getEnv("RESULTS_LOG_PATH", filepath.Join(dataDir, "results_log.csv")),
		QuestionStatsPath: getEnv("QUESTION_STATS_PATH", filepath.Join(dataDir, "question_stats.json")),

		QuizSize:       getEnvInt("QUIZ_SIZE", 5),
		SessionBackend: strings.ToLower(getEnv("SESSION_BACKEND", SessionBackendMemory)),
		SessionTTL:     ttl,
		RedisURL:       getEnv("REDIS_URL", "redis://localhost:6379"),

		Events: EventConfig{
			Enabled:      getEnvBool("EVENTS_ENABLED", false),
			Publisher:    getEnv("EVENTS_PUBLISHER", "gochannel"),
			KafkaBrokers: getEnv("KAFKA_BROKERS", "localhost:9092"),
			Topic:        getEnv("EVENTS_TOPIC", "quiz-events"),
		},
	}, nil
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(os.Getenv(key))
	if err != nil || value <= 0 {
		return defaultValue
	}
	return value
}

func getEnvBool(key string, defaultValue bool) bool {
	value, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}
