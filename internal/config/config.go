package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App     AppConfig
	Records RecordsConfig
	Auth    AuthConfig
	Chatbot ChatbotConfig
}

type AppConfig struct {
	Port               string
	Environment        string
	LogFilePath        string
	WsLogFilePath      string
	CorsAllowedOrigins string
}

type RecordsConfig struct {
	Backend  string // "memory", "redis" or "postgres"
	RedisURL string
	PgDSN    string
}

type AuthConfig struct {
	JwtSecret    string
	DemoUser     string
	DemoName     string
	DemoPassword string
}

type ChatbotConfig struct {
	TypingDelay    time.Duration
	HighlightDelay time.Duration
	ActionsTopic   string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "logs/app.log"),
			WsLogFilePath:      getEnv("WS_LOG_FILE_PATH", "logs/websocket.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
		},
		Records: RecordsConfig{
			Backend:  getEnv("RECORDS_BACKEND", "memory"),
			RedisURL: getEnv("REDIS_URL", "redis://localhost:6379"),
			PgDSN:    getEnv("DB_CONNECTION_STRING", ""),
		},
		Auth: AuthConfig{
			JwtSecret:    getEnv("JWT_SECRET", "servizi-facili-demo-secret"),
			DemoUser:     getEnv("DEMO_USER", "mario.rossi@example.it"),
			DemoName:     getEnv("DEMO_NAME", "Mario"),
			DemoPassword: getEnv("DEMO_PASSWORD", "serviziFacili50+"),
		},
		Chatbot: ChatbotConfig{
			TypingDelay:    getEnvAsDuration("CHATBOT_TYPING_DELAY", 800*time.Millisecond),
			HighlightDelay: getEnvAsDuration("CHATBOT_HIGHLIGHT_DELAY", 500*time.Millisecond),
			ActionsTopic:   getEnv("CHATBOT_ACTIONS_TOPIC", "assistant.actions"),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	strValue := getEnv(key, "")
	if strValue == "" {
		return fallback
	}
	if ms, err := strconv.Atoi(strValue); err == nil {
		return time.Duration(ms) * time.Millisecond
	}
	if d, err := time.ParseDuration(strValue); err == nil {
		return d
	}
	return fallback
}
