package shared

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

type Config struct {
	AppEnv      string
	HTTPAddr    string
	MetricsAddr string
	CORSOrigin  string
	MySQLDSN    string
	RedisAddr   string
	RedisDB     int
	RedisPass   string

	JWTSecret string
	TokenTTL  time.Duration

	PexelsBase string
	PexelsKey  string

	WikiBase string

	WorldBankBase string

	CountriesBase string

	CostBase string
	CostHost string
	CostKey  string

	GroqBase  string
	GroqKey   string
	GroqModel string

	SeedFile    string
	SeedWorkers int

	CacheTTL time.Duration
}

func Load() Config {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	atoi := func(k string, def int) int {
		if v := os.Getenv(k); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				return n
			}
		}
		return def
	}
	c := Config{
		AppEnv:      env("APP_ENV", "prod"),
		HTTPAddr:    env("HTTP_ADDR", ":8080"),
		MetricsAddr: env("METRICS_ADDR", ""),
		CORSOrigin:  env("CORS_ORIGIN", "http://localhost:5173"),
		MySQLDSN:    env("MYSQL_DSN", "root:root@tcp(localhost:3306)/bagragi?parseTime=true&charset=utf8mb4,utf8&loc=UTC"),
		RedisAddr:   env("REDIS_ADDR", "localhost:6379"),
		RedisPass:   env("REDIS_PASSWORD", ""),
		RedisDB:     atoi("REDIS_DB", 0),

		JWTSecret: env("JWT_SECRET", "default_secret"),
		TokenTTL:  time.Duration(atoi("TOKEN_TTL_HOURS", 24)) * time.Hour,

		PexelsBase: env("PEXELS_BASE_URL", "https://api.pexels.com/v1"),
		PexelsKey:  env("PEXELS_API_KEY", ""),

		WikiBase: env("WIKI_BASE_URL", "https://en.wikipedia.org/api/rest_v1"),

		WorldBankBase: env("WORLDBANK_BASE_URL", "https://api.worldbank.org/v2"),

		CountriesBase: env("RESTCOUNTRIES_BASE_URL", "https://restcountries.com/v3.1"),

		CostBase: env("COST_BASE_URL", "https://find-places-to-live.p.rapidapi.com"),
		CostHost: env("RAPIDAPI_HOST", "find-places-to-live.p.rapidapi.com"),
		CostKey:  env("RAPIDAPI_KEY", ""),

		GroqBase:  env("GROQ_BASE_URL", "https://api.groq.com/openai/v1"),
		GroqKey:   env("GROQ_API_KEY", ""),
		GroqModel: env("GROQ_MODEL", "llama3-70b-8192"),

		SeedFile:    env("SEED_FILE", "data/hotels.json"),
		SeedWorkers: atoi("SEED_WORKERS", 8),

		CacheTTL: time.Duration(atoi("CACHE_TTL_SECONDS", 900)) * time.Second,
	}
	if c.JWTSecret == "default_secret" {
		log.Warn().Msg("JWT_SECRET is not set; using insecure default")
	}
	if c.GroqKey == "" {
		log.Warn().Msg("GROQ_API_KEY is empty; chatbot will answer with degraded text")
	}
	return c
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
