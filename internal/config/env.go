package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	DataSourceAuto    = "auto"
	DataSourceMySQL   = "mysql"
	DataSourceMongo   = "mongo"
	DataSourceFixture = "fixture"
)

type Env struct {
	AppAddr string
	GinMode string

	DataSource    string
	MySQLDSN      string
	MongoURI      string
	MongoDatabase string
	RedisAddr     string

	JWTSecret     string
	AdminUsername string
	AdminPassword string

	CORSAllowedOrigins []string

	NewHireMonthlyCost float64
	PercentPrecision   int

	LoginRatePerSec float64
	LoginBurst      int
}

var defaultCORSOrigins = []string{
	"http://localhost:3000",
	"http://localhost:5173",
	"http://127.0.0.1:3000",
}

// LoadEnv reads .env when present, then the process environment.
func LoadEnv() Env {
	_ = godotenv.Load()

	return Env{
		AppAddr: envOr("APP_ADDR", ":5000"),
		GinMode: envOr("GIN_MODE", ""),

		DataSource:    strings.ToLower(envOr("DATA_SOURCE", DataSourceAuto)),
		MySQLDSN:      envOr("MYSQL_DSN", ""),
		MongoURI:      envOr("MONGODB_URI", ""),
		MongoDatabase: envOr("MONGODB_DATABASE", "seas_financial"),
		RedisAddr:     envOr("REDIS_ADDR", ""),

		JWTSecret:     envOr("JWT_SECRET", "seas-financial-secret"),
		AdminUsername: envOr("ADMIN_USERNAME", "admin"),
		AdminPassword: envOr("ADMIN_PASSWORD", "admin123"),

		CORSAllowedOrigins: envList("CORS_ALLOWED_ORIGINS", defaultCORSOrigins),

		NewHireMonthlyCost: envFloat("NEW_HIRE_MONTHLY_COST", 10000),
		PercentPrecision:   envInt("PERCENT_PRECISION", 1),

		LoginRatePerSec: envFloat("LOGIN_RATE_PER_SEC", 1),
		LoginBurst:      envInt("LOGIN_BURST", 5),
	}
}

func envOr(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) int {
	n, err := strconv.Atoi(envOr(key, ""))
	if err != nil {
		return def
	}
	return n
}

func envFloat(key string, def float64) float64 {
	f, err := strconv.ParseFloat(envOr(key, ""), 64)
	if err != nil {
		return def
	}
	return f
}

func envList(key string, def []string) []string {
	raw := envOr(key, "")
	if raw == "" {
		return def
	}
	var out []string
	for _, p := range strings.Split(raw, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}
