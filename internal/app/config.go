package app

import (
	"flag"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

var defaultCORSOrigins = []string{
	"http://localhost:3000",
	"http://localhost:5173",
	"https://content.lumiolabs.in",
	"https://manojitballav.github.io",
	"https://manojitballav.com",
	"https://*.github.io",
	"https://*.lumiolabs.in",
}

type Config struct {
	Port             int
	Env              string
	Mongo            MongoConfig
	Redis            RedisConfig
	CORS             CORSConfig
	RateLimit        int
	OtelCollectorUrl string
}

type MongoConfig struct {
	URI            string
	Database       string
	MaxPoolSize    uint64
	ConnectTimeout time.Duration
}

// RedisConfig configures the optional aggregate cache. An empty URL disables it.
type RedisConfig struct {
	URL          string
	MaxOpenConns int
	MaxIdleConns int
	MaxIdleTime  time.Duration
	CacheTTL     time.Duration
}

type CORSConfig struct {
	AllowedOrigins []string
}

// parseConfig reads command-line flags. Flag defaults come from the
// environment, which may be seeded from a .env file in the working directory.
func parseConfig(args []string) (Config, bool, error) {
	_ = godotenv.Load()

	var (
		cfg         Config
		corsOrigins string
		fs          = flag.NewFlagSet("content-api", flag.ContinueOnError)
	)

	fs.IntVar(&cfg.Port, "port", envInt("PORT", 8080), "server port")
	fs.StringVar(&cfg.Env, "env", envString("ENV", "dev"), "Environment (dev|staging|prod)")

	fs.StringVar(&cfg.Mongo.URI, "mongo-uri", envString("MONGO_URI", "mongodb://localhost:27017"), "MongoDB connection URI")
	fs.StringVar(&cfg.Mongo.Database, "mongo-db", envString("MONGO_DB", "content_db"), "MongoDB database name")
	fs.Uint64Var(&cfg.Mongo.MaxPoolSize, "mongo-max-pool-size", uint64(envInt("MONGO_MAX_POOL_SIZE", 100)), "MongoDB max connection pool size")
	fs.DurationVar(&cfg.Mongo.ConnectTimeout, "mongo-connect-timeout", 10*time.Second, "MongoDB startup ping timeout")

	fs.StringVar(&cfg.Redis.URL, "redis-url", envString("REDIS_URL", ""), "Redis address for the aggregate cache (empty disables caching)")
	fs.IntVar(&cfg.Redis.MaxOpenConns, "redis-max-open-conns", 25, "Redis max open connections")
	fs.IntVar(&cfg.Redis.MaxIdleConns, "redis-max-idle-conns", 10, "Redis max idle connections")
	fs.DurationVar(&cfg.Redis.MaxIdleTime, "redis-max-idle-time", 2*time.Minute, "Redis max idle time for connections")
	fs.DurationVar(&cfg.Redis.CacheTTL, "cache-ttl", 10*time.Minute, "TTL of cached facets, year range and stats")

	fs.StringVar(&corsOrigins, "cors-origins", envString("CORS_ORIGINS", strings.Join(defaultCORSOrigins, ",")), "Comma-separated allowed CORS origins")
	fs.IntVar(&cfg.RateLimit, "rate-limit", envInt("RATE_LIMIT", 0), "Requests per minute per client IP (0 disables)")
	fs.StringVar(&cfg.OtelCollectorUrl, "otel-collector-url", envString("OTEL_COLLECTOR_URL", ""), "OpenTelemetry collector gRPC endpoint")

	displayVersion := fs.Bool("version", false, "Display version and exit")

	err := fs.Parse(args)
	if err != nil {
		return Config{}, false, err
	}

	cfg.CORS.AllowedOrigins = splitList(corsOrigins)

	return cfg, *displayVersion, nil
}

func envString(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return def
}

func envInt(key string, def int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return def
	}

	return v
}

func splitList(s string) []string {
	var items []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}

	return items
}
