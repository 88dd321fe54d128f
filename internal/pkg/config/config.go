package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, API keys), security settings
// - default: Values common across all environments (timezone, timeout, pacing), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server      ServerConfig
	DB          DBConfig
	CORS        CORSConfig
	Log         LogConfig
	JWT         JWTConfig
	RandomOrg   RandomOrgConfig
	Reddit      RedditConfig
	Roster      RosterConfig
	Queue       QueueConfig
	Persistence PersistenceConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"UTC"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

type JWTConfig struct {
	Secret   string        `envconfig:"JWT_SECRET" required:"true"`
	Duration time.Duration `envconfig:"JWT_DURATION" default:"24h"`
}

type RandomOrgConfig struct {
	APIURL        string        `envconfig:"RANDOM_ORG_API_URL" default:"https://api.random.org/json-rpc/4/invoke"`
	APIKeys       []string      `envconfig:"RANDOM_ORG_API_KEYS" required:"true"`
	DailyQuota    int64         `envconfig:"RANDOM_ORG_DAILY_QUOTA" default:"4000"`
	ResetHourUTC  int           `envconfig:"RANDOM_ORG_RESET_HOUR_UTC" default:"9"`
	RetryInterval time.Duration `envconfig:"RANDOM_ORG_RETRY_INTERVAL" default:"5m"`
	RetryJitter   uint64        `envconfig:"RANDOM_ORG_RETRY_JITTER_PERCENT" default:"0"`
	HTTPTimeout   time.Duration `envconfig:"RANDOM_ORG_HTTP_TIMEOUT" default:"30s"`
}

type RedditConfig struct {
	BaseURL          string        `envconfig:"REDDIT_BASE_URL" default:"https://www.reddit.com"`
	UserAgent        string        `envconfig:"REDDIT_USER_AGENT" default:"raffle-draw/1.0"`
	HTTPTimeout      time.Duration `envconfig:"REDDIT_HTTP_TIMEOUT" default:"15s"`
	BreakerFailures  uint32        `envconfig:"REDDIT_BREAKER_FAILURES" default:"5"`
	BreakerOpenSpell time.Duration `envconfig:"REDDIT_BREAKER_OPEN" default:"1m"`
}

type RosterConfig struct {
	HTTPTimeout        time.Duration `envconfig:"ROSTER_HTTP_TIMEOUT" default:"15s"`
	MaxDocumentBytes   int64         `envconfig:"ROSTER_MAX_DOCUMENT_BYTES" default:"4194304"`
	GCSCredentialsFile string        `envconfig:"ROSTER_GCS_CREDENTIALS_FILE"`
	AllowPrivateHosts  bool          `envconfig:"ROSTER_ALLOW_PRIVATE_HOSTS" default:"false"`
}

type QueueConfig struct {
	Pacing          time.Duration `envconfig:"QUEUE_PACING" default:"5s"`
	TicketCacheSize int           `envconfig:"QUEUE_TICKET_CACHE_SIZE" default:"1024"`
}

type PersistenceConfig struct {
	MaxAttempts uint64        `envconfig:"PERSISTENCE_MAX_ATTEMPTS" default:"4"`
	BaseBackoff time.Duration `envconfig:"PERSISTENCE_BASE_BACKOFF" default:"100ms"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	if cfg.RandomOrg.ResetHourUTC < 0 || cfg.RandomOrg.ResetHourUTC > 23 {
		return Config{}, fmt.Errorf("RANDOM_ORG_RESET_HOUR_UTC out of range: %d", cfg.RandomOrg.ResetHourUTC)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "UTC",
		},
		CORS: CORSConfig{
			AllowOrigins: []string{"http://localhost:3000"},
			AllowMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
			AllowHeaders: []string{"Origin", "Content-Type", "Accept", "Authorization"},
			MaxAge:       time.Hour,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "UTC",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 0,
		},
		JWT: JWTConfig{
			Secret:   "test-secret",
			Duration: time.Hour,
		},
		RandomOrg: RandomOrgConfig{
			APIURL:        "http://127.0.0.1:0/json-rpc/4/invoke",
			APIKeys:       []string{"test-key-a", "test-key-b"},
			DailyQuota:    4000,
			ResetHourUTC:  9,
			RetryInterval: 5 * time.Minute,
			HTTPTimeout:   time.Second,
		},
		Reddit: RedditConfig{
			BaseURL:          "http://127.0.0.1:0",
			UserAgent:        "raffle-draw-test",
			HTTPTimeout:      time.Second,
			BreakerFailures:  5,
			BreakerOpenSpell: time.Minute,
		},
		Roster: RosterConfig{
			HTTPTimeout:      time.Second,
			MaxDocumentBytes: 1 << 20,
		},
		Queue: QueueConfig{
			Pacing:          0,
			TicketCacheSize: 64,
		},
		Persistence: PersistenceConfig{
			MaxAttempts: 4,
			BaseBackoff: 10 * time.Millisecond,
		},
	}
}
