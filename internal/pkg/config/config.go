package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/robfig/cron/v3"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server       ServerConfig
	DB           DBConfig
	CORS         CORSConfig
	Log          LogConfig
	Auth         AuthConfig
	Oracle       OracleConfig
	Verification VerificationConfig
	Sweep        SweepConfig
	ID           IDConfig
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
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"20"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,OPTIONS"`
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

// AuthConfig guards the reconciliation endpoint, which is called by the on-chain event listener.
type AuthConfig struct {
	SyncTokenSecret   string        `envconfig:"SYNC_TOKEN_SECRET" required:"true"`
	SyncAuthEnabled   bool          `envconfig:"SYNC_AUTH_ENABLED" default:"true"`
	SyncTokenDuration time.Duration `envconfig:"SYNC_TOKEN_DURATION" default:"720h"`
	SyncTokenIssuer   string        `envconfig:"SYNC_TOKEN_ISSUER" default:"coffee-verifier"`
}

type OracleConfig struct {
	Mode        string        `envconfig:"ORACLE_MODE" default:"simulated"`
	GatewayURL  string        `envconfig:"ORACLE_GATEWAY_URL"`
	APIKey      string        `envconfig:"ORACLE_API_KEY"`
	Timeout     time.Duration `envconfig:"ORACLE_TIMEOUT" default:"10s"`
	MaxRetries  uint          `envconfig:"ORACLE_MAX_RETRIES" default:"3"`
	ProfilePath string        `envconfig:"ORACLE_PROFILE_PATH"`
}

type VerificationConfig struct {
	PendingWindow       time.Duration `envconfig:"VERIFICATION_PENDING_WINDOW" default:"30s"`
	ForceAfter          time.Duration `envconfig:"VERIFICATION_FORCE_AFTER" default:"90s"`
	FailureProbability  float64       `envconfig:"VERIFICATION_FAILURE_PROBABILITY" default:"0.15"`
	EstimatedCompletion time.Duration `envconfig:"VERIFICATION_ESTIMATED_COMPLETION" default:"90s"`
}

type SweepConfig struct {
	Enabled   bool   `envconfig:"SWEEP_ENABLED" default:"true"`
	Schedule  string `envconfig:"SWEEP_SCHEDULE" default:"@every 1m"`
	BatchSize int    `envconfig:"SWEEP_BATCH_SIZE" default:"100"`
}

type IDConfig struct {
	Node int64 `envconfig:"ID_NODE" default:"1"`
}

const (
	OracleModeSimulated = "simulated"
	OracleModeHTTP      = "http"
)

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func (c Config) Validate() error {
	switch c.Oracle.Mode {
	case OracleModeSimulated:
	case OracleModeHTTP:
		if c.Oracle.GatewayURL == "" {
			return fmt.Errorf("ORACLE_GATEWAY_URL is required when ORACLE_MODE=%s", OracleModeHTTP)
		}
	default:
		return fmt.Errorf("unknown ORACLE_MODE %q", c.Oracle.Mode)
	}
	if c.Verification.PendingWindow >= c.Verification.ForceAfter {
		return fmt.Errorf("VERIFICATION_PENDING_WINDOW (%s) must be shorter than VERIFICATION_FORCE_AFTER (%s)",
			c.Verification.PendingWindow, c.Verification.ForceAfter)
	}
	if p := c.Verification.FailureProbability; p < 0 || p > 1 {
		return fmt.Errorf("VERIFICATION_FAILURE_PROBABILITY must be within [0,1], got %v", p)
	}
	if c.Sweep.Enabled {
		if c.Sweep.BatchSize <= 0 {
			return fmt.Errorf("SWEEP_BATCH_SIZE must be positive, got %d", c.Sweep.BatchSize)
		}
		// the sweeper's cron instance uses the standard parser
		if _, err := cron.ParseStandard(c.Sweep.Schedule); err != nil {
			return fmt.Errorf("invalid SWEEP_SCHEDULE %q: %w", c.Sweep.Schedule, err)
		}
	}
	return nil
}

func LoadConfig() (Config, error) {
	// a missing .env is normal outside local development
	_ = godotenv.Load()

	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %w", err)
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
			MaxConns: 10,
		},
		Log: LogConfig{
			Level:      "error", // Error level only for tests
			TimeZone:   "UTC",
			TimeFormat: "2006-01-02 15:04:05.000",
		},
		Auth: AuthConfig{
			SyncTokenSecret:   "test-sync-secret",
			SyncAuthEnabled:   true,
			SyncTokenDuration: time.Hour,
			SyncTokenIssuer:   "coffee-verifier-test",
		},
		Oracle: OracleConfig{
			Mode:       OracleModeSimulated,
			Timeout:    2 * time.Second,
			MaxRetries: 1,
		},
		Verification: VerificationConfig{
			PendingWindow:       30 * time.Second,
			ForceAfter:          90 * time.Second,
			FailureProbability:  0.15,
			EstimatedCompletion: 90 * time.Second,
		},
		Sweep: SweepConfig{
			Enabled:   false,
			Schedule:  "@every 1m",
			BatchSize: 100,
		},
		ID: IDConfig{
			Node: 1,
		},
	}
}
