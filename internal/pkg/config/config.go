package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server  ServerConfig
	DB      DBConfig
	CORS    CORSConfig
	Log     LogConfig
	JWT     JWTConfig
	Booking BookingConfig
	Kafka   KafkaConfig
	Migrate MigrateConfig
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
	TimeZone string `envconfig:"DB_TIMEZONE" default:"Asia/Ho_Chi_Minh"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"20"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Asia/Ho_Chi_Minh"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"25200"` // 7*60*60
}

type JWTConfig struct {
	Secret string `envconfig:"JWT_SECRET" required:"true"`
	Issuer string `envconfig:"JWT_ISSUER" default:""`
}

type BookingConfig struct {
	HoldTTL           time.Duration `envconfig:"HOLD_TTL" default:"5m"`
	HoldSweepInterval time.Duration `envconfig:"HOLD_SWEEP_INTERVAL" default:"1m"`
	TxMaxRetries      int           `envconfig:"TX_MAX_RETRIES" default:"3"`
	TxRetryBase       time.Duration `envconfig:"TX_RETRY_BASE" default:"50ms"`
}

// Empty Brokers keeps the outbox relay running against the log publisher.
type KafkaConfig struct {
	Brokers        []string      `envconfig:"KAFKA_BROKERS" default:""`
	Topic          string        `envconfig:"KAFKA_TOPIC" default:"field-booking.events"`
	BatchTimeout   time.Duration `envconfig:"KAFKA_BATCH_TIMEOUT" default:"50ms"`
	OutboxInterval time.Duration `envconfig:"OUTBOX_INTERVAL" default:"2s"`
	OutboxBatch    int           `envconfig:"OUTBOX_BATCH_SIZE" default:"100"`
	MaxAttempts    int           `envconfig:"OUTBOX_MAX_ATTEMPTS" default:"10"`
}

type MigrateConfig struct {
	AtlasBin string `envconfig:"ATLAS_BIN" default:"atlas"`
	DirURL   string `envconfig:"MIGRATIONS_DIR" default:"file://migrations"`
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
			MaxConns: 20,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "UTC",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 0,
		},
		JWT: JWTConfig{
			Secret: "test-secret-key-for-field-booking",
		},
		Booking: BookingConfig{
			HoldTTL:           5 * time.Minute,
			HoldSweepInterval: time.Minute,
			TxMaxRetries:      3,
			TxRetryBase:       10 * time.Millisecond,
		},
		Kafka: KafkaConfig{
			Topic:          "field-booking.events",
			BatchTimeout:   10 * time.Millisecond,
			OutboxInterval: time.Second,
			OutboxBatch:    100,
			MaxAttempts:    10,
		},
		Migrate: MigrateConfig{
			AtlasBin: "atlas",
			DirURL:   "file://migrations",
		},
	}
}
