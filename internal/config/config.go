package config

import (
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/shopspring/decimal"
)

type Config struct {
	HTTPPort string `envconfig:"APP_PORT" default:"8080"`
	Log      LogConfig
	Notice   NoticeConfig
	Events   EventsConfig
	Journal  JournalConfig
	Kafka    KafkaConfig
}

type LogConfig struct {
	File  string `envconfig:"LOG_FILE" default:"treasury.log"`
	Level string `envconfig:"LOG_LEVEL" default:"info"`
}

type NoticeConfig struct {
	TTL time.Duration `envconfig:"NOTICE_TTL" default:"3s"`
}

type EventsConfig struct {
	Workers                int             `envconfig:"EVENTS_WORKERS" default:"5"`
	QueueSize              int             `envconfig:"EVENTS_QUEUE_SIZE" default:"100"`
	LargeTransferThreshold decimal.Decimal `envconfig:"LARGE_TRANSFER_THRESHOLD" default:"30000"`
}

type JournalConfig struct {
	Enabled bool `envconfig:"JOURNAL_ENABLED" default:"false"`
	DB      DBConfig
}

type DBConfig struct {
	Host     string `envconfig:"POSTGRES_HOST"     default:"localhost"`
	Port     string `envconfig:"POSTGRES_PORT"     default:"5432"`
	User     string `envconfig:"POSTGRES_USER"     default:"postgres"`
	Password string `envconfig:"POSTGRES_PASSWORD" default:"postgres"`
	DBName   string `envconfig:"POSTGRES_DB"       default:"treasury"`
	SSLMode  string `envconfig:"POSTGRES_SSLMODE"  default:"disable"`
}

type KafkaConfig struct {
	Brokers []string `envconfig:"KAFKA_BROKERS" default:"localhost:9092"`
	Topic   string   `envconfig:"KAFKA_TOPIC" default:"treasury-large-transfers"`
	Enabled bool     `envconfig:"KAFKA_ENABLED" default:"false"`
}

func NewConfig() (*Config, error) {
	envFile := "config.env"

	if err := godotenv.Load(envFile); err != nil {
		log.Printf("warning: не удалось загрузить файл %s, используются только системные переменные окружения: %v", envFile, err)
	}

	return Load()
}

// Load читает конфигурацию только из переменных окружения
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("ошибка парсинга конфигурации: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("ошибка проверки конфигурации: %w", err)
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Notice.TTL <= 0 {
		return fmt.Errorf("NOTICE_TTL must be positive, got %s", c.Notice.TTL)
	}
	if c.Events.Workers <= 0 {
		return fmt.Errorf("EVENTS_WORKERS must be positive, got %d", c.Events.Workers)
	}
	if c.Events.QueueSize < 0 {
		return fmt.Errorf("EVENTS_QUEUE_SIZE must not be negative, got %d", c.Events.QueueSize)
	}
	if !c.Events.LargeTransferThreshold.IsPositive() {
		return fmt.Errorf("LARGE_TRANSFER_THRESHOLD must be positive, got %s", c.Events.LargeTransferThreshold)
	}
	if c.Kafka.Enabled && len(c.Kafka.Brokers) == 0 {
		return fmt.Errorf("KAFKA_BROKERS is required when KAFKA_ENABLED=true")
	}
	return nil
}

func (d *DBConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode,
	)
}

func (d *DBConfig) MigrationURL() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}
