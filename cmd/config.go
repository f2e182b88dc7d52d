package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	BrokerNone     = "none"
	BrokerKafka    = "kafka"
	BrokerRabbitMQ = "rabbitmq"
)

type Config struct {
	HTTPPort string `yaml:"http_port"`

	DBHost     string `yaml:"db_host"`
	DBPort     string `yaml:"db_port"`
	DBUser     string `yaml:"db_user"`
	DBPassword string `yaml:"db_password"`
	DBName     string `yaml:"db_name"`
	DBSslMode  string `yaml:"db_sslmode"`

	MongoURI      string `yaml:"mongo_uri"`
	MongoDatabase string `yaml:"mongo_database"`

	// RedisAddr is optional. Without it location reads go straight to Mongo.
	RedisAddr string        `yaml:"redis_addr"`
	RedisTTL  time.Duration `yaml:"redis_ttl"`

	EventBroker            string `yaml:"event_broker"`
	KafkaHost              string `yaml:"kafka_host"`
	KafkaOrderChangedTopic string `yaml:"kafka_order_changed_topic"`
	RabbitMQURL            string `yaml:"rabbitmq_url"`
	RabbitMQExchange       string `yaml:"rabbitmq_exchange"`

	LocationWriteTimeout time.Duration `yaml:"location_write_timeout"`
	AuditSchedule        string        `yaml:"audit_schedule"`
	LogLevel             string        `yaml:"log_level"`
}

func defaultConfig() Config {
	return Config{
		HTTPPort:               "8080",
		DBSslMode:              "disable",
		MongoDatabase:          "fooddelivery",
		RedisTTL:               5 * time.Minute,
		EventBroker:            BrokerNone,
		KafkaOrderChangedTopic: "order.status_changed",
		RabbitMQExchange:       "fooddelivery.orders",
		LocationWriteTimeout:   5 * time.Second,
		AuditSchedule:          "0 */5 * * * *",
		LogLevel:               "info",
	}
}

// LoadConfig starts from defaults, applies the YAML file named by CONFIG_FILE (if any)
// and then the environment. A .env file in the working directory is loaded first
// when present.
func LoadConfig() (Config, error) {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	cfg := defaultConfig()
	if path := os.Getenv("CONFIG_FILE"); path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
		if err = yaml.Unmarshal(raw, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config file %s: %w", path, err)
		}
	}

	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return Config{}, err
	}
	return cfg, cfg.Validate()
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	strs := map[string]*string{
		"HTTP_PORT":                 &c.HTTPPort,
		"DB_HOST":                   &c.DBHost,
		"DB_PORT":                   &c.DBPort,
		"DB_USER":                   &c.DBUser,
		"DB_PASSWORD":               &c.DBPassword,
		"DB_NAME":                   &c.DBName,
		"DB_SSLMODE":                &c.DBSslMode,
		"MONGO_URI":                 &c.MongoURI,
		"MONGO_DATABASE":            &c.MongoDatabase,
		"REDIS_ADDR":                &c.RedisAddr,
		"EVENT_BROKER":              &c.EventBroker,
		"KAFKA_HOST":                &c.KafkaHost,
		"KAFKA_ORDER_CHANGED_TOPIC": &c.KafkaOrderChangedTopic,
		"RABBITMQ_URL":              &c.RabbitMQURL,
		"RABBITMQ_EXCHANGE":         &c.RabbitMQExchange,
		"AUDIT_SCHEDULE":            &c.AuditSchedule,
		"LOG_LEVEL":                 &c.LogLevel,
	}
	for key, dst := range strs {
		if v, ok := lookup(key); ok {
			*dst = v
		}
	}

	durations := map[string]*time.Duration{
		"REDIS_TTL":              &c.RedisTTL,
		"LOCATION_WRITE_TIMEOUT": &c.LocationWriteTimeout,
	}
	for key, dst := range durations {
		v, ok := lookup(key)
		if !ok {
			continue
		}
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
		*dst = d
	}
	return nil
}

func (c Config) Validate() error {
	var problems []error
	if c.DBHost == "" || c.DBName == "" || c.DBUser == "" {
		problems = append(problems, errors.New("DB_HOST, DB_NAME and DB_USER are required"))
	}
	if c.MongoURI == "" {
		problems = append(problems, errors.New("MONGO_URI is required"))
	}
	switch c.EventBroker {
	case BrokerNone:
	case BrokerKafka:
		if c.KafkaHost == "" {
			problems = append(problems, errors.New("KAFKA_HOST is required for the kafka broker"))
		}
	case BrokerRabbitMQ:
		if c.RabbitMQURL == "" {
			problems = append(problems, errors.New("RABBITMQ_URL is required for the rabbitmq broker"))
		}
	default:
		problems = append(problems, fmt.Errorf("unknown EVENT_BROKER %q", c.EventBroker))
	}
	if c.LocationWriteTimeout <= 0 {
		problems = append(problems, errors.New("LOCATION_WRITE_TIMEOUT must be positive"))
	}
	return errors.Join(problems...)
}

// DSN is the PostgreSQL connection string.
func (c Config) DSN() string {
	port := c.DBPort
	if port == "" {
		port = "5432"
	}
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, port, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

// KafkaBrokers splits KAFKA_HOST on commas.
func (c Config) KafkaBrokers() []string {
	var brokers []string
	for _, b := range strings.Split(c.KafkaHost, ",") {
		if b = strings.TrimSpace(b); b != "" {
			brokers = append(brokers, b)
		}
	}
	return brokers
}
