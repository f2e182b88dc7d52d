package cmd

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func envLookup(values map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := values[key]
		return v, ok
	}
}

func validConfig() Config {
	cfg := defaultConfig()
	cfg.DBHost = "localhost"
	cfg.DBName = "delivery"
	cfg.DBUser = "delivery"
	cfg.MongoURI = "mongodb://localhost:27017"
	return cfg
}

func TestConfig_applyEnv(t *testing.T) {
	t.Run("should override defaults with environment values", func(t *testing.T) {
		// Given
		cfg := defaultConfig()

		// When
		err := cfg.applyEnv(envLookup(map[string]string{
			"HTTP_PORT":              "9090",
			"EVENT_BROKER":           BrokerKafka,
			"KAFKA_HOST":             "kafka:9092",
			"REDIS_TTL":              "30s",
			"LOCATION_WRITE_TIMEOUT": "2s",
		}))

		// Then
		require.NoError(t, err)
		assert.Equal(t, "9090", cfg.HTTPPort)
		assert.Equal(t, BrokerKafka, cfg.EventBroker)
		assert.Equal(t, "kafka:9092", cfg.KafkaHost)
		assert.Equal(t, 30*time.Second, cfg.RedisTTL)
		assert.Equal(t, 2*time.Second, cfg.LocationWriteTimeout)
		assert.Equal(t, "disable", cfg.DBSslMode)
	})

	t.Run("should reject malformed durations", func(t *testing.T) {
		cfg := defaultConfig()

		err := cfg.applyEnv(envLookup(map[string]string{"REDIS_TTL": "five minutes"}))

		require.ErrorContains(t, err, "REDIS_TTL")
	})
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "should accept a complete configuration", mutate: func(*Config) {}},
		{
			name:    "should require the database",
			mutate:  func(c *Config) { c.DBHost = "" },
			wantErr: "DB_HOST",
		},
		{
			name:    "should require mongo",
			mutate:  func(c *Config) { c.MongoURI = "" },
			wantErr: "MONGO_URI",
		},
		{
			name:    "should require kafka host for the kafka broker",
			mutate:  func(c *Config) { c.EventBroker = BrokerKafka },
			wantErr: "KAFKA_HOST",
		},
		{
			name:    "should require rabbitmq url for the rabbitmq broker",
			mutate:  func(c *Config) { c.EventBroker = BrokerRabbitMQ },
			wantErr: "RABBITMQ_URL",
		},
		{
			name:    "should reject unknown brokers",
			mutate:  func(c *Config) { c.EventBroker = "nats" },
			wantErr: "unknown EVENT_BROKER",
		},
		{
			name:    "should reject a non-positive location write timeout",
			mutate:  func(c *Config) { c.LocationWriteTimeout = 0 },
			wantErr: "LOCATION_WRITE_TIMEOUT",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()

			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestConfig_DSN(t *testing.T) {
	cfg := validConfig()
	cfg.DBPassword = "secret"

	assert.Equal(t, "host=localhost port=5432 user=delivery password=secret dbname=delivery sslmode=disable", cfg.DSN())
}

func TestConfig_KafkaBrokers(t *testing.T) {
	cfg := Config{KafkaHost: "kafka-1:9092, kafka-2:9092,,"}

	assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, cfg.KafkaBrokers())
	assert.Empty(t, Config{}.KafkaBrokers())
}

func TestLoadConfig(t *testing.T) {
	t.Run("should read the yaml file and let the environment win", func(t *testing.T) {
		// Given
		t.Chdir(t.TempDir())
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte(`
db_host: db
db_user: delivery
db_name: delivery
mongo_uri: mongodb://mongo:27017
redis_ttl: 1m
http_port: "7000"
`), 0o600))
		t.Setenv("CONFIG_FILE", path)
		t.Setenv("HTTP_PORT", "7001")

		// When
		cfg, err := LoadConfig()

		// Then
		require.NoError(t, err)
		assert.Equal(t, "db", cfg.DBHost)
		assert.Equal(t, time.Minute, cfg.RedisTTL)
		assert.Equal(t, "7001", cfg.HTTPPort)
	})
}
