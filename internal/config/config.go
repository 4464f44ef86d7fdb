package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Kafka    KafkaConfig
	Session  SessionConfig
	Store    StoreConfig
}

type ServerConfig struct {
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type DatabaseConfig struct {
	Host           string
	Port           int
	User           string
	Password       string
	Name           string
	SSLMode        string
	MaxOpenConns   int
	MaxIdleConns   int
	MaxLifetime    time.Duration
	MigrationsPath string
}

func (d DatabaseConfig) ConnectionString() string {
	return "host=" + d.Host +
		" port=" + strconv.Itoa(d.Port) +
		" user=" + d.User +
		" password=" + d.Password +
		" dbname=" + d.Name +
		" sslmode=" + d.SSLMode
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type KafkaConfig struct {
	Brokers     []string
	OrdersTopic string
}

type SessionConfig struct {
	CookieName string
	TTL        time.Duration
}

// StoreConfig carries the shop-specific knobs: the WhatsApp number the
// order deep link points at, the PIX key quoted in the order message
// and the seed dataset location.
type StoreConfig struct {
	WhatsAppNumber string
	PixKey         string
	SeedFile       string
	BaseURL        string
}

func Load() *Config {
	// .env is optional; real environment variables win when absent.
	_ = godotenv.Load()

	return &Config{
		Server: ServerConfig{
			Port:         getEnvInt("SERVER_PORT", 8080),
			ReadTimeout:  time.Duration(getEnvInt("SERVER_READ_TIMEOUT", 30)) * time.Second,
			WriteTimeout: time.Duration(getEnvInt("SERVER_WRITE_TIMEOUT", 30)) * time.Second,
		},
		Database: DatabaseConfig{
			Host:           getEnvString("DB_HOST", "localhost"),
			Port:           getEnvInt("DB_PORT", 5432),
			User:           getEnvString("DB_USER", "adega"),
			Password:       getEnvString("DB_PASSWORD", "adega"),
			Name:           getEnvString("DB_NAME", "adega_storefront"),
			SSLMode:        getEnvString("DB_SSLMODE", "disable"),
			MaxOpenConns:   getEnvInt("DB_MAX_OPEN_CONNS", 10),
			MaxIdleConns:   getEnvInt("DB_MAX_IDLE_CONNS", 5),
			MaxLifetime:    time.Duration(getEnvInt("DB_CONN_MAX_LIFETIME", 300)) * time.Second,
			MigrationsPath: getEnvString("DB_MIGRATIONS_PATH", "migrations"),
		},
		Redis: RedisConfig{
			Host:     getEnvString("REDIS_HOST", "localhost"),
			Port:     getEnvInt("REDIS_PORT", 6379),
			Password: getEnvString("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		Kafka: KafkaConfig{
			Brokers:     splitList(getEnvString("KAFKA_BROKERS", "")),
			OrdersTopic: getEnvString("KAFKA_ORDERS_TOPIC", "adega.pedidos"),
		},
		Session: SessionConfig{
			CookieName: getEnvString("SESSION_COOKIE_NAME", "adega_sessao"),
			TTL:        time.Duration(getEnvInt("SESSION_TTL_HOURS", 168)) * time.Hour,
		},
		Store: StoreConfig{
			WhatsAppNumber: getEnvString("STORE_WHATSAPP_NUMBER", "5511970603441"),
			PixKey:         getEnvString("STORE_PIX_KEY", "radiotatuapefm@gmail.com"),
			SeedFile:       getEnvString("STORE_SEED_FILE", "data/produtos.json"),
			BaseURL:        getEnvString("STORE_BASE_URL", "http://localhost:8080"),
		},
	}
}

func getEnvString(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
