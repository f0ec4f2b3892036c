// Initializing common application configuration
package config

import (
	"log"
	"os"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Redis    RedisConfig    `mapstructure:"redis"`
	RabbitMQ RabbitMQConfig `mapstructure:"rabbitmq"`
	VAPID    VAPIDConfig    `mapstructure:"vapid"`
	Push     PushConfig     `mapstructure:"push"`
	Media    MediaConfig    `mapstructure:"media"`
	Auth     AuthConfig     `mapstructure:"auth"`
	Seed     SeedConfig     `mapstructure:"seed"`
	App      AppConfig      `mapstructure:"app"`
}

type ServerConfig struct {
	AppVersion  string        `mapstructure:"appVersion"`
	Host        string        `mapstructure:"host"`
	Port        string        `mapstructure:"port"`
	Timeout     time.Duration `mapstructure:"timeout"`
	IdleTimeout time.Duration `mapstructure:"idle_timeout"`
	Env         string        `mapstructure:"environment"`
	Mode        string        `mapstructure:"mode"`
}

type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

type RedisConfig struct {
	Addr     string        `mapstructure:"addr"`
	Password string        `mapstructure:"password"`
	DB       int           `mapstructure:"db"`
	CacheTTL time.Duration `mapstructure:"cache_ttl"`
}

type RabbitMQConfig struct {
	URL       string `mapstructure:"url"`
	QueueName string `mapstructure:"queue_name"`
	Enabled   bool   `mapstructure:"enabled"`
}

// VAPIDConfig carries the web push transport credentials. Empty keys leave
// push delivery disabled, every send then fails as a transient error.
type VAPIDConfig struct {
	PublicKey  string `mapstructure:"public_key"`
	PrivateKey string `mapstructure:"private_key"`
	Subscriber string `mapstructure:"subscriber"`
}

type PushConfig struct {
	TTL             int           `mapstructure:"ttl"`
	DeliveryTimeout time.Duration `mapstructure:"delivery_timeout"`
	DefaultIcon     string        `mapstructure:"default_icon"`
	DefaultBadge    string        `mapstructure:"default_badge"`
}

type MediaConfig struct {
	StoragePath string `mapstructure:"storage_path"`
	MaxWidth    int    `mapstructure:"max_width"`
	Quality     int    `mapstructure:"quality"`
	BaseURL     string `mapstructure:"base_url"`
}

type AuthConfig struct {
	JWTSecret string `mapstructure:"jwt_secret"`
}

type SeedConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

type AppConfig struct {
	BaseURL string `mapstructure:"base_url"`
}

func LoadConfig() (*viper.Viper, error) {

	viperInstance := viper.New()

	viperInstance.AddConfigPath("./config")
	viperInstance.SetConfigName("config")
	viperInstance.SetConfigType("yaml")

	err := viperInstance.ReadInConfig()

	if err != nil {
		return nil, err
	}
	return viperInstance, nil
}

func ParseConfig(v *viper.Viper) (*Config, error) {

	var c Config

	err := v.Unmarshal(&c)
	if err != nil {
		log.Fatalf("unable to decode config into struct, %v", err)
		return nil, err
	}

	// Credentials come from the environment, never from the yaml file.
	c.VAPID.PublicKey = GetEnv("VAPID_PUBLIC_KEY", c.VAPID.PublicKey)
	c.VAPID.PrivateKey = GetEnv("VAPID_PRIVATE_KEY", c.VAPID.PrivateKey)
	c.VAPID.Subscriber = GetEnv("VAPID_SUBSCRIBER", c.VAPID.Subscriber)
	c.Auth.JWTSecret = GetEnv("JWT_SECRET", c.Auth.JWTSecret)
	c.Database.Password = GetEnv("DB_PASSWORD", c.Database.Password)

	return &c, nil
}

func GetEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
