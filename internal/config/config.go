package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Calendar CalendarConfig
}

type ServerConfig struct {
	Port           int `mapstructure:"port" validate:"required,min=1,max=65535"`
	TimeoutSeconds int `mapstructure:"timeoutSeconds" validate:"min=1"`
	RateLimitRPS   int `mapstructure:"rateLimitRps" validate:"min=1"`
	RateLimitBurst int `mapstructure:"rateLimitBurst" validate:"min=1"`
}

type DatabaseConfig struct {
	Host     string `mapstructure:"host" validate:"required"`
	Port     int    `mapstructure:"port" validate:"required"`
	User     string `mapstructure:"user" validate:"required"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name" validate:"required"`
	SSLMode  string `mapstructure:"sslmode"`
}

// RedisConfig configures the appointment event broker. An empty URL disables
// event publishing.
type RedisConfig struct {
	URL     string `mapstructure:"url"`
	Channel string `mapstructure:"channel"`
}

// CalendarConfig holds the globally configured business-hours range used to
// clip the day grid, and the directory cache TTL.
type CalendarConfig struct {
	DayStartHour    int `mapstructure:"dayStartHour" validate:"min=0,max=23"`
	DayEndHour      int `mapstructure:"dayEndHour" validate:"min=1,max=24,gtfield=DayStartHour"`
	DirectoryTTLSec int `mapstructure:"directoryTtlSeconds" validate:"min=1"`
}

func LoadConfig() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.timeoutSeconds", 30)
	viper.SetDefault("server.rateLimitRps", 100)
	viper.SetDefault("server.rateLimitBurst", 200)
	viper.SetDefault("database.sslmode", "disable")
	viper.SetDefault("redis.channel", "appointments.events")
	viper.SetDefault("calendar.dayStartHour", 0)
	viper.SetDefault("calendar.dayEndHour", 24)
	viper.SetDefault("calendar.directoryTtlSeconds", 60)

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validator.New().Struct(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}
