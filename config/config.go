package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

/* Config is a helper package. Could be an external lib */

type Config struct {
	Port          string `mapstructure:"PORT"`
	DatabaseURL   string `mapstructure:"DATABASE_URL"`
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisDB       int    `mapstructure:"REDIS_DB"`
	CronSecret    string `mapstructure:"CRON_SECRET"`

	QueueBatchSize            int `mapstructure:"QUEUE_BATCH_SIZE"`
	WorkerPollIntervalSeconds int `mapstructure:"WORKER_POLL_INTERVAL_SECONDS"`
	ConfigCacheTTLSeconds     int `mapstructure:"CONFIG_CACHE_TTL_SECONDS"`
}

func GetConfig() (*Config, error) {
	// Defaults double as the key registry: AutomaticEnv only resolves keys
	// viper already knows about
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DATABASE_URL", "")
	viper.SetDefault("REDIS_ADDR", "")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("CRON_SECRET", "dev-secret")
	viper.SetDefault("QUEUE_BATCH_SIZE", 10)
	viper.SetDefault("WORKER_POLL_INTERVAL_SECONDS", 30)
	viper.SetDefault("CONFIG_CACHE_TTL_SECONDS", 60)

	viper.SetConfigName(".env")
	viper.SetConfigType("toml")
	viper.AddConfigPath(".")
	viper.AutomaticEnv()
	if err := viper.ReadInConfig(); err != nil {
		// The env file is optional; environment variables alone are enough
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}
	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("parsing config data: %w", err)
	}
	return &config, nil
}
