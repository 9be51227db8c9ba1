package config

import (
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App       AppConfig
	Mongo     MongoConfig
	Redis     RedisConfig
	Gemini    GeminiConfig
	Dashboard DashboardConfig
}

type AppConfig struct {
	Port string
	Env  string
}

type MongoConfig struct {
	URI    string
	DBName string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type GeminiConfig struct {
	APIKey     string
	Model      string
	Timeout    time.Duration
	MaxRetries int
}

type DashboardConfig struct {
	CacheTTL time.Duration
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	geminiTimeout, err := time.ParseDuration(viper.GetString("GEMINI_TIMEOUT"))
	if err != nil {
		geminiTimeout = 30 * time.Second
	}

	maxRetries := viper.GetInt("GEMINI_MAX_RETRIES")
	if maxRetries <= 0 {
		maxRetries = 3
	}

	cacheTTL, err := time.ParseDuration(viper.GetString("DASHBOARD_CACHE_TTL"))
	if err != nil {
		cacheTTL = 1 * time.Minute
	}

	config := &Config{
		App: AppConfig{
			Port: viper.GetString("APP_PORT"),
			Env:  viper.GetString("APP_ENV"),
		},
		Mongo: MongoConfig{
			URI:    viper.GetString("MONGO_URI"),
			DBName: viper.GetString("MONGO_DB_NAME"),
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetString("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		Gemini: GeminiConfig{
			APIKey:     viper.GetString("GEMINI_API_KEY"),
			Model:      viper.GetString("GEMINI_MODEL"),
			Timeout:    geminiTimeout,
			MaxRetries: maxRetries,
		},
		Dashboard: DashboardConfig{
			CacheTTL: cacheTTL,
		},
	}

	return config, nil
}
