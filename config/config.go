package config

import (
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	Storage  StorageConfig
	DB       DBConfig
	Redis    RedisConfig
	JWT      JWTConfig
	Analyzer AnalyzerConfig
}

type AppConfig struct {
	Port string
	Env  string
}

// StorageConfig selects the persistence backend for the directory
// collections. Driver is one of: memory, file, redis, postgres.
type StorageConfig struct {
	Driver string
	Path   string
}

type DBConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type JWTConfig struct {
	Secret        string
	AccessExpiry  time.Duration
	RefreshExpiry time.Duration
}

// AnalyzerConfig holds the connection settings for the hosted multimodal
// model that interprets uploaded report images.
type AnalyzerConfig struct {
	APIKey  string
	Model   string
	BaseURL string
	Timeout time.Duration
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	accessExpiry, err := time.ParseDuration(viper.GetString("JWT_ACCESS_EXPIRY"))
	if err != nil {
		accessExpiry = 15 * time.Minute
	}

	refreshExpiry, err := time.ParseDuration(viper.GetString("JWT_REFRESH_EXPIRY"))
	if err != nil {
		refreshExpiry = 7 * 24 * time.Hour
	}

	analyzerTimeout, err := time.ParseDuration(viper.GetString("ANALYZER_TIMEOUT"))
	if err != nil {
		analyzerTimeout = 90 * time.Second
	}

	storageDriver := viper.GetString("STORAGE_DRIVER")
	if storageDriver == "" {
		storageDriver = "file"
	}

	storagePath := viper.GetString("STORAGE_PATH")
	if storagePath == "" {
		storagePath = "data"
	}

	analyzerModel := viper.GetString("ANALYZER_MODEL")
	if analyzerModel == "" {
		analyzerModel = "gemini-2.5-flash"
	}

	analyzerBaseURL := viper.GetString("ANALYZER_BASE_URL")
	if analyzerBaseURL == "" {
		analyzerBaseURL = "https://generativelanguage.googleapis.com/v1beta"
	}

	config := &Config{
		App: AppConfig{
			Port: viper.GetString("APP_PORT"),
			Env:  viper.GetString("APP_ENV"),
		},
		Storage: StorageConfig{
			Driver: storageDriver,
			Path:   storagePath,
		},
		DB: DBConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASSWORD"),
			Name:     viper.GetString("DB_NAME"),
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetString("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		JWT: JWTConfig{
			Secret:        viper.GetString("JWT_SECRET"),
			AccessExpiry:  accessExpiry,
			RefreshExpiry: refreshExpiry,
		},
		Analyzer: AnalyzerConfig{
			APIKey:  viper.GetString("ANALYZER_API_KEY"),
			Model:   analyzerModel,
			BaseURL: analyzerBaseURL,
			Timeout: analyzerTimeout,
		},
	}

	return config, nil
}
