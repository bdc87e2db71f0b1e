package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig
	Mongo     MongoConfig
	Redis     RedisConfig
	Cache     CacheConfig
	Log       LogConfig
	Auth      AuthConfig
	Here      HereConfig
	GeoNames  GeoNamesConfig
	Translate TranslateConfig
	Assets    AssetsConfig
	Scheduler SchedulerConfig
}

type ServerConfig struct {
	Host     string
	Port     int
	Env      string
	Timezone string
}

type MongoConfig struct {
	URI            string
	DBName         string
	ConnectTimeout time.Duration
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type CacheConfig struct {
	ListCacheTTL time.Duration
}

type LogConfig struct {
	Level string
}

type AuthConfig struct {
	JWTSecret string
	TokenTTL  time.Duration
}

type HereConfig struct {
	APIKey         string
	BaseURL        string
	CountryCode    string
	RequestTimeout int
}

type GeoNamesConfig struct {
	Username       string
	BaseURL        string
	Country        string
	RequestTimeout int
}

type TranslateConfig struct {
	APIKey         string
	BaseURL        string
	RequestTimeout int
}

type AssetsConfig struct {
	UploadDir    string
	BaseURL      string
	MaxImageSize int64
}

type SchedulerConfig struct {
	Enabled   bool
	DailySpec string
}

func Load() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := &Config{
		Server: ServerConfig{
			Host:     viper.GetString("API_HOST"),
			Port:     viper.GetInt("API_PORT"),
			Env:      viper.GetString("API_ENV"),
			Timezone: viper.GetString("APP_TIMEZONE"),
		},
		Mongo: MongoConfig{
			URI:            viper.GetString("MONGO_URI"),
			DBName:         viper.GetString("MONGO_DB_NAME"),
			ConnectTimeout: time.Duration(viper.GetInt("MONGO_CONNECT_TIMEOUT")) * time.Second,
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetInt("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		Cache: CacheConfig{
			ListCacheTTL: time.Duration(viper.GetInt("LIST_CACHE_TTL")) * time.Second,
		},
		Log: LogConfig{
			Level: viper.GetString("LOG_LEVEL"),
		},
		Auth: AuthConfig{
			JWTSecret: viper.GetString("JWT_SECRET"),
			TokenTTL:  time.Duration(viper.GetInt("JWT_TOKEN_TTL")) * time.Second,
		},
		Here: HereConfig{
			APIKey:         viper.GetString("HERE_API_KEY"),
			BaseURL:        viper.GetString("HERE_BASE_URL"),
			CountryCode:    viper.GetString("HERE_COUNTRY_CODE"),
			RequestTimeout: viper.GetInt("HERE_REQUEST_TIMEOUT"),
		},
		GeoNames: GeoNamesConfig{
			Username:       viper.GetString("GEONAMES_USERNAME"),
			BaseURL:        viper.GetString("GEONAMES_BASE_URL"),
			Country:        viper.GetString("GEONAMES_COUNTRY"),
			RequestTimeout: viper.GetInt("GEONAMES_REQUEST_TIMEOUT"),
		},
		Translate: TranslateConfig{
			APIKey:         viper.GetString("TRANSLATE_API_KEY"),
			BaseURL:        viper.GetString("TRANSLATE_BASE_URL"),
			RequestTimeout: viper.GetInt("TRANSLATE_REQUEST_TIMEOUT"),
		},
		Assets: AssetsConfig{
			UploadDir:    viper.GetString("UPLOAD_DIR"),
			BaseURL:      viper.GetString("UPLOAD_BASE_URL"),
			MaxImageSize: viper.GetInt64("MAX_FILE_SIZE"),
		},
		Scheduler: SchedulerConfig{
			Enabled:   viper.GetBool("SCHEDULER_ENABLED"),
			DailySpec: viper.GetString("SCHEDULER_DAILY_SPEC"),
		},
	}

	// Set default values if not provided
	if cfg.Server.Timezone == "" {
		cfg.Server.Timezone = "Asia/Jerusalem"
	}
	if cfg.Mongo.ConnectTimeout == 0 {
		cfg.Mongo.ConnectTimeout = 10 * time.Second
	}
	if cfg.Mongo.DBName == "" {
		cfg.Mongo.DBName = "events_directory"
	}
	if cfg.Cache.ListCacheTTL == 0 {
		cfg.Cache.ListCacheTTL = 5 * time.Minute
	}
	if cfg.Auth.TokenTTL == 0 {
		cfg.Auth.TokenTTL = 24 * time.Hour
	}
	if cfg.Here.BaseURL == "" {
		cfg.Here.BaseURL = "https://geocode.search.hereapi.com"
	}
	if cfg.Here.CountryCode == "" {
		cfg.Here.CountryCode = "ISR"
	}
	if cfg.Here.RequestTimeout == 0 {
		cfg.Here.RequestTimeout = 30
	}
	if cfg.GeoNames.BaseURL == "" {
		cfg.GeoNames.BaseURL = "http://api.geonames.org"
	}
	if cfg.GeoNames.Country == "" {
		cfg.GeoNames.Country = "IL"
	}
	if cfg.GeoNames.RequestTimeout == 0 {
		cfg.GeoNames.RequestTimeout = 30
	}
	if cfg.Translate.BaseURL == "" {
		cfg.Translate.BaseURL = "https://translation.googleapis.com"
	}
	if cfg.Translate.RequestTimeout == 0 {
		cfg.Translate.RequestTimeout = 30
	}
	if cfg.Assets.UploadDir == "" {
		cfg.Assets.UploadDir = "./uploads"
	}
	if cfg.Assets.BaseURL == "" {
		cfg.Assets.BaseURL = "/uploads"
	}
	if cfg.Assets.MaxImageSize == 0 {
		cfg.Assets.MaxImageSize = 5 * 1024 * 1024
	}
	if cfg.Scheduler.DailySpec == "" {
		cfg.Scheduler.DailySpec = "0 0 * * *" // midnight local time
	}

	return cfg, nil
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Redis.Host, c.Redis.Port)
}

// Location загружает локальную таймзону афиши
func (c *Config) Location() (*time.Location, error) {
	return time.LoadLocation(c.Server.Timezone)
}
