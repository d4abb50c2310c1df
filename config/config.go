package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Store drivers
const (
	StoreDriverREST     = "rest"
	StoreDriverPostgres = "postgres"
)

type Config struct {
	App    AppConfig
	Store  StoreConfig
	DB     DBConfig
	Redis  RedisConfig
	JWT    JWTConfig
	Clinic ClinicConfig
}

type AppConfig struct {
	Port string
	Env  string
	// AllowedOrigins lists CORS origins; "*" admits any
	AllowedOrigins []string
}

// StoreConfig selects and reaches the remote store
type StoreConfig struct {
	Driver  string
	URL     string
	Key     string
	Timeout time.Duration
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
	SessionExpiry time.Duration
}

type ClinicConfig struct {
	ID int64
}

func setDefaults() {
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	viper.SetDefault("STORE_DRIVER", StoreDriverREST)
	viper.SetDefault("STORE_TIMEOUT", "10s")
	viper.SetDefault("REDIS_HOST", "localhost")
	viper.SetDefault("REDIS_PORT", "6379")
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("SESSION_EXPIRY", "8h")
	viper.SetDefault("CLINIC_ID", 1)
}

// LoadConfig reads .env when present, then the process environment
func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()
	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}

	storeTimeout, err := time.ParseDuration(viper.GetString("STORE_TIMEOUT"))
	if err != nil {
		storeTimeout = 10 * time.Second
	}

	sessionExpiry, err := time.ParseDuration(viper.GetString("SESSION_EXPIRY"))
	if err != nil {
		sessionExpiry = 8 * time.Hour
	}

	config := &Config{
		App: AppConfig{
			Port:           viper.GetString("APP_PORT"),
			Env:            viper.GetString("APP_ENV"),
			AllowedOrigins: splitList(viper.GetString("CORS_ALLOWED_ORIGINS")),
		},
		Store: StoreConfig{
			Driver:  strings.ToLower(viper.GetString("STORE_DRIVER")),
			URL:     viper.GetString("SUPABASE_URL"),
			Key:     viper.GetString("SUPABASE_KEY"),
			Timeout: storeTimeout,
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
			SessionExpiry: sessionExpiry,
		},
		Clinic: ClinicConfig{
			ID: viper.GetInt64("CLINIC_ID"),
		},
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate rejects configurations that cannot reach the remote store
func (c *Config) Validate() error {
	switch c.Store.Driver {
	case StoreDriverREST:
		if c.Store.URL == "" || c.Store.Key == "" {
			return errors.New("store credentials not found, configure SUPABASE_URL and SUPABASE_KEY")
		}
	case StoreDriverPostgres:
		if c.DB.Host == "" || c.DB.Name == "" {
			return errors.New("database not configured, set DB_HOST and DB_NAME")
		}
	default:
		return fmt.Errorf("unknown STORE_DRIVER %q", c.Store.Driver)
	}

	if c.Clinic.ID <= 0 {
		return fmt.Errorf("CLINIC_ID must be positive, got %d", c.Clinic.ID)
	}
	return nil
}

// ValidateServe adds what only the HTTP server needs on top of Validate
func (c *Config) ValidateServe() error {
	if err := c.Validate(); err != nil {
		return err
	}
	if c.JWT.Secret == "" {
		return errors.New("JWT_SECRET is required")
	}
	return nil
}

// IsDevelopment reports whether the service runs in the development environment
func (c *Config) IsDevelopment() bool {
	return c.App.Env == "development"
}

func splitList(value string) []string {
	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
