package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

const (
	defaultTimeout  = 30
	defaultAddress  = ":9090"
	defaultCacheDB  = 0
	defaultDBPort   = "3306"
	defaultLocation = "UTC"
)

type Config struct {
	ServerAddress  string        `validate:"required"`
	ContextTimeout time.Duration `validate:"gt=0"`

	DBHost        string `validate:"required"`
	DBPort        string `validate:"required,numeric"`
	DBUser        string `validate:"required"`
	DBPass        string
	DBName        string `validate:"required"`
	DBLocation    string `validate:"required"`
	DBAutoMigrate bool

	CacheHost string `validate:"required"`
	CachePort string `validate:"required,numeric"`
	CachePass string
	CacheDB   int `validate:"gte=0,lte=15"`

	JWTSecret string `validate:"required,min=16"`

	LogLevel  string `validate:"omitempty,oneof=trace debug info warn warning error fatal panic"`
	LogFormat string `validate:"omitempty,oneof=text json"`
}

// Load reads the optional .env file, then the environment.
func Load(files ...string) (Config, error) {
	if err := godotenv.Load(files...); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load env file: %w", err)
		}
		logrus.Info("no .env file found, reading configuration from the environment")
	}
	return FromEnv()
}

// FromEnv builds the configuration from environment variables only.
func FromEnv() (Config, error) {
	cfg := Config{
		ServerAddress:  getenv("SERVER_ADDRESS", defaultAddress),
		ContextTimeout: time.Duration(atoi("CONTEXT_TIMEOUT", defaultTimeout)) * time.Second,

		DBHost:        os.Getenv("DATABASE_HOST"),
		DBPort:        getenv("DATABASE_PORT", defaultDBPort),
		DBUser:        os.Getenv("DATABASE_USER"),
		DBPass:        os.Getenv("DATABASE_PASS"),
		DBName:        os.Getenv("DATABASE_NAME"),
		DBLocation:    getenv("DATABASE_LOCATION", defaultLocation),
		DBAutoMigrate: os.Getenv("DATABASE_AUTO_MIGRATE") == "true",

		CacheHost: os.Getenv("CACHE_HOST"),
		CachePort: getenv("CACHE_PORT", "6379"),
		CachePass: os.Getenv("CACHE_PASS"),
		CacheDB:   atoi("CACHE_DB", defaultCacheDB),

		JWTSecret: os.Getenv("JWT_SECRET"),

		LogLevel:  os.Getenv("LOG_LEVEL"),
		LogFormat: os.Getenv("LOG_FORMAT"),
	}

	if err := validator.New().Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// DSN is the go-sql-driver/mysql connection string.
func (c Config) DSN() string {
	connection := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s", c.DBUser, c.DBPass, c.DBHost, c.DBPort, c.DBName)
	val := url.Values{}
	val.Add("parseTime", "1")
	val.Add("loc", c.DBLocation)
	return fmt.Sprintf("%s?%s", connection, val.Encode())
}

func (c Config) CacheAddr() string {
	return c.CacheHost + ":" + c.CachePort
}

// SetupLogger applies LOG_LEVEL and LOG_FORMAT to the standard logrus logger.
func (c Config) SetupLogger() {
	if c.LogFormat == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}
	if c.LogLevel == "" {
		return
	}
	lvl, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		logrus.Warnf("unknown log level %q, keeping %s", c.LogLevel, logrus.GetLevel())
		return
	}
	logrus.SetLevel(lvl)
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func atoi(key string, def int) int {
	s := os.Getenv(key)
	if s == "" {
		return def
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		logrus.Warnf("failed to parse %s, using default %d", key, def)
		return def
	}
	return v
}
