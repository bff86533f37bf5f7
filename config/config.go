package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	StoreDriverMongo  = "mongo"
	StoreDriverMemory = "memory"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	CORS       CORSConfig

	// Storage
	Store StoreConfig
	Mongo MongoConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port            int
	Mode            string
	BasePath        string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type CORSConfig struct {
	AllowedOrigins []string
}

type StoreConfig struct {
	Driver string
}

type MongoConfig struct {
	URI            string
	Database       string
	Collection     string
	ConnectTimeout time.Duration
	OpTimeout      time.Duration
	ConnectRetries int
	RetryBaseDelay time.Duration
	RetryMaxDelay  time.Duration
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/app/")

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = v.GetString("environment.name")
	cfg.HTTPServer.Port = v.GetInt("http_server.port")
	if port := v.GetInt("port"); port != 0 {
		cfg.HTTPServer.Port = port
	}
	cfg.HTTPServer.Mode = v.GetString("http_server.mode")
	cfg.HTTPServer.BasePath = strings.TrimRight(v.GetString("http_server.base_path"), "/")
	cfg.HTTPServer.ReadTimeout = v.GetDuration("http_server.read_timeout")
	cfg.HTTPServer.WriteTimeout = v.GetDuration("http_server.write_timeout")
	cfg.HTTPServer.ShutdownTimeout = v.GetDuration("http_server.shutdown_timeout")

	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")

	// Split allowed origins since viper might not parse array seamlessly from env
	var origins []string
	for _, o := range v.GetStringSlice("cors.allowed_origins") {
		for _, part := range strings.Split(o, ",") {
			if part = strings.TrimSpace(part); part != "" {
				origins = append(origins, part)
			}
		}
	}
	cfg.CORS.AllowedOrigins = origins

	// Storage
	cfg.Store.Driver = strings.ToLower(v.GetString("store.driver"))
	cfg.Mongo.URI = v.GetString("mongo.uri")
	if uri := v.GetString("mongodb_uri"); uri != "" {
		cfg.Mongo.URI = uri
	}
	cfg.Mongo.Database = v.GetString("mongo.database")
	cfg.Mongo.Collection = v.GetString("mongo.collection")
	cfg.Mongo.ConnectTimeout = v.GetDuration("mongo.connect_timeout")
	cfg.Mongo.OpTimeout = v.GetDuration("mongo.op_timeout")
	cfg.Mongo.ConnectRetries = v.GetInt("mongo.connect_retries")
	cfg.Mongo.RetryBaseDelay = v.GetDuration("mongo.retry_base_delay")
	cfg.Mongo.RetryMaxDelay = v.GetDuration("mongo.retry_max_delay")

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (cfg *Config) validate() error {
	if cfg.HTTPServer.Port <= 0 {
		return fmt.Errorf("http_server.port must be positive, got %d", cfg.HTTPServer.Port)
	}
	switch cfg.Store.Driver {
	case StoreDriverMemory:
	case StoreDriverMongo:
		if cfg.Mongo.URI == "" {
			return fmt.Errorf("mongo.uri (or MONGODB_URI) is required when store.driver is %q", StoreDriverMongo)
		}
		if cfg.Mongo.Database == "" {
			return fmt.Errorf("mongo.database is required")
		}
	default:
		return fmt.Errorf("unknown store.driver %q", cfg.Store.Driver)
	}
	if cfg.Mongo.ConnectRetries < 0 {
		return fmt.Errorf("mongo.connect_retries must not be negative")
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment.name", "development")
	v.SetDefault("http_server.port", 5000)
	v.SetDefault("http_server.mode", "debug")
	v.SetDefault("http_server.base_path", "")
	v.SetDefault("http_server.read_timeout", "15s")
	v.SetDefault("http_server.write_timeout", "15s")
	v.SetDefault("http_server.shutdown_timeout", "10s")
	v.SetDefault("logger.level", "debug")
	v.SetDefault("logger.mode", "debug")
	v.SetDefault("logger.encoding", "console")
	v.SetDefault("logger.color_enabled", true)
	v.SetDefault("cors.allowed_origins", []string{})

	v.SetDefault("store.driver", StoreDriverMongo)
	v.SetDefault("mongo.database", "inventory")
	v.SetDefault("mongo.collection", "items")
	v.SetDefault("mongo.connect_timeout", "10s")
	v.SetDefault("mongo.op_timeout", "5s")
	v.SetDefault("mongo.connect_retries", 5)
	v.SetDefault("mongo.retry_base_delay", "500ms")
	v.SetDefault("mongo.retry_max_delay", "10s")
}
