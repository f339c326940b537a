package config

import (
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Storage  StorageConfig  `mapstructure:"storage"`
	Database DatabaseConfig `mapstructure:"database"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Auth     AuthConfig     `mapstructure:"auth"`
	Game     GameConfig     `mapstructure:"game"`
	Log      LogConfig      `mapstructure:"log"`
}

type ServerConfig struct {
	Port           string   `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// Storage backend selection
type StorageConfig struct {
	Driver string `mapstructure:"driver"` // "sqlite", "redis" or "memory"
}

type DatabaseConfig struct {
	Path string `mapstructure:"path"`
}

type RedisConfig struct {
	Address  string `mapstructure:"address"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	Prefix   string `mapstructure:"prefix"`
	Timeout  int    `mapstructure:"timeout"` // seconds
}

type AuthConfig struct {
	Enabled       bool   `mapstructure:"enabled"`
	SessionSecret string `mapstructure:"session_secret"`
	PasswordHash  string `mapstructure:"password_hash"` // bcrypt
}

type GameConfig struct {
	CheckInSuccessRate float64 `mapstructure:"checkin_success_rate"`
	NearbyExplorers    int     `mapstructure:"nearby_explorers"`
	Seed               int64   `mapstructure:"seed"` // 0 seeds from the clock
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // "console" or "json"
}

const (
	DriverSQLite = "sqlite"
	DriverRedis  = "redis"
	DriverMemory = "memory"
)

// SetDefaults registers every default on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.allowed_origins", []string{"http://localhost:3000", "http://localhost:8080"})

	v.SetDefault("storage.driver", DriverSQLite)
	v.SetDefault("database.path", "./puravida.db")

	v.SetDefault("redis.address", "localhost:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.prefix", "puravida")
	v.SetDefault("redis.timeout", 2)

	v.SetDefault("auth.enabled", false)
	v.SetDefault("auth.session_secret", "your-secret-key-change-this-in-production")
	v.SetDefault("auth.password_hash", "")

	v.SetDefault("game.checkin_success_rate", 0.8)
	v.SetDefault("game.nearby_explorers", 4)
	v.SetDefault("game.seed", 0)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
}

// Load reads config.yaml from . or ./config, then a config.local.yaml override,
// then PURAVIDA_* environment variables.
func Load() (*Config, error) {
	return LoadWith(viper.GetViper())
}

func LoadWith(v *viper.Viper) (*Config, error) {
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	SetDefaults(v)

	// Allow environment variables
	v.SetEnvPrefix("PURAVIDA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
		// Config file not found, use defaults
	} else {
		// Read local config file for overrides (ignored by git)
		v.SetConfigName("config.local")
		_ = v.MergeInConfig()
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	if config.Game.CheckInSuccessRate < 0 {
		config.Game.CheckInSuccessRate = 0
	}
	if config.Game.CheckInSuccessRate > 1 {
		config.Game.CheckInSuccessRate = 1
	}

	return &config, nil
}
