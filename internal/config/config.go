package config

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig
	Store     StoreConfig
	Tracing   TracingConfig   `mapstructure:"tracing"`
	CORS      CORSConfig      `mapstructure:"cors"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`

	// 运行时标志（非配置文件，通过命令行参数设置）
	BootstrapOnly bool `mapstructure:"-"` // 仅初始化内容模式（初始化后退出）
	ForceReseed   bool `mapstructure:"-"` // 强制重建内容（清空所有进度）
}

type ServerConfig struct {
	Port string
	Mode string
}

// StoreConfig 文档存储配置。URI 与 Database 的具体值不写入日志。
type StoreConfig struct {
	Type     string        `mapstructure:"type"` // mongo | memory
	URI      string        `mapstructure:"uri"`
	Database string        `mapstructure:"database"`
	Timeout  time.Duration `mapstructure:"timeout_seconds"`
}

type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type RateLimitConfig struct {
	MaxRequests   int `mapstructure:"max_requests"`
	WindowMinutes int `mapstructure:"window_minutes"`
}

type TracingConfig struct {
	Enabled           bool   `mapstructure:"enabled"`
	CollectorEndpoint string `mapstructure:"collector_endpoint"`
}

func LoadConfig(path string) (*Config, error) {
	// .env 可选，便于本地开发；缺失时直接用系统环境变量
	_ = godotenv.Load()

	viper.AddConfigPath(path)
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	viper.SetEnvPrefix("STORY_GAME")
	viper.AutomaticEnv()

	// Store
	viper.BindEnv("store.type", "STORE_TYPE")
	viper.BindEnv("store.uri", "DATABASE_URL")
	viper.BindEnv("store.database", "DATABASE_NAME")

	// Server
	viper.BindEnv("server.port", "PORT")
	viper.BindEnv("server.mode", "SERVER_MODE")

	// Tracing
	viper.BindEnv("tracing.enabled", "TRACING_ENABLED")
	viper.BindEnv("tracing.collector_endpoint", "TRACING_COLLECTOR_ENDPOINT")

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if cfg.Server.Port == "" {
		cfg.Server.Port = "8000"
	}
	if cfg.Store.Type == "" {
		cfg.Store.Type = "mongo"
	}
	if cfg.Store.Timeout <= 0 {
		cfg.Store.Timeout = 10
	}
	cfg.Store.Timeout = cfg.Store.Timeout * time.Second

	return &cfg, nil
}
