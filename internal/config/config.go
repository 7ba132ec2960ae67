package config

import (
	"fmt"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig      `mapstructure:"app"`
	Database DatabaseConfig `mapstructure:"database"`
	Services ServicesConfig `mapstructure:"services"`
}

type AppConfig struct {
	Listen   string `mapstructure:"listen"`
	Name     string `mapstructure:"name"`
	LogLevel string `mapstructure:"log_level"`
}

type DatabaseConfig struct {
	Driver string `mapstructure:"driver"` // "sqlite" | "mysql"
	DSN    string `mapstructure:"dsn"`
}

// ServicesConfig holds the base URLs of the downstream services the
// platform provisions against.
type ServicesConfig struct {
	FixAIURL           string `mapstructure:"fixai_url"`
	MetricsExplorerURL string `mapstructure:"metrics_explorer_url"`
	LogsExplorerURL    string `mapstructure:"logs_explorer_url"`
	CodeParserURL      string `mapstructure:"code_parser_url"`
}

var (
	GlobalConfig *Config
	once         sync.Once
)

// InitConfig loads deploy/conf.yaml, then the env-specific overlay, then
// environment variables (APP_ prefix, dots replaced by underscores).
func InitConfig(env string) *Config {
	once.Do(func() {
		v := viper.New()
		v.AddConfigPath("./deploy")
		v.SetConfigType("yaml")

		v.SetDefault("app.listen", ":8200")
		v.SetDefault("app.name", "codecircle-platform")
		v.SetDefault("app.log_level", "info")
		v.SetDefault("database.driver", "sqlite")
		v.SetDefault("database.dsn", "codecircle.db")
		v.SetDefault("services.fixai_url", "http://localhost:8100")
		v.SetDefault("services.metrics_explorer_url", "http://localhost:8001")
		v.SetDefault("services.logs_explorer_url", "http://localhost:8003")
		v.SetDefault("services.code_parser_url", "http://localhost:8000")

		v.SetConfigName("conf")
		if err := v.ReadInConfig(); err != nil {
			fmt.Printf("Warning: base conf.yaml not found: %v\n", err)
		}

		if env != "" {
			v.SetConfigName("conf." + env)
			if err := v.MergeInConfig(); err != nil {
				if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
					fmt.Printf("merge config failed: %v\n", err)
				}
			}
		}

		v.SetEnvPrefix("APP")
		v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
		v.AutomaticEnv()

		if err := v.Unmarshal(&GlobalConfig); err != nil {
			fmt.Printf("unmarshal config failed: %v\n", err)
		}
	})
	return GlobalConfig
}
