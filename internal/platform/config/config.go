package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// Config はアプリケーション全体の設定を表現します。YAML ファイルの値を
// 環境変数で上書きできます。
type Config struct {
	Logging LoggingConfig `yaml:"logging"`
	Seed    SeedConfig    `yaml:"seed"`
}

// LoggingConfig はログ出力に関する設定です。
type LoggingConfig struct {
	Mode string `yaml:"mode" env:"CRM_LOG_MODE"`
	File string `yaml:"file" env:"CRM_LOG_FILE"`
}

// SeedConfig はデモデータ投入に関する設定です。
type SeedConfig struct {
	Demo bool `yaml:"demo" env:"CRM_SEED_DEMO"`
}

// Default は既定の設定を返します。
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{Mode: "dev"},
		Seed:    SeedConfig{Demo: true},
	}
}

// Load は指定されたパスから設定ファイルを読み込み、環境変数を適用します。
// ファイルが存在しない場合は既定値から始めます。
func Load(path string) (*Config, error) {
	cfg := Default()

	b, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(b, cfg); err != nil {
			return nil, fmt.Errorf("config: parse yaml: %w", err)
		}
	case errors.Is(err, os.ErrNotExist):
		// 設定ファイルは任意。既定値と環境変数だけで動作します。
	default:
		return nil, fmt.Errorf("config: read file %s: %w", path, err)
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: parse env: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Logging.Mode {
	case "dev", "prod":
		return nil
	default:
		return fmt.Errorf("config: logging.mode must be dev or prod, got %q", c.Logging.Mode)
	}
}
