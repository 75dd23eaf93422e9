package config

import (
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Project struct {
		Root string `yaml:"root"`
	} `yaml:"project"`
	Vocabulary struct {
		Path string `yaml:"path"` // optional override table, built-in TornadoFX otherwise
	} `yaml:"vocabulary"`
	Output struct {
		Dir string `yaml:"dir"`
	} `yaml:"output"`
}

func LoadConfig(path string) (*Config, error) {
	// 1. Load .env if exists
	_ = godotenv.Load()

	// 2. Load YAML config
	file, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(file, &cfg); err != nil {
		return nil, err
	}

	// 3. Override with Environment Variables if present
	if root := os.Getenv("TFX_PROJECT_ROOT"); root != "" {
		cfg.Project.Root = root
	}
	if dir := os.Getenv("TFX_OUTPUT_DIR"); dir != "" {
		cfg.Output.Dir = dir
	}

	applyDefaults(&cfg)
	return &cfg, nil
}

// DefaultConfig is used when no config file is present.
func DefaultConfig() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

func applyDefaults(cfg *Config) {
	if cfg.Project.Root == "" {
		cfg.Project.Root = "."
	}
	if cfg.Output.Dir == "" {
		cfg.Output.Dir = "generated-tests"
	}
}
