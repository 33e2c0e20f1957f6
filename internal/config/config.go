package config

import (
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Redis     RedisConfig     `yaml:"redis"`
	Postgres  PostgresConfig  `yaml:"postgres"`
	Quiz      QuizConfig      `yaml:"quiz"`
	Adventure AdventureConfig `yaml:"adventure"`
}

type ServerConfig struct {
	Port    string `yaml:"port" env:"ARCADE_PORT"`
	MCPPath string `yaml:"mcp_path" env:"ARCADE_MCP_PATH"`
}

// RedisConfig is optional; an empty Addr keeps caches in process memory.
type RedisConfig struct {
	Addr     string `yaml:"addr" env:"ARCADE_REDIS_ADDR"`
	Password string `yaml:"password" env:"ARCADE_REDIS_PASSWORD"`
	DB       int    `yaml:"db" env:"ARCADE_REDIS_DB"`
	TTL      string `yaml:"ttl" env:"ARCADE_REDIS_TTL"`
}

// PostgresConfig is optional; an empty URL serves the builtin question bank.
type PostgresConfig struct {
	URL string `yaml:"url" env:"ARCADE_POSTGRES_URL"`
}

type QuizConfig struct {
	TTL          string `yaml:"ttl" env:"ARCADE_QUIZ_TTL"`
	MaxQuestions int    `yaml:"max_questions" env:"ARCADE_QUIZ_MAX_QUESTIONS"`

	// PityBonus 0 keeps the default of 10; a negative value turns the bonus off.
	PityBonus int   `yaml:"pity_bonus" env:"ARCADE_QUIZ_PITY_BONUS"`
	Seed      int64 `yaml:"seed" env:"ARCADE_QUIZ_SEED"`
}

type AdventureConfig struct {
	// WorldFile is an INI world description; empty means the builtin world.
	WorldFile string `yaml:"world_file" env:"ARCADE_WORLD_FILE"`
	History   int    `yaml:"history" env:"ARCADE_HISTORY"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Server: ServerConfig{
			Port:    "8080",
			MCPPath: "/mcp",
		},
		Redis: RedisConfig{
			TTL: "10m",
		},
		Quiz: QuizConfig{
			TTL:          "5m",
			MaxQuestions: 5,
			PityBonus:    10,
		},
		Adventure: AdventureConfig{
			History: 50,
		},
	}
}

// Load reads YAML config from path on top of Default, then applies ARCADE_* environment overrides.
// An empty path skips the file.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, err
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", path, err)
		}
	}
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// TTLDuration parses a duration string or returns the fallback if empty.
func TTLDuration(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}
	if d, err := time.ParseDuration(raw); err == nil {
		return d
	}
	return fallback
}
