package config

import (
	"errors"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

type Config struct {
	DiscordToken        string       `yaml:"discord_token"`
	LogLevel            string       `yaml:"log_level"`
	Prefix              string       `yaml:"prefix"`
	OwnerID             string       `yaml:"owner_id"`
	SupportRoleID       string       `yaml:"support_role_id"`
	TeamPath            string       `yaml:"team_path"`
	WarningsPath        string       `yaml:"warnings_path"`
	ModlogPath          string       `yaml:"modlog_path"`
	EmbedColor          int          `yaml:"embed_color"`
	Footer              string       `yaml:"footer"`
	Statuses            []string     `yaml:"statuses"`
	StatusPeriodSeconds int          `yaml:"status_period_seconds"`
	Health              HealthConfig `yaml:"health"`
}

type HealthConfig struct {
	Enabled bool   `yaml:"enabled"`
	Addr    string `yaml:"addr"`
}

func DefaultConfig() Config {
	return Config{
		LogLevel:     "info",
		Prefix:       ",",
		TeamPath:     "team.json",
		WarningsPath: "warnings.json",
		ModlogPath:   "modlog.json",
		EmbedColor:   0x000000,
		Footer:       "Made by Kai",
		Statuses: []string{
			"I put the 'pro' in procrastination",
			"Sarcasm is my love language",
			"I'm not arguing, I'm explaining why I'm right",
			"I'm silently correcting your grammar",
			"I love deadlines. I love the whooshing sound they make as they fly by",
		},
		StatusPeriodSeconds: 30,
		Health:              HealthConfig{Enabled: true, Addr: ":3000"},
	}
}

func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := DefaultConfig()

	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		path = "config.yaml"
	}
	if data, err := os.ReadFile(path); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, err
		}
	}

	applyEnv(&cfg)
	if cfg.DiscordToken == "" {
		return Config{}, errors.New("DISCORD_TOKEN is required")
	}
	if cfg.Prefix == "" {
		cfg.Prefix = ","
	}
	if cfg.StatusPeriodSeconds <= 0 {
		cfg.StatusPeriodSeconds = 30
	}

	return cfg, nil
}

func applyEnv(cfg *Config) {
	cfg.DiscordToken = envString("DISCORD_TOKEN", cfg.DiscordToken)
	cfg.DiscordToken = envString("TOKEN", cfg.DiscordToken)
	cfg.LogLevel = envString("LOG_LEVEL", cfg.LogLevel)
	cfg.Prefix = envString("PREFIX", cfg.Prefix)
	cfg.OwnerID = envString("OWNER_ID", cfg.OwnerID)
	cfg.SupportRoleID = envString("SUPPORT_ROLE_ID", cfg.SupportRoleID)
	cfg.TeamPath = envString("TEAM_PATH", cfg.TeamPath)
	cfg.WarningsPath = envString("WARNINGS_PATH", cfg.WarningsPath)
	cfg.ModlogPath = envString("MODLOG_PATH", cfg.ModlogPath)
	cfg.EmbedColor = envInt("EMBED_COLOR", cfg.EmbedColor)
	cfg.StatusPeriodSeconds = envInt("STATUS_PERIOD_SECONDS", cfg.StatusPeriodSeconds)
	cfg.Health.Enabled = envBool("HEALTH_ENABLED", cfg.Health.Enabled)
	cfg.Health.Addr = envString("HEALTH_ADDR", cfg.Health.Addr)
	if port := os.Getenv("PORT"); port != "" {
		cfg.Health.Addr = ":" + port
	}
}

func BuildLogger(level string) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "json"
	cfg.EncoderConfig.TimeKey = "time"
	cfg.EncoderConfig.MessageKey = "message"
	cfg.EncoderConfig.LevelKey = "level"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	lvl := strings.ToLower(level)
	switch lvl {
	case "debug", "info", "warn", "error":
		cfg.Level = zap.NewAtomicLevelAt(parseLevel(lvl))
	default:
		cfg.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	}

	return cfg.Build()
}

func parseLevel(level string) zapcore.Level {
	switch level {
	case "debug":
		return zapcore.DebugLevel
	case "warn":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

func envString(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if value := os.Getenv(key); value != "" {
		lower := strings.ToLower(value)
		return lower == "1" || lower == "true" || lower == "yes"
	}
	return fallback
}
