package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

const defaultDatabasePath = "banca.db"
const defaultListenAddr = ":8080"
const defaultChannelID = "BancaApp"
const defaultChannelKey = "BancaKey001"
const defaultMonthlyInterestRate = "0.05"

type Config struct {
	DatabasePath        string `yaml:"databasePath"`
	ListenAddr          string `yaml:"listenAddr"`
	ChannelID           string `yaml:"channelId"`
	ChannelKey          string `yaml:"channelKey"`
	MonthlyInterestRate string `yaml:"monthlyInterestRate"`
}

// Load reads the optional YAML file named by CONFIG_FILE, then applies
// environment overrides, then fills the remaining defaults.
func Load() (Config, error) {
	var cfg Config

	if path := strings.TrimSpace(os.Getenv("CONFIG_FILE")); path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config file: %w", err)
		}
	}

	applyEnv(&cfg.DatabasePath, "DATABASE_PATH")
	applyEnv(&cfg.ListenAddr, "LISTEN_ADDR")
	applyEnv(&cfg.ChannelID, "CHANNEL_ID")
	applyEnv(&cfg.ChannelKey, "CHANNEL_KEY")
	applyEnv(&cfg.MonthlyInterestRate, "MONTHLY_INTEREST_RATE")

	if cfg.DatabasePath == "" {
		cfg.DatabasePath = defaultDatabasePath
	}
	if cfg.ListenAddr == "" {
		cfg.ListenAddr = defaultListenAddr
	}
	if cfg.ChannelID == "" {
		cfg.ChannelID = defaultChannelID
	}
	if cfg.ChannelKey == "" {
		cfg.ChannelKey = defaultChannelKey
	}
	if cfg.MonthlyInterestRate == "" {
		cfg.MonthlyInterestRate = defaultMonthlyInterestRate
	}

	if _, err := cfg.InterestRate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c Config) InterestRate() (decimal.Decimal, error) {
	rate, err := decimal.NewFromString(strings.TrimSpace(c.MonthlyInterestRate))
	if err != nil {
		return decimal.Zero, fmt.Errorf("parse monthly interest rate %q: %w", c.MonthlyInterestRate, err)
	}
	if rate.IsNegative() {
		return decimal.Zero, fmt.Errorf("monthly interest rate cannot be negative")
	}
	return rate, nil
}

func applyEnv(target *string, key string) {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		*target = v
	}
}
