package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds all configuration for the battle simulator
type Config struct {
	Sim SimConfig
}

// SimConfig holds simulator-specific configuration
type SimConfig struct {
	Seed    int64 // 0 means seed from the clock
	Turns   int
	Battles int
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Sim: SimConfig{
			Seed:    getEnvAsInt64OrDefault("BATTLESIM_SEED", 0),
			Turns:   getEnvAsIntOrDefault("BATTLESIM_TURNS", 10),
			Battles: getEnvAsIntOrDefault("BATTLESIM_BATTLES", 2),
		},
	}

	if cfg.Sim.Turns < 1 {
		return nil, fmt.Errorf("BATTLESIM_TURNS must be at least 1, got %d", cfg.Sim.Turns)
	}
	if cfg.Sim.Battles < 1 {
		return nil, fmt.Errorf("BATTLESIM_BATTLES must be at least 1, got %d", cfg.Sim.Battles)
	}

	return cfg, nil
}

func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsInt64OrDefault(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intValue
		}
	}
	return defaultValue
}
