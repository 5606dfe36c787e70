package internal

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	StageProd = "prod"
	StageDev  = "dev"
)

type Config struct {
	Stage              string
	Seed               int64
	RepeatOnHit        bool
	MaxPlacementResets int

	// empty disables analytics
	DatabaseURL string
	// 0 disables the spectator server
	SpectatePort int
}

// LoadConfig reads the environment. Outside prod a .env file in the
// working directory is loaded first when present.
func LoadConfig() (Config, error) {
	if os.Getenv("STAGE") != StageProd {
		if err := godotenv.Load(".env"); err != nil {
			log.Println("no .env file loaded:", err)
		}
	}

	cfg := Config{
		Stage:       getenv("STAGE", StageDev),
		Seed:        time.Now().UnixNano(),
		RepeatOnHit: true,
		DatabaseURL: os.Getenv("DATABASE_URL"),
	}
	if cfg.Stage != StageDev && cfg.Stage != StageProd {
		return cfg, fmt.Errorf("stage must be either %s or %s, got: %s", StageDev, StageProd, cfg.Stage)
	}

	if v := os.Getenv("SEED"); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return cfg, fmt.Errorf("invalid SEED %q: %w", v, err)
		}
		cfg.Seed = seed
	}

	if v := os.Getenv("REPEAT_ON_HIT"); v != "" {
		repeatOnHit, err := strconv.ParseBool(v)
		if err != nil {
			return cfg, fmt.Errorf("invalid REPEAT_ON_HIT %q: %w", v, err)
		}
		cfg.RepeatOnHit = repeatOnHit
	}

	if v := os.Getenv("MAX_PLACEMENT_RESETS"); v != "" {
		maxResets, err := strconv.Atoi(v)
		if err != nil || maxResets < 0 {
			return cfg, fmt.Errorf("invalid MAX_PLACEMENT_RESETS %q", v)
		}
		cfg.MaxPlacementResets = maxResets
	}

	if v := os.Getenv("SPECTATE_PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil || port <= 0 || port > 65535 {
			return cfg, fmt.Errorf("invalid SPECTATE_PORT %q", v)
		}
		cfg.SpectatePort = port
	}

	return cfg, nil
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
