package config

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

type Config struct {
	World     WorldConfig     `toml:"world"`
	Scene     SceneConfig     `toml:"scene"`
	Scripting ScriptingConfig `toml:"scripting"`
	Logging   LoggingConfig   `toml:"logging"`
}

type WorldConfig struct {
	Name        string        `toml:"name"`
	TickRate    time.Duration `toml:"tick_rate"`
	MaxTicks    uint64        `toml:"max_ticks"` // 0 = run until interrupted
	StatsEvery  int           `toml:"stats_every"`
	RegenEvery  int           `toml:"regen_every"`
	RegenAmount int           `toml:"regen_amount"`
	CellSize    float64       `toml:"cell_size"` // spatial index cell edge
}

type SceneConfig struct {
	Path string `toml:"path"` // empty = start with an empty world
}

type ScriptingConfig struct {
	Enabled bool   `toml:"enabled"`
	Dir     string `toml:"dir"`
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg := defaults()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if cfg.World.TickRate <= 0 {
		return nil, fmt.Errorf("config %s: world.tick_rate must be positive", path)
	}
	return cfg, nil
}

func defaults() *Config {
	return &Config{
		World: WorldConfig{
			Name:        "tickworld",
			TickRate:    50 * time.Millisecond,
			StatsEvery:  100,
			RegenEvery:  20,
			RegenAmount: 1,
			CellSize:    20,
		},
		Scene: SceneConfig{
			Path: "data/scene.yaml",
		},
		Scripting: ScriptingConfig{
			Enabled: true,
			Dir:     "scripts",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}
