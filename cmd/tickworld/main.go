package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/l1jgo/tickworld/internal/component"
	"github.com/l1jgo/tickworld/internal/config"
	"github.com/l1jgo/tickworld/internal/core/ecs"
	coresys "github.com/l1jgo/tickworld/internal/core/system"
	"github.com/l1jgo/tickworld/internal/scene"
	"github.com/l1jgo/tickworld/internal/scripting"
	"github.com/l1jgo/tickworld/internal/spatial"
	"github.com/l1jgo/tickworld/internal/system"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

// ── Startup display helpers ────────────────────────────────────────

func printBanner(name string) {
	fmt.Println()
	fmt.Println("\033[36;1m  ┌───────────────────────────────────────────┐\033[0m")
	fmt.Println("\033[36;1m  │\033[0m              tickworld  v0.1.0            \033[36;1m│\033[0m")
	fmt.Println("\033[36;1m  └───────────────────────────────────────────┘\033[0m")
	fmt.Println()
	fmt.Printf("  \033[1mworld:\033[0m %s\n\n", name)
}

func printSection(title string) {
	lineLen := max(46-len(title)-1, 3)
	fmt.Printf("  \033[33m── %s %s\033[0m\n", title, strings.Repeat("─", lineLen))
}

func printStat(label string, count int) {
	numStr := fmt.Sprintf("%d", count)
	dotsLen := max(42-len(label)-len(numStr), 3)
	fmt.Printf("  %s \033[90m%s\033[0m \033[32m%s\033[0m\n", label, strings.Repeat("·", dotsLen), numStr)
}

func printOK(msg string) {
	fmt.Printf("  \033[32m✓\033[0m %s\n", msg)
}

// ── Main loop ──────────────────────────────────────────────────────

func run() error {
	// 1. Load config
	cfgPath := "config/world.toml"
	if p := os.Getenv("TICKWORLD_CONFIG"); p != "" {
		cfgPath = p
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// 2. Init logger
	log, err := newLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Sync()

	printBanner(cfg.World.Name)

	// 3. World and time source
	world := ecs.NewWorld(log)
	world.Init()
	defer world.Destroy()

	kinds := component.NewRegistry()
	clock := coresys.NewClock()
	world.AddResource(clock)

	// 4. Scene
	printSection("scene")
	if cfg.Scene.Path != "" {
		sc, err := scene.Load(cfg.Scene.Path)
		if err != nil {
			return fmt.Errorf("scene: %w", err)
		}
		spawned, err := sc.Spawn(world, kinds)
		if err != nil {
			return fmt.Errorf("spawn scene %s: %w", cfg.Scene.Path, err)
		}
		printStat("entities", len(spawned))
		printStat("resources", world.Resources().Len())
	} else {
		printOK("empty world")
	}
	fmt.Println()

	// 5. Systems
	printSection("systems")
	world.AddSystem(system.NewMovementSystem())
	world.AddSystem(system.NewRegenSystem(cfg.World.RegenEvery, cfg.World.RegenAmount))
	world.AddSystem(system.NewLifetimeSystem())
	world.AddSystem(spatial.NewIndexSystem(cfg.World.CellSize))
	world.AddSystem(system.NewFrameStatsSystem(cfg.World.StatsEvery, log))

	if cfg.Scripting.Enabled {
		engine := scripting.NewEngine(world, kinds, log)
		defer engine.Close()
		if err := engine.LoadDir(cfg.Scripting.Dir); err != nil {
			return fmt.Errorf("scripts: %w", err)
		}
		printStat("lua systems", len(engine.Systems()))
	}
	printStat("total systems", world.Scheduler().Len())
	fmt.Println()

	// 6. Frame loop until SIGINT/SIGTERM or the tick limit
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	runner := coresys.NewRunner(world, clock, cfg.World.TickRate, log)
	runner.StopAfter(cfg.World.MaxTicks)
	printOK("world running")
	if err := runner.Run(ctx); err != nil {
		return fmt.Errorf("frame loop: %w", err)
	}

	log.Info("world stopped",
		zap.Uint64("ticks", world.Ticks()),
		zap.Int("entities", len(world.Entities())),
		zap.Duration("elapsed", clock.Elapsed()),
	)
	return nil
}

func newLogger(cfg config.LoggingConfig) (*zap.Logger, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = zapcore.InfoLevel
	}

	var zapCfg zap.Config
	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		zapCfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
		zapCfg.EncoderConfig.ConsoleSeparator = "  "
		zapCfg.DisableCaller = true
		zapCfg.DisableStacktrace = true
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)

	return zapCfg.Build()
}
