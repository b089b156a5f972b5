package system

import (
	"go.uber.org/zap"

	"github.com/l1jgo/tickworld/internal/core/ecs"
	coresys "github.com/l1jgo/tickworld/internal/core/system"
)

// FrameStatsSystem logs frame statistics every interval ticks. It has no
// dependencies, so it runs every tick.
type FrameStatsSystem struct {
	interval  int
	tickCount int
	log       *zap.Logger
}

func NewFrameStatsSystem(interval int, log *zap.Logger) *FrameStatsSystem {
	if interval < 1 {
		interval = 1
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &FrameStatsSystem{interval: interval, log: log}
}

func (s *FrameStatsSystem) Name() string { return "stats" }

func (s *FrameStatsSystem) Dependencies() []ecs.Kind { return nil }

func (s *FrameStatsSystem) Run(w *ecs.World, _ []ecs.Entity) {
	s.tickCount++
	if s.tickCount%s.interval != 0 {
		return
	}
	fields := []zap.Field{
		zap.Int("ticks", s.tickCount),
		zap.Int("entities", len(w.Entities())),
		zap.Strings("systems", w.Scheduler().Names()),
	}
	if clock, ok := ecs.GetResource[*coresys.Clock](w); ok {
		fields = append(fields,
			zap.Float64("fps", clock.FPS()),
			zap.Duration("delta", clock.DeltaTime()),
		)
	}
	s.log.Info("frame stats", fields...)
}
