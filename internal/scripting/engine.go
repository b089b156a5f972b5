package scripting

import (
	"fmt"
	"os"
	"path/filepath"

	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"

	"github.com/l1jgo/tickworld/internal/component"
	"github.com/l1jgo/tickworld/internal/core/ecs"
)

// Engine wraps a single gopher-lua VM bound to one world.
// Single-goroutine access only (the frame loop).
type Engine struct {
	vm      *lua.LState
	log     *zap.Logger
	world   *ecs.World
	kinds   *component.Registry
	systems map[string]*luaSystem
}

// NewEngine creates a Lua VM with the ecs module installed both as a global
// and for require("ecs").
func NewEngine(w *ecs.World, kinds *component.Registry, log *zap.Logger) *Engine {
	if log == nil {
		log = zap.NewNop()
	}
	if kinds == nil {
		kinds = component.NewRegistry()
	}
	vm := lua.NewState(lua.Options{
		SkipOpenLibs: false,
	})

	// Set API version global
	vm.SetGlobal("API_VERSION", lua.LNumber(1))

	e := &Engine{
		vm:      vm,
		log:     log,
		world:   w,
		kinds:   kinds,
		systems: make(map[string]*luaSystem),
	}
	mod := e.module()
	vm.SetGlobal("ecs", mod)
	vm.PreloadModule("ecs", func(L *lua.LState) int {
		L.Push(mod)
		return 1
	})
	return e
}

// LoadDir runs every .lua file in dir in name order. A missing directory is
// not an error.
func (e *Engine) LoadDir(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil // skip missing dirs
		}
		return err
	}
	loaded := 0
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".lua" {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		if err := e.vm.DoFile(path); err != nil {
			return fmt.Errorf("load %s: %w", path, err)
		}
		loaded++
		e.log.Debug("loaded lua script", zap.String("file", path))
	}
	e.log.Info("lua scripts loaded",
		zap.String("dir", dir),
		zap.Int("files", loaded),
		zap.Int("systems", len(e.systems)),
	)
	return nil
}

// DoString runs a chunk of Lua source.
func (e *Engine) DoString(src string) error {
	return e.vm.DoString(src)
}

// Systems returns the names of systems defined from Lua that are still
// registered with the world.
func (e *Engine) Systems() []string {
	if !e.world.Initialized() {
		return nil
	}
	names := make([]string, 0, len(e.systems))
	for _, name := range e.world.Scheduler().Names() {
		if _, ok := e.systems[name]; ok {
			names = append(names, name)
		}
	}
	return names
}

// Close unregisters the engine's systems from the world and shuts down the VM.
func (e *Engine) Close() {
	if e.vm.IsClosed() {
		return
	}
	if e.world.Initialized() {
		for name, sys := range e.systems {
			if cur, ok := e.world.Scheduler().Get(name); ok && cur == ecs.System(sys) {
				e.world.RemoveSystem(name)
			}
		}
	}
	e.systems = map[string]*luaSystem{}
	e.vm.Close()
}
