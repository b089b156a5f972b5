package scripting

import (
	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"

	"github.com/l1jgo/tickworld/internal/core/ecs"
)

// luaSystem is an ecs.System whose body is a Lua function. The function is
// called with an array of the matched entities.
type luaSystem struct {
	engine *Engine
	name   string
	deps   []ecs.Kind
	fn     *lua.LFunction
}

func (s *luaSystem) Name() string             { return s.name }
func (s *luaSystem) Dependencies() []ecs.Kind { return s.deps }

// Run never propagates a Lua error; it is logged and the tick carries on.
func (s *luaSystem) Run(_ *ecs.World, matched []ecs.Entity) {
	vm := s.engine.vm
	if vm.IsClosed() {
		return
	}
	if err := vm.CallByParam(lua.P{
		Fn:      s.fn,
		NRet:    0,
		Protect: true,
	}, entityTable(vm, matched)); err != nil {
		s.engine.log.Error("lua system failed",
			zap.String("system", s.name),
			zap.Error(err),
		)
	}
}

func entityTable(L *lua.LState, es []ecs.Entity) *lua.LTable {
	t := L.CreateTable(len(es), 0)
	for _, e := range es {
		t.Append(lua.LNumber(e))
	}
	return t
}
