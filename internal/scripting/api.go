package scripting

import (
	"math"

	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"

	"github.com/l1jgo/tickworld/internal/component"
	"github.com/l1jgo/tickworld/internal/core/ecs"
	coresys "github.com/l1jgo/tickworld/internal/core/system"
	"github.com/l1jgo/tickworld/internal/spatial"
)

func (e *Engine) module() *lua.LTable {
	return e.vm.SetFuncs(e.vm.NewTable(), map[string]lua.LGFunction{
		"system":           e.luaDefineSystem,
		"remove_system":    e.luaRemoveSystem,
		"new_entity":       e.luaNewEntity,
		"remove_entity":    e.luaRemoveEntity,
		"mark_for_removal": e.luaMarkForRemoval,
		"alive":            e.luaAlive,
		"entities":         e.luaEntities,
		"query":            e.luaQuery,
		"add":              e.luaAdd,
		"has":              e.luaHas,
		"get":              e.luaGet,
		"set":              e.luaSet,
		"resource":         e.luaResource,
		"nearby":           e.luaNearby,
		"delta_time":       e.luaDeltaTime,
		"tick":             e.luaTick,
		"log":              e.luaLog,
	})
}

// ecs.system(name, {kinds...}, fn)
func (e *Engine) luaDefineSystem(L *lua.LState) int {
	name := L.CheckString(1)
	depTbl := L.OptTable(2, nil)
	fn := L.CheckFunction(3)

	deps := []ecs.Kind{}
	if depTbl != nil {
		depTbl.ForEach(func(_, v lua.LValue) {
			if s, ok := v.(lua.LString); ok {
				deps = append(deps, ecs.Kind(s))
			}
		})
	}

	sys := &luaSystem{engine: e, name: name, deps: deps, fn: fn}
	ok := e.world.AddSystem(sys)
	if ok {
		e.systems[name] = sys
	}
	L.Push(lua.LBool(ok))
	return 1
}

func (e *Engine) luaRemoveSystem(L *lua.LState) int {
	name := L.CheckString(1)
	ok := e.world.RemoveSystem(name)
	delete(e.systems, name)
	L.Push(lua.LBool(ok))
	return 1
}

func (e *Engine) luaNewEntity(L *lua.LState) int {
	L.Push(lua.LNumber(e.world.NewEntity()))
	return 1
}

func (e *Engine) luaRemoveEntity(L *lua.LState) int {
	L.Push(lua.LBool(e.world.RemoveEntity(checkEntity(L, 1))))
	return 1
}

func (e *Engine) luaMarkForRemoval(L *lua.LState) int {
	e.world.MarkForRemoval(checkEntity(L, 1))
	return 0
}

func (e *Engine) luaAlive(L *lua.LState) int {
	L.Push(lua.LBool(e.world.Alive(checkEntity(L, 1))))
	return 1
}

func (e *Engine) luaEntities(L *lua.LState) int {
	L.Push(entityTable(L, e.world.Entities()))
	return 1
}

// ecs.query(kind, ...)
func (e *Engine) luaQuery(L *lua.LState) int {
	kinds := make([]ecs.Kind, 0, L.GetTop())
	for i := 1; i <= L.GetTop(); i++ {
		kinds = append(kinds, ecs.Kind(L.CheckString(i)))
	}
	L.Push(entityTable(L, e.world.Query(kinds...)))
	return 1
}

// ecs.add(entity, kind, {field = value, ...})
func (e *Engine) luaAdd(L *lua.LState) int {
	ent := checkEntity(L, 1)
	kind := ecs.Kind(L.CheckString(2))
	fields := L.OptTable(3, nil)

	c := e.kinds.New(kind)
	if fields != nil {
		f, ok := c.(component.Fielded)
		if !ok {
			L.ArgError(3, string(kind)+" has no settable fields")
			return 0
		}
		fields.ForEach(func(k, v lua.LValue) {
			name, isStr := k.(lua.LString)
			num, isNum := v.(lua.LNumber)
			if !isStr || !isNum {
				L.ArgError(3, "fields must map names to numbers")
			}
			if !f.SetField(string(name), float64(num)) {
				L.ArgError(3, string(kind)+" has no field "+string(name))
			}
		})
	}
	L.Push(lua.LBool(e.world.AddComponent(ent, c)))
	return 1
}

func (e *Engine) luaHas(L *lua.LState) int {
	ent := checkEntity(L, 1)
	L.Push(lua.LBool(e.world.HasComponent(ecs.Kind(L.CheckString(2)), ent)))
	return 1
}

// ecs.get(entity, kind, field) returns nil when the entity lacks the
// component or the component lacks the field.
func (e *Engine) luaGet(L *lua.LState) int {
	ent := checkEntity(L, 1)
	kind := ecs.Kind(L.CheckString(2))
	field := L.CheckString(3)

	c, ok := e.world.ComponentOf(kind, ent)
	if !ok {
		L.Push(lua.LNil)
		return 1
	}
	L.Push(fieldValue(c, field))
	return 1
}

// ecs.set(entity, kind, field, value)
func (e *Engine) luaSet(L *lua.LState) int {
	ent := checkEntity(L, 1)
	kind := ecs.Kind(L.CheckString(2))
	field := L.CheckString(3)
	v := float64(L.CheckNumber(4))

	c, ok := e.world.ComponentOf(kind, ent)
	if !ok {
		L.Push(lua.LFalse)
		return 1
	}
	f, ok := c.(component.Fielded)
	L.Push(lua.LBool(ok && f.SetField(field, v)))
	return 1
}

// ecs.resource(kind, field)
func (e *Engine) luaResource(L *lua.LState) int {
	kind := ecs.Kind(L.CheckString(1))
	field := L.CheckString(2)

	r, ok := e.world.Resource(kind)
	if !ok {
		L.Push(lua.LNil)
		return 1
	}
	L.Push(fieldValue(r, field))
	return 1
}

// ecs.nearby(x, y, radius) uses the spatial index built by the last tick.
func (e *Engine) luaNearby(L *lua.LState) int {
	x := float64(L.CheckNumber(1))
	y := float64(L.CheckNumber(2))
	r := float64(L.CheckNumber(3))
	L.Push(entityTable(L, spatial.Nearby(e.world, x, y, r)))
	return 1
}

// ecs.delta_time() is the last frame's duration in seconds, 0 without a clock.
func (e *Engine) luaDeltaTime(L *lua.LState) int {
	dt := 0.0
	if clock, ok := ecs.GetResource[*coresys.Clock](e.world); ok {
		dt = clock.DeltaTime().Seconds()
	}
	L.Push(lua.LNumber(dt))
	return 1
}

func (e *Engine) luaTick(L *lua.LState) int {
	L.Push(lua.LNumber(e.world.Ticks()))
	return 1
}

func (e *Engine) luaLog(L *lua.LState) int {
	e.log.Info(L.CheckString(1), zap.String("source", "lua"))
	return 0
}

func fieldValue(v any, field string) lua.LValue {
	f, ok := v.(component.Fielded)
	if !ok {
		return lua.LNil
	}
	n, ok := f.Field(field)
	if !ok {
		return lua.LNil
	}
	return lua.LNumber(n)
}

func checkEntity(L *lua.LState, n int) ecs.Entity {
	v := L.CheckNumber(n)
	if v < 0 || v > math.MaxUint32 || v != lua.LNumber(math.Trunc(float64(v))) {
		L.ArgError(n, "entity id out of range")
	}
	return ecs.Entity(v)
}
