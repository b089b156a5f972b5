package scripting

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/l1jgo/tickworld/internal/component"
	"github.com/l1jgo/tickworld/internal/core/ecs"
	coresys "github.com/l1jgo/tickworld/internal/core/system"
	"github.com/l1jgo/tickworld/internal/spatial"
)

func newEngine(t *testing.T) (*Engine, *ecs.World, *observer.ObservedLogs) {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	log := zap.New(core)
	w := ecs.NewWorld(log)
	w.Init()
	e := NewEngine(w, component.NewRegistry(), log)
	t.Cleanup(func() {
		e.Close()
		w.Destroy()
	})
	return e, w, logs
}

func TestLuaSystem_DecrementsHealth(t *testing.T) {
	t.Parallel()
	e, w, _ := newEngine(t)

	hurt := w.NewEntity()
	w.AddComponent(hurt, &component.Health{Value: 10})
	bystander := w.NewEntity()

	require.NoError(t, e.DoString(`
		ecs.system("poison", {"Health"}, function(es)
			for _, e in ipairs(es) do
				ecs.set(e, "Health", "value", ecs.get(e, "Health", "value") - 1)
			end
		end)
	`))
	assert.Equal(t, []string{"poison"}, e.Systems())

	for range 3 {
		w.Tick()
	}

	h, ok := ecs.Get[*component.Health](w, hurt)
	require.True(t, ok)
	assert.Equal(t, 7, h.Value)
	assert.False(t, w.HasComponent(component.KindHealth, bystander))
}

func TestLuaAPI_SpawnAndInspect(t *testing.T) {
	t.Parallel()
	e, w, _ := newEngine(t)

	require.NoError(t, e.DoString(`
		local e = ecs.new_entity()
		ecs.add(e, "Position", {x = 2, y = 3})
		ecs.add(e, "Mana", {current = 5})
		spawned = e
		has_mana = ecs.has(e, "Mana")
		missing = ecs.get(e, "Health", "value")
		found = ecs.query("Position", "Mana")
		all = ecs.entities()
	`))

	assert.Equal(t, lua.LNumber(1), e.vm.GetGlobal("spawned"))
	assert.Equal(t, lua.LTrue, e.vm.GetGlobal("has_mana"))
	assert.Equal(t, lua.LNil, e.vm.GetGlobal("missing"))
	assert.Equal(t, 1, e.vm.GetGlobal("found").(*lua.LTable).Len())
	assert.Equal(t, 1, e.vm.GetGlobal("all").(*lua.LTable).Len())

	pos, ok := ecs.Get[*component.Position](w, 1)
	require.True(t, ok)
	assert.InDelta(t, 2.0, pos.X, 1e-9)
	assert.InDelta(t, 3.0, pos.Y, 1e-9)

	c, ok := w.ComponentOf("Mana", 1)
	require.True(t, ok)
	assert.Equal(t, map[string]float64{"current": 5}, c.(*component.Attributes).Values)
}

func TestLuaAPI_BadArgumentsRaise(t *testing.T) {
	t.Parallel()
	e, w, _ := newEngine(t)

	tests := []struct {
		name string
		src  string
	}{
		{name: "unknown field", src: `ecs.add(ecs.new_entity(), "Health", {bogus = 1})`},
		{name: "non numeric field", src: `ecs.add(ecs.new_entity(), "Health", {value = "x"})`},
		{name: "negative entity", src: `ecs.has(-1, "Health")`},
		{name: "fractional entity", src: `ecs.alive(1.5)`},
		{name: "missing system fn", src: `ecs.system("broken", {})`},
		{name: "syntax", src: `ecs.new_entity(`},
	}
	for _, tc := range tests {
		assert.Error(t, e.DoString(tc.src), tc.name)
	}
	assert.Equal(t, 0, w.Scheduler().Len())
}

func TestLuaSystem_ErrorIsLogged(t *testing.T) {
	t.Parallel()
	e, w, logs := newEngine(t)

	ran := 0
	w.AddSystem(ecs.NewSystem("zz-after", func(*ecs.World, []ecs.Entity) { ran++ }))
	require.NoError(t, e.DoString(`ecs.system("boom", {}, function() error("boom") end)`))

	require.NotPanics(t, w.Tick)
	assert.Equal(t, 1, ran)
	assert.Equal(t, uint64(1), w.Ticks())

	failed := logs.FilterMessage("lua system failed").All()
	require.Len(t, failed, 1)
	assert.Equal(t, "boom", failed[0].ContextMap()["system"])
}

func TestLuaSystem_RemovalFromScript(t *testing.T) {
	t.Parallel()
	e, w, _ := newEngine(t)

	require.NoError(t, e.DoString(`
		ecs.system("reaper", {"Health"}, function(es)
			for _, e in ipairs(es) do
				if ecs.get(e, "Health", "value") <= 0 then
					ecs.mark_for_removal(e)
				end
			end
		end)
	`))
	dead := w.NewEntity()
	w.AddComponent(dead, &component.Health{Value: 0})
	live := w.NewEntity()
	w.AddComponent(live, &component.Health{Value: 5})

	w.Tick()
	assert.Equal(t, []ecs.Entity{live}, w.Entities())

	require.NoError(t, e.DoString(`removed = ecs.remove_system("reaper")`))
	assert.Equal(t, lua.LTrue, e.vm.GetGlobal("removed"))
	assert.Empty(t, e.Systems())
}

func TestLuaAPI_ResourcesAndClock(t *testing.T) {
	t.Parallel()
	e, w, _ := newEngine(t)

	require.NoError(t, e.DoString(`dt_without_clock = ecs.delta_time()`))
	assert.Equal(t, lua.LNumber(0), e.vm.GetGlobal("dt_without_clock"))

	gravity := component.NewAttributes("Gravity")
	gravity.SetField("g", 9.5)
	w.AddResource(gravity)

	clock := coresys.NewClock()
	start := time.Unix(100, 0)
	clock.Advance(start)
	clock.Advance(start.Add(250 * time.Millisecond))
	w.AddResource(clock)
	w.Tick()

	require.NoError(t, e.DoString(`
		g = ecs.resource("Gravity", "g")
		none = ecs.resource("Wind", "speed")
		dt = ecs.delta_time()
		ticks = ecs.tick()
	`))
	assert.Equal(t, lua.LNumber(9.5), e.vm.GetGlobal("g"))
	assert.Equal(t, lua.LNil, e.vm.GetGlobal("none"))
	assert.Equal(t, lua.LNumber(0.25), e.vm.GetGlobal("dt"))
	assert.Equal(t, lua.LNumber(1), e.vm.GetGlobal("ticks"))
}

func TestLuaAPI_Nearby(t *testing.T) {
	t.Parallel()
	e, w, _ := newEngine(t)

	near := w.NewEntity()
	w.AddComponent(near, &component.Position{Vec3: component.Vec3{X: 1}})
	far := w.NewEntity()
	w.AddComponent(far, &component.Position{Vec3: component.Vec3{X: 90}})
	w.AddSystem(spatial.NewIndexSystem(spatial.DefaultCellSize))
	w.Tick()

	require.NoError(t, e.DoString(`
		local found = ecs.nearby(0, 0, 10)
		count = #found
		first = found[1]
	`))
	assert.Equal(t, lua.LNumber(1), e.vm.GetGlobal("count"))
	assert.Equal(t, lua.LNumber(near), e.vm.GetGlobal("first"))
}

func TestRequireModule(t *testing.T) {
	t.Parallel()
	e, _, _ := newEngine(t)

	require.NoError(t, e.DoString(`same = require("ecs") == ecs`))
	assert.Equal(t, lua.LTrue, e.vm.GetGlobal("same"))
}

func TestLoadDir(t *testing.T) {
	t.Parallel()
	e, w, _ := newEngine(t)

	dir := t.TempDir()
	files := map[string]string{
		"a.lua":     `ecs.system("a", {}, function() end)`,
		"b.lua":     `ecs.system("b", {"Health"}, function() end)`,
		"notes.txt": `this is not lua`,
	}
	for name, body := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o600))
	}
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested.lua"), 0o700))

	require.NoError(t, e.LoadDir(dir))
	assert.Equal(t, []string{"a", "b"}, w.Scheduler().Names())
	assert.NoError(t, e.LoadDir(filepath.Join(dir, "missing")))

	bad := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(bad, "bad.lua"), []byte(`error("nope")`), 0o600))
	assert.Error(t, e.LoadDir(bad))
}

func TestClose_UnregistersOwnSystems(t *testing.T) {
	t.Parallel()
	w := ecs.NewWorld(nil)
	w.Init()
	defer w.Destroy()
	e := NewEngine(w, nil, nil)

	require.NoError(t, e.DoString(`
		ecs.system("mine", {}, function() end)
		ecs.system("shadowed", {}, function() end)
	`))
	w.AddSystem(ecs.NewSystem("shadowed", nil))

	e.Close()
	e.Close()
	assert.False(t, w.Scheduler().Has("mine"))
	assert.True(t, w.Scheduler().Has("shadowed"))
}
