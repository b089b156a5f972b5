package ecs

import (
	"reflect"
	"slices"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/l1jgo/tickworld/internal/core/event"
)

// World is the top-level ECS container. It owns the entity pool, the component
// registry, the resource store, the system scheduler and the event bus, plus a
// deferred removal queue flushed at the end of each tick.
//
// A World is created uninitialized. Every accessor called before Init or
// after Destroy logs ErrUninitialized and returns a zero value.
//
// A World is not safe for concurrent use.
type World struct {
	log *zap.Logger

	pool        *EntityPool
	components  *Registry
	resources   *ResourceStore
	scheduler   *Scheduler
	events      *event.Bus
	removeQueue []Entity

	ticks       uint64
	initialized bool
}

func NewWorld(log *zap.Logger) *World {
	if log == nil {
		log = zap.NewNop()
	}
	return &World{log: log}
}

// Init constructs empty stores. Calling Init on an initialized world does
// nothing beyond a warning.
func (w *World) Init() {
	if w.initialized {
		w.log.Warn("world already initialized")
		return
	}
	w.pool = NewEntityPool()
	w.components = NewRegistry()
	w.resources = NewResourceStore()
	w.scheduler = NewScheduler()
	w.events = event.NewBus()
	w.removeQueue = make([]Entity, 0, 64)
	w.ticks = 0
	w.initialized = true
	w.log.Info("world initialized")
}

// Destroy releases every store. The world returns to the state it had
// before Init and may be initialized again.
func (w *World) Destroy() {
	if !w.ready("destroy") {
		return
	}
	entities := w.pool.Count()
	systems := w.scheduler.Len()

	w.scheduler.Reset()
	w.components.Reset()
	w.resources.Reset()
	w.pool.Reset()
	w.events.Reset()

	w.pool = nil
	w.components = nil
	w.resources = nil
	w.scheduler = nil
	w.events = nil
	w.removeQueue = nil
	w.initialized = false
	w.log.Info("world destroyed",
		zap.Int("entities", entities),
		zap.Int("systems", systems),
		zap.Uint64("ticks", w.ticks),
	)
}

func (w *World) Initialized() bool   { return w.initialized }
func (w *World) Logger() *zap.Logger { return w.log }

// Ticks returns the number of completed Tick calls since Init.
func (w *World) Ticks() uint64 { return w.ticks }

// ready reports whether the world is initialized and logs the misuse when
// it is not.
func (w *World) ready(op string) bool {
	if w.initialized {
		return true
	}
	w.log.Error("world used while uninitialized",
		zap.String("op", op),
		zap.Error(eris.Wrap(ErrUninitialized, op)),
	)
	return false
}

// Tick runs every registered system once, in name order.
//
// Before the systems run, events emitted during the previous tick are
// dispatched. For each system the query is evaluated just before it runs, so
// it observes whatever earlier systems did this tick. Systems added during a
// tick first run on the next tick, even when their name sorts after the
// running system; walking the live tree instead would run such a system in
// the same tick. A system removed during a tick is skipped if it has not run
// yet. Entities queued with MarkForRemoval are removed after the last system.
func (w *World) Tick() {
	if !w.ready("tick") {
		return
	}
	w.events.SwapBuffers()
	w.events.DispatchAll()

	names := w.scheduler.Names()
	for _, name := range names {
		if !w.initialized {
			// destroyed from inside a system
			return
		}
		sys, ok := w.scheduler.Get(name)
		if !ok {
			continue
		}
		matched := w.components.Query(sys.Dependencies()...)
		sys.Run(w, matched)
	}
	if !w.initialized {
		return
	}
	w.FlushRemovals()
	w.ticks++
}

// ── Entities ───────────────────────────────────────────────────────

// NewEntity allocates max(live)+1, or 1 on an empty world. It returns 0 when
// the world is not initialized.
func (w *World) NewEntity() Entity {
	if !w.ready("new_entity") {
		return 0
	}
	e := w.pool.Create()
	event.Emit(w.events, EntityCreated{Entity: e})
	return e
}

// RemoveEntity removes e and every component it owns. Removing an entity that
// is not live is a no-op and reports false.
func (w *World) RemoveEntity(e Entity) bool {
	if !w.ready("remove_entity") {
		return false
	}
	if !w.pool.Destroy(e) {
		w.log.Debug("remove of non-live entity ignored", zap.Uint32("entity", uint32(e)))
		return false
	}
	n := w.components.RemoveEntity(e)
	// a pending MarkForRemoval must not outlive e, or the flush would hit
	// whichever entity is issued e's id next
	w.removeQueue = slices.DeleteFunc(w.removeQueue, func(q Entity) bool { return q == e })
	event.Emit(w.events, EntityRemoved{Entity: e, Components: n})
	return true
}

// MarkForRemoval queues e for removal at the end of the current tick. An
// entity that is not live is ignored. Removing e before the flush drops it
// from the queue.
func (w *World) MarkForRemoval(e Entity) {
	if !w.ready("mark_for_removal") {
		return
	}
	if !w.pool.Alive(e) {
		w.log.Debug("mark of non-live entity ignored", zap.Uint32("entity", uint32(e)))
		return
	}
	w.removeQueue = append(w.removeQueue, e)
}

// FlushRemovals removes all queued entities. Tick calls it after the last
// system; callers driving the world by hand may call it directly.
func (w *World) FlushRemovals() {
	if !w.ready("flush_removals") {
		return
	}
	queue := w.removeQueue
	w.removeQueue = nil
	for _, e := range queue {
		w.RemoveEntity(e)
	}
	w.removeQueue = queue[:0]
}

func (w *World) Alive(e Entity) bool {
	if !w.ready("alive") {
		return false
	}
	return w.pool.Alive(e)
}

// Entities returns the live entities in ascending order, or nil when the
// world is not initialized.
func (w *World) Entities() []Entity {
	if !w.ready("entities") {
		return nil
	}
	return w.pool.Entities()
}

// ── Components ─────────────────────────────────────────────────────

// AddComponent attaches c to e. The entity must be live.
func (w *World) AddComponent(e Entity, c Component) bool {
	if !w.ready("add_component") {
		return false
	}
	if isNil(c) {
		w.log.Error("component rejected",
			zap.Uint32("entity", uint32(e)),
			zap.Error(eris.Wrap(ErrInvalidValue, "nil component")),
		)
		return false
	}
	if !w.pool.Alive(e) {
		w.log.Warn("add component to non-live entity",
			zap.Uint32("entity", uint32(e)),
			zap.String("kind", string(c.Kind())),
			zap.Error(ErrEntityNotFound),
		)
		return false
	}
	w.components.Add(e, c)
	return true
}

// ComponentOf returns the first component of kind owned by e. The result is
// a borrowed reference, valid until the bucket is next mutated.
func (w *World) ComponentOf(kind Kind, e Entity) (Component, bool) {
	if !w.ready("entity_to_component") {
		return nil, false
	}
	c, ok := w.components.First(kind, e)
	if !ok {
		w.log.Debug("component lookup missed",
			zap.Uint32("entity", uint32(e)),
			zap.String("kind", string(kind)),
			zap.Error(ErrComponentNotFound),
		)
		return nil, false
	}
	return c, true
}

// HasComponent reports whether e owns a component of kind.
func (w *World) HasComponent(kind Kind, e Entity) bool {
	if !w.ready("has_component") {
		return false
	}
	_, ok := w.components.First(kind, e)
	return ok
}

// RemoveComponent erases the first component of c's kind owned by c's entity.
func (w *World) RemoveComponent(c Component) bool {
	if !w.ready("remove_component") {
		return false
	}
	return w.components.Remove(c)
}

// Query returns the entities owning a component of every kind, in the
// storage order of kinds[0].
func (w *World) Query(kinds ...Kind) []Entity {
	if !w.ready("query") {
		return nil
	}
	return w.components.Query(kinds...)
}

// ── Resources ──────────────────────────────────────────────────────

// AddResource stores r, overwriting any resource of the same kind.
func (w *World) AddResource(r Resource) {
	if !w.ready("add_resource") {
		return
	}
	if isNil(r) {
		w.log.Error("resource rejected", zap.Error(eris.Wrap(ErrInvalidValue, "nil resource")))
		return
	}
	if w.resources.Add(r) {
		w.log.Debug("resource replaced", zap.String("kind", string(r.Kind())))
	}
}

func (w *World) Resource(kind Kind) (Resource, bool) {
	if !w.ready("get_resource") {
		return nil, false
	}
	r, ok := w.resources.Get(kind)
	if !ok {
		w.log.Debug("resource lookup missed",
			zap.String("kind", string(kind)),
			zap.Error(ErrResourceNotFound),
		)
	}
	return r, ok
}

func (w *World) RemoveResource(kind Kind) bool {
	if !w.ready("remove_resource") {
		return false
	}
	return w.resources.Remove(kind)
}

// ── Systems ────────────────────────────────────────────────────────

// AddSystem registers s, replacing any system of the same name.
func (w *World) AddSystem(s System) bool {
	if !w.ready("add_system") {
		return false
	}
	if s == nil || s.Name() == "" {
		w.log.Error("system rejected", zap.Error(eris.Wrap(ErrInvalidSystem, "system has no name")))
		return false
	}
	if w.scheduler.Add(s) {
		w.log.Info("system replaced", zap.String("system", s.Name()))
	} else {
		w.log.Debug("system added", zap.String("system", s.Name()))
	}
	return true
}

func (w *World) RemoveSystem(name string) bool {
	if !w.ready("remove_system") {
		return false
	}
	return w.scheduler.Remove(name)
}

// ── Raw containers ─────────────────────────────────────────────────

func (w *World) Components() *Registry {
	if !w.ready("components") {
		return nil
	}
	return w.components
}

func (w *World) Resources() *ResourceStore {
	if !w.ready("resources") {
		return nil
	}
	return w.resources
}

func (w *World) Scheduler() *Scheduler {
	if !w.ready("systems") {
		return nil
	}
	return w.scheduler
}

func (w *World) Events() *event.Bus {
	if !w.ready("events") {
		return nil
	}
	return w.events
}

// isNil reports whether v is a nil interface or wraps a nil pointer.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}
