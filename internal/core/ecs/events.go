package ecs

// EntityCreated is emitted on the world's event bus when NewEntity allocates an id.
type EntityCreated struct {
	Entity Entity
}

// EntityRemoved is emitted after an entity and all its components are removed.
type EntityRemoved struct {
	Entity     Entity
	Components int
}
