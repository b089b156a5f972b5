package ecs

import "github.com/rotisserie/eris"

var (
	// ErrUninitialized is logged when the world is used before Init or after Destroy.
	ErrUninitialized = eris.New("world is not initialized")

	// ErrEntityNotFound is logged when an operation names an entity that is not live.
	ErrEntityNotFound = eris.New("entity does not exist")

	// ErrComponentNotFound is logged when an entity owns no component of the requested kind.
	ErrComponentNotFound = eris.New("component not found")

	// ErrResourceNotFound is logged when no resource of the requested kind is stored.
	ErrResourceNotFound = eris.New("resource not found")

	// ErrInvalidSystem is logged when a system without a name is registered.
	ErrInvalidSystem = eris.New("invalid system")

	// ErrInvalidValue is logged when a nil component or resource is added.
	ErrInvalidValue = eris.New("invalid value")
)
