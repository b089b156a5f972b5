package ecs

// KindOf returns the kind declared by T without needing a value. T is
// normally a pointer to a component or resource struct whose Kind method
// does not dereference its receiver.
func KindOf[T interface{ Kind() Kind }]() Kind {
	var zero T
	return zero.Kind()
}

// Get returns the first component of type T owned by e.
func Get[T Component](w *World, e Entity) (T, bool) {
	var zero T
	c, ok := w.ComponentOf(KindOf[T](), e)
	if !ok {
		return zero, false
	}
	t, ok := c.(T)
	return t, ok
}

// Each calls fn for every stored component of type T, in storage order.
func Each[T Component](w *World, fn func(T)) {
	reg := w.Components()
	if reg == nil {
		return
	}
	reg.Each(KindOf[T](), func(c Component) {
		if t, ok := c.(T); ok {
			fn(t)
		}
	})
}

// GetResource returns the stored resource of type T.
func GetResource[T Resource](w *World) (T, bool) {
	var zero T
	r, ok := w.Resource(KindOf[T]())
	if !ok {
		return zero, false
	}
	t, ok := r.(T)
	return t, ok
}

// RemoveResourceOf removes the stored resource of type T.
func RemoveResourceOf[T Resource](w *World) bool {
	return w.RemoveResource(KindOf[T]())
}
