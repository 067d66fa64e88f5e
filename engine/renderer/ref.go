package renderer

// Deleter is anything owning a driver handle that must be released once.
type Deleter interface {
	Delete()
}

/**
 * @brief A reference-counted handle to a shared GPU resource. Programs and
 * textures are shared between models this way; the resource is deleted when
 * the last reference is released. Refs are used from the render thread only.
 */
type Ref[T Deleter] struct {
	shared   *refCount[T]
	released bool
}

type refCount[T Deleter] struct {
	value T
	count int
}

// NewRef takes ownership of value with a count of one.
func NewRef[T Deleter](value T) *Ref[T] {
	return &Ref[T]{shared: &refCount[T]{value: value, count: 1}}
}

// Get returns the shared value. It panics on a released reference.
func (r *Ref[T]) Get() T {
	if r.released {
		panic("renderer: use of released reference")
	}
	return r.shared.value
}

// Clone returns a new reference to the same value.
func (r *Ref[T]) Clone() *Ref[T] {
	if r.released {
		panic("renderer: clone of released reference")
	}
	r.shared.count++
	return &Ref[T]{shared: r.shared}
}

// Release drops this reference. Releasing twice is a no-op.
func (r *Ref[T]) Release() {
	if r == nil || r.released {
		return
	}
	r.released = true
	r.shared.count--
	if r.shared.count == 0 {
		r.shared.value.Delete()
	}
}

// Count is the number of live references to the shared value.
func (r *Ref[T]) Count() int {
	return r.shared.count
}
