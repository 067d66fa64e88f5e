package renderer

import (
	"unsafe"

	"github.com/spaghettifunk/ace/engine/renderer/metadata"
)

// Scalar is the set of element types a TypedBuffer can carry.
type Scalar interface {
	int8 | uint8 | int16 | uint16 | int32 | uint32 | float32 | float64
}

/** @brief A contiguous block of numbers along with its element type. */
type TypedBuffer interface {
	ScalarType() metadata.ScalarType
	// Len is the number of elements.
	Len() int
	// Size is the length in bytes.
	Size() int
	// Bytes views the elements as raw memory without copying.
	Bytes() []byte
}

type typedSlice[T Scalar] struct {
	data []T
	typ  metadata.ScalarType
}

// Typed wraps s as a TypedBuffer. The slice is shared, not copied.
func Typed[T Scalar](s []T) TypedBuffer {
	return typedSlice[T]{data: s, typ: scalarTypeOf[T]()}
}

func scalarTypeOf[T Scalar]() metadata.ScalarType {
	var zero T
	switch any(zero).(type) {
	case int8:
		return metadata.ScalarByte
	case uint8:
		return metadata.ScalarUnsignedByte
	case int16:
		return metadata.ScalarShort
	case uint16:
		return metadata.ScalarUnsignedShort
	case int32:
		return metadata.ScalarInt
	case uint32:
		return metadata.ScalarUnsignedInt
	case float64:
		return metadata.ScalarDouble
	}
	return metadata.ScalarFloat
}

func (t typedSlice[T]) ScalarType() metadata.ScalarType { return t.typ }
func (t typedSlice[T]) Len() int                        { return len(t.data) }
func (t typedSlice[T]) Size() int                       { return len(t.data) * t.typ.Size() }

func (t typedSlice[T]) Bytes() []byte {
	if len(t.data) == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(t.data))), t.Size())
}

// VertexBuffer owns one array buffer.
type VertexBuffer struct {
	backend Backend
	handle  uint32
	deleted bool
}

func NewVertexBuffer(backend Backend) *VertexBuffer {
	return &VertexBuffer{backend: backend, handle: backend.GenBuffer()}
}

func (vb *VertexBuffer) Handle() uint32 { return vb.handle }

func (vb *VertexBuffer) Bind() *BoundVertexBuffer {
	vb.backend.BindBuffer(metadata.ArrayBuffer, vb.handle)
	return &BoundVertexBuffer{buffer: vb}
}

func (vb *VertexBuffer) Delete() {
	if vb.deleted {
		return
	}
	vb.backend.DeleteBuffer(vb.handle)
	vb.deleted = true
}

// BoundVertexBuffer is a VertexBuffer bound to the array buffer target.
type BoundVertexBuffer struct {
	buffer *VertexBuffer
}

// Upload replaces the buffer contents in a single transfer.
func (b *BoundVertexBuffer) Upload(data TypedBuffer, usage metadata.BufferUsage) {
	b.buffer.backend.BufferData(metadata.ArrayBuffer, data.Bytes(), usage)
}

// Unbind binds zero to the array buffer target.
func (b *BoundVertexBuffer) Unbind() {
	b.buffer.backend.BindBuffer(metadata.ArrayBuffer, 0)
}

// ElementBuffer owns one element (index) buffer.
type ElementBuffer struct {
	backend Backend
	handle  uint32
	deleted bool
}

func NewElementBuffer(backend Backend) *ElementBuffer {
	return &ElementBuffer{backend: backend, handle: backend.GenBuffer()}
}

func (eb *ElementBuffer) Handle() uint32 { return eb.handle }

func (eb *ElementBuffer) Bind() *BoundElementBuffer {
	eb.backend.BindBuffer(metadata.ElementArrayBuffer, eb.handle)
	return &BoundElementBuffer{buffer: eb}
}

func (eb *ElementBuffer) Delete() {
	if eb.deleted {
		return
	}
	eb.backend.DeleteBuffer(eb.handle)
	eb.deleted = true
}

type BoundElementBuffer struct {
	buffer *ElementBuffer
}

func (b *BoundElementBuffer) Upload(data TypedBuffer, usage metadata.BufferUsage) {
	b.buffer.backend.BufferData(metadata.ElementArrayBuffer, data.Bytes(), usage)
}

func (b *BoundElementBuffer) Unbind() {
	b.buffer.backend.BindBuffer(metadata.ElementArrayBuffer, 0)
}
