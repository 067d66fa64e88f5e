package renderer

import (
	"golang.org/x/exp/slices"

	"github.com/spaghettifunk/ace/engine/renderer/metadata"
)

/**
 * @brief How one vertex attribute is read from the bound array buffer.
 * Stride and Offset are in bytes.
 */
type AttributeLayout struct {
	Components int32
	Type       metadata.ScalarType
	Normalized bool
	Stride     int32
	Offset     int
}

// NewAttributeLayout takes stride and offset counted in elements of
// scalarType and stores them in bytes.
func NewAttributeLayout(components int32, scalarType metadata.ScalarType, normalized bool, strideElems, offsetElems int) AttributeLayout {
	size := scalarType.Size()
	return AttributeLayout{
		Components: components,
		Type:       scalarType,
		Normalized: normalized,
		Stride:     int32(strideElems * size),
		Offset:     offsetElems * size,
	}
}

// VertexArray owns one vertex array object and mirrors its attribute state.
type VertexArray struct {
	backend    Backend
	handle     uint32
	attributes map[uint32]AttributeLayout
	deleted    bool
}

func NewVertexArray(backend Backend) *VertexArray {
	return &VertexArray{
		backend:    backend,
		handle:     backend.GenVertexArray(),
		attributes: make(map[uint32]AttributeLayout),
	}
}

func (va *VertexArray) Handle() uint32 { return va.handle }

// Layout returns the layout last configured at index.
func (va *VertexArray) Layout(index uint32) (AttributeLayout, bool) {
	l, ok := va.attributes[index]
	return l, ok
}

// Indices lists configured attribute indices in ascending order.
func (va *VertexArray) Indices() []uint32 {
	keys := make([]uint32, 0, len(va.attributes))
	for k := range va.attributes {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

func (va *VertexArray) Bind() *BoundVertexArray {
	va.backend.BindVertexArray(va.handle)
	return &BoundVertexArray{array: va}
}

func (va *VertexArray) Delete() {
	if va.deleted {
		return
	}
	va.backend.DeleteVertexArray(va.handle)
	va.deleted = true
}

// BoundVertexArray is the current vertex array; attributes are configured through it.
type BoundVertexArray struct {
	array *VertexArray
}

func (b *BoundVertexArray) VertexArray() *VertexArray { return b.array }

// Configure points attribute index at layout, enables it and records it.
// Configuring an index again replaces the earlier layout.
func (b *BoundVertexArray) Configure(index uint32, layout AttributeLayout) {
	be := b.array.backend
	be.VertexAttribPointer(index, layout.Components, layout.Type, layout.Normalized, layout.Stride, layout.Offset)
	be.EnableVertexAttribArray(index)
	b.array.attributes[index] = layout
}

func (b *BoundVertexArray) Unbind() {
	b.array.backend.BindVertexArray(0)
}
