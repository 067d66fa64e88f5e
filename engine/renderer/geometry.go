package renderer

import "github.com/spaghettifunk/ace/engine/renderer/metadata"

// TriangleVertices is a coloured, textured quad made of two triangles:
// position (3), colour (3), texture coordinates (2).
var TriangleVertices = []float32{
	0.5, 0.5, 0.0, 1.0, 0.0, 0.0, 1.0, 1.0, // top right
	0.5, -0.5, 0.0, 0.0, 1.0, 0.0, 1.0, 0.0, // bottom right
	-0.5, -0.5, 0.0, 0.0, 0.0, 1.0, 0.0, 0.0, // bottom left
	-0.5, 0.5, 0.0, 1.0, 1.0, 0.0, 0.0, 1.0, // top left
}

var TriangleIndices = []uint32{
	0, 1, 3,
	1, 2, 3,
}

// QuadVertices covers the whole screen in clip space: position (2),
// texture coordinates (2).
var QuadVertices = []float32{
	-1.0, 1.0, 0.0, 1.0,
	-1.0, -1.0, 0.0, 0.0,
	1.0, -1.0, 1.0, 0.0,
	1.0, 1.0, 1.0, 1.0,
}

var QuadIndices = []uint32{
	0, 1, 2,
	2, 3, 0,
}

// CubeVertices is a 2x2x2 cube centred on the origin with four vertices per
// face: position (3), normal (3), texture coordinates (2).
var CubeVertices = []float32{
	// front
	-1, -1, 1, 0, 0, 1, 0, 0,
	1, -1, 1, 0, 0, 1, 1, 0,
	1, 1, 1, 0, 0, 1, 1, 1,
	-1, 1, 1, 0, 0, 1, 0, 1,
	// top
	-1, 1, 1, 0, 1, 0, 0, 0,
	1, 1, 1, 0, 1, 0, 1, 0,
	1, 1, -1, 0, 1, 0, 1, 1,
	-1, 1, -1, 0, 1, 0, 0, 1,
	// back
	1, -1, -1, 0, 0, -1, 0, 0,
	-1, -1, -1, 0, 0, -1, 1, 0,
	-1, 1, -1, 0, 0, -1, 1, 1,
	1, 1, -1, 0, 0, -1, 0, 1,
	// bottom
	-1, -1, -1, 0, -1, 0, 0, 0,
	1, -1, -1, 0, -1, 0, 1, 0,
	1, -1, 1, 0, -1, 0, 1, 1,
	-1, -1, 1, 0, -1, 0, 0, 1,
	// left
	-1, -1, -1, -1, 0, 0, 0, 0,
	-1, -1, 1, -1, 0, 0, 1, 0,
	-1, 1, 1, -1, 0, 0, 1, 1,
	-1, 1, -1, -1, 0, 0, 0, 1,
	// right
	1, -1, 1, 1, 0, 0, 0, 0,
	1, -1, -1, 1, 0, 0, 1, 0,
	1, 1, -1, 1, 0, 0, 1, 1,
	1, 1, 1, 1, 0, 0, 0, 1,
}

var CubeIndices = []uint32{
	0, 1, 2, 2, 3, 0,
	4, 5, 6, 6, 7, 4,
	8, 9, 10, 10, 11, 8,
	12, 13, 14, 14, 15, 12,
	16, 17, 18, 18, 19, 16,
	20, 21, 22, 22, 23, 20,
}

// InterleavedLayout configures attributes 0..n-1 over tightly interleaved
// float32 vertices, one attribute per entry of components.
func InterleavedLayout(components ...int32) func(*BoundVertexArray) {
	stride := 0
	for _, c := range components {
		stride += int(c)
	}
	return func(vao *BoundVertexArray) {
		offset := 0
		for i, c := range components {
			vao.Configure(uint32(i), NewAttributeLayout(c, metadata.ScalarFloat, false, stride, offset))
			offset += int(c)
		}
	}
}
