package metadata

/** @brief Where a buffer object is bound. */
type BufferTarget uint8

const (
	ArrayBuffer BufferTarget = iota
	ElementArrayBuffer
)

var bufferTargetNames = []string{"ArrayBuffer", "ElementArrayBuffer"}

func (t BufferTarget) String() string { return nameOf(bufferTargetNames, t, "BufferTarget") }

/**
 * @brief Usage hint forwarded with every upload. Frequency (static, dynamic,
 * stream) times access (draw, read, copy).
 */
type BufferUsage uint8

const (
	StaticDraw BufferUsage = iota
	StaticRead
	StaticCopy
	DynamicDraw
	DynamicRead
	DynamicCopy
	StreamDraw
	StreamRead
	StreamCopy
)

var bufferUsageNames = []string{
	"StaticDraw", "StaticRead", "StaticCopy",
	"DynamicDraw", "DynamicRead", "DynamicCopy",
	"StreamDraw", "StreamRead", "StreamCopy",
}

func (u BufferUsage) String() string { return nameOf(bufferUsageNames, u, "BufferUsage") }

func (u *BufferUsage) UnmarshalText(text []byte) (err error) {
	*u, err = parseName[BufferUsage](bufferUsageNames, text, "buffer usage")
	return err
}

/** @brief Primitive assembly mode for draw calls. */
type PrimitiveMode uint8

const (
	Points PrimitiveMode = iota
	LineStrip
	LineLoop
	Lines
	LineStripAdjacency
	LinesAdjacency
	TriangleStrip
	TriangleFan
	Triangles
	TriangleStripAdjacency
	TrianglesAdjacency
	Patches
)

var primitiveModeNames = []string{
	"Points", "LineStrip", "LineLoop", "Lines", "LineStripAdjacency", "LinesAdjacency",
	"TriangleStrip", "TriangleFan", "Triangles", "TriangleStripAdjacency", "TrianglesAdjacency", "Patches",
}

func (m PrimitiveMode) String() string { return nameOf(primitiveModeNames, m, "PrimitiveMode") }

func (m *PrimitiveMode) UnmarshalText(text []byte) (err error) {
	*m, err = parseName[PrimitiveMode](primitiveModeNames, text, "primitive mode")
	return err
}

/** @brief Bits selecting which buffers Clear resets. */
type ClearMask uint8

const (
	ClearColor ClearMask = 1 << iota
	ClearDepth
	ClearStencil
)

/** @brief Depth comparison function. */
type DepthFunc uint8

const (
	DepthLess DepthFunc = iota
	DepthLessEqual
	DepthEqual
	DepthAlways
)
