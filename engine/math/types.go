package math

// Vec2 represents a 2D vector
type Vec2 struct {
	X, Y float32
}

// Vec3 represents a 3D vector
type Vec3 struct {
	X, Y, Z float32
}

// Vec4 represents a 4D vector
type Vec4 struct {
	X, Y, Z, W float32
}

// IVec2..4 are signed integer vectors, uploaded as ivecN uniforms.
type IVec2 struct{ X, Y int32 }
type IVec3 struct{ X, Y, Z int32 }
type IVec4 struct{ X, Y, Z, W int32 }

// UVec2..4 are unsigned integer vectors, uploaded as uvecN uniforms.
type UVec2 struct{ X, Y uint32 }
type UVec3 struct{ X, Y, Z uint32 }
type UVec4 struct{ X, Y, Z, W uint32 }

// BVec2..4 are boolean vectors, uploaded as bvecN uniforms.
type BVec2 struct{ X, Y bool }
type BVec3 struct{ X, Y, Z bool }
type BVec4 struct{ X, Y, Z, W bool }

/**
 * @brief Column-major matrices. The name is ColumnsxRows, matching GLSL:
 * Mat2x3 has 2 columns of 3 rows each.
 */
type Mat2 struct {
	Data [4]float32
}

type Mat3 struct {
	Data [9]float32
}

/** @brief a 4x4 matrix, typically used to represent object transformations. */
type Mat4 struct {
	/** @brief The matrix elements */
	Data [16]float32
}

type Mat2x3 struct {
	Data [6]float32
}

type Mat3x2 struct {
	Data [6]float32
}

type Mat2x4 struct {
	Data [8]float32
}

type Mat4x2 struct {
	Data [8]float32
}

type Mat3x4 struct {
	Data [12]float32
}

type Mat4x3 struct {
	Data [12]float32
}
