package renderer

import (
	"github.com/spaghettifunk/ace/engine/math"
	"github.com/spaghettifunk/ace/engine/renderer/metadata"
)

/**
 * @brief A program known to be current. Uniform uploads target the current
 * program, so they are only reachable through the value Program.Bind returns.
 */
type ActiveProgram struct {
	program *Program
}

func (a *ActiveProgram) Program() *Program { return a.program }

// Unbind clears the current program, whichever one it is.
func (a *ActiveProgram) Unbind() {
	a.program.backend.UseProgram(0)
}

// SetUniform uploads value to the uniform called name. The location is looked
// up on every call; names the program does not use resolve to -1 and the
// upload is a driver no-op.
func (a *ActiveProgram) SetUniform(name string, value any) error {
	b := a.program.backend
	loc := b.GetUniformLocation(a.program.handle, name)

	switch v := value.(type) {
	// scalars
	case bool:
		b.Uniform1i(loc, boolInt(v))
	case int32:
		b.Uniform1i(loc, v)
	case int:
		b.Uniform1i(loc, int32(v))
	case uint32:
		b.Uniform1ui(loc, v)
	case float32:
		b.Uniform1f(loc, v)
	case float64:
		b.Uniform1f(loc, float32(v))
	case metadata.TextureUnit:
		b.Uniform1i(loc, int32(v))

	// vectors
	case math.Vec2:
		b.Uniform2f(loc, v.X, v.Y)
	case math.Vec3:
		b.Uniform3f(loc, v.X, v.Y, v.Z)
	case math.Vec4:
		b.Uniform4f(loc, v.X, v.Y, v.Z, v.W)
	case math.IVec2:
		b.Uniform2i(loc, v.X, v.Y)
	case math.IVec3:
		b.Uniform3i(loc, v.X, v.Y, v.Z)
	case math.IVec4:
		b.Uniform4i(loc, v.X, v.Y, v.Z, v.W)
	case math.UVec2:
		b.Uniform2ui(loc, v.X, v.Y)
	case math.UVec3:
		b.Uniform3ui(loc, v.X, v.Y, v.Z)
	case math.UVec4:
		b.Uniform4ui(loc, v.X, v.Y, v.Z, v.W)
	case math.BVec2:
		b.Uniform2i(loc, boolInt(v.X), boolInt(v.Y))
	case math.BVec3:
		b.Uniform3i(loc, boolInt(v.X), boolInt(v.Y), boolInt(v.Z))
	case math.BVec4:
		b.Uniform4i(loc, boolInt(v.X), boolInt(v.Y), boolInt(v.Z), boolInt(v.W))

	// arrays
	case []float32:
		b.Uniform1fv(loc, int32(len(v)), v)
	case []int32:
		b.Uniform1iv(loc, int32(len(v)), v)
	case []uint32:
		b.Uniform1uiv(loc, int32(len(v)), v)
	case []bool:
		b.Uniform1iv(loc, int32(len(v)), pack(v, 1, func(o []int32, e bool) []int32 {
			return append(o, boolInt(e))
		}))
	case []math.Vec2:
		b.Uniform2fv(loc, int32(len(v)), pack(v, 2, func(o []float32, e math.Vec2) []float32 {
			return append(o, e.X, e.Y)
		}))
	case []math.Vec3:
		b.Uniform3fv(loc, int32(len(v)), pack(v, 3, func(o []float32, e math.Vec3) []float32 {
			return append(o, e.X, e.Y, e.Z)
		}))
	case []math.Vec4:
		b.Uniform4fv(loc, int32(len(v)), pack(v, 4, func(o []float32, e math.Vec4) []float32 {
			return append(o, e.X, e.Y, e.Z, e.W)
		}))
	case []math.IVec2:
		b.Uniform2iv(loc, int32(len(v)), pack(v, 2, func(o []int32, e math.IVec2) []int32 {
			return append(o, e.X, e.Y)
		}))
	case []math.IVec3:
		b.Uniform3iv(loc, int32(len(v)), pack(v, 3, func(o []int32, e math.IVec3) []int32 {
			return append(o, e.X, e.Y, e.Z)
		}))
	case []math.IVec4:
		b.Uniform4iv(loc, int32(len(v)), pack(v, 4, func(o []int32, e math.IVec4) []int32 {
			return append(o, e.X, e.Y, e.Z, e.W)
		}))
	case []math.UVec2:
		b.Uniform2uiv(loc, int32(len(v)), pack(v, 2, func(o []uint32, e math.UVec2) []uint32 {
			return append(o, e.X, e.Y)
		}))
	case []math.UVec3:
		b.Uniform3uiv(loc, int32(len(v)), pack(v, 3, func(o []uint32, e math.UVec3) []uint32 {
			return append(o, e.X, e.Y, e.Z)
		}))
	case []math.UVec4:
		b.Uniform4uiv(loc, int32(len(v)), pack(v, 4, func(o []uint32, e math.UVec4) []uint32 {
			return append(o, e.X, e.Y, e.Z, e.W)
		}))
	case []math.BVec2:
		b.Uniform2iv(loc, int32(len(v)), pack(v, 2, func(o []int32, e math.BVec2) []int32 {
			return append(o, boolInt(e.X), boolInt(e.Y))
		}))
	case []math.BVec3:
		b.Uniform3iv(loc, int32(len(v)), pack(v, 3, func(o []int32, e math.BVec3) []int32 {
			return append(o, boolInt(e.X), boolInt(e.Y), boolInt(e.Z))
		}))
	case []math.BVec4:
		b.Uniform4iv(loc, int32(len(v)), pack(v, 4, func(o []int32, e math.BVec4) []int32 {
			return append(o, boolInt(e.X), boolInt(e.Y), boolInt(e.Z), boolInt(e.W))
		}))

	// matrices, column-major so never transposed
	case math.Mat2:
		b.UniformMatrix2fv(loc, 1, false, v.Data[:])
	case math.Mat3:
		b.UniformMatrix3fv(loc, 1, false, v.Data[:])
	case math.Mat4:
		b.UniformMatrix4fv(loc, 1, false, v.Data[:])
	case math.Mat2x3:
		b.UniformMatrix2x3fv(loc, 1, false, v.Data[:])
	case math.Mat3x2:
		b.UniformMatrix3x2fv(loc, 1, false, v.Data[:])
	case math.Mat2x4:
		b.UniformMatrix2x4fv(loc, 1, false, v.Data[:])
	case math.Mat4x2:
		b.UniformMatrix4x2fv(loc, 1, false, v.Data[:])
	case math.Mat3x4:
		b.UniformMatrix3x4fv(loc, 1, false, v.Data[:])
	case math.Mat4x3:
		b.UniformMatrix4x3fv(loc, 1, false, v.Data[:])
	case []math.Mat4:
		b.UniformMatrix4fv(loc, int32(len(v)), false, pack(v, 16, func(o []float32, e math.Mat4) []float32 {
			return append(o, e.Data[:]...)
		}))

	default:
		return &UniformTypeError{Name: name, Value: value}
	}
	return nil
}

func boolInt(b bool) int32 {
	if b {
		return 1
	}
	return 0
}

// pack flattens vs into one scalar slice of len(vs)*width elements.
func pack[V, E any](vs []V, width int, put func([]E, V) []E) []E {
	out := make([]E, 0, len(vs)*width)
	for _, v := range vs {
		out = put(out, v)
	}
	return out
}
