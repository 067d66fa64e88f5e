package gltest

func (b *Backend) Uniform1f(l int32, v0 float32) {
	b.setUniform("Uniform1f", l, UniformValue{Count: 1, Floats: []float32{v0}})
}
func (b *Backend) Uniform2f(l int32, v0, v1 float32) {
	b.setUniform("Uniform2f", l, UniformValue{Count: 1, Floats: []float32{v0, v1}})
}
func (b *Backend) Uniform3f(l int32, v0, v1, v2 float32) {
	b.setUniform("Uniform3f", l, UniformValue{Count: 1, Floats: []float32{v0, v1, v2}})
}
func (b *Backend) Uniform4f(l int32, v0, v1, v2, v3 float32) {
	b.setUniform("Uniform4f", l, UniformValue{Count: 1, Floats: []float32{v0, v1, v2, v3}})
}

func (b *Backend) Uniform1i(l int32, v0 int32) {
	b.setUniform("Uniform1i", l, UniformValue{Count: 1, Ints: []int32{v0}})
}
func (b *Backend) Uniform2i(l int32, v0, v1 int32) {
	b.setUniform("Uniform2i", l, UniformValue{Count: 1, Ints: []int32{v0, v1}})
}
func (b *Backend) Uniform3i(l int32, v0, v1, v2 int32) {
	b.setUniform("Uniform3i", l, UniformValue{Count: 1, Ints: []int32{v0, v1, v2}})
}
func (b *Backend) Uniform4i(l int32, v0, v1, v2, v3 int32) {
	b.setUniform("Uniform4i", l, UniformValue{Count: 1, Ints: []int32{v0, v1, v2, v3}})
}

func (b *Backend) Uniform1ui(l int32, v0 uint32) {
	b.setUniform("Uniform1ui", l, UniformValue{Count: 1, Uints: []uint32{v0}})
}
func (b *Backend) Uniform2ui(l int32, v0, v1 uint32) {
	b.setUniform("Uniform2ui", l, UniformValue{Count: 1, Uints: []uint32{v0, v1}})
}
func (b *Backend) Uniform3ui(l int32, v0, v1, v2 uint32) {
	b.setUniform("Uniform3ui", l, UniformValue{Count: 1, Uints: []uint32{v0, v1, v2}})
}
func (b *Backend) Uniform4ui(l int32, v0, v1, v2, v3 uint32) {
	b.setUniform("Uniform4ui", l, UniformValue{Count: 1, Uints: []uint32{v0, v1, v2, v3}})
}

func (b *Backend) floats(name string, l, count int32, transpose bool, v []float32) {
	b.setUniform(name, l, UniformValue{Count: count, Transpose: transpose, Floats: append([]float32(nil), v...)})
}

func (b *Backend) Uniform1fv(l int32, c int32, v []float32) { b.floats("Uniform1fv", l, c, false, v) }
func (b *Backend) Uniform2fv(l int32, c int32, v []float32) { b.floats("Uniform2fv", l, c, false, v) }
func (b *Backend) Uniform3fv(l int32, c int32, v []float32) { b.floats("Uniform3fv", l, c, false, v) }
func (b *Backend) Uniform4fv(l int32, c int32, v []float32) { b.floats("Uniform4fv", l, c, false, v) }

func (b *Backend) ints(name string, l, count int32, v []int32) {
	b.setUniform(name, l, UniformValue{Count: count, Ints: append([]int32(nil), v...)})
}

func (b *Backend) Uniform1iv(l int32, c int32, v []int32) { b.ints("Uniform1iv", l, c, v) }
func (b *Backend) Uniform2iv(l int32, c int32, v []int32) { b.ints("Uniform2iv", l, c, v) }
func (b *Backend) Uniform3iv(l int32, c int32, v []int32) { b.ints("Uniform3iv", l, c, v) }
func (b *Backend) Uniform4iv(l int32, c int32, v []int32) { b.ints("Uniform4iv", l, c, v) }

func (b *Backend) uints(name string, l, count int32, v []uint32) {
	b.setUniform(name, l, UniformValue{Count: count, Uints: append([]uint32(nil), v...)})
}

func (b *Backend) Uniform1uiv(l int32, c int32, v []uint32) { b.uints("Uniform1uiv", l, c, v) }
func (b *Backend) Uniform2uiv(l int32, c int32, v []uint32) { b.uints("Uniform2uiv", l, c, v) }
func (b *Backend) Uniform3uiv(l int32, c int32, v []uint32) { b.uints("Uniform3uiv", l, c, v) }
func (b *Backend) Uniform4uiv(l int32, c int32, v []uint32) { b.uints("Uniform4uiv", l, c, v) }

func (b *Backend) UniformMatrix2fv(l int32, c int32, t bool, v []float32) {
	b.floats("UniformMatrix2fv", l, c, t, v)
}
func (b *Backend) UniformMatrix3fv(l int32, c int32, t bool, v []float32) {
	b.floats("UniformMatrix3fv", l, c, t, v)
}
func (b *Backend) UniformMatrix4fv(l int32, c int32, t bool, v []float32) {
	b.floats("UniformMatrix4fv", l, c, t, v)
}
func (b *Backend) UniformMatrix2x3fv(l int32, c int32, t bool, v []float32) {
	b.floats("UniformMatrix2x3fv", l, c, t, v)
}
func (b *Backend) UniformMatrix3x2fv(l int32, c int32, t bool, v []float32) {
	b.floats("UniformMatrix3x2fv", l, c, t, v)
}
func (b *Backend) UniformMatrix2x4fv(l int32, c int32, t bool, v []float32) {
	b.floats("UniformMatrix2x4fv", l, c, t, v)
}
func (b *Backend) UniformMatrix4x2fv(l int32, c int32, t bool, v []float32) {
	b.floats("UniformMatrix4x2fv", l, c, t, v)
}
func (b *Backend) UniformMatrix3x4fv(l int32, c int32, t bool, v []float32) {
	b.floats("UniformMatrix3x4fv", l, c, t, v)
}
func (b *Backend) UniformMatrix4x3fv(l int32, c int32, t bool, v []float32) {
	b.floats("UniformMatrix4x3fv", l, c, t, v)
}
