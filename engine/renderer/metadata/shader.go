package metadata

/** @brief The pipeline stage a shader compiles for. */
type ShaderKind uint8

const (
	VertexShader ShaderKind = iota
	TessControlShader
	TessEvaluationShader
	GeometryShader
	FragmentShader
)

var shaderKindNames = []string{"Vertex", "TessControl", "TessEvaluation", "Geometry", "Fragment"}

func (k ShaderKind) String() string { return nameOf(shaderKindNames, k, "ShaderKind") }

func (k *ShaderKind) UnmarshalText(text []byte) (err error) {
	*k, err = parseName[ShaderKind](shaderKindNames, text, "shader kind")
	return err
}
