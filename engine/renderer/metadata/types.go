package metadata

/** @brief Scalar element types for vertex attributes, buffers and index data. */
type ScalarType uint8

const (
	ScalarByte ScalarType = iota
	ScalarUnsignedByte
	ScalarShort
	ScalarUnsignedShort
	ScalarInt
	ScalarUnsignedInt
	ScalarHalfFloat
	ScalarFloat
	ScalarDouble
	ScalarFixed
)

var scalarTypeNames = []string{
	"Byte", "UnsignedByte", "Short", "UnsignedShort", "Int",
	"UnsignedInt", "HalfFloat", "Float", "Double", "Fixed",
}

var scalarTypeSizes = []int{1, 1, 2, 2, 4, 4, 2, 4, 8, 4}

// Size is the width of one element in bytes.
func (t ScalarType) Size() int {
	if int(t) < len(scalarTypeSizes) {
		return scalarTypeSizes[t]
	}
	return 0
}

func (t ScalarType) String() string { return nameOf(scalarTypeNames, t, "ScalarType") }

func (t *ScalarType) UnmarshalText(text []byte) (err error) {
	*t, err = parseName[ScalarType](scalarTypeNames, text, "scalar type")
	return err
}
