package loaders

import (
	"bytes"
	"fmt"
	"os"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// LoadShaderSource reads a GLSL source file as UTF-8 text.
func LoadShaderSource(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("load shader source: %w", err)
	}
	return string(bytes.TrimPrefix(data, utf8BOM)), nil
}
