package loaders

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spaghettifunk/ace/engine/math"
)

const brickMaterial = `# brick wall
name = brick
shader = phong

ambient_colour = 0.1 0.1 0.1
diffuse_colour = 0.8 0.4 0.3
specular_colour = 1 1 1
shininess = 32
diffuse_map_name = brick_diffuse
normal_map_name = brick_normal
roughness = 0.7
`

func TestParseMaterial(t *testing.T) {
	cfg, err := ParseMaterial(strings.NewReader(brickMaterial))
	require.NoError(t, err)

	assert.Equal(t, "brick", cfg.Name)
	assert.Equal(t, "phong", cfg.ShaderName)
	assert.Equal(t, math.NewVec3(0.8, 0.4, 0.3), cfg.DiffuseColour)
	assert.Equal(t, float32(32), cfg.Shininess)
	assert.Equal(t, float32(1), cfg.Dissolve)
	assert.Equal(t, float32(1), cfg.OpticalDensity)
	assert.Equal(t, "brick_diffuse", cfg.DiffuseMapName)
	assert.Equal(t, "brick_normal", cfg.NormalMapName)
	assert.Empty(t, cfg.SpecularMapName)
	assert.Equal(t, map[string]string{"roughness": "0.7"}, cfg.Extra)
}

func TestParseMaterialErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
		msg  string
	}{
		{"missing name", "shader = phong\n", "material name is required"},
		{"missing shader", "name = x\n", "shader name is required"},
		{"short colour", "name = x\nshader = y\ndiffuse_colour = 1 1\n", "line 3: invalid diffuse_colour"},
		{"bad float", "name = x\nshader = y\nshininess = shiny\n", "invalid shininess"},
		{"colour out of range", "name = x\nshader = y\nambient_colour = 0 2 0\n", "ambient_colour values must be between"},
		{"negative shininess", "name = x\nshader = y\nshininess = -1\n", "shininess must be a non-negative"},
		{"dissolve out of range", "name = x\nshader = y\ndissolve = 1.5\n", "dissolve must be between"},
		{"zero density", "name = x\nshader = y\noptical_density = 0\n", "optical_density must be positive"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseMaterial(strings.NewReader(tt.body))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}

func TestParseMaterialSkipsMalformedLines(t *testing.T) {
	cfg, err := ParseMaterial(strings.NewReader("name = x\nthis line has no equals\nshader = y\n"))
	require.NoError(t, err)
	assert.Equal(t, "y", cfg.ShaderName)
}

func TestLoadMaterial(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "brick.amt")
	require.NoError(t, os.WriteFile(path, []byte(brickMaterial), 0o644))

	cfg, err := LoadMaterial(path)
	require.NoError(t, err)
	assert.Equal(t, "brick", cfg.Name)

	_, err = LoadMaterial(filepath.Join(dir, "missing.amt"))
	assert.ErrorIs(t, err, fs.ErrNotExist)
}
