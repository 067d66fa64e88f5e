package loaders

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spaghettifunk/ace/engine/core"
	"github.com/spaghettifunk/ace/engine/math"
)

/** @brief Surface properties read from an .amt material file. */
type MaterialConfig struct {
	Name       string
	ShaderName string

	AmbientColour  math.Vec3
	DiffuseColour  math.Vec3
	SpecularColour math.Vec3
	Shininess      float32
	Dissolve       float32
	OpticalDensity float32

	AmbientMapName   string
	DiffuseMapName   string
	SpecularMapName  string
	NormalMapName    string
	ShininessMapName string
	DissolveMapName  string

	// Extra holds keys the loader does not know about.
	Extra map[string]string
}

// LoadMaterial parses and validates the .amt file at path.
func LoadMaterial(path string) (*MaterialConfig, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("load material: %w", err)
	}
	defer file.Close()

	cfg, err := ParseMaterial(file)
	if err != nil {
		return nil, fmt.Errorf("material %s: %w", path, err)
	}
	return cfg, nil
}

// ParseMaterial reads key = value lines. Blank lines and lines starting with
// # are skipped.
func ParseMaterial(r io.Reader) (*MaterialConfig, error) {
	scanner := bufio.NewScanner(r)
	cfg := &MaterialConfig{
		Dissolve:       1,
		OpticalDensity: 1,
		Extra:          make(map[string]string),
	}

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			core.LogWarn("skipping invalid material line", "line", lineNo, "text", line)
			continue
		}
		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])

		var err error
		switch key {
		case "name":
			cfg.Name = value
		case "shader":
			cfg.ShaderName = value
		case "ambient_colour":
			cfg.AmbientColour, err = parseVec3(value)
		case "diffuse_colour":
			cfg.DiffuseColour, err = parseVec3(value)
		case "specular_colour":
			cfg.SpecularColour, err = parseVec3(value)
		case "shininess":
			cfg.Shininess, err = parseFloat(value)
		case "dissolve":
			cfg.Dissolve, err = parseFloat(value)
		case "optical_density":
			cfg.OpticalDensity, err = parseFloat(value)
		case "ambient_map_name":
			cfg.AmbientMapName = value
		case "diffuse_map_name":
			cfg.DiffuseMapName = value
		case "specular_map_name":
			cfg.SpecularMapName = value
		case "normal_map_name":
			cfg.NormalMapName = value
		case "shininess_map_name":
			cfg.ShininessMapName = value
		case "dissolve_map_name":
			cfg.DissolveMapName = value
		default:
			core.LogDebug("unknown material key kept as extra", "key", key)
			cfg.Extra[key] = value
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid %s: %w", lineNo, key, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if err := validateMaterial(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func parseFloat(s string) (float32, error) {
	f, err := strconv.ParseFloat(s, 32)
	return float32(f), err
}

func parseVec3(s string) (math.Vec3, error) {
	fields := strings.Fields(s)
	if len(fields) != 3 {
		return math.Vec3{}, fmt.Errorf("expected 3 values, got %d", len(fields))
	}
	var v [3]float32
	for i, f := range fields {
		x, err := parseFloat(f)
		if err != nil {
			return math.Vec3{}, err
		}
		v[i] = x
	}
	return math.NewVec3(v[0], v[1], v[2]), nil
}

func validateMaterial(m *MaterialConfig) error {
	if m.Name == "" {
		return fmt.Errorf("material name is required")
	}
	if m.ShaderName == "" {
		return fmt.Errorf("shader name is required")
	}
	for name, c := range map[string]math.Vec3{
		"ambient_colour":  m.AmbientColour,
		"diffuse_colour":  m.DiffuseColour,
		"specular_colour": m.SpecularColour,
	} {
		if !inRange(c.X) || !inRange(c.Y) || !inRange(c.Z) {
			return fmt.Errorf("%s values must be between 0.0 and 1.0", name)
		}
	}
	if m.Shininess < 0 {
		return fmt.Errorf("shininess must be a non-negative value")
	}
	if !inRange(m.Dissolve) {
		return fmt.Errorf("dissolve must be between 0.0 and 1.0")
	}
	if m.OpticalDensity <= 0 {
		return fmt.Errorf("optical_density must be positive")
	}
	return nil
}

func inRange(value float32) bool {
	return value >= 0.0 && value <= 1.0
}
