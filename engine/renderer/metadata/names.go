package metadata

import (
	"fmt"
	"strings"

	"github.com/spaghettifunk/ace/engine/core"
)

type enum interface {
	~uint8
}

func nameOf[T enum](names []string, v T, kind string) string {
	if int(v) < len(names) {
		return names[v]
	}
	return fmt.Sprintf("%s(%d)", kind, uint8(v))
}

// parseName matches text against names ignoring case, dashes and underscores.
func parseName[T enum](names []string, text []byte, kind string) (T, error) {
	want := normalizeName(string(text))
	for i, name := range names {
		if normalizeName(name) == want {
			return T(i), nil
		}
	}
	return 0, &core.UnknownNameError{Kind: kind, Name: string(text)}
}

func normalizeName(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, "_", "")
	return strings.ReplaceAll(s, "-", "")
}
