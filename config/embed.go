package config

import (
	"embed"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Dir is the on-disk directory whose files override the embedded defaults.
const Dir = "config"

//go:embed *.yaml scripts/*.tengo
var configFS embed.FS

// Load returns the named file, preferring the on-disk copy under Dir.
func Load(name string) ([]byte, error) {
	clean := cleanPath(name)
	if data, err := os.ReadFile(diskPath(clean)); err == nil {
		return data, nil
	}
	return configFS.ReadFile(clean)
}

// LoadScript returns a tengo script from scripts/.
func LoadScript(name string) ([]byte, error) {
	return Load(scriptPath(name))
}

// ModTime reports the modification time of the on-disk copy of name.
func ModTime(name string) (time.Time, bool) {
	info, err := os.Stat(diskPath(cleanPath(name)))
	if err != nil {
		return time.Time{}, false
	}
	return info.ModTime(), true
}

func cleanPath(path string) string {
	if path == "" {
		return ""
	}
	s := filepath.ToSlash(path)
	if after, ok := strings.CutPrefix(s, Dir+"/"); ok {
		s = after
	}
	return s
}

func scriptPath(name string) string {
	s := cleanPath(name)
	if strings.HasPrefix(s, "scripts/") {
		return s
	}
	return "scripts/" + s
}

func diskPath(clean string) string {
	return filepath.Join(Dir, filepath.FromSlash(clean))
}
