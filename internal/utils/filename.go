package utils

import (
	"path/filepath"
	"regexp"
	"strings"
)

var unsafeFileNameChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// SanitizeFileName reduces a client supplied file name to a safe base name:
// directory components are dropped, characters outside [A-Za-z0-9._-] are
// replaced with "_" and leading dots are stripped so the result can never
// address a parent or hidden file. An empty result becomes "file".
func SanitizeFileName(name string) string {
	name = strings.ReplaceAll(name, `\`, "/")
	name = filepath.Base(filepath.Clean("/" + name))
	name = unsafeFileNameChars.ReplaceAllString(name, "_")
	name = strings.TrimLeft(name, ".")

	if name == "" || name == "_" {
		return "file"
	}

	return name
}
