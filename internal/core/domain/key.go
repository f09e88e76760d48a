package domain

import (
	"path/filepath"
	"strings"
)

// DefaultExtension is the file extension appended to names when none is given.
const DefaultExtension = ".php"

// allSlotSuffix separates multi-result slots from single-result slots of the
// same key. NUL cannot appear in a name, a directory hint or an extension.
const allSlotSuffix = "\x00all"

// Key is the normalized lookup key for a name, relative to every search path.
type Key string

// NewKey builds the key for a directory hint, a name and an extension.
// Both '/' and '\' become the platform separator and leading separators are
// stripped, so equal inputs always produce equal keys.
func NewKey(dirHint, name, ext string) Key {
	if ext == "" {
		ext = DefaultExtension
	}

	dir := strings.Trim(normalizeSeparators(dirHint), string(filepath.Separator))
	name = strings.TrimLeft(normalizeSeparators(name), string(filepath.Separator))

	if dir == "" {
		return Key(name + ext)
	}
	return Key(dir + string(filepath.Separator) + name + ext)
}

// String returns the key as a path suffix.
func (k Key) String() string {
	return string(k)
}

// Slot returns the cache slot of the key. Single-result and multi-result
// lookups of the same key never share a slot.
func (k Key) Slot(all bool) string {
	if all {
		return string(k) + allSlotSuffix
	}
	return string(k)
}

// ClassPath maps a class identifier to a relative path. Namespace separators
// (PSR-4) and underscores (PSR-0, PEAR) become directory separators.
func ClassPath(class string) string {
	class = strings.TrimLeft(class, `\`)
	return strings.NewReplacer(`\`, string(filepath.Separator), "_", string(filepath.Separator)).Replace(class)
}

func normalizeSeparators(p string) string {
	return strings.NewReplacer("/", string(filepath.Separator), `\`, string(filepath.Separator)).Replace(p)
}
