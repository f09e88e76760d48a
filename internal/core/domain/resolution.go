package domain

import (
	"slices"

	"gopkg.in/yaml.v3"
)

// Resolution is the cached outcome of a lookup: one path, every matching path
// for multi-result lookups, or the NotFound marker.
// The zero value is the single-result NotFound marker.
type Resolution struct {
	paths []string
	multi bool
}

// NotFound is the marker cached for names that resolve to no file.
var NotFound = Resolution{}

// Found returns a single-result resolution for path.
func Found(path string) Resolution {
	return Resolution{paths: []string{path}}
}

// FoundAll returns a multi-result resolution. An empty list is the
// multi-result NotFound marker.
func FoundAll(paths []string) Resolution {
	return Resolution{paths: slices.Clone(paths), multi: true}
}

// Found reports whether at least one file matched.
func (r Resolution) Found() bool {
	return len(r.paths) > 0
}

// Path returns the first matching path, or "" for NotFound.
func (r Resolution) Path() string {
	if len(r.paths) == 0 {
		return ""
	}
	return r.paths[0]
}

// Paths returns every matching path.
func (r Resolution) Paths() []string {
	return slices.Clone(r.paths)
}

// Multi reports whether the resolution came from a multi-result lookup.
func (r Resolution) Multi() bool {
	return r.multi
}

// Equal reports whether two resolutions hold the same outcome.
func (r Resolution) Equal(o Resolution) bool {
	return r.multi == o.multi && slices.Equal(r.paths, o.paths)
}

// MarshalYAML encodes NotFound as null, a single result as a string and a
// multi-result as a sequence.
func (r Resolution) MarshalYAML() (any, error) {
	if r.multi {
		if r.paths == nil {
			return []string{}, nil
		}
		return r.paths, nil
	}
	if !r.Found() {
		return nil, nil
	}
	return r.paths[0], nil
}

// UnmarshalYAML decodes the forms written by MarshalYAML.
// A null node never reaches this method and decodes to the zero value.
func (r *Resolution) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.SequenceNode {
		var paths []string
		if err := value.Decode(&paths); err != nil {
			return err
		}
		*r = FoundAll(paths)
		return nil
	}

	var path string
	if err := value.Decode(&path); err != nil {
		return err
	}
	if path == "" {
		*r = NotFound
		return nil
	}
	*r = Found(path)
	return nil
}
