// Package extract derives display names from GeoJSON feature properties.
package extract

import (
	"sort"
	"strings"

	"github.com/sells-group/preset-maps/internal/geojson"
)

// Key probe order. OSM-derived GeoJSON is inconsistent about where the name
// lives, so a fixed priority list is tried top-level first, then inside a
// nested tags object. Probing is case-sensitive: "Name" only matches when
// "name" is absent or empty.
var (
	propertyKeys = []string{"name", "Name", "NAME", "display_name", "alt_name", "short_name"}
	tagKeys      = []string{"name", "Name", "NAME"}
)

// Name returns the feature's display name: the first string value under the
// probe keys that is non-empty after trimming whitespace. The second return
// is false when no key matched.
func Name(f *geojson.Feature) (string, bool) {
	if f == nil {
		return "", false
	}

	for _, key := range propertyKeys {
		if s, ok := stringValue(f.Properties[key]); ok {
			return s, true
		}
	}

	tags, _ := f.Properties["tags"].(map[string]any)
	for _, key := range tagKeys {
		if s, ok := stringValue(tags[key]); ok {
			return s, true
		}
	}

	return "", false
}

// UniqueNames returns the distinct names across features, sorted
// lexicographically. Features without a name are skipped.
func UniqueNames(features []*geojson.Feature) []string {
	seen := make(map[string]struct{})
	names := make([]string, 0, len(features))
	for _, f := range features {
		n, ok := Name(f)
		if !ok {
			continue
		}
		if _, dup := seen[n]; dup {
			continue
		}
		seen[n] = struct{}{}
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

func stringValue(v any) (string, bool) {
	s, ok := v.(string)
	if !ok {
		return "", false
	}
	s = strings.TrimSpace(s)
	return s, s != ""
}
