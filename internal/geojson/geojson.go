// Package geojson holds the minimal GeoJSON model the partitioner needs:
// an ordered FeatureCollection whose features carry opaque geometry and a
// string-keyed properties map. Geometry is never interpreted here, only
// passed through byte-for-byte.
package geojson

import (
	"encoding/json"
	"os"

	"github.com/rotisserie/eris"
)

// TypeFeatureCollection is the required top-level GeoJSON type.
const TypeFeatureCollection = "FeatureCollection"

// Feature is one GeoJSON feature. Geometry and ID are opaque raw JSON so
// output files reproduce the input exactly; only Properties is inspected.
type Feature struct {
	Type       string          `json:"type"`
	ID         json.RawMessage `json:"id,omitempty"`
	Geometry   json.RawMessage `json:"geometry,omitempty"`
	Properties map[string]any  `json:"properties,omitempty"`
}

// FeatureCollection wraps an ordered list of features.
type FeatureCollection struct {
	Type     string     `json:"type"`
	Features []*Feature `json:"features"`
}

// Decode parses a GeoJSON document and validates the top-level shape: a
// mapping with type "FeatureCollection" and a features array (which may be
// empty). Feature order is preserved.
func Decode(data []byte) (*FeatureCollection, error) {
	var raw struct {
		Type     string      `json:"type"`
		Features *[]*Feature `json:"features"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, eris.Wrap(err, "geojson: decode")
	}
	if raw.Type != TypeFeatureCollection {
		return nil, eris.Errorf("geojson: unexpected top-level type %q", raw.Type)
	}
	if raw.Features == nil {
		return nil, eris.New("geojson: missing features array")
	}
	return &FeatureCollection{Type: raw.Type, Features: *raw.Features}, nil
}

// Load reads and decodes the GeoJSON file at path.
func Load(path string) (*FeatureCollection, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrapf(err, "geojson: read %s", path)
	}
	return Decode(data)
}

// Write serializes fc to path, pretty-printed with 2-space indentation and
// non-ASCII characters preserved literally. A nil feature slice is written
// as an empty array.
func Write(path string, fc *FeatureCollection) error {
	out := *fc
	if out.Features == nil {
		out.Features = []*Feature{}
	}

	f, err := os.Create(path)
	if err != nil {
		return eris.Wrapf(err, "geojson: create %s", path)
	}

	enc := json.NewEncoder(f)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(&out); err != nil {
		_ = f.Close()
		return eris.Wrapf(err, "geojson: encode %s", path)
	}

	if err := f.Close(); err != nil {
		return eris.Wrapf(err, "geojson: close %s", path)
	}
	return nil
}
