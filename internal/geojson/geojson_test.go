package geojson

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeValid(t *testing.T) {
	data := []byte(`{
		"type": "FeatureCollection",
		"features": [
			{"type": "Feature", "geometry": {"type": "Point", "coordinates": [1, 2]}, "properties": {"name": "A"}},
			{"type": "Feature", "geometry": null, "properties": {"name": "B"}}
		]
	}`)

	fc, err := Decode(data)
	require.NoError(t, err)

	assert.Equal(t, TypeFeatureCollection, fc.Type)
	require.Len(t, fc.Features, 2)
	assert.Equal(t, "A", fc.Features[0].Properties["name"])
	assert.Equal(t, "B", fc.Features[1].Properties["name"])
}

func TestDecodeEmptyFeatures(t *testing.T) {
	fc, err := Decode([]byte(`{"type": "FeatureCollection", "features": []}`))
	require.NoError(t, err)
	assert.Empty(t, fc.Features)
}

func TestDecodeRejectsBadShape(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"top-level array", `[{"type": "Feature"}]`},
		{"wrong type", `{"type": "Feature", "features": []}`},
		{"missing features", `{"type": "FeatureCollection"}`},
		{"not json", `{`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode([]byte(tt.data))
			assert.Error(t, err)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.geojson"))
	assert.Error(t, err)
}

func TestWriteFormat(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.geojson")

	fc := &FeatureCollection{
		Type: TypeFeatureCollection,
		Features: []*Feature{
			{Type: "Feature", Properties: map[string]any{"name": "Café <Central>"}},
		},
	}
	require.NoError(t, Write(path, fc))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	content := string(data)
	assert.Contains(t, content, "  \"type\": \"FeatureCollection\"", "2-space indentation")
	assert.Contains(t, content, "Café <Central>", "non-ASCII and angle brackets kept literal")
	assert.NotContains(t, content, `\u`)
}

func TestWriteNilFeaturesAsEmptyArray(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.geojson")
	require.NoError(t, Write(path, &FeatureCollection{Type: TypeFeatureCollection}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"features": []`)
	assert.NotContains(t, string(data), "null")
}

func TestWriteIdempotent(t *testing.T) {
	dir := t.TempDir()
	fc := &FeatureCollection{
		Type: TypeFeatureCollection,
		Features: []*Feature{
			{Type: "Feature", Properties: map[string]any{"name": "32 Stata Center"}},
		},
	}

	first := filepath.Join(dir, "a.geojson")
	second := filepath.Join(dir, "b.geojson")
	require.NoError(t, Write(first, fc))
	require.NoError(t, Write(second, fc))

	a, err := os.ReadFile(first)
	require.NoError(t, err)
	b, err := os.ReadFile(second)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestRoundTripPreservesGeometryAndOrder(t *testing.T) {
	input := `{"type":"FeatureCollection","features":[` +
		`{"type":"Feature","geometry":{"type":"Point","coordinates":[-71.09,42.36]},"properties":{"name":"first"}},` +
		`{"type":"Feature","geometry":{"type":"Point","coordinates":[-71.08,42.35]},"properties":{"name":"second"}}]}`

	fc, err := Decode([]byte(input))
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "rt.geojson")
	require.NoError(t, Write(path, fc))

	again, err := Load(path)
	require.NoError(t, err)
	require.Len(t, again.Features, 2)
	assert.Equal(t, "first", again.Features[0].Properties["name"])
	assert.Equal(t, "second", again.Features[1].Properties["name"])
	assert.True(t, strings.Contains(string(again.Features[0].Geometry), "-71.09"))
}
