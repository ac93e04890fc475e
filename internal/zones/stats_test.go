package zones

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/preset-maps/internal/geojson"
)

func pointFeature(name string, lng, lat float64) *geojson.Feature {
	geom, _ := json.Marshal(map[string]any{
		"type":        "Point",
		"coordinates": []float64{lng, lat},
	})
	return &geojson.Feature{
		Type:       "Feature",
		Geometry:   geom,
		Properties: map[string]any{"name": name},
	}
}

func TestStatsBBox(t *testing.T) {
	features := []*geojson.Feature{
		pointFeature("A", -71.10, 42.35),
		pointFeature("B", -71.08, 42.37),
	}
	zone := Zone{Name: "main", Wanted: []string{"A", "B", "C"}}

	idx := Index(features)
	results := Partition(features, []Zone{zone})
	st := Stats(results[0], idx)

	assert.Equal(t, "main", st.Zone)
	assert.Equal(t, 2, st.Features)
	assert.Equal(t, 2, st.MatchedNames)
	assert.Equal(t, 1, st.MissingNames)
	assert.Equal(t, 0, st.SkippedGeoms)

	require.NotNil(t, st.BBox)
	assert.InDelta(t, -71.10, st.BBox.MinLng, 1e-9)
	assert.InDelta(t, 42.35, st.BBox.MinLat, 1e-9)
	assert.InDelta(t, -71.08, st.BBox.MaxLng, 1e-9)
	assert.InDelta(t, 42.37, st.BBox.MaxLat, 1e-9)
}

func TestStatsSkipsBadGeometry(t *testing.T) {
	features := []*geojson.Feature{
		pointFeature("A", -71.09, 42.36),
		{
			Type:       "Feature",
			Geometry:   json.RawMessage(`{"type": "Banana"}`),
			Properties: map[string]any{"name": "A"},
		},
		{
			Type:       "Feature",
			Properties: map[string]any{"name": "A"},
		},
	}
	zone := Zone{Name: "east", Wanted: []string{"A"}}

	idx := Index(features)
	st := Stats(Partition(features, []Zone{zone})[0], idx)

	assert.Equal(t, 3, st.Features)
	assert.Equal(t, 2, st.SkippedGeoms)
	require.NotNil(t, st.BBox)
	assert.InDelta(t, -71.09, st.BBox.MinLng, 1e-9)
}

func TestStatsEmptyZone(t *testing.T) {
	zone := Zone{Name: "west", Wanted: []string{"missing"}}
	st := Stats(Partition(nil, []Zone{zone})[0], Index(nil))

	assert.Equal(t, 0, st.Features)
	assert.Equal(t, 0, st.MatchedNames)
	assert.Equal(t, 1, st.MissingNames)
	assert.Nil(t, st.BBox)
}

func TestStatsDuplicateWantedCountedOnce(t *testing.T) {
	features := []*geojson.Feature{pointFeature("A", -71.0, 42.0)}
	zone := Zone{Name: "main", Wanted: []string{"A", "A", "B", "B"}}

	idx := Index(features)
	st := Stats(Partition(features, []Zone{zone})[0], idx)

	assert.Equal(t, 1, st.MatchedNames)
	assert.Equal(t, 1, st.MissingNames)
}
