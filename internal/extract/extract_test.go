package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sells-group/preset-maps/internal/geojson"
)

func feat(props map[string]any) *geojson.Feature {
	return &geojson.Feature{Type: "Feature", Properties: props}
}

func TestName(t *testing.T) {
	tests := []struct {
		name  string
		props map[string]any
		want  string
		ok    bool
	}{
		{
			"plain name",
			map[string]any{"name": "32 Stata Center"},
			"32 Stata Center", true,
		},
		{
			"trims whitespace",
			map[string]any{"name": "  W7 Baker House \n"},
			"W7 Baker House", true,
		},
		{
			"name beats Name",
			map[string]any{"name": "lower", "Name": "upper"},
			"lower", true,
		},
		{
			"empty name falls through to Name",
			map[string]any{"name": "   ", "Name": "upper"},
			"upper", true,
		},
		{
			"display_name after case variants",
			map[string]any{"NAME": "", "display_name": "E1 Gray House"},
			"E1 Gray House", true,
		},
		{
			"short_name last resort",
			map[string]any{"short_name": "W20"},
			"W20", true,
		},
		{
			"non-string value skipped",
			map[string]any{"name": 42.0, "alt_name": "Walker Memorial"},
			"Walker Memorial", true,
		},
		{
			"nested tags fallback",
			map[string]any{"tags": map[string]any{"name": "NW30 The Warehouse"}},
			"NW30 The Warehouse", true,
		},
		{
			"top-level beats tags",
			map[string]any{"alt_name": "top", "tags": map[string]any{"name": "nested"}},
			"top", true,
		},
		{
			"tags not a mapping",
			map[string]any{"tags": "not a map"},
			"", false,
		},
		{
			"tags only whitespace",
			map[string]any{"tags": map[string]any{"NAME": "  "}},
			"", false,
		},
		{
			"no candidate keys",
			map[string]any{"building": "yes"},
			"", false,
		},
		{
			"nil properties",
			nil,
			"", false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Name(feat(tt.props))
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNameNilFeature(t *testing.T) {
	_, ok := Name(nil)
	assert.False(t, ok)
}

func TestUniqueNames(t *testing.T) {
	features := []*geojson.Feature{
		feat(map[string]any{"name": "W7 Baker House"}),
		feat(map[string]any{"name": "E1 Gray House"}),
		feat(map[string]any{"name": "W7 Baker House"}), // duplicate
		feat(map[string]any{"building": "yes"}),        // nameless
		feat(map[string]any{"name": "10"}),
	}

	names := UniqueNames(features)
	assert.Equal(t, []string{"10", "E1 Gray House", "W7 Baker House"}, names)
}

func TestUniqueNamesEmpty(t *testing.T) {
	assert.Empty(t, UniqueNames(nil))
}
