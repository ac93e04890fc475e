// Package zones partitions campus features into the fixed zone presets.
package zones

import (
	"path/filepath"

	"github.com/rotisserie/eris"

	"github.com/sells-group/preset-maps/internal/extract"
	"github.com/sells-group/preset-maps/internal/geojson"
)

// Zone pairs a label with its wanted building names. Wanted order is the
// declaration order of the source list and fixes the feature order in the
// zone's output; membership is set semantics, so duplicate entries are
// ignored after the first.
type Zone struct {
	Name   string   `yaml:"name"`
	Wanted []string `yaml:"wanted"`
}

// ZoneResult is the ordered feature slice matched for one zone.
type ZoneResult struct {
	Zone     Zone
	Features []*geojson.Feature
}

// Zones returns the three campus zones in output order. The lists are
// static data; callers must not mutate them.
func Zones() []Zone {
	return []Zone{
		{Name: "main", Wanted: mainBuildings},
		{Name: "west", Wanted: westBuildings},
		{Name: "east", Wanted: eastBuildings},
	}
}

// Index maps each extracted name to the features carrying it, preserving
// the original feature order within each name. Nameless features are
// excluded.
func Index(features []*geojson.Feature) map[string][]*geojson.Feature {
	idx := make(map[string][]*geojson.Feature)
	for _, f := range features {
		n, ok := extract.Name(f)
		if !ok {
			continue
		}
		idx[n] = append(idx[n], f)
	}
	return idx
}

// Partition assigns features to zones. Each zone's features appear in
// wanted-name declaration order, then original feature order within a name.
// Wanted names with no matching feature contribute nothing.
func Partition(features []*geojson.Feature, zones []Zone) []ZoneResult {
	idx := Index(features)

	results := make([]ZoneResult, 0, len(zones))
	for _, z := range zones {
		seen := make(map[string]struct{}, len(z.Wanted))
		var out []*geojson.Feature
		for _, name := range z.Wanted {
			if _, dup := seen[name]; dup {
				continue
			}
			seen[name] = struct{}{}
			out = append(out, idx[name]...)
		}
		results = append(results, ZoneResult{Zone: z, Features: out})
	}
	return results
}

// OutputPath returns the GeoJSON output path for a zone under outDir.
func OutputPath(outDir, zone string) string {
	return filepath.Join(outDir, "mit-"+zone+".geojson")
}

// Write serializes the zone's features as a FeatureCollection under outDir
// and returns the path written.
func (r ZoneResult) Write(outDir string) (string, error) {
	path := OutputPath(outDir, r.Zone.Name)
	fc := &geojson.FeatureCollection{
		Type:     geojson.TypeFeatureCollection,
		Features: r.Features,
	}
	if err := geojson.Write(path, fc); err != nil {
		return "", eris.Wrapf(err, "zones: write %s", r.Zone.Name)
	}
	return path, nil
}
