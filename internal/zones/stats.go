package zones

import (
	"bytes"

	"github.com/twpayne/go-geom"
	geomjson "github.com/twpayne/go-geom/encoding/geojson"
	"go.uber.org/zap"

	"github.com/sells-group/preset-maps/internal/geojson"
)

// BBox is a WGS84 bounding box in lng/lat order.
type BBox struct {
	MinLng float64 `json:"min_lng"`
	MinLat float64 `json:"min_lat"`
	MaxLng float64 `json:"max_lng"`
	MaxLat float64 `json:"max_lat"`
}

// ZoneStats summarizes one zone's matched features.
type ZoneStats struct {
	Zone         string `json:"zone"`
	Features     int    `json:"features"`
	MatchedNames int    `json:"matched_names"`
	MissingNames int    `json:"missing_names"`
	SkippedGeoms int    `json:"skipped_geoms"`
	BBox         *BBox  `json:"bbox,omitempty"`
}

var nullJSON = []byte("null")

// Stats computes counts and the geometry envelope for a zone result. idx is
// the name index the partition was built from; it determines which wanted
// names matched. Features whose geometry is absent or fails to decode are
// counted as skipped, never an error.
func Stats(r ZoneResult, idx map[string][]*geojson.Feature) ZoneStats {
	st := ZoneStats{Zone: r.Zone.Name, Features: len(r.Features)}

	seen := make(map[string]struct{}, len(r.Zone.Wanted))
	for _, name := range r.Zone.Wanted {
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		if len(idx[name]) > 0 {
			st.MatchedNames++
		} else {
			st.MissingNames++
		}
	}

	for _, f := range r.Features {
		g, err := decodeGeometry(f)
		if err != nil {
			zap.L().Debug("zones: skipping undecodable geometry",
				zap.String("zone", r.Zone.Name),
				zap.Error(err),
			)
			st.SkippedGeoms++
			continue
		}
		if g == nil || len(g.FlatCoords()) == 0 {
			st.SkippedGeoms++
			continue
		}
		st.BBox = extendBBox(st.BBox, g.Bounds())
	}

	return st
}

// decodeGeometry parses a feature's raw geometry. Absent and null
// geometries return nil, nil.
func decodeGeometry(f *geojson.Feature) (geom.T, error) {
	raw := bytes.TrimSpace(f.Geometry)
	if len(raw) == 0 || bytes.Equal(raw, nullJSON) {
		return nil, nil
	}
	var g geom.T
	if err := geomjson.Unmarshal(raw, &g); err != nil {
		return nil, err
	}
	return g, nil
}

func extendBBox(b *BBox, bounds *geom.Bounds) *BBox {
	if b == nil {
		return &BBox{
			MinLng: bounds.Min(0),
			MinLat: bounds.Min(1),
			MaxLng: bounds.Max(0),
			MaxLat: bounds.Max(1),
		}
	}
	b.MinLng = min(b.MinLng, bounds.Min(0))
	b.MinLat = min(b.MinLat, bounds.Min(1))
	b.MaxLng = max(b.MaxLng, bounds.Max(0))
	b.MaxLat = max(b.MaxLat, bounds.Max(1))
	return b
}
