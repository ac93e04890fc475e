package zones

import (
	"github.com/jonas-p/go-shp"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/preset-maps/internal/extract"
)

// DBF character fields cap out at 255 bytes; leave one for safety.
const maxNameAttr = 254

// ExportShapefile writes the zone's features as a point shapefile at path
// (one point per feature at the geometry envelope midpoint, with a NAME
// attribute). Features without decodable geometry are skipped. Returns the
// number of points written.
func ExportShapefile(r ZoneResult, path string) (int, error) {
	w, err := shp.Create(path, shp.POINT)
	if err != nil {
		return 0, eris.Wrapf(err, "zones: create shapefile %s", path)
	}
	defer w.Close()

	if err := w.SetFields([]shp.Field{shp.StringField("NAME", maxNameAttr)}); err != nil {
		return 0, eris.Wrap(err, "zones: set shapefile fields")
	}

	written := 0
	for _, f := range r.Features {
		g, err := decodeGeometry(f)
		if err != nil {
			zap.L().Debug("zones: skipping feature in shapefile export",
				zap.String("zone", r.Zone.Name),
				zap.Error(err),
			)
			continue
		}
		if g == nil || len(g.FlatCoords()) == 0 {
			continue
		}

		bounds := g.Bounds()
		row := int(w.Write(&shp.Point{
			X: (bounds.Min(0) + bounds.Max(0)) / 2,
			Y: (bounds.Min(1) + bounds.Max(1)) / 2,
		}))

		name, _ := extract.Name(f)
		if len(name) > maxNameAttr {
			name = name[:maxNameAttr]
		}
		if err := w.WriteAttribute(row, 0, name); err != nil {
			return written, eris.Wrapf(err, "zones: write NAME attribute for %q", name)
		}
		written++
	}

	return written, nil
}
