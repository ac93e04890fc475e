package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/sells-group/preset-maps/internal/geojson"
	"github.com/sells-group/preset-maps/internal/zones"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export per-zone point shapefiles",
	Long:  "Writes one ESRI point shapefile per zone (feature centroids with a NAME attribute) for GIS tools that do not read GeoJSON.",
	RunE: func(cmd *cobra.Command, _ []string) error {
		input, _ := cmd.Flags().GetString("input")
		outDir, _ := cmd.Flags().GetString("out-dir")
		zonesPath, _ := cmd.Flags().GetString("zones")
		if input == "" {
			input = cfg.Input
		}
		if outDir == "" {
			outDir = cfg.OutDir
		}
		return runExport(input, outDir, zonesPath)
	},
}

func init() {
	exportCmd.Flags().String("input", "", "input GeoJSON path (default mit-all.geojson)")
	exportCmd.Flags().String("out-dir", "", "output directory (default: directory of the input file)")
	exportCmd.Flags().String("zones", "", "YAML file overriding zone membership lists")
	rootCmd.AddCommand(exportCmd)
}

func runExport(input, outDir, zonesPath string) error {
	if _, err := os.Stat(input); os.IsNotExist(err) {
		fmt.Printf("File not found: %s\n", input)
		return nil
	}

	fc, err := geojson.Load(input)
	if err != nil {
		return eris.Wrap(err, "export")
	}
	if outDir == "" {
		outDir = filepath.Dir(input)
	}

	zs, err := loadZones(zonesPath)
	if err != nil {
		return eris.Wrap(err, "export")
	}

	for _, r := range zones.Partition(fc.Features, zs) {
		path := filepath.Join(outDir, "mit-"+r.Zone.Name+".shp")
		written, err := zones.ExportShapefile(r, path)
		if err != nil {
			return eris.Wrap(err, "export")
		}
		fmt.Printf("Wrote %d points to %s\n", written, path)
	}
	return nil
}
