package main

import (
	"fmt"
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/sells-group/preset-maps/internal/geojson"
	"github.com/sells-group/preset-maps/internal/zones"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print per-zone match counts and bounding boxes",
	RunE: func(cmd *cobra.Command, _ []string) error {
		input, _ := cmd.Flags().GetString("input")
		zonesPath, _ := cmd.Flags().GetString("zones")
		if input == "" {
			input = cfg.Input
		}
		return runStats(input, zonesPath)
	},
}

func init() {
	statsCmd.Flags().String("input", "", "input GeoJSON path (default mit-all.geojson)")
	statsCmd.Flags().String("zones", "", "YAML file overriding zone membership lists")
	rootCmd.AddCommand(statsCmd)
}

func runStats(input, zonesPath string) error {
	if _, err := os.Stat(input); os.IsNotExist(err) {
		fmt.Printf("File not found: %s\n", input)
		return nil
	}

	fc, err := geojson.Load(input)
	if err != nil {
		return eris.Wrap(err, "stats")
	}

	zs, err := loadZones(zonesPath)
	if err != nil {
		return eris.Wrap(err, "stats")
	}

	idx := zones.Index(fc.Features)
	for _, r := range zones.Partition(fc.Features, zs) {
		st := zones.Stats(r, idx)
		fmt.Printf("%s: %d features, %d names matched, %d missing", st.Zone, st.Features, st.MatchedNames, st.MissingNames)
		if st.SkippedGeoms > 0 {
			fmt.Printf(", %d geometries skipped", st.SkippedGeoms)
		}
		if st.BBox != nil {
			fmt.Printf(", bbox [%.6f, %.6f, %.6f, %.6f]", st.BBox.MinLng, st.BBox.MinLat, st.BBox.MaxLng, st.BBox.MaxLat)
		}
		fmt.Println()
	}
	return nil
}
