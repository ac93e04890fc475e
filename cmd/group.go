package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/preset-maps/internal/extract"
	"github.com/sells-group/preset-maps/internal/geojson"
	"github.com/sells-group/preset-maps/internal/runlog"
	"github.com/sells-group/preset-maps/internal/zones"
)

var groupCmd = &cobra.Command{
	Use:   "group",
	Short: "Split the campus collection into per-zone GeoJSON files",
	Long:  "Extracts building names from the input collection, prints the unique-name report, and writes mit-main/mit-west/mit-east GeoJSON files.",
	RunE: func(cmd *cobra.Command, _ []string) error {
		input, _ := cmd.Flags().GetString("input")
		outDir, _ := cmd.Flags().GetString("out-dir")
		zonesPath, _ := cmd.Flags().GetString("zones")
		logDB, _ := cmd.Flags().GetString("log-db")

		if input == "" {
			input = cfg.Input
		}
		if outDir == "" {
			outDir = cfg.OutDir
		}
		if logDB == "" {
			logDB = cfg.RunLog.Path
		}

		return runGroup(cmd.Context(), input, outDir, zonesPath, logDB)
	},
}

func init() {
	groupCmd.Flags().String("input", "", "input GeoJSON path (default mit-all.geojson)")
	groupCmd.Flags().String("out-dir", "", "output directory (default: directory of the input file)")
	groupCmd.Flags().String("zones", "", "YAML file overriding zone membership lists")
	groupCmd.Flags().String("log-db", "", "sqlite run log path (empty: disabled)")
	rootCmd.AddCommand(groupCmd)
}

func runGroup(ctx context.Context, input, outDir, zonesPath, logDB string) error {
	started := time.Now().UTC()

	if _, err := os.Stat(input); os.IsNotExist(err) {
		fmt.Printf("File not found: %s\n", input)
		return nil
	}

	fc, err := geojson.Load(input)
	if err != nil {
		return eris.Wrap(err, "group")
	}
	if outDir == "" {
		outDir = filepath.Dir(input)
	}

	names := extract.UniqueNames(fc.Features)
	fmt.Printf("Found %d unique names:\n", len(names))
	for _, n := range names {
		fmt.Println(n)
	}

	zs, err := loadZones(zonesPath)
	if err != nil {
		return eris.Wrap(err, "group")
	}

	counts := make(map[string]int, len(zs))
	for _, r := range zones.Partition(fc.Features, zs) {
		path, err := r.Write(outDir)
		if err != nil {
			return eris.Wrap(err, "group")
		}
		counts[r.Zone.Name] = len(r.Features)
		fmt.Printf("Wrote %d features to %s\n", len(r.Features), path)
	}

	if logDB != "" {
		if err := recordRun(ctx, logDB, runlog.Entry{
			Input:       input,
			UniqueNames: len(names),
			ZoneCounts:  counts,
			Status:      "complete",
			StartedAt:   started,
			CompletedAt: time.Now().UTC(),
		}); err != nil {
			return err
		}
	}

	zap.L().Info("grouping complete",
		zap.String("input", input),
		zap.Int("unique_names", len(names)),
		zap.Int("features", len(fc.Features)),
	)
	return nil
}

// loadZones returns the embedded zones, with overrides applied when a YAML
// path was given.
func loadZones(zonesPath string) ([]zones.Zone, error) {
	zs := zones.Zones()
	if zonesPath == "" {
		return zs, nil
	}
	return zones.ApplyOverrides(zs, zonesPath)
}

func recordRun(ctx context.Context, logDB string, e runlog.Entry) error {
	l, err := runlog.Open(logDB)
	if err != nil {
		return eris.Wrap(err, "group: open run log")
	}
	defer func() { _ = l.Close() }()

	id, err := l.Record(ctx, e)
	if err != nil {
		return eris.Wrap(err, "group: record run")
	}
	zap.L().Debug("run recorded", zap.String("run_id", id), zap.String("db", logDB))
	return nil
}
