package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/preset-maps/internal/config"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "preset-maps",
	Short: "Partition campus GeoJSON into zone preset maps",
	Long:  "Reads a campus-wide GeoJSON feature collection, extracts building names, and splits features into fixed per-zone files used as map presets.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = c

		if err := config.InitLogger(cfg.Log); err != nil {
			return fmt.Errorf("init logger: %w", err)
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = zap.L().Sync()
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
