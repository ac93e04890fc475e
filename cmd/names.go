package main

import (
	"fmt"
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/sells-group/preset-maps/internal/extract"
	"github.com/sells-group/preset-maps/internal/geojson"
)

var namesCmd = &cobra.Command{
	Use:   "names",
	Short: "Print the sorted unique building names in the input",
	RunE: func(cmd *cobra.Command, _ []string) error {
		input, _ := cmd.Flags().GetString("input")
		if input == "" {
			input = cfg.Input
		}
		return runNames(input)
	},
}

func init() {
	namesCmd.Flags().String("input", "", "input GeoJSON path (default mit-all.geojson)")
	rootCmd.AddCommand(namesCmd)
}

func runNames(input string) error {
	if _, err := os.Stat(input); os.IsNotExist(err) {
		fmt.Printf("File not found: %s\n", input)
		return nil
	}

	fc, err := geojson.Load(input)
	if err != nil {
		return eris.Wrap(err, "names")
	}

	names := extract.UniqueNames(fc.Features)
	fmt.Printf("Found %d unique names:\n", len(names))
	for _, n := range names {
		fmt.Println(n)
	}
	return nil
}
