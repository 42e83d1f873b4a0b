package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/nordicwalking/trailview/config"
	"github.com/nordicwalking/trailview/geotrack"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v2"
)

// convertCmd represents the convert command
var convertCmd = &cobra.Command{
	Use:   "convert TRACK-FILE",
	Short: "Print the enriched points of a GPX or NMEA track",
	Args:  cobra.ExactArgs(1),
	RunE:  runConvertCmd,
}

var (
	convertAll    bool
	convertFormat string
)

func init() {
	rootCmd.AddCommand(convertCmd)

	convertCmd.Flags().BoolVar(&convertAll, "all", false, "Print every point instead of downsampling")
	convertCmd.Flags().StringVarP(&convertFormat, "format", "f", "json", "Output format, json or yaml")
}

func runConvertCmd(cmd *cobra.Command, args []string) error {
	points, err := convertTrack(args[0], convertAll, config.SampleCount(), config.MaxBytes())
	if err != nil {
		return err
	}

	return writePoints(os.Stdout, points, convertFormat)
}

func convertTrack(trackFilePath string, all bool, count int, maxBytes int64) ([]geotrack.TrackPoint, error) {
	if all {
		count = math.MaxInt
	}

	points, err := geotrack.Convert(trackFilePath, count, maxBytes)
	if err != nil {
		return nil, fmt.Errorf("convert %s: %w", trackFilePath, err)
	}

	return points, nil
}

func writePoints(w io.Writer, points []geotrack.TrackPoint, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(points)
	case "yaml":
		out, err := yaml.Marshal(points)
		if err != nil {
			return err
		}
		_, err = w.Write(out)
		return err
	default:
		return fmt.Errorf("unknown format '%s'", format)
	}
}
