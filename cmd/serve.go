package cmd

import (
	"github.com/nordicwalking/trailview/cmd/serve"
	"github.com/nordicwalking/trailview/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the track list and downsampled tracks over HTTP",
	RunE:  serve.RunServeCmd,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringP("address", "a", ":8080", "Address to listen on")
	if err := viper.BindPFlag(config.KeyServerAddress, serveCmd.Flags().Lookup("address")); err != nil {
		panic(err)
	}
}
