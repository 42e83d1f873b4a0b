package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/nordicwalking/trailview/config"
	"github.com/spf13/cobra"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "trailview",
	Short: "Serve GPX tracks as map and elevation profile data",
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	var err error

	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.trailview.yaml)")

	rootCmd.PersistentFlags().StringP("tracks-dir", "r", "", "Directory containing the GPX tracks")
	err = viper.BindPFlag(
		config.KeyTracksDirectory,
		rootCmd.PersistentFlags().Lookup("tracks-dir"),
	)
	if err != nil {
		panic(err)
	}

	rootCmd.PersistentFlags().Int("count", config.DefaultSampleCount(), "Number of points a track is downsampled to")
	err = viper.BindPFlag(
		config.KeyTracksSampleCount,
		rootCmd.PersistentFlags().Lookup("count"),
	)
	if err != nil {
		panic(err)
	}
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := homedir.Dir()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		// Search config in working and home directory with name ".trailview" (without extension).
		if dir, err := os.Getwd(); err == nil {
			viper.AddConfigPath(dir)
		}
		viper.AddConfigPath(home)
		viper.SetConfigName(".trailview")
	}

	viper.SetEnvPrefix("trailview")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}
