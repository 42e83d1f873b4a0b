package config

import (
	"github.com/goodsign/monday"
	"github.com/spf13/viper"
)

var (
	KeyTracksDirectory   = "tracks.directory"
	KeyTracksSampleCount = "tracks.sample-count"
	KeyTracksMaxBytes    = "tracks.max-bytes"
	KeyServerAddress     = "server.address"
	KeyAllowedOrigins    = "server.allowed-origins"
	KeyDisplayLocale     = "display.locale"
)

// SetDefaults registers the default value of every key.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyTracksDirectory, DefaultTracksDirectory())
	v.SetDefault(KeyTracksSampleCount, DefaultSampleCount())
	v.SetDefault(KeyTracksMaxBytes, DefaultMaxBytes())
	v.SetDefault(KeyServerAddress, ":8080")
	v.SetDefault(KeyAllowedOrigins, []string{"*"})
	v.SetDefault(KeyDisplayLocale, string(monday.LocaleEnUS))
}

func init() {
	SetDefaults(viper.GetViper())
}

func TracksDirectory() string {
	return viper.GetString(KeyTracksDirectory)
}

// SampleCount is the number of points a track is downsampled to before it
// is served.
func SampleCount() int {
	return viper.GetInt(KeyTracksSampleCount)
}

func MaxBytes() int64 {
	return viper.GetInt64(KeyTracksMaxBytes)
}

func ServerAddress() string {
	return viper.GetString(KeyServerAddress)
}

func AllowedOrigins() []string {
	return viper.GetStringSlice(KeyAllowedOrigins)
}

// DisplayLocale is the locale track dates are formatted in. Unknown locales
// format like en_US.
func DisplayLocale() monday.Locale {
	return monday.Locale(viper.GetString(KeyDisplayLocale))
}

func DefaultTracksDirectory() string {
	return "GpxSources"
}

func DefaultSampleCount() int {
	return 20
}

func DefaultMaxBytes() int64 {
	return 32 << 20
}
