package serve

import (
	"fmt"
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/nordicwalking/trailview/catalog"
	"github.com/nordicwalking/trailview/config"
	"github.com/nordicwalking/trailview/filesystem"
	"github.com/spf13/cobra"
)

func RunServeCmd(cmd *cobra.Command, args []string) error {
	tracksDirectory := config.TracksDirectory()
	if !filesystem.IsDirectory(tracksDirectory) {
		log.Printf("tracks directory '%s' does not exist, serving an empty list", tracksDirectory)
	}

	store := catalog.NewStore(tracksDirectory, catalog.StoreOptions{
		Locale:   config.DisplayLocale(),
		MaxBytes: config.MaxBytes(),
	})

	api, err := newServeAPI(store, config.SampleCount(), config.MaxBytes())
	if err != nil {
		return err
	}

	r := newRouter(api, config.AllowedOrigins())

	address := config.ServerAddress()
	log.Printf("serving tracks from '%s' on %s", tracksDirectory, address)

	return r.Run(address)
}

func newRouter(api *serveAPI, allowedOrigins []string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery(), requestID())

	if len(allowedOrigins) > 0 {
		r.Use(cors.New(corsConfig(allowedOrigins)))
	}

	r.GET("/health", api.ServeHealth)
	r.GET("/api/tracks", api.ServeTracks)
	r.GET("/api/tracks/:slug", api.ServeTrack)

	return r
}

func corsConfig(allowedOrigins []string) cors.Config {
	cfg := cors.DefaultConfig()
	cfg.AllowMethods = []string{"GET", "HEAD", "OPTIONS"}
	cfg.AddAllowHeaders(requestIDHeader)
	cfg.AddExposeHeaders(requestIDHeader)

	for _, origin := range allowedOrigins {
		if origin == "*" {
			cfg.AllowAllOrigins = true
			return cfg
		}
	}

	cfg.AllowOrigins = allowedOrigins
	return cfg
}

type serveAPI struct {
	store       *catalog.Store
	sampleCount int
	maxBytes    int64
}

func newServeAPI(store *catalog.Store, sampleCount int, maxBytes int64) (*serveAPI, error) {
	if sampleCount <= 0 {
		return nil, fmt.Errorf("sample count must be positive, got %d", sampleCount)
	}

	return &serveAPI{
		store:       store,
		sampleCount: sampleCount,
		maxBytes:    maxBytes,
	}, nil
}
