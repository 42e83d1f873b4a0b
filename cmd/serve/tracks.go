package serve

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/nordicwalking/trailview/catalog"
	"github.com/nordicwalking/trailview/geotrack"
)

type problem struct {
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail"`
}

func abortWithProblem(c *gin.Context, status int, title string, err error) {
	_ = c.Error(err)
	c.AbortWithStatusJSON(status, problem{Title: title, Status: status, Detail: err.Error()})
}

func (api *serveAPI) ServeHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (api *serveAPI) ServeTracks(c *gin.Context) {
	tracks, err := api.store.List()
	if err != nil {
		abortWithProblem(c, http.StatusInternalServerError, "Error listing tracks", err)
		return
	}

	c.JSON(http.StatusOK, tracks)
}

func (api *serveAPI) ServeTrack(c *gin.Context) {
	slug := c.Param("slug")
	rid := c.GetString(requestIDKey)

	count := api.sampleCount
	if q := c.Query("count"); q != "" {
		n, err := strconv.Atoi(q)
		if err != nil || n <= 0 {
			err = fmt.Errorf("%w: count must be a positive integer, got %q", geotrack.ErrInvalidArgument, q)
			abortWithProblem(c, http.StatusBadRequest, "Invalid count", err)
			return
		}
		count = n
	}

	log.Printf("[api %s] request for track %s", rid, slug)

	trackPath, err := api.store.Path(slug)
	if errors.Is(err, catalog.ErrNotFound) {
		log.Printf("[api %s] track not found: %s", rid, slug)
		c.String(http.StatusNotFound, "GPX file %s.gpx not found", slug)
		return
	}
	if err != nil {
		abortWithProblem(c, http.StatusInternalServerError, "Error listing tracks", err)
		return
	}

	log.Printf("[api %s] converting %s to %d points", rid, trackPath, count)

	points, err := geotrack.Convert(trackPath, count, api.maxBytes)
	if errors.Is(err, geotrack.ErrInvalidArgument) {
		abortWithProblem(c, http.StatusBadRequest, "Invalid count", err)
		return
	}
	if err != nil {
		log.Printf("[api %s] error: %v", rid, err)
		abortWithProblem(c, http.StatusInternalServerError, "Error parsing GPX", err)
		return
	}

	log.Printf("[api %s] sending %d points", rid, len(points))
	c.JSON(http.StatusOK, points)
}
