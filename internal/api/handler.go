package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/zakhtar/go-mobility-map/internal/config"
	"github.com/zakhtar/go-mobility-map/internal/dashboard"
	"github.com/zakhtar/go-mobility-map/internal/dataset"
	"github.com/zakhtar/go-mobility-map/internal/render"
	"github.com/zakhtar/go-mobility-map/internal/repository"
)

// maxRouteLimit caps the optional limit param. The dashboard never sends a
// limit; this exists for other API consumers.
const maxRouteLimit = 10000

type Handler struct {
	repo repository.RouteRepository
	ds   *dataset.Dataset
	cfg  *config.Config
}

func NewHandler(repo repository.RouteRepository, ds *dataset.Dataset, cfg *config.Config) *Handler {
	return &Handler{
		repo: repo,
		ds:   ds,
		cfg:  cfg,
	}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/api/routes", h.getRoutes)
	r.GET("/api/meta", h.getMeta)
	r.GET("/health", h.health)
}

// getRoutes serves the drawables for one (time index, source, destination)
// selection as GeoJSON. All three params are required; the time index must
// come from /api/meta, so an out-of-range value is a caller bug and gets a
// 400 rather than an empty result.
func (h *Handler) getRoutes(c *gin.Context) {
	tParam := c.Query("t")
	if tParam == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing query parameter t"})
		return
	}
	idx, err := strconv.Atoi(tParam)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "query parameter t must be an integer"})
		return
	}
	at, err := h.ds.Times.At(idx)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	source := c.Query("source")
	if source == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing query parameter source"})
		return
	}
	destination := c.Query("destination")
	if destination == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing query parameter destination"})
		return
	}

	filter := repository.Filter{
		At:                  &at,
		SourceCategory:      &source,
		DestinationCategory: &destination,
	}
	if l := c.Query("limit"); l != "" {
		if lim, err := strconv.Atoi(l); err == nil && lim > 0 && lim <= maxRouteLimit {
			filter.Limit = lim
		}
	}

	records, err := h.repo.ListRoutes(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "failed to fetch routes",
		})
		return
	}

	fc := toGeoJSON(render.ToDrawables(records))
	c.Header("Content-Type", "application/geo+json")
	c.JSON(http.StatusOK, fc)
}

// getMeta serves everything a client needs to build the dashboard controls:
// the dropdown options, the slider timeline, and the initial map view.
func (h *Handler) getMeta(c *gin.Context) {
	count, err := h.repo.Count(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "failed to count routes",
		})
		return
	}

	times := h.ds.Times.Times()
	timeline := make([]gin.H, 0, len(times))
	for i, t := range times {
		timeline = append(timeline, gin.H{
			"index": i,
			"label": dataset.SlotLabel(t),
			"time":  t,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"title":                  dashboard.PageTitle,
		"source_categories":      h.ds.SourceCategories,
		"destination_categories": h.ds.DestinationCategories,
		"timeline":               timeline,
		"center":                 []float64{h.cfg.Map.CenterLat, h.cfg.Map.CenterLon},
		"zoom":                   h.cfg.Map.Zoom,
		"routes":                 count,
	})
}

func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
