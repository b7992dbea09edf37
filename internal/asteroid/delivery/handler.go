package delivery

import (
	"errors"
	"net/http"
	"time"

	"cosmic-watch-backend/internal/asteroid/usecase"

	"github.com/gin-gonic/gin"
)

type AsteroidHandler struct {
	asteroidUsecase usecase.AsteroidUsecase
}

func NewAsteroidHandler(asteroidUsecase usecase.AsteroidUsecase) *AsteroidHandler {
	return &AsteroidHandler{asteroidUsecase: asteroidUsecase}
}

// GetFeed ingests and returns the feed for a date range.
// GET /api/neo/feed?start_date=YYYY-MM-DD&end_date=YYYY-MM-DD
func (h *AsteroidHandler) GetFeed(c *gin.Context) {
	// Default to the last 7 days
	start := c.Query("start_date")
	if start == "" {
		start = time.Now().AddDate(0, 0, -7).Format("2006-01-02")
	}
	end := c.Query("end_date")
	if end == "" {
		end = time.Now().Format("2006-01-02")
	}

	asteroids, err := h.asteroidUsecase.FetchFeed(c.Request.Context(), start, end)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, asteroids)
}

// ListStored returns every tracked object ordered by risk score.
// GET /api/neo
func (h *AsteroidHandler) ListStored(c *gin.Context) {
	asteroids, err := h.asteroidUsecase.ListStored()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, asteroids)
}

// GetAsteroid returns one object by its NeoWs id.
// GET /api/neo/:id
func (h *AsteroidHandler) GetAsteroid(c *gin.Context) {
	asteroid, err := h.asteroidUsecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, usecase.ErrAsteroidNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Asteroid not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, asteroid)
}

// Refresh re-ingests today's feed.
// POST /api/neo/refresh
func (h *AsteroidHandler) Refresh(c *gin.Context) {
	count, err := h.asteroidUsecase.Refresh(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Refresh successful", "count": count})
}
