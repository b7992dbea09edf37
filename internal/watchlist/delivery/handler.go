package delivery

import (
	"errors"
	"net/http"

	authdomain "cosmic-watch-backend/internal/auth/domain"
	"cosmic-watch-backend/internal/watchlist/dto"
	"cosmic-watch-backend/internal/watchlist/usecase"

	"github.com/gin-gonic/gin"
)

type WatchlistHandler struct {
	watchlistUsecase usecase.WatchlistUsecase
}

func NewWatchlistHandler(watchlistUsecase usecase.WatchlistUsecase) *WatchlistHandler {
	return &WatchlistHandler{watchlistUsecase: watchlistUsecase}
}

// Add puts an asteroid on the user's watchlist.
// POST /api/watchlist
func (h *WatchlistHandler) Add(c *gin.Context) {
	var req dto.AddWatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID := c.GetString("userID")
	entry := authdomain.WatchlistEntry{
		AsteroidID:      req.AsteroidID,
		Name:            req.Name,
		AlertThresholds: req.AlertThresholds,
	}
	watchlist, err := h.watchlistUsecase.Add(userID, entry)
	if err != nil {
		if errors.Is(err, usecase.ErrAlreadyWatched) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Asteroid already in watchlist"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, watchlist)
}

// Get returns the user's watchlist.
// GET /api/watchlist
func (h *WatchlistHandler) Get(c *gin.Context) {
	watchlist, err := h.watchlistUsecase.Get(c.GetString("userID"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, watchlist)
}

// Remove takes an asteroid off the watchlist. Removing an id that is not
// on the list still returns 200 with the current list.
// DELETE /api/watchlist/:id
func (h *WatchlistHandler) Remove(c *gin.Context) {
	watchlist, err := h.watchlistUsecase.Remove(c.GetString("userID"), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, watchlist)
}
