package delivery

import (
	"net/http"

	"cosmic-watch-backend/internal/alert/usecase"

	"github.com/gin-gonic/gin"
)

type AlertHandler struct {
	alertUsecase usecase.AlertUsecase
}

func NewAlertHandler(alertUsecase usecase.AlertUsecase) *AlertHandler {
	return &AlertHandler{alertUsecase: alertUsecase}
}

// GetAlerts returns the user's alerts plus system-wide ones, newest first.
// GET /api/alerts
func (h *AlertHandler) GetAlerts(c *gin.Context) {
	userID := c.GetString("userID")
	alerts, err := h.alertUsecase.GetAlertsForUser(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, alerts)
}

// GetUnreadAlerts returns the unread subset.
// GET /api/alerts/unread
func (h *AlertHandler) GetUnreadAlerts(c *gin.Context) {
	userID := c.GetString("userID")
	alerts, err := h.alertUsecase.GetUnreadAlertsForUser(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, alerts)
}

// MarkRead flips the read flag on a user-owned alert.
// PUT /api/alerts/:id/read
func (h *AlertHandler) MarkRead(c *gin.Context) {
	userID := c.GetString("userID")
	alert, err := h.alertUsecase.MarkAlertAsRead(c.Param("id"), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if alert == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Alert not found"})
		return
	}
	c.JSON(http.StatusOK, alert)
}

// Dismiss deletes a user-owned alert.
// DELETE /api/alerts/:id
func (h *AlertHandler) Dismiss(c *gin.Context) {
	userID := c.GetString("userID")
	deleted, err := h.alertUsecase.DismissAlert(c.Param("id"), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"error": "Alert not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Alert dismissed"})
}

// TriggerCheck runs the risk-analysis pipeline on demand.
// POST /api/alerts/check
func (h *AlertHandler) TriggerCheck(c *gin.Context) {
	results, err := h.alertUsecase.RunRiskAnalysis(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Risk analysis complete", "results": results})
}
