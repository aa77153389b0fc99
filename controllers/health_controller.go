package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

// DatabaseInspector reports on the storage connection
type DatabaseInspector interface {
	Ping(ctx context.Context) error
	Tables(ctx context.Context) ([]string, error)
}

// HealthController serves the operational endpoints
type HealthController struct {
	db DatabaseInspector
}

func NewHealthController(db DatabaseInspector) *HealthController {
	return &HealthController{db: db}
}

// HealthCheck handles GET /api/v1/health
func (h *HealthController) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Order Management API is running",
	})
}

// DatabaseStatus handles GET /api/v1/database/status - checks connectivity and lists tables
func (h *HealthController) DatabaseStatus(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.db.Ping(ctx); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_CONNECTION_ERROR",
				"message": "Database connection failed",
			},
		})
		return
	}

	tables, err := h.db.Tables(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_QUERY_ERROR",
				"message": "Failed to query tables",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Database connected",
		"tables":  tables,
	})
}
