package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"accreditation-api/services"
)

// GetDashboardStats returns per-status document counts plus the list
// behind the selected summary tile. Counts are always computed over
// the full snapshot; the optional status query only narrows the list.
func GetDashboardStats(c *gin.Context) {
	docs, err := documentService.List()
	if err != nil {
		respondError(c, err)
		return
	}

	stats := services.AggregateDocuments(docs)

	filtered := docs
	if status := c.Query("status"); status != "" && status != "total" {
		filtered = services.FilterDocuments(docs, services.DocumentQuery{Status: status})
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"stats":   stats,
		"data":    filtered,
	})
}
