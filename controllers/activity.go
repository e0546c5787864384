package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetActivities returns the audit log, most recent first.
func GetActivities(c *gin.Context) {
	entries, err := documentService.Activities()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": entries})
}
