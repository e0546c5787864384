package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"accreditation-api/services"
)

var documentService *services.DocumentService

// Init wires the document service used by the handlers. Called once
// from main before the router starts serving.
func Init(svc *services.DocumentService) {
	documentService = svc
}

// respondError maps the service error taxonomy onto HTTP status codes.
// Unrecognized errors are storage/database failures: logged, 500.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": err.Error()})
	case errors.Is(err, services.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"success": false, "message": err.Error()})
	default:
		log.Printf("Error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Internal server error"})
	}
}
