package controllers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vivamau/diet-tracker/services"
)

// respondError converts a service error into the REST error contract:
// validation and conflict → 400, not-found → 404, upstream → 502, anything
// else → 500 with a generic body.
func respondError(c *gin.Context, err error) {
	switch {
	case services.IsValidation(err), services.IsConflict(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case services.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case services.IsUpstream(err):
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
	default:
		slog.Error("request failed", "method", c.Request.Method, "path", c.Request.URL.Path, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "unexpected server error"})
	}
}
