package handler

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/micronlogivdev/iftaway/internal/export"
	"github.com/micronlogivdev/iftaway/internal/ifta"
	"github.com/micronlogivdev/iftaway/internal/service"
	"github.com/micronlogivdev/iftaway/internal/store"
)

// ErrorResponse is the body of every failed request
type ErrorResponse struct {
	Error string `json:"error"`
}

// InfoResponse is returned when a report cannot be built from the data at hand
type InfoResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// respondError maps service errors to status codes
func respondError(c *gin.Context, err error) {
	var importErr *export.ImportError
	switch {
	case errors.Is(err, ifta.ErrInsufficientData):
		c.JSON(http.StatusOK, InfoResponse{Status: "insufficient_data", Message: err.Error()})
	case errors.As(err, &importErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "rows": importErr.Rows})
	case errors.Is(err, export.ErrInvalidImport),
		errors.Is(err, service.ErrInvalidEntry),
		errors.Is(err, service.ErrInvalidPeriod):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, service.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrEmailTaken):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		log.Printf("[API] %s %s: %v", c.Request.Method, c.FullPath(), err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// pathID parses a positive integer path parameter
func pathID(c *gin.Context, name string) (int, bool) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
		return 0, false
	}
	return id, true
}
