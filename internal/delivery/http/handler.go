package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shopfeed/backend/internal/domain"
	"github.com/shopfeed/backend/internal/usecase"
)

// Handler holds dependencies for HTTP handlers
type Handler struct {
	syncService *usecase.SyncService
}

// NewHandler creates a new HTTP handler
func NewHandler(syncService *usecase.SyncService) *Handler {
	return &Handler{syncService: syncService}
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "shopfeed-backend",
		"version": "1.0.0",
	})
}

// ListBrands returns the configured brands
func (h *Handler) ListBrands(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"brands": h.syncService.Brands(),
	})
}

// SyncBrand runs the scrape-and-merge pipeline for one brand
func (h *Handler) SyncBrand(c *gin.Context) {
	brandTag := c.Param("brand")

	report, err := h.syncService.SyncBrand(c.Request.Context(), brandTag)
	if err != nil {
		status := http.StatusBadGateway
		if errors.Is(err, domain.ErrBrandNotFound) {
			status = http.StatusNotFound
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, report)
}

// SyncAll runs the pipeline for every configured brand
func (h *Handler) SyncAll(c *gin.Context) {
	reports, err := h.syncService.SyncAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"reports": reports})
}

// GetReport returns summary statistics for a brand's persisted table
func (h *Handler) GetReport(c *gin.Context) {
	brandTag := c.Param("brand")

	analysis, err := h.syncService.Analyze(c.Request.Context(), brandTag)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, domain.ErrBrandNotFound) || errors.Is(err, domain.ErrTableNotFound) {
			status = http.StatusNotFound
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, analysis)
}
