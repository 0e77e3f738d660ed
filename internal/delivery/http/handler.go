package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/skinlens/backend/internal/domain"
	"github.com/skinlens/backend/internal/usecase"
)

// Handler holds dependencies for HTTP handlers
type Handler struct {
	recommendations *usecase.RecommendationService
	routines        *usecase.RoutineService
	defaultTopN     int
	defaultPerStep  int
}

// NewHandler creates a new HTTP handler
func NewHandler(
	recommendations *usecase.RecommendationService,
	routines *usecase.RoutineService,
	defaultTopN, defaultPerStep int,
) *Handler {
	return &Handler{
		recommendations: recommendations,
		routines:        routines,
		defaultTopN:     defaultTopN,
		defaultPerStep:  defaultPerStep,
	}
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "skinlens-backend",
		"version": "1.0.0",
	})
}

// recommendRequest is the body of POST /api/v1/recommendations.
type recommendRequest struct {
	Query string `json:"query"`
	TopN  int    `json:"topN"`
}

// Recommend handles recommendation requests: free-text query in, ranked
// product list out.
func (h *Handler) Recommend(c *gin.Context) {
	var req recommendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	topN := req.TopN
	if topN <= 0 {
		topN = h.defaultTopN
	}

	result, err := h.recommendations.Recommend(c.Request.Context(), req.Query, topN)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidQuery) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "query must not be empty"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "recommendation failed"})
		return
	}

	c.JSON(http.StatusOK, result)
}

// Routine handles GET /api/v1/routines/:skinType. The optional "limit"
// query parameter caps products per step.
func (h *Handler) Routine(c *gin.Context) {
	skinType := c.Param("skinType")

	perStep := h.defaultPerStep
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a positive integer"})
			return
		}
		perStep = parsed
	}

	routine, err := h.routines.Routine(skinType, perStep)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUnknownSkinType):
			c.JSON(http.StatusNotFound, gin.H{"error": "skin type not found"})
		case errors.Is(err, domain.ErrNoProducts):
			c.JSON(http.StatusNotFound, gin.H{"error": "no products found for this skin type"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "routine lookup failed"})
		}
		return
	}

	c.JSON(http.StatusOK, routine)
}
