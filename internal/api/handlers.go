package api

import (
	"context"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/Mohib75/study-syncer-server/internal/auth"
	"github.com/Mohib75/study-syncer-server/internal/config"
	"github.com/Mohib75/study-syncer-server/internal/models"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const healthTimeout = 2 * time.Second

// Handler holds dependencies for handlers
type Handler struct {
	cfg      *config.Config
	tokens   *auth.TokenManager
	stores   Stores
	payments PaymentProvider
	health   HealthChecker
}

// NewHandler creates a new handler
func NewHandler(
	cfg *config.Config,
	tokens *auth.TokenManager,
	stores Stores,
	payments PaymentProvider,
	health HealthChecker,
) *Handler {
	return &Handler{
		cfg:      cfg,
		tokens:   tokens,
		stores:   stores,
		payments: payments,
		health:   health,
	}
}

func (h *Handler) Root(c *gin.Context) {
	c.String(http.StatusOK, "StudySyncer server is running")
}

func (h *Handler) Health(c *gin.Context) {
	if h.health != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), healthTimeout)
		defer cancel()

		if err := h.health.Ping(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status": "unhealthy",
			})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "healthy",
	})
}

func badRequest(c *gin.Context, msg, code string) {
	c.JSON(http.StatusBadRequest, models.ErrorResponse{
		Error: msg,
		Code:  code,
	})
}

func notFound(c *gin.Context, what string) {
	c.JSON(http.StatusNotFound, models.ErrorResponse{
		Error: what + " not found",
		Code:  "NOT_FOUND",
	})
}

// internalError hands err to ErrorHandlerMiddleware, which logs it and
// writes the 500 response.
func internalError(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}

// objectIDParam parses the :id path segment, answering 400 itself when it is
// not a 24 character hex string.
func objectIDParam(c *gin.Context) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		badRequest(c, "invalid id", "INVALID_ID")
		return primitive.NilObjectID, false
	}
	return id, true
}

// parsePage reads the page/size query. Without size the whole collection is
// listed; page defaults to 0.
func parsePage(c *gin.Context) (*models.Page, error) {
	pageRaw, sizeRaw := c.Query("page"), c.Query("size")
	if pageRaw == "" && sizeRaw == "" {
		return nil, nil
	}
	if sizeRaw == "" {
		return nil, fmt.Errorf("size is required when page is set")
	}

	size, err := strconv.ParseInt(sizeRaw, 10, 64)
	if err != nil || size < 1 {
		return nil, fmt.Errorf("size must be a positive integer")
	}

	var page int64
	if pageRaw != "" {
		page, err = strconv.ParseInt(pageRaw, 10, 64)
		if err != nil || page < 0 {
			return nil, fmt.Errorf("page must be a non-negative integer")
		}
		if page > math.MaxInt64/size {
			return nil, fmt.Errorf("page is out of range")
		}
	}

	return &models.Page{Number: page, Size: size}, nil
}
