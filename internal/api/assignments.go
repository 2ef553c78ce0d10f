package api

import (
	"fmt"
	"net/http"

	"github.com/Mohib75/study-syncer-server/internal/models"
	"github.com/gin-gonic/gin"
)

func (h *Handler) ListAssignments(c *gin.Context) {
	page, err := parsePage(c)
	if err != nil {
		badRequest(c, err.Error(), "INVALID_PAGINATION")
		return
	}

	assignments, err := h.stores.Assignments.List(c.Request.Context(), page)
	if err != nil {
		internalError(c, err)
		return
	}

	c.JSON(http.StatusOK, assignments)
}

func (h *Handler) GetAssignment(c *gin.Context) {
	id, ok := objectIDParam(c)
	if !ok {
		return
	}

	assignment, err := h.stores.Assignments.GetByID(c.Request.Context(), id)
	if err != nil {
		internalError(c, fmt.Errorf("assignment %s: %w", id.Hex(), err))
		return
	}
	if assignment == nil {
		notFound(c, "assignment")
		return
	}

	c.JSON(http.StatusOK, assignment)
}

func (h *Handler) CountAssignments(c *gin.Context) {
	count, err := h.stores.Assignments.Count(c.Request.Context())
	if err != nil {
		internalError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.CountResponse{Count: count})
}

func (h *Handler) CreateAssignment(c *gin.Context) {
	var assignment models.Assignment
	if err := c.ShouldBindJSON(&assignment); err != nil {
		badRequest(c, "Invalid request body", "INVALID_REQUEST")
		return
	}

	result, err := h.stores.Assignments.Create(c.Request.Context(), &assignment)
	if err != nil {
		internalError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *Handler) UpdateAssignment(c *gin.Context) {
	id, ok := objectIDParam(c)
	if !ok {
		return
	}

	var update models.AssignmentUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		badRequest(c, "Invalid request body", "INVALID_REQUEST")
		return
	}
	if update.IsEmpty() {
		badRequest(c, "no updatable fields supplied", "EMPTY_UPDATE")
		return
	}

	result, err := h.stores.Assignments.Update(c.Request.Context(), id, update)
	if err != nil {
		internalError(c, fmt.Errorf("assignment %s: %w", id.Hex(), err))
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *Handler) DeleteAssignment(c *gin.Context) {
	id, ok := objectIDParam(c)
	if !ok {
		return
	}

	result, err := h.stores.Assignments.Delete(c.Request.Context(), id)
	if err != nil {
		internalError(c, fmt.Errorf("assignment %s: %w", id.Hex(), err))
		return
	}

	c.JSON(http.StatusOK, result)
}
