package api

import (
	"fmt"
	"net/http"

	"github.com/Mohib75/study-syncer-server/internal/models"
	"github.com/gin-gonic/gin"
)

func (h *Handler) ListSubmissions(c *gin.Context) {
	submissions, err := h.stores.Submissions.List(c.Request.Context())
	if err != nil {
		internalError(c, err)
		return
	}

	c.JSON(http.StatusOK, submissions)
}

func (h *Handler) ListMySubmissions(c *gin.Context) {
	submissions, err := h.stores.Submissions.ListByEmail(c.Request.Context(), c.Param("email"))
	if err != nil {
		internalError(c, err)
		return
	}

	c.JSON(http.StatusOK, submissions)
}

func (h *Handler) GetSubmission(c *gin.Context) {
	id, ok := objectIDParam(c)
	if !ok {
		return
	}

	submission, err := h.stores.Submissions.GetByID(c.Request.Context(), id)
	if err != nil {
		internalError(c, fmt.Errorf("submission %s: %w", id.Hex(), err))
		return
	}
	if submission == nil {
		notFound(c, "submission")
		return
	}

	c.JSON(http.StatusOK, submission)
}

func (h *Handler) CreateSubmission(c *gin.Context) {
	var submission models.SubmittedAssignment
	if err := c.ShouldBindJSON(&submission); err != nil {
		badRequest(c, "Invalid request body", "INVALID_REQUEST")
		return
	}

	result, err := h.stores.Submissions.Create(c.Request.Context(), &submission)
	if err != nil {
		internalError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *Handler) GradeSubmission(c *gin.Context) {
	id, ok := objectIDParam(c)
	if !ok {
		return
	}

	var grade models.GradeUpdate
	if err := c.ShouldBindJSON(&grade); err != nil {
		badRequest(c, "Invalid request body", "INVALID_REQUEST")
		return
	}
	if grade.IsEmpty() {
		badRequest(c, "obtainedMarks or feedback is required", "EMPTY_UPDATE")
		return
	}

	result, err := h.stores.Submissions.Grade(c.Request.Context(), id, grade)
	if err != nil {
		internalError(c, fmt.Errorf("submission %s: %w", id.Hex(), err))
		return
	}

	c.JSON(http.StatusOK, result)
}
