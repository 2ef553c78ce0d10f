package api

import (
	"fmt"
	"net/http"

	"github.com/Mohib75/study-syncer-server/internal/models"
	"github.com/gin-gonic/gin"
)

func (h *Handler) ListCourses(c *gin.Context) {
	page, err := parsePage(c)
	if err != nil {
		badRequest(c, err.Error(), "INVALID_PAGINATION")
		return
	}

	courses, err := h.stores.Courses.List(c.Request.Context(), page)
	if err != nil {
		internalError(c, err)
		return
	}

	c.JSON(http.StatusOK, courses)
}

func (h *Handler) GetCourse(c *gin.Context) {
	id, ok := objectIDParam(c)
	if !ok {
		return
	}

	course, err := h.stores.Courses.GetByID(c.Request.Context(), id)
	if err != nil {
		internalError(c, fmt.Errorf("course %s: %w", id.Hex(), err))
		return
	}
	if course == nil {
		notFound(c, "course")
		return
	}

	c.JSON(http.StatusOK, course)
}

func (h *Handler) CountCourses(c *gin.Context) {
	count, err := h.stores.Courses.Count(c.Request.Context())
	if err != nil {
		internalError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.CountResponse{Count: count})
}

func (h *Handler) CreateCourse(c *gin.Context) {
	var course models.Course
	if err := c.ShouldBindJSON(&course); err != nil {
		badRequest(c, "Invalid request body", "INVALID_REQUEST")
		return
	}

	result, err := h.stores.Courses.Create(c.Request.Context(), &course)
	if err != nil {
		internalError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *Handler) ListMyCourses(c *gin.Context) {
	enrollments, err := h.stores.Enrollments.ListByEmail(c.Request.Context(), c.Param("email"))
	if err != nil {
		internalError(c, err)
		return
	}

	c.JSON(http.StatusOK, enrollments)
}

// EnrollCourse records a purchase. Email and courseId are required.
func (h *Handler) EnrollCourse(c *gin.Context) {
	var enrollment models.EnrolledCourse
	if err := c.ShouldBindJSON(&enrollment); err != nil {
		badRequest(c, "email and courseId are required", "INVALID_REQUEST")
		return
	}

	result, err := h.stores.Enrollments.Create(c.Request.Context(), &enrollment)
	if err != nil {
		internalError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
