package api

import (
	"net/http"
	"time"

	"github.com/Mohib75/study-syncer-server/internal/auth"
	"github.com/Mohib75/study-syncer-server/internal/config"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func SetupRoutes(
	cfg *config.Config,
	tokens *auth.TokenManager,
	stores Stores,
	payments PaymentProvider,
	health HealthChecker,
) *gin.Engine {
	router := gin.New()

	// Create handler
	handler := NewHandler(cfg, tokens, stores, payments, health)
	guard := SessionGuard(tokens)

	// Middleware
	router.Use(gin.Recovery())
	router.Use(RequestIDMiddleware())
	router.Use(RequestLoggerMiddleware())
	router.Use(MetricsMiddleware())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", requestIDHeader},
		ExposeHeaders:    []string{requestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	router.Use(ErrorHandlerMiddleware())

	router.GET("/", handler.Root)
	router.GET("/health", handler.Health)

	// Session
	router.POST("/jwt", handler.IssueToken)
	router.POST("/logout", handler.Logout)

	// Assignments
	router.GET("/assignment", handler.ListAssignments)
	router.GET("/assignment/:id", handler.GetAssignment)
	router.GET("/assignmentCount", handler.CountAssignments)
	router.POST("/assignment", guard, handler.CreateAssignment)
	router.PUT("/assignment/:id", guard, handler.UpdateAssignment)
	router.DELETE("/assignment/:id", guard, handler.DeleteAssignment)

	// Submissions
	router.GET("/submittedAssignment", guard, handler.ListSubmissions)
	router.GET("/submittedAssignment/:id", guard, handler.GetSubmission)
	router.GET("/mySubmittedAssignment/:email", guard, handler.ListMySubmissions)
	router.POST("/submittedAssignment", guard, handler.CreateSubmission)
	router.PUT("/submittedAssignment/:id", guard, handler.GradeSubmission)

	// Courses
	router.GET("/courses", handler.ListCourses)
	router.GET("/courses/:id", handler.GetCourse)
	router.GET("/courseCount", handler.CountCourses)
	router.POST("/courses", guard, handler.CreateCourse)
	router.GET("/myCourses/:email", guard, handler.ListMyCourses)
	router.POST("/enrolledCourses", guard, handler.EnrollCourse)

	// Payments
	router.POST("/create-payment-intent", guard, handler.CreatePaymentIntent)

	return router
}
