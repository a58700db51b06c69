package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/eni-training/course_management_app/internal/core/ports/services"
	"github.com/eni-training/course_management_app/internal/dto"
	"github.com/eni-training/course_management_app/internal/middleware"
)

// EnrollmentHandler handles enrollment requests.
type EnrollmentHandler struct {
	enrollmentService portssvc.EnrollmentSvcFacade
}

// NewEnrollmentHandler creates a new EnrollmentHandler.
func NewEnrollmentHandler(es portssvc.EnrollmentSvcFacade) *EnrollmentHandler {
	return &EnrollmentHandler{enrollmentService: es}
}

// registerEnrollmentRoutes sets up the /inscripciones routes. All of them
// require authentication.
func registerEnrollmentRoutes(rg *gin.RouterGroup, jwtSecret string, enrollmentService portssvc.EnrollmentSvcFacade) {
	h := NewEnrollmentHandler(enrollmentService)

	inscripciones := rg.Group("/inscripciones", middleware.AuthMiddleware(jwtSecret))
	{
		inscripciones.POST("", h.Enroll)
		inscripciones.GET("/usuario", h.ListMyEnrollments)
	}
}

// Enroll godoc
// @Summary Enroll in a course
// @Description Creates an active enrollment for the caller. Formador users may hold at most one active enrollment.
// @Tags inscripciones
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param enrollment body dto.EnrollRequest true "Course to enroll in"
// @Success 201 {object} domain.Enrollment
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /inscripciones [post]
func (h *EnrollmentHandler) Enroll(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Authentication required", Code: "TOKEN_REQUIRED"})
		return
	}

	var req dto.EnrollRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid course id", Code: "INVALID_COURSE_ID"})
		return
	}

	enrollment, err := h.enrollmentService.Enroll(c.Request.Context(), userID, req.CourseID)
	if err != nil {
		respondError(c, err)
		return
	}

	logger.Info("enrollment created", slog.Int64("course_id", req.CourseID))
	c.JSON(http.StatusCreated, enrollment)
}

// ListMyEnrollments godoc
// @Summary List own enrollments
// @Description Returns the caller's enrollments, newest first, each with a course snapshot.
// @Tags inscripciones
// @Produce json
// @Security BearerAuth
// @Success 200 {array} domain.EnrollmentWithCourse
// @Failure 401 {object} ErrorResponse
// @Router /inscripciones/usuario [get]
func (h *EnrollmentHandler) ListMyEnrollments(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Authentication required", Code: "TOKEN_REQUIRED"})
		return
	}

	enrollments, err := h.enrollmentService.ListUserEnrollments(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, enrollments)
}
