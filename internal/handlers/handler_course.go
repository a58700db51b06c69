package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	portssvc "github.com/eni-training/course_management_app/internal/core/ports/services"
	"github.com/eni-training/course_management_app/internal/dto"
	"github.com/eni-training/course_management_app/internal/middleware"
)

// CourseHandler handles course catalog requests.
type CourseHandler struct {
	courseService portssvc.CourseSvcFacade
}

// NewCourseHandler creates a new CourseHandler.
func NewCourseHandler(cs portssvc.CourseSvcFacade) *CourseHandler {
	return &CourseHandler{courseService: cs}
}

// registerCourseRoutes sets up the /cursos routes. The full catalog, the
// per-area listing and the linked-users listing are public; the
// visibility-filtered listing requires a token; writes are administrator
// only.
func registerCourseRoutes(rg *gin.RouterGroup, jwtSecret string, courseService portssvc.CourseSvcFacade) {
	h := NewCourseHandler(courseService)

	cursos := rg.Group("/cursos")
	{
		cursos.GET("", h.ListCourses)
		cursos.GET("/area/:areaId", h.ListCoursesByArea)
		cursos.GET("/:id/usuarios", h.ListLinkedUsers)

		authed := cursos.Group("", middleware.AuthMiddleware(jwtSecret))
		{
			authed.GET("/mine", h.ListVisibleCourses)

			admin := authed.Group("", middleware.RequireAdmin())
			{
				admin.POST("", h.CreateCourse)
				admin.PUT("/:id", h.UpdateCourse)
				admin.DELETE("/:id", h.DeleteCourse)
			}
		}
	}
}

// ListCourses godoc
// @Summary List all courses
// @Description Returns every course, newest first.
// @Tags cursos
// @Produce json
// @Success 200 {array} domain.Course
// @Failure 500 {object} ErrorResponse
// @Router /cursos [get]
func (h *CourseHandler) ListCourses(c *gin.Context) {
	courses, err := h.courseService.ListCourses(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, courses)
}

// ListCoursesByArea godoc
// @Summary List courses of one area
// @Tags cursos
// @Produce json
// @Param areaId path int true "Area ID"
// @Success 200 {array} domain.Course
// @Failure 400 {object} ErrorResponse
// @Router /cursos/area/{areaId} [get]
func (h *CourseHandler) ListCoursesByArea(c *gin.Context) {
	areaID, err := strconv.ParseInt(c.Param("areaId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid area id"})
		return
	}

	courses, err := h.courseService.ListCoursesByArea(c.Request.Context(), areaID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, courses)
}

// ListVisibleCourses godoc
// @Summary List courses visible to the caller
// @Description Administrators see all courses; other roles only courses of their own area. Callers without an area see none.
// @Tags cursos
// @Produce json
// @Security BearerAuth
// @Success 200 {array} domain.Course
// @Failure 401 {object} ErrorResponse
// @Router /cursos/mine [get]
func (h *CourseHandler) ListVisibleCourses(c *gin.Context) {
	claims, ok := middleware.GetClaimsFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Authentication required", Code: "TOKEN_REQUIRED"})
		return
	}

	courses, err := h.courseService.ListVisibleCourses(c.Request.Context(), claims.UserID, claims.Role)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, courses)
}

// ListLinkedUsers godoc
// @Summary List users linked to a course
// @Description Returns the users whose area membership links them to the course.
// @Tags cursos
// @Produce json
// @Param id path int true "Course ID"
// @Success 200 {array} dto.UserResponse
// @Failure 404 {object} ErrorResponse
// @Router /cursos/{id}/usuarios [get]
func (h *CourseHandler) ListLinkedUsers(c *gin.Context) {
	courseID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid course id", Code: "INVALID_COURSE_ID"})
		return
	}

	users, err := h.courseService.ListLinkedUsers(c.Request.Context(), courseID)
	if err != nil {
		respondError(c, err)
		return
	}

	responses := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		responses = append(responses, dto.ToUserResponse(&users[i]))
	}
	c.JSON(http.StatusOK, responses)
}

// CreateCourse godoc
// @Summary Create a course
// @Description Creates a course and links every user of its area to it. Administrator only.
// @Tags cursos
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param course body dto.CreateCourseRequest true "Course data"
// @Success 201 {object} domain.Course
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Router /cursos [post]
func (h *CourseHandler) CreateCourse(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Authentication required", Code: "TOKEN_REQUIRED"})
		return
	}

	var req dto.CreateCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "All fields are required", Code: "MISSING_FIELDS"})
		return
	}

	course, err := h.courseService.CreateCourse(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	logger.Info("course created", slog.Int64("course_id", course.ID))
	c.JSON(http.StatusCreated, course)
}

// UpdateCourse godoc
// @Summary Update a course
// @Description Partially updates a course; changing the area rebuilds its user links. Administrator only.
// @Tags cursos
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Course ID"
// @Param course body dto.UpdateCourseRequest true "Fields to update"
// @Success 200 {object} domain.Course
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /cursos/{id} [put]
func (h *CourseHandler) UpdateCourse(c *gin.Context) {
	courseID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid course id", Code: "INVALID_COURSE_ID"})
		return
	}

	var req dto.UpdateCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	course, err := h.courseService.UpdateCourse(c.Request.Context(), courseID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, course)
}

// DeleteCourse godoc
// @Summary Delete a course
// @Description Deletes a course; its enrollments and user links cascade. Administrator only.
// @Tags cursos
// @Produce json
// @Security BearerAuth
// @Param id path int true "Course ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} ErrorResponse
// @Router /cursos/{id} [delete]
func (h *CourseHandler) DeleteCourse(c *gin.Context) {
	courseID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid course id", Code: "INVALID_COURSE_ID"})
		return
	}

	if err := h.courseService.DeleteCourse(c.Request.Context(), courseID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"mensaje": "Curso eliminado exitosamente", "id": courseID})
}
