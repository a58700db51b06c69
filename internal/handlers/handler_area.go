package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	portssvc "github.com/eni-training/course_management_app/internal/core/ports/services"
	"github.com/eni-training/course_management_app/internal/dto"
	"github.com/eni-training/course_management_app/internal/middleware"
)

// AreaHandler handles area reference-data requests.
type AreaHandler struct {
	areaService portssvc.AreaSvcFacade
}

// NewAreaHandler creates a new AreaHandler.
func NewAreaHandler(as portssvc.AreaSvcFacade) *AreaHandler {
	return &AreaHandler{areaService: as}
}

// registerAreaRoutes sets up the /areas routes. Listing is public so the
// registration form can offer area codes; writes are administrator only.
func registerAreaRoutes(rg *gin.RouterGroup, jwtSecret string, areaService portssvc.AreaSvcFacade) {
	h := NewAreaHandler(areaService)

	areas := rg.Group("/areas")
	{
		areas.GET("", h.ListAreas)

		admin := areas.Group("", middleware.AuthMiddleware(jwtSecret), middleware.RequireAdmin())
		{
			admin.POST("", h.CreateArea)
			admin.DELETE("/:id", h.DeleteArea)
		}
	}
}

// ListAreas godoc
// @Summary List all areas
// @Tags areas
// @Produce json
// @Success 200 {array} domain.Area
// @Failure 500 {object} ErrorResponse
// @Router /areas [get]
func (h *AreaHandler) ListAreas(c *gin.Context) {
	areas, err := h.areaService.ListAreas(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, areas)
}

// CreateArea godoc
// @Summary Create an area
// @Description Creates a new organizational area. Administrator only.
// @Tags areas
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param area body dto.CreateAreaRequest true "Area data"
// @Success 201 {object} domain.Area
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /areas [post]
func (h *AreaHandler) CreateArea(c *gin.Context) {
	var req dto.CreateAreaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Code and name are required", Code: "MISSING_FIELDS"})
		return
	}

	area, err := h.areaService.CreateArea(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, area)
}

// DeleteArea godoc
// @Summary Delete an area
// @Tags areas
// @Produce json
// @Security BearerAuth
// @Param id path int true "Area ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} ErrorResponse
// @Router /areas/{id} [delete]
func (h *AreaHandler) DeleteArea(c *gin.Context) {
	areaID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid area id"})
		return
	}

	if err := h.areaService.DeleteArea(c.Request.Context(), areaID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"mensaje": "Área eliminada correctamente"})
}
