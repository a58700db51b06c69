package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	portssvc "github.com/eni-training/course_management_app/internal/core/ports/services"
	"github.com/eni-training/course_management_app/internal/dto"
	"github.com/eni-training/course_management_app/internal/middleware"
)

// EvidenceHandler handles evidence listing and moderation requests.
// Submission lives on the user routes; everything here needs a bearer token.
type EvidenceHandler struct {
	evidenceService portssvc.EvidenceSvcFacade
}

// NewEvidenceHandler creates a new EvidenceHandler.
func NewEvidenceHandler(es portssvc.EvidenceSvcFacade) *EvidenceHandler {
	return &EvidenceHandler{evidenceService: es}
}

// registerEvidenceRoutes sets up the /archivos routes.
func registerEvidenceRoutes(rg *gin.RouterGroup, jwtSecret string, evidenceService portssvc.EvidenceSvcFacade) {
	h := NewEvidenceHandler(evidenceService)

	archivos := rg.Group("/archivos", middleware.AuthMiddleware(jwtSecret))
	{
		archivos.GET("/stats/resumen", h.StatusSummary)
		archivos.GET("/usuario/:usuarioId", h.ListByOwner)
		archivos.GET("", h.List)
		archivos.GET("/:id", h.Get)
		archivos.PUT("/:id", h.Update)
		archivos.DELETE("/:id", h.Delete)
	}
}

// StatusSummary godoc
// @Summary Evidence counts per status
// @Tags archivos
// @Produce json
// @Security BearerAuth
// @Success 200 {array} domain.EvidenceStatusCount
// @Failure 401 {object} ErrorResponse
// @Router /archivos/stats/resumen [get]
func (h *EvidenceHandler) StatusSummary(c *gin.Context) {
	stats, err := h.evidenceService.StatusSummary(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// ListByOwner godoc
// @Summary List evidence of one user
// @Tags archivos
// @Produce json
// @Security BearerAuth
// @Param usuarioId path int true "Owner user ID"
// @Success 200 {array} domain.Evidence
// @Failure 400 {object} ErrorResponse
// @Router /archivos/usuario/{usuarioId} [get]
func (h *EvidenceHandler) ListByOwner(c *gin.Context) {
	ownerID, err := strconv.ParseInt(c.Param("usuarioId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid user id"})
		return
	}

	items, err := h.evidenceService.ListEvidenceByOwner(c.Request.Context(), ownerID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// List godoc
// @Summary List all evidence
// @Tags archivos
// @Produce json
// @Security BearerAuth
// @Success 200 {array} domain.Evidence
// @Failure 401 {object} ErrorResponse
// @Router /archivos [get]
func (h *EvidenceHandler) List(c *gin.Context) {
	items, err := h.evidenceService.ListEvidence(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// Get godoc
// @Summary Get one evidence file
// @Tags archivos
// @Produce json
// @Security BearerAuth
// @Param id path int true "Evidence ID"
// @Success 200 {object} domain.Evidence
// @Failure 404 {object} ErrorResponse
// @Router /archivos/{id} [get]
func (h *EvidenceHandler) Get(c *gin.Context) {
	evidenceID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid file id"})
		return
	}

	evidence, err := h.evidenceService.GetEvidence(c.Request.Context(), evidenceID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, evidence)
}

// Update godoc
// @Summary Update evidence status or description
// @Tags archivos
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Evidence ID"
// @Param evidence body dto.UpdateEvidenceRequest true "Fields to update"
// @Success 200 {object} domain.Evidence
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /archivos/{id} [put]
func (h *EvidenceHandler) Update(c *gin.Context) {
	evidenceID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid file id"})
		return
	}

	var req dto.UpdateEvidenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	evidence, err := h.evidenceService.UpdateEvidence(c.Request.Context(), evidenceID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, evidence)
}

// Delete godoc
// @Summary Delete an evidence file
// @Tags archivos
// @Produce json
// @Security BearerAuth
// @Param id path int true "Evidence ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} ErrorResponse
// @Router /archivos/{id} [delete]
func (h *EvidenceHandler) Delete(c *gin.Context) {
	evidenceID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid file id"})
		return
	}

	if err := h.evidenceService.DeleteEvidence(c.Request.Context(), evidenceID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"mensaje": "Archivo eliminado correctamente"})
}
