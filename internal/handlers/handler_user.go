package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/eni-training/course_management_app/internal/core/domain"
	portssvc "github.com/eni-training/course_management_app/internal/core/ports/services"
	"github.com/eni-training/course_management_app/internal/dto"
	"github.com/eni-training/course_management_app/internal/middleware"
	"github.com/eni-training/course_management_app/internal/platform/filestore"
)

// maxUploadFiles caps how many PDFs a single multipart request may carry.
const maxUploadFiles = 5

// UserHandler handles profile, account lifecycle, notification and
// evidence-upload requests.
type UserHandler struct {
	userService         portssvc.UserSvcFacade
	notificationService portssvc.NotificationSvcFacade
	evidenceService     portssvc.EvidenceSvcFacade
	files               *filestore.Store
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(us portssvc.UserSvcFacade, ns portssvc.NotificationSvcFacade, es portssvc.EvidenceSvcFacade, files *filestore.Store) *UserHandler {
	return &UserHandler{
		userService:         us,
		notificationService: ns,
		evidenceService:     es,
		files:               files,
	}
}

// registerUserRoutes sets up the /usuarios routes that are not part of
// registration/login. cambiar-password is deliberately unauthenticated,
// matching the reference behavior.
func registerUserRoutes(rg *gin.RouterGroup, jwtSecret string, services *portssvc.ServiceContainer, files *filestore.Store) {
	h := NewUserHandler(services.User, services.Notification, services.Evidence, files)

	usuarios := rg.Group("/usuarios")
	{
		usuarios.POST("/cambiar-password", h.ChangePassword)

		authed := usuarios.Group("", middleware.AuthMiddleware(jwtSecret))
		{
			authed.GET("/perfil", h.Profile)
			authed.DELETE("/eliminar/:id", middleware.RequireAdmin(), h.DeleteUser)
			authed.POST("/notificar-por-area", middleware.RequireAdmin(), h.NotifyByArea)
			authed.GET("/mis-notificaciones", h.MyNotifications)
			authed.POST("/notificaciones/:id/marcar-leida", h.MarkNotificationRead)
			authed.POST("/subir-evidencia", h.SubmitEvidence)
		}
	}
}

// Profile godoc
// @Summary Get own profile
// @Description Returns the caller's identity as carried in the token claims.
// @Tags usuarios
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.ProfileResponse
// @Failure 401 {object} ErrorResponse
// @Router /usuarios/perfil [get]
func (h *UserHandler) Profile(c *gin.Context) {
	claims, ok := middleware.GetClaimsFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Authentication required", Code: "TOKEN_REQUIRED"})
		return
	}

	// The profile is served from the claims, not the store: identity stays
	// as issued until the token is refreshed.
	c.JSON(http.StatusOK, dto.ProfileResponse{
		Message: "Acceso autorizado",
		User: dto.UserResponse{
			ID:        claims.UserID,
			FirstName: claims.FirstName,
			LastName:  claims.LastName,
			Email:     claims.Email,
			Role:      claims.Role,
		},
	})
}

// DeleteUser godoc
// @Summary Delete a user
// @Description Removes a user account. Administrator only.
// @Tags usuarios
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 200 {object} map[string]string
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /usuarios/eliminar/{id} [delete]
func (h *UserHandler) DeleteUser(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)

	userID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid user id"})
		return
	}

	if err := h.userService.DeleteUser(c.Request.Context(), userID); err != nil {
		respondError(c, err)
		return
	}

	logger.Info("user deleted", slog.Int64("deleted_user_id", userID))
	c.JSON(http.StatusOK, gin.H{"mensaje": fmt.Sprintf("Usuario con ID %d eliminado correctamente", userID)})
}

// ChangePassword godoc
// @Summary Reset a password by email
// @Description Stores a new hashed password for the account with the given email.
// @Tags usuarios
// @Accept json
// @Produce json
// @Param request body dto.ChangePasswordRequest true "Email and new password"
// @Success 200 {object} map[string]string
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /usuarios/cambiar-password [post]
func (h *UserHandler) ChangePassword(c *gin.Context) {
	var req dto.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Email and new password are required", Code: "MISSING_FIELDS"})
		return
	}

	if err := h.userService.ChangePassword(c.Request.Context(), req.Email, req.NewPassword); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"mensaje": "Contraseña actualizada correctamente"})
}

// NotifyByArea godoc
// @Summary Notify all users of one or more areas
// @Description Fans a notification with optional PDF attachments out to every user of the given areas. Administrator only.
// @Tags usuarios
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Param areaIds formData string true "JSON array of area ids"
// @Param asunto formData string true "Subject"
// @Param mensaje formData string true "Body"
// @Param archivos formData file false "PDF attachments (max 5)"
// @Success 200 {object} dto.NotifyByAreaResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /usuarios/notificar-por-area [post]
func (h *UserHandler) NotifyByArea(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)

	subject := c.PostForm("asunto")
	body := c.PostForm("mensaje")
	if subject == "" || body == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Subject and body are required", Code: "MISSING_FIELDS"})
		return
	}

	// areaIds arrives as a JSON array string inside the multipart form.
	var rawIDs []json.Number
	if err := json.Unmarshal([]byte(c.PostForm("areaIds")), &rawIDs); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "areaIds must be a JSON array of ids", Code: "MISSING_FIELDS"})
		return
	}
	areaIDs := make([]int64, 0, len(rawIDs))
	for _, raw := range rawIDs {
		id, err := raw.Int64()
		if err != nil || id < 1 {
			continue
		}
		areaIDs = append(areaIDs, id)
	}

	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid multipart form"})
		return
	}
	uploads := form.File["archivos"]
	if len(uploads) > maxUploadFiles {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "At most 5 files are allowed"})
		return
	}

	attachments := make([]string, 0, len(uploads))
	for _, file := range uploads {
		path, err := h.files.SavePDF(filestore.BucketNotifications, file)
		if err != nil {
			if errors.Is(err, filestore.ErrNotPDF) {
				c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Only PDF files are accepted"})
				return
			}
			logger.Error("Failed to store attachment", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to store attachment", Code: "INTERNAL_ERROR"})
			return
		}
		attachments = append(attachments, path)
	}

	count, err := h.notificationService.NotifyAreas(c.Request.Context(), areaIDs, subject, body, attachments)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NotifyByAreaResponse{
		Message: fmt.Sprintf("Notificación enviada a %d usuarios", count),
		Count:   count,
	})
}

// MyNotifications godoc
// @Summary List own notifications
// @Tags usuarios
// @Produce json
// @Security BearerAuth
// @Success 200 {array} domain.Notification
// @Failure 401 {object} ErrorResponse
// @Router /usuarios/mis-notificaciones [get]
func (h *UserHandler) MyNotifications(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Authentication required", Code: "TOKEN_REQUIRED"})
		return
	}

	notifications, err := h.notificationService.ListForRecipient(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, notifications)
}

// MarkNotificationRead godoc
// @Summary Mark a notification as read
// @Description Marks one of the caller's notifications as read.
// @Tags usuarios
// @Produce json
// @Security BearerAuth
// @Param id path int true "Notification ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} ErrorResponse
// @Router /usuarios/notificaciones/{id}/marcar-leida [post]
func (h *UserHandler) MarkNotificationRead(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Authentication required", Code: "TOKEN_REQUIRED"})
		return
	}

	notificationID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid notification id"})
		return
	}

	if err := h.notificationService.MarkRead(c.Request.Context(), notificationID, userID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"mensaje": "Notificación marcada como leída"})
}

// SubmitEvidence godoc
// @Summary Upload evidence files
// @Description Stores one or more PDF evidence files and notifies every administrator. Not available to administrators.
// @Tags usuarios
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Param archivos formData file true "PDF files (max 5)"
// @Param descripcion formData string false "Description"
// @Success 200 {object} dto.SubmitEvidenceResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /usuarios/subir-evidencia [post]
func (h *UserHandler) SubmitEvidence(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)

	claims, ok := middleware.GetClaimsFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Authentication required", Code: "TOKEN_REQUIRED"})
		return
	}
	if claims.Role == domain.RoleAdministrator {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Administrators cannot submit evidence here"})
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid multipart form"})
		return
	}
	files := form.File["archivos"]
	if len(files) == 0 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "At least one PDF file is required", Code: "MISSING_FILES"})
		return
	}
	if len(files) > maxUploadFiles {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "At most 5 files are allowed"})
		return
	}

	uploads := make([]dto.EvidenceUpload, 0, len(files))
	for _, file := range files {
		path, err := h.files.SavePDF(filestore.BucketEvidence, file)
		if err != nil {
			if errors.Is(err, filestore.ErrNotPDF) {
				c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Only PDF files are accepted"})
				return
			}
			logger.Error("Failed to store evidence file", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to store evidence file", Code: "INTERNAL_ERROR"})
			return
		}
		uploads = append(uploads, dto.EvidenceUpload{
			Name:      file.Filename,
			Path:      path,
			MimeType:  file.Header.Get("Content-Type"),
			SizeBytes: file.Size,
		})
	}

	ownerName := fmt.Sprintf("%s %s", claims.FirstName, claims.LastName)
	adminsNotified, err := h.evidenceService.SubmitEvidence(c.Request.Context(), claims.UserID, ownerName, uploads, c.PostForm("descripcion"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.SubmitEvidenceResponse{
		Message:        fmt.Sprintf("Evidencia subida correctamente. Se ha notificado a %d administrador(es).", adminsNotified),
		FileCount:      len(uploads),
		AdminsNotified: adminsNotified,
	})
}
