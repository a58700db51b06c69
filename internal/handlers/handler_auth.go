package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	portssvc "github.com/eni-training/course_management_app/internal/core/ports/services"
	"github.com/eni-training/course_management_app/internal/dto"
	"github.com/eni-training/course_management_app/internal/middleware"
	"github.com/eni-training/course_management_app/internal/platform/captcha"
	"github.com/eni-training/course_management_app/internal/platform/config"
)

// AuthHandler handles registration and login.
type AuthHandler struct {
	userService  portssvc.UserSvcFacade
	tokenService portssvc.TokenSvc
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(us portssvc.UserSvcFacade, ts portssvc.TokenSvc) *AuthHandler {
	return &AuthHandler{userService: us, tokenService: ts}
}

// registerAuthRoutes sets up the public registration and login routes.
// Login is rate limited per IP; both routes sit behind captcha
// verification.
func registerAuthRoutes(rg *gin.RouterGroup, cfg *config.Config, services *portssvc.ServiceContainer) {
	h := NewAuthHandler(services.User, services.Token)

	// 5 attempts per minute per IP on login
	rate, _ := limiter.NewRateFromFormatted("5-M")
	store := memory.NewStore()
	ipLimiter := limiter.New(store, rate)

	verifier := captcha.NewVerifier(cfg.CaptchaSecret)
	captchaMiddleware := middleware.VerifyCaptcha(cfg, verifier)

	usuarios := rg.Group("/usuarios")
	{
		usuarios.POST("/register", captchaMiddleware, h.Register)
		usuarios.POST("/login", middleware.RateLimit(ipLimiter), captchaMiddleware, h.Login)
	}
}

// Register godoc
// @Summary Register new user
// @Description Creates a new user account tied to an existing area.
// @Tags usuarios
// @Accept json
// @Produce json
// @Param register body dto.RegisterRequest true "Registration data"
// @Success 201 {object} dto.RegisterResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /usuarios/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)

	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "All fields are required", Code: "MISSING_FIELDS"})
		return
	}

	user, err := h.userService.Register(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	logger.Info("user registered", slog.Int64("user_id", user.ID))
	c.JSON(http.StatusCreated, dto.RegisterResponse{
		Message: "Usuario registrado exitosamente",
		User:    dto.ToUserResponse(user),
	})
}

// Login godoc
// @Summary User login
// @Description Authenticates a user and returns a signed token.
// @Tags usuarios
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Login credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /usuarios/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)

	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Email and password are required", Code: "MISSING_FIELDS"})
		return
	}

	user, err := h.userService.VerifyCredentials(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	token, _, err := h.tokenService.IssueToken(c.Request.Context(), user)
	if err != nil {
		logger.Error("Failed to sign token", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to generate token", Code: "INTERNAL_ERROR"})
		return
	}

	logger.Info("user logged in", slog.Int64("user_id", user.ID))
	c.JSON(http.StatusOK, dto.LoginResponse{
		Message: "Login exitoso",
		Token:   token,
		User:    dto.ToUserResponse(user),
	})
}
