package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/eni-training/course_management_app/internal/platform/captcha"
	"github.com/eni-training/course_management_app/internal/platform/config"
)

// VerifyCaptcha creates a Gin middleware that validates a captcha token
// before login and registration are processed. The token is read from the
// JSON body ("captchaToken"), with query parameter and header fallbacks.
// The body is restored after reading so handlers can bind it again.
func VerifyCaptcha(cfg *config.Config, verifier *captcha.Verifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		if cfg.CaptchaDisabled {
			logger.Warn("captcha verification disabled")
			c.Next()
			return
		}

		token := extractCaptchaToken(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Captcha token required", "code": "CAPTCHA_REQUIRED"})
			return
		}

		if cfg.CaptchaSecret == "" {
			logger.Error("captcha secret not configured")
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Captcha verification unavailable", "code": "INTERNAL_ERROR"})
			return
		}

		verdict, err := verifier.Verify(c.Request.Context(), token)
		if err != nil {
			logger.Error("captcha provider call failed", "error", err)
			c.AbortWithStatusJSON(http.StatusBadGateway, gin.H{"error": "Captcha verification failed", "code": "CAPTCHA_UNAVAILABLE"})
			return
		}

		if !verdict.Success {
			logger.Warn("captcha verdict failed", "error_codes", verdict.ErrorCodes)
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Captcha verification rejected", "code": "CAPTCHA_FAILED"})
			return
		}
		if cfg.CaptchaMinScore > 0 && verdict.Score < cfg.CaptchaMinScore {
			logger.Warn("captcha score below threshold", "score", verdict.Score)
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Captcha verification rejected", "code": "CAPTCHA_FAILED"})
			return
		}
		if cfg.CaptchaExpectedAction != "" && verdict.Action != cfg.CaptchaExpectedAction {
			logger.Warn("captcha action mismatch", "action", verdict.Action)
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Captcha verification rejected", "code": "CAPTCHA_FAILED"})
			return
		}

		c.Next()
	}
}

// extractCaptchaToken reads the token from the JSON body, query string or
// header, restoring the body for downstream binding.
func extractCaptchaToken(c *gin.Context) string {
	if token := c.Query("captchaToken"); token != "" {
		return token
	}
	if token := c.GetHeader("X-Captcha-Token"); token != "" {
		return token
	}

	if c.Request.Body == nil {
		return ""
	}
	bodyBytes, err := io.ReadAll(c.Request.Body)
	if err != nil {
		return ""
	}
	c.Request.Body = io.NopCloser(bytes.NewBuffer(bodyBytes))

	var payload struct {
		CaptchaToken string `json:"captchaToken"`
	}
	if err := json.Unmarshal(bodyBytes, &payload); err != nil {
		return ""
	}
	return payload.CaptchaToken
}
