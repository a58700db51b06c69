package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL       string
	Port              string
	IsProduction      bool
	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string

	// Captcha verification for login/registration. CaptchaDisabled exists
	// for non-production environments only; verification defaults to
	// required.
	CaptchaSecret         string
	CaptchaDisabled       bool
	CaptchaMinScore       float64
	CaptchaExpectedAction string

	// ClientOrigin is the single allowed cross-origin frontend address.
	ClientOrigin string

	// UploadDir is the base directory for stored attachments and evidence.
	UploadDir string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("JWT_EXPIRY_DURATION", "1h")
	viper.SetDefault("JWT_ISSUER", "course-management-app")
	viper.SetDefault("CAPTCHA_SECRET", "")
	viper.SetDefault("CAPTCHA_DISABLED", false)
	viper.SetDefault("CAPTCHA_MIN_SCORE", 0.0)
	viper.SetDefault("CAPTCHA_EXPECTED_ACTION", "")
	viper.SetDefault("CLIENT_ORIGIN", "http://localhost:5173")
	viper.SetDefault("UPLOAD_DIR", "uploads")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")

	jwtSecret := viper.GetString("JWT_SECRET")
	if jwtSecret == "a-very-secret-key-should-be-longer-and-random" {
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	jwtExpiryStr := viper.GetString("JWT_EXPIRY_DURATION")
	jwtExpiryDuration, err := time.ParseDuration(jwtExpiryStr)
	if err != nil {
		jwtExpiryDuration = time.Hour
		log.Printf("Warning: Invalid value for JWT_EXPIRY_DURATION ('%s'). Defaulting to %s.\n", jwtExpiryStr, jwtExpiryDuration.String())
	}

	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.JWTSecret = jwtSecret
	cfg.JWTExpiryDuration = jwtExpiryDuration
	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")

	cfg.CaptchaSecret = viper.GetString("CAPTCHA_SECRET")
	cfg.CaptchaDisabled = viper.GetBool("CAPTCHA_DISABLED")
	cfg.CaptchaMinScore = viper.GetFloat64("CAPTCHA_MIN_SCORE")
	cfg.CaptchaExpectedAction = viper.GetString("CAPTCHA_EXPECTED_ACTION")
	if !cfg.CaptchaDisabled && cfg.CaptchaSecret == "" {
		log.Println("Warning: CAPTCHA_SECRET not set. Login and registration will fail captcha verification.")
	}

	cfg.ClientOrigin = viper.GetString("CLIENT_ORIGIN")
	cfg.UploadDir = viper.GetString("UPLOAD_DIR")

	return cfg, nil
}
