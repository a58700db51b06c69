package dto

// RegisterRequest carries the registration payload. Role defaults to
// Formador when omitted. CaptchaToken is consumed by the captcha middleware
// before the handler runs.
type RegisterRequest struct {
	FirstName    string `json:"nombre" binding:"required"`
	LastName     string `json:"apellido" binding:"required"`
	Email        string `json:"email" binding:"required,email"`
	Password     string `json:"password" binding:"required"`
	Role         string `json:"rol"`
	AreaCode     string `json:"codigoArea" binding:"required"`
	CaptchaToken string `json:"captchaToken"`
}

// LoginRequest carries login credentials.
type LoginRequest struct {
	Email        string `json:"email" binding:"required"`
	Password     string `json:"password" binding:"required"`
	CaptchaToken string `json:"captchaToken"`
}

// LoginResponse is returned on successful login.
type LoginResponse struct {
	Message string       `json:"mensaje"`
	Token   string       `json:"token"`
	User    UserResponse `json:"usuario"`
}

// RegisterResponse is returned on successful registration.
type RegisterResponse struct {
	Message string       `json:"mensaje"`
	User    UserResponse `json:"usuario"`
}
