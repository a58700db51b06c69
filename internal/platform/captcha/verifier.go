package captcha

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

const siteVerifyURL = "https://www.google.com/recaptcha/api/siteverify"

// Verdict is the provider's verification result. Score and Action are only
// populated for v3 tokens.
type Verdict struct {
	Success    bool     `json:"success"`
	Score      float64  `json:"score"`
	Action     string   `json:"action"`
	ErrorCodes []string `json:"error-codes"`
}

// Verifier checks captcha tokens against the reCAPTCHA siteverify endpoint.
type Verifier struct {
	client *resty.Client
	secret string
}

// NewVerifier creates a Verifier with a bounded request timeout so a slow
// provider cannot hang the request.
func NewVerifier(secret string) *Verifier {
	client := resty.New().
		SetBaseURL(siteVerifyURL).
		SetTimeout(10 * time.Second)
	return &Verifier{client: client, secret: secret}
}

// Verify submits the token and returns the provider's verdict. Transport
// failures and non-2xx responses are returned as errors; a failed verdict is
// not an error, callers inspect Success.
func (v *Verifier) Verify(ctx context.Context, token string) (*Verdict, error) {
	verdict := &Verdict{}
	resp, err := v.client.R().
		SetContext(ctx).
		SetFormData(map[string]string{
			"secret":   v.secret,
			"response": token,
		}).
		SetResult(verdict).
		Post("")
	if err != nil {
		return nil, fmt.Errorf("captcha siteverify request failed: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("captcha siteverify returned status %d", resp.StatusCode())
	}
	return verdict, nil
}
