package gateway

import (
    "context"
    "net/http"

    "github.com/velora/salon-web/internal/model"
)

// Credentials is a login attempt.
type Credentials struct {
    Email    string `json:"email"`
    Password string `json:"password"`
}

// RegistrationData is the sign-up payload forwarded verbatim to the
// backend. The password is never inspected or hashed on this side.
type RegistrationData struct {
    FirstName string `json:"first_name"`
    LastName  string `json:"last_name"`
    Email     string `json:"email"`
    Password  string `json:"password"`
    Phone     string `json:"phone,omitempty"`
}

// AuthResult is the backend's successful authentication response.
type AuthResult struct {
    AccessToken string     `json:"access_token"`
    UserID      uint64     `json:"user_id"`
    FirstName   string     `json:"first_name"`
    LastName    string     `json:"last_name"`
    Email       string     `json:"email"`
    Role        model.Role `json:"role"`
}

// Authenticate exchanges credentials for a token and profile. A 401
// comes back as *APIError so the caller can distinguish unverified
// accounts from generic bad credentials.
func (c *Client) Authenticate(ctx context.Context, creds Credentials) (AuthResult, error) {
    var res AuthResult
    if err := c.do(ctx, http.MethodPost, "/auth/login", nil, "", creds, &res); err != nil {
        return AuthResult{}, err
    }
    return res, nil
}

// Register creates an account. Registration is not auto-login: no token
// is returned and no session state changes.
func (c *Client) Register(ctx context.Context, data RegistrationData) error {
    return c.do(ctx, http.MethodPost, "/auth/register", nil, "", data, nil)
}

// VerifyEmail confirms an account using the token from the
// verification email. Pass-through; no session side effects.
func (c *Client) VerifyEmail(ctx context.Context, token string) error {
    body := map[string]string{"token": token}
    return c.do(ctx, http.MethodPost, "/auth/verify-email", nil, "", body, nil)
}

// ResendVerification asks the backend to send a fresh verification
// email. Pass-through; no session side effects.
func (c *Client) ResendVerification(ctx context.Context, email string) error {
    body := map[string]string{"email": email}
    return c.do(ctx, http.MethodPost, "/auth/resend-verification", nil, "", body, nil)
}

// ForgotPassword starts the password reset flow. The captcha token is
// forwarded for the backend to validate.
func (c *Client) ForgotPassword(ctx context.Context, email, captchaToken string) error {
    body := map[string]string{"email": email, "captcha_token": captchaToken}
    return c.do(ctx, http.MethodPost, "/auth/forgot-password", nil, "", body, nil)
}
