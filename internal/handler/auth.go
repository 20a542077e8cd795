package handler

import (
    "net/http"
    "strings"

    "github.com/labstack/echo/v4"

    "github.com/velora/salon-web/internal/cart"
    "github.com/velora/salon-web/internal/config"
    "github.com/velora/salon-web/internal/gateway"
    "github.com/velora/salon-web/internal/middleware"
    "github.com/velora/salon-web/internal/model"
    "github.com/velora/salon-web/internal/session"
    "github.com/velora/salon-web/internal/utils"
)

// AuthHandler serves the authentication pages. Login, logout and
// profile updates go through the session machine; the verification and
// password-reset endpoints are plain pass-throughs to the backend with
// no session side effects.
type AuthHandler struct {
    Manager *session.Manager
    Gateway *gateway.Client
    Carts   cart.Store
    Cfg     config.Config
}

func NewAuthHandler(mgr *session.Manager, gw *gateway.Client, carts cart.Store, cfg config.Config) *AuthHandler {
    return &AuthHandler{Manager: mgr, Gateway: gw, Carts: carts, Cfg: cfg}
}

// ----- DTOs -----

type loginReq struct {
    Email    string `json:"email"`
    Password string `json:"password"`
}

type registerReq struct {
    FirstName string `json:"first_name"`
    LastName  string `json:"last_name"`
    Email     string `json:"email"`
    Password  string `json:"password"`
    Phone     string `json:"phone"`
}

type emailReq struct {
    Email string `json:"email"`
}

type sessionResp struct {
    Token string             `json:"token"`
    User  *model.UserProfile `json:"user"`
}

// Login signs the browser session in. Failure responses carry the
// backend's status so the SPA can tell an unverified account (401 with
// its specific message) apart from plain bad credentials.
//
// Successful logins run under a freshly minted session ID: the ID the
// browser arrived with is client-supplied and could have been planted
// by someone who would later replay it, so it is never allowed to name
// an authenticated session. The guest cart follows the customer across
// the rotation; the old ID is cleared and forgotten.
func (h *AuthHandler) Login(c echo.Context) error {
    var req loginReq
    if err := c.Bind(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
    }
    req.Email = strings.ToLower(strings.TrimSpace(req.Email))
    if req.Email == "" || req.Password == "" {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "email/password required"})
    }

    oldMachine, ok := currentSession(c)
    if !ok {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "no session"})
    }
    ctx := c.Request().Context()
    oldSID := middleware.SessionID(c)

    newSID, err := utils.RandomHex(32)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "session unavailable"})
    }
    m := h.Manager.Session(ctx, newSID)
    res := m.Login(ctx, gateway.Credentials{Email: req.Email, Password: req.Password})
    if !res.Success {
        h.Manager.Drop(newSID)
        status := res.Status
        if status == 0 {
            status = http.StatusBadGateway
        }
        return c.JSON(status, echo.Map{"error": res.Message, "status": res.Status})
    }

    if ct, err := h.Carts.Get(ctx, oldSID); err == nil && !ct.Empty() {
        if err := h.Carts.Save(ctx, newSID, ct); err != nil {
            c.Logger().Warnf("carrying cart across login: %v", err)
        } else {
            _ = h.Carts.Clear(ctx, oldSID)
        }
    }
    oldMachine.Logout(ctx)
    h.Manager.Drop(oldSID)
    middleware.IssueSessionCookie(c, h.Cfg, newSID)

    state := m.State()
    return c.JSON(http.StatusOK, sessionResp{Token: res.Token, User: state.User})
}

// Register creates an account. The session stays anonymous; the
// platform requires email verification before the first login.
func (h *AuthHandler) Register(c echo.Context) error {
    var req registerReq
    if err := c.Bind(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
    }
    req.Email = strings.ToLower(strings.TrimSpace(req.Email))
    if req.Email == "" || req.Password == "" {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "email/password required"})
    }

    m, ok := currentSession(c)
    if !ok {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "no session"})
    }
    res := m.Register(c.Request().Context(), gateway.RegistrationData{
        FirstName: req.FirstName,
        LastName:  req.LastName,
        Email:     req.Email,
        Password:  req.Password,
        Phone:     req.Phone,
    })
    if !res.Success {
        status := res.Status
        if status == 0 {
            status = http.StatusBadGateway
        }
        return c.JSON(status, echo.Map{"error": res.Message})
    }
    return c.JSON(http.StatusCreated, echo.Map{"message": "account created, check your email to verify it"})
}

// Logout clears the session unconditionally and forgets the machine so
// the cookie maps to a fresh anonymous session on the next request.
func (h *AuthHandler) Logout(c echo.Context) error {
    if m, ok := currentSession(c); ok {
        m.Logout(c.Request().Context())
    }
    if sid := middleware.SessionID(c); sid != "" {
        h.Manager.Drop(sid)
    }
    return c.NoContent(http.StatusNoContent)
}

// Me returns the current session snapshot for the account page.
func (h *AuthHandler) Me(c echo.Context) error {
    m, ok := currentSession(c)
    if !ok {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "no session"})
    }
    state := m.State()
    return c.JSON(http.StatusOK, sessionResp{Token: state.Token, User: state.User})
}

// UpdateMe merges a partial profile into the session user. The token
// is untouched; only name and email fields can change here.
func (h *AuthHandler) UpdateMe(c echo.Context) error {
    var patch model.ProfilePatch
    if err := c.Bind(&patch); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
    }
    m, ok := currentSession(c)
    if !ok {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "no session"})
    }
    res := m.UpdateUser(c.Request().Context(), patch)
    if !res.Success {
        // Behind RequireAuth the only realistic failure is storage.
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": res.Message})
    }
    return c.JSON(http.StatusOK, sessionResp{Token: res.Token, User: m.State().User})
}

// VerifyEmail confirms an account from the emailed token.
func (h *AuthHandler) VerifyEmail(c echo.Context) error {
    var req struct {
        Token string `json:"token"`
    }
    if err := c.Bind(&req); err != nil || strings.TrimSpace(req.Token) == "" {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "token required"})
    }
    if err := h.Gateway.VerifyEmail(c.Request().Context(), req.Token); err != nil {
        return respondGatewayError(c, err)
    }
    return c.NoContent(http.StatusNoContent)
}

// ResendVerification asks the backend for a fresh verification email.
func (h *AuthHandler) ResendVerification(c echo.Context) error {
    var req emailReq
    if err := c.Bind(&req); err != nil || strings.TrimSpace(req.Email) == "" {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "email required"})
    }
    if err := h.Gateway.ResendVerification(c.Request().Context(), req.Email); err != nil {
        return respondGatewayError(c, err)
    }
    return c.NoContent(http.StatusNoContent)
}

// ForgotPassword starts the reset flow; the captcha token is forwarded
// for the backend to validate.
func (h *AuthHandler) ForgotPassword(c echo.Context) error {
    var req struct {
        Email        string `json:"email"`
        CaptchaToken string `json:"captcha_token"`
    }
    if err := c.Bind(&req); err != nil || strings.TrimSpace(req.Email) == "" {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "email required"})
    }
    if err := h.Gateway.ForgotPassword(c.Request().Context(), req.Email, req.CaptchaToken); err != nil {
        return respondGatewayError(c, err)
    }
    return c.NoContent(http.StatusNoContent)
}
