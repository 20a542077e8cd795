package middleware // middleware provides shared request processing for handlers

import (
    "net/http"

    "github.com/labstack/echo/v4"

    "github.com/velora/salon-web/internal/config"
    "github.com/velora/salon-web/internal/session"
    "github.com/velora/salon-web/internal/utils"
)

// Context keys under which the session middleware stores its results.
const (
    ctxSession   = "session"
    ctxSessionID = "session_id"
)

// Session resolves the browser session for every request. It reads the
// session cookie (minting one on first contact), asks the manager for
// that session's state machine and attaches it to the echo context.
// The manager bootstraps each machine before returning it, so by the
// time any handler or role guard runs the authentication state is
// settled; nothing downstream ever observes a loading session.
func Session(mgr *session.Manager, cfg config.Config) echo.MiddlewareFunc {
    return func(next echo.HandlerFunc) echo.HandlerFunc {
        return func(c echo.Context) error {
            sid := ""
            if ck, err := c.Cookie(cfg.CookieName); err == nil && ck.Value != "" {
                sid = ck.Value
            }
            if sid == "" {
                fresh, err := utils.RandomHex(32)
                if err != nil {
                    return c.JSON(http.StatusInternalServerError, echo.Map{"error": "session unavailable"})
                }
                sid = fresh
                c.SetCookie(sessionCookie(cfg, sid))
            }

            m := mgr.Session(c.Request().Context(), sid)
            c.Set(ctxSessionID, sid)
            c.Set(ctxSession, m)
            return next(c)
        }
    }
}

func sessionCookie(cfg config.Config, sid string) *http.Cookie {
    return &http.Cookie{
        Name:     cfg.CookieName,
        Value:    sid,
        Path:     "/",
        MaxAge:   int(cfg.CookieTTL.Seconds()),
        HttpOnly: true,
        Secure:   cfg.CookieSecure,
        SameSite: http.SameSiteLaxMode,
    }
}

// IssueSessionCookie replaces the response's session cookie with one
// carrying sid and rebinds the request context to it. Login uses this
// to rotate the session identifier: the pre-login value may have been
// planted in the browser by someone else, so it must not name the
// authenticated session. Any cookie the Session middleware already
// queued for this response is discarded first.
func IssueSessionCookie(c echo.Context, cfg config.Config, sid string) {
    c.Response().Header().Del(echo.HeaderSetCookie)
    c.SetCookie(sessionCookie(cfg, sid))
    c.Set(ctxSessionID, sid)
}

// CurrentSession returns the request's session machine, or nil when
// the session middleware did not run.
func CurrentSession(c echo.Context) *session.Machine {
    if m, ok := c.Get(ctxSession).(*session.Machine); ok {
        return m
    }
    return nil
}

// SessionID returns the request's browser session identifier.
func SessionID(c echo.Context) string {
    if sid, ok := c.Get(ctxSessionID).(string); ok {
        return sid
    }
    return ""
}
