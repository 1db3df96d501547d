package handler

import (
    "context"  // context for auth service calls
    "log"      // log records tolerated sign-out failures
    "net/http" // HTTP status codes and cookie primitives
    "strings"  // string trimming for form values
    "time"     // cookie expiry handling

    "github.com/labstack/echo/v4" // Echo framework for HTTP routing

    "github.com/iliyamo/hotel-venue-manager/internal/auth"       // auth service client types
    "github.com/iliyamo/hotel-venue-manager/internal/middleware" // middleware exports the session cookie name
)

// AuthService is the slice of the auth client the session handlers need.
// Credential verification lives entirely behind it.
type AuthService interface {
    SignUp(ctx context.Context, email, password string) (*auth.User, error)
    SignIn(ctx context.Context, email, password string) (*auth.Session, error)
    SignOut(ctx context.Context, token string) error
}

// AuthHandler bundles dependencies for the signup/login/logout endpoints.
// These are browser form posts, so every outcome is a redirect: success goes
// to the dashboard, failure back to the entry page with an error query.
type AuthHandler struct {
    Svc AuthService
}

func NewAuthHandler(svc AuthService) *AuthHandler {
    if svc == nil {
        panic("nil auth service passed to NewAuthHandler")
    }
    return &AuthHandler{Svc: svc}
}

// Signup handles POST /signup.  The account is created by the auth service;
// no session cookie is issued yet, the operator logs in afterwards.
func (h *AuthHandler) Signup(c echo.Context) error {
    email := strings.TrimSpace(c.FormValue("email"))
    password := c.FormValue("password")
    if email == "" || password == "" {
        return c.Redirect(http.StatusSeeOther, "/?error=signup_failed")
    }
    if _, err := h.Svc.SignUp(c.Request().Context(), email, password); err != nil {
        return c.Redirect(http.StatusSeeOther, "/?error=signup_failed")
    }
    return c.Redirect(http.StatusSeeOther, "/dashboard")
}

// Login handles POST /login.  On success the access token issued by the auth
// service lands in an httponly same-site-lax cookie; the browser carries it
// on every subsequent request and the session middleware resolves it
// remotely each time.
func (h *AuthHandler) Login(c echo.Context) error {
    email := strings.TrimSpace(c.FormValue("email"))
    password := c.FormValue("password")
    if email == "" || password == "" {
        return c.Redirect(http.StatusSeeOther, "/?error=invalid_credentials")
    }
    sess, err := h.Svc.SignIn(c.Request().Context(), email, password)
    if err != nil {
        // Wrong password, unknown account and service failure all land
        // here; the redirect reveals nothing about which it was.
        return c.Redirect(http.StatusSeeOther, "/?error=invalid_credentials")
    }
    c.SetCookie(sessionCookie(sess.AccessToken))
    return c.Redirect(http.StatusSeeOther, "/dashboard")
}

// Logout handles POST /logout.  The token is revoked at the auth service
// best-effort; the cookie is cleared regardless so the browser session ends
// either way.
func (h *AuthHandler) Logout(c echo.Context) error {
    if cookie, err := c.Cookie(middleware.SessionCookie); err == nil && cookie.Value != "" {
        if err := h.Svc.SignOut(c.Request().Context(), cookie.Value); err != nil {
            log.Printf("sign-out at auth service failed: %v", err)
        }
    }
    c.SetCookie(clearedSessionCookie())
    return c.Redirect(http.StatusSeeOther, "/")
}

// sessionCookie builds the credential cookie.  Lifetime follows the token's
// exp claim when one can be read; otherwise the cookie lives for the browser
// session.  Secure is left off because local deployments run over plain
// HTTP; a fronting proxy terminates TLS in production.
func sessionCookie(token string) *http.Cookie {
    cookie := &http.Cookie{
        Name:     middleware.SessionCookie,
        Value:    token,
        Path:     "/",
        HttpOnly: true,
        SameSite: http.SameSiteLaxMode,
    }
    if exp, ok := auth.TokenExpiry(token); ok {
        cookie.Expires = exp
        if d := time.Until(exp); d > 0 {
            cookie.MaxAge = int(d.Seconds())
        }
    }
    return cookie
}

// clearedSessionCookie expires the credential cookie immediately.
func clearedSessionCookie() *http.Cookie {
    return &http.Cookie{
        Name:     middleware.SessionCookie,
        Value:    "",
        Path:     "/",
        HttpOnly: true,
        SameSite: http.SameSiteLaxMode,
        MaxAge:   -1,
    }
}
