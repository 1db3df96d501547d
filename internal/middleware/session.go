package middleware // declare the middleware package; contains reusable HTTP middleware functions

import (
    "net/http" // HTTP status codes for responses

    "github.com/labstack/echo/v4" // Echo framework used for defining middleware and handlers

    "github.com/iliyamo/hotel-venue-manager/internal/auth" // auth defines the Verifier used to resolve tokens
)

// SessionCookie is the name of the cookie that carries the bearer credential.
// It is set httponly and same-site-lax by the login handler and cleared on
// logout.
const SessionCookie = "access_token"

// RequireSession returns an Echo middleware that resolves the session cookie
// to a user identity and injects it into the request context under
// `user_id`.  Resolution is remote and uncached: every protected request
// costs one call to the auth service.  All failure modes -- missing cookie,
// malformed token, expired token, auth service error -- collapse to a single
// 401 so the response leaks nothing about why the credential was rejected.
// The missing-cookie case short-circuits before the remote call.
func RequireSession(v auth.Verifier) echo.MiddlewareFunc {
    return func(next echo.HandlerFunc) echo.HandlerFunc {
        return func(c echo.Context) error {
            // Read the session cookie from the request's cookie jar.  When
            // it is absent there is nothing to verify, so reject without
            // contacting the auth service.
            cookie, err := c.Cookie(SessionCookie)
            if err != nil || cookie.Value == "" {
                return c.JSON(http.StatusUnauthorized, echo.Map{"error": "not authenticated"})
            }
            // Ask the auth service which user this token belongs to.  Any
            // error, including transport failures, is treated as a rejected
            // credential.
            user, err := v.ResolveUser(c.Request().Context(), cookie.Value)
            if err != nil || user == nil || user.ID == "" {
                return c.JSON(http.StatusUnauthorized, echo.Map{"error": "authentication failed"})
            }
            // Store the resolved identity for handlers and downstream
            // middleware (cache and rate-limit keys include it).
            c.Set("user_id", user.ID)
            return next(c)
        }
    }
}

// RequireSessionPage is the page-route variant of RequireSession: instead of
// a 401 JSON body it redirects the browser to the entry page.  The resolved
// identity is stored under the same context key on success.
func RequireSessionPage(v auth.Verifier) echo.MiddlewareFunc {
    return func(next echo.HandlerFunc) echo.HandlerFunc {
        return func(c echo.Context) error {
            cookie, err := c.Cookie(SessionCookie)
            if err != nil || cookie.Value == "" {
                return c.Redirect(http.StatusSeeOther, "/")
            }
            user, err := v.ResolveUser(c.Request().Context(), cookie.Value)
            if err != nil || user == nil || user.ID == "" {
                return c.Redirect(http.StatusSeeOther, "/")
            }
            c.Set("user_id", user.ID)
            return next(c)
        }
    }
}
