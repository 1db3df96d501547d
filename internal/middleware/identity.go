package middleware

// identity.go defines helper functions shared across middleware files.  The
// session middleware stores the resolved identity under `user_id`; the cache
// and rate-limit middlewares read it back through currentUserID so their keys
// are always tenant-scoped.  Requests without a session report "anon".

import (
    "github.com/labstack/echo/v4"
)

// currentUserID extracts the resolved identity from the Echo context.  It
// returns "anon" when no session has been resolved for this request.
func currentUserID(c echo.Context) string {
    if v := c.Get("user_id"); v != nil {
        if s, ok := v.(string); ok && s != "" {
            return s
        }
    }
    return "anon"
}
