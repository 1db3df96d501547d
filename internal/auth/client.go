// Package auth contains the HTTP client for the external authentication
// service.  Credential verification is fully delegated: this application
// never hashes a password or validates a token signature itself.  Every
// protected request costs one ResolveUser round trip; there is no local
// session cache.
package auth

import (
    "bytes"
    "context"
    "encoding/json"
    "errors"
    "fmt"
    "io"
    "net/http"
    "time"

    "github.com/golang-jwt/jwt/v5"
)

// User is the subset of the auth service's user object this application
// cares about.  ID is the stable identity string used as the tenant key on
// every stored row.
type User struct {
    ID    string `json:"id"`
    Email string `json:"email"`
}

// Session is returned by a successful password sign-in.  AccessToken is the
// opaque bearer credential handed to the browser in a cookie.
type Session struct {
    AccessToken string `json:"access_token"`
    TokenType   string `json:"token_type"`
    ExpiresIn   int    `json:"expires_in"`
    User        *User  `json:"user"`
}

// Verifier resolves a bearer token to a user.  The session middleware depends
// on this interface rather than on Client so tests can substitute a fake.
type Verifier interface {
    ResolveUser(ctx context.Context, token string) (*User, error)
}

// ErrUnauthenticated is returned when the auth service rejects a credential.
// Callers must not distinguish why: malformed, expired and revoked tokens all
// collapse to this one value so the failure mode leaks nothing.
var ErrUnauthenticated = errors.New("unauthenticated")

// Client talks to a Supabase-style auth API over HTTP+JSON.  The service key
// is sent as the apikey header on every call.
type Client struct {
    baseURL string
    apiKey  string
    http    *http.Client
}

// NewClient builds an auth client for the given base URL and service key.
func NewClient(baseURL, apiKey string) *Client {
    return &Client{
        baseURL: baseURL,
        apiKey:  apiKey,
        http:    &http.Client{Timeout: 10 * time.Second},
    }
}

// SignUp registers a new operator account with the auth service.
func (c *Client) SignUp(ctx context.Context, email, password string) (*User, error) {
    var out struct {
        ID    string `json:"id"`
        Email string `json:"email"`
        User  *User  `json:"user"`
    }
    if err := c.post(ctx, "/auth/v1/signup", "", map[string]string{
        "email":    email,
        "password": password,
    }, &out); err != nil {
        return nil, err
    }
    // Depending on the service's confirmation settings the user object is
    // either inlined or nested under "user".
    if out.User != nil {
        return out.User, nil
    }
    if out.ID == "" {
        return nil, errors.New("signup response carried no user")
    }
    return &User{ID: out.ID, Email: out.Email}, nil
}

// SignIn exchanges email/password credentials for a session.  Any rejection
// by the auth service collapses to ErrUnauthenticated.
func (c *Client) SignIn(ctx context.Context, email, password string) (*Session, error) {
    var s Session
    if err := c.post(ctx, "/auth/v1/token?grant_type=password", "", map[string]string{
        "email":    email,
        "password": password,
    }, &s); err != nil {
        return nil, err
    }
    if s.AccessToken == "" || s.User == nil || s.User.ID == "" {
        return nil, ErrUnauthenticated
    }
    return &s, nil
}

// ResolveUser asks the auth service which user the bearer token belongs to.
// It implements Verifier.  A missing or empty user id is treated the same as
// an outright rejection.
func (c *Client) ResolveUser(ctx context.Context, token string) (*User, error) {
    req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/auth/v1/user", nil)
    if err != nil {
        return nil, err
    }
    c.setHeaders(req, token)
    resp, err := c.http.Do(req)
    if err != nil {
        return nil, err
    }
    defer resp.Body.Close()
    if resp.StatusCode < 200 || resp.StatusCode > 299 {
        return nil, ErrUnauthenticated
    }
    var u User
    if err := json.NewDecoder(resp.Body).Decode(&u); err != nil {
        return nil, err
    }
    if u.ID == "" {
        return nil, ErrUnauthenticated
    }
    return &u, nil
}

// SignOut revokes the session behind the given token.  The caller clears the
// cookie regardless, so failures here only matter for logging.
func (c *Client) SignOut(ctx context.Context, token string) error {
    return c.post(ctx, "/auth/v1/logout", token, nil, nil)
}

// post issues a JSON POST and decodes the response into out when non-nil.
// A bearer token is attached when provided; the apikey header always is.
func (c *Client) post(ctx context.Context, path, token string, body, out any) error {
    var rd io.Reader
    if body != nil {
        data, err := json.Marshal(body)
        if err != nil {
            return err
        }
        rd = bytes.NewReader(data)
    }
    req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, rd)
    if err != nil {
        return err
    }
    if body != nil {
        req.Header.Set("Content-Type", "application/json")
    }
    c.setHeaders(req, token)
    resp, err := c.http.Do(req)
    if err != nil {
        return err
    }
    defer resp.Body.Close()
    if resp.StatusCode < 200 || resp.StatusCode > 299 {
        b, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
        return fmt.Errorf("auth service returned %d: %s", resp.StatusCode, string(b))
    }
    if out == nil {
        return nil
    }
    return json.NewDecoder(resp.Body).Decode(out)
}

func (c *Client) setHeaders(req *http.Request, token string) {
    req.Header.Set("apikey", c.apiKey)
    if token != "" {
        req.Header.Set("Authorization", "Bearer "+token)
    }
}

// TokenExpiry reads the exp claim out of a JWT access token without
// verifying its signature; verification stays with the auth service.  The
// result bounds the lifetime of the session cookie.  Tokens that are not
// JWTs or carry no exp claim report ok=false and get a session cookie.
func TokenExpiry(token string) (time.Time, bool) {
    claims := jwt.MapClaims{}
    if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
        return time.Time{}, false
    }
    exp, err := claims.GetExpirationTime()
    if err != nil || exp == nil {
        return time.Time{}, false
    }
    return exp.Time, true
}
