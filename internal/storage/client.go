// Package storage contains the HTTP client for the external object store that
// mirrors uploaded files.  The mirror is best-effort: the upload handler
// treats any failure here as a null remote URL, never as a request failure.
package storage

import (
    "bytes"
    "context"
    "fmt"
    "io"
    "net/http"
    "net/url"
    "time"
)

// ObjectStore is the surface the upload handler depends on.  Tests substitute
// a fake; production uses Client.
type ObjectStore interface {
    Upload(ctx context.Context, bucket, name string, data []byte, contentType string) error
    PublicURL(bucket, name string) string
}

// Client talks to a Supabase-style storage API.  Objects are written with the
// service key and read back through the public URL scheme, so the bucket must
// be configured as public on the service side.
type Client struct {
    baseURL string
    apiKey  string
    http    *http.Client
}

// NewClient builds a storage client for the given base URL and service key.
func NewClient(baseURL, apiKey string) *Client {
    return &Client{
        baseURL: baseURL,
        apiKey:  apiKey,
        http:    &http.Client{Timeout: 30 * time.Second},
    }
}

// Upload writes data under bucket/name, overwriting any existing object with
// the same name (the local mirror behaves the same way).
func (c *Client) Upload(ctx context.Context, bucket, name string, data []byte, contentType string) error {
    endpoint := fmt.Sprintf("%s/storage/v1/object/%s/%s", c.baseURL, url.PathEscape(bucket), url.PathEscape(name))
    req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(data))
    if err != nil {
        return err
    }
    req.Header.Set("apikey", c.apiKey)
    req.Header.Set("Authorization", "Bearer "+c.apiKey)
    req.Header.Set("x-upsert", "true")
    if contentType != "" {
        req.Header.Set("Content-Type", contentType)
    }
    resp, err := c.http.Do(req)
    if err != nil {
        return err
    }
    defer resp.Body.Close()
    if resp.StatusCode < 200 || resp.StatusCode > 299 {
        b, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
        return fmt.Errorf("object store returned %d: %s", resp.StatusCode, string(b))
    }
    return nil
}

// PublicURL returns the public download URL for bucket/name.  No request is
// made; the scheme is fixed by the storage API.
func (c *Client) PublicURL(bucket, name string) string {
    return fmt.Sprintf("%s/storage/v1/object/public/%s/%s", c.baseURL, url.PathEscape(bucket), url.PathEscape(name))
}
