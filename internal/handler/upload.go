package handler

import (
    "io"            // io reads the uploaded part into memory
    "log"           // log records tolerated mirror failures
    "net/http"      // status codes
    "os"            // local filesystem writes
    "path"          // path.Base strips directory components from filenames
    "path/filepath" // filepath joins the upload dir and name
    "strings"       // separator normalization

    "github.com/labstack/echo/v4"

    "github.com/iliyamo/hotel-venue-manager/internal/storage"
)

// uploadResponse reports both locations of a relayed file.  SupabaseURL is a
// pointer so a failed mirror serializes as JSON null rather than "".
type uploadResponse struct {
    LocalURL    string  `json:"local_url"`
    SupabaseURL *string `json:"supabase_url"`
}

// UploadHandler relays photo uploads: the local copy under Dir is
// authoritative, the object store mirror is best-effort and never fails the
// request.
type UploadHandler struct {
    Store  storage.ObjectStore // remote mirror; nil disables mirroring entirely
    Bucket string              // bucket receiving mirrored objects
    Dir    string              // local upload directory
}

func NewUploadHandler(store storage.ObjectStore, bucket, dir string) *UploadHandler {
    return &UploadHandler{Store: store, Bucket: bucket, Dir: dir}
}

// UploadPhoto handles POST /upload-photo.  The client-supplied filename keys
// both copies; it is reduced to its base name so it cannot escape the upload
// dir, and an existing file with the same name is overwritten.
func (h *UploadHandler) UploadPhoto(c echo.Context) error {
    fh, err := c.FormFile("file")
    if err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "file is required"})
    }
    name := path.Base(strings.ReplaceAll(fh.Filename, "\\", "/"))
    if name == "" || name == "." || name == ".." || name == "/" {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid filename"})
    }

    src, err := fh.Open()
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not read upload"})
    }
    defer src.Close()
    data, err := io.ReadAll(src)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not read upload"})
    }

    // Local write first; this is the authoritative copy and its failure
    // fails the request.
    if err := os.MkdirAll(h.Dir, 0o755); err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not store upload"})
    }
    if err := os.WriteFile(filepath.Join(h.Dir, name), data, 0o644); err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not store upload"})
    }

    resp := uploadResponse{LocalURL: "/uploads/" + name}

    // Mirror to the object store.  Any failure downgrades to a null remote
    // URL; the local write above is never rolled back.
    if h.Store != nil {
        contentType := fh.Header.Get("Content-Type")
        if err := h.Store.Upload(c.Request().Context(), h.Bucket, name, data, contentType); err != nil {
            log.Printf("upload mirror for %q failed: %v", name, err)
        } else {
            u := h.Store.PublicURL(h.Bucket, name)
            resp.SupabaseURL = &u
        }
    }

    return c.JSON(http.StatusOK, resp)
}
