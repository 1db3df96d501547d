package config // package config loads application configuration from environment variables

import (
    "log" // log is used to report configuration errors and halt execution
    "os"  // os provides access to environment variables
)

// Config holds all runtime configuration values.  Each field corresponds to
// an environment variable.  The external auth service, the record store and
// the object store are hard dependencies: missing values for them abort
// startup.  Upload and static directories fall back to sensible defaults.
type Config struct {
    Env           string // application environment (e.g. "dev", "prod")
    Port          string // HTTP port to listen on
    DBUser        string // database username
    DBPass        string // database password (optional)
    DBHost        string // database host address
    DBPort        string // database port number
    DBName        string // database name
    AuthURL       string // base URL of the external auth service
    AuthKey       string // service key sent as the apikey header on auth calls
    StorageURL    string // base URL of the external object store
    StorageKey    string // service key for object store uploads
    StorageBucket string // bucket that receives mirrored uploads
    UploadDir     string // local directory that keeps the authoritative upload copy
    WebDir        string // directory holding the static entry/dashboard pages
}

// Load reads configuration values from environment variables and returns a
// Config.  Required variables are enforced by must() and missing values
// cause the program to exit with a fatal log message.  The auth and storage
// endpoints accept SUPABASE_URL / SUPABASE_KEY as a shared fallback so a
// single Supabase project can back both services.
func Load() Config {
    return Config{
        Env:           must("APP_ENV"),      // environment (dev/test/prod)
        Port:          must("APP_PORT"),     // port to bind the HTTP server
        DBUser:        must("DB_USER"),      // database user
        DBPass:        os.Getenv("DB_PASS"), // database password (empty allowed)
        DBHost:        must("DB_HOST"),      // database host
        DBPort:        must("DB_PORT"),      // database port
        DBName:        must("DB_NAME"),      // database name
        AuthURL:       mustAny("AUTH_URL", "SUPABASE_URL"),
        AuthKey:       mustAny("AUTH_SERVICE_KEY", "SUPABASE_KEY"),
        StorageURL:    mustAny("STORAGE_URL", "SUPABASE_URL"),
        StorageKey:    mustAny("STORAGE_SERVICE_KEY", "SUPABASE_KEY"),
        StorageBucket: getenv("STORAGE_BUCKET", "files"),
        UploadDir:     getenv("UPLOAD_DIR", "uploads"),
        WebDir:        getenv("WEB_DIR", "web"),
    }
}

// must retrieves the value of a required environment variable.  If the
// variable is unset or empty, the application logs a fatal error and exits.
func must(key string) string {
    v, ok := os.LookupEnv(key)
    if !ok || v == "" {
        log.Fatalf("missing required env var: %s", key)
    }
    return v
}

// mustAny returns the first non-empty value among the given variables and
// exits when none of them is set.  It exists so AUTH_URL/STORAGE_URL can
// default to the shared SUPABASE_URL without duplicating lookups at call sites.
func mustAny(keys ...string) string {
    for _, k := range keys {
        if v := os.Getenv(k); v != "" {
            return v
        }
    }
    log.Fatalf("missing required env var: %s", keys[0])
    return ""
}
