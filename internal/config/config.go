package config // package config loads application configuration from environment variables

import (
    "log"     // log is used to report configuration errors and halt execution
    "os"      // os provides access to environment variables
    "strconv" // strconv converts strings to other types
    "time"    // time expresses TTLs and timeouts
)

// Config holds the runtime configuration of the frontend service. The
// service owns no business data; all it needs to know is where to
// listen, where the backend platform API lives and how the browser
// session cookie behaves.
type Config struct {
    Env            string        // application environment (e.g. "dev", "prod")
    Port           string        // HTTP port to listen on
    BackendURL     string        // base URL of the backend platform API
    BackendTimeout time.Duration // per-call timeout for backend requests
    CookieName     string        // name of the browser session cookie
    CookieTTL      time.Duration // lifetime of the session cookie and stored snapshots
    CookieSecure   bool          // set the Secure flag on the cookie (HTTPS only)
}

// Load reads configuration values from environment variables. Required
// variables are enforced by must(); missing values cause the program to
// exit with a fatal log message. Cookie settings fall back to sensible
// defaults.
func Load() Config {
    return Config{
        Env:            must("APP_ENV"),         // environment (dev/test/prod)
        Port:           must("APP_PORT"),        // port to bind the HTTP server
        BackendURL:     must("BACKEND_API_URL"), // backend platform API base URL
        BackendTimeout: time.Duration(intDefault("BACKEND_TIMEOUT_SEC", 10)) * time.Second,
        CookieName:     getenv("SESSION_COOKIE_NAME", "salon_session"),
        CookieTTL:      time.Duration(intDefault("SESSION_TTL_HOURS", 72)) * time.Hour,
        CookieSecure:   getenv("SESSION_COOKIE_SECURE", "false") == "true",
    }
}

// must retrieves the value of a required environment variable. If the
// variable is unset or empty, the application logs a fatal error and
// exits.
func must(key string) string {
    v, ok := os.LookupEnv(key)
    if !ok || v == "" {
        log.Fatalf("missing required env var: %s", key)
    }
    return v
}

// intDefault reads an integer variable, falling back to def when the
// variable is unset. An unparsable value is a configuration mistake
// and aborts startup.
func intDefault(key string, def int) int {
    s := os.Getenv(key)
    if s == "" {
        return def
    }
    n, err := strconv.Atoi(s)
    if err != nil {
        log.Fatalf("invalid int for %s: %q", key, s)
    }
    return n
}

func getenv(key, def string) string {
    if v := os.Getenv(key); v != "" {
        return v
    }
    return def
}
