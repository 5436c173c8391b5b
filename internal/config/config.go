package config // package config loads application configuration from environment variables

import (
    "log"     // log is used to report configuration errors and halt execution
    "os"      // os provides access to environment variables
    "strconv" // strconv converts strings to other types
    "strings" // strings splits comma-separated values

    "github.com/joho/godotenv" // godotenv loads a local .env file when present
)

// Config holds all runtime configuration values.  Each field corresponds to
// an environment variable.  Everything the core consumes — signing secret,
// bcrypt cost, CORS origins — lives here so the core itself never touches
// the environment.
type Config struct {
    Env            string   // application environment (e.g. "development", "production")
    Port           string   // HTTP port to listen on
    DBUser         string   // database username
    DBPass         string   // database password (optional)
    DBHost         string   // database host address
    DBPort         string   // database port number
    DBName         string   // database name
    JWTSecret      string   // secret used to sign JWTs
    BcryptCost     int      // bcrypt cost for password hashing
    AllowedOrigins []string // origins allowed by the CORS middleware
}

// IsDevelopment reports whether internal failure detail may be exposed in
// responses.  Anything other than the development environment suppresses
// it to a generic message.
func (c Config) IsDevelopment() bool { return c.Env == "development" }

// Load reads configuration values from environment variables and returns a
// Config.  A .env file in the working directory is merged in first when it
// exists.  Required variables are enforced by must() and missing values
// cause the program to exit with a fatal log message.
func Load() Config {
    _ = godotenv.Load() // absence of a .env file is not an error

    return Config{
        Env:            must("APP_ENV"),    // environment (development/test/production)
        Port:           must("APP_PORT"),   // port to bind the HTTP server
        DBUser:         must("DB_USER"),    // database user
        DBPass:         os.Getenv("DB_PASS"), // database password (empty allowed)
        DBHost:         must("DB_HOST"),    // database host
        DBPort:         must("DB_PORT"),    // database port
        DBName:         must("DB_NAME"),    // database name
        JWTSecret:      must("JWT_SECRET"), // secret used for signing JWTs
        BcryptCost:     intOr("BCRYPT_COST", 10),
        AllowedOrigins: splitOr("ALLOWED_ORIGINS", "http://localhost:3000"),
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

// intOr converts an optional environment variable into an integer, falling
// back to def when unset.  A malformed value is fatal.
func intOr(key string, def int) int {
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

// splitOr parses an optional comma-separated environment variable.
func splitOr(key, def string) []string {
    s := os.Getenv(key)
    if s == "" {
        s = def
    }
    var out []string
    for _, p := range strings.Split(s, ",") {
        if p = strings.TrimSpace(p); p != "" {
            out = append(out, p)
        }
    }
    return out
}
