package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"
	"unicode/utf8"

	"github.com/joho/godotenv"
)

// ErrMissingEnv is returned when a required environment variable is unset.
var ErrMissingEnv = errors.New("environment variable is not set")

// Config holds the application's configuration values.
type Config struct {
	HostIP       string        // Host IP for the HTTP API
	RESTPort     int           // Port for the HTTP API
	GinMode      string        // Mode for the Gin framework (e.g., release, debug, test)
	TicketSecret string        // Secret key for signing share tickets
	TicketIssuer string        // Issuer claim for share tickets
	TicketTTL    time.Duration // Lifetime of a share ticket
	MaxDimension int           // Largest width or height accepted from users
	WallGlyph    rune          // Glyph for walls
	PathGlyph    rune          // Glyph for the solution path
	OffsetX      int           // Columns of padding before the maze
	OffsetY      int           // Rows of padding above the maze
}

// Default returns the configuration used when nothing is set in the environment.
func Default() Config {
	return Config{
		HostIP:       "0.0.0.0",
		RESTPort:     8080,
		GinMode:      "release",
		TicketIssuer: "mazegeneratorsolver",
		TicketTTL:    24 * time.Hour,
		MaxDimension: 200,
		WallGlyph:    '█',
		PathGlyph:    '•',
		OffsetX:      1,
		OffsetY:      1,
	}
}

// Load reads an optional .env file and overlays environment variables on Default.
func Load(files ...string) (Config, error) {
	// A missing .env file is not an error.
	_ = godotenv.Load(files...)

	c := Default()
	var err error

	c.HostIP = getEnvWithDefault("HOST_IP", c.HostIP)
	c.GinMode = getEnvWithDefault("GIN_MODE", c.GinMode)
	c.TicketSecret = getEnvWithDefault("TICKET_SECRET", c.TicketSecret)
	c.TicketIssuer = getEnvWithDefault("TICKET_ISSUER", c.TicketIssuer)

	if c.RESTPort, err = getEnvAsInt("REST_PORT", c.RESTPort); err != nil {
		return Config{}, err
	}
	ttl, err := getEnvAsInt("TICKET_TTL_MINUTES", int(c.TicketTTL/time.Minute))
	if err != nil {
		return Config{}, err
	}
	c.TicketTTL = time.Duration(ttl) * time.Minute
	if c.MaxDimension, err = getEnvAsInt("MAX_DIMENSION", c.MaxDimension); err != nil {
		return Config{}, err
	}
	if c.OffsetX, err = getEnvAsInt("OFFSET_X", c.OffsetX); err != nil {
		return Config{}, err
	}
	if c.OffsetY, err = getEnvAsInt("OFFSET_Y", c.OffsetY); err != nil {
		return Config{}, err
	}
	if c.WallGlyph, err = getEnvAsRune("WALL_GLYPH", c.WallGlyph); err != nil {
		return Config{}, err
	}
	if c.PathGlyph, err = getEnvAsRune("PATH_GLYPH", c.PathGlyph); err != nil {
		return Config{}, err
	}

	if c.MaxDimension < 1 {
		return Config{}, fmt.Errorf("MAX_DIMENSION must be positive, got %d", c.MaxDimension)
	}
	switch c.GinMode {
	case "debug", "release", "test":
	default:
		return Config{}, fmt.Errorf("GIN_MODE must be debug, release or test, got %q", c.GinMode)
	}
	if c.OffsetX < 0 || c.OffsetY < 0 {
		return Config{}, fmt.Errorf("OFFSET_X and OFFSET_Y must not be negative")
	}
	return c, nil
}

// RequireTicketSecret fails when no ticket secret is configured.
func (c Config) RequireTicketSecret() error {
	if c.TicketSecret == "" {
		return fmt.Errorf("%w: TICKET_SECRET", ErrMissingEnv)
	}
	return nil
}

// Addr returns the API listen address.
func (c Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.HostIP, c.RESTPort)
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt retrieves the value of an environment variable as an integer.
func getEnvAsInt(key string, defaultValue int) (int, error) {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue, nil
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return 0, fmt.Errorf("environment variable %s must be an integer: %w", key, err)
	}
	return value, nil
}

// getEnvAsRune retrieves an environment variable holding exactly one character.
func getEnvAsRune(key string, defaultValue rune) (rune, error) {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue, nil
	}
	if utf8.RuneCountInString(valueStr) != 1 {
		return 0, fmt.Errorf("environment variable %s must be a single character, got %q", key, valueStr)
	}
	r, _ := utf8.DecodeRuneInString(valueStr)
	return r, nil
}
