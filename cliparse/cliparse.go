package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/kennethjason07/hallticket-gndecb/models"
)

type Config struct {
	Port            int
	Institution     string
	DefaultLogoPath string
	MaxUploadMB     int
	LogLevel        string
	LogFormat       string
}

// LoadEnv loads KEY=VALUE pairs from an env file without overriding
// variables that are already set. A missing file is not an error.
func LoadEnv(path string) error {
	err := godotenv.Load(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

// ParseFlags validates flags and fills unset values from the environment
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	flags := flag.NewFlagSet("hallticket", flag.ContinueOnError)

	flags.IntVar(&cfg.Port, "p", 0, "Server port")
	flags.StringVar(&cfg.Institution, "institution", "", "Institution name printed on every ticket")
	flags.StringVar(&cfg.DefaultLogoPath, "logo", "", "Default logo file (bundled logo if empty)")
	flags.IntVar(&cfg.MaxUploadMB, "max-upload-mb", 0, "Upload size kept in memory before spilling to disk, in MB")
	flags.StringVar(&cfg.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	flags.StringVar(&cfg.LogFormat, "log-format", "", "Log format (text or json)")

	if err := flags.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		port, err := intEnv("PORT", 3000)
		if err != nil {
			return Config{}, err
		}
		cfg.Port = port
	}
	if cfg.MaxUploadMB == 0 {
		mb, err := intEnv("MAX_UPLOAD_MB", 32)
		if err != nil {
			return Config{}, err
		}
		cfg.MaxUploadMB = mb
	}
	if cfg.MaxUploadMB < 1 {
		return Config{}, errors.New("max upload size must be at least 1 MB")
	}

	cfg.Institution = stringEnv(cfg.Institution, "INSTITUTION_NAME", models.DefaultInstitution)
	cfg.DefaultLogoPath = stringEnv(cfg.DefaultLogoPath, "DEFAULT_LOGO_PATH", "")
	cfg.LogLevel = stringEnv(cfg.LogLevel, "LOG_LEVEL", "info")
	cfg.LogFormat = stringEnv(cfg.LogFormat, "LOG_FORMAT", "text")

	switch cfg.LogFormat {
	case "text", "json":
	default:
		return Config{}, fmt.Errorf("invalid log format %q (must be text or json)", cfg.LogFormat)
	}

	return cfg, nil
}

func intEnv(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s env variable", key)
	}
	return n, nil
}

func stringEnv(flagValue, key, def string) string {
	if flagValue != "" {
		return flagValue
	}
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// NewLogger builds the process logger described by LogLevel and LogFormat
func (c Config) NewLogger(w io.Writer) (*slog.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}

	opts := &slog.HandlerOptions{Level: level}
	if c.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	}
	return slog.New(slog.NewTextHandler(w, opts)), nil
}
