package project

import (
	"strconv"
	"strings"
)

const (
	DefaultPort       = 8000
	DefaultDBPassword = "password"
)

// Config is the single immutable record of user choices driving generation.
// Built once per run via Resolve and read-only afterwards.
type Config struct {
	Name     string   `yaml:"name"`
	Slug     string   `yaml:"slug"`
	Port     int      `yaml:"port"`
	Database Database `yaml:"database"`

	// PostgreSQL connection values; empty for SQLite.
	DBName     string `yaml:"db_name,omitempty"`
	DBUser     string `yaml:"db_user,omitempty"`
	DBPassword string `yaml:"db_password,omitempty"`
}

// PackageName is the Python package the Django settings live in. Slugs may
// carry hyphens; Python module names may not.
func (c Config) PackageName() string {
	return strings.ReplaceAll(c.Slug, "-", "_")
}

// IsPostgres reports whether the project runs against PostgreSQL. Used by
// templates to switch database blocks and compose services.
func (c Config) IsPostgres() bool {
	return c.Database == PostgreSQL
}

// Answers holds the raw, unvalidated strings collected from prompts, flags
// or an answers file. Empty means "use the default".
type Answers struct {
	Name       string `yaml:"name"`
	Slug       string `yaml:"slug"`
	Port       string `yaml:"port"`
	Database   string `yaml:"database"`
	DBName     string `yaml:"db_name"`
	DBUser     string `yaml:"db_user"`
	DBPassword string `yaml:"db_password"`
}

// Resolve turns raw answers into a validated Config. It is a pure function:
// no prompting, no filesystem. All validation failures are reported at once
// so a caller can re-prompt for exactly the fields that failed.
func Resolve(a Answers) (*Config, []error) {
	var errs []error

	name, err := ValidateName(a.Name)
	if err != nil {
		errs = append(errs, err)
	}

	slug := strings.TrimSpace(a.Slug)
	if slug == "" {
		slug = Slugify(name)
		if slug == "" && err == nil {
			errs = append(errs, invalid("slug", "name %q contains no usable characters", name))
		}
	} else if !IsValidSlug(slug) {
		errs = append(errs, invalid("slug", "%q is not lowercase alphanumeric with single hyphens/underscores", slug))
	}

	port, err := ValidatePort(a.Port)
	if err != nil {
		errs = append(errs, err)
	}

	db := PostgreSQL
	if strings.TrimSpace(a.Database) != "" {
		db, err = ParseDatabase(a.Database)
		if err != nil {
			errs = append(errs, err)
		}
	}

	if db == PostgreSQL && port == 5432 {
		errs = append(errs, invalid("port", "5432 is reserved for the PostgreSQL service"))
	}

	cfg := &Config{
		Name:     name,
		Slug:     slug,
		Port:     port,
		Database: db,
	}

	if db == PostgreSQL {
		cfg.DBName = firstNonEmpty(strings.TrimSpace(a.DBName), slug)
		cfg.DBUser = firstNonEmpty(strings.TrimSpace(a.DBUser), slug)
		cfg.DBPassword = firstNonEmpty(a.DBPassword, DefaultDBPassword)
	}

	if len(errs) > 0 {
		return nil, errs
	}
	return cfg, nil
}

// ValidateName checks the project name answer.
func ValidateName(raw string) (string, error) {
	name := strings.TrimSpace(raw)
	if name == "" {
		return "", invalid("name", "project name is required")
	}
	return name, nil
}

// ValidatePort checks the port answer. Blank means the default.
func ValidatePort(raw string) (int, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return DefaultPort, nil
	}
	port, err := strconv.Atoi(s)
	if err != nil {
		return 0, invalid("port", "%q is not a number", raw)
	}
	if port < 1 || port > 65535 {
		return 0, invalid("port", "%d is outside 1-65535", port)
	}
	return port, nil
}

func firstNonEmpty(v, fallback string) string {
	if v != "" {
		return v
	}
	return fallback
}
