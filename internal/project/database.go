package project

import (
	"fmt"
	"strings"

	"github.com/sahilm/fuzzy"
)

// Database is the persistence engine the scaffolded project runs against.
type Database string

const (
	PostgreSQL Database = "postgresql"
	SQLite     Database = "sqlite"
)

// Databases lists the supported kinds in menu order.
var Databases = []Database{PostgreSQL, SQLite}

// ParseDatabase resolves user input to a Database. Menu numbers ("1", "2")
// and common aliases are accepted; anything else fails with a fuzzy
// suggestion when one is close enough.
func ParseDatabase(input string) (Database, error) {
	v := strings.ToLower(strings.TrimSpace(input))
	switch v {
	case "1", "postgresql", "postgres", "pg":
		return PostgreSQL, nil
	case "2", "sqlite", "sqlite3":
		return SQLite, nil
	}

	names := make([]string, len(Databases))
	for i, db := range Databases {
		names[i] = string(db)
	}
	if matches := fuzzy.Find(v, names); len(matches) > 0 {
		return "", invalid("database", "unknown database %q, did you mean %q?", input, matches[0].Str)
	}
	return "", invalid("database", "must be one of: %s", joinDatabases())
}

func joinDatabases() string {
	names := make([]string, len(Databases))
	for i, db := range Databases {
		names[i] = string(db)
	}
	return strings.Join(names, ", ")
}

// Label returns the display name used in menus and the generated README.
func (d Database) Label() string {
	switch d {
	case PostgreSQL:
		return "PostgreSQL"
	case SQLite:
		return "SQLite"
	}
	return fmt.Sprintf("unknown (%s)", string(d))
}
