package scaffold

import (
	"fmt"
	"os"

	"github.com/phravins/forgeweb/internal/project"
	"gopkg.in/yaml.v2"
)

// LoadAnswers reads a YAML answers file for fully non-interactive runs.
func LoadAnswers(path string) (project.Answers, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return project.Answers{}, err
	}
	var a project.Answers
	if err := yaml.Unmarshal(data, &a); err != nil {
		return project.Answers{}, fmt.Errorf("parsing answers file %s: %w", path, err)
	}
	return a, nil
}

// mergeAnswers overlays primary on top of fallback, field by field.
func mergeAnswers(primary, fallback project.Answers) project.Answers {
	return project.Answers{
		Name:       pick(primary.Name, fallback.Name),
		Slug:       pick(primary.Slug, fallback.Slug),
		Port:       pick(primary.Port, fallback.Port),
		Database:   pick(primary.Database, fallback.Database),
		DBName:     pick(primary.DBName, fallback.DBName),
		DBUser:     pick(primary.DBUser, fallback.DBUser),
		DBPassword: pick(primary.DBPassword, fallback.DBPassword),
	}
}

func pick(v, fallback string) string {
	if v != "" {
		return v
	}
	return fallback
}
