package scaffold

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/phravins/forgeweb/internal/project"
	"github.com/phravins/forgeweb/internal/templates"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v2"
)

func TestRunSQLiteEndToEnd(t *testing.T) {
	t.Setenv("HOME", t.TempDir()) // keep history out of the real home
	parent := t.TempDir()

	result, err := Run(project.Answers{Name: "My Blog", Database: "sqlite"}, parent)
	require.NoError(t, err)

	assert.Equal(t, "my-blog", result.Config.Slug)
	assert.Equal(t, 8000, result.Config.Port)
	assert.Equal(t, filepath.Join(parent, "my-blog"), result.Path)

	settings, err := os.ReadFile(filepath.Join(result.Path, "backend/my_blog/settings.py"))
	require.NoError(t, err)
	assert.Contains(t, string(settings), "django.db.backends.sqlite3")

	compose, err := os.ReadFile(filepath.Join(result.Path, "docker-compose.yml"))
	require.NoError(t, err)
	assert.NotContains(t, string(compose), "postgres")
	assert.Contains(t, string(compose), `"8000:8000"`)

	readme, err := os.ReadFile(filepath.Join(result.Path, "README.md"))
	require.NoError(t, err)
	for _, want := range []string{"My Blog", "my-blog", "8000", "sqlite"} {
		assert.Contains(t, string(readme), want)
	}
}

func TestRunPostgresEndToEnd(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	parent := t.TempDir()

	result, err := Run(project.Answers{
		Name:     "Shop",
		Slug:     "shop-api",
		Port:     "9090",
		Database: "postgresql",
	}, parent)
	require.NoError(t, err)

	compose, err := os.ReadFile(filepath.Join(result.Path, "docker-compose.yml"))
	require.NoError(t, err)
	assert.Contains(t, string(compose), "image: postgres:13")
	assert.Contains(t, string(compose), `"9090:9090"`)

	settings, err := os.ReadFile(filepath.Join(result.Path, "backend/shop_api/settings.py"))
	require.NoError(t, err)
	assert.Contains(t, string(settings), "django.db.backends.postgresql")
	assert.Contains(t, string(settings), "'HOST': 'db'")
}

func TestRunWritesManifest(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	parent := t.TempDir()

	result, err := Run(project.Answers{Name: "Shop", Port: "9090"}, parent)
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(result.Path, ManifestName))
	require.NoError(t, err)

	var cfg project.Config
	require.NoError(t, yaml.Unmarshal(data, &cfg))
	assert.Equal(t, *result.Config, cfg)
}

func TestRunSurfacesFirstValidationError(t *testing.T) {
	_, err := Run(project.Answers{}, t.TempDir())
	var vErr *project.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "name", vErr.Field)
}

func TestRunRefusesExistingTarget(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	parent := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(parent, "shop", "keep"), 0755))

	_, err := Run(project.Answers{Name: "Shop"}, parent)
	var existsErr *PathExistsError
	require.ErrorAs(t, err, &existsErr)
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"nil", nil, ExitOK},
		{"validation", &project.ValidationError{Field: "port", Reason: "x"}, ExitValidation},
		{"path exists", &PathExistsError{Path: "/tmp/x"}, ExitPathExists},
		{"write", &WriteError{Path: "/tmp/x", Err: os.ErrPermission}, ExitWrite},
		{"template", &templates.Error{Name: "t", Err: errors.New("boom")}, ExitTemplate},
		{"unknown", errors.New("other"), ExitValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExitCode(tt.err))
		})
	}
}

func TestRunDeterministicAcrossRuns(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	answers := project.Answers{Name: "Twice", Database: "sqlite"}

	first, err := Run(answers, t.TempDir())
	require.NoError(t, err)
	second, err := Run(answers, t.TempDir())
	require.NoError(t, err)

	for _, rel := range first.Files {
		a, err := os.ReadFile(filepath.Join(first.Path, rel))
		require.NoError(t, err)
		b, err := os.ReadFile(filepath.Join(second.Path, rel))
		require.NoError(t, err)
		assert.Equal(t, string(a), string(b), rel)
	}
}
