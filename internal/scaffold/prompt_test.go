package scaffold

import (
	"bytes"
	"strings"
	"testing"

	"github.com/phravins/forgeweb/internal/config"
	"github.com/phravins/forgeweb/internal/project"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDefaults() *config.Config {
	return &config.Config{DefaultPort: 8000, DefaultDBPassword: "password"}
}

func collect(t *testing.T, lines ...string) (project.Answers, error) {
	t.Helper()
	in := strings.NewReader(strings.Join(lines, "\n") + "\n")
	var out bytes.Buffer
	c := NewCollector(in, &out, testDefaults())
	return c.Collect(project.Answers{})
}

func TestCollectSQLiteDefaults(t *testing.T) {
	// name, slug blank, port blank, database choice 2
	answers, err := collect(t, "My Blog", "", "", "2")
	require.NoError(t, err)

	cfg, errs := project.Resolve(answers)
	require.Empty(t, errs)
	assert.Equal(t, "my-blog", cfg.Slug)
	assert.Equal(t, 8000, cfg.Port)
	assert.Equal(t, project.SQLite, cfg.Database)
}

func TestCollectPostgresCredentials(t *testing.T) {
	// name, slug, port, choice 1, db name blank, db user, password blank
	answers, err := collect(t, "Shop", "shop-api", "9090", "1", "", "shopadmin", "")
	require.NoError(t, err)

	cfg, errs := project.Resolve(answers)
	require.Empty(t, errs)
	assert.Equal(t, project.PostgreSQL, cfg.Database)
	assert.Equal(t, "shop-api", cfg.DBName)
	assert.Equal(t, "shopadmin", cfg.DBUser)
	assert.Equal(t, "password", cfg.DBPassword)
}

func TestCollectRepromptsOnBadPort(t *testing.T) {
	answers, err := collect(t, "Shop", "", "not-a-port", "9090", "2")
	require.NoError(t, err)
	assert.Equal(t, "9090", answers.Port)
}

func TestCollectAbortsAfterThreeBadPorts(t *testing.T) {
	_, err := collect(t, "Shop", "", "nope", "also nope", "70000")
	var vErr *project.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "port", vErr.Field)
}

func TestCollectRepromptsReservedPostgresPort(t *testing.T) {
	// port 5432 is fine until PostgreSQL gets picked, then it is re-asked
	answers, err := collect(t, "Shop", "", "5432", "1", "9090", "", "", "")
	require.NoError(t, err)
	assert.Equal(t, "9090", answers.Port)
}

func TestCollectSkipsSeededFields(t *testing.T) {
	in := strings.NewReader("2\n")
	var out bytes.Buffer
	c := NewCollector(in, &out, testDefaults())

	answers, err := c.Collect(project.Answers{Name: "Shop", Slug: "shop", Port: "9090"})
	require.NoError(t, err)
	assert.Equal(t, "Shop", answers.Name)
	assert.Equal(t, string(project.SQLite), answers.Database)
	assert.NotContains(t, out.String(), "Project name")
}
