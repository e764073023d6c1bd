package scaffold

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/phravins/forgeweb/internal/config"
	"github.com/phravins/forgeweb/internal/output"
	"github.com/phravins/forgeweb/internal/project"
)

// maxAttempts bounds how often a single field is re-prompted before the run
// aborts with the last validation error.
const maxAttempts = 3

// Collector gathers answers interactively for fields the caller did not
// supply. Validation failures re-prompt; everything else passes through.
type Collector struct {
	scanner  *bufio.Scanner
	out      io.Writer
	defaults *config.Config
}

func NewCollector(in io.Reader, out io.Writer, defaults *config.Config) *Collector {
	if defaults == nil {
		defaults = &config.Config{
			DefaultPort:       project.DefaultPort,
			DefaultDBPassword: project.DefaultDBPassword,
		}
	}
	return &Collector{
		scanner:  bufio.NewScanner(in),
		out:      out,
		defaults: defaults,
	}
}

// Collect fills in the blanks of seed from the terminal and returns the
// completed answers. The result still goes through project.Resolve; the
// inline checks exist so mistakes are caught while the user is still there.
func (c *Collector) Collect(seed project.Answers) (project.Answers, error) {
	a := seed
	var err error

	if a.Name == "" {
		a.Name, err = c.askValid("Project name: ", func(s string) error {
			_, err := project.ValidateName(s)
			return err
		})
		if err != nil {
			return a, err
		}
	}

	if a.Slug == "" {
		derived := project.Slugify(a.Name)
		a.Slug, err = c.askValid(fmt.Sprintf("Slug (blank for %q): ", derived), func(s string) error {
			if s == "" || project.IsValidSlug(s) {
				return nil
			}
			return &project.ValidationError{Field: "slug", Reason: "lowercase alphanumerics, hyphens and underscores only"}
		})
		if err != nil {
			return a, err
		}
	}

	if a.Port == "" {
		a.Port, err = c.askPort(fmt.Sprintf("Port (default %d): ", c.defaults.DefaultPort), false)
		if err != nil {
			return a, err
		}
	}

	if a.Database == "" {
		fmt.Fprintln(c.out, "Select a database:")
		for i, db := range project.Databases {
			fmt.Fprintf(c.out, "  %d) %s\n", i+1, db.Label())
		}
		choice, err := c.askValid("Choice (default 1): ", func(s string) error {
			if s == "" {
				return nil
			}
			_, err := project.ParseDatabase(s)
			return err
		})
		if err != nil {
			return a, err
		}
		db := project.PostgreSQL
		if choice != "" {
			db, _ = project.ParseDatabase(choice)
		}
		a.Database = string(db)
	}

	if a.Database == string(project.PostgreSQL) {
		if a.Port == "5432" {
			fmt.Fprintln(c.out, output.ErrorStyle.Render("port 5432 is reserved for the PostgreSQL service"))
			a.Port, err = c.askPort("Port: ", true)
			if err != nil {
				return a, err
			}
		}
		c.collectCredentials(&a)
	}

	return a, nil
}

func (c *Collector) collectCredentials(a *project.Answers) {
	slug := a.Slug
	if slug == "" {
		slug = project.Slugify(a.Name)
	}
	if a.DBName == "" {
		a.DBName = c.askDefault(fmt.Sprintf("Database name (default %s): ", slug), slug)
	}
	if a.DBUser == "" {
		a.DBUser = c.askDefault(fmt.Sprintf("Database user (default %s): ", slug), slug)
	}
	if a.DBPassword == "" {
		a.DBPassword = c.askDefault(
			fmt.Sprintf("Database password (default %s): ", c.defaults.DefaultDBPassword),
			c.defaults.DefaultDBPassword)
	}
}

func (c *Collector) askPort(prompt string, postgres bool) (string, error) {
	answer, err := c.askValid(prompt, func(s string) error {
		if s == "" {
			s = strconv.Itoa(c.defaults.DefaultPort)
		}
		port, err := project.ValidatePort(s)
		if err != nil {
			return err
		}
		if postgres && port == 5432 {
			return &project.ValidationError{Field: "port", Reason: "5432 is reserved for the PostgreSQL service"}
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	if answer == "" {
		answer = strconv.Itoa(c.defaults.DefaultPort)
	}
	return answer, nil
}

// ask prints the prompt and reads one trimmed line.
func (c *Collector) ask(prompt string) string {
	fmt.Fprint(c.out, prompt)
	if !c.scanner.Scan() {
		return ""
	}
	return strings.TrimSpace(c.scanner.Text())
}

func (c *Collector) askDefault(prompt, fallback string) string {
	if answer := c.ask(prompt); answer != "" {
		return answer
	}
	return fallback
}

// askValid re-prompts until validate accepts the answer or the attempt
// budget runs out, in which case the last validation error is returned.
func (c *Collector) askValid(prompt string, validate func(string) error) (string, error) {
	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		answer := c.ask(prompt)
		if lastErr = validate(answer); lastErr == nil {
			return answer, nil
		}
		fmt.Fprintln(c.out, output.ErrorStyle.Render(lastErr.Error()))
	}
	return "", lastErr
}
