package scaffold

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/chroma/v2/quick"
	"github.com/charmbracelet/glamour"
	"github.com/phravins/forgeweb/internal/config"
	"github.com/phravins/forgeweb/internal/output"
	"github.com/phravins/forgeweb/internal/project"
	"github.com/phravins/forgeweb/internal/templates"
	"github.com/spf13/cobra"
)

func runPreview(cmd *cobra.Command, args []string) error {
	defaults, err := config.Load()
	if err != nil {
		output.Warn("could not load user defaults", "err", err)
	}

	answers, err := gatherAnswers(defaults)
	if err != nil {
		return err
	}

	cfg, errs := project.Resolve(answers)
	if len(errs) > 0 {
		return errs[0]
	}

	rendered, err := templates.Render(*cfg)
	if err != nil {
		return err
	}

	for _, path := range templates.Paths(rendered) {
		content := rendered[path]
		if strings.TrimSpace(content) == "" {
			continue
		}
		fmt.Println(output.FileHeaderStyle.Render(path))
		printHighlighted(path, content)
		fmt.Println()
	}
	return nil
}

func printHighlighted(path, content string) {
	if strings.HasSuffix(path, ".md") {
		renderer, err := glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(100),
		)
		if err == nil {
			if out, err := renderer.Render(content); err == nil {
				fmt.Print(out)
				return
			}
		}
	}

	if err := quick.Highlight(os.Stdout, content, lexerFor(path), "terminal256", "dracula"); err != nil {
		fmt.Print(content)
	}
	if !strings.HasSuffix(content, "\n") {
		fmt.Println()
	}
}

func lexerFor(path string) string {
	switch {
	case strings.HasSuffix(path, ".py"):
		return "python"
	case strings.HasSuffix(path, ".yml"), strings.HasSuffix(path, ".yaml"):
		return "yaml"
	case filepath.Base(path) == "Dockerfile":
		return "docker"
	default:
		return "text"
	}
}
