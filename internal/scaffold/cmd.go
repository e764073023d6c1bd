package scaffold

import (
	"fmt"
	"os"
	"strconv"

	"github.com/phravins/forgeweb/internal/config"
	"github.com/phravins/forgeweb/internal/output"
	"github.com/phravins/forgeweb/internal/project"
	"github.com/phravins/forgeweb/internal/templates"
	"github.com/spf13/cobra"
)

var (
	flagName       string
	flagSlug       string
	flagPort       string
	flagDatabase   string
	flagDBName     string
	flagDBUser     string
	flagDBPassword string
	flagDir        string
	flagAnswers    string

	flagNonInteractive bool
	flagDryRun         bool
)

var NewCmd = &cobra.Command{
	Use:   "new",
	Short: "Scaffold a new web application project",
	Long: `Creates a project skeleton: Django settings package, Dockerfile,
docker-compose.yml and README, in a directory named after the slug.
Missing answers are prompted for unless --non-interactive is set.`,
	RunE: runNew,
}

var PreviewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Render a project to the terminal without writing files",
	RunE:  runPreview,
}

func init() {
	for _, cmd := range []*cobra.Command{NewCmd, PreviewCmd} {
		f := cmd.Flags()
		f.StringVar(&flagName, "name", "", "project name")
		f.StringVar(&flagSlug, "slug", "", "project slug (derived from name when empty)")
		f.StringVar(&flagPort, "port", "", "exposure port (default 8000)")
		f.StringVar(&flagDatabase, "database", "", "database kind: postgresql or sqlite")
		f.StringVar(&flagDBName, "db-name", "", "PostgreSQL database name (default: slug)")
		f.StringVar(&flagDBUser, "db-user", "", "PostgreSQL user (default: slug)")
		f.StringVar(&flagDBPassword, "db-password", "", "PostgreSQL password")
		f.StringVar(&flagAnswers, "answers", "", "YAML answers file")
		f.BoolVar(&flagNonInteractive, "non-interactive", false, "never prompt; missing required answers fail")
	}
	NewCmd.Flags().StringVar(&flagDir, "dir", "", "parent directory for the project (default: current directory)")
	NewCmd.Flags().BoolVar(&flagDryRun, "dry-run", false, "resolve and render, write nothing")
}

// gatherAnswers merges flags over an optional answers file, then prompts for
// whatever is still missing unless the run is non-interactive.
func gatherAnswers(defaults *config.Config) (project.Answers, error) {
	answers := project.Answers{
		Name:       flagName,
		Slug:       flagSlug,
		Port:       flagPort,
		Database:   flagDatabase,
		DBName:     flagDBName,
		DBUser:     flagDBUser,
		DBPassword: flagDBPassword,
	}

	if flagAnswers != "" {
		fromFile, err := LoadAnswers(flagAnswers)
		if err != nil {
			return answers, err
		}
		answers = mergeAnswers(answers, fromFile)
	}

	if flagNonInteractive || flagAnswers != "" {
		return applyDefaults(answers, defaults), nil
	}

	collector := NewCollector(os.Stdin, os.Stdout, defaults)
	return collector.Collect(answers)
}

// applyDefaults fills configured user defaults into blank answers so a
// non-interactive run honors ~/.forgeweb.yaml the same way prompts do.
func applyDefaults(a project.Answers, defaults *config.Config) project.Answers {
	if defaults == nil {
		return a
	}
	if a.Port == "" && defaults.DefaultPort != 0 {
		a.Port = strconv.Itoa(defaults.DefaultPort)
	}
	if a.DBPassword == "" && defaults.DefaultDBPassword != "" {
		a.DBPassword = defaults.DefaultDBPassword
	}
	return a
}

func runNew(cmd *cobra.Command, args []string) error {
	defaults, err := config.Load()
	if err != nil {
		output.Warn("could not load user defaults", "err", err)
	}

	answers, err := gatherAnswers(defaults)
	if err != nil {
		return err
	}

	parentDir := flagDir
	if parentDir == "" && defaults != nil {
		parentDir = defaults.Workspace
	}

	if flagDryRun {
		cfg, errs := project.Resolve(answers)
		if len(errs) > 0 {
			return errs[0]
		}
		rendered, err := templates.Render(*cfg)
		if err != nil {
			return err
		}
		fmt.Printf("Would create %s/ with:\n", cfg.Slug)
		for _, p := range templates.Paths(rendered) {
			fmt.Printf("  %s\n", p)
		}
		return nil
	}

	result, err := Run(answers, parentDir)
	if err != nil {
		return err
	}

	fmt.Println(output.SuccessStyle.Render(fmt.Sprintf("Project %q created in %s", result.Config.Name, result.Path)))
	fmt.Println(output.SubtleStyle.Render(fmt.Sprintf("  slug %s, port %d, database %s",
		result.Config.Slug, result.Config.Port, result.Config.Database)))
	fmt.Println("\nNext steps:")
	fmt.Printf("  cd %s\n", result.Config.Slug)
	fmt.Println("  docker compose up --build")
	return nil
}
