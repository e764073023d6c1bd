// Package scaffold collects project answers, renders the template set and
// writes the project tree.
package scaffold

import (
	"errors"

	"github.com/phravins/forgeweb/internal/history"
	"github.com/phravins/forgeweb/internal/output"
	"github.com/phravins/forgeweb/internal/project"
	"github.com/phravins/forgeweb/internal/templates"
	"gopkg.in/yaml.v2"
)

// Exit codes per failure kind.
const (
	ExitOK         = 0
	ExitValidation = 1
	ExitPathExists = 2
	ExitWrite      = 3
	ExitTemplate   = 4
)

// Result describes a completed run.
type Result struct {
	Config *project.Config
	Path   string
	Files  []string
}

// Run is the single forward pass: resolve answers, render templates, write
// the tree, record the run. It stops at the first failure and returns it
// unchanged so the caller can surface the message verbatim.
func Run(answers project.Answers, parentDir string) (*Result, error) {
	cfg, errs := project.Resolve(answers)
	if len(errs) > 0 {
		return nil, errs[0]
	}

	rendered, err := templates.Render(*cfg)
	if err != nil {
		return nil, err
	}

	w := NewWriter(parentDir)
	target, err := w.Write(cfg.Slug, rendered)
	if err != nil {
		return nil, err
	}

	// The manifest records what the project was generated from.
	manifest, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, &WriteError{Path: ManifestName, Err: err}
	}
	if err := w.WriteExtra(cfg.Slug, ManifestName, manifest); err != nil {
		return nil, err
	}

	if err := history.Add(history.Entry{
		Name:     cfg.Name,
		Slug:     cfg.Slug,
		Path:     target,
		Port:     cfg.Port,
		Database: string(cfg.Database),
	}); err != nil {
		output.Warn("could not record run in history", "err", err)
	}

	return &Result{Config: cfg, Path: target, Files: templates.Paths(rendered)}, nil
}

// ManifestName is the per-project record of the resolved configuration.
const ManifestName = ".forgeweb.yaml"

// ExitCode maps a run error to the process exit status.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	var (
		validationErr *project.ValidationError
		existsErr     *PathExistsError
		writeErr      *WriteError
		templateErr   *templates.Error
	)
	switch {
	case errors.As(err, &existsErr):
		return ExitPathExists
	case errors.As(err, &writeErr):
		return ExitWrite
	case errors.As(err, &templateErr):
		return ExitTemplate
	case errors.As(err, &validationErr):
		return ExitValidation
	}
	return ExitValidation
}
