package scaffold

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/phravins/forgeweb/internal/templates"
)

// Writer creates project trees under a parent directory.
type Writer struct {
	Root string
}

func NewWriter(root string) *Writer {
	if root == "" {
		root, _ = os.Getwd()
	}
	return &Writer{Root: root}
}

// Target is the directory a project with the given slug would be written to.
func (w *Writer) Target(slug string) string {
	return filepath.Join(w.Root, slug)
}

// CheckTarget fails with PathExistsError when the target path is a file or a
// non-empty directory. An empty directory is fine to fill.
func (w *Writer) CheckTarget(slug string) error {
	target := w.Target(slug)
	info, err := os.Stat(target)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return &WriteError{Path: target, Err: err}
	}
	if !info.IsDir() {
		return &PathExistsError{Path: target}
	}
	entries, err := os.ReadDir(target)
	if err != nil {
		return &WriteError{Path: target, Err: err}
	}
	if len(entries) > 0 {
		return &PathExistsError{Path: target}
	}
	return nil
}

// Write materializes the rendered mapping under Root/slug. The target is
// checked first so a collision never clobbers or partially mixes into an
// existing project. On I/O failure already-written files stay on disk.
func (w *Writer) Write(slug string, rendered map[string]string) (string, error) {
	if err := w.CheckTarget(slug); err != nil {
		return "", err
	}

	target := w.Target(slug)
	if err := os.MkdirAll(target, 0755); err != nil {
		return "", &WriteError{Path: target, Err: err}
	}

	for _, rel := range templates.Paths(rendered) {
		fullPath := filepath.Join(target, rel)
		if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
			return "", &WriteError{Path: fullPath, Err: err}
		}
		if err := os.WriteFile(fullPath, []byte(rendered[rel]), fileMode(rel)); err != nil {
			return "", &WriteError{Path: fullPath, Err: err}
		}
	}
	return target, nil
}

// WriteExtra adds a single file to an already-written project.
func (w *Writer) WriteExtra(slug, name string, data []byte) error {
	fullPath := filepath.Join(w.Target(slug), name)
	if err := os.WriteFile(fullPath, data, 0644); err != nil {
		return &WriteError{Path: fullPath, Err: err}
	}
	return nil
}

func fileMode(rel string) os.FileMode {
	if strings.HasSuffix(rel, "manage.py") {
		return 0755
	}
	return 0644
}
