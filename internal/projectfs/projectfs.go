// Package projectfs provides root-relative file operations for scaffolding.
//
// Overview:
//   - Responsibility: Create directories, read, write, and append generated files
//   - Key Types: ProjectFS
//   - Concurrency Model: Sequential, unsynchronized file operations
//   - Error Semantics: File system errors wrapped as INTERNAL with the relative path
//   - Performance Notes: Whole-file reads; appends open the file once per call
//
// Usage:
//
//	fs := projectfs.NewProjectFS(".")
//	err := fs.EnsureDirectory("billing")
//	err = fs.AppendFile("billing/app.py", route)
package projectfs

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"go.eggybyte.com/egg/apigen/internal/errors"
	"go.eggybyte.com/egg/apigen/internal/ui"
)

// FileMode is the permission used for generated files.
const FileMode fs.FileMode = 0644

// ProjectFS performs file operations relative to a root directory.
type ProjectFS struct {
	rootDir string
	verbose bool
}

// NewProjectFS creates a ProjectFS rooted at rootDir.
func NewProjectFS(rootDir string) *ProjectFS {
	if rootDir == "" {
		rootDir = "."
	}
	return &ProjectFS{rootDir: rootDir}
}

// SetVerbose enables debug notices for every file operation.
func (p *ProjectFS) SetVerbose(enabled bool) {
	p.verbose = enabled
}

// RootDir returns the root directory.
func (p *ProjectFS) RootDir() string {
	return p.rootDir
}

// AbsolutePath joins path onto the root.
func (p *ProjectFS) AbsolutePath(path string) string {
	return filepath.Join(p.rootDir, path)
}

// EnsureDirectory creates path and any parents. An existing directory is not an error.
func (p *ProjectFS) EnsureDirectory(path string) error {
	if err := os.MkdirAll(p.AbsolutePath(path), 0755); err != nil {
		return errors.Wrapf(errors.CodeInternal, path, err, "ensure directory")
	}
	p.debug("Ensured directory exists: %s", path)
	return nil
}

// FileExists reports whether path exists.
func (p *ProjectFS) FileExists(path string) (bool, error) {
	_, err := os.Stat(p.AbsolutePath(path))
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, errors.Wrapf(errors.CodeInternal, path, err, "stat")
}

// ReadFile returns the content of path.
func (p *ProjectFS) ReadFile(path string) (string, error) {
	content, err := os.ReadFile(p.AbsolutePath(path))
	if err != nil {
		return "", errors.Wrapf(errors.CodeInternal, path, err, "read file")
	}
	return string(content), nil
}

// WriteFile replaces the content of path, creating parents as needed.
func (p *ProjectFS) WriteFile(path, content string) error {
	fullPath := p.AbsolutePath(path)
	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return errors.Wrapf(errors.CodeInternal, path, err, "create parent directory")
	}
	if err := os.WriteFile(fullPath, []byte(content), FileMode); err != nil {
		return errors.Wrapf(errors.CodeInternal, path, err, "write file")
	}
	p.debug("Written file: %s", path)
	return nil
}

// AppendFile appends content to path, creating the file if it is missing.
func (p *ProjectFS) AppendFile(path, content string) error {
	f, err := os.OpenFile(p.AbsolutePath(path), os.O_APPEND|os.O_CREATE|os.O_WRONLY, FileMode)
	if err != nil {
		return errors.Wrapf(errors.CodeInternal, path, err, "open for append")
	}
	if _, err := f.WriteString(content); err != nil {
		f.Close()
		return errors.Wrapf(errors.CodeInternal, path, err, "append")
	}
	if err := f.Close(); err != nil {
		return errors.Wrapf(errors.CodeInternal, path, err, "close")
	}
	p.debug("Appended to file: %s", path)
	return nil
}

// WriteFileIfNotExists writes path only when it does not exist yet.
// It reports whether the file was written.
func (p *ProjectFS) WriteFileIfNotExists(path, content string) (bool, error) {
	exists, err := p.FileExists(path)
	if err != nil {
		return false, err
	}
	if exists {
		p.debug("File already exists, skipping: %s", path)
		return false, nil
	}
	if err := p.WriteFile(path, content); err != nil {
		return false, err
	}
	return true, nil
}

// ListDirectories returns the sorted names of directories directly under path.
func (p *ProjectFS) ListDirectories(path string) ([]string, error) {
	entries, err := os.ReadDir(p.AbsolutePath(path))
	if err != nil {
		return nil, errors.Wrapf(errors.CodeInternal, path, err, "list directories")
	}

	var dirs []string
	for _, entry := range entries {
		if entry.IsDir() {
			dirs = append(dirs, entry.Name())
		}
	}
	sort.Strings(dirs)
	return dirs, nil
}

func (p *ProjectFS) debug(format string, args ...any) {
	if p.verbose {
		ui.Debug(format, args...)
	}
}
