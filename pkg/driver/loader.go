package driver

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/hashicorp/go-multierror"

	"logo/interpreter-go/pkg/ast"
	"logo/interpreter-go/pkg/parser"
)

// SourceExtension marks files picked up from library directories.
const SourceExtension = ".logo"

// Source is one parsed script and the file it came from.
type Source struct {
	Path    string
	Program *ast.Program
}

// LoadFile reads and parses a single script. Lexer and parser failures are
// wrapped in *SourceError so callers can render a located diagnostic.
func LoadFile(path string) (*Source, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("loader: resolve %s: %w", path, err)
	}
	data, err := os.ReadFile(abs)
	if err != nil {
		return nil, fmt.Errorf("loader: read %s: %w", abs, err)
	}
	program, err := parser.ParseSource(string(data))
	if err != nil {
		return nil, &SourceError{Path: abs, Err: err}
	}
	return &Source{Path: abs, Program: program}, nil
}

// Loader resolves a manifest into the ordered list of scripts to run.
type Loader struct {
	Manifest *Manifest
	Lock     *Lockfile
	CacheDir string
}

// LoadProgram returns every library script (libraries in name order, files
// sorted within each library) followed by the entry script. Parse failures
// across all files are collected before returning.
func (l *Loader) LoadProgram() ([]*Source, error) {
	if l == nil || l.Manifest == nil {
		return nil, fmt.Errorf("loader: manifest required")
	}
	var paths []string
	for _, name := range l.Manifest.LibraryOrder {
		dir, err := l.LibraryDir(name)
		if err != nil {
			return nil, err
		}
		files, err := librarySources(dir)
		if err != nil {
			return nil, fmt.Errorf("loader: library %q: %w", name, err)
		}
		paths = append(paths, files...)
	}
	paths = append(paths, l.Manifest.EntryPath())

	var result *multierror.Error
	sources := make([]*Source, 0, len(paths))
	for _, path := range paths {
		src, err := LoadFile(path)
		if err != nil {
			result = multierror.Append(result, err)
			continue
		}
		sources = append(sources, src)
	}
	if err := result.ErrorOrNil(); err != nil {
		return nil, err
	}
	return sources, nil
}

// LibraryDir returns the directory holding a library's scripts. Git
// libraries must already be installed and recorded in the lockfile.
func (l *Loader) LibraryDir(name string) (string, error) {
	spec, ok := l.Manifest.Libraries[name]
	if !ok || spec == nil {
		return "", fmt.Errorf("loader: unknown library %q", name)
	}
	if !spec.IsGit() {
		return l.Manifest.ResolvePath(spec.Path), nil
	}
	locked, ok := l.Lock.Find(name)
	if !ok {
		return "", fmt.Errorf("loader: library %q is not locked; run `logo deps install`", name)
	}
	version := locked.Version
	if version == "" {
		version = locked.Commit
	}
	dir := LibraryCheckoutDir(l.CacheDir, name, version)
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return "", fmt.Errorf("loader: library %q missing from %s; run `logo deps install`", name, dir)
	}
	return dir, nil
}

func librarySources(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var files []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), SourceExtension) {
			continue
		}
		files = append(files, filepath.Join(dir, entry.Name()))
	}
	sort.Strings(files)
	return files, nil
}
