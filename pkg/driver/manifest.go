package driver

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"logo/interpreter-go/pkg/render"
)

// ManifestFileName is the project manifest looked up by the CLI.
const ManifestFileName = "logo.yml"

// Manifest represents the parsed contents of logo.yml.
type Manifest struct {
	Path         string
	Name         string
	Entry        string
	Output       string
	Canvas       CanvasSpec
	MaxCallDepth int
	Libraries    map[string]*LibrarySpec
	LibraryOrder []string
}

// CanvasSpec sizes the drawing surface. Background is a palette index.
type CanvasSpec struct {
	Width      int
	Height     int
	Background int
}

// LibrarySpec locates a directory of procedure definitions, either on disk
// or in a git repository pinned by rev, tag or branch.
type LibrarySpec struct {
	Path   string
	Git    string
	Rev    string
	Tag    string
	Branch string
}

// IsGit reports whether the library is fetched from git.
func (l *LibrarySpec) IsGit() bool {
	return l != nil && l.Git != ""
}

// ValidationError aggregates manifest validation failures.
type ValidationError struct {
	Issues []string
}

func (e *ValidationError) Error() string {
	if len(e.Issues) == 0 {
		return "manifest: invalid configuration"
	}
	var b strings.Builder
	b.WriteString("manifest validation failed:")
	for _, issue := range e.Issues {
		b.WriteString("\n- ")
		b.WriteString(issue)
	}
	return b.String()
}

// LoadManifest parses logo.yml from disk, returning a validated manifest.
func LoadManifest(path string) (*Manifest, error) {
	if path == "" {
		return nil, fmt.Errorf("manifest: empty path")
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("manifest: resolve %s: %w", path, err)
	}
	file, err := os.Open(absPath)
	if err != nil {
		return nil, fmt.Errorf("manifest: open %s: %w", absPath, err)
	}
	defer file.Close()

	decoder := yaml.NewDecoder(file)
	decoder.KnownFields(true)

	var raw manifestFile
	if err := decoder.Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("manifest: %s is empty", absPath)
		}
		return nil, fmt.Errorf("manifest: parse %s: %w", absPath, err)
	}

	manifest := raw.toManifest(absPath)
	if err := manifest.validate(); err != nil {
		return nil, err
	}
	return manifest, nil
}

// FindManifest walks from dir towards the filesystem root looking for
// logo.yml.
func FindManifest(dir string) (string, bool) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", false
	}
	for {
		candidate := filepath.Join(abs, ManifestFileName)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, true
		}
		parent := filepath.Dir(abs)
		if parent == abs {
			return "", false
		}
		abs = parent
	}
}

// Dir is the directory holding the manifest; relative paths resolve from it.
func (m *Manifest) Dir() string {
	return filepath.Dir(m.Path)
}

// EntryPath returns the absolute path of the entry script.
func (m *Manifest) EntryPath() string {
	return m.ResolvePath(m.Entry)
}

// OutputPath returns the absolute path of the image to write.
func (m *Manifest) OutputPath() string {
	return m.ResolvePath(m.Output)
}

// ResolvePath resolves path against the manifest directory.
func (m *Manifest) ResolvePath(path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(m.Dir(), path)
}

func (m *Manifest) validate() error {
	var errs ValidationError
	if m.Name == "" {
		errs.Issues = append(errs.Issues, "name must be provided")
	}
	if m.Entry == "" {
		errs.Issues = append(errs.Issues, "entry must name the script to run")
	}
	if m.Output != "" {
		if _, err := render.FormatForPath(m.Output); err != nil {
			errs.Issues = append(errs.Issues, fmt.Sprintf("output %q must end in .svg or .png", m.Output))
		}
	}
	if m.Canvas.Width <= 0 || m.Canvas.Height <= 0 {
		errs.Issues = append(errs.Issues, fmt.Sprintf("canvas must have positive width and height, got %dx%d", m.Canvas.Width, m.Canvas.Height))
	}
	if _, ok := render.LookupColor(m.Canvas.Background); !ok {
		errs.Issues = append(errs.Issues, fmt.Sprintf("canvas.background %d is not a palette index in [0, %d)", m.Canvas.Background, render.PaletteSize))
	}
	if m.MaxCallDepth < 0 {
		errs.Issues = append(errs.Issues, "max_call_depth must not be negative")
	}
	for _, name := range m.LibraryOrder {
		for _, issue := range m.Libraries[name].validate() {
			errs.Issues = append(errs.Issues, fmt.Sprintf("libraries.%s: %s", name, issue))
		}
	}
	if len(errs.Issues) > 0 {
		return &errs
	}
	return nil
}

func (l *LibrarySpec) validate() []string {
	var errs []string
	if l.Path != "" && l.Git != "" {
		errs = append(errs, "path and git are mutually exclusive")
	}
	if l.Path == "" && l.Git == "" {
		errs = append(errs, "must specify path or git")
	}
	pins := 0
	for _, pin := range []string{l.Rev, l.Tag, l.Branch} {
		if pin != "" {
			pins++
		}
	}
	if l.Git != "" && pins != 1 {
		errs = append(errs, "git libraries require exactly one of rev, tag, or branch")
	}
	if l.Git == "" && pins > 0 {
		errs = append(errs, "rev, tag, and branch apply only to git libraries")
	}
	return errs
}

type manifestFile struct {
	Name         string     `yaml:"name"`
	Entry        string     `yaml:"entry"`
	Output       string     `yaml:"output"`
	Canvas       canvasYAML `yaml:"canvas"`
	MaxCallDepth int        `yaml:"max_call_depth"`
	Libraries    libraryMap `yaml:"libraries"`
}

type canvasYAML struct {
	Width      int `yaml:"width"`
	Height     int `yaml:"height"`
	Background int `yaml:"background"`
}

type libraryMap map[string]*LibrarySpec

func (mf manifestFile) toManifest(path string) *Manifest {
	result := &Manifest{
		Path:         path,
		Name:         strings.TrimSpace(mf.Name),
		Entry:        strings.TrimSpace(mf.Entry),
		Output:       strings.TrimSpace(mf.Output),
		Canvas:       CanvasSpec(mf.Canvas),
		MaxCallDepth: mf.MaxCallDepth,
		Libraries:    make(map[string]*LibrarySpec, len(mf.Libraries)),
	}
	for name, lib := range mf.Libraries {
		if lib == nil {
			continue
		}
		copy := *lib
		result.Libraries[name] = &copy
		result.LibraryOrder = append(result.LibraryOrder, name)
	}
	sort.Strings(result.LibraryOrder)
	return result
}

func (lm *libraryMap) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == 0 || (value.Kind == yaml.ScalarNode && value.Tag == "!!null") {
		*lm = make(libraryMap)
		return nil
	}
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("manifest: libraries must be a mapping")
	}
	result := make(libraryMap, len(value.Content)/2)
	for i := 0; i < len(value.Content); i += 2 {
		var key string
		if err := value.Content[i].Decode(&key); err != nil {
			return err
		}
		key = strings.TrimSpace(key)
		if key == "" {
			return fmt.Errorf("manifest: library names must be non-empty")
		}
		var lib LibrarySpec
		if err := lib.unmarshalYAML(value.Content[i+1]); err != nil {
			return fmt.Errorf("manifest: library %q: %w", key, err)
		}
		result[key] = &lib
	}
	*lm = result
	return nil
}

// unmarshalYAML accepts either a bare path or a mapping.
func (l *LibrarySpec) unmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		*l = LibrarySpec{Path: strings.TrimSpace(value.Value)}
		return nil
	case yaml.MappingNode:
		var raw struct {
			Path   string `yaml:"path"`
			Git    string `yaml:"git"`
			Rev    string `yaml:"rev"`
			Tag    string `yaml:"tag"`
			Branch string `yaml:"branch"`
		}
		if err := value.Decode(&raw); err != nil {
			return err
		}
		*l = LibrarySpec{
			Path:   strings.TrimSpace(raw.Path),
			Git:    strings.TrimSpace(raw.Git),
			Rev:    strings.TrimSpace(raw.Rev),
			Tag:    strings.TrimSpace(raw.Tag),
			Branch: strings.TrimSpace(raw.Branch),
		}
		return nil
	case yaml.AliasNode:
		return l.unmarshalYAML(value.Alias)
	default:
		return fmt.Errorf("expected string or mapping, found %s", value.ShortTag())
	}
}
