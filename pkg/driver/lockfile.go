package driver

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// LockfileName sits next to logo.yml and pins git libraries.
const LockfileName = "logo.lock"

// Lockfile models the logo.lock contents.
type Lockfile struct {
	Path      string
	Root      string
	Generated string
	Tool      string
	Libraries []*LockedLibrary
}

// LockedLibrary captures one resolved git library.
type LockedLibrary struct {
	Name     string
	Source   string
	Version  string
	Commit   string
	Checksum string
}

// NewLockfile constructs a lockfile with metadata seeded for the provided root.
func NewLockfile(root, tool string) *Lockfile {
	return &Lockfile{
		Root:      strings.TrimSpace(root),
		Generated: time.Now().UTC().Format(time.RFC3339),
		Tool:      strings.TrimSpace(tool),
		Libraries: []*LockedLibrary{},
	}
}

// LoadLockfile parses logo.lock from disk.
func LoadLockfile(path string) (*Lockfile, error) {
	if path == "" {
		return nil, fmt.Errorf("lockfile: empty path")
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("lockfile: resolve %s: %w", path, err)
	}
	file, err := os.Open(abs)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var raw lockfileDisk
	decoder := yaml.NewDecoder(file)
	decoder.KnownFields(true)
	if err := decoder.Decode(&raw); err != nil {
		return nil, fmt.Errorf("lockfile: parse %s: %w", abs, err)
	}

	lock := raw.toLockfile()
	lock.Path = abs
	return lock, nil
}

// WriteLockfile serialises the lockfile back to disk.
func WriteLockfile(lock *Lockfile, path string) error {
	if lock == nil {
		return fmt.Errorf("lockfile: nil lockfile")
	}
	if path == "" {
		if lock.Path == "" {
			return fmt.Errorf("lockfile: missing path")
		}
		path = lock.Path
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("lockfile: resolve %s: %w", path, err)
	}

	if lock.Generated == "" {
		lock.Generated = time.Now().UTC().Format(time.RFC3339)
	}
	lock.Path = abs
	lock.normalize()

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(lock.toDisk()); err != nil {
		return fmt.Errorf("lockfile: marshal %s: %w", abs, err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("lockfile: encoder close: %w", err)
	}
	if err := os.WriteFile(abs, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("lockfile: write %s: %w", abs, err)
	}
	return nil
}

// Find returns the locked entry for a library name.
func (l *Lockfile) Find(name string) (*LockedLibrary, bool) {
	if l == nil {
		return nil, false
	}
	for _, lib := range l.Libraries {
		if lib != nil && lib.Name == name {
			return lib, true
		}
	}
	return nil, false
}

// Upsert replaces the entry with the same name or appends a new one.
func (l *Lockfile) Upsert(lib *LockedLibrary) {
	if l == nil || lib == nil {
		return
	}
	for idx, existing := range l.Libraries {
		if existing != nil && existing.Name == lib.Name {
			l.Libraries[idx] = lib
			return
		}
	}
	l.Libraries = append(l.Libraries, lib)
}

func (l *Lockfile) normalize() {
	if l == nil {
		return
	}
	l.Root = strings.TrimSpace(l.Root)
	l.Tool = strings.TrimSpace(l.Tool)
	kept := l.Libraries[:0]
	for _, lib := range l.Libraries {
		if lib == nil {
			continue
		}
		lib.Name = strings.TrimSpace(lib.Name)
		lib.Source = strings.TrimSpace(lib.Source)
		lib.Version = strings.TrimSpace(lib.Version)
		lib.Commit = strings.TrimSpace(lib.Commit)
		lib.Checksum = strings.TrimSpace(lib.Checksum)
		kept = append(kept, lib)
	}
	l.Libraries = kept
	sort.SliceStable(l.Libraries, func(i, j int) bool {
		return l.Libraries[i].Name < l.Libraries[j].Name
	})
}

type lockfileDisk struct {
	Root      string            `yaml:"root"`
	Generated string            `yaml:"generated"`
	Tool      string            `yaml:"tool"`
	Libraries []lockfileLibrary `yaml:"libraries"`
}

type lockfileLibrary struct {
	Name     string `yaml:"name"`
	Source   string `yaml:"source"`
	Version  string `yaml:"version"`
	Commit   string `yaml:"commit"`
	Checksum string `yaml:"checksum"`
}

func (l *Lockfile) toDisk() lockfileDisk {
	libs := make([]lockfileLibrary, 0, len(l.Libraries))
	for _, lib := range l.Libraries {
		libs = append(libs, lockfileLibrary{
			Name:     lib.Name,
			Source:   lib.Source,
			Version:  lib.Version,
			Commit:   lib.Commit,
			Checksum: lib.Checksum,
		})
	}
	return lockfileDisk{
		Root:      l.Root,
		Generated: l.Generated,
		Tool:      l.Tool,
		Libraries: libs,
	}
}

func (d lockfileDisk) toLockfile() *Lockfile {
	lock := &Lockfile{
		Root:      d.Root,
		Generated: strings.TrimSpace(d.Generated),
		Tool:      d.Tool,
		Libraries: make([]*LockedLibrary, 0, len(d.Libraries)),
	}
	for _, lib := range d.Libraries {
		lock.Libraries = append(lock.Libraries, &LockedLibrary{
			Name:     lib.Name,
			Source:   lib.Source,
			Version:  lib.Version,
			Commit:   lib.Commit,
			Checksum: lib.Checksum,
		})
	}
	lock.normalize()
	return lock
}
