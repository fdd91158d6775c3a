package main

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"

	"logo/interpreter-go/pkg/driver"
)

type gitFetcher struct {
	cacheDir string
}

func newGitFetcher(cacheDir string) *gitFetcher {
	if cacheDir == "" {
		return nil
	}
	return &gitFetcher{cacheDir: cacheDir}
}

// Fetch checks out the pinned revision of a git library under the cache and
// returns its lockfile entry.
func (g *gitFetcher) Fetch(name string, spec *driver.LibrarySpec) (*driver.LockedLibrary, error) {
	if g == nil {
		return nil, errors.New("git fetcher unavailable")
	}
	url := strings.TrimSpace(spec.Git)
	if url == "" {
		return nil, fmt.Errorf("git URL required")
	}

	version, commit, err := g.ensureCheckout(name, url, spec)
	if err != nil {
		return nil, err
	}

	checksum, err := dirChecksum(driver.LibraryCheckoutDir(g.cacheDir, name, version))
	if err != nil {
		return nil, err
	}

	return &driver.LockedLibrary{
		Name:     name,
		Source:   fmt.Sprintf("git+%s@%s", url, commit),
		Version:  version,
		Commit:   commit,
		Checksum: checksum,
	}, nil
}

func (g *gitFetcher) ensureCheckout(name, url string, spec *driver.LibrarySpec) (string, string, error) {
	baseDir := filepath.Dir(driver.LibraryCheckoutDir(g.cacheDir, name, "head"))
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return "", "", err
	}

	revision, descriptor, err := gitRevisionFromSpec(spec)
	if err != nil {
		return "", "", err
	}

	if rev := strings.TrimSpace(spec.Rev); rev != "" {
		if _, err := os.Stat(driver.LibraryCheckoutDir(g.cacheDir, name, rev)); err == nil {
			return rev, rev, nil
		}
	}

	tmpDir, err := os.MkdirTemp(baseDir, "git-fetch-*")
	if err != nil {
		return "", "", err
	}
	if err := os.RemoveAll(tmpDir); err != nil {
		return "", "", err
	}

	repo, err := git.PlainClone(tmpDir, false, &git.CloneOptions{URL: url})
	if err != nil {
		_ = os.RemoveAll(tmpDir)
		return "", "", fmt.Errorf("git clone %s: %w", url, err)
	}

	hash, err := repo.ResolveRevision(revision)
	if err != nil {
		_ = os.RemoveAll(tmpDir)
		return "", "", fmt.Errorf("resolve revision %s: %w", revision, err)
	}

	version := gitPinnedVersion(descriptor, hash.String())
	targetDir := driver.LibraryCheckoutDir(g.cacheDir, name, version)
	if _, err := os.Stat(targetDir); err == nil {
		_ = os.RemoveAll(tmpDir)
		return version, hash.String(), nil
	}

	worktree, err := repo.Worktree()
	if err != nil {
		_ = os.RemoveAll(tmpDir)
		return "", "", err
	}
	if err := worktree.Checkout(&git.CheckoutOptions{Hash: *hash, Force: true}); err != nil {
		_ = os.RemoveAll(tmpDir)
		return "", "", fmt.Errorf("git checkout %s: %w", revision, err)
	}

	if err := os.Rename(tmpDir, targetDir); err != nil {
		_ = os.RemoveAll(tmpDir)
		return "", "", err
	}
	return version, hash.String(), nil
}

// gitPinnedVersion names a checkout: the bare commit for rev pins, or
// tag@commit / branch@commit so a moved ref gets a fresh directory.
func gitPinnedVersion(descriptor, commit string) string {
	commit = strings.TrimSpace(commit)
	descriptor = strings.TrimSpace(descriptor)
	if commit == "" {
		return descriptor
	}
	if descriptor == "" || descriptor == commit {
		return commit
	}
	return fmt.Sprintf("%s@%s", descriptor, commit)
}

// gitRevisionFromSpec maps a pin to a revision in a fresh clone. A clone
// only has the default branch locally, so branches resolve via the remote.
func gitRevisionFromSpec(spec *driver.LibrarySpec) (plumbing.Revision, string, error) {
	if rev := strings.TrimSpace(spec.Rev); rev != "" {
		return plumbing.Revision(rev), rev, nil
	}
	if tag := strings.TrimSpace(spec.Tag); tag != "" {
		return plumbing.Revision("refs/tags/" + tag), tag, nil
	}
	if branch := strings.TrimSpace(spec.Branch); branch != "" {
		return plumbing.Revision(plumbing.NewRemoteReferenceName(git.DefaultRemoteName, branch)), branch, nil
	}
	return "", "", fmt.Errorf("git libraries require rev, tag, or branch")
}

// dirChecksum hashes file names and contents below path, skipping .git.
func dirChecksum(path string) (string, error) {
	h := sha256.New()
	err := filepath.WalkDir(path, func(p string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if d.Name() == ".git" {
				return filepath.SkipDir
			}
			return nil
		}
		data, err := os.ReadFile(p)
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(path, p)
		if err != nil {
			return err
		}
		h.Write([]byte(filepath.ToSlash(rel)))
		h.Write(data)
		return nil
	})
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
