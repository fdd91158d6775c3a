package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/hashicorp/go-multierror"
	"github.com/urfave/cli/v2"

	"logo/interpreter-go/pkg/driver"
)

func depsCommand(s *session) *cli.Command {
	return &cli.Command{
		Name:  "deps",
		Usage: "manage procedure libraries",
		Subcommands: []*cli.Command{
			{
				Name:  "install",
				Usage: "fetch git libraries into the cache and pin them in logo.lock",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "manifest",
						Usage: "path to logo.yml (defaults to the nearest one above the working directory)",
					},
				},
				Action: func(ctx *cli.Context) error {
					if ctx.NArg() > 0 {
						return fmt.Errorf("logo deps install does not take arguments (received %v)", ctx.Args().Slice())
					}
					return installDeps(s, ctx.String("manifest"))
				},
			},
		},
	}
}

func installDeps(s *session, manifestPath string) error {
	manifest, err := loadManifest(manifestPath)
	if err != nil {
		return err
	}
	cacheDir, err := driver.DefaultCacheDir()
	if err != nil {
		return err
	}

	lock, err := loadLockIfPresent(manifest)
	if err != nil {
		return err
	}
	if lock == nil {
		lock = driver.NewLockfile(manifest.Name, cliToolVersion)
	} else if lock.Root != manifest.Name {
		return fmt.Errorf("lockfile root %q does not match manifest name %q", lock.Root, manifest.Name)
	}
	lock.Tool = cliToolVersion

	fmt.Fprintf(s.stdout, "Manifest: %s\n", manifest.Path)
	fmt.Fprintf(s.stdout, "Libraries: %d\n", len(manifest.LibraryOrder))
	fmt.Fprintf(s.stdout, "Cache directory: %s\n", cacheDir)

	installer := newLibraryInstaller(manifest, cacheDir)
	installed, err := installer.Install(lock)
	for _, lib := range installed {
		fmt.Fprintf(s.stdout, "Installed %s %s\n", lib.Name, lib.Version)
	}
	if err != nil {
		return err
	}
	if err := driver.WriteLockfile(lock, lockPathFor(manifest)); err != nil {
		return err
	}
	fmt.Fprintf(s.stdout, "Wrote %s\n", lock.Path)
	return nil
}

type libraryInstaller struct {
	manifest *driver.Manifest
	git      *gitFetcher
}

func newLibraryInstaller(manifest *driver.Manifest, cacheDir string) *libraryInstaller {
	return &libraryInstaller{manifest: manifest, git: newGitFetcher(cacheDir)}
}

// Install fetches every git library, checks that path libraries exist and
// updates lock in place. Entries for libraries no longer declared are
// dropped. Failures are collected so one bad library does not hide another.
func (in *libraryInstaller) Install(lock *driver.Lockfile) ([]*driver.LockedLibrary, error) {
	var (
		result    *multierror.Error
		installed []*driver.LockedLibrary
	)
	declared := make(map[string]struct{}, len(in.manifest.LibraryOrder))
	for _, name := range in.manifest.LibraryOrder {
		spec := in.manifest.Libraries[name]
		if !spec.IsGit() {
			dir := in.manifest.ResolvePath(spec.Path)
			if info, err := os.Stat(dir); err != nil || !info.IsDir() {
				result = multierror.Append(result, fmt.Errorf("library %q: directory %s not found", name, dir))
			}
			continue
		}
		declared[name] = struct{}{}
		locked, err := in.git.Fetch(name, spec)
		if err != nil {
			result = multierror.Append(result, fmt.Errorf("library %q: %w", name, err))
			continue
		}
		lock.Upsert(locked)
		installed = append(installed, locked)
	}

	kept := lock.Libraries[:0]
	for _, lib := range lock.Libraries {
		if _, ok := declared[lib.Name]; ok {
			kept = append(kept, lib)
		}
	}
	lock.Libraries = kept
	sort.Slice(installed, func(i, j int) bool { return installed[i].Name < installed[j].Name })
	return installed, result.ErrorOrNil()
}
