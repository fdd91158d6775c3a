package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/jcgregorio/slog"
	"github.com/urfave/cli/v2"

	"logo/interpreter-go/pkg/driver"
	"logo/interpreter-go/pkg/interpreter"
	"logo/interpreter-go/pkg/render"
)

// runPlan is everything needed to execute one drawing.
type runPlan struct {
	Sources      []*driver.Source
	Output       string
	Width        int
	Height       int
	Background   int
	MaxCallDepth int
}

func runCommand(s *session) *cli.Command {
	return &cli.Command{
		Name:      "run",
		Usage:     "run a script, or the project described by logo.yml, and save the image",
		ArgsUsage: "[<script> <image> <height> <width>]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "manifest",
				Usage: "path to logo.yml (defaults to the nearest one above the working directory)",
			},
			&cli.IntFlag{
				Name:  "max-call-depth",
				Usage: "fail with RecursionLimit beyond this many nested procedure calls (0 = unlimited)",
			},
		},
		Action: func(ctx *cli.Context) error {
			return runAction(s, ctx)
		},
	}
}

func runAction(s *session, ctx *cli.Context) error {
	var (
		plan *runPlan
		err  error
	)
	switch ctx.NArg() {
	case 0:
		plan, err = planFromManifest(ctx.String("manifest"))
	case 4:
		args := ctx.Args().Slice()
		plan, err = planFromArgs(args[0], args[1], args[2], args[3])
	default:
		return fmt.Errorf("usage: logo run <script> <image> <height> <width> (got %d argument(s))", ctx.NArg())
	}
	if err != nil {
		return err
	}
	if ctx.IsSet("max-call-depth") {
		plan.MaxCallDepth = ctx.Int("max-call-depth")
	}
	return executePlan(s, plan)
}

func planFromArgs(script, image, height, width string) (*runPlan, error) {
	if _, err := render.FormatForPath(image); err != nil {
		return nil, err
	}
	h, err := parseDimension("height", height)
	if err != nil {
		return nil, err
	}
	w, err := parseDimension("width", width)
	if err != nil {
		return nil, err
	}
	src, err := driver.LoadFile(script)
	if err != nil {
		return nil, err
	}
	return &runPlan{
		Sources: []*driver.Source{src},
		Output:  image,
		Width:   w,
		Height:  h,
	}, nil
}

func planFromManifest(path string) (*runPlan, error) {
	manifest, err := loadManifest(path)
	if err != nil {
		return nil, err
	}
	if manifest.Output == "" {
		return nil, fmt.Errorf("manifest %s: output must name the image to write", manifest.Path)
	}
	lock, err := loadLockIfPresent(manifest)
	if err != nil {
		return nil, err
	}
	cacheDir, err := driver.DefaultCacheDir()
	if err != nil {
		return nil, err
	}
	loader := &driver.Loader{Manifest: manifest, Lock: lock, CacheDir: cacheDir}
	sources, err := loader.LoadProgram()
	if err != nil {
		return nil, err
	}
	return &runPlan{
		Sources:      sources,
		Output:       manifest.OutputPath(),
		Width:        manifest.Canvas.Width,
		Height:       manifest.Canvas.Height,
		Background:   manifest.Canvas.Background,
		MaxCallDepth: manifest.MaxCallDepth,
	}, nil
}

// executePlan runs every source in one interpreter, libraries first, then
// saves the canvas. A runtime failure leaves no image behind.
func executePlan(s *session, plan *runPlan) error {
	canvas := render.NewCanvas(plan.Width, plan.Height)
	if bg, ok := render.LookupColor(plan.Background); ok {
		canvas.Background = bg
	}
	interp := interpreter.New(interpreter.Options{
		Width:        float32(plan.Width),
		Height:       float32(plan.Height),
		Sink:         render.Multi(canvas, traceSink(s.log)),
		MaxCallDepth: plan.MaxCallDepth,
		Logger:       s.log,
	})
	for _, src := range plan.Sources {
		s.log.Debugf("running %s", src.Path)
		if err := interp.RunFile(src.Path, src.Program); err != nil {
			return &runtimeFailure{interp: interp, err: err}
		}
	}
	if procs := interp.Environment().Procedures(); len(procs) > 0 {
		s.log.Debugf("defined procedures: %s", strings.Join(procs, ", "))
	}
	if dir := filepath.Dir(plan.Output); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}
	if err := canvas.Save(plan.Output); err != nil {
		return err
	}
	s.log.Infof("wrote %d segment(s) to %s", len(canvas.Segments()), plan.Output)
	return nil
}

// traceSink logs every draw command at debug level.
func traceSink(log slog.Logger) render.Sink {
	return render.SinkFunc(func(cmd render.Command) {
		log.Debugf("draw %s", cmd)
	})
}

func parseDimension(name, raw string) (int, error) {
	value, err := strconv.Atoi(raw)
	if err != nil || value <= 0 {
		return 0, fmt.Errorf("%s must be a positive integer, got %q", name, raw)
	}
	return value, nil
}

func loadManifest(path string) (*driver.Manifest, error) {
	if path == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to determine working directory: %w", err)
		}
		found, ok := driver.FindManifest(cwd)
		if !ok {
			return nil, fmt.Errorf("unable to locate %s in %s or its parents", driver.ManifestFileName, cwd)
		}
		path = found
	}
	return driver.LoadManifest(path)
}

func lockPathFor(manifest *driver.Manifest) string {
	return filepath.Join(manifest.Dir(), driver.LockfileName)
}

// loadLockIfPresent returns nil when the project has no lockfile yet.
func loadLockIfPresent(manifest *driver.Manifest) (*driver.Lockfile, error) {
	lock, err := driver.LoadLockfile(lockPathFor(manifest))
	if err == nil {
		return lock, nil
	}
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	return nil, fmt.Errorf("failed to read lockfile: %w", err)
}
