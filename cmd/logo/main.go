// Command logo runs Logo turtle-graphics scripts and writes the drawing to
// an SVG or PNG image.
package main

import (
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/jcgregorio/logger"
	"github.com/jcgregorio/slog"
	"github.com/urfave/cli/v2"
)

const cliToolVersion = "logo-cli 0.1.0"

// session carries what every command needs once global flags are parsed.
type session struct {
	stdout io.Writer
	stderr io.Writer
	log    slog.Logger
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the CLI and returns the process exit status.
func run(args []string, stdout, stderr io.Writer) int {
	s := &session{stdout: stdout, stderr: stderr, log: logger.NewNopLogger()}
	app := newApp(s)
	if err := app.Run(append([]string{"logo"}, args...)); err != nil {
		reportError(stderr, err)
		return 1
	}
	return 0
}

func newApp(s *session) *cli.App {
	return &cli.App{
		Name:      "logo",
		Usage:     "run Logo turtle-graphics scripts",
		Version:   cliToolVersion,
		Writer:    s.stdout,
		ErrWriter: s.stderr,
		ArgsUsage: "<script> <image> <height> <width>",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "log interpreter activity to stderr",
			},
			&cli.BoolFlag{
				Name:  "quiet",
				Usage: "disable logging",
			},
			&cli.BoolFlag{
				Name:  "no-color",
				Usage: "print diagnostics without ANSI colours",
			},
		},
		Before: func(ctx *cli.Context) error {
			if ctx.Bool("no-color") {
				color.NoColor = true
			}
			s.log = newLogger(s.stderr, ctx.Bool("verbose"), ctx.Bool("quiet"))
			return nil
		},
		Commands: []*cli.Command{
			runCommand(s),
			checkCommand(s),
			depsCommand(s),
		},
		Action: func(ctx *cli.Context) error {
			return runAction(s, ctx)
		},
	}
}

func newLogger(w io.Writer, verbose, quiet bool) slog.Logger {
	if quiet {
		return logger.NewNopLogger()
	}
	sw, ok := w.(logger.SyncWriter)
	if !ok {
		sw = nopSyncWriter{w}
	}
	return logger.NewFromOptions(&logger.Options{
		SyncWriter:   sw,
		DepthDelta:   3,
		IncludeDebug: verbose,
	})
}

// nopSyncWriter lets plain writers such as test buffers receive log output.
type nopSyncWriter struct {
	io.Writer
}

func (nopSyncWriter) Sync() error { return nil }
