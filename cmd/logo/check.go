package main

import (
	"fmt"
	"runtime"

	"github.com/hashicorp/go-multierror"
	"github.com/urfave/cli/v2"
	"golang.org/x/sync/errgroup"

	"logo/interpreter-go/pkg/ast"
	"logo/interpreter-go/pkg/driver"
)

func checkCommand(s *session) *cli.Command {
	return &cli.Command{
		Name:      "check",
		Usage:     "lex and parse scripts without running them",
		ArgsUsage: "<script>...",
		Action: func(ctx *cli.Context) error {
			if ctx.NArg() == 0 {
				return fmt.Errorf("usage: logo check <script>...")
			}
			sources, err := checkFiles(ctx, ctx.Args().Slice())
			if err != nil {
				return err
			}
			for _, warning := range undefinedCallWarnings(sources) {
				reportWarning(s.stderr, driver.DescribeParserDiagnostic(warning))
			}
			fmt.Fprintf(s.stdout, "checked %d file(s)\n", len(sources))
			return nil
		},
	}
}

// checkFiles parses every path concurrently. Each file gets its own lexer
// and parser; failures are collected in argument order.
func checkFiles(ctx *cli.Context, paths []string) ([]*driver.Source, error) {
	sources := make([]*driver.Source, len(paths))
	errs := make([]error, len(paths))

	g, gctx := errgroup.WithContext(ctx.Context)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for idx, path := range paths {
		idx, path := idx, path
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			sources[idx], errs[idx] = driver.LoadFile(path)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var result *multierror.Error
	for _, err := range errs {
		if err != nil {
			result = multierror.Append(result, err)
		}
	}
	if err := result.ErrorOrNil(); err != nil {
		return nil, err
	}
	return sources, nil
}

// undefinedCallWarnings flags calls to procedures no checked file defines.
func undefinedCallWarnings(sources []*driver.Source) []driver.ParserDiagnostic {
	defined := make(map[string]struct{})
	for _, src := range sources {
		ast.Inspect(src.Program, func(n ast.Node) bool {
			if def, ok := n.(*ast.ProcedureDefinition); ok {
				defined[def.Name] = struct{}{}
			}
			return true
		})
	}

	var warnings []driver.ParserDiagnostic
	for _, src := range sources {
		ast.Inspect(src.Program, func(n ast.Node) bool {
			call, ok := n.(*ast.ProcedureCall)
			if !ok {
				return true
			}
			if _, ok := defined[call.Name]; ok {
				return true
			}
			span := call.Span()
			warnings = append(warnings, driver.ParserDiagnostic{
				Severity: driver.SeverityWarning,
				Stage:    "check",
				Message:  fmt.Sprintf("call to undefined procedure %s", call.Name),
				Location: driver.DiagnosticLocation{
					Path:      src.Path,
					Line:      span.Start.Line,
					Column:    span.Start.Column,
					EndLine:   span.End.Line,
					EndColumn: span.End.Column,
				},
			})
			return true
		})
	}
	return warnings
}
