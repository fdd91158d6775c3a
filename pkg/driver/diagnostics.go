package driver

import (
	"errors"
	"fmt"
	"strings"

	"logo/interpreter-go/pkg/lexer"
	"logo/interpreter-go/pkg/parser"
)

// DiagnosticSeverity captures diagnostic levels.
type DiagnosticSeverity string

const (
	SeverityError   DiagnosticSeverity = "error"
	SeverityWarning DiagnosticSeverity = "warning"
)

// DiagnosticLocation references a source span for diagnostics.
type DiagnosticLocation struct {
	Path      string
	Line      int
	Column    int
	EndLine   int
	EndColumn int
}

// ParserDiagnostic represents a structured lexer or parser diagnostic.
type ParserDiagnostic struct {
	Severity DiagnosticSeverity
	Stage    string
	Message  string
	Location DiagnosticLocation
}

// SourceError ties a lexer or parser failure to the file it came from.
type SourceError struct {
	Path string
	Err  error
}

func (e *SourceError) Error() string {
	if e == nil || e.Err == nil {
		return "<nil>"
	}
	if diag, ok := BuildParserDiagnostic(e.Path, e.Err); ok {
		return DescribeParserDiagnostic(diag)
	}
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

func (e *SourceError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// BuildParserDiagnostic converts a *lexer.LexError or *parser.ParseError
// into a diagnostic located in path.
func BuildParserDiagnostic(path string, err error) (ParserDiagnostic, bool) {
	var parseErr *parser.ParseError
	if errors.As(err, &parseErr) {
		return ParserDiagnostic{
			Severity: SeverityError,
			Stage:    "parser",
			Message:  parseErr.Error(),
			Location: DiagnosticLocation{
				Path:      path,
				Line:      parseErr.Location.Line,
				Column:    parseErr.Location.Column,
				EndLine:   parseErr.Location.EndLine,
				EndColumn: parseErr.Location.EndColumn,
			},
		}, true
	}
	var lexErr *lexer.LexError
	if errors.As(err, &lexErr) {
		return ParserDiagnostic{
			Severity: SeverityError,
			Stage:    "lexer",
			Message:  lexErr.Message,
			Location: DiagnosticLocation{
				Path:   path,
				Line:   lexErr.Pos.Line,
				Column: lexErr.Pos.Column,
			},
		}, true
	}
	return ParserDiagnostic{}, false
}

// DescribeParserDiagnostic formats a diagnostic for CLI output.
func DescribeParserDiagnostic(diag ParserDiagnostic) string {
	stage := diag.Stage
	if stage == "" {
		stage = "parser"
	}
	message := strings.TrimSpace(diag.Message)
	if strings.HasPrefix(message, stage+":") {
		message = strings.TrimSpace(strings.TrimPrefix(message, stage+":"))
	}
	location := FormatLocation(diag.Location)
	prefix := stage + ": "
	if diag.Severity == SeverityWarning {
		prefix = "warning: " + prefix
	}
	if location != "" {
		return fmt.Sprintf("%s%s %s", prefix, location, message)
	}
	return fmt.Sprintf("%s%s", prefix, message)
}

// FormatLocation renders path:line:column, degrading gracefully when parts
// are missing.
func FormatLocation(loc DiagnosticLocation) string {
	path := strings.TrimSpace(loc.Path)
	line := loc.Line
	column := loc.Column
	switch {
	case path != "" && line > 0 && column > 0:
		return fmt.Sprintf("%s:%d:%d", path, line, column)
	case path != "" && line > 0:
		return fmt.Sprintf("%s:%d", path, line)
	case path != "":
		return path
	case line > 0 && column > 0:
		return fmt.Sprintf("line %d, column %d", line, column)
	case line > 0:
		return fmt.Sprintf("line %d", line)
	default:
		return ""
	}
}
