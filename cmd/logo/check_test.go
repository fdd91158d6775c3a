package main

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckReportsEveryBrokenFile(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.logo")
	badTo := filepath.Join(dir, "bad_to.logo")
	badBracket := filepath.Join(dir, "bad_bracket.logo")
	writeFile(t, good, "FORWARD 10")
	writeFile(t, badTo, "TO")
	writeFile(t, badBracket, "]")

	res := runCLI(t, "check", good, badTo, badBracket)
	assert.Equal(t, 1, res.code)
	assert.Equal(t, 2, strings.Count("\n"+res.stderr, "\nerror: "))
	assert.Contains(t, res.stderr, "error: parser: "+badTo+":1:")
	assert.Contains(t, res.stderr, "error: parser: "+badBracket+":1:1 syntax error: expected statement, found ']'")
	assert.Less(t, strings.Index(res.stderr, badTo), strings.Index(res.stderr, badBracket))
}

func TestCheckWarnsOnUndefinedProcedure(t *testing.T) {
	dir := t.TempDir()
	script := filepath.Join(dir, "main.logo")
	writeFile(t, script, "FORWARD 1\nSQUARE 10")

	res := runCLI(t, "check", script)
	require.Equal(t, 0, res.code, res.stderr)
	assert.Contains(t, res.stderr, "warning: check: "+script+":2:1 call to undefined procedure SQUARE")
	assert.Equal(t, "checked 1 file(s)\n", res.stdout)
}

func TestCheckResolvesProceduresAcrossFiles(t *testing.T) {
	dir := t.TempDir()
	lib := filepath.Join(dir, "lib.logo")
	entry := filepath.Join(dir, "main.logo")
	writeFile(t, lib, "TO SQUARE SIZE\n  FORWARD SIZE\nEND")
	writeFile(t, entry, "SQUARE 10")

	res := runCLI(t, "check", entry, lib)
	require.Equal(t, 0, res.code, res.stderr)
	assert.Empty(t, res.stderr)
	assert.Equal(t, "checked 2 file(s)\n", res.stdout)
}

func TestCheckRequiresArguments(t *testing.T) {
	res := runCLI(t, "check")
	assert.Equal(t, 1, res.code)
	assert.Contains(t, res.stderr, "usage: logo check <script>...")
}

func TestCheckMissingFile(t *testing.T) {
	res := runCLI(t, "check", filepath.Join(t.TempDir(), "missing.logo"))
	assert.Equal(t, 1, res.code)
	assert.Contains(t, res.stderr, "loader: read")
}
