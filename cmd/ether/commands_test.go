package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/ether/internal/tokens"
	"github.com/alexisbeaulieu97/ether/internal/tokens/tokenstest"
)

type project struct {
	root   string
	base   string
	output string
}

func newProject(t *testing.T, palettes ...string) project {
	t.Helper()

	root := t.TempDir()
	p := project{root: root, base: filepath.Join(root, "base"), output: filepath.Join(root, "generated")}
	require.NoError(t, os.MkdirAll(p.base, 0o755))
	for _, name := range palettes {
		tok := tokenstest.Palette()
		tok.Name = name
		tokenstest.WriteJSON(t, p.base, name, tok)
	}
	return p
}

func (p project) run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	root := newRootCmd()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetArgs(append([]string{"--base-dir", p.base, "--output", p.output}, args...))

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func TestRootGeneratesAllThemes(t *testing.T) {
	t.Parallel()

	p := newProject(t, "eerie", "gray")
	stdout, _, err := p.run(t)
	require.NoError(t, err)

	require.Contains(t, stdout, "[OK] Generated: "+filepath.Join(p.output, "eerie-theme.json"))
	require.Contains(t, stdout, "Total: 2")
	require.FileExists(t, filepath.Join(p.output, "gray-theme.json"))
}

func TestGenerateNamedThemes(t *testing.T) {
	t.Parallel()

	p := newProject(t, "eerie", "gray")
	stdout, _, err := p.run(t, "generate", "gray")
	require.NoError(t, err)
	require.Contains(t, stdout, "Total: 1")
	require.FileExists(t, filepath.Join(p.output, "gray-theme.json"))
	require.NoFileExists(t, filepath.Join(p.output, "eerie-theme.json"))

	stdout, _, err = p.run(t, "generate", "--all")
	require.NoError(t, err)
	require.Contains(t, stdout, "Total: 2")
}

func TestGenerateReportsFailures(t *testing.T) {
	t.Parallel()

	p := newProject(t, "eerie")
	broken := tokenstest.Palette()
	tokenstest.Set(&broken, tokens.SyntaxBlue, "blueish")
	tokenstest.WriteJSON(t, p.base, "broken", broken)

	stdout, stderr, err := p.run(t, "generate")
	require.ErrorIs(t, err, errReported)
	require.Contains(t, stdout, "[XX] Failed to generate broken")
	require.Contains(t, stdout, "Invalid color for syntaxBlue: blueish")
	require.Contains(t, stdout, "Failed: 1")
	require.Contains(t, stderr, `"theme":"broken"`)
	require.FileExists(t, filepath.Join(p.output, "eerie-theme.json"))
}

func TestGenerateWithoutPalettes(t *testing.T) {
	t.Parallel()

	p := newProject(t)
	_, _, err := p.run(t, "generate")
	require.ErrorContains(t, err, "no base themes found")
}

func TestValidateCommand(t *testing.T) {
	t.Parallel()

	p := newProject(t, "eerie")
	stdout, _, err := p.run(t, "validate")
	require.NoError(t, err)
	require.Contains(t, stdout, "[OK] eerie")
	require.Contains(t, stdout, "All 1 palettes are valid")

	incomplete := tokenstest.Palette()
	incomplete.Comment = ""
	incomplete.Type = "sepia"
	tokenstest.WriteJSON(t, p.base, "incomplete", incomplete)

	stdout, _, err = p.run(t, "validate", "incomplete")
	require.ErrorIs(t, err, errReported)
	require.Contains(t, stdout, "[XX] incomplete (2 issues)")
	require.Contains(t, stdout, "Missing required field: comment")
	require.Contains(t, stdout, "Invalid type: sepia. Must be 'dark' or 'light'")
}

func TestCheckCommand(t *testing.T) {
	t.Parallel()

	p := newProject(t, "eerie")

	stdout, _, err := p.run(t, "check")
	require.ErrorIs(t, err, errReported)
	require.Contains(t, stdout, "eerie is out of date")
	require.Contains(t, stdout, "+++ "+filepath.Join(p.output, "eerie-theme.json")+" (generated)")
	require.NoDirExists(t, p.output)

	_, _, err = p.run(t)
	require.NoError(t, err)

	stdout, _, err = p.run(t, "check", "eerie")
	require.NoError(t, err)
	require.Contains(t, stdout, "[OK] eerie is up to date")
}

func TestPreviewCommand(t *testing.T) {
	t.Parallel()

	p := newProject(t, "eerie")
	stdout, _, err := p.run(t, "preview", "eerie")
	require.NoError(t, err)
	require.Contains(t, stdout, "eerie (dark)")
	require.Contains(t, stdout, "Backgrounds")
	require.Contains(t, stdout, "editorBracketHighlight.foreground1")
	require.Contains(t, stdout, "func (p *Palette) Describe() string {")

	snippet := filepath.Join(p.root, "snippet.py")
	require.NoError(t, os.WriteFile(snippet, []byte("def shade(x):\n    return x * 2\n"), 0o644))
	stdout, _, err = p.run(t, "preview", "eerie", "--file", snippet)
	require.NoError(t, err)
	require.Contains(t, stdout, "def shade(x):")

	stdout, _, err = p.run(t, "preview", "eerie", "--code=false")
	require.NoError(t, err)
	require.NotContains(t, stdout, "Sample")

	_, _, err = p.run(t, "preview", "missing")
	require.ErrorContains(t, err, "Failed to preview: missing")
}

func TestManifestCommand(t *testing.T) {
	t.Parallel()

	p := newProject(t, "eerie")
	pkg := filepath.Join(p.root, "package.json")
	require.NoError(t, os.WriteFile(pkg, []byte(`{"name": "ether", "contributes": {"themes": []}}`), 0o644))

	cfgPath := filepath.Join(p.root, "ether.yaml")
	cfg := fmt.Sprintf("manifest: %s\nlabel_prefix: Ether\ngenerated_path: ./themes/generated\n", pkg)
	require.NoError(t, os.WriteFile(cfgPath, []byte(cfg), 0o644))

	stdout, _, err := p.run(t, "manifest", "--config", cfgPath)
	require.NoError(t, err)
	require.Contains(t, stdout, "Updated "+pkg+" with 1 themes")

	data, err := os.ReadFile(pkg)
	require.NoError(t, err)
	require.Contains(t, string(data), `"label": "Ether eerie"`)
	require.Contains(t, string(data), `"path": "./themes/generated/eerie-theme.json"`)

	stdout, _, err = p.run(t, "manifest", "--config", cfgPath)
	require.NoError(t, err)
	require.Contains(t, stdout, "is up to date")
}

func TestExplicitConfigMustExist(t *testing.T) {
	t.Parallel()

	p := newProject(t, "eerie")
	_, _, err := p.run(t, "validate", "--config", filepath.Join(p.root, "nope.yaml"))
	require.ErrorContains(t, err, "Failed to load configuration")
}

func TestInvalidParallelFlag(t *testing.T) {
	t.Parallel()

	p := newProject(t, "eerie")
	_, _, err := p.run(t, "generate", "--parallel", "99")
	require.ErrorContains(t, err, "parallel")
}
