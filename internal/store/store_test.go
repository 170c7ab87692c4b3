package store

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/ether/internal/generator"
	"github.com/alexisbeaulieu97/ether/internal/logger"
	"github.com/alexisbeaulieu97/ether/internal/theme"
	"github.com/alexisbeaulieu97/ether/internal/tokens/tokenstest"
	apperrors "github.com/alexisbeaulieu97/ether/pkg/errors"
)

func newStore(t *testing.T) (*FileStore, *bytes.Buffer) {
	t.Helper()

	root := t.TempDir()
	buf := &bytes.Buffer{}
	log, err := logger.New(logger.Options{Level: "debug", Writer: buf})
	require.NoError(t, err)

	base := filepath.Join(root, "base")
	require.NoError(t, os.MkdirAll(base, 0o755))
	return New(base, filepath.Join(root, "generated"), log), buf
}

func TestListSortsAndFiltersBaseDocuments(t *testing.T) {
	t.Parallel()

	s, _ := newStore(t)
	tokenstest.WriteJSON(t, s.BaseDir, "zinc", tokenstest.Palette())
	tokenstest.WriteJSON(t, s.BaseDir, "eerie", tokenstest.Palette())
	require.NoError(t, os.WriteFile(filepath.Join(s.BaseDir, "amber.yaml"), []byte("name: Amber\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(s.BaseDir, "README.md"), []byte("# palettes"), 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(s.BaseDir, "drafts"), 0o755))

	names, err := s.List(context.Background())
	require.NoError(t, err)
	require.Equal(t, []string{"amber", "eerie", "zinc"}, names)
}

func TestListMissingBaseDirectory(t *testing.T) {
	t.Parallel()

	s := New(filepath.Join(t.TempDir(), "absent"), t.TempDir(), nil)
	_, err := s.List(context.Background())
	require.Error(t, err)
}

func TestPathPrefersJSON(t *testing.T) {
	t.Parallel()

	s, logs := newStore(t)
	tokenstest.WriteJSON(t, s.BaseDir, "eerie", tokenstest.Palette())
	require.NoError(t, os.WriteFile(filepath.Join(s.BaseDir, "eerie.yml"), []byte("name: Eerie\n"), 0o644))

	path, err := s.Path(context.Background(), "eerie")
	require.NoError(t, err)
	require.Equal(t, filepath.Join(s.BaseDir, "eerie.json"), path)
	require.Contains(t, logs.String(), "several formats")
}

func TestLoad(t *testing.T) {
	t.Parallel()

	s, _ := newStore(t)
	want := tokenstest.Palette()
	tokenstest.WriteJSON(t, s.BaseDir, "eerie", want)

	got, err := s.Load(context.Background(), "eerie")
	require.NoError(t, err)
	require.Equal(t, want, got)

	_, err = s.Load(context.Background(), "missing")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestLoadReportsParseErrors(t *testing.T) {
	t.Parallel()

	s, _ := newStore(t)
	require.NoError(t, os.WriteFile(filepath.Join(s.BaseDir, "broken.json"), []byte("{\n  \"name\": \"Broken\",\n  oops\n}"), 0o644))

	_, err := s.Load(context.Background(), "broken")
	var parseErr *apperrors.ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, 3, parseErr.Line)
}

func TestWriteCreatesOutputAndRoundTrips(t *testing.T) {
	t.Parallel()

	s, _ := newStore(t)
	th, err := generator.BuildTheme(tokenstest.Palette())
	require.NoError(t, err)

	path, err := s.Write(context.Background(), "eerie", th)
	require.NoError(t, err)
	require.Equal(t, filepath.Join(s.OutputDir, "eerie-theme.json"), path)

	data, err := s.ReadGenerated(context.Background(), "eerie")
	require.NoError(t, err)
	require.True(t, bytes.HasSuffix(data, []byte("\n}")))

	encoded, err := Encode(th)
	require.NoError(t, err)
	require.Equal(t, encoded, data)

	var decoded theme.Theme
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Equal(t, "Eerie", decoded.Name)
	require.Equal(t, theme.Keys(th.Colors), theme.Keys(decoded.Colors))
}

func TestWriteLogsStructuralWarnings(t *testing.T) {
	t.Parallel()

	s, logs := newStore(t)
	path, err := s.Write(context.Background(), "hollow", &theme.Theme{Type: "dark"})
	require.NoError(t, err)
	require.FileExists(t, path)

	out := logs.String()
	require.Contains(t, out, "Missing theme name")
	require.Contains(t, out, "Missing colors object")
	require.Contains(t, out, "Missing tokenColors array")
	require.Contains(t, out, `"level":"warn"`)
}

func TestWriteHonoursCancellation(t *testing.T) {
	t.Parallel()

	s, _ := newStore(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.Write(ctx, "eerie", &theme.Theme{})
	require.ErrorIs(t, err, context.Canceled)
	require.NoFileExists(t, s.OutputPath("eerie"))
}

func TestReadGeneratedMissing(t *testing.T) {
	t.Parallel()

	s, _ := newStore(t)
	_, err := s.ReadGenerated(context.Background(), "eerie")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestCleanupOrphans(t *testing.T) {
	t.Parallel()

	s, _ := newStore(t)
	require.NoError(t, os.MkdirAll(s.OutputDir, 0o755))
	for _, name := range []string{"eerie-theme.json", "gone-theme.json", "notes.txt", "stale-theme.json"} {
		require.NoError(t, os.WriteFile(filepath.Join(s.OutputDir, name), []byte("{}"), 0o644))
	}

	removed, err := s.CleanupOrphans(context.Background(), []string{"eerie"})
	require.NoError(t, err)
	require.Equal(t, []string{
		filepath.Join(s.OutputDir, "gone-theme.json"),
		filepath.Join(s.OutputDir, "stale-theme.json"),
	}, removed)

	require.FileExists(t, filepath.Join(s.OutputDir, "eerie-theme.json"))
	require.FileExists(t, filepath.Join(s.OutputDir, "notes.txt"))
	require.NoFileExists(t, filepath.Join(s.OutputDir, "gone-theme.json"))
}

func TestCleanupOrphansWithoutOutputDirectory(t *testing.T) {
	t.Parallel()

	s, _ := newStore(t)
	removed, err := s.CleanupOrphans(context.Background(), nil)
	require.NoError(t, err)
	require.Empty(t, removed)
}

func TestEncodeMatchesDocumentBytes(t *testing.T) {
	t.Parallel()

	palette := tokenstest.Palette()
	palette.Name = "Black & White <Dark>"
	th, err := generator.BuildTheme(palette)
	require.NoError(t, err)

	data, err := Encode(th)
	require.NoError(t, err)
	require.Contains(t, string(data), `"name": "Black & White <Dark>",`)
	require.False(t, bytes.HasSuffix(data, []byte("\n")))
}
