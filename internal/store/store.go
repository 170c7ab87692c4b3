// Package store reads base token documents and writes generated themes on
// the local filesystem.
package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/alexisbeaulieu97/ether/internal/logger"
	"github.com/alexisbeaulieu97/ether/internal/theme"
	"github.com/alexisbeaulieu97/ether/internal/tokens"
	"github.com/alexisbeaulieu97/ether/internal/validation"
	apperrors "github.com/alexisbeaulieu97/ether/pkg/errors"
)

// GeneratedSuffix is appended to a base name to form its output file name.
const GeneratedSuffix = "-theme.json"

// ErrNotFound is returned when a named base document or generated theme
// does not exist.
var ErrNotFound = errors.New("not found")

// formatPriority orders extensions when the same base name exists in
// several encodings.
var formatPriority = []string{".json", ".yaml", ".yml"}

// FileStore keeps base documents in BaseDir and generated themes in
// OutputDir.
type FileStore struct {
	BaseDir   string
	OutputDir string
	Logger    *logger.Logger
}

// New constructs a FileStore.
func New(baseDir, outputDir string, log *logger.Logger) *FileStore {
	return &FileStore{BaseDir: baseDir, OutputDir: outputDir, Logger: log}
}

// List returns the sorted names of every base document in BaseDir.
func (s *FileStore) List(ctx context.Context) ([]string, error) {
	index, err := s.index(ctx)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(index))
	for name := range index {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// Path returns the file backing the named base document.
func (s *FileStore) Path(ctx context.Context, name string) (string, error) {
	index, err := s.index(ctx)
	if err != nil {
		return "", err
	}
	path, ok := index[name]
	if !ok {
		return "", fmt.Errorf("base theme %q in %s: %w", name, s.BaseDir, ErrNotFound)
	}
	return path, nil
}

// Load decodes the named base document. Decoding failures surface as
// *errors.ParseError; the result is not validated.
func (s *FileStore) Load(ctx context.Context, name string) (tokens.BaseTokens, error) {
	path, err := s.Path(ctx, name)
	if err != nil {
		return tokens.BaseTokens{}, err
	}

	s.Logger.Debug("loading base tokens", "theme", name, "path", path)
	return tokens.ReadFile(path)
}

// OutputPath returns where the generated theme for name is written.
func (s *FileStore) OutputPath(name string) string {
	return filepath.Join(s.OutputDir, name+GeneratedSuffix)
}

// Encode renders th exactly as Write stores it, with no trailing newline.
func Encode(th *theme.Theme) ([]byte, error) {
	return theme.Marshal(th)
}

// Write serializes th to OutputDir and returns the written path. Structural
// problems found in th are logged as warnings and do not block the write.
func (s *FileStore) Write(ctx context.Context, name string, th *theme.Theme) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	report := validation.ValidateTheme(th)
	for _, issue := range report.Issues {
		s.Logger.Warn("generated theme failed validation", "theme", name, "field", issue.Field, "issue", issue.Message)
	}

	data, err := Encode(th)
	if err != nil {
		return "", apperrors.NewGenerationError(name, "encode", err)
	}

	if err := os.MkdirAll(s.OutputDir, 0o755); err != nil {
		return "", apperrors.NewGenerationError(name, "write", err)
	}

	path := s.OutputPath(name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", apperrors.NewGenerationError(name, "write", err)
	}

	s.Logger.Debug("theme written", "theme", name, "path", path, "bytes", len(data))
	return path, nil
}

// ReadGenerated returns the generated theme currently on disk for name.
func (s *FileStore) ReadGenerated(ctx context.Context, name string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	path := s.OutputPath(name)
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("generated theme %s: %w", path, ErrNotFound)
	}
	return data, err
}

// CleanupOrphans removes generated themes whose base name is not in valid.
// Individual removal failures are logged and skipped. The removed paths are
// returned in sorted order.
func (s *FileStore) CleanupOrphans(ctx context.Context, valid []string) ([]string, error) {
	entries, err := os.ReadDir(s.OutputDir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read output directory: %w", err)
	}

	keep := make(map[string]struct{}, len(valid))
	for _, name := range valid {
		keep[name] = struct{}{}
	}

	var removed []string
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return removed, err
		}
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), GeneratedSuffix) {
			continue
		}

		name := strings.TrimSuffix(entry.Name(), GeneratedSuffix)
		if _, ok := keep[name]; ok {
			continue
		}

		path := filepath.Join(s.OutputDir, entry.Name())
		if err := os.Remove(path); err != nil {
			s.Logger.Warn("failed to remove orphaned theme", "path", path, "error", err.Error())
			continue
		}
		s.Logger.Info("removed orphaned theme", "theme", name, "path", path)
		removed = append(removed, path)
	}
	return removed, nil
}

// index maps base names to their files, preferring JSON over YAML when a
// name exists in both.
func (s *FileStore) index(ctx context.Context) (map[string]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(s.BaseDir)
	if err != nil {
		return nil, fmt.Errorf("read base directory: %w", err)
	}

	index := make(map[string]string, len(entries))
	rank := make(map[string]int, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		priority := indexOf(formatPriority, ext)
		if priority < 0 {
			continue
		}

		name := strings.TrimSuffix(entry.Name(), filepath.Ext(entry.Name()))
		if name == "" {
			continue
		}
		if existing, ok := rank[name]; ok {
			s.Logger.Warn("base theme exists in several formats", "theme", name, "using", formatPriority[min(existing, priority)])
			if existing <= priority {
				continue
			}
		}
		index[name] = filepath.Join(s.BaseDir, entry.Name())
		rank[name] = priority
	}
	return index, nil
}

func indexOf(values []string, target string) int {
	for i, v := range values {
		if v == target {
			return i
		}
	}
	return -1
}
