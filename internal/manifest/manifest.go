// Package manifest keeps the extension's package.json theme contributions in
// step with the base documents.
package manifest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/alexisbeaulieu97/ether/internal/store"
	"github.com/alexisbeaulieu97/ether/internal/theme"
	"github.com/alexisbeaulieu97/ether/internal/tokens"
	apperrors "github.com/alexisbeaulieu97/ether/pkg/errors"
)

// UI theme identifiers understood by the editor.
const (
	UIThemeDark  = "vs-dark"
	UIThemeLight = "vs"
)

// Entry is one element of contributes.themes.
type Entry struct {
	Label   string `json:"label"`
	UITheme string `json:"uiTheme"`
	Path    string `json:"path"`
}

// Source lists and loads base documents.
type Source interface {
	List(ctx context.Context) ([]string, error)
	Load(ctx context.Context, name string) (tokens.BaseTokens, error)
}

// Entries builds a manifest entry for every base document that is not
// marked as a test theme, in listing order.
func Entries(ctx context.Context, src Source, labelPrefix, generatedPath string) ([]Entry, error) {
	names, err := src.List(ctx)
	if err != nil {
		return nil, err
	}

	entries := make([]Entry, 0, len(names))
	for _, name := range names {
		base, err := src.Load(ctx, name)
		if err != nil {
			return nil, fmt.Errorf("manifest entry %s: %w", name, err)
		}
		if base.Test {
			continue
		}
		entries = append(entries, NewEntry(name, base, labelPrefix, generatedPath))
	}
	return entries, nil
}

// NewEntry describes the generated theme for the base document stored
// under file.
func NewEntry(file string, base tokens.BaseTokens, labelPrefix, generatedPath string) Entry {
	label := base.Name
	if label == "" {
		label = file
	}
	if labelPrefix != "" {
		label = labelPrefix + " " + label
	}

	uiTheme := UIThemeDark
	if base.Type == tokens.KindLight {
		uiTheme = UIThemeLight
	}

	return Entry{
		Label:   label,
		UITheme: uiTheme,
		Path:    strings.TrimSuffix(generatedPath, "/") + "/" + file + store.GeneratedSuffix,
	}
}

// Update replaces contributes.themes in the package.json at path with
// entries, keeping every other key and its position. It reports whether
// the file changed.
func Update(path string, entries []Entry) (bool, error) {
	original, err := os.ReadFile(path)
	if err != nil {
		return false, apperrors.NewParseError(path, 0, err)
	}

	doc := theme.NewOrderedMap[json.RawMessage](0)
	if err := json.Unmarshal(original, doc); err != nil {
		return false, apperrors.NewParseError(path, 0, err)
	}

	contributes := theme.NewOrderedMap[json.RawMessage](1)
	if raw, ok := doc.Get("contributes"); ok && !isNull(raw) {
		if err := json.Unmarshal(raw, contributes); err != nil {
			return false, apperrors.NewValidationError("contributes", "must be an object", err)
		}
	}

	if entries == nil {
		entries = []Entry{}
	}
	themes, err := theme.MarshalCompact(entries)
	if err != nil {
		return false, err
	}
	contributes.Set("themes", themes)

	encodedContributes, err := theme.MarshalCompact(contributes)
	if err != nil {
		return false, err
	}
	doc.Set("contributes", encodedContributes)

	updated, err := theme.MarshalIndent(doc)
	if err != nil {
		return false, err
	}
	updated = append(updated, '\n')

	if bytes.Equal(original, updated) {
		return false, nil
	}
	if err := os.WriteFile(path, updated, 0o644); err != nil {
		return false, err
	}
	return true, nil
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}
