package tokens

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"

	apperrors "github.com/alexisbeaulieu97/ether/pkg/errors"
)

// Format identifies the encoding of a base token document.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// FormatForPath picks a Format from a file extension.
func FormatForPath(path string) (Format, bool) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, true
	case ".yaml", ".yml":
		return FormatYAML, true
	default:
		return "", false
	}
}

// ReadFile loads a base token document from disk. Decoding failures are
// reported as *errors.ParseError; no validation is performed.
func ReadFile(path string) (BaseTokens, error) {
	format, ok := FormatForPath(path)
	if !ok {
		return BaseTokens{}, apperrors.NewParseError(path, 0, fmt.Errorf("unsupported extension %q", filepath.Ext(path)))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return BaseTokens{}, apperrors.NewParseError(path, 0, err)
	}

	return Decode(path, data, format)
}

// Decode parses data in the given format. The path only labels errors.
func Decode(path string, data []byte, format Format) (BaseTokens, error) {
	var tokens BaseTokens

	switch format {
	case FormatJSON:
		if err := json.Unmarshal(data, &tokens); err != nil {
			return BaseTokens{}, apperrors.NewParseError(path, jsonLine(data, err), err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &tokens); err != nil {
			return BaseTokens{}, apperrors.NewParseError(path, yamlLine(err), err)
		}
	default:
		return BaseTokens{}, apperrors.NewParseError(path, 0, fmt.Errorf("unknown format %q", format))
	}

	return tokens, nil
}

func jsonLine(data []byte, err error) int {
	var offset int64
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	switch {
	case errors.As(err, &syntaxErr):
		offset = syntaxErr.Offset
	case errors.As(err, &typeErr):
		offset = typeErr.Offset
	default:
		return 0
	}
	if offset > int64(len(data)) {
		offset = int64(len(data))
	}
	return bytes.Count(data[:offset], []byte("\n")) + 1
}

func yamlLine(err error) int {
	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	if _, scanErr := fmt.Sscanf(matches[1], "%d", &line); scanErr != nil {
		return 0
	}
	return line
}
