package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	apperrors "github.com/alexisbeaulieu97/ether/pkg/errors"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), DefaultFile)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestParseConfig(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		contents string
		assert   func(t *testing.T, cfg *Config, err error)
	}{
		{
			name: "partial file keeps defaults",
			contents: `base_dir: palettes
parallel: 8
`,
			assert: func(t *testing.T, cfg *Config, err error) {
				require.NoError(t, err)
				require.Equal(t, "palettes", cfg.BaseDir)
				require.Equal(t, 8, cfg.Parallel)
				require.Equal(t, "themes/generated", cfg.OutputDir)
				require.Equal(t, "Ether", cfg.LabelPrefix)
				require.Equal(t, "info", cfg.LogLevel)
			},
		},
		{
			name:     "empty file yields defaults",
			contents: "\n",
			assert: func(t *testing.T, cfg *Config, err error) {
				require.NoError(t, err)
				require.Equal(t, Default(), *cfg)
			},
		},
		{
			name: "malformed yaml reports line",
			contents: `base_dir: themes/base
parallel: [1, 2
`,
			assert: func(t *testing.T, cfg *Config, err error) {
				require.Error(t, err)
				require.Nil(t, cfg)
				var parseErr *apperrors.ParseError
				require.ErrorAs(t, err, &parseErr)
				require.Greater(t, parseErr.Line, 0)
			},
		},
		{
			name:     "unknown key is rejected",
			contents: "colour: red\n",
			assert: func(t *testing.T, cfg *Config, err error) {
				var parseErr *apperrors.ParseError
				require.ErrorAs(t, err, &parseErr)
				require.Equal(t, 1, parseErr.Line)
			},
		},
		{
			name:     "parallel out of range",
			contents: "parallel: 64\n",
			assert: func(t *testing.T, cfg *Config, err error) {
				var valErr *apperrors.ValidationError
				require.ErrorAs(t, err, &valErr)
				require.Equal(t, "parallel", valErr.Field)
			},
		},
		{
			name:     "unknown log level",
			contents: "log_level: trace\n",
			assert: func(t *testing.T, cfg *Config, err error) {
				var valErr *apperrors.ValidationError
				require.ErrorAs(t, err, &valErr)
				require.Equal(t, "log_level", valErr.Field)
				require.Contains(t, valErr.Message, "debug info warn error")
			},
		},
		{
			name:     "output may not escape project",
			contents: "output_dir: ../elsewhere\n",
			assert: func(t *testing.T, cfg *Config, err error) {
				var valErr *apperrors.ValidationError
				require.ErrorAs(t, err, &valErr)
				require.Equal(t, "output_dir", valErr.Field)
			},
		},
		{
			name:     "output must differ from base",
			contents: "output_dir: themes/base\n",
			assert: func(t *testing.T, cfg *Config, err error) {
				var valErr *apperrors.ValidationError
				require.ErrorAs(t, err, &valErr)
				require.Equal(t, "output_dir", valErr.Field)
				require.Contains(t, valErr.Message, "base_dir")
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			cfg, err := ParseConfig(writeConfig(t, tc.contents))
			tc.assert(t, cfg, err)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()

	missing := filepath.Join(t.TempDir(), DefaultFile)

	cfg, err := Load(missing, false)
	require.NoError(t, err)
	require.Equal(t, Default(), *cfg)

	_, err = Load(missing, true)
	var parseErr *apperrors.ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, missing, parseErr.Path)
}

func TestApplyOverrides(t *testing.T) {
	t.Parallel()

	cfg := Default()
	require.NoError(t, cfg.Apply(Overrides{OutputDir: "out", Parallel: 2, Verbose: true}))
	require.Equal(t, "out", cfg.OutputDir)
	require.Equal(t, 2, cfg.Parallel)
	require.Equal(t, "debug", cfg.LogLevel)
	require.Equal(t, "themes/base", cfg.BaseDir)

	cfg = Default()
	err := cfg.Apply(Overrides{Parallel: 100})
	var valErr *apperrors.ValidationError
	require.ErrorAs(t, err, &valErr)
	require.Equal(t, "parallel", valErr.Field)
}

func TestValidatorIsShared(t *testing.T) {
	t.Parallel()

	require.Same(t, validatorInstance(), validatorInstance())
}

func TestIsProjectPath(t *testing.T) {
	t.Parallel()

	cases := map[string]bool{
		"themes/base":         true,
		"./themes/generated":  true,
		"/tmp/out":            true,
		"a/../b":              true,
		"":                    false,
		"   ":                 false,
		"..":                  false,
		"../sibling":          false,
		"themes/../../escape": false,
	}
	for path, want := range cases {
		require.Equal(t, want, isProjectPath(path), path)
	}
}
