package config

// DefaultFile is the project file looked up when --config is not supplied.
const DefaultFile = "ether.yaml"

// Config describes an ether project: where base palettes live, where
// generated themes go and how the extension manifest is maintained.
type Config struct {
	BaseDir       string `yaml:"base_dir" validate:"required,relpath"`
	OutputDir     string `yaml:"output_dir" validate:"required,relpath,nefield=BaseDir"`
	Manifest      string `yaml:"manifest" validate:"required,relpath"`
	LabelPrefix   string `yaml:"label_prefix" validate:"max=40"`
	GeneratedPath string `yaml:"generated_path" validate:"required,relpath"`
	Parallel      int    `yaml:"parallel" validate:"min=1,max=32"`
	LogLevel      string `yaml:"log_level" validate:"oneof=debug info warn error"`
}

// Default returns the configuration used when no project file exists.
func Default() Config {
	return Config{
		BaseDir:       "themes/base",
		OutputDir:     "themes/generated",
		Manifest:      "package.json",
		LabelPrefix:   "Ether",
		GeneratedPath: "./themes/generated",
		Parallel:      4,
		LogLevel:      "info",
	}
}

// Overrides carries command-line values that take precedence over the file.
// Zero values leave the file's setting in place.
type Overrides struct {
	BaseDir   string
	OutputDir string
	Parallel  int
	Verbose   bool
}

// Apply merges o into cfg and revalidates the result.
func (cfg *Config) Apply(o Overrides) error {
	if o.BaseDir != "" {
		cfg.BaseDir = o.BaseDir
	}
	if o.OutputDir != "" {
		cfg.OutputDir = o.OutputDir
	}
	if o.Parallel != 0 {
		cfg.Parallel = o.Parallel
	}
	if o.Verbose {
		cfg.LogLevel = "debug"
	}
	return ValidateConfig(cfg)
}
