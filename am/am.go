// Package am ("I am") holds fiscal's configuration: which reference
// tables to load, how particles are matched, how results and logs are
// rendered and how spreadsheets are read.
package am

// Config represents the fiscal configuration
type Config struct {
	Tables TablesConfig `mapstructure:"tables" toml:"tables" yaml:"tables" json:"tables"`
	Output OutputConfig `mapstructure:"output" toml:"output" yaml:"output" json:"output"`
	Log    LogConfig    `mapstructure:"log" toml:"log" yaml:"log" json:"log"`
	Batch  BatchConfig  `mapstructure:"batch" toml:"batch" yaml:"batch" json:"batch"`
}

// TablesConfig selects the reference tables
type TablesConfig struct {
	// TOML/YAML tables file, empty = built-in
	Path string `mapstructure:"path" toml:"path" yaml:"path" json:"path"`

	// substring (default) or token
	ParticleMatch string `mapstructure:"particle_match" toml:"particle_match" yaml:"particle_match" json:"particle_match" validate:"oneof=substring token"`
}

// OutputConfig configures command output
type OutputConfig struct {
	Format string `mapstructure:"format" toml:"format" yaml:"format" json:"format" validate:"oneof=text json yaml"`
}

// LogConfig configures the logger
type LogConfig struct {
	JSON  bool   `mapstructure:"json" toml:"json" yaml:"json" json:"json"`
	Theme string `mapstructure:"theme" toml:"theme" yaml:"theme" json:"theme" validate:"oneof=everforest gruvbox"`
}

// BatchConfig configures spreadsheet input
type BatchConfig struct {
	// XLSX sheet name, empty = first sheet
	Sheet string `mapstructure:"sheet" toml:"sheet" yaml:"sheet" json:"sheet"`

	// first row names the columns
	Header bool `mapstructure:"header" toml:"header" yaml:"header" json:"header"`

	// rows generated concurrently
	Workers int `mapstructure:"workers" toml:"workers" yaml:"workers" json:"workers" validate:"min=1"`
}

// File system constants
const (
	DefaultDirPermissions  = 0755 // Standard directory permissions (rwxr-xr-x)
	DefaultFilePermissions = 0644 // Standard file permissions (rw-r--r--)
)

// Config file locations
const (
	ConfigFileName = "am.toml"
	UserConfigDir  = ".fiscal"
	SystemConfig   = "/etc/fiscal/am.toml"
	EnvPrefix      = "FISCAL"
)
