package types

// LogConfig holds structured logging settings. Logging is silent unless
// Verbose is set or File names a log file.
type LogConfig struct {
	// Verbose enables debug-level console logging on stderr.
	Verbose bool `json:"verbose" yaml:"verbose"`

	// Level is the minimum level written to File: debug, info, warn, error
	// (default info).
	Level string `json:"level" yaml:"level"`

	// File is the path of a rotating JSON log file. Empty disables it.
	File string `json:"file,omitempty" yaml:"file,omitempty"`

	// MaxSizeMB is the size at which File is rotated (default 10).
	MaxSizeMB int `json:"max_size_mb" yaml:"max_size_mb"`

	// MaxBackups is the number of rotated files kept (default 3).
	MaxBackups int `json:"max_backups" yaml:"max_backups"`
}

// ScaffoldConfig holds settings for the new-log wizard.
type ScaffoldConfig struct {
	// ContentRoot is the directory track paths are resolved against
	// (default ".", the working directory).
	ContentRoot string `json:"content_root" yaml:"content_root"`

	// Editor is the command used to open a new log (default "code").
	// Extra arguments are allowed, e.g. "code --reuse-window".
	Editor string `json:"editor" yaml:"editor"`

	// OpenEditor controls whether the editor is launched after a write.
	OpenEditor bool `json:"open_editor" yaml:"open_editor"`
}

// Config groups all dossier settings.
type Config struct {
	Scaffold ScaffoldConfig `json:"scaffold" yaml:"scaffold"`
	Log      LogConfig      `json:"log" yaml:"log"`
}
