// Package config handles tool configuration loading and management.
package config

// Config holds all tool settings.
type Config struct {
	Dirs    DirsConfig    `yaml:"dirs"`
	Logging LoggingConfig `yaml:"logging"`
}

// DirsConfig holds the model directory layout, relative to the working
// directory unless absolute paths are configured.
type DirsConfig struct {
	Input  string `yaml:"input"`
	Output string `yaml:"output"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Dirs: DirsConfig{
			Input:  "models/input",
			Output: "models/output",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
