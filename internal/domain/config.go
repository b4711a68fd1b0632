package domain

import "fmt"

// Defaults match the original hard-coded tool behavior: a fixed relative
// directory and a literal .yml suffix filter (not a glob).
const (
	DefaultWorkflowDir   = "github-workflows-backup"
	DefaultFileExtension = ".yml"
)

// Config holds the lint run configuration.
type Config struct {
	WorkflowDir   string `yaml:"workflow_dir"`
	FileExtension string `yaml:"file_extension"`
}

func DefaultConfig() Config {
	return Config{
		WorkflowDir:   DefaultWorkflowDir,
		FileExtension: DefaultFileExtension,
	}
}

func (c Config) Validate() error {
	if c.WorkflowDir == "" {
		return fmt.Errorf("workflow_dir must not be empty")
	}
	if c.FileExtension == "" || c.FileExtension[0] != '.' {
		return fmt.Errorf("file_extension must start with a dot, got %q", c.FileExtension)
	}
	return nil
}
