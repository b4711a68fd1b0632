package domain

import "errors"

// ErrDirectoryNotFound is returned when the workflow directory does not
// exist. It is fatal for the whole run: no files are processed.
var ErrDirectoryNotFound = errors.New("workflow directory not found")

// WorkflowScanner enumerates workflow files in a directory.
// File names are returned in lexicographic order.
type WorkflowScanner interface {
	Scan(dir, extension string) ([]string, error)
}

// SyntaxChecker performs a generic structural YAML parse.
// A nil error means the content is syntactically valid YAML.
type SyntaxChecker interface {
	Check(content []byte) error
}

// ConfigLoader loads the lint configuration for a working directory.
type ConfigLoader interface {
	Load(dir string) (Config, error)
}

// GitInfo reports version-control metadata for a directory.
type GitInfo interface {
	IsGitRepo(path string) bool
	CommitHash(path string) (string, error)
	Branch(path string) (string, error)
}
