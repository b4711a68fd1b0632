package domain

const (
	SeverityError   = "error"
	SeverityWarning = "warning"
)

// Finding represents a single issue reported by a rule.
type Finding struct {
	Severity string `json:"severity"`
	Rule     string `json:"rule"`
	Message  string `json:"message"`
}

// FileMetadata holds data extracted from a workflow file that is not
// turned into findings: env variable definitions and job dependency
// lists. Surfaced only through JSON and MCP output.
type FileMetadata struct {
	EnvVars  []string   `json:"env_vars,omitempty"`
	JobNeeds [][]string `json:"job_needs,omitempty"`
}

// FileReport is the full lint result for one workflow file.
type FileReport struct {
	Name      string       `json:"name"`
	Path      string       `json:"path"`
	ReadError string       `json:"read_error,omitempty"`
	YAMLValid bool         `json:"yaml_valid"`
	YAMLError string       `json:"yaml_error,omitempty"`
	Errors    []Finding    `json:"errors,omitempty"`
	Warnings  []Finding    `json:"warnings,omitempty"`
	Metadata  FileMetadata `json:"metadata,omitempty"`
}

// ErrorCount returns the number of errors this file contributes to the
// run totals. A file that could not be read or parsed contributes
// exactly one error and no rule findings.
func (f FileReport) ErrorCount() int {
	if f.ReadError != "" || !f.YAMLValid {
		return 1
	}
	return len(f.Errors)
}

func (f FileReport) WarningCount() int {
	if f.ReadError != "" || !f.YAMLValid {
		return 0
	}
	return len(f.Warnings)
}

// RunReport is the fold of all per-file reports for one lint run.
type RunReport struct {
	Dir           string       `json:"dir"`
	Files         []FileReport `json:"files"`
	TotalErrors   int          `json:"total_errors"`
	TotalWarnings int          `json:"total_warnings"`
	CommitHash    string       `json:"commit_hash,omitempty"`
	Branch        string       `json:"branch,omitempty"`
}

// Add appends a file report and updates the running totals.
func (r *RunReport) Add(f FileReport) {
	r.Files = append(r.Files, f)
	r.TotalErrors += f.ErrorCount()
	r.TotalWarnings += f.WarningCount()
}

func (r *RunReport) HasErrors() bool { return r.TotalErrors > 0 }
