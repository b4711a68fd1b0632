package application

import (
	"os"
	"path/filepath"

	"github.com/wflint/wflint/internal/domain"
	"github.com/wflint/wflint/internal/domain/rules"
)

// LintService runs the full lint pipeline: scan the workflow directory,
// syntax-check each file, evaluate the rules, and fold the per-file
// results into a run report.
type LintService struct {
	scanner domain.WorkflowScanner
	checker domain.SyntaxChecker
	git     domain.GitInfo
}

// NewLintService creates a LintService. git may be nil to skip
// version-control annotation.
func NewLintService(scanner domain.WorkflowScanner, checker domain.SyntaxChecker, git domain.GitInfo) *LintService {
	return &LintService{scanner: scanner, checker: checker, git: git}
}

// Run lints every workflow file in cfg.WorkflowDir. Files are processed
// strictly in the scanner's lexicographic order, so two runs over an
// unchanged directory produce identical reports. The only fatal error is
// a missing directory; everything else is reported per file.
func (s *LintService) Run(cfg domain.Config) (*domain.RunReport, error) {
	files, err := s.scanner.Scan(cfg.WorkflowDir, cfg.FileExtension)
	if err != nil {
		return nil, err
	}

	report := &domain.RunReport{Dir: cfg.WorkflowDir}
	for _, name := range files {
		report.Add(s.LintFile(filepath.Join(cfg.WorkflowDir, name), name))
	}

	s.annotateGit(report)
	return report, nil
}

// LintFile lints a single workflow file. A read failure or a YAML parse
// failure becomes the file's sole error and short-circuits rule
// evaluation for that file only.
func (s *LintService) LintFile(path, name string) domain.FileReport {
	fr := domain.FileReport{Name: name, Path: path}

	data, err := os.ReadFile(path)
	if err != nil {
		fr.ReadError = err.Error()
		return fr
	}

	if err := s.checker.Check(data); err != nil {
		fr.YAMLError = err.Error()
		return fr
	}
	fr.YAMLValid = true

	findings, meta := rules.Evaluate(string(data))
	for _, f := range findings {
		switch f.Severity {
		case domain.SeverityError:
			fr.Errors = append(fr.Errors, f)
		case domain.SeverityWarning:
			fr.Warnings = append(fr.Warnings, f)
		}
	}
	fr.Metadata = meta
	return fr
}

// annotateGit records HEAD commit and branch when the workflow directory
// sits inside a git checkout. Failures leave the report unannotated.
func (s *LintService) annotateGit(report *domain.RunReport) {
	if s.git == nil || !s.git.IsGitRepo(report.Dir) {
		return
	}
	if hash, err := s.git.CommitHash(report.Dir); err == nil {
		report.CommitHash = hash
	}
	if branch, err := s.git.Branch(report.Dir); err == nil {
		report.Branch = branch
	}
}
