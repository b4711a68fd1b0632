package yamlcheck

import (
	"gopkg.in/yaml.v3"
)

// Checker implements domain.SyntaxChecker with a generic yaml.v3 parse.
// It is structural only: no schema awareness, no GitHub Actions semantics.
type Checker struct{}

func New() *Checker {
	return &Checker{}
}

// Check parses content into a yaml.Node. The returned error carries the
// parser's own diagnostic (line/column or a general syntax description).
func (c *Checker) Check(content []byte) error {
	var node yaml.Node
	return yaml.Unmarshal(content, &node)
}
