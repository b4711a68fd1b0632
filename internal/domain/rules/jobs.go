package rules

import (
	"regexp"
	"strings"
)

var needsPattern = regexp.MustCompile(`needs:\s*\[([^\]]+)\]`)

// JobNeeds captures every inline needs: [...] dependency list. Like
// EnvDefinitions this produces no finding; the lists are kept as file
// metadata for the JSON and MCP outputs.
func JobNeeds(content string) [][]string {
	var lists [][]string
	for _, m := range needsPattern.FindAllStringSubmatch(content, -1) {
		var deps []string
		for _, dep := range strings.Split(m[1], ",") {
			dep = strings.TrimSpace(dep)
			if dep != "" {
				deps = append(deps, dep)
			}
		}
		lists = append(lists, deps)
	}
	return lists
}
