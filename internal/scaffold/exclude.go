package scaffold

import "strings"

// DefaultExclusions are files and directories never copied into generated
// projects. A leading "*" makes the rule a suffix match; anything else is an
// exact basename match. The set is fixed configuration, applied to both
// directories (pruning traversal) and files.
var DefaultExclusions = []string{
	"__pycache__",
	"*.pyc",
	"*.pyo",
	".git",
	".gitignore",
	"venv",
	"node_modules",
	".env",
	"*.db",
	"dist",
	".vite",
	"temp.tmp",
	"scaffold.py", // legacy generator script kept in older template checkouts
	"webstarter",  // the scaffolding tool's own binary
}

// Excluded reports whether the entry name matches any exclusion rule.
// Rules starting with "*" match on suffix, all others on exact equality.
func Excluded(name string, rules []string) bool {
	for _, rule := range rules {
		if strings.HasPrefix(rule, "*") {
			if strings.HasSuffix(name, strings.TrimPrefix(rule, "*")) {
				return true
			}
		} else if name == rule {
			return true
		}
	}
	return false
}
