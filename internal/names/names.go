package names

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// namePattern is the canonical project name grammar: lowercase, starts with a
// letter, ends with a letter or digit, hyphens and underscores allowed inside.
var (
	namePattern  = regexp.MustCompile(`^[a-z][a-z0-9\-_]*[a-z0-9]$`)
	invalidChars = regexp.MustCompile(`[^a-z0-9\-_]`)
	hyphenRuns   = regexp.MustCompile(`-+`)
)

// Forms holds the casing variants derived from a validated project name.
type Forms struct {
	Identifier string // hyphens to underscores, e.g. "blog_platform"
	Title      string // separators to spaces, words capitalized, e.g. "Blog Platform"
	Compact    string // capitalized words concatenated, e.g. "BlogPlatform"
}

// Sanitize converts an arbitrary string toward the project name grammar:
// lowercase, invalid characters replaced with hyphens, hyphen runs collapsed,
// leading/trailing separators stripped. It never fails, but its output can
// still be rejected by Validate (e.g., an empty result).
func Sanitize(raw string) string {
	s := strings.ToLower(raw)
	s = invalidChars.ReplaceAllString(s, "-")
	s = hyphenRuns.ReplaceAllString(s, "-")
	return strings.Trim(s, "-_")
}

// Validate reports whether name matches the project name grammar and is at
// least two characters long. Callers must sanitize first and surface any
// change to the user rather than silently substituting.
func Validate(name string) bool {
	return len(name) >= 2 && namePattern.MatchString(name)
}

// Derive computes the three casing forms for a validated name. All forms are
// pure functions of the input; Derive never fails on names Validate accepts.
func Derive(name string) Forms {
	caser := cases.Title(language.English)

	identifier := strings.ReplaceAll(name, "-", "_")
	title := caser.String(strings.ReplaceAll(identifier, "_", " "))

	var compact strings.Builder
	for _, word := range strings.Split(identifier, "_") {
		if word == "" {
			continue
		}
		compact.WriteString(caser.String(word))
	}

	return Forms{
		Identifier: identifier,
		Title:      title,
		Compact:    compact.String(),
	}
}
