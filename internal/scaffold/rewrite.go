package scaffold

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/webstarter-labs/webstarter/internal/branding"
	"github.com/webstarter-labs/webstarter/internal/names"
)

// RewriteTargets is the fixed allow-list of files eligible for placeholder
// substitution, relative to the target root. It is enumerated rather than
// discovered so that substitution can never corrupt binary or unrelated
// assets that happen to contain a matching substring.
var RewriteTargets = []string{
	"README.md",
	"package.json",
	"backend/requirements.txt",
	"backend/render.yaml",
	"frontend/package.json",
	"frontend/wrangler.toml",
	"frontend/index.html",
	"frontend/src/App.jsx",
	"backend/.env.example",
	"frontend/.env.example",
}

// Placeholder strings committed in the starter template. The identifier and
// title tokens are spelled out rather than derived because they are whatever
// the template authors actually committed ("Starter Web App", not the
// mechanical "Starter Webapp").
const (
	tokenIdentifier = "starter_webapp"
	tokenTitle      = "Starter Web App"
)

// Replacement is one ordered literal substitution.
type Replacement struct {
	Old string
	New string
}

// ReplacementTable builds the ordered substitution table for one scaffold
// run. Entries apply in declared order; the bare name token comes first, so
// the suffixed tokens below it only matter for content the first entry
// cannot reach. Replacements are literal and case-sensitive with no
// word-boundary protection, matching the template's committed placeholders.
func ReplacementTable(name string, forms names.Forms, description string) []Replacement {
	token := branding.TemplateName()

	return []Replacement{
		{token, name},
		{tokenIdentifier, forms.Identifier},
		{tokenTitle, forms.Title},
		{branding.TemplateDescription(), description},
		{token + "-frontend", name + "-frontend"},
		{token + "-backend", name + "-backend"},
		{token + "-db", name + "-db"},
	}
}

// RewriteFiles applies the replacement table to each rewrite target that
// exists under targetDir, overwriting the file in place. Missing targets are
// skipped silently since templates may omit optional files. Each file is
// treated as opaque text: one read, all replacements in table order, one
// write. Returns the relative paths of files actually rewritten.
func RewriteFiles(targetDir string, targets []string, table []Replacement) ([]string, error) {
	var rewritten []string

	for _, rel := range targets {
		path := filepath.Join(targetDir, rel)

		data, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return rewritten, fmt.Errorf("reading %s: %w", rel, err)
		}

		content := string(data)
		for _, r := range table {
			content = strings.ReplaceAll(content, r.Old, r.New)
		}

		info, err := os.Stat(path)
		if err != nil {
			return rewritten, fmt.Errorf("stating %s: %w", rel, err)
		}
		if err := os.WriteFile(path, []byte(content), info.Mode()); err != nil {
			return rewritten, fmt.Errorf("writing %s: %w", rel, err)
		}

		rewritten = append(rewritten, rel)
	}

	return rewritten, nil
}
