package scaffold

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"text/template"
	"time"
)

//go:embed assets/summary.md.tmpl
var summaryTemplate string

// SummaryFileName is the project summary document written at the target root.
const SummaryFileName = "PROJECT_SUMMARY.md"

type summaryData struct {
	Name        string
	Title       string
	Description string
	Generated   string
	Template    string
}

// WriteSummary renders the project summary document into the target root.
// Summary generation is cosmetic; callers treat failure as a warning.
func WriteSummary(targetDir, name, title, description, templateName string) error {
	tmpl, err := template.New("summary").Parse(summaryTemplate)
	if err != nil {
		return fmt.Errorf("parsing summary template: %w", err)
	}

	var buf bytes.Buffer
	err = tmpl.Execute(&buf, summaryData{
		Name:        name,
		Title:       title,
		Description: description,
		Generated:   time.Now().Format(time.RFC1123),
		Template:    templateName,
	})
	if err != nil {
		return fmt.Errorf("rendering summary: %w", err)
	}

	path := filepath.Join(targetDir, SummaryFileName)
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", SummaryFileName, err)
	}
	return nil
}
