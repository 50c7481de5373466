//go:build integration

package integration_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/webstarter-labs/webstarter/internal/scaffold"
)

// TestScaffoldEndToEnd runs the full pipeline against a realistic template
// checkout and verifies the generated project is complete: placeholders
// rewritten, checkout litter excluded, env files materialized, and a single
// commit at the tip of a fresh repository.
func TestScaffoldEndToEnd(t *testing.T) {
	requireGit(t)
	template := buildStarterTemplate(t)
	target := filepath.Join(t.TempDir(), "blog-platform")

	runner, err := scaffold.New(scaffold.Options{
		Name:        "blog-platform",
		Description: "A blogging site",
		TemplateDir: template,
		TargetDir:   target,
		SkipDeps:    true,
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	result, err := runner.Run()
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	// Every rewrite target carries the new identity and none of the old.
	for _, rel := range []string{
		"README.md",
		"package.json",
		"backend/requirements.txt",
		"backend/render.yaml",
		"frontend/package.json",
		"frontend/wrangler.toml",
		"frontend/index.html",
		"frontend/src/App.jsx",
		"backend/.env.example",
	} {
		content := readFile(t, filepath.Join(target, rel))
		if strings.Contains(content, "starter-webapp") || strings.Contains(content, "starter_webapp") ||
			strings.Contains(content, "Starter Web App") {
			t.Errorf("%s still carries template placeholders: %q", rel, content)
		}
	}
	if pkg := readFile(t, filepath.Join(target, "package.json")); !strings.Contains(pkg, `"blog-platform"`) {
		t.Errorf("package.json = %q", pkg)
	}
	if title := readFile(t, filepath.Join(target, "backend/app/main.py")); !strings.Contains(title, "Blog Platform") {
		t.Errorf("backend/app/main.py = %q", title)
	}

	// Checkout litter never reaches the generated project.
	assertNotExists(t, filepath.Join(target, "venv"))
	assertNotExists(t, filepath.Join(target, "node_modules"))
	assertNotExists(t, filepath.Join(target, "__pycache__"))
	assertNotExists(t, filepath.Join(target, "backend/app/main.pyc"))
	assertNotExists(t, filepath.Join(target, "backend/starter_webapp.db"))
	assertNotExists(t, filepath.Join(target, "scaffold.py"))

	// The template's live .env is excluded; the example is materialized
	// fresh for each sub-project instead.
	if live := readFile(t, filepath.Join(target, "backend/.env")); strings.Contains(live, "do-not-copy") {
		t.Errorf("template .env leaked into target: %q", live)
	}
	assertFileExists(t, filepath.Join(target, "frontend/.env"))

	// Fresh repository, exactly one commit, clean tree.
	assertFileExists(t, filepath.Join(target, ".gitignore"))
	if count := gitOutput(t, target, "rev-list", "--count", "HEAD"); count != "1" {
		t.Errorf("commit count = %s, want 1", count)
	}
	if subject := gitOutput(t, target, "log", "-1", "--format=%s"); subject != "Initial commit: Blog Platform" {
		t.Errorf("commit subject = %q", subject)
	}
	// The summary lands after the commit, and the materialized .env files
	// are covered by the generated .gitignore, so the summary is the only
	// thing the repository does not track.
	if status := gitOutput(t, target, "status", "--porcelain"); status != "?? "+scaffold.SummaryFileName {
		t.Errorf("unexpected repository status:\n%s", status)
	}

	assertFileExists(t, filepath.Join(target, scaffold.SummaryFileName))
	summary := readFile(t, filepath.Join(target, scaffold.SummaryFileName))
	if !strings.Contains(summary, "Blog Platform") || !strings.Contains(summary, "A blogging site") {
		t.Errorf("summary = %q", summary)
	}

	if len(result.Warnings) != 0 {
		t.Errorf("unexpected warnings: %v", result.Warnings)
	}
}

// TestScaffoldRefusalLeavesTargetUntouched checks that an unconfirmed run
// into an occupied directory writes nothing at all.
func TestScaffoldRefusalLeavesTargetUntouched(t *testing.T) {
	requireGit(t)
	template := buildStarterTemplate(t)
	target := t.TempDir()
	if err := os.WriteFile(filepath.Join(target, "notes.txt"), []byte("keep me\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	runner, err := scaffold.New(scaffold.Options{
		Name:        "blog-platform",
		TemplateDir: template,
		TargetDir:   target,
		SkipDeps:    true,
		Confirm:     func(string) bool { return false },
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if _, err := runner.Run(); err == nil {
		t.Fatal("Run proceeded into an occupied directory against the policy")
	}

	assertNotExists(t, filepath.Join(target, "package.json"))
	assertNotExists(t, filepath.Join(target, ".git"))
	if got := readFile(t, filepath.Join(target, "notes.txt")); got != "keep me\n" {
		t.Errorf("existing file modified: %q", got)
	}
}
