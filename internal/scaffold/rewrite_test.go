package scaffold

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/webstarter-labs/webstarter/internal/names"
)

func testTable(t *testing.T, name, description string) []Replacement {
	t.Helper()
	if !names.Validate(name) {
		t.Fatalf("test name %q should be valid", name)
	}
	return ReplacementTable(name, names.Derive(name), description)
}

func TestReplacementTableOrder(t *testing.T) {
	table := testTable(t, "blog-platform", "A blog")

	if len(table) == 0 {
		t.Fatal("empty replacement table")
	}
	if table[0].Old != "starter-webapp" {
		t.Errorf("first entry Old = %q, want the bare template token", table[0].Old)
	}
	if table[0].New != "blog-platform" {
		t.Errorf("first entry New = %q, want %q", table[0].New, "blog-platform")
	}

	// No replacement's output may reappear as a later entry's search text;
	// the fixed production table must keep rewrite deterministic.
	for i, r := range table {
		for j, other := range table {
			if i == j {
				continue
			}
			if strings.Contains(r.New, other.Old) {
				t.Errorf("entry %d output %q contains entry %d search text %q", i, r.New, j, other.Old)
			}
		}
	}
}

func TestRewriteFiles(t *testing.T) {
	target := t.TempDir()
	pkg := `{"name": "starter-webapp", "description": "Full-stack template with FastAPI + React"}`
	writeTestFile(t, target, "package.json", pkg)
	writeTestFile(t, target, "README.md", "# Starter Web App\nstarter_webapp module\n")

	table := testTable(t, "blog-platform", "A blog")
	rewritten, err := RewriteFiles(target, RewriteTargets, table)
	if err != nil {
		t.Fatalf("RewriteFiles() error: %v", err)
	}

	if len(rewritten) != 2 {
		t.Errorf("rewrote %d files, want 2: %v", len(rewritten), rewritten)
	}

	got := readTestFile(t, target, "package.json")
	if strings.Contains(got, "starter-webapp") {
		t.Errorf("template token survived rewrite: %s", got)
	}
	if !strings.Contains(got, "blog-platform") {
		t.Errorf("project name missing after rewrite: %s", got)
	}
	if !strings.Contains(got, "A blog") {
		t.Errorf("description missing after rewrite: %s", got)
	}

	readme := readTestFile(t, target, "README.md")
	if !strings.Contains(readme, "Blog Platform") {
		t.Errorf("title form missing after rewrite: %s", readme)
	}
	if !strings.Contains(readme, "blog_platform") {
		t.Errorf("identifier form missing after rewrite: %s", readme)
	}
}

func TestRewriteFilesSkipsMissingTargets(t *testing.T) {
	target := t.TempDir()
	writeTestFile(t, target, "README.md", "starter-webapp\n")

	table := testTable(t, "my-app", "desc")
	rewritten, err := RewriteFiles(target, RewriteTargets, table)
	if err != nil {
		t.Fatalf("RewriteFiles() error: %v", err)
	}
	if len(rewritten) != 1 || rewritten[0] != "README.md" {
		t.Errorf("rewritten = %v, want [README.md]", rewritten)
	}
}

func TestRewriteFilesEmptyTableIsNoop(t *testing.T) {
	target := t.TempDir()
	original := "starter-webapp stays put\n"
	writeTestFile(t, target, "README.md", original)

	if _, err := RewriteFiles(target, RewriteTargets, nil); err != nil {
		t.Fatalf("RewriteFiles() error: %v", err)
	}
	if got := readTestFile(t, target, "README.md"); got != original {
		t.Errorf("empty table changed content: %q", got)
	}
}

func TestRewriteFilesIdempotentOnProductionTable(t *testing.T) {
	table := testTable(t, "my-shop", "Web shop")
	original := `{"name": "starter-webapp-frontend", "title": "Starter Web App"}`

	targetOnce := t.TempDir()
	writeTestFile(t, targetOnce, "package.json", original)
	if _, err := RewriteFiles(targetOnce, RewriteTargets, table); err != nil {
		t.Fatal(err)
	}
	once := readTestFile(t, targetOnce, "package.json")

	// Applying the table a second time must change nothing.
	if _, err := RewriteFiles(targetOnce, RewriteTargets, table); err != nil {
		t.Fatal(err)
	}
	twice := readTestFile(t, targetOnce, "package.json")

	if once != twice {
		t.Errorf("rewrite not idempotent: %q vs %q", once, twice)
	}
}

func writeTestFile(t *testing.T, dir, rel, content string) {
	t.Helper()
	path := filepath.Join(dir, rel)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func readTestFile(t *testing.T, dir, rel string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(dir, rel))
	if err != nil {
		t.Fatalf("reading %s: %v", rel, err)
	}
	return string(data)
}
