//go:build integration

package integration_test

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

// requireGit skips when git is unavailable and pins a throwaway identity so
// commits work on bare CI images.
func requireGit(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not available")
	}
	t.Setenv("GIT_AUTHOR_NAME", "test")
	t.Setenv("GIT_AUTHOR_EMAIL", "test@example.com")
	t.Setenv("GIT_COMMITTER_NAME", "test")
	t.Setenv("GIT_COMMITTER_EMAIL", "test@example.com")
	t.Setenv("GIT_CONFIG_GLOBAL", filepath.Join(t.TempDir(), "gitconfig"))
}

// buildStarterTemplate lays out a realistic template checkout, including the
// litter a working checkout accumulates (venv, caches, a live .env).
func buildStarterTemplate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	files := map[string]string{
		"README.md":                 "# Starter Web App\n\nFull-stack template with FastAPI + React\n",
		"package.json":              `{"name": "starter-webapp", "private": true, "workspaces": ["frontend"]}` + "\n",
		"backend/requirements.txt":  "# starter-webapp backend\nfastapi\nuvicorn\n",
		"backend/render.yaml":       "services:\n  - name: starter-webapp-backend\n",
		"backend/.env.example":      "DATABASE_URL=sqlite:///starter_webapp.db\n",
		"backend/app/main.py":       "app = FastAPI(title=\"Starter Web App\")\n",
		"frontend/package.json":     `{"name": "starter-webapp-frontend", "type": "module"}` + "\n",
		"frontend/wrangler.toml":    "name = \"starter-webapp-frontend\"\n",
		"frontend/index.html":       "<title>Starter Web App</title>\n",
		"frontend/src/App.jsx":      "export default function App() { return <h1>Starter Web App</h1> }\n",
		"frontend/.env.example":     "VITE_API_URL=http://localhost:8000\n",
		"venv/lib/site.py":          "ignored\n",
		"node_modules/x/index.js":   "ignored\n",
		"__pycache__/main.cpython":  "ignored\n",
		"backend/app/main.pyc":      "ignored\n",
		"backend/starter_webapp.db": "ignored\n",
		".env":                      "SECRET=do-not-copy\n",
		"scaffold.py":               "ignored\n",
	}

	for rel, content := range files {
		path := filepath.Join(dir, rel)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("creating %s: %v", rel, err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatalf("writing %s: %v", rel, err)
		}
	}
	return dir
}

func assertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected file %s: %v", path, err)
	}
}

func assertNotExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("expected %s to be absent, stat err = %v", path, err)
	}
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	return string(data)
}

func gitOutput(t *testing.T, dir string, args ...string) string {
	t.Helper()
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	out, err := cmd.Output()
	if err != nil {
		t.Fatalf("git %v: %v", args, err)
	}
	return strings.TrimSpace(string(out))
}
