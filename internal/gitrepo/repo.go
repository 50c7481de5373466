package gitrepo

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// ignoreFileContent is the generated .gitignore written into every new
// project. Fixed content covering python, node, env, build, IDE, and OS
// artifacts for the backend and frontend sub-projects.
const ignoreFileContent = `# Python
__pycache__/
*.py[cod]
*$py.class
*.so
.Python
build/
develop-eggs/
dist/
downloads/
eggs/
.eggs/
lib/
lib64/
parts/
sdist/
var/
wheels/
share/python-wheels/
*.egg-info/
.installed.cfg
*.egg
MANIFEST

# Virtual environments
venv/
ENV/
env/
.venv

# Environment variables
.env
.env.local
.env.development.local
.env.test.local
.env.production.local

# Database
*.db
*.sqlite3

# Node.js
node_modules/
npm-debug.log*
yarn-debug.log*
yarn-error.log*
lerna-debug.log*
.pnpm-debug.log*

# Build outputs
dist/
build/
.vite/

# IDE
.vscode/
.idea/
*.swp
*.swo

# OS
.DS_Store
Thumbs.db

# Logs
logs
*.log

# Runtime data
pids
*.pid
*.seed
*.pid.lock

# Coverage
coverage/
*.lcov

# Temporary files
*.tmp
temp.tmp
`

// runGit executes a git subcommand in dir and returns its trimmed combined
// output. The error includes git's output for diagnosis.
func runGit(dir string, args ...string) (string, error) {
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	out, err := cmd.CombinedOutput()
	if err != nil {
		return "", fmt.Errorf("git %s: %w\n%s", strings.Join(args, " "), err, strings.TrimSpace(string(out)))
	}
	return strings.TrimSpace(string(out)), nil
}

// Init creates a fresh repository rooted at root.
func Init(root string) error {
	if _, err := runGit(root, "init"); err != nil {
		return err
	}
	return nil
}

// WriteIgnoreFile writes the generated .gitignore at root.
func WriteIgnoreFile(root string) error {
	path := filepath.Join(root, ".gitignore")
	if err := os.WriteFile(path, []byte(ignoreFileContent), 0o644); err != nil {
		return fmt.Errorf("writing .gitignore: %w", err)
	}
	return nil
}

// StageAll stages every file under root.
func StageAll(root string) error {
	if _, err := runGit(root, "add", "."); err != nil {
		return err
	}
	return nil
}

// Commit creates a commit with the given message.
func Commit(root, message string) error {
	if _, err := runGit(root, "commit", "-m", message); err != nil {
		return err
	}
	return nil
}

// InitialCommitMessage formats the fixed-format message for a generated
// project's first commit, embedding the project's title form.
func InitialCommitMessage(title, templateName string) string {
	return fmt.Sprintf("Initial commit: %s\n\nGenerated from %s template", title, templateName)
}

// InitAndCommit initializes a repository at root, writes the generated
// ignore-file, stages all content, and creates exactly one commit. Any step
// failing aborts; no partial commit is attempted.
func InitAndCommit(root, title, templateName string) error {
	if err := Init(root); err != nil {
		return err
	}
	if err := WriteIgnoreFile(root); err != nil {
		return err
	}
	if err := StageAll(root); err != nil {
		return err
	}
	return Commit(root, InitialCommitMessage(title, templateName))
}

// IsClean reports whether the working tree at dir has no uncommitted changes.
func IsClean(dir string) (bool, error) {
	out, err := runGit(dir, "status", "--porcelain")
	if err != nil {
		return false, err
	}
	return out == "", nil
}
