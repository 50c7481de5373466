package bootstrap

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
)

// InstallPythonDeps creates an isolated virtual environment in the backend
// directory and installs its declared requirements. If there is no
// requirements.txt, nothing happens. A missing interpreter or a failed
// install returns a warning message; err is reserved for unexpected
// filesystem problems.
func InstallPythonDeps(backendDir string) (string, error) {
	reqs := filepath.Join(backendDir, "requirements.txt")
	if _, err := os.Stat(reqs); err != nil {
		return "", nil // no requirements.txt, nothing to do
	}

	pythonBin, err := lookPathFirst("python3", "python")
	if err != nil {
		return "python not found — skipping backend dependency installation", nil
	}

	if err := runQuiet(backendDir, pythonBin, "-m", "venv", "venv"); err != nil {
		return fmt.Sprintf("virtual environment creation failed: %v (run manually)", err), nil
	}

	pip := venvPip(backendDir)
	if err := runQuiet(backendDir, pip, "install", "--upgrade", "pip"); err != nil {
		return fmt.Sprintf("pip upgrade failed: %v (run manually)", err), nil
	}
	if err := runQuiet(backendDir, pip, "install", "-r", "requirements.txt"); err != nil {
		return fmt.Sprintf("backend dependency installation failed: %v (run manually)", err), nil
	}

	return "", nil
}

// InstallNodeDeps runs npm install in the frontend directory if a
// package.json exists. A missing toolchain or failed install returns a
// warning message.
func InstallNodeDeps(frontendDir string) (string, error) {
	pkgJSON := filepath.Join(frontendDir, "package.json")
	if _, err := os.Stat(pkgJSON); err != nil {
		return "", nil // no package.json, nothing to do
	}

	if _, err := exec.LookPath("node"); err != nil {
		return "Node.js not found — skipping npm install", nil
	}
	npmPath, err := exec.LookPath("npm")
	if err != nil {
		return "npm not found — skipping frontend dependency installation", nil
	}

	if err := runQuiet(frontendDir, npmPath, "install"); err != nil {
		return fmt.Sprintf("frontend dependency installation failed: %v (run manually)", err), nil
	}

	return "", nil
}

// Result holds the outcome of one bootstrap run.
type Result struct {
	EnvFiles []string
	Warnings []string
}

// Run materializes env files and, unless skipDeps is set, installs
// dependencies for each sub-project present under targetRoot. Bootstrap is
// advisory: it always succeeds, with problems reported as warnings.
func Run(targetRoot string, skipDeps bool) *Result {
	created, warnings := MaterializeEnv(targetRoot)
	result := &Result{EnvFiles: created, Warnings: warnings}

	if skipDeps {
		return result
	}

	if warning, err := InstallPythonDeps(filepath.Join(targetRoot, "backend")); err != nil {
		result.Warnings = append(result.Warnings, err.Error())
	} else if warning != "" {
		result.Warnings = append(result.Warnings, warning)
	}

	if warning, err := InstallNodeDeps(filepath.Join(targetRoot, "frontend")); err != nil {
		result.Warnings = append(result.Warnings, err.Error())
	} else if warning != "" {
		result.Warnings = append(result.Warnings, warning)
	}

	return result
}

// venvPip returns the platform-specific pip path inside the created venv.
func venvPip(dir string) string {
	if runtime.GOOS == "windows" {
		return filepath.Join(dir, "venv", "Scripts", "pip.exe")
	}
	return filepath.Join(dir, "venv", "bin", "pip")
}

// lookPathFirst returns the first binary found on PATH.
func lookPathFirst(candidates ...string) (string, error) {
	for _, name := range candidates {
		if path, err := exec.LookPath(name); err == nil {
			return path, nil
		}
	}
	return "", fmt.Errorf("none of %v found on PATH", candidates)
}

// runQuiet runs a command in dir, discarding its output.
func runQuiet(dir, bin string, args ...string) error {
	cmd := exec.Command(bin, args...)
	cmd.Dir = dir
	cmd.Stdout = io.Discard
	cmd.Stderr = io.Discard
	return cmd.Run()
}
