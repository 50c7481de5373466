package toolchain

import (
	"fmt"
	"os/exec"
	"regexp"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Tool describes one external program the scaffolder shells out to.
type Tool struct {
	Name       string // binary name on PATH
	MinVersion string // minimum acceptable version, empty for presence-only
	Required   bool   // required tools fail doctor; others only warn
}

// Default is the toolchain consumed by the scaffold pipeline: git for
// repository init (required), python/node/npm for the advisory dependency
// installs.
var Default = []Tool{
	{Name: "git", MinVersion: "2.20.0", Required: true},
	{Name: "python3", MinVersion: "3.9.0"},
	{Name: "node", MinVersion: "18.0.0"},
	{Name: "npm", MinVersion: "8.0.0"},
}

// Status is the result of probing one tool.
type Status struct {
	Tool      Tool
	Found     bool
	Path      string
	Version   string
	Satisfied bool   // version requirement met (true when no requirement)
	Detail    string // human-readable problem description, empty when fine
}

// versionToken matches the first dotted version number in tool output, e.g.
// "git version 2.39.2" or "v20.1.0".
var versionToken = regexp.MustCompile(`\d+\.\d+(\.\d+)?`)

// Check probes a single tool: PATH lookup, version query, and semver
// comparison against the tool's minimum.
func Check(t Tool) Status {
	s := Status{Tool: t}

	path, err := exec.LookPath(t.Name)
	if err != nil {
		s.Detail = t.Name + " not found on PATH"
		return s
	}
	s.Found = true
	s.Path = path

	out, err := exec.Command(path, "--version").CombinedOutput()
	if err != nil {
		s.Detail = fmt.Sprintf("%s --version failed: %v", t.Name, err)
		return s
	}

	version := versionToken.FindString(string(out))
	if version == "" {
		s.Detail = fmt.Sprintf("could not parse version from %q", strings.TrimSpace(string(out)))
		return s
	}
	s.Version = version

	if t.MinVersion == "" {
		s.Satisfied = true
		return s
	}

	ok, err := AtLeast(version, t.MinVersion)
	if err != nil {
		s.Detail = err.Error()
		return s
	}
	s.Satisfied = ok
	if !ok {
		s.Detail = fmt.Sprintf("%s %s is older than required %s", t.Name, version, t.MinVersion)
	}
	return s
}

// CheckAll probes every tool in the list.
func CheckAll(tools []Tool) []Status {
	statuses := make([]Status, len(tools))
	for i, t := range tools {
		statuses[i] = Check(t)
	}
	return statuses
}

// AtLeast reports whether version satisfies ">= minimum" under semver.
// Handles "v" prefix tolerance (strips leading "v" before parsing).
func AtLeast(version, minimum string) (bool, error) {
	v, err := parseSemver(version)
	if err != nil {
		return false, fmt.Errorf("parsing version %q: %w", version, err)
	}
	m, err := parseSemver(minimum)
	if err != nil {
		return false, fmt.Errorf("parsing minimum version %q: %w", minimum, err)
	}
	return v.Compare(m) >= 0, nil
}

// parseSemver strips a leading "v" and parses the version string.
func parseSemver(version string) (*semver.Version, error) {
	version = strings.TrimPrefix(version, "v")
	return semver.NewVersion(version)
}
