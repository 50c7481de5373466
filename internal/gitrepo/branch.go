package gitrepo

import (
	"errors"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
)

// CurrentBranch returns the checked-out branch name, or an error in a
// detached HEAD state.
func CurrentBranch(dir string) (string, error) {
	out, err := runGit(dir, "rev-parse", "--abbrev-ref", "HEAD")
	if err != nil {
		return "", err
	}
	if out == "HEAD" {
		return "", fmt.Errorf("detached HEAD state; check out a branch first")
	}
	return out, nil
}

// Fetch updates remote-tracking refs from origin, pruning deleted branches.
func Fetch(dir string) error {
	_, err := runGit(dir, "fetch", "--prune", "origin")
	return err
}

// Checkout switches the working tree to the named branch.
func Checkout(dir, branch string) error {
	_, err := runGit(dir, "checkout", branch)
	return err
}

// Pull fast-forwards the named branch from origin.
func Pull(dir, branch string) error {
	_, err := runGit(dir, "pull", "origin", branch)
	return err
}

// LocalBranches lists local branch names.
func LocalBranches(dir string) ([]string, error) {
	out, err := runGit(dir, "for-each-ref", "--format=%(refname:short)", "refs/heads")
	if err != nil {
		return nil, err
	}
	return splitLines(out), nil
}

// RemoteBranches lists branch names on origin, with the remote prefix
// stripped and the symbolic HEAD entry dropped.
func RemoteBranches(dir string) ([]string, error) {
	out, err := runGit(dir, "for-each-ref", "--format=%(refname:short)", "refs/remotes/origin")
	if err != nil {
		return nil, err
	}

	var branches []string
	for _, ref := range splitLines(out) {
		name := strings.TrimPrefix(ref, "origin/")
		if name == "HEAD" || name == "" {
			continue
		}
		branches = append(branches, name)
	}
	return branches, nil
}

// AheadBehind counts commits on branch not on origin/branch and vice versa.
func AheadBehind(dir, branch string) (ahead, behind int, err error) {
	spec := fmt.Sprintf("%s...origin/%s", branch, branch)
	out, err := runGit(dir, "rev-list", "--left-right", "--count", spec)
	if err != nil {
		return 0, 0, err
	}

	fields := strings.Fields(out)
	if len(fields) != 2 {
		return 0, 0, fmt.Errorf("unexpected rev-list output %q", out)
	}
	ahead, err = strconv.Atoi(fields[0])
	if err != nil {
		return 0, 0, fmt.Errorf("parsing ahead count %q: %w", fields[0], err)
	}
	behind, err = strconv.Atoi(fields[1])
	if err != nil {
		return 0, 0, fmt.Errorf("parsing behind count %q: %w", fields[1], err)
	}
	return ahead, behind, nil
}

// MergeStatus describes whether a branch's work has landed on a base branch.
type MergeStatus struct {
	Merged bool
	Reason string
}

// MergedInto reports whether branch has been merged into base. The ancestor
// test catches regular merges; for squash merges, which collapse the
// branch's commits into one new commit on base, it falls back to git
// cherry's patch-equivalence check and treats the branch as merged when no
// unequivalent commits remain.
func MergedInto(dir, branch, base string) (MergeStatus, error) {
	ancestor, err := isAncestor(dir, branch, base)
	if err != nil {
		return MergeStatus{}, err
	}
	if ancestor {
		return MergeStatus{Merged: true, Reason: "all commits from this branch are present in " + base}, nil
	}

	unmerged, err := unmergedCommits(dir, branch, base)
	if err != nil {
		return MergeStatus{}, err
	}
	if unmerged == 0 {
		return MergeStatus{Merged: true, Reason: "branch has no unique commits (safe to delete)"}, nil
	}
	return MergeStatus{
		Merged: false,
		Reason: fmt.Sprintf("branch has %d unmerged commit(s)", unmerged),
	}, nil
}

// DeleteBranch removes a local branch. force uses -D, bypassing git's own
// merged check (needed after squash merges, where git considers the branch
// unmerged even though its content landed).
func DeleteBranch(dir, branch string, force bool) error {
	flag := "-d"
	if force {
		flag = "-D"
	}
	_, err := runGit(dir, "branch", flag, branch)
	return err
}

// DeleteRemoteBranch removes the branch on origin. Callers treat failure as
// advisory since the remote branch may not exist.
func DeleteRemoteBranch(dir, branch string) error {
	_, err := runGit(dir, "push", "origin", "--delete", branch)
	return err
}

// isAncestor reports whether branch's tip is reachable from base. git
// signals "not an ancestor" with exit code 1, which is not an error here.
func isAncestor(dir, branch, base string) (bool, error) {
	cmd := exec.Command("git", "merge-base", "--is-ancestor", branch, base)
	cmd.Dir = dir
	err := cmd.Run()
	if err == nil {
		return true, nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) && exitErr.ExitCode() == 1 {
		return false, nil
	}
	return false, fmt.Errorf("git merge-base --is-ancestor %s %s: %w", branch, base, err)
}

// unmergedCommits counts commits on branch with no patch-equivalent commit
// on base, per git cherry.
func unmergedCommits(dir, branch, base string) (int, error) {
	out, err := runGit(dir, "cherry", base, branch)
	if err != nil {
		return 0, err
	}

	count := 0
	for _, line := range splitLines(out) {
		if strings.HasPrefix(line, "+") {
			count++
		}
	}
	return count, nil
}

func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	var lines []string
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
