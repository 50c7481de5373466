//go:build integration

package integration_test

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/webstarter-labs/webstarter/internal/gitrepo"
)

func mustGit(t *testing.T, dir string, args ...string) {
	t.Helper()
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	if out, err := cmd.CombinedOutput(); err != nil {
		t.Fatalf("git %v: %v\n%s", args, err, out)
	}
}

func commitFile(t *testing.T, dir, rel, content, message string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, rel), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	mustGit(t, dir, "add", rel)
	mustGit(t, dir, "commit", "-m", message)
}

func contains(list []string, want string) bool {
	for _, s := range list {
		if s == want {
			return true
		}
	}
	return false
}

// TestBranchCleanupAfterSquashMerge walks the full post-review cleanup: a
// feature branch pushed to origin, squash-merged into main there, then
// detected as merged and deleted locally and remotely from the clone.
func TestBranchCleanupAfterSquashMerge(t *testing.T) {
	requireGit(t)

	origin := t.TempDir()
	mustGit(t, origin, "init")
	mustGit(t, origin, "symbolic-ref", "HEAD", "refs/heads/main")
	commitFile(t, origin, "README.md", "base\n", "first")

	clone := filepath.Join(t.TempDir(), "clone")
	mustGit(t, filepath.Dir(clone), "clone", origin, clone)

	// Feature work happens in the clone and is pushed up.
	mustGit(t, clone, "checkout", "-b", "feature/login")
	commitFile(t, clone, "login.md", "login\n", "add login page")
	mustGit(t, clone, "push", "origin", "feature/login")

	// The review lands as a squash merge on origin's main.
	mustGit(t, origin, "merge", "--squash", "feature/login")
	mustGit(t, origin, "commit", "-m", "add login page (#1)")

	if err := gitrepo.Fetch(clone); err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if err := gitrepo.Checkout(clone, "main"); err != nil {
		t.Fatalf("Checkout: %v", err)
	}
	if err := gitrepo.Pull(clone, "main"); err != nil {
		t.Fatalf("Pull: %v", err)
	}

	status, err := gitrepo.MergedInto(clone, "feature/login", "main")
	if err != nil {
		t.Fatalf("MergedInto: %v", err)
	}
	if !status.Merged {
		t.Fatalf("squash-merged branch reported unmerged: %s", status.Reason)
	}

	// Squash merges leave git's own -d check unsatisfied, so fall back to
	// force deletion the way the cleanup command does.
	if err := gitrepo.DeleteBranch(clone, "feature/login", false); err != nil {
		if err := gitrepo.DeleteBranch(clone, "feature/login", true); err != nil {
			t.Fatalf("DeleteBranch -D: %v", err)
		}
	}
	if err := gitrepo.DeleteRemoteBranch(clone, "feature/login"); err != nil {
		t.Fatalf("DeleteRemoteBranch: %v", err)
	}

	local, err := gitrepo.LocalBranches(clone)
	if err != nil {
		t.Fatal(err)
	}
	if contains(local, "feature/login") {
		t.Errorf("local branch survived deletion: %v", local)
	}

	if err := gitrepo.Fetch(clone); err != nil {
		t.Fatal(err)
	}
	remote, err := gitrepo.RemoteBranches(clone)
	if err != nil {
		t.Fatal(err)
	}
	if contains(remote, "feature/login") {
		t.Errorf("remote branch survived deletion: %v", remote)
	}
}

// TestBranchCleanupRefusesUnmergedWork verifies a branch with commits absent
// from main stays reported as unmerged.
func TestBranchCleanupRefusesUnmergedWork(t *testing.T) {
	requireGit(t)

	repo := t.TempDir()
	mustGit(t, repo, "init")
	mustGit(t, repo, "symbolic-ref", "HEAD", "refs/heads/main")
	commitFile(t, repo, "README.md", "base\n", "first")

	mustGit(t, repo, "checkout", "-b", "feature/wip")
	commitFile(t, repo, "wip.md", "unfinished\n", "work in progress")
	mustGit(t, repo, "checkout", "main")

	status, err := gitrepo.MergedInto(repo, "feature/wip", "main")
	if err != nil {
		t.Fatalf("MergedInto: %v", err)
	}
	if status.Merged {
		t.Fatalf("unmerged branch reported merged: %s", status.Reason)
	}
}
