package cli

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/webstarter-labs/webstarter/internal/config"
	"github.com/webstarter-labs/webstarter/internal/gitrepo"
)

func init() {
	rootCmd.AddCommand(branchesCmd)
}

var branchesCmd = &cobra.Command{
	Use:   "branches",
	Short: "Compare local and remote branches",
	Long: `Compare local and remote git branches in the current repository.

Shows branches that exist only locally or only on origin, ahead/behind
counts for common branches, and whether local-only branches have been
merged into the base branch.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		config.Load()
		dir := "."
		base := baseBranch()

		fmt.Println("Fetching latest remote information...")
		if err := gitrepo.Fetch(dir); err != nil {
			fmt.Printf("[WARN] could not fetch from origin: %v\n", err)
		}

		local, err := gitrepo.LocalBranches(dir)
		if err != nil {
			return fmt.Errorf("listing local branches: %w", err)
		}
		remote, err := gitrepo.RemoteBranches(dir)
		if err != nil {
			return fmt.Errorf("listing remote branches: %w", err)
		}

		fmt.Println("\nLocal branches:")
		printList(local)
		fmt.Println("\nRemote branches:")
		printList(remote)

		localOnly := difference(local, remote)
		remoteOnly := difference(remote, local)
		common := intersection(local, remote)

		fmt.Println("\nBranches that exist locally but not on origin:")
		if len(localOnly) == 0 {
			fmt.Println("  (none — all local branches exist remotely)")
		}
		printList(localOnly)

		fmt.Println("\nBranches that exist on origin but not locally:")
		if len(remoteOnly) == 0 {
			fmt.Println("  (none — all remote branches exist locally)")
		}
		printList(remoteOnly)

		if len(common) > 0 {
			fmt.Println("\nCommit differences for common branches:")
			inSync := true
			for _, branch := range common {
				ahead, behind, err := gitrepo.AheadBehind(dir, branch)
				if err != nil {
					fmt.Printf("  %s: could not compare (%v)\n", branch, err)
					continue
				}
				if ahead == 0 && behind == 0 {
					continue
				}
				inSync = false
				fmt.Printf("  %s:\n", branch)
				if ahead > 0 {
					fmt.Printf("    local is %d commit(s) ahead of origin\n", ahead)
				}
				if behind > 0 {
					fmt.Printf("    local is %d commit(s) behind origin\n", behind)
				}
			}
			if inSync {
				fmt.Println("  (all common branches are in sync)")
			}
		}

		if len(localOnly) > 0 {
			fmt.Printf("\nMerge status against %s for local-only branches:\n", base)
			for _, branch := range localOnly {
				if branch == base {
					continue
				}
				status, err := gitrepo.MergedInto(dir, branch, base)
				if err != nil {
					fmt.Printf("  %s: could not check merge status (%v)\n", branch, err)
					continue
				}
				if status.Merged {
					fmt.Printf("  %s: merged (safe to delete)\n", branch)
				} else {
					fmt.Printf("  %s: NOT merged (%s)\n", branch, status.Reason)
				}
			}
		}

		return nil
	},
}

// baseBranch returns the configured base branch, defaulting to main.
func baseBranch() string {
	if b := config.Get(config.KeyBaseBranch); b != "" {
		return b
	}
	return "main"
}

func printList(items []string) {
	sorted := append([]string(nil), items...)
	sort.Strings(sorted)
	for _, item := range sorted {
		fmt.Printf("  %s\n", item)
	}
}

// difference returns elements of a not present in b, sorted.
func difference(a, b []string) []string {
	inB := make(map[string]bool, len(b))
	for _, s := range b {
		inB[s] = true
	}
	var out []string
	for _, s := range a {
		if !inB[s] {
			out = append(out, s)
		}
	}
	sort.Strings(out)
	return out
}

// intersection returns elements present in both a and b, sorted.
func intersection(a, b []string) []string {
	inB := make(map[string]bool, len(b))
	for _, s := range b {
		inB[s] = true
	}
	var out []string
	for _, s := range a {
		if inB[s] {
			out = append(out, s)
		}
	}
	sort.Strings(out)
	return out
}
