package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/webstarter-labs/webstarter/internal/config"
	"github.com/webstarter-labs/webstarter/internal/gitrepo"
)

var cleanupYes bool

func init() {
	cleanupCmd.Flags().BoolVarP(&cleanupYes, "yes", "y", false, "Delete without prompting")
	rootCmd.AddCommand(cleanupCmd)
}

var cleanupCmd = &cobra.Command{
	Use:   "cleanup",
	Short: "Safely delete the current branch after it has merged",
	Long: `Delete the current branch once its work has landed on the base branch.

The check understands squash merges: besides the plain ancestor test it
compares patch equivalence, so a branch whose commits were collapsed into
one commit on the base branch still counts as merged. The base branch is
updated from origin before checking. Refuses to run on the base branch or
with uncommitted changes.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		config.Load()
		dir := "."
		base := baseBranch()

		branch, err := gitrepo.CurrentBranch(dir)
		if err != nil {
			return err
		}
		if branch == base {
			return fmt.Errorf("cannot delete the %s branch", base)
		}

		clean, err := gitrepo.IsClean(dir)
		if err != nil {
			return err
		}
		if !clean {
			return fmt.Errorf("you have uncommitted changes; commit or stash them first")
		}

		fmt.Printf("Updating %s from origin...\n", base)
		if err := gitrepo.Fetch(dir); err != nil {
			fmt.Printf("[WARN] could not fetch from origin: %v\n", err)
		}
		if err := gitrepo.Checkout(dir, base); err != nil {
			return fmt.Errorf("switching to %s: %w", base, err)
		}
		if err := gitrepo.Pull(dir, base); err != nil {
			fmt.Printf("[WARN] could not pull %s: %v\n", base, err)
		}

		status, err := gitrepo.MergedInto(dir, branch, base)
		if err != nil {
			return err
		}
		fmt.Printf("\nBranch: %s\nStatus: %s\n", branch, status.Reason)

		if !status.Merged {
			// Put the user back where they started.
			if err := gitrepo.Checkout(dir, branch); err != nil {
				fmt.Printf("[WARN] could not switch back to %s: %v\n", branch, err)
			}
			return fmt.Errorf("branch %q has not been merged to %s; merge it first or delete manually with git branch -D", branch, base)
		}

		if !cleanupYes {
			reader := bufio.NewReader(os.Stdin)
			answer := promptLine(reader, os.Stdout, fmt.Sprintf("Delete branch %q? (y/N): ", branch))
			if !strings.EqualFold(answer, "y") {
				fmt.Println("Branch deletion cancelled.")
				return nil
			}
		}

		// git's own -d merged check does not understand squash merges, so
		// fall back to -D; the merge status above is the real safety check.
		if err := gitrepo.DeleteBranch(dir, branch, false); err != nil {
			if err := gitrepo.DeleteBranch(dir, branch, true); err != nil {
				return fmt.Errorf("deleting branch %q: %w", branch, err)
			}
		}
		fmt.Printf("Deleted branch %q.\n", branch)

		if err := gitrepo.DeleteRemoteBranch(dir, branch); err != nil {
			fmt.Printf("Note: could not delete origin/%s (it may not exist).\n", branch)
		} else {
			fmt.Printf("Deleted origin/%s.\n", branch)
		}

		fmt.Printf("You are now on %s.\n", base)
		return nil
	},
}
