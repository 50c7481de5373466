package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/webstarter-labs/webstarter/internal/branding"
	"github.com/webstarter-labs/webstarter/internal/config"
	"github.com/webstarter-labs/webstarter/internal/names"
	"github.com/webstarter-labs/webstarter/internal/scaffold"
)

var (
	newName        string
	newDescription string
	newTarget      string
	newTemplateDir string
	newSkipDeps    bool
	newForce       bool
)

func init() {
	newCmd.Flags().StringVarP(&newName, "name", "n", "", "Project name (lowercase, hyphens allowed)")
	newCmd.Flags().StringVarP(&newDescription, "description", "d", branding.TemplateDescription(), "Project description")
	newCmd.Flags().StringVarP(&newTarget, "target", "t", "", "Target directory (default: ./<name>)")
	newCmd.Flags().StringVar(&newTemplateDir, "template-dir", "", "Template root (default: config template.dir, else current directory)")
	newCmd.Flags().BoolVar(&newSkipDeps, "skip-deps", false, "Skip dependency installation")
	newCmd.Flags().BoolVar(&newForce, "force", false, "Proceed into a non-empty target directory without prompting")
	rootCmd.AddCommand(newCmd)
}

var newCmd = &cobra.Command{
	Use:   "new [name]",
	Short: "Generate a new project from the starter template",
	Long: `Generate a new full-stack project from the starter template.

The pipeline copies the template tree (minus build artifacts and local
state), rewrites template names into your project's name forms, initializes
a git repository with one initial commit, sets up .env files, and attempts
a best-effort dependency install for each sub-project.

Examples:
  webstarter new blog-platform
  webstarter new blog-platform -d "A modern blogging platform"
  webstarter new shop -t ../projects/shop --skip-deps`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		config.Load()
		interactive := isTerminal(os.Stdin)
		reader := bufio.NewReader(os.Stdin)

		// Resolve the raw name: positional, flag, or prompt.
		raw := newName
		if len(args) == 1 {
			raw = args[0]
		}
		if raw == "" {
			if !interactive {
				return fmt.Errorf("project name is required (pass a name argument or --name)")
			}
			raw = promptLine(reader, os.Stdout, "Enter project name: ")
		}
		if raw == "" {
			return fmt.Errorf("project name is required")
		}

		// Sanitize, and surface the change rather than silently substituting.
		name := names.Sanitize(raw)
		if name != raw {
			fmt.Printf("Project name sanitized: %s -> %s\n", raw, name)
		}
		if !names.Validate(name) {
			return fmt.Errorf("invalid project name %q: must be lowercase, start with a letter, and contain only letters, digits, hyphens, and underscores", name)
		}

		// Description: prompt when left at the sentinel default.
		description := newDescription
		if description == "" || description == branding.TemplateDescription() {
			if interactive {
				if d := promptLine(reader, os.Stdout, "Enter project description (optional): "); d != "" {
					description = d
				}
			}
			if description == "" {
				description = branding.TemplateDescription()
			}
		}

		target := newTarget
		if target == "" {
			target = filepath.Join(".", name)
		}

		templateDir := newTemplateDir
		if templateDir == "" {
			templateDir = config.Get(config.KeyTemplateDir)
		}
		if templateDir == "" {
			templateDir = "."
		}

		// Non-empty targets need an explicit decision: --force in scripts,
		// a prompt on a terminal, refusal otherwise.
		var confirm scaffold.ConfirmFunc
		switch {
		case newForce:
			confirm = func(string) bool { return true }
		case interactive:
			confirm = func(dir string) bool {
				fmt.Printf("Target directory %s is not empty.\n", dir)
				answer := promptLine(reader, os.Stdout, "Continue anyway? (y/N): ")
				return strings.EqualFold(answer, "y")
			}
		}

		runner, err := scaffold.New(scaffold.Options{
			Name:        name,
			Description: description,
			TemplateDir: templateDir,
			TargetDir:   target,
			SkipDeps:    newSkipDeps || config.GetBool(config.KeySkipDeps),
			Confirm:     confirm,
			Out:         os.Stdout,
		})
		if err != nil {
			return err
		}

		fmt.Printf("Creating new project: %s\n", names.Derive(name).Title)
		result, err := runner.Run()
		for _, w := range result.Warnings {
			fmt.Printf("[WARN] %s\n", w)
		}
		if err != nil {
			return err
		}

		fmt.Println("\nProject created successfully!")
		printNextSteps(result.TargetDir)
		return nil
	},
}

// printNextSteps tells the user how to start the generated project.
func printNextSteps(targetDir string) {
	fmt.Println("\nNext steps:")
	fmt.Printf("  1. cd %s\n", targetDir)
	fmt.Println("  2. Start the backend:  cd backend && source venv/bin/activate && python dev.py server")
	fmt.Println("  3. Start the frontend: cd frontend && node dev.js server")
	fmt.Println("  4. Open http://localhost:5173 (frontend) and http://localhost:8000/docs (API)")
	fmt.Printf("  5. See %s for a full quick-start guide\n", scaffold.SummaryFileName)
}

// promptLine writes a prompt and reads one trimmed line.
func promptLine(reader *bufio.Reader, w io.Writer, prompt string) string {
	fmt.Fprint(w, prompt)
	line, err := reader.ReadString('\n')
	if err != nil {
		return strings.TrimSpace(line)
	}
	return strings.TrimSpace(line)
}

// isTerminal checks if the given file is a terminal (for auto-detecting
// interactive mode).
func isTerminal(f *os.File) bool {
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return (info.Mode() & os.ModeCharDevice) != 0
}
