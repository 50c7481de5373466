package scaffold

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/webstarter-labs/webstarter/internal/bootstrap"
	"github.com/webstarter-labs/webstarter/internal/branding"
	"github.com/webstarter-labs/webstarter/internal/gitrepo"
	"github.com/webstarter-labs/webstarter/internal/names"
	"github.com/webstarter-labs/webstarter/internal/webmanifest"
)

// ConfirmFunc decides whether to proceed into a non-empty target directory.
// The orchestrator never proceeds implicitly: a nil ConfirmFunc refuses.
type ConfirmFunc func(target string) bool

// Options configure one scaffold run.
type Options struct {
	Name        string // project name; must already pass names.Validate
	Description string
	TemplateDir string
	TargetDir   string
	SkipDeps    bool
	Confirm     ConfirmFunc
	Out         io.Writer // step status output; nil discards
}

// StepResult records the outcome of one executed pipeline step.
type StepResult struct {
	Name string
	Err  error
}

// Result is the outcome of a full pipeline run. Steps lists every step that
// ran, in order; the pipeline halts at the first failure, so at most the
// last entry carries an error.
type Result struct {
	TargetDir string
	Steps     []StepResult
	Warnings  []string
}

// Runner executes the scaffold pipeline for one project. All fields are
// fixed at construction; a Runner performs exactly one run.
type Runner struct {
	opts  Options
	forms names.Forms
	out   io.Writer
}

// New validates the options and resolves both directory paths. It rejects
// invalid names and a target inside the template tree before any filesystem
// mutation happens.
func New(opts Options) (*Runner, error) {
	if !names.Validate(opts.Name) {
		return nil, fmt.Errorf("invalid project name %q: must be lowercase, start with a letter, and contain only letters, digits, hyphens, and underscores", opts.Name)
	}

	templateDir, err := filepath.Abs(opts.TemplateDir)
	if err != nil {
		return nil, fmt.Errorf("resolving template directory: %w", err)
	}
	targetDir, err := filepath.Abs(opts.TargetDir)
	if err != nil {
		return nil, fmt.Errorf("resolving target directory: %w", err)
	}
	opts.TemplateDir = templateDir
	opts.TargetDir = targetDir

	// A target inside the template tree would make the copy recurse into
	// its own output.
	rel, err := filepath.Rel(templateDir, targetDir)
	if err == nil && rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return nil, fmt.Errorf("target directory %s is inside the template directory %s", targetDir, templateDir)
	}

	if _, err := os.Stat(templateDir); err != nil {
		return nil, fmt.Errorf("template directory not usable: %w", err)
	}

	out := opts.Out
	if out == nil {
		out = io.Discard
	}

	return &Runner{
		opts:  opts,
		forms: names.Derive(opts.Name),
		out:   out,
	}, nil
}

// Run executes the pipeline: precheck, copy, rewrite, repository init,
// bootstrap, then the cosmetic manifest-check and summary steps. The
// pipeline halts at the first failed step; files already written are left
// in place, so a failed run should be retried into a clean directory.
func (r *Runner) Run() (*Result, error) {
	result := &Result{TargetDir: r.opts.TargetDir}

	if err := r.precheck(); err != nil {
		result.Steps = append(result.Steps, StepResult{Name: "checking target directory", Err: err})
		return result, err
	}

	steps := []struct {
		name string
		run  func(*Result) error
	}{
		{"copying template structure", r.copyStep},
		{"updating file contents", r.rewriteStep},
		{"initializing git repository", r.gitStep},
		{"setting up development environment", r.bootstrapStep},
	}

	for _, step := range steps {
		fmt.Fprintf(r.out, "%s... ", step.name)
		err := step.run(result)
		result.Steps = append(result.Steps, StepResult{Name: step.name, Err: err})
		if err != nil {
			fmt.Fprintln(r.out, "failed")
			return result, fmt.Errorf("step %q: %w", step.name, err)
		}
		fmt.Fprintln(r.out, "ok")
	}

	// Cosmetic steps: failures degrade to warnings.
	r.checkManifests(result)
	if err := WriteSummary(r.opts.TargetDir, r.opts.Name, r.forms.Title, r.opts.Description, branding.TemplateName()); err != nil {
		result.Warnings = append(result.Warnings, fmt.Sprintf("could not write %s: %v", SummaryFileName, err))
	}

	return result, nil
}

// precheck gates on target-directory emptiness. Proceeding into a non-empty
// target requires explicit confirmation via the injected policy — silently
// overwriting user data is never a default.
func (r *Runner) precheck() error {
	target := r.opts.TargetDir

	entries, err := os.ReadDir(target)
	if os.IsNotExist(err) {
		return os.MkdirAll(target, 0o755)
	}
	if err != nil {
		return fmt.Errorf("reading target directory: %w", err)
	}

	if len(entries) > 0 {
		if r.opts.Confirm == nil || !r.opts.Confirm(target) {
			return fmt.Errorf("target directory %s is not empty", target)
		}
	}
	return nil
}

func (r *Runner) copyStep(*Result) error {
	return CopyTree(r.opts.TemplateDir, r.opts.TargetDir, DefaultExclusions)
}

func (r *Runner) rewriteStep(*Result) error {
	table := ReplacementTable(r.opts.Name, r.forms, r.opts.Description)
	_, err := RewriteFiles(r.opts.TargetDir, RewriteTargets, table)
	return err
}

func (r *Runner) gitStep(*Result) error {
	return gitrepo.InitAndCommit(r.opts.TargetDir, r.forms.Title, branding.TemplateName())
}

func (r *Runner) bootstrapStep(result *Result) error {
	br := bootstrap.Run(r.opts.TargetDir, r.opts.SkipDeps)
	result.Warnings = append(result.Warnings, br.Warnings...)
	return nil
}

// checkManifests validates the rewritten package.json files. Issues are
// warnings only: the scaffold is complete either way, but a broken manifest
// usually means the chosen name produced an invalid npm package name.
func (r *Runner) checkManifests(result *Result) {
	for _, rel := range []string{"package.json", "frontend/package.json"} {
		path := filepath.Join(r.opts.TargetDir, rel)
		if _, err := os.Stat(path); err != nil {
			continue
		}

		vr, err := webmanifest.ValidateFile(path)
		if err != nil {
			result.Warnings = append(result.Warnings, fmt.Sprintf("could not validate %s: %v", rel, err))
			continue
		}
		for _, issue := range vr.Issues {
			msg := issue.Message
			if issue.Path != "" {
				msg = issue.Path + ": " + msg
			}
			result.Warnings = append(result.Warnings, fmt.Sprintf("%s: %s", rel, msg))
		}
	}
}
