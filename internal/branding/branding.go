// Package branding provides compile-time identity values for the CLI.
//
// Forkers edit branding.yaml in this package before building; Go's
// //go:embed bakes it into the binary. Hard defaults apply when the
// embedded file is missing or empty.
package branding

import (
	_ "embed"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

var (
	once     sync.Once
	defaults brand
)

type brand struct {
	CLIName             string `yaml:"cli_name"`
	DisplayName         string `yaml:"display_name"`
	Description         string `yaml:"description"`
	HomeDir             string `yaml:"home_dir"`
	EnvPrefix           string `yaml:"env_prefix"`
	GoModule            string `yaml:"go_module"`
	GitHubRepo          string `yaml:"github_repo"`
	TemplateName        string `yaml:"template_name"`
	TemplateDescription string `yaml:"template_description"`
}

func load() {
	once.Do(func() {
		// Set hard defaults in case the embedded file is missing/empty.
		defaults = brand{
			CLIName:             "webstarter",
			DisplayName:         "WebStarter",
			Description:         "Scaffold full-stack web projects from the starter template",
			HomeDir:             ".webstarter",
			EnvPrefix:           "WEBSTARTER",
			GoModule:            "github.com/webstarter-labs/webstarter",
			GitHubRepo:          "webstarter-labs/webstarter",
			TemplateName:        "starter-webapp",
			TemplateDescription: "Full-stack template with FastAPI + React",
		}
		// Overlay with embedded YAML values.
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the root command name (e.g., "webstarter").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the human-readable product name (e.g., "WebStarter").
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// HomeDir returns the dot-directory name under $HOME (e.g., ".webstarter").
func HomeDir() string { load(); return defaults.HomeDir }

// EnvPrefix returns the environment variable prefix (e.g., "WEBSTARTER").
func EnvPrefix() string { load(); return defaults.EnvPrefix }

// GoModule returns the Go module path. Used by rebrand tooling, not at runtime.
func GoModule() string { load(); return defaults.GoModule }

// GitHubRepo returns the "owner/repo" string.
func GitHubRepo() string { load(); return defaults.GitHubRepo }

// TemplateName returns the canonical template project name whose occurrences
// get rewritten in generated projects (e.g., "starter-webapp").
func TemplateName() string { load(); return defaults.TemplateName }

// TemplateDescription returns the template's stock description. It doubles as
// the sentinel default for the --description flag: when the flag is left at
// this value the CLI prompts for a real description.
func TemplateDescription() string { load(); return defaults.TemplateDescription }

// EnvVar returns a fully qualified env var name, e.g., EnvVar("HOME") → "WEBSTARTER_HOME".
func EnvVar(suffix string) string {
	load()
	return defaults.EnvPrefix + "_" + strings.ToUpper(suffix)
}
