package bootstrap

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// Subprojects are the conventional sub-project directories of a generated
// project.
var Subprojects = []string{"backend", "frontend"}

const (
	envExampleName = ".env.example"
	envLiveName    = ".env"
)

// MaterializeEnv copies each sub-project's .env.example to .env when the
// example exists and the live file does not. An existing live file is never
// overwritten, protecting edits made between steps. Examples that fail to
// parse as env syntax are still copied but produce a warning. Returns the
// live files created and any warnings.
func MaterializeEnv(targetRoot string) (created []string, warnings []string) {
	for _, sub := range Subprojects {
		example := filepath.Join(targetRoot, sub, envExampleName)
		live := filepath.Join(targetRoot, sub, envLiveName)

		data, err := os.ReadFile(example)
		if err != nil {
			continue // no example, nothing to materialize
		}
		if _, err := os.Stat(live); err == nil {
			continue // live file exists, leave it alone
		}

		if _, err := godotenv.UnmarshalBytes(data); err != nil {
			warnings = append(warnings, fmt.Sprintf("%s/%s does not parse as env syntax: %v", sub, envExampleName, err))
		}

		info, err := os.Stat(example)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("stating %s/%s: %v", sub, envExampleName, err))
			continue
		}
		if err := os.WriteFile(live, data, info.Mode()); err != nil {
			warnings = append(warnings, fmt.Sprintf("creating %s/%s: %v", sub, envLiveName, err))
			continue
		}

		created = append(created, filepath.Join(sub, envLiveName))
	}

	return created, warnings
}
