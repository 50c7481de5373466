// Package gitrepo wraps the git CLI for the narrow set of operations the
// scaffolder and branch helpers need: repository init, stage, commit,
// cleanliness checks, and branch comparison/deletion queries. git is treated
// as an opaque collaborator; only exit status and whole-line output are
// interpreted.
package gitrepo
