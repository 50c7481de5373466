// Package scaffold generates new full-stack projects from the starter
// template. It copies the template tree (minus exclusions), rewrites
// template names into project-specific values, and drives the end-to-end
// pipeline of copy, rewrite, repository init, environment bootstrap, and
// summary generation.
package scaffold
