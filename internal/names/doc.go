// Package names validates and normalizes human-supplied project names and
// derives the secondary casing forms (identifier, title, compact) used when
// rewriting template content.
package names
