// Package webmanifest validates generated package.json files against an
// embedded JSON Schema. The scaffold pipeline runs it after content rewrite
// to catch substitutions that produced an invalid npm package name; issues
// are reported as warnings, never as pipeline failures.
package webmanifest
