// Package bootstrap prepares a freshly scaffolded project for development:
// it materializes live .env files from their committed examples and makes a
// best-effort attempt to install backend (python) and frontend (node)
// dependencies. Nothing in this package fails the scaffold pipeline; all
// problems surface as warnings.
package bootstrap
