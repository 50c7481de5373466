// Package config manages user-level settings stored at ~/.webstarter/config.yaml.
// It provides functions to load, read, and write configuration keys such as
// the template directory and the base branch used by the branch helpers.
package config
