// Package toolchain detects the external programs the scaffolder depends on
// (git, python, node, npm) and checks their versions against minimums.
package toolchain
