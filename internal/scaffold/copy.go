package scaffold

import (
	"fmt"
	"os"
	"path/filepath"
)

// CopyTree reproduces the template tree under targetDir, skipping entries
// that match the exclusion rules. Excluded directories are pruned before
// descent, so their subtrees are never walked. File bytes, permissions, and
// modification times are preserved. Any I/O error aborts the copy; files
// already written are left in place.
func CopyTree(templateDir, targetDir string, rules []string) error {
	return copyDir(templateDir, targetDir, rules)
}

func copyDir(src, dst string, rules []string) error {
	srcInfo, err := os.Stat(src)
	if err != nil {
		return fmt.Errorf("reading template directory %s: %w", src, err)
	}

	if err := os.MkdirAll(dst, srcInfo.Mode()); err != nil {
		return fmt.Errorf("creating directory %s: %w", dst, err)
	}

	entries, err := os.ReadDir(src)
	if err != nil {
		return fmt.Errorf("listing %s: %w", src, err)
	}

	for _, entry := range entries {
		if Excluded(entry.Name(), rules) {
			continue
		}

		srcPath := filepath.Join(src, entry.Name())
		dstPath := filepath.Join(dst, entry.Name())

		if entry.IsDir() {
			if err := copyDir(srcPath, dstPath, rules); err != nil {
				return err
			}
		} else if entry.Type().IsRegular() {
			if err := copyFile(srcPath, dstPath); err != nil {
				return err
			}
		}
		// Skip symlinks and other special files during copy.
	}

	return nil
}

// copyFile copies a single file, preserving permissions and modification time.
func copyFile(src, dst string) error {
	data, err := os.ReadFile(src)
	if err != nil {
		return fmt.Errorf("reading %s: %w", src, err)
	}

	srcInfo, err := os.Stat(src)
	if err != nil {
		return fmt.Errorf("stating %s: %w", src, err)
	}

	if err := os.WriteFile(dst, data, srcInfo.Mode()); err != nil {
		return fmt.Errorf("writing %s: %w", dst, err)
	}

	if err := os.Chtimes(dst, srcInfo.ModTime(), srcInfo.ModTime()); err != nil {
		return fmt.Errorf("preserving timestamps on %s: %w", dst, err)
	}

	return nil
}
