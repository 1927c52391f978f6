// Copyright © 2025 The pyvet authors

package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// expandArgs expands arguments, resolving patterns ending with "/..." to all
// .json files found recursively under the given directory, then drops paths
// matching any exclude glob. Non-pattern arguments pass through unchanged
// (but are still subject to excludes).
func expandArgs(args []string, excludes []string) ([]string, error) {
	var out []string
	for _, arg := range args {
		if dir, ok := strings.CutSuffix(arg, "/..."); ok {
			if dir == "" {
				dir = "."
			}
			files, err := findTreeFiles(dir)
			if err != nil {
				return nil, fmt.Errorf("expanding %s: %w", arg, err)
			}
			out = append(out, files...)
		} else {
			out = append(out, arg)
		}
	}
	return filterExcluded(out, excludes)
}

func findTreeFiles(root string) ([]string, error) {
	var files []string
	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		if filepath.Ext(path) == ".json" {
			files = append(files, path)
		}
		return nil
	})
	return files, err
}

// filterExcluded drops paths matching any exclude pattern. A pattern matches
// the whole path, any path segment, or the base name, so both
// --exclude=vendor and --exclude='**/generated/*.json' behave as expected.
func filterExcluded(paths []string, excludes []string) ([]string, error) {
	if len(excludes) == 0 {
		return paths, nil
	}
	for _, pattern := range excludes {
		if !doublestar.ValidatePattern(pattern) {
			return nil, fmt.Errorf("invalid exclude pattern: %s", pattern)
		}
	}
	var out []string
	for _, path := range paths {
		if excluded(path, excludes) {
			continue
		}
		out = append(out, path)
	}
	return out, nil
}

func excluded(path string, excludes []string) bool {
	norm := filepath.ToSlash(path)
	for _, pattern := range excludes {
		if ok, _ := doublestar.Match(pattern, norm); ok {
			return true
		}
		if ok, _ := doublestar.Match(pattern, filepath.Base(path)); ok {
			return true
		}
		for _, segment := range strings.Split(norm, "/") {
			if ok, _ := doublestar.Match(pattern, segment); ok {
				return true
			}
		}
	}
	return false
}
