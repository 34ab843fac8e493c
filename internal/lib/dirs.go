// Copyright 2026 Bjørn Erik Pedersen
// SPDX-License-Identifier: Apache-2.0

package lib

import (
	"os"
	"path/filepath"
)

// ListDirs returns the immediate subdirectories of root, joined with root.
// If pattern is set, only names matching it are returned.
func ListDirs(root, pattern string) ([]string, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, &ConfigError{Msg: "cannot read GIT_DIRS " + root, Err: err}
	}
	if !info.IsDir() {
		return nil, &ConfigError{Msg: "GIT_DIRS is not a directory: " + root}
	}

	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, &ConfigError{Msg: "cannot read GIT_DIRS " + root, Err: err}
	}

	var dirs []string
	for _, entry := range entries {
		if pattern != "" {
			matched, err := filepath.Match(pattern, entry.Name())
			if err != nil {
				return nil, &ConfigError{Msg: "invalid paths pattern " + pattern, Err: err}
			}
			if !matched {
				continue
			}
		}
		path := filepath.Join(root, entry.Name())
		// Stat, not entry.IsDir, so symlinked directories count.
		fi, err := os.Stat(path)
		if err != nil || !fi.IsDir() {
			continue
		}
		dirs = append(dirs, path)
	}
	return dirs, nil
}
