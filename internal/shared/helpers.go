// Package shared provides small helpers used across packages in the
// urdf2kin codebase.
package shared

import (
	"path/filepath"
	"strings"
)

// SplitPathList splits an OS path list such as ROS_PACKAGE_PATH, dropping
// empty and whitespace-only entries.
func SplitPathList(value string) []string {
	var paths []string
	for _, entry := range filepath.SplitList(value) {
		entry = strings.TrimSpace(entry)
		if entry != "" {
			paths = append(paths, entry)
		}
	}
	return paths
}

// UniqueStrings keeps the first occurrence of each value, preserving order.
func UniqueStrings(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	var unique []string
	for _, value := range values {
		if _, ok := seen[value]; ok {
			continue
		}
		seen[value] = struct{}{}
		unique = append(unique, value)
	}
	return unique
}

// FormatFromPath infers an export format name from a file extension.
func FormatFromPath(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return "json"
	case ".msgpack", ".mpk":
		return "msgpack"
	default:
		return "yaml"
	}
}
