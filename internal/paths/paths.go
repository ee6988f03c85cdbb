// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package paths resolves the platform-appropriate locations of the
// application's configuration files.
package paths

import (
	"os"
	"path/filepath"
)

// appDir is the per-user directory name under the OS config root.
const appDir = "namecorrect"

// GetConfigDir returns the configuration directory. The
// NAMECORRECT_CONFIG_DIR environment variable overrides the
// platform default on every OS.
func GetConfigDir() string {
	if dir := os.Getenv("NAMECORRECT_CONFIG_DIR"); dir != "" {
		return dir
	}
	base, err := os.UserConfigDir()
	if err != nil {
		home, herr := os.UserHomeDir()
		if herr != nil {
			return appDir
		}
		return filepath.Join(home, "."+appDir)
	}
	return filepath.Join(base, appDir)
}

// GetConfigFile returns the path to the main config file.
func GetConfigFile() string {
	return filepath.Join(GetConfigDir(), "config.yaml")
}

// GetCorpusDir returns the directory checked for name data overrides.
// An empty return means only the embedded data is available.
func GetCorpusDir() string {
	if dir := os.Getenv("NAMECORRECT_DATA_DIR"); dir != "" {
		return dir
	}
	dir := filepath.Join(GetConfigDir(), "data")
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return ""
	}
	return dir
}
