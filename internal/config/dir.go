// Package config provides the configuration surface for wrkit: the global
// configuration directory and the YAML settings file holding the section
// label table.
package config

import (
	"os"
	"path/filepath"
	"runtime"
)

// Dir returns the wrkit configuration directory.
//
// Resolution:
//   - $WRKIT_CONFIG_HOME if set (explicit override)
//   - $XDG_CONFIG_HOME/wrkit if set (respects XDG on any platform)
//   - %AppData%/wrkit on Windows
//   - ~/.config/wrkit on macOS and Linux
func Dir() string {
	// Explicit override
	if dir := os.Getenv("WRKIT_CONFIG_HOME"); dir != "" {
		return dir
	}

	// XDG override (works on any platform)
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "wrkit")
	}

	// Windows: use AppData
	if runtime.GOOS == "windows" {
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "wrkit")
		}
	}

	// macOS and Linux: ~/.config/wrkit
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "wrkit")
}

// DefaultPath returns the default settings file path, or "" when no
// configuration directory can be resolved.
func DefaultPath() string {
	dir := Dir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "config.yaml")
}
