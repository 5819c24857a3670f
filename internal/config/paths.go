// ABOUTME: Standard filesystem paths for pkgjson configuration
// ABOUTME: Resolves ~/.pkgjson/config.yaml globally and .pkgjson.yaml per project

package config

import (
	"os"
	"path/filepath"
)

const (
	globalDirName   = ".pkgjson"
	globalFileName  = "config.yaml"
	projectFileName = ".pkgjson.yaml"
)

// GlobalDir returns the user-global config directory (~/.pkgjson/).
func GlobalDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", globalDirName)
	}
	return filepath.Join(home, globalDirName)
}

// GlobalConfigFile returns the path to the global config file.
func GlobalConfigFile() string {
	return filepath.Join(GlobalDir(), globalFileName)
}

// ProjectConfigFile returns the path to the project-local config file, which
// sits next to package.json.
func ProjectConfigFile(projectRoot string) string {
	return filepath.Join(projectRoot, projectFileName)
}
