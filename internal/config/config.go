// ABOUTME: Settings loading with global + project YAML config merge
// ABOUTME: Decides the fallback manager: flag, env var, project, global, then npm

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/mauromedda/pkgjson/pkg/managers"
)

// Settings holds the merged configuration.
type Settings struct {
	FallbackManager string              `yaml:"fallback_manager,omitempty"`
	LogLevel        string              `yaml:"log_level,omitempty"`
	PTY             bool                `yaml:"pty,omitempty"`
	Commands        map[string][]string `yaml:"commands,omitempty"`
}

// Load reads and merges global and project-local settings.
// Project settings override global settings.
func Load(projectRoot string) (*Settings, error) {
	global, err := loadFile(GlobalConfigFile())
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("loading global config: %w", err)
	}

	project, err := loadFile(ProjectConfigFile(projectRoot))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("loading project config: %w", err)
	}

	merged := merge(global, project)
	ResolveEnvVars(merged)
	if err := merged.Validate(); err != nil {
		return nil, err
	}
	return merged, nil
}

// loadFile reads Settings from a YAML file. Returns zero Settings if the file
// does not exist.
func loadFile(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return &Settings{}, err
	}
	var s Settings
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &s, nil
}

// merge overlays project settings onto global settings.
// Non-zero project values override global values.
func merge(global, project *Settings) *Settings {
	if global == nil {
		global = &Settings{}
	}
	if project == nil {
		return global
	}

	result := *global

	if project.FallbackManager != "" {
		result.FallbackManager = project.FallbackManager
	}
	if project.LogLevel != "" {
		result.LogLevel = project.LogLevel
	}
	if project.PTY {
		result.PTY = true
	}

	if len(project.Commands) > 0 {
		cmds := make(map[string][]string, len(global.Commands)+len(project.Commands))
		for k, v := range global.Commands {
			cmds[k] = v
		}
		for k, v := range project.Commands {
			cmds[k] = v
		}
		result.Commands = cmds
	}

	return &result
}

// Validate rejects unknown manager names in fallback_manager and commands.
func (s *Settings) Validate() error {
	if s.FallbackManager != "" {
		if _, err := managers.ParseName(s.FallbackManager); err != nil {
			return fmt.Errorf("fallback_manager: %w", err)
		}
	}
	for name, prefix := range s.Commands {
		if _, err := managers.ParseName(name); err != nil {
			return fmt.Errorf("commands: %w", err)
		}
		if len(prefix) == 0 {
			return fmt.Errorf("commands.%s: empty command", name)
		}
	}
	return nil
}

// CommandFor returns the configured launch prefix for a manager, if any.
func (s *Settings) CommandFor(name managers.Name) []string {
	if s == nil {
		return nil
	}
	return s.Commands[string(name)]
}

// Fallback sources, reported by ResolveFallback.
const (
	SourceFlag    = "flag"
	SourceEnv     = "env"
	SourceConfig  = "config"
	SourceDefault = "default"
)

// ResolveFallback picks the fallback manager. An explicit flag value wins,
// then PACKAGE_JSON_FALLBACK_MANAGER, then the merged config, then npm.
func ResolveFallback(flag string, s *Settings) (managers.Name, string, error) {
	if flag != "" {
		n, err := managers.ParseName(flag)
		return n, SourceFlag, err
	}
	if os.Getenv(managers.FallbackEnv) != "" {
		n, err := managers.DefaultFallback()
		return n, SourceEnv, err
	}
	if s != nil && s.FallbackManager != "" {
		n, err := managers.ParseName(s.FallbackManager)
		return n, SourceConfig, err
	}
	return managers.NPM, SourceDefault, nil
}
