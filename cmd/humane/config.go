package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

type workspaceFile struct {
	Path   string
	Root   string
	Config workspaceConfig
}

type workspaceConfig struct {
	Render renderConfig `toml:"render"`
	Check  checkConfig  `toml:"check"`
}

type renderConfig struct {
	Context  int    `toml:"context"`
	Renderer string `toml:"renderer"`
}

type checkConfig struct {
	Jobs int `toml:"jobs"`
}

// findHumaneToml ищет humane.toml вверх по дереву директорий, начиная
// со startDir (пустая строка означает текущую директорию).
func findHumaneToml(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, "humane.toml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

func loadWorkspaceFile(startDir string) (*workspaceFile, bool, error) {
	configPath, ok, err := findHumaneToml(startDir)
	if err != nil || !ok {
		return nil, ok, err
	}
	cfg, err := loadWorkspaceConfig(configPath)
	if err != nil {
		return nil, true, err
	}
	return &workspaceFile{
		Path:   configPath,
		Root:   filepath.Dir(configPath),
		Config: cfg,
	}, true, nil
}

func loadWorkspaceConfig(path string) (workspaceConfig, error) {
	var cfg workspaceConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return workspaceConfig{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if cfg.Render.Context < 0 {
		return workspaceConfig{}, fmt.Errorf("%s: [render].context must be >= 0", path)
	}
	if cfg.Render.Renderer != "" {
		if _, err := readRendererMode(cfg.Render.Renderer); err != nil {
			return workspaceConfig{}, fmt.Errorf("%s: [render].renderer: %w", path, err)
		}
	}
	if cfg.Check.Jobs < 0 {
		return workspaceConfig{}, fmt.Errorf("%s: [check].jobs must be >= 0", path)
	}
	return cfg, nil
}
