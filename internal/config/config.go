// Package config loads and merges pywrap settings.
//
// Приоритет: pywrap.toml проекта → устаревший .pywrap.toml → глобальный
// конфиг → значения по умолчанию. Ядро переноса конфигурацию не читает:
// оно получает уже разрешённые значения.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// DefaultMaxLineLength is used when no layer defines a width.
const DefaultMaxLineLength = 79

// ProjectFileName is the per-project settings file.
const ProjectFileName = "pywrap.toml"

// LegacyFileName is the pre-1.0 project settings file, honored below
// ProjectFileName.
const LegacyFileName = ".pywrap.toml"

// Settings are the merged, resolved values one rewrap invocation consumes.
type Settings struct {
	MaxLineLength int
	ApplyOnSave   bool
	Extensions    []string
}

// Recognized reports whether path has one of the configured source
// extensions.
func (s Settings) Recognized(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range s.Extensions {
		if ext == strings.ToLower(e) {
			return true
		}
	}
	return false
}

func defaults() Settings {
	return Settings{
		MaxLineLength: DefaultMaxLineLength,
		ApplyOnSave:   false,
		Extensions:    []string{".py"},
	}
}

type fileConfig struct {
	Wrap  wrapConfig  `toml:"wrap"`
	Files filesConfig `toml:"files"`
}

type wrapConfig struct {
	MaxLineLength int  `toml:"max_line_length"`
	ApplyOnSave   bool `toml:"apply_on_save"`
}

type filesConfig struct {
	Extensions []string `toml:"extensions"`
}

// overlay applies the values path defines on top of s.
func overlay(s *Settings, path string) error {
	var cfg fileConfig
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if meta.IsDefined("wrap", "max_line_length") {
		if cfg.Wrap.MaxLineLength <= 0 {
			return fmt.Errorf("%s: [wrap].max_line_length must be positive", path)
		}
		s.MaxLineLength = cfg.Wrap.MaxLineLength
	}
	if meta.IsDefined("wrap", "apply_on_save") {
		s.ApplyOnSave = cfg.Wrap.ApplyOnSave
	}
	if meta.IsDefined("files", "extensions") {
		s.Extensions = cfg.Files.Extensions
	}
	return nil
}

// findUp walks from startDir to the filesystem root looking for name.
func findUp(startDir, name string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, name)
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

// globalPath returns the machine-wide config location.
func globalPath() (string, error) {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, "pywrap", ProjectFileName), nil
}

// Load resolves settings for files under startDir, merging every layer.
func Load(startDir string) (Settings, error) {
	s := defaults()

	// глобальный слой — самый нижний
	if gp, err := globalPath(); err == nil {
		if _, statErr := os.Stat(gp); statErr == nil {
			if err := overlay(&s, gp); err != nil {
				return s, err
			}
		}
	}

	if legacy, ok, err := findUp(startDir, LegacyFileName); err != nil {
		return s, err
	} else if ok {
		if err := overlay(&s, legacy); err != nil {
			return s, err
		}
	}

	if project, ok, err := findUp(startDir, ProjectFileName); err != nil {
		return s, err
	} else if ok {
		if err := overlay(&s, project); err != nil {
			return s, err
		}
	}

	return s, nil
}
