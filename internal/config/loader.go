package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the config file looked up in the search directories.
const FileName = "course.yaml"

// LoadCourse loads course configuration.
// Search order: customPath -> ~/.dashcourse/configs/course.yaml -> ./configs/course.yaml -> embedded default
// Files only need to set the keys they change; everything else keeps its default.
func LoadCourse(customPath string) (CourseConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return CourseConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return CourseConfig{}, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory, then local configs directory
	for _, path := range []string{userConfigPath(FileName), filepath.Join("configs", FileName)} {
		if path == "" {
			continue
		}
		if data, err := os.ReadFile(path); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultCourseYAML)
	if err != nil {
		return DefaultCourseConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Locate returns the file LoadCourse would read first, or "" when only the
// embedded default is available.
func Locate(customPath string) string {
	if customPath != "" {
		return customPath
	}
	for _, path := range []string{userConfigPath(FileName), filepath.Join("configs", FileName)} {
		if path == "" {
			continue
		}
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// Parse decodes YAML over the defaults and validates the result.
func Parse(data []byte) (CourseConfig, error) {
	cfg := DefaultCourseConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return CourseConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return CourseConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".dashcourse", "configs", filename)
}
