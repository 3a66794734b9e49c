// Package config loads the quizdeck YAML configuration. A missing file
// is not an error: every field has a usable default so a fresh install
// runs without any configuration at all.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/asengupta/quizdeck/internal/session"
)

// Config describes the quizdeck YAML configuration file.
type Config struct {
	Exam struct {
		DurationMinutes     int `yaml:"duration_minutes"`
		AutosaveIntervalSec int `yaml:"autosave_interval_sec"`
	} `yaml:"exam"`
	Learning struct {
		AllowRetry        *bool  `yaml:"allow_retry"`
		ShowImmediate     *bool  `yaml:"show_immediate"`
		ExplanationMode   string `yaml:"explanation_mode"`
		ShowCorrectAnswer *bool  `yaml:"show_correct_answer"`
		ShowTopicSubtopic *bool  `yaml:"show_topic_subtopic"`
	} `yaml:"learning"`
	Questions struct {
		File string `yaml:"file"`
		Bank string `yaml:"bank"`
	} `yaml:"questions"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	var cfg Config
	cfg.normalize()
	return cfg
}

// Load reads the configuration file at path. A missing file yields the
// defaults; a present but unparseable or invalid file is an error.
func Load(path string) (Config, error) {
	var cfg Config
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		cfg.normalize()
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	cfg.normalize()
	if err := cfg.validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// DefaultPath returns the standard config file location, honoring
// XDG_CONFIG_HOME.
func DefaultPath() string {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return filepath.Join(".", "quizdeck", "config.yaml")
		}
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, "quizdeck", "config.yaml")
}

func (c *Config) normalize() {
	if c.Exam.DurationMinutes == 0 {
		c.Exam.DurationMinutes = 30
	}
	if c.Exam.AutosaveIntervalSec == 0 {
		c.Exam.AutosaveIntervalSec = 30
	}
	if c.Learning.ExplanationMode == "" {
		c.Learning.ExplanationMode = string(session.ExplainOnlyWrong)
	}
	t := true
	if c.Learning.AllowRetry == nil {
		c.Learning.AllowRetry = &t
	}
	if c.Learning.ShowImmediate == nil {
		c.Learning.ShowImmediate = &t
	}
	if c.Learning.ShowCorrectAnswer == nil {
		c.Learning.ShowCorrectAnswer = &t
	}
	if c.Learning.ShowTopicSubtopic == nil {
		c.Learning.ShowTopicSubtopic = &t
	}
}

func (c *Config) validate() error {
	if c.Exam.DurationMinutes < 0 {
		return fmt.Errorf("exam.duration_minutes must be positive, got %d", c.Exam.DurationMinutes)
	}
	if c.Exam.AutosaveIntervalSec < 0 {
		return fmt.Errorf("exam.autosave_interval_sec must be positive, got %d", c.Exam.AutosaveIntervalSec)
	}
	switch session.ExplanationMode(c.Learning.ExplanationMode) {
	case session.ExplainOnlyWrong, session.ExplainBoth, session.ExplainNone:
	default:
		return fmt.Errorf("learning.explanation_mode: unknown mode %q", c.Learning.ExplanationMode)
	}
	return nil
}

// SessionConfig converts the learning section into the engine's session
// policy.
func (c Config) SessionConfig() session.Config {
	return session.Config{
		ExplanationMode:   session.ExplanationMode(c.Learning.ExplanationMode),
		AllowRetry:        *c.Learning.AllowRetry,
		ShowImmediate:     *c.Learning.ShowImmediate,
		ShowCorrectAnswer: *c.Learning.ShowCorrectAnswer,
		ShowTopicSubtopic: *c.Learning.ShowTopicSubtopic,
	}
}

// ExamDurationSeconds returns the configured exam duration in seconds.
func (c Config) ExamDurationSeconds() int {
	return c.Exam.DurationMinutes * 60
}
