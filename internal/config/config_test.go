package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/asengupta/quizdeck/internal/session"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadMissingFileGivesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
	require.Equal(t, 30, cfg.Exam.DurationMinutes)
	require.Equal(t, 30, cfg.Exam.AutosaveIntervalSec)
	require.Equal(t, session.DefaultConfig(), cfg.SessionConfig())
}

func TestLoadOverrides(t *testing.T) {
	path := writeConfig(t, `
exam:
  duration_minutes: 45
  autosave_interval_sec: 10
learning:
  allow_retry: false
  explanation_mode: both
questions:
  file: /data/questions.json
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 45, cfg.Exam.DurationMinutes)
	require.Equal(t, 2700, cfg.ExamDurationSeconds())
	require.Equal(t, 10, cfg.Exam.AutosaveIntervalSec)
	require.Equal(t, "/data/questions.json", cfg.Questions.File)

	sc := cfg.SessionConfig()
	require.False(t, sc.AllowRetry)
	require.Equal(t, session.ExplainBoth, sc.ExplanationMode)
	// Unset booleans keep their defaults.
	require.True(t, sc.ShowImmediate)
	require.True(t, sc.ShowCorrectAnswer)
}

func TestLoadRejectsBadValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"negative duration", "exam:\n  duration_minutes: -5\n"},
		{"negative autosave", "exam:\n  autosave_interval_sec: -1\n"},
		{"unknown explanation mode", "learning:\n  explanation_mode: sometimes\n"},
		{"not yaml", "exam: [unterminated\n"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tc.content))
			require.Error(t, err)
		})
	}
}

func TestDefaultPathHonorsXDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	require.Equal(t, filepath.Join("/tmp/xdg", "quizdeck", "config.yaml"), DefaultPath())
}
