package messages

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMessage(t *testing.T) {
	r, err := New()
	require.NoError(t, err)

	tests := []struct {
		name     string
		code     string
		args     []string
		expected string
	}{
		{"Plain", "attendance.update.notice", nil, "Attendance has been updated."},
		{"Label argument", "valid.maxlength", []string{"label.note", "100"}, "Note must be 100 characters or fewer."},
		{"Literal argument", "input.invalid", []string{"Break"}, "Break is invalid."},
		{"Unknown code", "no.such.code", []string{"x"}, "no.such.code"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, r.Message(tt.code, tt.args...))
		})
	}
}

func TestLoadOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "messages.yaml")
	require.NoError(t, os.WriteFile(path, []byte("label.note: \"Remarks\"\n"), 0o600))

	r, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Remarks must be 100 characters or fewer.", r.Message("valid.maxlength", "label.note", "100"))
	assert.Equal(t, "Attendance has been updated.", r.Message("attendance.update.notice"))
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
