package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFold(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected string
	}{
		{"LOG_LEVEL", "loglevel"},
		{"log-level", "loglevel"},
		{"LogLevel", "loglevel"},
		{"log.level", "loglevel"},
		{"log level", "loglevel"},
		{"Settings.Load", "settingsload"},
		{"TestFind_Suggestions", "testfindsuggestions"},
		{"", ""},
		{"___", ""},
		{"ÄPFEL", "äpfel"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, Fold(tt.input), tt.input)
	}
}
