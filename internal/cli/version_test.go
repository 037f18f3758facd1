package cli

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetVersionInfo(t *testing.T) {
	defer SetVersionInfo(version, commit, date)

	SetVersionInfo("1.2.3", "abc1234", "2026-08-30T12:00:00Z")
	assert.Equal(t, "1.2.3", version)
	assert.Equal(t, "abc1234", commit)
	assert.Equal(t, "2026-08-30T12:00:00Z", date)
}

func TestFormatVersion(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"dev stays bare", "dev", "dev"},
		{"empty stays empty", "", ""},
		{"bare version gets prefix", "1.0.0", "v1.0.0"},
		{"prefixed version unchanged", "v2.1.0", "v2.1.0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, formatVersion(tt.input))
		})
	}
}

func TestVersionInfoJSON(t *testing.T) {
	info := versionInfo{
		Version: "v1.2.3",
		Commit:  "abc1234",
		Built:   "2026-08-30T12:00:00Z",
		Go:      "go1.24.11",
		OSArch:  "linux/amd64",
	}

	data, err := json.Marshal(info)
	require.NoError(t, err)

	var decoded map[string]string
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "v1.2.3", decoded["version"])
	assert.Equal(t, "linux/amd64", decoded["os_arch"])

	// snake_case keys throughout, matching the rest of the JSON surface
	for key := range decoded {
		assert.Equal(t, strings.ToLower(key), key)
	}
}
