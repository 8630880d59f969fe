package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, src string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "carcara.yaml")
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))
	return path
}

func TestLoadMissingFileIsDefault(t *testing.T) {
	c, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), c)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, "jobs: 2\ntimeout: 30s\nverbose: true\n")
	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 2, c.Jobs)
	assert.Equal(t, 30*time.Second, time.Duration(c.Timeout))
	assert.True(t, c.Verbose)
	assert.Equal(t, Default().Cache, c.Cache, "unset keys keep defaults")
}

func TestLoadRejectsBadValues(t *testing.T) {
	tests := []string{
		"jobs: 0\n",
		"timeout: -1s\n",
		"timeout: soon\n",
		"jobs: [1, 2]\n",
	}
	for i, src := range tests {
		if _, err := Load(writeConfig(t, src)); err == nil {
			t.Errorf("test %d: Load(%q) succeeded, want error", i+1, src)
		}
	}
}
