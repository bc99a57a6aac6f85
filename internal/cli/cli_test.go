package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildCLI(t *testing.T) {
	root := BuildCLI()
	require.NotNil(t, root)
	assert.Equal(t, "functions-host", root.Use)

	names := make(map[string]bool)
	for _, cmd := range root.Commands() {
		names[cmd.Name()] = true
	}
	assert.True(t, names["run"], "run command registered")
	assert.True(t, names["status"], "status command registered")
}

func TestConfigFlagRegistered(t *testing.T) {
	root := BuildCLI()
	flag := root.PersistentFlags().Lookup("config")
	require.NotNil(t, flag)
	assert.Equal(t, "c", flag.Shorthand)
}

func TestRunFailsWithoutConfig(t *testing.T) {
	root := BuildCLI()
	root.SetArgs([]string{"run", "--config", "/nonexistent/host.yaml"})
	assert.Error(t, root.Execute())
}

func TestStatusFailsWithoutConfig(t *testing.T) {
	root := BuildCLI()
	root.SetArgs([]string{"status", "--config", "/nonexistent/host.yaml"})
	assert.Error(t, root.Execute())
}
