package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionCommand(t *testing.T) {
	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"version"})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "tarefas dev\n", out.String())
}

func TestRootCommand_Flags(t *testing.T) {
	t.Setenv("TAREFAS_CONFIG", "/tmp/tarefas-test.toml")
	cmd := newRootCommand()

	f := cmd.Flags().Lookup("config")
	require.NotNil(t, f)
	assert.Equal(t, "/tmp/tarefas-test.toml", f.DefValue)
	assert.Equal(t, "c", f.Shorthand)

	require.NotNil(t, cmd.Flags().Lookup("debug"))
}

func TestRootCommand_RejectsArgs(t *testing.T) {
	cmd := newRootCommand()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"unexpected"})

	assert.Error(t, cmd.Execute())
}
