package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRootCmdMissingConfigFile(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetArgs([]string{"--config", "does-not-exist.env"})

	require.ErrorContains(t, cmd.Execute(), "failed to read config file")
}

func TestRootCmdRejectsArgs(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetArgs([]string{"serve"})

	require.Error(t, cmd.Execute())
}
