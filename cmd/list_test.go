package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListCommand(t *testing.T) {
	out := new(bytes.Buffer)
	rootCmd.SetOut(out)
	rootCmd.SetArgs([]string{"list"})

	require.NoError(t, rootCmd.Execute())

	output := out.String()
	assert.Contains(t, output, "WORKLOAD")
	for _, name := range []string{"sleep", "hash", "pebble-set", "pebble-get", "mdbx-set", "mdbx-get"} {
		assert.Contains(t, output, name)
	}
}
