package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(args ...string) error {
	rootCmd.SetArgs(args)
	return rootCmd.Execute()
}

func TestSimplifyCommand(t *testing.T) {
	require.NoError(t, execute("simplify", "1 + 2 * 3"))
	require.NoError(t, execute("simplify", "--typeset", "1/2"))
}

func TestSimplifyCommandSyntaxError(t *testing.T) {
	err := execute("simplify", "1 +")
	assert.Error(t, err)
}

func TestRenderCommand(t *testing.T) {
	require.NoError(t, execute("render", "4 + x + 1"))
	require.NoError(t, execute("render", "--typeset", "a/b"))
}

func TestEquivCommand(t *testing.T) {
	require.NoError(t, execute("equiv", "--seed", "1", "x + x", "2 * x"))
	assert.Error(t, execute("equiv", "x +", "x"))
}

func TestVersionCommand(t *testing.T) {
	require.NoError(t, execute("version"))
}
