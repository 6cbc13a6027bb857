package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChainRejectsNegative(t *testing.T) {
	quiet = true
	assert.NotPanics(t, func() {
		err := runChain(-1)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "-1")
	})

	cmd := newChainCmd()
	cmd.SetArgs([]string{"--n=-2"})
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
	assert.Error(t, cmd.Execute())
}

func TestChainEmpty(t *testing.T) {
	quiet = true
	require.NoError(t, runChain(0))
}
