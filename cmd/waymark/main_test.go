package main

import (
	"bytes"
	"testing"

	"github.com/aretw0/waymark"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionCommand(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"version"})
	t.Cleanup(func() { rootCmd.SetArgs(nil); rootCmd.SetOut(nil) })

	require.NoError(t, rootCmd.Execute())
	assert.Equal(t, "waymark version "+waymark.Version+"\n", out.String())
}

func TestCommandsRegistered(t *testing.T) {
	for _, name := range []string{"run", "play", "graph", "validate", "version"} {
		cmd, _, err := rootCmd.Find([]string{name})
		require.NoError(t, err, name)
		assert.Equal(t, name, cmd.Name())
	}
}

func TestGlobalOptions(t *testing.T) {
	require.NoError(t, rootCmd.ParseFlags([]string{"--width", "7", "--debug", "--config", "x.yaml"}))
	t.Cleanup(func() {
		for _, name := range []string{"width", "debug", "config"} {
			f := rootCmd.PersistentFlags().Lookup(name)
			_ = f.Value.Set(f.DefValue)
		}
	})

	opts := globalOptions(rootCmd)
	assert.Equal(t, 7, opts.Width)
	assert.Equal(t, 0, opts.Height)
	assert.True(t, opts.Debug)
	assert.Equal(t, "x.yaml", opts.ConfigPath)
}
