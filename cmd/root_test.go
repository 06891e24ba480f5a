package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCmd_Subcommands(t *testing.T) {
	for _, name := range []string{"add", "list", "delete", "serve"} {
		t.Run(name, func(t *testing.T) {
			sub, _, err := RootCmd.Find([]string{name})
			require.NoError(t, err)
			assert.Equal(t, name, sub.Name())
		})
	}
}

func TestFlags(t *testing.T) {
	assert.NotNil(t, RootCmd.PersistentFlags().Lookup("config-dir"))
	assert.NotNil(t, addCmd.Flags().Lookup("folder"))
	assert.NotNil(t, addCmd.Flags().Lookup("name"))
	assert.NotNil(t, listCmd.Flags().Lookup("folder"))
}

func TestArgs(t *testing.T) {
	assert.Error(t, addCmd.Args(addCmd, nil))
	assert.NoError(t, addCmd.Args(addCmd, []string{"photo.jpg"}))
	assert.Error(t, deleteCmd.Args(deleteCmd, []string{}))
	assert.Error(t, listCmd.Args(listCmd, []string{"extra"}))
}

func TestSetup_MissingBucket(t *testing.T) {
	t.Setenv("STORAGE_BUCKET", "")
	t.Setenv("STORAGE_ACCESS_KEY", "")
	configDir = t.TempDir()
	t.Cleanup(func() { configDir = "." })

	_, _, _, err := setup()
	assert.ErrorContains(t, err, "bucket is required")
}
