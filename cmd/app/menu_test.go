package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMenuCmd(t *testing.T) {
	t.Run("should print the built-in menu", func(t *testing.T) {
		t.Setenv("MENU_FILE", "")
		var out bytes.Buffer
		root := newRootCmd()
		root.SetOut(&out)
		root.SetArgs([]string{"menu", "--env-file", filepath.Join(t.TempDir(), ".env")})

		require.NoError(t, root.Execute())

		assert.Contains(t, out.String(), "Classic Double Smash")
		assert.Contains(t, out.String(), "11.50")
		assert.Contains(t, out.String(), "Spicy Jalapeño Smash")
	})

	t.Run("should print a menu file", func(t *testing.T) {
		dir := t.TempDir()
		file := filepath.Join(dir, "menu.yaml")
		require.NoError(t, os.WriteFile(file, []byte("items:\n  - name: Veggie Smash\n    price: \"8.25\"\n"), 0o600))
		var out bytes.Buffer
		root := newRootCmd()
		root.SetOut(&out)
		root.SetArgs([]string{"menu", "--env-file", filepath.Join(dir, ".env"), "--file", file})

		require.NoError(t, root.Execute())

		assert.Contains(t, out.String(), "Veggie Smash")
		assert.NotContains(t, out.String(), "Classic Double Smash")
	})

	t.Run("should fail on an invalid menu", func(t *testing.T) {
		dir := t.TempDir()
		file := filepath.Join(dir, "menu.yaml")
		require.NoError(t, os.WriteFile(file, []byte("items: []\n"), 0o600))
		root := newRootCmd()
		root.SetOut(&bytes.Buffer{})
		root.SetErr(&bytes.Buffer{})
		root.SetArgs([]string{"menu", "--env-file", filepath.Join(dir, ".env"), "--file", file})

		require.Error(t, root.Execute())
	})
}
