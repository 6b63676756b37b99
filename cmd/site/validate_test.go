package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runValidate(t *testing.T, args ...string) (string, error) {
	t.Helper()
	strict = false
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(append([]string{"validate"}, args...))
	err := rootCmd.Execute()
	return out.String(), err
}

func writeContent(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "content.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestValidate_Embedded(t *testing.T) {
	out, err := runValidate(t)
	require.NoError(t, err)
	assert.Contains(t, out, "Checking embedded content")
	assert.Contains(t, out, "content is valid")
}

func TestValidate_Warnings(t *testing.T) {
	path := writeContent(t, `{"services": [{"id": "s1", "title": "Ads", "icon": "Megaphone"}]}`)

	out, err := runValidate(t, path)
	require.NoError(t, err)
	assert.Contains(t, out, `unknown icon "Megaphone"`)

	_, err = runValidate(t, "--strict", path)
	assert.ErrorIs(t, err, errFindings)
}

func TestValidate_Broken(t *testing.T) {
	path := writeContent(t, `{"blog": [{"id": "b1", "date": "someday"}]}`)

	out, err := runValidate(t, path)
	require.Error(t, err)
	assert.Contains(t, out, "invalid date")
}
