package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rafbgarcia/mvcpath/internal/config"
)

func TestPrintFound(t *testing.T) {
	assert.ErrorIs(t, printFound("", false), errNotFound)
	assert.NoError(t, printFound("/app/protected/views/site/index.php", true))
}

func TestWatchRoot(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "protected"), 0755))
	other := t.TempDir()

	cfg = &config.Config{}
	got, err := watchRoot([]string{root})
	require.NoError(t, err)
	assert.Equal(t, root, got)

	_, err = watchRoot([]string{other})
	assert.Error(t, err)

	cfg = &config.Config{Webroot: root}
	got, err = watchRoot(nil)
	require.NoError(t, err)
	assert.Equal(t, root, got)
}
