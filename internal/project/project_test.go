package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocatorDetectsWebroot(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "protected", "views", "site"), 0755))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "themes", "classic", "views", "site"), 0755))
	want := filepath.ToSlash(root)

	l := NewLocator("")
	tests := []string{
		filepath.Join(root, "protected", "views", "site", "index.php"),
		filepath.Join(root, "themes", "classic", "views", "site", "index.php"),
		filepath.Join(root, "index.php"),
	}
	for _, file := range tests {
		got, ok := l.Webroot(file)
		if !ok || got != want {
			t.Errorf("Webroot(%q) = %q, %v, want %q, true", file, got, ok, want)
		}
	}
}

func TestLocatorOutsideProject(t *testing.T) {
	_, ok := NewLocator("").Webroot(filepath.Join(t.TempDir(), "a", "b.php"))
	assert.False(t, ok)
}

func TestLocatorPinned(t *testing.T) {
	l := NewLocator("/srv/app/")

	got, ok := l.Webroot("/srv/app/protected/controllers/SiteController.php")
	require.True(t, ok)
	assert.Equal(t, "/srv/app", got)

	_, ok = l.Webroot("/srv/application/protected/controllers/SiteController.php")
	assert.False(t, ok)
}

func TestIncludePath(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []string
	}{
		{
			"relative",
			"<?php\n$yii=dirname(__FILE__).'/../framework/yii.php';\n$config=dirname(__FILE__).'/protected/config/main.php';\n",
			[]string{"../framework"},
		},
		{
			"spaces",
			"<?php\n$yii = dirname(__FILE__).'/../../yii/framework/yii.php';\n",
			[]string{"../../yii/framework"},
		},
		{
			"absolute",
			"<?php\n$yii = '/opt/yii/framework/yii.php';\n",
			[]string{"opt/yii/framework"},
		},
		{
			"missing",
			"<?php\nrequire 'vendor/autoload.php';\n",
			[]string{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			index := filepath.Join(t.TempDir(), "index.php")
			require.NoError(t, os.WriteFile(index, []byte(tt.content), 0644))

			got, err := IncludePath(index)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIncludePathMissingFile(t *testing.T) {
	_, err := IncludePath(filepath.Join(t.TempDir(), "index.php"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
