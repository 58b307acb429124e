package phpsrc

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

const mainConfig = `<?php
return array(
	'basePath' => dirname(__FILE__) . DIRECTORY_SEPARATOR . '..',
	'name' => 'My Web Application',
	'theme' => 'classic',
	'components' => array(
		'db' => array(
			'connectionString' => "sqlite:protected/data/testdrive.db",
		),
	),
);
`

func TestFindStringValues(t *testing.T) {
	path := writeFile(t, "main.php", mainConfig)

	values, err := New().FindStringValues(context.Background(), path, "theme")
	require.NoError(t, err)
	assert.Equal(t, map[string]struct{}{"classic": {}}, values)
}

func TestFindStringValuesNested(t *testing.T) {
	path := writeFile(t, "main.php", mainConfig)

	values, err := New().FindStringValues(context.Background(), path, "connectionString")
	require.NoError(t, err)
	assert.Equal(t, map[string]struct{}{"sqlite:protected/data/testdrive.db": {}}, values)
}

func TestFindStringValuesMultiple(t *testing.T) {
	src := `<?php
$config = array('theme' => 'classic');
if (YII_DEBUG) {
	$config = array('theme' => "debug");
}
return $config;
`
	path := writeFile(t, "main.php", src)

	values, err := New().FindStringValues(context.Background(), path, "theme")
	require.NoError(t, err)
	assert.Len(t, values, 2)
	assert.Contains(t, values, "classic")
	assert.Contains(t, values, "debug")
}

func TestFindStringValuesShortArraySyntax(t *testing.T) {
	path := writeFile(t, "main.php", "<?php\nreturn ['theme' => 'bootstrap'];\n")

	values, err := New().FindStringValues(context.Background(), path, "theme")
	require.NoError(t, err)
	assert.Contains(t, values, "bootstrap")
}

func TestFindStringValuesSkipsNonLiterals(t *testing.T) {
	src := `<?php
$name = 'x';
return array(
	'theme' => $name,
	'theme' => "t-$name",
	'theme' => '',
	'other' => 'classic',
	'plain',
);
`
	path := writeFile(t, "main.php", src)

	values, err := New().FindStringValues(context.Background(), path, "theme")
	require.NoError(t, err)
	assert.Empty(t, values)
}

func TestFindStringValuesMalformed(t *testing.T) {
	path := writeFile(t, "main.php", "<?php\nreturn array('theme' => 'classic'\n")

	_, err := New().FindStringValues(context.Background(), path, "theme")
	require.ErrorIs(t, err, ErrMalformed)
}

func TestFindStringValuesMissingFile(t *testing.T) {
	_, err := New().FindStringValues(context.Background(), filepath.Join(t.TempDir(), "nope.php"), "theme")
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestFindStringValuesCanceled(t *testing.T) {
	path := writeFile(t, "main.php", mainConfig)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New().FindStringValues(ctx, path, "theme")
	require.ErrorIs(t, err, context.Canceled)
}

func TestMethods(t *testing.T) {
	src := `<?php
class SiteController extends Controller
{
	public $layout = '//layouts/column1';

	public function actions()
	{
		return array();
	}

	public function actionIndex()
	{
		$this->render('index');
	}

	protected function actionList() {}
}
`
	path := writeFile(t, "SiteController.php", src)

	methods, err := New().Methods(context.Background(), path)
	require.NoError(t, err)
	require.Len(t, methods, 3)

	assert.Equal(t, Method{Class: "SiteController", Name: "actions", Line: 6}, methods[0])
	assert.Equal(t, Method{Class: "SiteController", Name: "actionIndex", Line: 11}, methods[1])
	assert.Equal(t, "actionList", methods[2].Name)
}
