// Package project locates Yii project webroots on disk.
package project

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/rafbgarcia/mvcpath/internal/conventions"
)

// yiiIncludeRE matches the bootstrap line of a Yii entry script:
//
//	$yii=dirname(__FILE__).'/../framework/yii.php';
var yiiIncludeRE = regexp.MustCompile(`^\$yii *=.+'(.+/framework)/yii\.php';$`)

// Locator finds the webroot a file belongs to.
type Locator struct {
	pinned string
}

// NewLocator returns a Locator. A non-empty webroot pins the project root;
// files outside it belong to no project. Otherwise the webroot is the
// nearest ancestor directory holding a protected/ directory.
func NewLocator(webroot string) *Locator {
	if webroot != "" {
		webroot = strings.TrimSuffix(filepath.ToSlash(filepath.Clean(webroot)), "/")
	}
	return &Locator{pinned: webroot}
}

// Webroot returns the slash-separated webroot of file.
func (l *Locator) Webroot(file string) (string, bool) {
	file = filepath.ToSlash(filepath.Clean(file))
	if l.pinned != "" {
		if strings.HasPrefix(file, l.pinned+"/") {
			return l.pinned, true
		}
		return "", false
	}

	dir := filepath.Dir(filepath.FromSlash(file))
	for {
		if IsYiiProject(dir) {
			return filepath.ToSlash(dir), true
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}

// IsYiiProject reports whether dir looks like a Yii webroot.
func IsYiiProject(dir string) bool {
	info, err := os.Stat(filepath.Join(dir, conventions.ProtectedDir))
	return err == nil && info.IsDir()
}

// IncludePath reads a Yii entry script (usually index.php) and returns the
// framework directory it bootstraps from, without a leading slash. Only the
// first matching line is used.
func IncludePath(index string) ([]string, error) {
	f, err := os.Open(index)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", index, err)
	}
	defer f.Close()

	paths := make([]string, 0, 1)
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		m := yiiIncludeRE.FindStringSubmatch(scanner.Text())
		if m == nil {
			continue
		}
		paths = append(paths, strings.TrimPrefix(m[1], "/"))
		break
	}
	if err := scanner.Err(); err != nil {
		return paths, fmt.Errorf("scan %s: %w", index, err)
	}
	return paths, nil
}
