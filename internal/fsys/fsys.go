// Package fsys is the local file system behind the resolver. Paths going in
// and out are slash-separated.
package fsys

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// OS resolves and creates files on the local disk.
type OS struct{}

// Resolve joins rel onto base lexically and returns the result if something
// exists there. base may be a file; "base/.." is its parent directory.
func (OS) Resolve(base, rel string) (string, bool) {
	p := filepath.Join(filepath.FromSlash(base), filepath.FromSlash(rel))
	if _, err := os.Stat(p); err != nil {
		return "", false
	}
	return filepath.ToSlash(p), true
}

// IsRegular reports whether path is an existing regular file.
func (OS) IsRegular(path string) bool {
	info, err := os.Stat(filepath.FromSlash(path))
	return err == nil && info.Mode().IsRegular()
}

// CreateFile creates an empty file at path along with any missing parent
// directories. It fails if the file already exists.
func (OS) CreateFile(path string) error {
	p := filepath.FromSlash(path)
	if err := os.MkdirAll(filepath.Dir(p), 0755); err != nil {
		return fmt.Errorf("creating %s: %w", filepath.Dir(p), err)
	}
	f, err := os.OpenFile(p, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	return f.Close()
}

// Classifier recognizes framework source files by extension.
type Classifier struct {
	exts map[string]bool
}

// NewClassifier returns a Classifier for the given extensions, with or
// without a leading dot. With no extensions it recognizes ".php".
func NewClassifier(exts ...string) *Classifier {
	if len(exts) == 0 {
		exts = []string{".php"}
	}
	allowed := make(map[string]bool, len(exts))
	for _, ext := range exts {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		allowed[ext] = true
	}
	return &Classifier{exts: allowed}
}

// IsSourceFile reports whether path has a recognized extension.
func (c *Classifier) IsSourceFile(path string) bool {
	return c.exts[strings.ToLower(filepath.Ext(path))]
}
