// Package mvcpath maps Yii controllers, actions and views onto each other
// using the framework's directory conventions.
//
// Given protected/controllers/admin/UserController.php and actionList, the
// view is protected/views/admin/user/list.php, or
// themes/<theme>/views/admin/user/list.php when main.php configures a theme.
// The inverse lookup goes from any view back to its controller.
//
// Results are recomputed on every call. Host integrations plug in their own
// project model, file system and parser through the collaborator interfaces;
// New wires local-disk defaults.
package mvcpath

import (
	"context"
	"path"
	"path/filepath"
	"strings"

	"github.com/rafbgarcia/mvcpath/internal/config"
	"github.com/rafbgarcia/mvcpath/internal/fsys"
	"github.com/rafbgarcia/mvcpath/internal/phpsrc"
	"github.com/rafbgarcia/mvcpath/internal/project"
)

// Project tells which webroot a file belongs to.
type Project interface {
	Webroot(file string) (string, bool)
}

// FileSystem resolves and creates files. Paths are slash-separated.
type FileSystem interface {
	// Resolve joins rel onto base and returns the path if it exists. base
	// may be a file, in which case its first ".." is its directory.
	Resolve(base, rel string) (string, bool)
	IsRegular(path string) bool
	// CreateFile creates an empty file and any missing parents.
	CreateFile(path string) error
}

// ConfigParser extracts string values of a key from a PHP config file.
type ConfigParser interface {
	FindStringValues(ctx context.Context, file, key string) (map[string]struct{}, error)
}

// Method is a method declared by a class in a PHP file.
type Method struct {
	Class string
	Name  string
	Line  int
}

// MethodLister lists the methods declared by the classes in a PHP file.
type MethodLister interface {
	Methods(ctx context.Context, file string) ([]Method, error)
}

// Preferences holds per-project user preferences.
type Preferences interface {
	AutoCreateView(webroot string) bool
}

// SourceClassifier recognizes framework source files.
type SourceClassifier interface {
	IsSourceFile(path string) bool
}

// Resolver answers path questions about Yii projects. It holds no mutable
// state and is safe for concurrent use if its collaborators are.
type Resolver struct {
	project Project
	fs      FileSystem
	config  ConfigParser
	methods MethodLister
	prefs   Preferences
	sources SourceClassifier
	log     *Logger
}

// Option configures a Resolver.
type Option func(*Resolver)

func WithProject(p Project) Option {
	return func(r *Resolver) { r.project = p }
}

func WithFileSystem(fs FileSystem) Option {
	return func(r *Resolver) { r.fs = fs }
}

func WithConfigParser(p ConfigParser) Option {
	return func(r *Resolver) { r.config = p }
}

func WithMethodLister(m MethodLister) Option {
	return func(r *Resolver) { r.methods = m }
}

func WithPreferences(p Preferences) Option {
	return func(r *Resolver) { r.prefs = p }
}

func WithSourceClassifier(c SourceClassifier) Option {
	return func(r *Resolver) { r.sources = c }
}

// WithLogger sets the logger for diagnostics. The default discards them.
func WithLogger(l *Logger) Option {
	return func(r *Resolver) {
		if l != nil {
			r.log = l
		}
	}
}

// New returns a Resolver backed by the local disk, a tree-sitter PHP parser
// and .mvcpath.yaml preferences, unless overridden by opts.
func New(opts ...Option) *Resolver {
	parser := phpsrc.New()
	r := &Resolver{
		project: project.NewLocator(""),
		fs:      fsys.OS{},
		config:  parser,
		methods: phpMethods{parser},
		prefs:   config.Preferences{},
		sources: fsys.NewClassifier(),
		log:     DiscardLogger(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// FromConfig builds a Resolver for the settings in cfg.
func FromConfig(cfg *config.Config, log *Logger) *Resolver {
	return New(
		WithProject(project.NewLocator(cfg.Webroot)),
		WithSourceClassifier(fsys.NewClassifier(cfg.SourceExtensions...)),
		WithPreferences(config.Preferences{AutoCreate: cfg.AutoCreateView}),
		WithLogger(log),
	)
}

// webroot returns the slash-separated webroot of file without a trailing
// separator.
func (r *Resolver) webroot(file string) (string, bool) {
	root, ok := r.project.Webroot(file)
	if !ok || root == "" {
		return "", false
	}
	return strings.TrimSuffix(filepath.ToSlash(root), "/"), true
}

// webrootRelative strips the webroot from file, e.g.
// "/srv/app/protected/views/site/index.php" → "/protected/views/site/index.php".
// ok is false for files outside any project.
func (r *Resolver) webrootRelative(file string) (string, bool) {
	root, ok := r.webroot(file)
	if !ok {
		return "", false
	}
	rel, ok := strings.CutPrefix(file, root)
	if !ok || !strings.HasPrefix(rel, "/") {
		return "", false
	}
	return rel, true
}

// baseName returns the file name without directory and extension.
func baseName(file string) string {
	base := path.Base(file)
	return strings.TrimSuffix(base, path.Ext(base))
}

func slash(file string) string {
	return filepath.ToSlash(file)
}

// phpMethods adapts the tree-sitter parser to MethodLister.
type phpMethods struct {
	parser *phpsrc.Parser
}

func (m phpMethods) Methods(ctx context.Context, file string) ([]Method, error) {
	found, err := m.parser.Methods(ctx, file)
	if err != nil {
		return nil, err
	}
	methods := make([]Method, len(found))
	for i, f := range found {
		methods[i] = Method{Class: f.Class, Name: f.Name, Line: f.Line}
	}
	return methods, nil
}
