package mvcpath

import (
	"github.com/rafbgarcia/mvcpath/internal/conventions"
)

// IsInModules reports whether file lies inside a modules directory of its
// project.
func (r *Resolver) IsInModules(file string) bool {
	rel, ok := r.webrootRelative(slash(file))
	return ok && conventions.IsInModules(rel)
}

// ModuleName returns the name of the innermost module file belongs to.
func (r *Resolver) ModuleName(file string) (string, bool) {
	rel, ok := r.webrootRelative(slash(file))
	if !ok {
		return "", false
	}
	name, _, ok := conventions.ModuleSegment(rel)
	return name, ok
}

// CurrentModuleDirectory returns the root directory of the innermost module
// file belongs to, e.g. <webroot>/protected/modules/forum.
func (r *Resolver) CurrentModuleDirectory(file string) (string, bool) {
	file = slash(file)
	webroot, ok := r.webroot(file)
	if !ok {
		return "", false
	}
	rel, ok := r.webrootRelative(file)
	if !ok {
		return "", false
	}
	_, dir, ok := conventions.ModuleSegment(rel)
	if !ok {
		return "", false
	}
	return r.fs.Resolve(webroot, dir)
}

// Directory resolves rel against the webroot of the project file belongs to.
func (r *Resolver) Directory(file, rel string) (string, bool) {
	webroot, ok := r.webroot(slash(file))
	if !ok {
		return "", false
	}
	return r.fs.Resolve(webroot, rel)
}

// ViewsDirectory returns protected/views of the project file belongs to.
func (r *Resolver) ViewsDirectory(file string) (string, bool) {
	return r.Directory(file, conventions.ViewsPath)
}

// ControllersDirectory returns protected/controllers.
func (r *Resolver) ControllersDirectory(file string) (string, bool) {
	return r.Directory(file, conventions.ControllersPath)
}

// ModelsDirectory returns protected/models.
func (r *Resolver) ModelsDirectory(file string) (string, bool) {
	return r.Directory(file, conventions.ModelsPath)
}

// TestsDirectory returns protected/tests.
func (r *Resolver) TestsDirectory(file string) (string, bool) {
	return r.Directory(file, conventions.TestsPath)
}

// ThemesDirectory returns the themes directory next to protected/.
func (r *Resolver) ThemesDirectory(file string) (string, bool) {
	return r.Directory(file, conventions.ThemesPath)
}
