package mvcpath

import (
	"context"
	"path"
	"strings"

	"github.com/rafbgarcia/mvcpath/internal/conventions"
)

// IsView reports whether file is a view: an existing source file inside the
// views tree of a project. Files outside any project are not views.
func (r *Resolver) IsView(file string) bool {
	file = slash(file)
	if !r.fs.IsRegular(file) || !r.sources.IsSourceFile(file) {
		return false
	}
	rel, ok := r.webrootRelative(file)
	if !ok {
		return false
	}
	return strings.Contains(rel, "/views/")
}

// IsController reports whether file is a controller: an existing source file
// under a controllers directory whose name ends with "Controller".
func (r *Resolver) IsController(file string) bool {
	file = slash(file)
	if _, ok := conventions.ControllerSubDirectory(file); !ok {
		return false
	}
	return r.fs.IsRegular(file) &&
		r.sources.IsSourceFile(file) &&
		conventions.IsControllerName(baseName(file))
}

// RelativePathToView returns the path from controller to the view named
// viewName, taking the project's theme into account. The path is relative
// to the controller file itself, e.g. "../../views/site/index.php".
func (r *Resolver) RelativePathToView(ctx context.Context, controller, viewName string) (string, bool) {
	controller = slash(controller)
	if viewName == "" {
		return "", false
	}
	folder, ok := conventions.ViewFolderName(baseName(controller))
	if !ok {
		return "", false
	}
	subDir, ok := conventions.ControllerSubDirectory(controller)
	if !ok {
		return "", false
	}
	theme := r.projectTheme(ctx, controller)
	return conventions.RelativePathToView(subDir, theme, folder, viewName), true
}

// ResolveView returns the view rendered by actionMethod of controller.
//
// When the view does not exist and the project enables auto-creation, an
// empty view file is created along with any missing directories. Creation
// failures are logged and reported as not found.
func (r *Resolver) ResolveView(ctx context.Context, controller, actionMethod string) (string, bool) {
	controller = slash(controller)
	viewName, ok := conventions.ViewName(actionMethod)
	if !ok {
		return "", false
	}
	rel, ok := r.RelativePathToView(ctx, controller, viewName)
	if !ok {
		return "", false
	}
	if view, ok := r.fs.Resolve(controller, rel); ok {
		return view, true
	}

	webroot, ok := r.webroot(controller)
	if !ok || !r.prefs.AutoCreateView(webroot) {
		return "", false
	}
	return r.createView(controller, rel)
}

// createView creates the view at rel from controller.
func (r *Resolver) createView(controller, rel string) (string, bool) {
	target := path.Join(controller, rel)
	if err := r.fs.CreateFile(target); err != nil {
		r.log.Warn("can't create view file", "path", target, "error", err)
		return "", false
	}
	r.log.Info("created view file", "path", target)
	return target, true
}

// ResolveController returns the controller that renders view. Views in a
// theme map back to the controller under protected/. The controller name is
// canonicalized from the view folder ("user" → "UserController"), so
// controllers with other casing are not found.
func (r *Resolver) ResolveController(view string) (string, bool) {
	view = slash(view)
	if !r.IsView(view) {
		return "", false
	}
	rel, ok := r.webrootRelative(view)
	if !ok {
		return "", false
	}
	loc, ok := conventions.ParseViewPath(rel)
	if !ok {
		return "", false
	}
	name, ok := conventions.ControllerFileName(loc.FolderName)
	if !ok {
		return "", false
	}
	return r.fs.Resolve(view, conventions.RelativePathToController(loc, name))
}
