// Package conventions defines the Yii directory and naming conventions that
// map controllers, actions and views onto each other.
//
// Everything here is pure string work over slash-separated paths. Callers are
// expected to convert OS paths with filepath.ToSlash before calling in.
package conventions

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	ControllerSuffix = "Controller"
	ActionPrefix     = "action"
	SourceExt        = ".php"

	ProtectedDir = "protected"
	ThemesDir    = "themes"
)

// Directories relative to the webroot.
const (
	ViewsPath       = ProtectedDir + "/views"
	ControllersPath = ProtectedDir + "/controllers"
	ModelsPath      = ProtectedDir + "/models"
	TestsPath       = ProtectedDir + "/tests"
	ConfigPath      = ProtectedDir + "/config"
	ThemesPath      = ThemesDir
	MainConfigPath  = ConfigPath + "/main.php"
)

const (
	controllersMarker = "/controllers/"
	viewsMarker       = "/views/"
	themesMarker      = "/themes/"
	modulesMarker     = "/modules/"

	viewRelativePathFormat       = "../..%s%s/views/%s%s/%s" + SourceExt
	controllerRelativePathFormat = "../../..%s%s/controllers/%s%s" + SourceExt
	themePathFormat              = "/../themes/%s"
	themeEscape                  = "/../../" + ProtectedDir
)

// IsControllerName reports whether name carries the controller suffix.
func IsControllerName(name string) bool {
	return strings.HasSuffix(name, ControllerSuffix)
}

// ViewFolderName converts a controller name to its view folder name.
//
//	"SiteController"      → "site"
//	"UserAdminController" → "useradmin"
func ViewFolderName(controllerName string) (string, bool) {
	if !IsControllerName(controllerName) {
		return "", false
	}
	return strings.ToLower(strings.TrimSuffix(controllerName, ControllerSuffix)), true
}

// ControllerFileName converts a view folder name back to a controller name
// (without extension). Casing is canonicalized, so "useradmin" yields
// "UseradminController".
func ControllerFileName(viewFolderName string) (string, bool) {
	name, ok := CapitalizeFirst(viewFolderName)
	if !ok {
		return "", false
	}
	return name + ControllerSuffix, true
}

// IsActionMethodName reports whether name looks like an action method:
// the action prefix followed by an upper-case letter.
func IsActionMethodName(name string) bool {
	rest, ok := strings.CutPrefix(name, ActionPrefix)
	if !ok || rest == "" {
		return false
	}
	r, _ := utf8.DecodeRuneInString(rest)
	return unicode.IsUpper(r)
}

// ActionMethodName converts a view name to its action method name.
//
//	"index" → "actionIndex"
func ActionMethodName(viewName string) (string, bool) {
	name, ok := CapitalizeFirst(viewName)
	if !ok {
		return "", false
	}
	return ActionPrefix + name, true
}

// ViewName converts an action method name to its view name.
//
//	"actionIndex" → "index"
func ViewName(actionMethodName string) (string, bool) {
	if !IsActionMethodName(actionMethodName) {
		return "", false
	}
	return strings.ToLower(strings.TrimPrefix(actionMethodName, ActionPrefix)), true
}

// CapitalizeFirst lower-cases s and then upper-cases its first character.
//
//	"apple" → "Apple", "ORANGE" → "Orange", "myVIEW" → "Myview"
func CapitalizeFirst(s string) (string, bool) {
	if s == "" {
		return "", false
	}
	lower := strings.ToLower(s)
	r, size := utf8.DecodeRuneInString(lower)
	return string(unicode.ToUpper(r)) + lower[size:], true
}

// ToDepth returns one "/.." per separator in subPath, ignoring a separator at
// index 0.
//
//	""     → ""
//	"a/"   → "/.."
//	"a/b/" → "/../.."
func ToDepth(subPath string) string {
	if len(subPath) < 2 {
		return ""
	}
	return strings.Repeat("/..", strings.Count(subPath[1:], "/"))
}

// ControllerSubDirectory returns the directory between the last
// "/controllers/" segment and the file itself, e.g.
// "/app/protected/controllers/admin/UserController.php" → "admin/".
// The result is "" when the file sits directly in controllers/. ok is false
// when path has no controllers segment.
func ControllerSubDirectory(path string) (string, bool) {
	rest, ok := afterLast(path, controllersMarker)
	if !ok {
		return "", false
	}
	return splitPath(rest).parent().dir(), true
}

// ViewLocation is a view file decomposed relative to its views root.
type ViewLocation struct {
	SubDirectory string // "admin/" or ""
	FolderName   string // view folder, i.e. the controller id
	Themed       bool   // the view lives under a themes directory
}

// ParseViewPath decomposes a webroot-relative view path such as
// "/protected/views/admin/user/list.php". ok is false when the path has no
// views segment or the file sits directly in the views root.
func ParseViewPath(webrootRel string) (ViewLocation, bool) {
	rest, ok := afterLast(webrootRel, viewsMarker)
	if !ok {
		return ViewLocation{}, false
	}
	dirs := splitPath(rest).parent()
	if len(dirs) == 0 {
		return ViewLocation{}, false
	}
	return ViewLocation{
		SubDirectory: dirs.parent().dir(),
		FolderName:   dirs.last(),
		Themed:       strings.Contains(webrootRel, themesMarker),
	}, true
}

// ThemePath returns the path segment inserted before /views/ for a theme, or
// "" when theme is empty.
func ThemePath(theme string) string {
	if theme == "" {
		return ""
	}
	return fmt.Sprintf(themePathFormat, theme)
}

// RelativePathToView builds the path from a controller file to its view:
//
//	../..<depth><theme>/views/<subdir><folder>/<view>.php
//
// The controller file itself is the anchor, so the first ".." lands in the
// directory that holds it.
func RelativePathToView(subDir, theme, viewFolder, viewName string) string {
	return fmt.Sprintf(viewRelativePathFormat, ToDepth(subDir), ThemePath(theme), subDir, viewFolder, viewName)
}

// RelativePathToController builds the path from a view file to its
// controller. Themed views climb out of themes/<name> back into protected/.
func RelativePathToController(loc ViewLocation, controllerName string) string {
	escape := ""
	if loc.Themed {
		escape = themeEscape
	}
	return fmt.Sprintf(controllerRelativePathFormat, ToDepth(loc.SubDirectory), escape, loc.SubDirectory, controllerName)
}

// IsInModules reports whether a webroot-relative path lies in a modules tree.
func IsInModules(webrootRel string) bool {
	return strings.Contains(webrootRel, modulesMarker)
}

// ModuleSegment returns the module name after the last "/modules/" marker and
// the webroot-relative module directory that ends with it.
//
//	"/protected/modules/forum/views/post/index.php" → "forum", "/protected/modules/forum"
func ModuleSegment(webrootRel string) (name, dir string, ok bool) {
	i := strings.LastIndex(webrootRel, modulesMarker)
	if i < 0 {
		return "", "", false
	}
	start := i + len(modulesMarker)
	name, _, _ = strings.Cut(webrootRel[start:], "/")
	if name == "" {
		return "", "", false
	}
	return name, webrootRel[:start+len(name)], true
}

// afterLast returns what follows the last occurrence of marker. At least one
// character must precede the marker.
func afterLast(path, marker string) (string, bool) {
	i := strings.LastIndex(path, marker)
	if i <= 0 {
		return "", false
	}
	return path[i+len(marker):], true
}
