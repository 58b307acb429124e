package mvcpath

import (
	"context"
	"errors"
	"fmt"
	"path"

	"github.com/rafbgarcia/mvcpath/internal/conventions"
)

// ErrNotController is returned when an operation needs a controller file.
var ErrNotController = errors.New("not a controller file")

// Action is an action method of a controller and the view it renders.
type Action struct {
	Method       string `json:"method"`
	View         string `json:"view"`
	Line         int    `json:"line"`
	RelativePath string `json:"relative_path"` // from the controller file
	Path         string `json:"path"`          // "" when the view does not exist
}

// Exists reports whether the action's view file exists.
func (a Action) Exists() bool {
	return a.Path != ""
}

// ControllerActions lists the action methods of controller in source order.
func (r *Resolver) ControllerActions(ctx context.Context, controller string) ([]Action, error) {
	controller = slash(controller)
	if !r.IsController(controller) {
		return nil, fmt.Errorf("%s: %w", controller, ErrNotController)
	}
	methods, err := r.methods.Methods(ctx, controller)
	if err != nil {
		return nil, fmt.Errorf("listing methods of %s: %w", controller, err)
	}

	class := baseName(controller)
	var actions []Action
	for _, m := range methods {
		if m.Class != "" && m.Class != class {
			continue
		}
		view, ok := conventions.ViewName(m.Name)
		if !ok {
			continue
		}
		rel, ok := r.RelativePathToView(ctx, controller, view)
		if !ok {
			continue
		}
		a := Action{Method: m.Name, View: view, Line: m.Line, RelativePath: rel}
		if p, ok := r.fs.Resolve(controller, rel); ok {
			a.Path = p
		}
		actions = append(actions, a)
	}
	return actions, nil
}

// EnsureViews creates the missing views of controller's actions and returns
// the created paths. Nothing is created unless the project enables
// auto-creation.
func (r *Resolver) EnsureViews(ctx context.Context, controller string) ([]string, error) {
	controller = slash(controller)
	actions, err := r.ControllerActions(ctx, controller)
	if err != nil {
		return nil, err
	}
	webroot, ok := r.webroot(controller)
	if !ok || !r.prefs.AutoCreateView(webroot) {
		return nil, nil
	}

	var created []string
	for _, a := range actions {
		if a.Exists() {
			continue
		}
		if p, ok := r.createView(controller, a.RelativePath); ok {
			created = append(created, p)
		}
	}
	return created, nil
}

// ViewPath returns where the view of a would live, whether or not it exists.
func (a Action) ViewPath(controller string) string {
	if a.Path != "" {
		return a.Path
	}
	return path.Join(slash(controller), a.RelativePath)
}
