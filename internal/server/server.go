// Package server exposes the resolver over a small local JSON API so editor
// plugins can ask path questions without linking Go code.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/rafbgarcia/mvcpath"
)

// Resolver is the subset of *mvcpath.Resolver the API serves.
type Resolver interface {
	ResolveView(ctx context.Context, controller, actionMethod string) (string, bool)
	ResolveController(view string) (string, bool)
	ThemeName(ctx context.Context, configFile string) string
	IsInModules(file string) bool
	ModuleName(file string) (string, bool)
	CurrentModuleDirectory(file string) (string, bool)
	ControllerActions(ctx context.Context, controller string) ([]mvcpath.Action, error)
}

type pathResponse struct {
	Path string `json:"path"`
}

type themeResponse struct {
	Theme string `json:"theme"`
}

type moduleResponse struct {
	InModules bool   `json:"in_modules"`
	Name      string `json:"name,omitempty"`
	Directory string `json:"directory,omitempty"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// New returns the API handler. Routes:
//
//	GET /healthz
//	GET /view?controller=&action=
//	GET /controller?view=
//	GET /theme?config=
//	GET /module?file=
//	GET /actions?controller=
//
// Middlewares wrap every route, outermost first.
func New(r Resolver, middlewares ...Middleware) http.Handler {
	mux := chi.NewRouter()
	mux.Use(middleware.Recoverer)
	mux.Use(middlewares...)

	mux.Get("/healthz", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	mux.Get("/view", func(w http.ResponseWriter, req *http.Request) {
		controller, action, ok := requireParams(w, req, "controller", "action")
		if !ok {
			return
		}
		view, found := r.ResolveView(req.Context(), controller, action)
		if !found {
			writeError(w, http.StatusNotFound, "view not found")
			return
		}
		writeJSON(w, http.StatusOK, pathResponse{Path: view})
	})

	mux.Get("/controller", func(w http.ResponseWriter, req *http.Request) {
		view, _, ok := requireParams(w, req, "view")
		if !ok {
			return
		}
		controller, found := r.ResolveController(view)
		if !found {
			writeError(w, http.StatusNotFound, "controller not found")
			return
		}
		writeJSON(w, http.StatusOK, pathResponse{Path: controller})
	})

	mux.Get("/theme", func(w http.ResponseWriter, req *http.Request) {
		config, _, ok := requireParams(w, req, "config")
		if !ok {
			return
		}
		writeJSON(w, http.StatusOK, themeResponse{Theme: r.ThemeName(req.Context(), config)})
	})

	mux.Get("/module", func(w http.ResponseWriter, req *http.Request) {
		file, _, ok := requireParams(w, req, "file")
		if !ok {
			return
		}
		resp := moduleResponse{InModules: r.IsInModules(file)}
		resp.Name, _ = r.ModuleName(file)
		resp.Directory, _ = r.CurrentModuleDirectory(file)
		writeJSON(w, http.StatusOK, resp)
	})

	mux.Get("/actions", func(w http.ResponseWriter, req *http.Request) {
		controller, _, ok := requireParams(w, req, "controller")
		if !ok {
			return
		}
		actions, err := r.ControllerActions(req.Context(), controller)
		if err != nil {
			status := http.StatusInternalServerError
			if errors.Is(err, mvcpath.ErrNotController) {
				status = http.StatusUnprocessableEntity
			}
			writeError(w, status, err.Error())
			return
		}
		if actions == nil {
			actions = []mvcpath.Action{}
		}
		writeJSON(w, http.StatusOK, actions)
	})

	return mux
}

// requireParams reads up to two required query parameters, answering 400
// when one is missing.
func requireParams(w http.ResponseWriter, req *http.Request, names ...string) (string, string, bool) {
	var values [2]string
	for i, name := range names {
		v := req.URL.Query().Get(name)
		if v == "" {
			writeError(w, http.StatusBadRequest, "missing "+name)
			return "", "", false
		}
		values[i] = v
	}
	return values[0], values[1], true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}
