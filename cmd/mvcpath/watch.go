package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/rafbgarcia/mvcpath/internal/project"
	"github.com/rafbgarcia/mvcpath/internal/server"
	"github.com/rafbgarcia/mvcpath/internal/watcher"
)

var watchCmd = &cobra.Command{
	Use:   "watch [webroot]",
	Short: "Keep controller views in sync while files change",
	Long: "Watch a project for controller, view and config changes. Missing views of the " +
		"affected controllers are created when auto_create_view is enabled, and listed otherwise.",
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := watchRoot(args)
		if err != nil {
			return err
		}
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()
		return runWatch(ctx, root)
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the resolver as a local JSON API",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		addr, _ := cmd.Flags().GetString("addr")
		if addr == "" {
			addr = cfg.Addr
		}
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()
		return runServe(ctx, addr)
	},
}

func init() {
	serveCmd.Flags().String("addr", "", "listen address (default from config)")
}

// watchRoot picks the webroot to watch: the argument, the configured
// webroot, or the current directory.
func watchRoot(args []string) (string, error) {
	root := "."
	switch {
	case len(args) == 1:
		root = args[0]
	case cfg.Webroot != "":
		root = cfg.Webroot
	}
	root = absPath(root)
	if !project.IsYiiProject(root) {
		return "", fmt.Errorf("%s is not a Yii webroot: no protected/ directory", root)
	}
	return root, nil
}

func runWatch(ctx context.Context, root string) error {
	eventCh := make(chan watcher.Event, 100)
	w := watcher.New(root, func(e watcher.Event) { eventCh <- e })
	w.OnError(func(err error) { logger.Error("watcher error", "error", err) })
	if err := w.Start(); err != nil {
		return fmt.Errorf("starting watcher: %w", err)
	}
	defer w.Stop()

	fmt.Printf("  Watching %s for changes...\n", root)

	for {
		select {
		case ev := <-eventCh:
			fmt.Printf("\n  [%s] %s\n", ev.Kind, ev.Path)
			switch ev.Kind {
			case watcher.KindController:
				syncController(ctx, ev.Path)
			case watcher.KindView:
				if controller, ok := resolver.ResolveController(ev.Path); ok {
					syncController(ctx, controller)
				}
			case watcher.KindConfig:
				syncAll(ctx, ev.Path)
			}

		case <-ctx.Done():
			return nil
		}
	}
}

// syncController creates the missing views of controller, or lists them when
// auto-creation is off.
func syncController(ctx context.Context, controller string) {
	t := time.Now()
	created, err := resolver.EnsureViews(ctx, controller)
	if err != nil {
		logger.Warn("can't sync views", "controller", controller, "error", err)
		return
	}
	for _, p := range created {
		fmt.Printf("  created %s\n", p)
	}

	actions, err := resolver.ControllerActions(ctx, controller)
	if err != nil {
		logger.Warn("can't list actions", "controller", controller, "error", err)
		return
	}
	for _, a := range actions {
		if !a.Exists() {
			fmt.Printf("  missing %s (%s)\n", a.ViewPath(controller), a.Method)
		}
	}
	logger.Debug("synced controller", "controller", controller, "actions", len(actions), "took", time.Since(t))
}

// syncAll re-syncs every controller of the project, as a theme change in
// configFile moves every view.
func syncAll(ctx context.Context, configFile string) {
	dir, ok := resolver.ControllersDirectory(configFile)
	if !ok {
		return
	}
	filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if !d.IsDir() && resolver.IsController(path) {
			syncController(ctx, filepath.ToSlash(path))
		}
		return ctx.Err()
	})
}

func runServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           server.New(resolver, server.LogRequests(logger)),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("serving", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down: %w", err)
	}
	return nil
}
