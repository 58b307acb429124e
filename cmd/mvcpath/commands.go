package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/rafbgarcia/mvcpath/internal/project"
)

var viewCmd = &cobra.Command{
	Use:   "view <controller-file> <action-method>",
	Short: "Print the view rendered by a controller action",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		view, ok := resolver.ResolveView(cmd.Context(), absPath(args[0]), args[1])
		return printFound(view, ok)
	},
}

var controllerCmd = &cobra.Command{
	Use:   "controller <view-file>",
	Short: "Print the controller that renders a view",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		controller, ok := resolver.ResolveController(absPath(args[0]))
		return printFound(controller, ok)
	},
}

var actionsCmd = &cobra.Command{
	Use:   "actions <controller-file>",
	Short: "List the actions of a controller and their views",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		actions, err := resolver.ControllerActions(cmd.Context(), absPath(args[0]))
		if err != nil {
			return err
		}
		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(actions)
		}

		tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		for _, a := range actions {
			state := "ok"
			if !a.Exists() {
				state = "missing"
			}
			fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", a.Line, a.Method, a.RelativePath, state)
		}
		return tw.Flush()
	},
}

var themeCmd = &cobra.Command{
	Use:   "theme <file>",
	Short: "Print the theme configured in protected/config/main.php",
	Long: "Print the theme configured for the project the file belongs to. " +
		"Nothing is printed when the project has no theme.",
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		configFile, ok := resolver.ConfigFile(absPath(args[0]))
		if !ok {
			return errNotFound
		}
		if theme := resolver.ThemeName(cmd.Context(), configFile); theme != "" {
			fmt.Println(theme)
		}
		return nil
	},
}

var moduleCmd = &cobra.Command{
	Use:   "module <file>",
	Short: "Print the module a file belongs to and its directory",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		file := absPath(args[0])
		name, ok := resolver.ModuleName(file)
		if !ok {
			return errNotFound
		}
		dir, _ := resolver.CurrentModuleDirectory(file)
		fmt.Printf("%s\t%s\n", name, dir)
		return nil
	},
}

var dirsCmd = &cobra.Command{
	Use:   "dirs <file>",
	Short: "Print the standard directories of the project a file belongs to",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		file := absPath(args[0])
		dirs := []struct {
			name string
			find func(string) (string, bool)
		}{
			{"views", resolver.ViewsDirectory},
			{"controllers", resolver.ControllersDirectory},
			{"models", resolver.ModelsDirectory},
			{"tests", resolver.TestsDirectory},
			{"themes", resolver.ThemesDirectory},
		}

		tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		found := false
		for _, d := range dirs {
			if p, ok := d.find(file); ok {
				fmt.Fprintf(tw, "%s\t%s\n", d.name, p)
				found = true
			}
		}
		if err := tw.Flush(); err != nil {
			return err
		}
		if !found {
			return errNotFound
		}
		return nil
	},
}

var includePathCmd = &cobra.Command{
	Use:   "include-path <index.php>",
	Short: "Print the framework directory an entry script bootstraps from",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		paths, err := project.IncludePath(args[0])
		if err != nil {
			return err
		}
		if len(paths) == 0 {
			return errNotFound
		}
		for _, p := range paths {
			fmt.Println(p)
		}
		return nil
	},
}

func init() {
	actionsCmd.Flags().Bool("json", false, "print actions as JSON")
}

// printFound prints path, or reports errNotFound.
func printFound(path string, ok bool) error {
	if !ok {
		return errNotFound
	}
	fmt.Println(path)
	return nil
}

// absPath makes a command-line path absolute so webroot detection works from
// any working directory.
func absPath(p string) string {
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return p
}
