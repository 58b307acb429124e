package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rafbgarcia/mvcpath"
	"github.com/rafbgarcia/mvcpath/internal/config"
)

// errNotFound makes the process exit with status 1 without printing usage.
var errNotFound = errors.New("not found")

var (
	projectDir string
	cfg        *config.Config
	logger     *mvcpath.Logger
	resolver   *mvcpath.Resolver
)

var rootCmd = &cobra.Command{
	Use:           "mvcpath",
	Short:         "Navigate between Yii controllers and views",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(projectDir)
		if err != nil {
			return err
		}
		logger = mvcpath.NewLogger(os.Stderr, mvcpath.ParseLevel(cfg.LogLevel))
		resolver = mvcpath.FromConfig(cfg, logger)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&projectDir, "dir", "C", ".", "directory holding .mvcpath.yaml and .env")
	rootCmd.AddCommand(viewCmd, controllerCmd, actionsCmd, themeCmd, moduleCmd, dirsCmd, includePathCmd, watchCmd, serveCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errNotFound) {
			fmt.Fprintf(os.Stderr, "error: %s\n", err)
		}
		os.Exit(1)
	}
}
