package main

import (
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"
	apppkg "github.com/kk-code-lab/rtree/internal/app"
	"github.com/kk-code-lab/rtree/internal/config"
	"github.com/kk-code-lab/rtree/internal/logging"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var version = "dev"

type rootFlags struct {
	configFile string
	logFile    string
	logLevel   string
	maxDepth   int
	printCwd   bool
}

func main() {
	// Fall back to UTF-8 so non-ASCII names render on minimal terminals.
	tcell.SetEncodingFallback(tcell.EncodingFallbackUTF8)

	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	rootCmd := &cobra.Command{
		Use:   "rtree [PATH]",
		Short: "Terminal file browser with a foldable directory tree",
		Long: `rtree shows the parent directory, the current directory as a foldable
tree and a preview of the selected entry side by side.

Press ? inside rtree for the key bindings.`,
		Version:       version,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			start := ""
			if len(args) == 1 {
				start = args[0]
			}
			return runBrowser(cmd, flags, start)
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flags.configFile, "config", "", "config file (default $XDG_CONFIG_HOME/rtree/config.yaml)")
	pf.StringVar(&flags.logFile, "log-file", "", "append logs to this file")
	pf.StringVar(&flags.logLevel, "log-level", "", "log level: debug, info, warn or error")

	rootCmd.Flags().IntVar(&flags.maxDepth, "max-depth", 0, "limit recursive listings to this many levels (0 = unlimited)")
	rootCmd.Flags().BoolVar(&flags.printCwd, "print-cwd", false, "print the last visited directory on exit")

	rootCmd.AddCommand(newConfigCmd(flags))
	rootCmd.AddCommand(newShellCmd())

	return rootCmd
}

// loadConfig applies flags that were set explicitly on top of file and
// environment settings.
func loadConfig(cmd *cobra.Command, flags *rootFlags) (*config.Config, error) {
	overrides := map[string]any{}
	if cmd.Flags().Changed("log-file") {
		overrides["log_file"] = flags.logFile
	}
	if cmd.Flags().Changed("log-level") {
		overrides["log_level"] = flags.logLevel
	}
	if cmd.Flags().Changed("max-depth") {
		overrides["max_depth"] = flags.maxDepth
	}

	return config.Load(config.Options{File: flags.configFile, Overrides: overrides})
}

func runBrowser(cmd *cobra.Command, flags *rootFlags, start string) error {
	cfg, err := loadConfig(cmd, flags)
	if err != nil {
		return err
	}

	log, closer, err := logging.New(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return err
	}
	defer func() {
		_ = closer.Close()
	}()

	app, err := apppkg.NewApplication(apppkg.Options{
		StartPath: start,
		Config:    cfg,
		Logger:    log,
	})
	if err != nil {
		return errors.Wrap(err, "initialise rtree")
	}
	defer app.Close()

	app.Run()

	if flags.printCwd {
		fmt.Fprintln(cmd.OutOrStdout(), app.CurrentPath())
	}
	return nil
}
