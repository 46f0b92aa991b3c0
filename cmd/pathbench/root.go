package main

import (
	"io"
	"log/slog"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/pathbench/config"
	"github.com/katalvlaran/pathbench/logging"
)

const serviceName = "pathbench"

// globals holds the persistent flags shared by every subcommand.
type globals struct {
	configPath string
	logLevel   string
	logJSON    bool
}

func newRootCmd() *cobra.Command {
	g := &globals{}
	root := &cobra.Command{
		Use:   "pathbench",
		Short: "Benchmark grid path-finding algorithms",
		Long: `pathbench generates obstacle maps, runs Dijkstra, A*, Greedy best-first and
bidirectional search over them, and compares the results statistically.

Settings come from an optional YAML file (--config); flags override it.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&g.configPath, "config", "c", "", "experiment file (YAML)")
	root.PersistentFlags().StringVar(&g.logLevel, "log-level", "", "debug, info, warn or error")
	root.PersistentFlags().BoolVar(&g.logJSON, "log-json", false, "log one JSON object per line")

	root.AddCommand(
		newRunCmd(g),
		newAnalyzeCmd(g),
		newReplayCmd(g),
		newGenCmd(),
		newConfigCmd(g),
	)
	return root
}

// load resolves the effective configuration and a logger writing to the
// command's stderr.
func (g *globals) load(cmd *cobra.Command) (config.Config, *slog.Logger, error) {
	cfg := config.Default()
	if g.configPath != "" {
		var err error
		if cfg, err = config.Load(g.configPath); err != nil {
			return config.Config{}, nil, err
		}
	}
	if cmd.Flags().Changed("log-level") {
		lvl, err := logging.ParseLevel(g.logLevel)
		if err != nil {
			return config.Config{}, nil, err
		}
		cfg.Log.Level = lvl
	}
	if cmd.Flags().Changed("log-json") {
		cfg.Log.JSON = g.logJSON
	}
	cfg.Log.Writer = cmd.ErrOrStderr()
	cfg.Log.Service = serviceName
	return cfg, logging.New(cfg.Log), nil
}

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
