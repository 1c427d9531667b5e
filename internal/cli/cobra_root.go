package cli

import (
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"homogebra/internal/common/fsutil"
	"homogebra/internal/config"
)

// Command actions. Tests replace them to observe how flags are wired.
var (
	fnServe = serve
	fnDemo  = demo
)

// buildRootCmdWith constructs the command tree wired to the fn* actions.
func buildRootCmdWith(opts *Options, stdout io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:           "homogebra",
		Short:         "Dynamic geometry scene of points, lines and conics",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&opts.ConfigPath, "config", "", "Config file (.yaml, .json or .toml); defaults to ./homogebra.{yaml,toml,json}")
	root.PersistentFlags().StringVar(&opts.LogLevel, "log-level", "", "Log level: debug|info|warn|error (defaults HOMOGEBRA_LOG_LEVEL or info)")

	serveCmd := &cobra.Command{
		Use:     "serve",
		Short:   "Serve the scene over HTTP",
		Example: "  homogebra serve --addr :8080\n  homogebra serve --config ./homogebra.yaml",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(opts)
			if err != nil {
				return err
			}
			log, err := newLogger(cfg.LogLevel, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return fnServe(ctx, cfg, log)
		},
	}
	serveCmd.Flags().StringVar(&opts.Addr, "addr", "", "HTTP listen address, e.g. :8080 (defaults HOMOGEBRA_ADDR or :8080)")

	demoCmd := &cobra.Command{
		Use:   "demo",
		Short: "Build a small construction, move and destroy its base, print the events",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(opts)
			if err != nil {
				return err
			}
			log, err := newLogger(cfg.LogLevel, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			return fnDemo(cmd.Context(), cfg, log, stdout)
		},
	}

	completionCmd := &cobra.Command{Use: "completion", Short: "Generate the autocompletion script for the specified shell"}
	completionCmd.AddCommand(&cobra.Command{Use: "bash", Short: "Bash completion", RunE: func(cmd *cobra.Command, args []string) error { return root.GenBashCompletion(stdout) }})
	completionCmd.AddCommand(&cobra.Command{Use: "zsh", Short: "Zsh completion", RunE: func(cmd *cobra.Command, args []string) error { return root.GenZshCompletion(stdout) }})
	completionCmd.AddCommand(&cobra.Command{Use: "fish", Short: "Fish completion", RunE: func(cmd *cobra.Command, args []string) error { return root.GenFishCompletion(stdout, true) }})

	root.AddCommand(serveCmd, demoCmd, completionCmd)
	return root
}

// resolveConfig loads the config file named by --config, or the first
// default file that exists, then applies flag overrides.
func resolveConfig(opts *Options) (config.Config, error) {
	path := opts.ConfigPath
	if path == "" {
		path, _ = fsutil.FirstExisting(defaultConfigPaths...)
	}
	cfg, err := config.Resolve(path)
	if err != nil {
		return config.Config{}, err
	}
	if opts.Addr != "" {
		cfg.Addr = opts.Addr
	}
	if opts.LogLevel != "" {
		cfg.LogLevel = opts.LogLevel
	}
	return cfg, nil
}
