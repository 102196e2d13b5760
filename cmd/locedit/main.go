// locedit is a terminal editor for key-based translation catalogs.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/five82/locedit/internal/app"
	"github.com/five82/locedit/internal/config"
)

// Version information (set via -ldflags during build)
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// globalFlags are shared by every subcommand.
type globalFlags struct {
	configPath string
	prefsPath  string
	envFile    string
}

func newRootCmd() *cobra.Command {
	flags := &globalFlags{}

	root := &cobra.Command{
		Use:   "locedit",
		Short: "Edit translation catalogs in the terminal",
		Long: `locedit loads a key-based translation catalog from a remote endpoint
(or the built-in sample set) and opens a grid editor for browsing,
searching and editing per-locale values.

Run without a subcommand to start the editor.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return config.LoadDotEnv(flags.envFile)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer cancel()
			return app.Run(ctx, app.Options{
				ConfigPath: flags.configPath,
				PrefsPath:  flags.prefsPath,
				EnvFile:    flags.envFile,
			})
		},
	}

	root.PersistentFlags().StringVar(&flags.configPath, "config", "", "config file (default ~/.config/locedit/config.toml)")
	root.PersistentFlags().StringVar(&flags.prefsPath, "prefs", "", "preferences file (default ~/.config/locedit/prefs.toml)")
	root.PersistentFlags().StringVar(&flags.envFile, "env-file", "", "dotenv file with LOCEDIT_* overrides (default ./.env)")

	root.AddCommand(
		newExportCmd(flags),
		newMergeCmd(flags),
		newStatsCmd(flags),
		newSearchCmd(flags),
		newValidateCmd(flags),
		newLogsCmd(flags),
		newVersionCmd(),
	)

	return root
}

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "locedit: %v\n", err)
		os.Exit(1)
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "locedit version %s\n", version)
			fmt.Fprintf(out, "  commit:    %s\n", commit)
			fmt.Fprintf(out, "  built:     %s\n", date)
		},
	}
}
