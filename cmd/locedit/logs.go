package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/five82/locedit/internal/config"
	"github.com/five82/locedit/internal/logging"
)

var levelStyles = map[string]lipgloss.Style{
	"debug": lipgloss.NewStyle().Foreground(lipgloss.Color("#8be9fd")),
	"info":  lipgloss.NewStyle().Foreground(lipgloss.Color("#50fa7b")),
	"warn":  lipgloss.NewStyle().Foreground(lipgloss.Color("#f1fa8c")).Bold(true),
	"error": lipgloss.NewStyle().Foreground(lipgloss.Color("#ff5555")).Bold(true),
}

func newLogsCmd(flags *globalFlags) *cobra.Command {
	var (
		lines int
		level string
		raw   bool
	)

	cmd := &cobra.Command{
		Use:   "logs",
		Short: "Show the end of the editor log file",
		Long: `Print the last lines of the log file configured with log_file.
JSON entries are shown as time, level, message and fields.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(flags.configPath)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			if cfg.LogFile == "" {
				return errors.New("no log_file configured")
			}
			tail, err := logging.Tail(cfg.LogFile, lines)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, line := range tail {
				if raw {
					fmt.Fprintln(out, line)
					continue
				}
				entry := logging.ParseEntry(line)
				if level != "" && !entry.AtLeast(level) {
					continue
				}
				fmt.Fprintln(out, formatEntry(entry))
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&lines, "lines", "n", 200, "number of lines to read from the end of the file")
	cmd.Flags().StringVar(&level, "level", "", "hide entries below this level")
	cmd.Flags().BoolVar(&raw, "raw", false, "print lines unchanged")
	return cmd
}

func formatEntry(e logging.Entry) string {
	if e.Level == "" {
		return e.Message
	}
	lvl := strings.ToUpper(e.Level)
	if style, ok := levelStyles[e.Level]; ok {
		lvl = style.Render(lvl)
	}
	parts := []string{e.Time, lvl, e.Message}
	if fields := e.FieldString(); fields != "" {
		parts = append(parts, fields)
	}
	return strings.Join(parts, " ")
}
