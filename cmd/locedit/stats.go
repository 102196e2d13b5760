package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/five82/locedit/internal/view"
)

// statsReport is the machine-readable stats output.
type statsReport struct {
	Source string         `yaml:"source"`
	Stats  view.Stats     `yaml:"stats"`
	Groups map[string]int `yaml:"groups,omitempty"`
}

func newStatsCmd(flags *globalFlags) *cobra.Command {
	var (
		input  string
		format string
		groups bool
	)

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show completion statistics per locale",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			col, err := loadCollection(cmd.Context(), flags, input)
			if err != nil {
				return err
			}
			report := statsReport{
				Source: col.source,
				Stats:  view.ComputeStats(col.items, col.cfg.Locales),
			}
			var groupNames []string
			if groups {
				buckets := view.GroupByFirstChar(col.items)
				groupNames = view.GroupNames(buckets)
				report.Groups = make(map[string]int, len(buckets))
				for name, items := range buckets {
					report.Groups[name] = len(items)
				}
			}

			out := cmd.OutOrStdout()
			switch strings.ToLower(format) {
			case "yaml", "yml":
				enc := yaml.NewEncoder(out)
				enc.SetIndent(2)
				if err := enc.Encode(report); err != nil {
					return fmt.Errorf("encode stats: %w", err)
				}
				return enc.Close()
			case "", "text":
			default:
				return fmt.Errorf("unknown format %q (want text or yaml)", format)
			}

			s := report.Stats
			fmt.Fprintf(out, "Source:      %s\n", report.Source)
			fmt.Fprintf(out, "Keys:        %d\n", s.Total)
			fmt.Fprintf(out, "Modified:    %d\n", s.Modified)
			fmt.Fprintf(out, "Complete:    %d\n", s.Complete)
			fmt.Fprintf(out, "Incomplete:  %d\n\n", s.Incomplete)

			rows := make([][]string, 0, len(s.Locales))
			for _, locale := range s.Locales {
				ls := s.ByLocale[locale]
				rows = append(rows, []string{
					locale,
					strconv.Itoa(ls.Complete),
					strconv.Itoa(ls.Incomplete),
					strconv.Itoa(ls.Percentage) + "%",
				})
			}
			fmt.Fprintln(out, renderTable([]string{"LOCALE", "DONE", "MISSING", "PERCENT"}, rows))

			if groups {
				rows := make([][]string, 0, len(groupNames))
				for _, name := range groupNames {
					rows = append(rows, []string{name, strconv.Itoa(report.Groups[name])})
				}
				fmt.Fprintln(out)
				fmt.Fprintln(out, renderTable([]string{"GROUP", "KEYS"}, rows))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "read the catalog from a JSON/YAML file instead of the API")
	cmd.Flags().StringVarP(&format, "format", "f", "text", "text or yaml")
	cmd.Flags().BoolVar(&groups, "groups", false, "also count keys by first letter")
	return cmd
}

// renderTable draws a plain bordered table.
func renderTable(headers []string, rows [][]string) string {
	return table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		Rows(rows...).
		Render()
}
