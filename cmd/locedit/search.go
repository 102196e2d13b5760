package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/five82/locedit/internal/search"
)

func newSearchCmd(flags *globalFlags) *cobra.Command {
	var (
		input         string
		fields        []string
		caseSensitive bool
		exact         bool
	)

	cmd := &cobra.Command{
		Use:   "search QUERY",
		Short: "List keys whose fields match a query",
		Long: `Search keys, base text and locale values for QUERY. Matching is a
case-insensitive substring test unless --case-sensitive or --exact is set.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			parsed, unknown := search.ParseFields(fields)
			if len(unknown) > 0 {
				return fmt.Errorf("unknown search fields: %s", strings.Join(unknown, ", "))
			}
			col, err := loadCollection(cmd.Context(), flags, input)
			if err != nil {
				return err
			}

			query := args[0]
			results := search.AdvancedSearch(col.items, query, search.Options{
				Fields:          parsed,
				CaseSensitive:   caseSensitive,
				ExactMatch:      exact,
				IncludeMetadata: true,
			})

			out := cmd.OutOrStdout()
			for _, r := range results {
				fmt.Fprintln(out, r.Translation.Key)
				for _, m := range r.Matches {
					label := string(m.Field)
					if m.Locale != "" {
						label = m.Locale
					}
					fmt.Fprintf(out, "  %-8s %s\n", label, renderMatch(m.Value, query, caseSensitive))
				}
			}
			stats := search.ComputeStats(col.items, search.Translations(results), query)
			fmt.Fprintf(cmd.ErrOrStderr(), "%d of %d keys matched (%d%%)\n", stats.Filtered, stats.Total, stats.Percentage)
			return nil
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "read the catalog from a JSON/YAML file instead of the API")
	cmd.Flags().StringSliceVar(&fields, "fields", nil, "fields to search: key, base, locales (default all)")
	cmd.Flags().BoolVar(&caseSensitive, "case-sensitive", false, "match case exactly")
	cmd.Flags().BoolVar(&exact, "exact", false, "require the whole field to equal the query")
	return cmd
}

// renderMatch brackets highlighted spans of value.
func renderMatch(value, query string, caseSensitive bool) string {
	if caseSensitive {
		return value
	}
	var b strings.Builder
	for _, s := range search.Highlight(value, query) {
		if s.Matched {
			b.WriteString("[" + s.Text + "]")
			continue
		}
		b.WriteString(s.Text)
	}
	return b.String()
}
