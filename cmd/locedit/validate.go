package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/five82/locedit/internal/translation"
	"github.com/five82/locedit/internal/view"
)

func newValidateCmd(flags *globalFlags) *cobra.Command {
	var (
		input  string
		strict bool
	)

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check records for structural problems and missing locales",
		Long: `Validate every record and report invalid or duplicated keys. Keys
missing a required locale are listed; with --strict they fail the run.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			col, err := loadCollection(cmd.Context(), flags, input)
			if err != nil {
				return err
			}
			report := view.ValidateAll(col.items)
			incomplete := view.FindIncomplete(col.items, col.cfg.RequiredLocales)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%d valid, %d invalid, %d duplicate, %d incomplete\n",
				len(report.Valid), len(report.Invalid), len(report.Duplicates), len(incomplete))

			var problems [][]string
			for _, f := range report.Invalid {
				problems = append(problems, []string{strconv.Itoa(f.Index), f.Key, f.Reason})
			}
			for _, f := range report.Duplicates {
				problems = append(problems, []string{strconv.Itoa(f.Index), f.Key, f.Reason})
			}
			for _, t := range incomplete {
				var missing []string
				for _, locale := range col.cfg.RequiredLocales {
					if !translation.HasLocale(t, locale) {
						missing = append(missing, locale)
					}
				}
				problems = append(problems, []string{"", t.Key, "missing " + strings.Join(missing, ", ")})
			}
			if len(problems) > 0 {
				fmt.Fprintln(out, renderTable([]string{"INDEX", "KEY", "PROBLEM"}, problems))
			}

			if !report.OK() {
				return fmt.Errorf("validation failed: %d invalid, %d duplicate", len(report.Invalid), len(report.Duplicates))
			}
			if strict && len(incomplete) > 0 {
				return fmt.Errorf("validation failed: %d keys missing required locales", len(incomplete))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "read the catalog from a JSON/YAML file instead of the API")
	cmd.Flags().BoolVar(&strict, "strict", false, "fail when a required locale is missing")
	return cmd
}
