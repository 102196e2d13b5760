package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/five82/locedit/internal/export"
	"github.com/five82/locedit/internal/view"
)

func newExportCmd(flags *globalFlags) *cobra.Command {
	var (
		input  string
		output string
		format string
		sortBy string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the catalog as JSON or YAML",
		Long: `Load the catalog and write it as a payload file. Entries keep their
load order unless --sort is given; each entry lists base first, then the
required locales, then the rest.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := outputFormat(format, output)
			if err != nil {
				return err
			}
			col, err := loadCollection(cmd.Context(), flags, input)
			if err != nil {
				return err
			}
			items := col.items
			switch strings.ToLower(sortBy) {
			case "", "load":
			case "key":
				items = view.SortByKey(items, true)
			case "updated":
				items = view.SortByUpdated(items, false)
			default:
				return fmt.Errorf("unknown sort %q (want load, key or updated)", sortBy)
			}
			data, err := export.Encode(items, f)
			if err != nil {
				return err
			}
			return writeOutput(cmd.OutOrStdout(), output, data)
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "read the catalog from a JSON/YAML file instead of the API")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().StringVarP(&format, "format", "f", "", "json or yaml (default from output extension, else json)")
	cmd.Flags().StringVar(&sortBy, "sort", "", "load, key or updated")
	return cmd
}

func newMergeCmd(flags *globalFlags) *cobra.Command {
	var (
		input  string
		output string
		format string
	)

	cmd := &cobra.Command{
		Use:   "merge CHANGES",
		Short: "Apply a payload file of changes to the catalog",
		Long: `Merge the entries of CHANGES into the catalog and write the result.
Existing keys keep their position and have their locale values merged;
new keys are appended. Merged records are flagged as modified.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := outputFormat(format, output)
			if err != nil {
				return err
			}
			col, err := loadCollection(cmd.Context(), flags, input)
			if err != nil {
				return err
			}
			changes, err := readChanges(args[0])
			if err != nil {
				return err
			}
			merged := view.Merge(col.items, changes)
			data, err := export.Encode(merged, f)
			if err != nil {
				return err
			}
			if err := writeOutput(cmd.OutOrStdout(), output, data); err != nil {
				return err
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "merged %d changes into %d keys\n", len(changes), len(merged))
			return nil
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "read the catalog from a JSON/YAML file instead of the API")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().StringVarP(&format, "format", "f", "", "json or yaml (default from output extension, else json)")
	return cmd
}

// readChanges turns a payload file into merge changes. Only the fields an
// entry names are changed: "base" replaces the base text and every other
// field sets one locale value.
func readChanges(path string) ([]view.Change, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	entries, err := export.Decode(data, export.FormatFromPath(path))
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	modified := true
	changes := make([]view.Change, 0, len(entries))
	for _, e := range entries {
		if strings.TrimSpace(e.Key) == "" {
			return nil, fmt.Errorf("%s: entry with blank key", path)
		}
		c := view.Change{Key: e.Key, Locales: make(map[string]string, len(e.Data)), Modified: &modified}
		for field, value := range e.Data {
			if field == "base" {
				c.Base = &value
				continue
			}
			c.Locales[field] = value
		}
		changes = append(changes, c)
	}
	return changes, nil
}
