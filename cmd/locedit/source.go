package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/five82/locedit/internal/actions"
	"github.com/five82/locedit/internal/app"
	"github.com/five82/locedit/internal/config"
	"github.com/five82/locedit/internal/export"
	"github.com/five82/locedit/internal/logging"
	"github.com/five82/locedit/internal/state"
	"github.com/five82/locedit/internal/translation"
)

// collection is a loaded catalog plus the settings that describe it.
type collection struct {
	items  []translation.Translation
	source string
	cfg    config.Config
}

// loadCollection reads the catalog from input when set, otherwise through
// the same remote-then-sample path the editor uses.
func loadCollection(ctx context.Context, flags *globalFlags, input string) (collection, error) {
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return collection{}, fmt.Errorf("load config: %w", err)
	}

	if strings.TrimSpace(input) != "" {
		items, err := readPayloadFile(input)
		if err != nil {
			return collection{}, err
		}
		return collection{items: items, source: input, cfg: cfg}, nil
	}

	logger, err := logging.Stderr("warn")
	if err != nil {
		return collection{}, fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	store := state.NewStore(state.Reducer{Logger: logger})
	loader, err := app.NewLoader(cfg, store, logger)
	if err != nil {
		return collection{}, err
	}
	src, err := loader.Bootstrap(ctx)
	if err != nil {
		return collection{}, err
	}
	return collection{items: store.Snapshot().Translations, source: string(src), cfg: cfg}, nil
}

// readPayloadFile decodes a JSON or YAML payload file, chosen by extension.
func readPayloadFile(path string) ([]translation.Translation, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	entries, err := export.Decode(data, export.FormatFromPath(path))
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	items, err := actions.Convert(entries)
	if err != nil {
		return nil, fmt.Errorf("convert %s: %w", path, err)
	}
	return items, nil
}

// writeOutput writes data to path, or to stdout for "" and "-".
func writeOutput(stdout io.Writer, path string, data []byte) error {
	if path == "" || path == "-" {
		_, err := stdout.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// outputFormat resolves --format, falling back to the output extension.
func outputFormat(flag, path string) (export.Format, error) {
	if strings.TrimSpace(flag) != "" {
		return export.ParseFormat(flag)
	}
	if path == "" || path == "-" {
		return export.FormatJSON, nil
	}
	return export.FormatFromPath(path), nil
}
