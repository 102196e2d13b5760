package app

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/five82/locedit/internal/actions"
	"github.com/five82/locedit/internal/sample"
	"github.com/five82/locedit/internal/translation"
)

// Source identifies where the loaded collection came from.
type Source string

const (
	SourceNone   Source = ""
	SourceRemote Source = "remote"
	SourceSample Source = "sample"
)

// errNoSource is returned when neither a remote endpoint nor the sample
// fallback is available.
var errNoSource = errors.New("no translation source configured")

// Loader performs the one-shot startup load.
type Loader struct {
	Dispatcher actions.Dispatcher
	// Fetcher is nil when no remote endpoint is configured.
	Fetcher          actions.Fetcher
	FallbackToSample bool
	Logger           *zap.Logger
	// Sample defaults to sample.Load.
	Sample func() ([]translation.Translation, error)
}

// Bootstrap loads the collection into the store. Loading is cleared on
// return in every case. The returned error is the one recorded in the store.
func (l *Loader) Bootstrap(ctx context.Context) (Source, error) {
	d := l.Dispatcher
	d.Dispatch(actions.SetLoading(true))
	d.Dispatch(actions.ClearError())
	defer d.Dispatch(actions.SetLoading(false))

	logger := l.logger()

	var fetchErr error
	if l.Fetcher != nil {
		items, err := l.fetch(ctx)
		if err == nil {
			d.Dispatch(actions.Load(items))
			logger.Info("loaded translations", zap.String("source", string(SourceRemote)), zap.Int("count", len(items)))
			return SourceRemote, nil
		}
		fetchErr = fmt.Errorf("failed to fetch translations: %w", err)
		logger.Warn("remote load failed", zap.Error(err), zap.Bool("fallback", l.FallbackToSample))
	}

	if !l.FallbackToSample {
		if fetchErr == nil {
			fetchErr = errNoSource
		}
		d.Dispatch(actions.SetError(fetchErr))
		return SourceNone, fetchErr
	}

	loadSample := l.Sample
	if loadSample == nil {
		loadSample = sample.Load
	}
	items, err := loadSample()
	if err != nil {
		err = fmt.Errorf("load sample data: %w", err)
		logger.Error("sample fallback failed", zap.Error(err))
		d.Dispatch(actions.SetError(err))
		return SourceNone, err
	}
	d.Dispatch(actions.Load(items))
	logger.Info("loaded translations", zap.String("source", string(SourceSample)), zap.Int("count", len(items)))
	return SourceSample, nil
}

// Reload fetches the remote payload again. Without a remote endpoint it
// reports an error through the store.
func (l *Loader) Reload(ctx context.Context) error {
	if l.Fetcher == nil {
		err := errors.New("no remote endpoint configured")
		l.Dispatcher.Dispatch(actions.SetError(err))
		return err
	}
	return actions.FetchTranslations(ctx, l.Dispatcher, l.Fetcher)
}

func (l *Loader) fetch(ctx context.Context) ([]translation.Translation, error) {
	entries, err := l.Fetcher.FetchTranslations(ctx)
	if err != nil {
		return nil, err
	}
	return actions.Convert(entries)
}

func (l *Loader) logger() *zap.Logger {
	if l.Logger == nil {
		return zap.NewNop()
	}
	return l.Logger
}
