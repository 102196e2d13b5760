package actions

import (
	"context"
	"fmt"

	"github.com/five82/locedit/internal/translation"
)

// Fetcher reads the inbound translation payload. *remote.Client implements it.
type Fetcher interface {
	FetchTranslations(ctx context.Context) ([]translation.APIEntry, error)
}

// KeyedPatch pairs a record key with the patch to apply to it.
type KeyedPatch struct {
	Key   string
	Patch translation.Patch
}

// BatchUpdate dispatches one Update per entry in order. The first invalid
// entry is reported through SetError and the remaining entries are skipped;
// updates already dispatched stay applied. Loading is cleared on return in
// every case.
func BatchUpdate(d Dispatcher, updates []KeyedPatch) error {
	d.Dispatch(SetLoading(true))
	d.Dispatch(ClearError())
	defer d.Dispatch(SetLoading(false))

	for _, u := range updates {
		a, err := Update(u.Key, u.Patch)
		if err != nil {
			d.Dispatch(SetError(err))
			return err
		}
		d.Dispatch(a)
	}
	return nil
}

// FetchTranslations loads the collection from f. On success the converted
// records are dispatched as a Load; on failure the reason is dispatched as
// an error. Loading is cleared last in both cases.
func FetchTranslations(ctx context.Context, d Dispatcher, f Fetcher) error {
	d.Dispatch(SetLoading(true))
	d.Dispatch(ClearError())
	defer d.Dispatch(SetLoading(false))

	items, err := fetchRecords(ctx, f)
	if err != nil {
		err = fmt.Errorf("failed to fetch translations: %w", err)
		d.Dispatch(SetError(err))
		return err
	}
	d.Dispatch(Load(items))
	return nil
}

func fetchRecords(ctx context.Context, f Fetcher) ([]translation.Translation, error) {
	entries, err := f.FetchTranslations(ctx)
	if err != nil {
		return nil, err
	}
	return Convert(entries)
}

// Convert turns payload entries into records, preserving their order.
func Convert(entries []translation.APIEntry) ([]translation.Translation, error) {
	items := make([]translation.Translation, 0, len(entries))
	for _, e := range entries {
		t, err := translation.FromAPIData(e.Key, e.Data)
		if err != nil {
			return nil, fmt.Errorf("convert %q: %w", e.Key, err)
		}
		items = append(items, t)
	}
	return items, nil
}
