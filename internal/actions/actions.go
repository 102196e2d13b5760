// Package actions builds validated state actions and runs the flows that
// dispatch several of them in sequence.
//
// Creators check their own arguments and return an error wrapping
// translation.ErrInvalidArgument for a blank key or locale. The reducer
// performs its own checks as well; creators catch caller mistakes before an
// action is ever dispatched.
package actions

import (
	"fmt"
	"strings"

	"github.com/five82/locedit/internal/state"
	"github.com/five82/locedit/internal/translation"
)

// Dispatcher accepts actions. *state.Store implements it.
type Dispatcher interface {
	Dispatch(state.Action)
}

var _ Dispatcher = (*state.Store)(nil)

// Load replaces the collection.
func Load(items []translation.Translation) state.Load {
	return state.Load{Translations: items}
}

// Add appends t. It fails for a record that does not validate.
func Add(t translation.Translation) (state.Add, error) {
	if !translation.Validate(t) {
		return state.Add{}, fmt.Errorf("%w: invalid translation object", translation.ErrInvalidArgument)
	}
	return state.Add{Translation: t}, nil
}

// CreateAndAdd builds a new record flagged as modified and wraps it in an Add.
func CreateAndAdd(key, base string, locales map[string]string) (state.Add, error) {
	if err := requireKey(key); err != nil {
		return state.Add{}, err
	}
	return Add(translation.New(key, base, locales, true, 0, 0))
}

// Update applies patch to the record with key.
func Update(key string, patch translation.Patch) (state.Update, error) {
	if err := requireKey(key); err != nil {
		return state.Update{}, err
	}
	return state.Update{Key: key, Patch: patch}, nil
}

// UpdateTranslationLocale sets a single locale value and flags the record as
// modified. Other locale values are kept.
func UpdateTranslationLocale(key, locale, value string) (state.Update, error) {
	if err := requireKey(key); err != nil {
		return state.Update{}, err
	}
	if err := requireLocale(locale); err != nil {
		return state.Update{}, err
	}
	modified := true
	return state.Update{Key: key, Patch: translation.Patch{
		LocaleValues: map[string]string{locale: value},
		Modified:     &modified,
	}}, nil
}

// Delete removes the record with key.
func Delete(key string) (state.Delete, error) {
	if err := requireKey(key); err != nil {
		return state.Delete{}, err
	}
	return state.Delete{Key: key}, nil
}

// SetSearchQuery stores query as typed.
func SetSearchQuery(query string) state.SetSearchQuery {
	return state.SetSearchQuery{Query: query}
}

// SetSelectedLocale changes the edited locale.
func SetSelectedLocale(locale string) (state.SetSelectedLocale, error) {
	if err := requireLocale(locale); err != nil {
		return state.SetSelectedLocale{}, err
	}
	return state.SetSelectedLocale{Locale: locale}, nil
}

// MarkModified sets the modified flag on the record with key.
func MarkModified(key string, modified bool) (state.MarkModified, error) {
	if err := requireKey(key); err != nil {
		return state.MarkModified{}, err
	}
	return state.MarkModified{Key: key, Modified: modified}, nil
}

func SaveChanges() state.SaveChanges { return state.SaveChanges{} }

// CancelChanges restores original. Passing nil cancels nothing.
func CancelChanges(original []translation.Translation) state.CancelChanges {
	return state.CancelChanges{Original: original}
}

func SetLoading(loading bool) state.SetLoading { return state.SetLoading{Loading: loading} }

// SetError records err's message; a nil err records "Unknown error".
func SetError(err error) state.SetError {
	if err == nil {
		return state.SetError{Message: "Unknown error"}
	}
	return state.SetError{Message: err.Error()}
}

func ClearError() state.ClearError { return state.ClearError{} }

func requireKey(key string) error {
	if strings.TrimSpace(key) == "" {
		return fmt.Errorf("%w: translation key is required", translation.ErrInvalidArgument)
	}
	return nil
}

func requireLocale(locale string) error {
	if strings.TrimSpace(locale) == "" {
		return fmt.Errorf("%w: locale is required", translation.ErrInvalidArgument)
	}
	return nil
}
