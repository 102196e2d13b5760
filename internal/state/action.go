package state

import "github.com/five82/locedit/internal/translation"

// Kind identifies an action.
type Kind string

const (
	KindLoad              Kind = "LOAD_TRANSLATIONS"
	KindAdd               Kind = "ADD_TRANSLATION"
	KindUpdate            Kind = "UPDATE_TRANSLATION"
	KindDelete            Kind = "DELETE_TRANSLATION"
	KindSetSearchQuery    Kind = "SET_SEARCH_QUERY"
	KindSetSelectedLocale Kind = "SET_SELECTED_LOCALE"
	KindMarkModified      Kind = "MARK_MODIFIED"
	KindSaveChanges       Kind = "SAVE_CHANGES"
	KindCancelChanges     Kind = "CANCEL_CHANGES"
	KindSetLoading        Kind = "SET_LOADING"
	KindSetError          Kind = "SET_ERROR"
	KindClearError        Kind = "CLEAR_ERROR"
)

// Action is a request to change the snapshot. The concrete types in this
// package are the actions the Reducer understands; any other implementation
// is logged and ignored.
type Action interface {
	Kind() Kind
}

// Load replaces the collection wholesale.
type Load struct {
	Translations []translation.Translation
}

// Add appends a record whose key is not yet present.
type Add struct {
	Translation translation.Translation
}

// Update applies a patch to an existing record.
type Update struct {
	Key   string
	Patch translation.Patch
}

// Delete removes an existing record.
type Delete struct {
	Key string
}

// SetSearchQuery stores the raw query text.
type SetSearchQuery struct {
	Query string
}

// SetSelectedLocale changes the locale being edited.
type SetSelectedLocale struct {
	Locale string
}

// MarkModified sets a record's modified flag explicitly.
type MarkModified struct {
	Key      string
	Modified bool
}

// SaveChanges makes the current collection the new baseline.
type SaveChanges struct{}

// CancelChanges restores Original. A nil Original keeps the current values
// and only clears their modified flags.
type CancelChanges struct {
	Original []translation.Translation
}

// SetLoading toggles the loading flag.
type SetLoading struct {
	Loading bool
}

// SetError records a message for display and stops loading.
type SetError struct {
	Message string
}

// ClearError removes the current message.
type ClearError struct{}

func (Load) Kind() Kind              { return KindLoad }
func (Add) Kind() Kind               { return KindAdd }
func (Update) Kind() Kind            { return KindUpdate }
func (Delete) Kind() Kind            { return KindDelete }
func (SetSearchQuery) Kind() Kind    { return KindSetSearchQuery }
func (SetSelectedLocale) Kind() Kind { return KindSetSelectedLocale }
func (MarkModified) Kind() Kind      { return KindMarkModified }
func (SaveChanges) Kind() Kind       { return KindSaveChanges }
func (CancelChanges) Kind() Kind     { return KindCancelChanges }
func (SetLoading) Kind() Kind        { return KindSetLoading }
func (SetError) Kind() Kind          { return KindSetError }
func (ClearError) Kind() Kind        { return KindClearError }
