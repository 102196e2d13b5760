// Package state holds the editor's translation collection and applies
// changes to it through actions.
//
// # Overview
//
// Every change to the collection, the search query, the selected locale or
// the loading and error flags goes through Store.Dispatch. The store hands
// the action to a Reducer, which computes the next Snapshot without touching
// the previous one, and then notifies subscribers.
//
//	caller ──Dispatch(action)──→ Store ──Reduce(prev, action)──→ next
//	                               │
//	                               └──→ subscribers(next)
//
// # Actions
//
// Actions are small structs implementing Action. The Reducer switches on the
// concrete type:
//
//	Load              replace the collection; every record becomes unmodified
//	Add               append a record; the key must be new
//	Update            apply a translation.Patch to an existing record
//	Delete            remove an existing record
//	SetSearchQuery    store the raw query text
//	SetSelectedLocale change the edited locale; blank is rejected
//	MarkModified      set a record's modified flag
//	SaveChanges       clear every modified flag
//	CancelChanges     restore a prior collection (nil leaves it alone)
//	SetLoading        toggle the loading flag
//	SetError          record a message and stop loading
//	ClearError        drop the message
//
// An Action type the Reducer does not know is logged at warn level and
// returns the snapshot unchanged.
//
// # Failures
//
// Domain failures (duplicate key on Add, unknown key on Update, Delete or
// MarkModified, blank locale) never panic and never return an error. The
// Reducer sets Snapshot.Error and leaves the rest of the snapshot exactly as
// it was. A later successful action clears the message.
//
// # Modified index
//
// Snapshot.ModifiedKeys is maintained alongside the collection so the UI can
// count and list pending edits without scanning. After every action it holds
// exactly the keys whose record has Modified set. CheckModifiedIndex verifies
// this and is used by the tests after every transition.
//
// # Concurrency
//
// Store guards the snapshot with a sync.RWMutex. Snapshot() returns a deep
// copy, and each subscriber receives its own copy, so callers may keep or
// modify what they receive. Subscribers are invoked after the lock is
// released, which allows a subscriber to read the store again.
//
// The zero Store is usable and starts from InitialSnapshot:
//
//	var s state.Store
//	s.Dispatch(state.Load{Translations: records})
//	snap := s.Snapshot()
package state
