package store

// Store is the interface for task persistence operations.
// The concrete implementation is backend/jsonfile, but commands never
// touch the backing file directly; an in-memory implementation serves
// the tests.
//
// Every read returns plain copies, never references into store-internal
// state. Every mutation is all-or-nothing and persists the full
// collection before returning; a persistence failure is returned to the
// caller while the in-memory state stays authoritative for the session.
type Store interface {
	// Add creates a task with a fresh unique id, completed=false and
	// created_at=now, appends it in insertion order and persists.
	// Returns a ValidationError for an empty title or unknown priority.
	Add(title string, priority Priority) (Task, error)

	// Update applies a partial update to the task with the given id.
	// Returns ErrNotFound if absent, a ValidationError for any supplied
	// field that fails the Add rules.
	Update(id string, fields Fields) (Task, error)

	// Delete removes the task with the given id permanently. The id is
	// never reassigned. Returns ErrNotFound if absent.
	Delete(id string) error

	// ToggleComplete flips the completed flag, stamping or clearing
	// the completion time. Returns ErrNotFound if absent.
	ToggleComplete(id string) (Task, error)

	// ClearCompleted removes every completed task and reports how many
	// were removed.
	ClearCompleted() (int, error)

	// List returns a copy of all tasks in insertion order.
	List() []Task

	// Stats returns aggregate counts over the current collection.
	Stats() Stats

	// Import adds externally supplied tasks, all-or-nothing: every
	// record must satisfy the Task invariants and no imported id may
	// collide with a live one. With replace set, the incoming records
	// replace the collection instead of appending to it. Reports the
	// number of tasks imported.
	Import(tasks []Task, replace bool) (int, error)

	// Load replaces the in-memory collection from the backing file.
	// A missing file yields an empty collection and no error; an
	// unparseable file yields a CorruptDataError.
	Load() error

	// Save rewrites the backing file with the full collection.
	Save() error
}
