package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUsernameAlreadyExists is returned when registering a user fails
	// because the username is already taken.
	ErrUsernameAlreadyExists = errors.New("username already exists")

	// ErrEmailAlreadyExists is returned when registering a user fails because
	// the email is already taken.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrUserNotFound is returned when a query expected to match a user record
	// produces an empty result set.
	ErrUserNotFound = errors.New("no user was found")

	// ErrNoteNotFound is returned when a query or mutation targets a note
	// (identified by id and user_id) that does not exist. Ownership misses
	// surface as this error too, so non-owners cannot probe for existence.
	ErrNoteNotFound = errors.New("note was not found")

	// ErrTranslationAlreadyApplied is returned when the conditional
	// mark-translated write finds the note already translated. This is the
	// compare-and-swap miss that lets a concurrent second caller short-circuit
	// instead of overwriting the first caller's result.
	ErrTranslationAlreadyApplied = errors.New("note is already translated")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. no columns to update).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// database fails for a reason with no domain mapping.
	ErrExecutingQuery = errors.New("error executing sql query")
)
