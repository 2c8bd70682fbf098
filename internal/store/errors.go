package store

import "errors"

// Sentinel errors returned by repository methods. Callers match them with
// [errors.Is].
var (
	// ErrResultNotFound is returned when no history entry has the requested id.
	ErrResultNotFound = errors.New("classified result was not found")

	// ErrInvalidHistoryFile is returned when an imported history file is not a
	// JSON array of history entries.
	ErrInvalidHistoryFile = errors.New("invalid history file")
)

// Low-level database operation errors.
var (
	ErrBuildingSQLQuery = errors.New("error building sql query")

	ErrExecutingQuery = errors.New("error executing sql query")

	ErrBeginningTransaction = errors.New("failed to begin transaction")

	ErrCommitingTransaction = errors.New("failed to commit transaction")

	ErrExecutingStatement = errors.New("failed to executing statement")

	ErrScanningRow = errors.New("failed to scan history row")

	ErrScanningRows = errors.New("failed to scan history rows")
)
