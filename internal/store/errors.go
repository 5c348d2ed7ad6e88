package store

import "errors"

var (
	// ErrChangeNotSaved is returned when an insert into the change queue
	// completes without persisting a row.
	ErrChangeNotSaved = errors.New("case change was not saved")

	// ErrDuplicateChange is returned when a change with the same sync uuid
	// is already queued.
	ErrDuplicateChange = errors.New("case change already queued")
)

// In-memory case authority errors.
var (
	ErrNoCaseWasFound     = errors.New("no case was found")
	ErrNoFlagWasFound     = errors.New("no flag was found")
	ErrNoFavoriteWasFound = errors.New("no favorite was found")
	ErrNoWorkTypeWasFound = errors.New("no work type was found")

	// ErrIdempotencyKeyReused is returned when a core push repeats an
	// idempotency key with a different body.
	ErrIdempotencyKeyReused = errors.New("idempotency key reused with a different request")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning during multi-row iteration
	// fails.
	ErrScanningRows = errors.New("failed to scan rows")
)
