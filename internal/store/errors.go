package store

import "errors"

// Sentinel errors returned by storage methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrCacheMiss is returned when a partition holds no entry for the
	// requested key.
	ErrCacheMiss = errors.New("cache miss")

	// ErrSlotNotFound is returned when a key-value slot has never been
	// written or was deleted.
	ErrSlotNotFound = errors.New("slot not found")

	// ErrPartitionNotFound is returned when an operation targets a cache
	// partition that does not exist.
	ErrPartitionNotFound = errors.New("cache partition not found")
)

// Low-level database operation errors. These are returned (or wrapped) by
// storage methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
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

	// ErrScanningRow is returned when scanning column values from a single
	// result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails.
	ErrScanningRows = errors.New("failed to scan rows")

	// ErrEncodingPayload is returned when a cached payload cannot be
	// compressed or its headers cannot be encoded.
	ErrEncodingPayload = errors.New("failed to encode cached payload")

	// ErrDecodingPayload is returned when a stored payload cannot be
	// decompressed or its headers cannot be decoded.
	ErrDecodingPayload = errors.New("failed to decode cached payload")
)
