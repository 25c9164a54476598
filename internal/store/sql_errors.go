package store

// ErrorClassification is the result type returned by [ErrorClassificator.Classify].
// It indicates whether a failed database operation should be retried or abandoned.
type ErrorClassification int

const (
	// NonRetryable indicates that the failed operation should not be retried.
	// This is the default classification for unrecognised errors, constraint
	// violations, syntax errors, and data exceptions.
	NonRetryable ErrorClassification = iota

	// Retryable indicates that the failed operation may succeed if attempted
	// again (e.g. after a transient connection loss or a deadlock rollback).
	Retryable
)

// ConstraintViolation names the integrity constraint a failed statement hit.
type ConstraintViolation int

const (
	NoViolation ConstraintViolation = iota
	UniqueViolation
	ForeignKeyViolation
)

// ErrorClassificator hides driver error types from the repositories.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
	Violation(err error) ConstraintViolation
}
