// Package cli implements the command-line interface.
package cli

// Error codes for structured error responses.
// These codes are stable and can be relied upon by agents.
const (
	// Sequence errors
	ErrInvalidSeparator = "INVALID_SEPARATOR"
	ErrInvalidIncrement = "INVALID_INCREMENT"
	ErrDateParseError   = "DATE_PARSE_ERROR"
	ErrIntegerOverflow  = "INTEGER_OVERFLOW"
	ErrDateOutOfRange   = "DATE_OUT_OF_RANGE"

	// Config errors
	ErrConfigInvalid = "CONFIG_INVALID"

	// File errors
	ErrFileNotFound   = "FILE_NOT_FOUND"
	ErrFileReadError  = "FILE_READ_ERROR"
	ErrFileWriteError = "FILE_WRITE_ERROR"

	// Database errors
	ErrDatabaseError = "DATABASE_ERROR"

	// Input errors
	ErrInvalidInput    = "INVALID_INPUT"
	ErrMissingArgument = "MISSING_ARGUMENT"

	// Docs errors
	ErrDocsTopicNotFound = "DOCS_TOPIC_NOT_FOUND"

	// General errors
	ErrInternal = "INTERNAL_ERROR"
)

// Warning codes for non-fatal issues.
const (
	WarnHistoryWriteFailed = "HISTORY_WRITE_FAILED"
)
