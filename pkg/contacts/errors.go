package contacts

import "errors"

var (
	// ErrUnreadable indicates the contacts file could not be opened or read.
	ErrUnreadable = errors.New("contacts file is not readable")

	// ErrEmptyFile indicates the contacts file has no header row.
	ErrEmptyFile = errors.New("contacts file is empty")

	// ErrNoEmailColumn indicates the header row lacks an email column.
	ErrNoEmailColumn = errors.New("contacts file has no email column")
)
