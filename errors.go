package mailmerge

import "errors"

var (
	// ErrNoContactsPath indicates the contacts file path is missing.
	ErrNoContactsPath = errors.New("contacts file path is required")

	// ErrNoMessagePath indicates the message template path is missing.
	ErrNoMessagePath = errors.New("message template path is required")

	// ErrNoSubject indicates no subject was given on the command line
	// or in the template frontmatter.
	ErrNoSubject = errors.New("subject is required")
)
