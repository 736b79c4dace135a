package message

import (
	"errors"
	"fmt"
)

var (
	// ErrUnreadable indicates the template file could not be read.
	ErrUnreadable = errors.New("message template is not readable")

	// ErrInvalidFrontmatter indicates invalid YAML frontmatter.
	ErrInvalidFrontmatter = errors.New("invalid frontmatter")

	// ErrMarkdownFailed indicates markdown to HTML conversion failed.
	ErrMarkdownFailed = errors.New("failed to convert markdown")
)

// MissingFieldError reports a placeholder with no matching contact field.
type MissingFieldError struct {
	Field string // placeholder identifier as written in the template
	Email string // identifies the contact that could not be rendered
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("template field %q has no value for contact %s", e.Field, e.Email)
}
