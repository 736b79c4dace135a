// Package message loads and renders mail merge templates.
//
// A template is a UTF-8 text file with {{field}} placeholders that are
// filled from a contact's fields. It may open with a YAML frontmatter
// block providing subject and CC defaults:
//
//	---
//	subject: Quarterly update
//	cc: team@example.com
//	---
//	Hello {{name}},
//
//	This quarter we shipped...
//
// Rendering is a single left-to-right pass: a substituted value is
// never re-scanned for placeholders, and placeholder lookup is
// case-insensitive ({{Name}} and {{name}} resolve to the same field).
// A placeholder without a matching field fails with *MissingFieldError.
//
// ToHTML converts a rendered body from markdown to a sanitized HTML
// fragment for clients that accept HTML mailto bodies.
package message
