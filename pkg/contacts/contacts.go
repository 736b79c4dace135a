package contacts

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Contact maps lowercased field names to values for a single recipient.
type Contact map[string]string

// Email returns the contact's email address.
func (c Contact) Email() string { return c["email"] }

// Name returns the contact's display name, or the email address when
// the contacts file has no name column.
func (c Contact) Name() string {
	if name := c["name"]; name != "" {
		return name
	}
	return c.Email()
}

// Field looks up a field value by name, case-insensitively.
func (c Contact) Field(name string) (string, bool) {
	v, ok := c[strings.ToLower(name)]
	return v, ok
}

// Load reads contacts from a CSV file, preserving row order.
//
// Malformed rows (wrong column count, unparsable quoting) and rows with
// an empty email value are skipped with a warning; everything else is
// returned as-is. The logger must not be nil.
func Load(path string, log *slog.Logger) ([]Contact, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrUnreadable, path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // column count is validated per row below

	header, err := r.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: %s", ErrEmptyFile, path)
		}
		return nil, fmt.Errorf("%w: %s: %v", ErrUnreadable, path, err)
	}

	fields := make([]string, len(header))
	hasEmail := false
	for i, name := range header {
		fields[i] = strings.ToLower(strings.TrimSpace(name))
		if fields[i] == "email" {
			hasEmail = true
		}
	}
	if !hasEmail {
		return nil, fmt.Errorf("%w: %s: header is %q", ErrNoEmailColumn, path, header)
	}

	var list []Contact
	for row := 1; ; row++ {
		record, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				log.Warn("skipping malformed row", "file", path, "row", row, "err", err)
				continue
			}
			return nil, fmt.Errorf("%w: %s: %v", ErrUnreadable, path, err)
		}
		if len(record) != len(fields) {
			log.Warn("skipping row with wrong column count",
				"file", path, "row", row, "columns", len(record), "want", len(fields))
			continue
		}

		c := make(Contact, len(fields))
		for i, name := range fields {
			c[name] = record[i]
		}
		if c.Email() == "" {
			log.Warn("skipping row without email", "file", path, "row", row)
			continue
		}
		list = append(list, c)
	}

	return list, nil
}
