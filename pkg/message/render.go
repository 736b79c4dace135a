package message

import (
	"strings"

	"github.com/dmitrymomot/mailmerge/pkg/contacts"
)

// Render substitutes the template body's placeholders with the
// contact's field values.
func (t *Template) Render(c contacts.Contact) (string, error) {
	return Render(t.Body, c)
}

// Render replaces every {{field}} placeholder in s with the contact's
// value for that field. Substitution is one left-to-right pass over s;
// substituted values are never re-scanned, so a value containing "{{"
// comes through literally. A placeholder with no matching field returns
// *MissingFieldError.
func Render(s string, c contacts.Contact) (string, error) {
	var out strings.Builder
	out.Grow(len(s))

	for {
		start := strings.Index(s, "{{")
		if start == -1 {
			break
		}
		end := strings.Index(s[start+2:], "}}")
		if end == -1 {
			break
		}

		field := strings.TrimSpace(s[start+2 : start+2+end])
		value, ok := c.Field(field)
		if !ok {
			return "", &MissingFieldError{Field: field, Email: c.Email()}
		}

		out.WriteString(s[:start])
		out.WriteString(value)
		s = s[start+2+end+2:]
	}
	out.WriteString(s)

	return out.String(), nil
}
