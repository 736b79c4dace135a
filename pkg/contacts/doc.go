// Package contacts loads recipient lists from CSV files.
//
// The first row names the fields, every following row is one contact.
// Header names are trimmed and lowercased, so "Email" and "email" refer
// to the same field. A contact is a plain string-keyed map, which keeps
// field lookup for template placeholders trivial.
//
// Basic usage:
//
//	list, err := contacts.Load("contacts.csv", log)
//	if err != nil {
//		return err
//	}
//	for _, c := range list {
//		fmt.Println(c.Name(), c.Email())
//	}
//
// Rows with a wrong column count or an empty email value are skipped
// with a warning on the provided logger; structural problems (missing
// file, empty file, no email column) fail the load.
package contacts
