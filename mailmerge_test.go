package mailmerge_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/mailmerge"
	"github.com/dmitrymomot/mailmerge/pkg/message"
)

type fixture struct {
	dir      string
	contacts string
	message  string
	output   string
}

func newFixture(t *testing.T, contactsCSV, messageBody string) fixture {
	t.Helper()
	dir := t.TempDir()
	f := fixture{
		dir:      dir,
		contacts: filepath.Join(dir, "contacts.csv"),
		message:  filepath.Join(dir, "message.txt"),
		output:   filepath.Join(dir, "out.html"),
	}
	require.NoError(t, os.WriteFile(f.contacts, []byte(contactsCSV), 0o644))
	require.NoError(t, os.WriteFile(f.message, []byte(messageBody), 0o644))
	return f
}

func (f fixture) read(t *testing.T) string {
	t.Helper()
	content, err := os.ReadFile(f.output)
	require.NoError(t, err)
	return string(content)
}

func TestRun(t *testing.T) {
	t.Parallel()

	f := newFixture(t,
		"name,email\nJohn Doe,john@example.com\nJane Smith,jane@example.com\n",
		"Hello {{name}}, this is a test.")

	err := mailmerge.Run(mailmerge.Config{
		ContactsPath: f.contacts,
		MessagePath:  f.message,
		Subject:      "Greetings",
		OutputPath:   f.output,
	}, nil)
	require.NoError(t, err)

	page := f.read(t)
	assert.Equal(t, 2, strings.Count(page, `<a href="mailto:`))
	assert.Contains(t, page,
		`href="mailto:john@example.com?subject=Greetings&body=Hello%20John%20Doe%2C%20this%20is%20a%20test."`)
	assert.Contains(t, page,
		`href="mailto:jane@example.com?subject=Greetings&body=Hello%20Jane%20Smith%2C%20this%20is%20a%20test."`)
}

func TestRun_WithCC(t *testing.T) {
	t.Parallel()

	f := newFixture(t,
		"name,email\nJohn,john@example.com\nJane,jane@example.com\n",
		"Hi {{name}}")

	err := mailmerge.Run(mailmerge.Config{
		ContactsPath: f.contacts,
		MessagePath:  f.message,
		Subject:      "Greetings",
		OutputPath:   f.output,
		CC:           "cc@example.com",
	}, nil)
	require.NoError(t, err)

	page := f.read(t)
	assert.Equal(t, 2, strings.Count(page, "&cc=cc%40example.com"))
}

func TestRun_FrontmatterDefaults(t *testing.T) {
	t.Parallel()

	f := newFixture(t,
		"name,email\nJohn,john@example.com\n",
		"---\nsubject: From frontmatter\ncc: team@example.com\n---\nHi {{name}}")

	err := mailmerge.Run(mailmerge.Config{
		ContactsPath: f.contacts,
		MessagePath:  f.message,
		OutputPath:   f.output,
	}, nil)
	require.NoError(t, err)

	page := f.read(t)
	assert.Contains(t, page, "subject=From%20frontmatter")
	assert.Contains(t, page, "&cc=team%40example.com")
}

func TestRun_ConfigOverridesFrontmatter(t *testing.T) {
	t.Parallel()

	f := newFixture(t,
		"name,email\nJohn,john@example.com\n",
		"---\nsubject: From frontmatter\n---\nHi {{name}}")

	err := mailmerge.Run(mailmerge.Config{
		ContactsPath: f.contacts,
		MessagePath:  f.message,
		Subject:      "From flag",
		OutputPath:   f.output,
	}, nil)
	require.NoError(t, err)

	page := f.read(t)
	assert.Contains(t, page, "subject=From%20flag")
	assert.NotContains(t, page, "From%20frontmatter")
}

func TestRun_SubjectPlaceholders(t *testing.T) {
	t.Parallel()

	f := newFixture(t,
		"name,email\nJohn,john@example.com\n",
		"Hi {{name}}")

	err := mailmerge.Run(mailmerge.Config{
		ContactsPath: f.contacts,
		MessagePath:  f.message,
		Subject:      "Hello {{name}}",
		OutputPath:   f.output,
	}, nil)
	require.NoError(t, err)

	assert.Contains(t, f.read(t), "subject=Hello%20John")
}

func TestRun_HTMLBody(t *testing.T) {
	t.Parallel()

	f := newFixture(t,
		"name,email\nJohn,john@example.com\n",
		"Hello **{{name}}**")

	err := mailmerge.Run(mailmerge.Config{
		ContactsPath: f.contacts,
		MessagePath:  f.message,
		Subject:      "Greetings",
		OutputPath:   f.output,
		HTMLBody:     true,
	}, nil)
	require.NoError(t, err)

	page := f.read(t)
	// <p>Hello <strong>John</strong></p> percent-encoded under html-body
	assert.Contains(t, page, "&html-body=%3Cp%3EHello%20%3Cstrong%3EJohn%3C%2Fstrong%3E%3C%2Fp%3E")
	assert.NotContains(t, page, "&body=")
}

func TestRun_ZeroContacts(t *testing.T) {
	t.Parallel()

	f := newFixture(t, "name,email\n", "Hi {{name}}")

	err := mailmerge.Run(mailmerge.Config{
		ContactsPath: f.contacts,
		MessagePath:  f.message,
		Subject:      "Greetings",
		OutputPath:   f.output,
	}, nil)
	require.NoError(t, err)

	page := f.read(t)
	assert.NotContains(t, page, "<li")
}

func TestRun_MissingContactsFile(t *testing.T) {
	t.Parallel()

	f := newFixture(t, "unused", "Hi {{name}}")
	require.NoError(t, os.Remove(f.contacts))

	err := mailmerge.Run(mailmerge.Config{
		ContactsPath: f.contacts,
		MessagePath:  f.message,
		Subject:      "Greetings",
		OutputPath:   f.output,
	}, nil)
	require.Error(t, err)

	_, statErr := os.Stat(f.output)
	require.True(t, os.IsNotExist(statErr), "no output must be written on fatal errors")
}

func TestRun_MissingFieldAbortsBeforeOutput(t *testing.T) {
	t.Parallel()

	f := newFixture(t,
		"name,email\nJohn,john@example.com\nJane,jane@example.com\n",
		"{{name}} works at {{company}}.")

	err := mailmerge.Run(mailmerge.Config{
		ContactsPath: f.contacts,
		MessagePath:  f.message,
		Subject:      "Greetings",
		OutputPath:   f.output,
	}, nil)
	require.Error(t, err)

	var missing *message.MissingFieldError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "company", missing.Field)
	assert.Equal(t, "john@example.com", missing.Email)

	_, statErr := os.Stat(f.output)
	require.True(t, os.IsNotExist(statErr), "no output must be written on fatal errors")
}

func TestRun_MissingRequiredConfig(t *testing.T) {
	t.Parallel()

	f := newFixture(t, "name,email\nJohn,john@example.com\n", "Hi {{name}}")

	err := mailmerge.Run(mailmerge.Config{MessagePath: f.message, Subject: "Hi"}, nil)
	require.ErrorIs(t, err, mailmerge.ErrNoContactsPath)

	err = mailmerge.Run(mailmerge.Config{ContactsPath: f.contacts, Subject: "Hi"}, nil)
	require.ErrorIs(t, err, mailmerge.ErrNoMessagePath)

	err = mailmerge.Run(mailmerge.Config{
		ContactsPath: f.contacts,
		MessagePath:  f.message,
	}, nil)
	require.ErrorIs(t, err, mailmerge.ErrNoSubject)
}
