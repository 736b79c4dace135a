package mailmerge

import (
	"log/slog"
	"os"
	"strings"

	"github.com/dmitrymomot/mailmerge/pkg/contacts"
	"github.com/dmitrymomot/mailmerge/pkg/logger"
	"github.com/dmitrymomot/mailmerge/pkg/mailto"
	"github.com/dmitrymomot/mailmerge/pkg/message"
	"github.com/dmitrymomot/mailmerge/pkg/report"
)

// Config holds the parameters for one mail merge run.
type Config struct {
	ContactsPath string // CSV file with at least an email column (required)
	MessagePath  string // message template file (required)
	OutputPath   string // report destination; empty writes to stdout
	Subject      string // subject line; falls back to template frontmatter
	CC           string // comma-separated CC addresses; falls back to frontmatter
	HTMLBody     bool   // render the message as markdown to an HTML body
}

// Validate reports the first missing required parameter. Subject is
// checked during Run because the template frontmatter may supply it.
func (cfg Config) Validate() error {
	if cfg.ContactsPath == "" {
		return ErrNoContactsPath
	}
	if cfg.MessagePath == "" {
		return ErrNoMessagePath
	}
	return nil
}

// Run executes the whole pipeline: load the template and contacts,
// render a message and build a mailto link per contact, write the
// report. Fatal errors surface before the output path is touched.
func Run(cfg Config, log *slog.Logger) error {
	if log == nil {
		log = logger.NewNope()
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	tmpl, err := message.Load(cfg.MessagePath)
	if err != nil {
		return err
	}

	subject := cfg.Subject
	if subject == "" {
		subject = tmpl.Subject
	}
	if subject == "" {
		return ErrNoSubject
	}

	cc := cfg.CC
	if cc == "" {
		cc = tmpl.CC
	}
	cc = normalizeCC(cc)

	list, err := contacts.Load(cfg.ContactsPath, log)
	if err != nil {
		return err
	}
	if len(list) == 0 {
		log.Warn("contacts file has no usable rows, writing an empty report",
			"file", cfg.ContactsPath)
	}

	entries := make([]report.Entry, 0, len(list))
	for _, c := range list {
		body, err := tmpl.Render(c)
		if err != nil {
			return err
		}
		if cfg.HTMLBody {
			if body, err = message.ToHTML(body); err != nil {
				return err
			}
		}

		// Subject lines support the same placeholders as the body.
		contactSubject, err := message.Render(subject, c)
		if err != nil {
			return err
		}

		href, err := mailto.Build(c.Email(), mailto.Params{
			Subject: contactSubject,
			Body:    body,
			CC:      cc,
			HTML:    cfg.HTMLBody,
		})
		if err != nil {
			return err
		}

		entries = append(entries, report.Entry{
			Name:  c.Name(),
			Email: c.Email(),
			Href:  href,
		})
	}

	title := "Mail merge: " + subject
	if cfg.OutputPath == "" {
		return report.Render(os.Stdout, title, entries)
	}
	if err := report.Write(cfg.OutputPath, title, entries); err != nil {
		return err
	}

	log.Info("report written", "file", cfg.OutputPath, "links", len(entries))
	return nil
}

// normalizeCC trims whitespace around the comma-separated addresses and
// drops empty items, so " a@x.com, b@y.com ," becomes "a@x.com,b@y.com".
func normalizeCC(cc string) string {
	if cc == "" {
		return ""
	}
	parts := strings.Split(cc, ",")
	cleaned := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			cleaned = append(cleaned, p)
		}
	}
	return strings.Join(cleaned, ",")
}
