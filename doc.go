// Package mailmerge turns a CSV contact list and a message template
// into an HTML page of pre-filled mailto links.
//
// The pipeline is a single synchronous pass: load the template, load
// the contacts, render the message per contact, build a mailto URI per
// contact, and write one report page. Nothing is persisted between
// runs and no email is ever sent; the output page is meant to be opened
// in a browser, where each link hands a pre-filled draft to the local
// mail client.
//
//	err := mailmerge.Run(mailmerge.Config{
//		ContactsPath: "contacts.csv",
//		MessagePath:  "message.md",
//		Subject:      "Greetings",
//		OutputPath:   "links.html",
//	}, logger.New(slog.LevelInfo))
//
// Subject and CC may also come from the template's YAML frontmatter;
// explicit Config values win. Subject lines support the same {{field}}
// placeholders as the message body.
package mailmerge
