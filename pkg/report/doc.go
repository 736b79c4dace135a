// Package report renders the mail merge result page.
//
// The page lists one entry per contact: the contact's name followed by
// a mailto anchor. Clicking an entry strikes it through and records the
// click in localStorage under a deterministic per-link id, so reopening
// or regenerating the page keeps already-contacted entries marked.
package report
