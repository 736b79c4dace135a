package message

import (
	"bytes"
	"fmt"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
)

var (
	md       goldmark.Markdown
	policy   *bluemonday.Policy
	initOnce sync.Once
)

func setup() {
	initOnce.Do(func() {
		md = goldmark.New()

		// Formatting tags that mail clients render; everything else
		// (scripts, event handlers, javascript: URLs) is stripped.
		policy = bluemonday.NewPolicy()
		policy.AllowStandardURLs()
		policy.AllowElements(
			"p", "br", "hr",
			"h1", "h2", "h3", "h4", "h5", "h6",
			"strong", "b", "em", "i",
			"ul", "ol", "li",
			"code", "pre", "blockquote",
		)
		policy.AllowAttrs("href").OnElements("a")
	})
}

// ToHTML converts a rendered markdown body to a sanitized HTML fragment.
// Newlines between adjacent tags are dropped to keep the resulting
// mailto URI short.
func ToHTML(s string) (string, error) {
	setup()

	var buf bytes.Buffer
	if err := md.Convert([]byte(s), &buf); err != nil {
		return "", fmt.Errorf("%w: %v", ErrMarkdownFailed, err)
	}

	html := policy.Sanitize(buf.String())
	return strings.ReplaceAll(html, ">\n<", "><"), nil
}
