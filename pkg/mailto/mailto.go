package mailto

import "strings"

// Params contains the query parameters for a mailto link.
type Params struct {
	Subject string
	Body    string
	CC      string // comma-separated addresses, omitted when empty
	HTML    bool   // body carries HTML; sent under the html-body key
}

// Build assembles a mailto URI for the recipient. Subject and body are
// always present in the query string; cc only when non-empty. With
// Params.HTML the body is sent as html-body, a convention Thunderbird
// and some other clients understand.
func Build(recipient string, params Params) (string, error) {
	if strings.TrimSpace(recipient) == "" {
		return "", ErrNoRecipient
	}

	bodyKey := "body"
	if params.HTML {
		bodyKey = "html-body"
	}

	var b strings.Builder
	b.WriteString("mailto:")
	b.WriteString(recipient)
	b.WriteString("?subject=")
	b.WriteString(Escape(params.Subject))
	b.WriteString("&")
	b.WriteString(bodyKey)
	b.WriteString("=")
	b.WriteString(Escape(params.Body))
	if params.CC != "" {
		b.WriteString("&cc=")
		b.WriteString(Escape(params.CC))
	}

	return b.String(), nil
}

const upperhex = "0123456789ABCDEF"

// Escape percent-encodes every byte outside the RFC 3986 unreserved
// set. Unlike net/url's query encoding it never emits "+" for spaces,
// which mail clients do not decode.
func Escape(s string) string {
	escaped := 0
	for i := 0; i < len(s); i++ {
		if !isUnreserved(s[i]) {
			escaped++
		}
	}
	if escaped == 0 {
		return s
	}

	var b strings.Builder
	b.Grow(len(s) + 2*escaped)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isUnreserved(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(upperhex[c>>4])
		b.WriteByte(upperhex[c&0xF])
	}
	return b.String()
}

func isUnreserved(c byte) bool {
	return 'a' <= c && c <= 'z' ||
		'A' <= c && c <= 'Z' ||
		'0' <= c && c <= '9' ||
		c == '-' || c == '.' || c == '_' || c == '~'
}
