package message

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Template is a message template with optional frontmatter defaults.
type Template struct {
	Subject string // default subject, empty when frontmatter has none
	CC      string // default comma-separated CC list
	Body    string
}

// Load reads and parses a template file.
func Load(path string) (*Template, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrUnreadable, path, err)
	}
	tmpl, err := Parse(content)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return tmpl, nil
}

// Parse splits optional YAML frontmatter from the message body.
func Parse(content []byte) (*Template, error) {
	delimiter := []byte("---")

	if !bytes.HasPrefix(content, delimiter) {
		return &Template{Body: string(content)}, nil
	}

	afterFirst := bytes.TrimPrefix(content, delimiter)
	afterFirst = bytes.TrimLeft(afterFirst, "\n\r")
	if len(afterFirst) == 0 {
		return nil, fmt.Errorf("%w: no content after opening delimiter", ErrInvalidFrontmatter)
	}

	endIdx := bytes.Index(afterFirst, delimiter)
	if endIdx == -1 {
		return nil, fmt.Errorf("%w: closing delimiter not found", ErrInvalidFrontmatter)
	}

	frontmatter := afterFirst[:endIdx]
	bodyStart := endIdx + len(delimiter)
	// Skip one newline after the closing delimiter (handles both \r\n and \n)
	if bodyStart < len(afterFirst) {
		if afterFirst[bodyStart] == '\r' && bodyStart+1 < len(afterFirst) && afterFirst[bodyStart+1] == '\n' {
			bodyStart += 2
		} else if afterFirst[bodyStart] == '\n' {
			bodyStart++
		}
	}

	tmpl := &Template{Body: string(afterFirst[bodyStart:])}
	if len(bytes.TrimSpace(frontmatter)) > 0 {
		var meta struct {
			Subject string `yaml:"subject"`
			CC      string `yaml:"cc"`
		}
		if err := yaml.Unmarshal(frontmatter, &meta); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidFrontmatter, err)
		}
		tmpl.Subject = meta.Subject
		tmpl.CC = meta.CC
	}

	return tmpl, nil
}
