package report

import (
	"bytes"
	"fmt"
	"html"
	"io"
	"os"
	"strings"
	"text/template"
)

// Entry is one contact's line in the report.
type Entry struct {
	Name  string // visible label
	Email string // anchor text
	Href  string // fully encoded mailto URI
}

type pageData struct {
	Title string
	Items []item
}

type item struct {
	ID    string
	Name  string
	Email string
	Href  string
}

// The page is assembled with text/template on purpose: hrefs come in
// fully percent-encoded and must land in the document byte for byte
// (html/template would rewrite "&" to "&amp;" inside them). Names and
// emails are HTML-escaped explicitly when the view data is built.
var page = template.Must(template.New("report").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
.clicked { text-decoration: line-through; color: #666; }
.mailto-item { margin: 10px 0; }
</style>
<script>
function markClicked(element) {
  element.classList.add('clicked');
  const clickedLinks = JSON.parse(localStorage.getItem('clickedMailtoLinks') || '[]');
  const linkId = element.getAttribute('data-link-id');
  if (!clickedLinks.includes(linkId)) {
    clickedLinks.push(linkId);
    localStorage.setItem('clickedMailtoLinks', JSON.stringify(clickedLinks));
  }
}

function restoreClickedState() {
  const clickedLinks = JSON.parse(localStorage.getItem('clickedMailtoLinks') || '[]');
  clickedLinks.forEach(linkId => {
    const element = document.querySelector(` + "`[data-link-id='${linkId}']`" + `);
    if (element) {
      element.classList.add('clicked');
    }
  });
}

window.onload = restoreClickedState;
</script>
</head>
<body>
<h1>{{.Title}}</h1>
<ul>
{{- range .Items}}
<li class="mailto-item" data-link-id="{{.ID}}" onclick="markClicked(this)">{{.Name}}: <a href="{{.Href}}">{{.Email}}</a></li>
{{- end}}
</ul>
</body>
</html>
`))

var idMangler = strings.NewReplacer("@", "-at-", ".", "-dot-")

// linkID derives a stable id for localStorage click state. It must not
// change between runs for the same list, so it is built from the row
// index and email rather than anything random.
func linkID(index int, email string) string {
	return fmt.Sprintf("mailto-%d-%s", index, idMangler.Replace(email))
}

// Render writes the report page for the given entries to w.
func Render(w io.Writer, title string, entries []Entry) error {
	data := pageData{
		Title: html.EscapeString(title),
		Items: make([]item, len(entries)),
	}
	for i, e := range entries {
		data.Items[i] = item{
			ID:    linkID(i, e.Email),
			Name:  html.EscapeString(e.Name),
			Email: html.EscapeString(e.Email),
			Href:  e.Href,
		}
	}
	return page.Execute(w, data)
}

// Write renders the report and writes it to path, overwriting any
// existing file. The page is rendered into memory first so a render
// failure never leaves a truncated file behind.
func Write(path, title string, entries []Entry) error {
	var buf bytes.Buffer
	if err := Render(&buf, title, entries); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrNotWritable, path, err)
	}
	return nil
}
