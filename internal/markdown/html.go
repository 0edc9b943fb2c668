package markdown

import (
	"bytes"
	"html/template"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

var htmlRenderer = goldmark.New(goldmark.WithExtensions(extension.GFM))

// ToHTML renders markdown content to HTML. Raw HTML in the input is not passed through.
func ToHTML(content string) template.HTML {
	var buffer bytes.Buffer
	if err := htmlRenderer.Convert([]byte(content), &buffer); err != nil {
		return template.HTML(template.HTMLEscapeString(content))
	}
	return template.HTML(buffer.String())
}
