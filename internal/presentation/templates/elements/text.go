package elements

import (
	"bytes"
	"html/template"
	"log"
	"strings"
)

var textTmpl = template.Must(template.New("text").Parse(
	`<div class="post-block post-text" style="{{.WrapperStyle}}"><p style="{{.TextStyle}}">{{.Body}}</p></div>`,
))

type textData struct {
	WrapperStyle template.CSS
	TextStyle    template.CSS
	Body         template.HTML
}

// RenderText renders a paragraph block. Line breaks in the source text
// become <br> tags; everything else is escaped.
func RenderText(text string, wrapperStyle, textStyle string) string {
	lines := strings.Split(text, "\n")
	escaped := make([]string, len(lines))
	for i, line := range lines {
		escaped[i] = template.HTMLEscapeString(line)
	}

	data := textData{
		WrapperStyle: template.CSS(wrapperStyle),
		TextStyle:    template.CSS(textStyle),
		Body:         template.HTML(strings.Join(escaped, "<br>")),
	}

	var buf bytes.Buffer
	if err := textTmpl.Execute(&buf, data); err != nil {
		log.Printf("ERROR: Failed to execute text template: %v", err)
		return `<!-- template error -->`
	}
	return buf.String()
}
