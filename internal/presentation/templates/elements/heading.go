// Package elements provides per-block-type HTML renderers. Each renderer
// executes a pre-parsed html/template so block content is escaped on the
// way into markup.
package elements

import (
	"bytes"
	"html/template"
	"log"
)

var headingTmpl = template.Must(template.New("heading").Parse(
	`<div class="post-block post-heading" style="{{.WrapperStyle}}"><h2 style="{{.TextStyle}}">{{.Text}}</h2></div>`,
))

type headingData struct {
	WrapperStyle template.CSS
	TextStyle    template.CSS
	Text         string
}

// RenderHeading renders a heading block as an h2 inside its wrapper.
func RenderHeading(text string, wrapperStyle, textStyle string) string {
	data := headingData{
		WrapperStyle: template.CSS(wrapperStyle),
		TextStyle:    template.CSS(textStyle),
		Text:         text,
	}

	var buf bytes.Buffer
	if err := headingTmpl.Execute(&buf, data); err != nil {
		log.Printf("ERROR: Failed to execute heading template: %v", err)
		return `<!-- template error -->`
	}
	return buf.String()
}
