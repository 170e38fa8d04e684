package elements

import (
	"bytes"
	"html/template"
	"log"
)

var quoteTmpl = template.Must(template.New("quote").Parse(
	`<div class="post-block post-quote" style="{{.WrapperStyle}}"><blockquote style="{{.TextStyle}}">{{.Text}}</blockquote></div>`,
))

type quoteData struct {
	WrapperStyle template.CSS
	TextStyle    template.CSS
	Text         string
}

// RenderQuote renders a blockquote block.
func RenderQuote(text string, wrapperStyle, textStyle string) string {
	data := quoteData{
		WrapperStyle: template.CSS(wrapperStyle),
		TextStyle:    template.CSS(textStyle),
		Text:         text,
	}

	var buf bytes.Buffer
	if err := quoteTmpl.Execute(&buf, data); err != nil {
		log.Printf("ERROR: Failed to execute quote template: %v", err)
		return `<!-- template error -->`
	}
	return buf.String()
}
