package elements

import (
	"bytes"
	"html/template"
	"log"
)

var buttonTmpl = template.Must(template.New("button").Parse(
	`<div class="post-block post-button" style="{{.WrapperStyle}}">` +
		`<a class="post-button-link" href="{{.Href}}" style="{{.ButtonStyle}}">{{.Label}}</a>` +
		`</div>`,
))

type buttonData struct {
	WrapperStyle template.CSS
	ButtonStyle  template.CSS
	Href         string
	Label        string
}

// RenderButton renders a button block as a styled anchor.
func RenderButton(label, href string, wrapperStyle, buttonStyle string) string {
	data := buttonData{
		WrapperStyle: template.CSS(wrapperStyle),
		ButtonStyle:  template.CSS(buttonStyle),
		Href:         href,
		Label:        label,
	}

	var buf bytes.Buffer
	if err := buttonTmpl.Execute(&buf, data); err != nil {
		log.Printf("ERROR: Failed to execute button template: %v", err)
		return `<!-- template error -->`
	}
	return buf.String()
}
