package elements

import (
	"bytes"
	"html/template"
	"log"
)

var listTmpl = template.Must(template.New("list").Parse(
	`<div class="post-block post-list" style="{{.WrapperStyle}}">` +
		`{{if .Ordered}}<ol style="{{.TextStyle}}">{{range .Items}}<li>{{.}}</li>{{end}}</ol>` +
		`{{else}}<ul style="{{.TextStyle}}">{{range .Items}}<li>{{.}}</li>{{end}}</ul>{{end}}</div>`,
))

type listData struct {
	WrapperStyle template.CSS
	TextStyle    template.CSS
	Ordered      bool
	Items        []string
}

// RenderList renders an ordered or unordered list block, one li per item.
func RenderList(items []string, ordered bool, wrapperStyle, textStyle string) string {
	data := listData{
		WrapperStyle: template.CSS(wrapperStyle),
		TextStyle:    template.CSS(textStyle),
		Ordered:      ordered,
		Items:        items,
	}

	var buf bytes.Buffer
	if err := listTmpl.Execute(&buf, data); err != nil {
		log.Printf("ERROR: Failed to execute list template: %v", err)
		return `<!-- template error -->`
	}
	return buf.String()
}
