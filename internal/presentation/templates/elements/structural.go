package elements

import (
	"bytes"
	"html/template"
	"log"
)

var structuralTmpls = template.Must(template.New("structural").Parse(
	`{{define "divider"}}<div class="post-block post-divider" style="{{.WrapperStyle}}"><hr></div>{{end}}` +
		`{{define "spacer"}}<div class="post-block post-spacer" style="height: {{.HeightPx}}px"></div>{{end}}` +
		`{{define "container"}}<div class="post-block post-container" style="{{.WrapperStyle}}">{{.Inner}}</div>{{end}}`,
))

type structuralData struct {
	WrapperStyle template.CSS
	HeightPx     int
	Inner        template.HTML
}

// RenderDivider renders a horizontal rule block.
func RenderDivider(wrapperStyle string) string {
	return execStructural("divider", structuralData{WrapperStyle: template.CSS(wrapperStyle)})
}

// RenderSpacer renders a fixed-height vertical gap.
func RenderSpacer(heightPx int) string {
	if heightPx <= 0 {
		heightPx = 40
	}
	return execStructural("spacer", structuralData{HeightPx: heightPx})
}

// RenderContainer renders a container block around already-rendered inner
// markup.
func RenderContainer(inner string, wrapperStyle string) string {
	return execStructural("container", structuralData{
		WrapperStyle: template.CSS(wrapperStyle),
		Inner:        template.HTML(inner),
	})
}

func execStructural(name string, data structuralData) string {
	var buf bytes.Buffer
	if err := structuralTmpls.ExecuteTemplate(&buf, name, data); err != nil {
		log.Printf("ERROR: Failed to execute %s template: %v", name, err)
		return `<!-- template error -->`
	}
	return buf.String()
}
