package elements

import (
	"bytes"
	"html/template"
	"log"
)

var imageTmpl = template.Must(template.New("image").Parse(
	`<div class="post-block post-image" style="{{.WrapperStyle}}">` +
		`<img src="{{.URL}}"{{if .SrcSet}} srcset="{{.SrcSet}}"{{end}} alt="{{.Alt}}" loading="lazy">` +
		`</div>`,
))

type imageData struct {
	WrapperStyle template.CSS
	URL          string
	SrcSet       string
	Alt          string
}

// RenderImage renders an image block with lazy loading and an optional
// responsive srcset.
func RenderImage(url, srcSet, alt string, wrapperStyle string) string {
	data := imageData{
		WrapperStyle: template.CSS(wrapperStyle),
		URL:          url,
		SrcSet:       srcSet,
		Alt:          alt,
	}

	var buf bytes.Buffer
	if err := imageTmpl.Execute(&buf, data); err != nil {
		log.Printf("ERROR: Failed to execute image template: %v", err)
		return `<!-- template error -->`
	}
	return buf.String()
}
