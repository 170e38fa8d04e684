package elements

import (
	"bytes"
	"html/template"
	"log"
)

var videoTmpl = template.Must(template.New("video").Parse(
	`<div class="post-block post-video" style="{{.WrapperStyle}}">` +
		`<div class="video-frame"><iframe src="{{.EmbedURL}}" frameborder="0" allowfullscreen loading="lazy"></iframe></div>` +
		`</div>`,
))

type videoData struct {
	WrapperStyle template.CSS
	EmbedURL     string
}

// RenderVideo renders a video block as an iframe embed. The embed URL has
// already been normalized before it reaches the document.
func RenderVideo(embedURL string, wrapperStyle string) string {
	data := videoData{
		WrapperStyle: template.CSS(wrapperStyle),
		EmbedURL:     embedURL,
	}

	var buf bytes.Buffer
	if err := videoTmpl.Execute(&buf, data); err != nil {
		log.Printf("ERROR: Failed to execute video template: %v", err)
		return `<!-- template error -->`
	}
	return buf.String()
}
