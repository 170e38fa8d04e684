package elements

import (
	"bytes"
	"html/template"
	"log"
)

var codeTmpl = template.Must(template.New("code").Parse(
	`<div class="post-block post-code" style="{{.WrapperStyle}}"><pre><code>{{.Text}}</code></pre></div>`,
))

type codeData struct {
	WrapperStyle template.CSS
	Text         string
}

// RenderCode renders a code block. The source text is escaped verbatim;
// text styling controls do not apply inside the pre element.
func RenderCode(text string, wrapperStyle string) string {
	data := codeData{
		WrapperStyle: template.CSS(wrapperStyle),
		Text:         text,
	}

	var buf bytes.Buffer
	if err := codeTmpl.Execute(&buf, data); err != nil {
		log.Printf("ERROR: Failed to execute code template: %v", err)
		return `<!-- template error -->`
	}
	return buf.String()
}
