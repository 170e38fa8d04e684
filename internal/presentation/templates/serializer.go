package templates

import (
	"strings"

	"github.com/UniScopeHQ/composer-go/internal/domain/entities/editor"
)

// RenderDocument serializes a document snapshot to the HTML body submitted
// at publish time. Blocks render in document order inside a single article
// wrapper; an empty document yields an empty article.
func RenderDocument(snapshot *editor.Snapshot) string {
	var html strings.Builder
	html.WriteString(`<article class="post-body">`)
	for _, block := range snapshot.Blocks {
		html.WriteString(RenderBlock(block))
	}
	html.WriteString(`</article>`)
	return html.String()
}

// PlainText extracts the readable text of a snapshot, used for read time
// estimation and excerpt fallback. List items join with spaces; non-text
// blocks contribute nothing.
func PlainText(snapshot *editor.Snapshot) string {
	var parts []string
	for _, block := range snapshot.Blocks {
		switch block.Type {
		case editor.BlockHeading, editor.BlockText, editor.BlockQuote, editor.BlockCode:
			if block.Content.Text != "" {
				parts = append(parts, block.Content.Text)
			}
		case editor.BlockList:
			if len(block.Content.Items) > 0 {
				parts = append(parts, strings.Join(block.Content.Items, " "))
			}
		case editor.BlockButton:
			if block.Content.Label != "" {
				parts = append(parts, block.Content.Label)
			}
		}
	}
	return strings.Join(parts, " ")
}
