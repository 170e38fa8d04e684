package templates

import (
	"strings"
	"testing"

	"github.com/UniScopeHQ/composer-go/internal/domain/entities/editor"
)

func TestRenderHeadingCentered(t *testing.T) {
	block := editor.NewBlock(editor.BlockHeading,
		editor.Content{Text: "Hello"},
		editor.Style{WidthPercent: 60, TextAlign: "center", Color: "#222222"})

	html := RenderBlock(block)
	for _, want := range []string{
		"<h2", ">Hello</h2>",
		"width: 60%",
		"margin-left: auto", "margin-right: auto",
		"text-align: center", "color: #222222",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("heading html missing %q:\n%s", want, html)
		}
	}
}

func TestRenderHeadingEscapesContent(t *testing.T) {
	block := editor.NewBlock(editor.BlockHeading,
		editor.Content{Text: `<script>alert("x")</script>`}, editor.DefaultStyle())

	html := RenderBlock(block)
	if strings.Contains(html, "<script>") {
		t.Errorf("content must be escaped:\n%s", html)
	}
}

func TestRenderTextPreservesLineBreaks(t *testing.T) {
	block := editor.NewBlock(editor.BlockText,
		editor.Content{Text: "line one\nline two"}, editor.DefaultStyle())

	html := RenderBlock(block)
	if !strings.Contains(html, "line one<br>line two") {
		t.Errorf("expected <br> between lines:\n%s", html)
	}
}

func TestRenderImageWithSrcSet(t *testing.T) {
	block := editor.NewBlock(editor.BlockImage, editor.Content{
		URL:     "/media/uploads/x.png",
		SrcSet:  "/media/uploads/x_600px.webp 600w",
		AltText: "campus",
	}, editor.Style{WidthPercent: 100, BorderRadius: "medium", Shadow: "light"})

	html := RenderBlock(block)
	for _, want := range []string{
		`src="/media/uploads/x.png"`,
		`srcset="/media/uploads/x_600px.webp 600w"`,
		`alt="campus"`, `loading="lazy"`,
		"border-radius: 8px", "box-shadow:",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("image html missing %q:\n%s", want, html)
		}
	}
}

func TestRenderListOrderedVsBulleted(t *testing.T) {
	items := []string{"first", "second"}
	ordered := editor.NewBlock(editor.BlockList,
		editor.Content{Items: items, Ordered: true}, editor.DefaultStyle())
	bulleted := editor.NewBlock(editor.BlockList,
		editor.Content{Items: items}, editor.DefaultStyle())

	if html := RenderBlock(ordered); !strings.Contains(html, "<ol") || strings.Count(html, "<li>") != 2 {
		t.Errorf("ordered list html:\n%s", html)
	}
	if html := RenderBlock(bulleted); !strings.Contains(html, "<ul") {
		t.Errorf("bulleted list html:\n%s", html)
	}
}

func TestRenderVideoEmbeds(t *testing.T) {
	block := editor.NewBlock(editor.BlockVideo,
		editor.Content{EmbedURL: "https://www.youtube.com/embed/XYZ123"}, editor.DefaultStyle())

	html := RenderBlock(block)
	if !strings.Contains(html, `<iframe src="https://www.youtube.com/embed/XYZ123"`) {
		t.Errorf("video html:\n%s", html)
	}
}

func TestRenderButtonDefaultsHref(t *testing.T) {
	block := editor.NewBlock(editor.BlockButton,
		editor.Content{Label: "Apply Now"},
		editor.Style{WidthPercent: 100, BackgroundColor: "#0055ff", Alignment: editor.AlignLeft})

	html := RenderBlock(block)
	for _, want := range []string{`href="#"`, "Apply Now", "background-color: #0055ff", "margin-left: 0"} {
		if !strings.Contains(html, want) {
			t.Errorf("button html missing %q:\n%s", want, html)
		}
	}
}

func TestRenderSpacerAndDivider(t *testing.T) {
	spacer := editor.NewBlock(editor.BlockSpacer, editor.Content{}, editor.Style{SpacerHeightPx: 80})
	if html := RenderBlock(spacer); !strings.Contains(html, "height: 80px") {
		t.Errorf("spacer html:\n%s", html)
	}

	zero := editor.NewBlock(editor.BlockSpacer, editor.Content{}, editor.DefaultStyle())
	if html := RenderBlock(zero); !strings.Contains(html, "height: 40px") {
		t.Errorf("spacer should fall back to its default height:\n%s", html)
	}

	divider := editor.NewBlock(editor.BlockDivider, editor.Content{}, editor.DefaultStyle())
	if html := RenderBlock(divider); !strings.Contains(html, "<hr>") {
		t.Errorf("divider html:\n%s", html)
	}
}

func TestRenderUnknownTypeFallsBack(t *testing.T) {
	block := editor.NewBlock(editor.BlockType("widget"), editor.Content{}, editor.DefaultStyle())
	if html := RenderBlock(block); !strings.Contains(html, "unsupported block") {
		t.Errorf("unknown type should render a placeholder comment:\n%s", html)
	}
}

func TestRenderDocumentOrderAndEmpty(t *testing.T) {
	doc := editor.NewDocument()
	doc.Insert(editor.BlockHeading, editor.Content{Text: "First"}, editor.DefaultStyle(), -1)
	doc.Insert(editor.BlockText, editor.Content{Text: "Second"}, editor.DefaultStyle(), -1)

	html := RenderDocument(doc.Snapshot())
	if !strings.HasPrefix(html, `<article class="post-body">`) || !strings.HasSuffix(html, "</article>") {
		t.Errorf("document wrapper:\n%s", html)
	}
	if strings.Index(html, "First") > strings.Index(html, "Second") {
		t.Error("blocks must render in document order")
	}

	empty := RenderDocument(editor.NewDocument().Snapshot())
	if empty != `<article class="post-body"></article>` {
		t.Errorf("empty document html: %s", empty)
	}
}

func TestPlainTextSkipsNonText(t *testing.T) {
	doc := editor.NewDocument()
	doc.Insert(editor.BlockHeading, editor.Content{Text: "Title"}, editor.DefaultStyle(), -1)
	doc.Insert(editor.BlockImage, editor.Content{URL: "x"}, editor.DefaultStyle(), -1)
	doc.Insert(editor.BlockList, editor.Content{Items: []string{"a", "b"}}, editor.DefaultStyle(), -1)

	got := PlainText(doc.Snapshot())
	if got != "Title a b" {
		t.Errorf("PlainText = %q", got)
	}
}
