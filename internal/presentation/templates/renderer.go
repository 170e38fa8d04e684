package templates

import (
	"strings"

	"github.com/UniScopeHQ/composer-go/internal/domain/entities/editor"
	"github.com/UniScopeHQ/composer-go/internal/presentation/templates/elements"
)

// RenderBlock renders a single block to its published HTML form. Editor
// affordances (drag handles, toolbars, selection state) never appear here;
// output is what readers see.
func RenderBlock(block *editor.Block) string {
	wrapper := WrapperStyles(block.Style)
	text := TextStyles(block.Style)

	switch block.Type {
	case editor.BlockHeading:
		return elements.RenderHeading(block.Content.Text, wrapper, text)
	case editor.BlockText:
		return elements.RenderText(block.Content.Text, wrapper, text)
	case editor.BlockQuote:
		return elements.RenderQuote(block.Content.Text, wrapper, text)
	case editor.BlockCode:
		return elements.RenderCode(block.Content.Text, wrapper)
	case editor.BlockList:
		return elements.RenderList(block.Content.Items, block.Content.Ordered, wrapper, text)
	case editor.BlockImage:
		return elements.RenderImage(block.Content.URL, block.Content.SrcSet, block.Content.AltText, wrapper)
	case editor.BlockVideo:
		return elements.RenderVideo(block.Content.EmbedURL, wrapper)
	case editor.BlockButton:
		return elements.RenderButton(block.Content.Label, buttonHref(block), wrapper, buttonStyles(block.Style))
	case editor.BlockDivider:
		return elements.RenderDivider(wrapper)
	case editor.BlockSpacer:
		return elements.RenderSpacer(block.Style.SpacerHeightPx)
	case editor.BlockContainer:
		return elements.RenderContainer("", wrapper)
	default:
		return elements.RenderUnknown(string(block.Type))
	}
}

// buttonHref falls back to a dead link when no target was set.
func buttonHref(block *editor.Block) string {
	if block.Content.Href == "" {
		return "#"
	}
	return block.Content.Href
}

// buttonStyles builds the inline style for the button anchor itself, as
// opposed to its wrapper.
func buttonStyles(style editor.Style) string {
	var parts []string
	if style.BackgroundColor != "" {
		parts = append(parts, "background-color: "+style.BackgroundColor)
	}
	if style.Color != "" {
		parts = append(parts, "color: "+style.Color)
	}
	if style.FontFamily != "" {
		parts = append(parts, "font-family: "+style.FontFamily)
	}
	if css, ok := radiusTierCSS[style.BorderRadius]; ok {
		parts = append(parts, "border-radius: "+css)
	}
	return strings.Join(parts, "; ")
}
