// Package templates renders composer blocks to publishable HTML.
package templates

import (
	"fmt"
	"strings"

	"github.com/UniScopeHQ/composer-go/internal/domain/entities/editor"
)

// radiusTierCSS maps border radius tier names to CSS values.
var radiusTierCSS = map[string]string{
	"small":  "4px",
	"medium": "8px",
	"large":  "16px",
	"circle": "50%",
}

// shadowTierCSS maps shadow tier names to box-shadow values.
var shadowTierCSS = map[string]string{
	"light":  "0 1px 3px rgba(0,0,0,0.12)",
	"medium": "0 4px 6px rgba(0,0,0,0.16)",
	"strong": "0 10px 25px rgba(0,0,0,0.25)",
}

// WrapperStyles builds the inline style string for a block's wrapper div
// from its dimension settings. Width below 100 centers via auto margins
// unless an explicit alignment overrides it.
func WrapperStyles(style editor.Style) string {
	var parts []string

	if style.WidthPercent > 0 && style.WidthPercent < 100 {
		parts = append(parts, fmt.Sprintf("width: %d%%", style.WidthPercent))
	}

	left, right := style.SideMargins()
	if left != "" {
		parts = append(parts, "margin-left: "+left)
	}
	if right != "" {
		parts = append(parts, "margin-right: "+right)
	}
	if style.VerticalMarginPx > 0 {
		parts = append(parts,
			fmt.Sprintf("margin-top: %dpx", style.VerticalMarginPx),
			fmt.Sprintf("margin-bottom: %dpx", style.VerticalMarginPx))
	}
	if style.PaddingPx > 0 {
		parts = append(parts, fmt.Sprintf("padding: %dpx", style.PaddingPx))
	}
	if style.MinHeightPx > 0 {
		parts = append(parts, fmt.Sprintf("min-height: %dpx", style.MinHeightPx))
	}
	if css, ok := radiusTierCSS[style.BorderRadius]; ok {
		parts = append(parts, "border-radius: "+css)
	}
	if css, ok := shadowTierCSS[style.Shadow]; ok {
		parts = append(parts, "box-shadow: "+css)
	}

	return strings.Join(parts, "; ")
}

// TextStyles builds the inline style string for a block's text element.
func TextStyles(style editor.Style) string {
	var parts []string

	if style.Color != "" {
		parts = append(parts, "color: "+style.Color)
	}
	if style.FontFamily != "" {
		parts = append(parts, "font-family: "+style.FontFamily)
	}
	if style.FontWeight != "" {
		parts = append(parts, "font-weight: "+style.FontWeight)
	}
	if style.FontStyle != "" {
		parts = append(parts, "font-style: "+style.FontStyle)
	}
	if style.TextAlign != "" {
		parts = append(parts, "text-align: "+style.TextAlign)
	}

	return strings.Join(parts, "; ")
}
