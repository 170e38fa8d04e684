// Package registry defines the closed set of composer block types: the
// default content template seeded into a freshly dropped block and the
// edit-form schema the inspector renders for it. Pure and stateless.
package registry

import (
	"github.com/UniScopeHQ/composer-go/internal/domain/entities/editor"
)

// FieldKind enumerates the inspector form control kinds.
type FieldKind string

const (
	FieldText      FieldKind = "text"
	FieldLongText  FieldKind = "long-text"
	FieldColor     FieldKind = "color"
	FieldSelect    FieldKind = "select"
	FieldRange     FieldKind = "range"
	FieldFileURL   FieldKind = "file-url"
	FieldAlignment FieldKind = "alignment"
)

// Field describes one inspector form control.
type Field struct {
	Name    string    `json:"name"`
	Label   string    `json:"label"`
	Kind    FieldKind `json:"kind"`
	Options []string  `json:"options,omitempty"`
	Min     int       `json:"min,omitempty"`
	Max     int       `json:"max,omitempty"`
}

// FontFamilies is the fixed palette of named families offered by the
// inspector for every text-bearing block type.
var FontFamilies = []string{
	"Arial", "Helvetica", "Georgia", "Times New Roman", "Courier New", "Verdana",
}

var fontWeights = []string{"300", "400", "500", "600", "700"}
var radiusTiers = []string{"none", "small", "medium", "large", "circle"}
var shadowTiers = []string{"none", "light", "medium", "strong"}

// PlaceholderImageURL seeds a freshly dropped image block.
const PlaceholderImageURL = "https://via.placeholder.com/800x400"

// TemplateFor returns the default content a new block of type t starts
// with. The second return is false for an unknown type.
func TemplateFor(t editor.BlockType) (editor.Content, bool) {
	switch t {
	case editor.BlockHeading:
		return editor.Content{Text: "New Heading"}, true
	case editor.BlockContainer:
		return editor.Content{}, true
	case editor.BlockText:
		return editor.Content{Text: "Start writing your paragraph here..."}, true
	case editor.BlockImage:
		return editor.Content{URL: PlaceholderImageURL, AltText: "image"}, true
	case editor.BlockVideo:
		return editor.Content{}, true
	case editor.BlockButton:
		return editor.Content{Label: "Click Me", Href: "#"}, true
	case editor.BlockList:
		return editor.Content{Items: []string{"First item", "Second item"}}, true
	case editor.BlockQuote:
		return editor.Content{Text: "An inspiring quote goes here."}, true
	case editor.BlockCode:
		return editor.Content{Text: "// your code here"}, true
	case editor.BlockDivider, editor.BlockSpacer:
		return editor.Content{}, true
	}
	return editor.Content{}, false
}

// EditSchemaFor returns the ordered inspector field descriptors for t. The
// second return is false for an unknown type, which the inspector renders
// as a "not editable" placeholder rather than failing.
func EditSchemaFor(t editor.BlockType) ([]Field, bool) {
	switch t {
	case editor.BlockHeading:
		return append(textFields("Heading text", false), dimensionFields()...), true
	case editor.BlockText:
		return append(textFields("Paragraph text", true), dimensionFields()...), true
	case editor.BlockQuote:
		return append(textFields("Quote text", false), dimensionFields()...), true
	case editor.BlockCode:
		return append([]Field{
			{Name: "text", Label: "Code", Kind: FieldLongText},
			{Name: "color", Label: "Text color", Kind: FieldColor},
		}, dimensionFields()...), true
	case editor.BlockImage:
		return append([]Field{
			{Name: "url", Label: "Image URL", Kind: FieldText},
			{Name: "file", Label: "Upload image", Kind: FieldFileURL},
			{Name: "altText", Label: "Alt text", Kind: FieldText},
			{Name: "borderRadiusTier", Label: "Corner rounding", Kind: FieldSelect, Options: radiusTiers},
			{Name: "shadowTier", Label: "Shadow", Kind: FieldSelect, Options: shadowTiers},
			{Name: "alignment", Label: "Alignment", Kind: FieldAlignment, Options: []string{"left", "center", "right"}},
		}, dimensionFields()...), true
	case editor.BlockVideo:
		return append([]Field{
			{Name: "embedUrl", Label: "Video URL", Kind: FieldText},
		}, dimensionFields()...), true
	case editor.BlockButton:
		return append([]Field{
			{Name: "label", Label: "Button label", Kind: FieldText},
			{Name: "href", Label: "Target URL", Kind: FieldText},
			{Name: "backgroundColor", Label: "Background color", Kind: FieldColor},
			{Name: "alignment", Label: "Alignment", Kind: FieldAlignment, Options: []string{"left", "center", "right"}},
		}, dimensionFields()...), true
	case editor.BlockList:
		return append([]Field{
			{Name: "items", Label: "List items (one per line)", Kind: FieldLongText},
			{Name: "ordered", Label: "List style", Kind: FieldSelect, Options: []string{"bulleted", "numbered"}},
			{Name: "color", Label: "Text color", Kind: FieldColor},
		}, dimensionFields()...), true
	case editor.BlockContainer, editor.BlockDivider, editor.BlockSpacer:
		return dimensionFields(), true
	}
	return nil, false
}

// textFields builds the shared schema for free-text block types.
func textFields(label string, allowJustify bool) []Field {
	alignments := []string{"left", "center", "right"}
	if allowJustify {
		alignments = append(alignments, "justify")
	}
	return []Field{
		{Name: "text", Label: label, Kind: FieldLongText},
		{Name: "fontFamily", Label: "Font family", Kind: FieldSelect, Options: FontFamilies},
		{Name: "fontWeight", Label: "Font weight", Kind: FieldSelect, Options: fontWeights},
		{Name: "fontStyle", Label: "Font style", Kind: FieldSelect, Options: []string{"normal", "italic"}},
		{Name: "textAlign", Label: "Alignment", Kind: FieldAlignment, Options: alignments},
		{Name: "color", Label: "Text color", Kind: FieldColor},
	}
}

// dimensionFields is the cross-cutting dimension control set appended to
// every schema; it maps onto the style normalization pass.
func dimensionFields() []Field {
	return []Field{
		{Name: "widthPercent", Label: "Width %", Kind: FieldRange, Min: 20, Max: 100},
		{Name: "minHeightPx", Label: "Min height (px)", Kind: FieldRange, Min: 0, Max: 1200},
		{Name: "paddingPx", Label: "Padding (px)", Kind: FieldRange, Min: 0, Max: 200},
		{Name: "verticalMarginPx", Label: "Vertical spacing (px)", Kind: FieldRange, Min: 0, Max: 200},
		{Name: "manualResizeEnabled", Label: "Manual resize", Kind: FieldSelect, Options: []string{"off", "on"}},
	}
}
