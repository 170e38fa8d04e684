package editor

// Alignment values for blocks that carry an explicit alignment control
// (image and button). Other types center automatically when narrower than
// full width.
const (
	AlignLeft   = "left"
	AlignCenter = "center"
	AlignRight  = "right"
)

// Style is the plain-data style and dimension record attached to every
// block. Rendering derives presentation from it; it is never read back out
// of markup.
type Style struct {
	WidthPercent     int  `json:"widthPercent"`
	MinHeightPx      int  `json:"minHeightPx"`
	PaddingPx        int  `json:"paddingPx"`
	VerticalMarginPx int  `json:"verticalMarginPx"`
	ManualResize     bool `json:"manualResizeEnabled"`

	Color           string `json:"color,omitempty"`
	FontFamily      string `json:"fontFamily,omitempty"`
	FontWeight      string `json:"fontWeight,omitempty"`
	FontStyle       string `json:"fontStyle,omitempty"`
	TextAlign       string `json:"textAlign,omitempty"`
	BorderRadius    string `json:"borderRadiusTier,omitempty"` // none|small|medium|large|circle
	Shadow          string `json:"shadowTier,omitempty"`       // none|light|medium|strong
	Alignment       string `json:"alignment,omitempty"`        // image/button only
	BackgroundColor string `json:"backgroundColor,omitempty"`  // button
	SpacerHeightPx  int    `json:"spacerHeightPx,omitempty"`   // spacer only
}

// StylePatch is a partial style update; nil fields are left untouched.
type StylePatch struct {
	WidthPercent     *int  `json:"widthPercent,omitempty"`
	MinHeightPx      *int  `json:"minHeightPx,omitempty"`
	PaddingPx        *int  `json:"paddingPx,omitempty"`
	VerticalMarginPx *int  `json:"verticalMarginPx,omitempty"`
	ManualResize     *bool `json:"manualResizeEnabled,omitempty"`

	Color           *string `json:"color,omitempty"`
	FontFamily      *string `json:"fontFamily,omitempty"`
	FontWeight      *string `json:"fontWeight,omitempty"`
	FontStyle       *string `json:"fontStyle,omitempty"`
	TextAlign       *string `json:"textAlign,omitempty"`
	BorderRadius    *string `json:"borderRadiusTier,omitempty"`
	Shadow          *string `json:"shadowTier,omitempty"`
	Alignment       *string `json:"alignment,omitempty"`
	BackgroundColor *string `json:"backgroundColor,omitempty"`
	SpacerHeightPx  *int    `json:"spacerHeightPx,omitempty"`
}

// DefaultStyle returns the style record every freshly inserted block starts
// with: full width, no spacing overrides, manual resize off.
func DefaultStyle() Style {
	return Style{WidthPercent: 100}
}

// Normalize clamps the dimension fields into their legal ranges. It runs
// after every inspector save so a style record is always well-formed before
// it reaches the renderer or the draft store.
func (s *Style) Normalize(minWidth, maxWidth int) {
	if s.WidthPercent == 0 {
		s.WidthPercent = maxWidth
	}
	if s.WidthPercent < minWidth {
		s.WidthPercent = minWidth
	}
	if s.WidthPercent > maxWidth {
		s.WidthPercent = maxWidth
	}
	if s.MinHeightPx < 0 {
		s.MinHeightPx = 0
	}
	if s.PaddingPx < 0 {
		s.PaddingPx = 0
	}
	if s.VerticalMarginPx < 0 {
		s.VerticalMarginPx = 0
	}
	if s.SpacerHeightPx < 0 {
		s.SpacerHeightPx = 0
	}
}

// HasAlignmentOverride reports whether an explicit alignment control is in
// effect; it takes precedence over the automatic centering of narrow blocks.
func (s *Style) HasAlignmentOverride() bool {
	switch s.Alignment {
	case AlignLeft, AlignCenter, AlignRight:
		return true
	}
	return false
}

// SideMargins returns the computed horizontal margin pair for a block
// wrapper. Widths below 100 center automatically unless the block carries
// its own alignment, in which case that alignment is expressed through the
// margin assignment.
func (s *Style) SideMargins() (left, right string) {
	if s.HasAlignmentOverride() {
		switch s.Alignment {
		case AlignLeft:
			return "0", "auto"
		case AlignRight:
			return "auto", "0"
		default:
			return "auto", "auto"
		}
	}
	if s.WidthPercent < 100 {
		return "auto", "auto"
	}
	return "", ""
}

// applyStyle merges a style patch into the block. It reports whether any
// value actually changed; resubmitting the current values is not a change.
func (b *Block) applyStyle(patch *StylePatch) bool {
	if patch == nil {
		return false
	}
	s := &b.Style
	before := *s
	if patch.WidthPercent != nil {
		s.WidthPercent = *patch.WidthPercent
	}
	if patch.MinHeightPx != nil {
		s.MinHeightPx = *patch.MinHeightPx
	}
	if patch.PaddingPx != nil {
		s.PaddingPx = *patch.PaddingPx
	}
	if patch.VerticalMarginPx != nil {
		s.VerticalMarginPx = *patch.VerticalMarginPx
	}
	if patch.ManualResize != nil {
		s.ManualResize = *patch.ManualResize
	}
	if patch.Color != nil {
		s.Color = *patch.Color
	}
	if patch.FontFamily != nil {
		s.FontFamily = *patch.FontFamily
	}
	if patch.FontWeight != nil {
		s.FontWeight = *patch.FontWeight
	}
	if patch.FontStyle != nil {
		s.FontStyle = *patch.FontStyle
	}
	if patch.TextAlign != nil {
		s.TextAlign = *patch.TextAlign
	}
	if patch.BorderRadius != nil {
		s.BorderRadius = *patch.BorderRadius
	}
	if patch.Shadow != nil {
		s.Shadow = *patch.Shadow
	}
	if patch.Alignment != nil {
		s.Alignment = *patch.Alignment
	}
	if patch.BackgroundColor != nil {
		s.BackgroundColor = *patch.BackgroundColor
	}
	if patch.SpacerHeightPx != nil {
		s.SpacerHeightPx = *patch.SpacerHeightPx
	}
	return *s != before
}
