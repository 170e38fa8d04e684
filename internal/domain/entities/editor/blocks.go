// Package editor defines the core block-document domain entities for the
// composer engine: typed content blocks, their style records, the ordered
// document that owns them, and the editing session that tracks in-flight
// gestures.
package editor

import (
	"reflect"
	"time"

	"github.com/oklog/ulid/v2"
)

// BlockType is the closed set of content block kinds the composer supports.
type BlockType string

const (
	BlockHeading   BlockType = "heading"
	BlockContainer BlockType = "container"
	BlockText      BlockType = "text"
	BlockImage     BlockType = "image"
	BlockVideo     BlockType = "video"
	BlockButton    BlockType = "button"
	BlockList      BlockType = "list"
	BlockQuote     BlockType = "quote"
	BlockCode      BlockType = "code"
	BlockDivider   BlockType = "divider"
	BlockSpacer    BlockType = "spacer"
)

// AllBlockTypes lists every supported block type in palette order.
var AllBlockTypes = []BlockType{
	BlockHeading, BlockContainer, BlockText, BlockImage, BlockVideo,
	BlockButton, BlockList, BlockQuote, BlockCode, BlockDivider, BlockSpacer,
}

// IsValid reports whether t is a member of the closed block type set.
func (t BlockType) IsValid() bool {
	switch t {
	case BlockHeading, BlockContainer, BlockText, BlockImage, BlockVideo,
		BlockButton, BlockList, BlockQuote, BlockCode, BlockDivider, BlockSpacer:
		return true
	}
	return false
}

// Content holds the type-specific payload of a block. Only the fields
// meaningful for the block's type are populated; divider and spacer carry
// no content at all.
type Content struct {
	Text     string   `json:"text,omitempty"`     // heading, text, quote, code
	Items    []string `json:"items,omitempty"`    // list
	Ordered  bool     `json:"ordered,omitempty"`  // list: numbered vs bulleted
	URL      string   `json:"url,omitempty"`      // image source
	SrcSet   string   `json:"srcSet,omitempty"`   // image responsive srcset
	AltText  string   `json:"altText,omitempty"`  // image
	EmbedURL string   `json:"embedUrl,omitempty"` // video
	Label    string   `json:"label,omitempty"`    // button
	Href     string   `json:"href,omitempty"`     // button
}

// ContentPatch is a partial content update; nil fields are left untouched.
type ContentPatch struct {
	Text     *string  `json:"text,omitempty"`
	Items    []string `json:"items,omitempty"`
	Ordered  *bool    `json:"ordered,omitempty"`
	URL      *string  `json:"url,omitempty"`
	SrcSet   *string  `json:"srcSet,omitempty"`
	AltText  *string  `json:"altText,omitempty"`
	EmbedURL *string  `json:"embedUrl,omitempty"`
	Label    *string  `json:"label,omitempty"`
	Href     *string  `json:"href,omitempty"`
}

// Block is the atomic unit of a composer document. ID and Type are fixed at
// creation; content and style only change through Document.Update.
type Block struct {
	ID      string    `json:"id"`
	Type    BlockType `json:"type"`
	Content Content   `json:"content"`
	Style   Style     `json:"style"`
	Created time.Time `json:"created"`
}

// NewBlock allocates a block with a fresh monotonic ULID.
func NewBlock(t BlockType, content Content, style Style) *Block {
	return &Block{
		ID:      ulid.Make().String(),
		Type:    t,
		Content: content,
		Style:   style,
		Created: time.Now().UTC(),
	}
}

// Clone deep-copies the block under a fresh ID. Used by duplicate.
func (b *Block) Clone() *Block {
	clone := &Block{
		ID:      ulid.Make().String(),
		Type:    b.Type,
		Content: b.Content,
		Style:   b.Style,
		Created: time.Now().UTC(),
	}
	if b.Content.Items != nil {
		clone.Content.Items = make([]string, len(b.Content.Items))
		copy(clone.Content.Items, b.Content.Items)
	}
	return clone
}

// applyContent merges a content patch into the block. It reports whether
// any value actually changed; resubmitting the current values is not a
// change.
func (b *Block) applyContent(patch *ContentPatch) bool {
	if patch == nil {
		return false
	}
	before := b.Content
	if patch.Text != nil {
		b.Content.Text = *patch.Text
	}
	if patch.Items != nil {
		b.Content.Items = patch.Items
	}
	if patch.Ordered != nil {
		b.Content.Ordered = *patch.Ordered
	}
	if patch.URL != nil {
		b.Content.URL = *patch.URL
	}
	if patch.SrcSet != nil {
		b.Content.SrcSet = *patch.SrcSet
	}
	if patch.AltText != nil {
		b.Content.AltText = *patch.AltText
	}
	if patch.EmbedURL != nil {
		b.Content.EmbedURL = *patch.EmbedURL
	}
	if patch.Label != nil {
		b.Content.Label = *patch.Label
	}
	if patch.Href != nil {
		b.Content.Href = *patch.Href
	}
	return !contentEqual(before, b.Content)
}

// contentEqual compares two content records, item lists included.
func contentEqual(a, b Content) bool {
	if len(a.Items) != len(b.Items) {
		return false
	}
	for i := range a.Items {
		if a.Items[i] != b.Items[i] {
			return false
		}
	}
	a.Items, b.Items = nil, nil
	return reflect.DeepEqual(a, b)
}
