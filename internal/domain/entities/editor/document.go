package editor

// Metadata holds the document-level fields that accompany the block
// sequence into the publish payload.
type Metadata struct {
	Title           string `json:"title"`
	Slug            string `json:"slug"`
	Category        string `json:"category"`
	AuthorName      string `json:"authorName"`
	Tags            string `json:"tags"` // raw comma-separated; parsed at serialize time
	Excerpt         string `json:"excerpt"`
	FeaturedImage   string `json:"featuredImage"`
	IsFeatured      bool   `json:"isFeatured"`
	IsPublished     bool   `json:"isPublished"`
	CommentsEnabled bool   `json:"commentsEnabled"`
}

// Snapshot is the serialized form of a document, written to the draft store
// and restored from it. Single slot, last write wins, no format versioning.
type Snapshot struct {
	Meta   Metadata `json:"meta"`
	Blocks []*Block `json:"blocks"`
}

// Document is a flat ordered sequence of blocks plus metadata. It is the
// single source of truth during an editing session; rendering is a pure
// projection of it. The id index replaces DOM-style lookup by id string.
type Document struct {
	Meta Metadata

	blocks []*Block
	index  map[string]int
	dirty  bool
}

// NewDocument creates an empty document.
func NewDocument() *Document {
	return &Document{
		blocks: make([]*Block, 0),
		index:  make(map[string]int),
	}
}

// FromSnapshot rebuilds a document from a draft snapshot.
func FromSnapshot(s *Snapshot) *Document {
	doc := NewDocument()
	doc.Meta = s.Meta
	for _, b := range s.Blocks {
		doc.blocks = append(doc.blocks, b)
	}
	doc.rebuildIndex()
	return doc
}

// Snapshot captures the current document state for the draft store.
func (d *Document) Snapshot() *Snapshot {
	blocks := make([]*Block, len(d.blocks))
	copy(blocks, d.blocks)
	return &Snapshot{Meta: d.Meta, Blocks: blocks}
}

// Len returns the number of blocks.
func (d *Document) Len() int { return len(d.blocks) }

// IsEmpty reports whether the canvas is in its empty state.
func (d *Document) IsEmpty() bool { return len(d.blocks) == 0 }

// Blocks returns the blocks in render order.
func (d *Document) Blocks() []*Block {
	out := make([]*Block, len(d.blocks))
	copy(out, d.blocks)
	return out
}

// BlockByID looks a block up in the id index.
func (d *Document) BlockByID(id string) (*Block, bool) {
	i, ok := d.index[id]
	if !ok {
		return nil, false
	}
	return d.blocks[i], true
}

// Dirty reports whether the document has unsaved changes.
func (d *Document) Dirty() bool { return d.dirty }

// MarkDirty flags the document as having unsaved changes.
func (d *Document) MarkDirty() { d.dirty = true }

// ClearDirty resets the dirty flag after a successful draft write.
func (d *Document) ClearDirty() { d.dirty = false }

// SetMeta replaces the document metadata and marks the document dirty.
func (d *Document) SetMeta(meta Metadata) {
	d.Meta = meta
	d.dirty = true
}

// Insert creates a new block of the given type at atIndex and returns it.
// A negative or out-of-range index appends, matching a drop on the empty
// canvas or outside any existing block.
func (d *Document) Insert(t BlockType, content Content, style Style, atIndex int) *Block {
	b := NewBlock(t, content, style)
	if atIndex < 0 || atIndex > len(d.blocks) {
		atIndex = len(d.blocks)
	}
	d.blocks = append(d.blocks, nil)
	copy(d.blocks[atIndex+1:], d.blocks[atIndex:])
	d.blocks[atIndex] = b
	d.rebuildIndex()
	d.dirty = true
	return b
}

// MoveBefore relocates blockID to immediately precede targetID. Moving a
// block before itself, or naming an unknown block, is a no-op.
func (d *Document) MoveBefore(blockID, targetID string) bool {
	if blockID == targetID {
		return false
	}
	from, ok := d.index[blockID]
	if !ok {
		return false
	}
	to, ok := d.index[targetID]
	if !ok {
		return false
	}

	b := d.blocks[from]
	d.blocks = append(d.blocks[:from], d.blocks[from+1:]...)
	if from < to {
		to--
	}
	d.blocks = append(d.blocks, nil)
	copy(d.blocks[to+1:], d.blocks[to:])
	d.blocks[to] = b
	d.rebuildIndex()
	d.dirty = true
	return true
}

// MoveUp swaps the block with its preceding sibling; no-op at the top.
func (d *Document) MoveUp(blockID string) bool {
	i, ok := d.index[blockID]
	if !ok || i == 0 {
		return false
	}
	d.blocks[i-1], d.blocks[i] = d.blocks[i], d.blocks[i-1]
	d.index[d.blocks[i-1].ID] = i - 1
	d.index[d.blocks[i].ID] = i
	d.dirty = true
	return true
}

// MoveDown swaps the block with its following sibling; no-op at the bottom.
func (d *Document) MoveDown(blockID string) bool {
	i, ok := d.index[blockID]
	if !ok || i == len(d.blocks)-1 {
		return false
	}
	d.blocks[i], d.blocks[i+1] = d.blocks[i+1], d.blocks[i]
	d.index[d.blocks[i].ID] = i
	d.index[d.blocks[i+1].ID] = i + 1
	d.dirty = true
	return true
}

// Duplicate deep-clones the block under a fresh id and inserts the clone
// immediately after the source.
func (d *Document) Duplicate(blockID string) (*Block, bool) {
	i, ok := d.index[blockID]
	if !ok {
		return nil, false
	}
	clone := d.blocks[i].Clone()
	d.blocks = append(d.blocks, nil)
	copy(d.blocks[i+2:], d.blocks[i+1:])
	d.blocks[i+1] = clone
	d.rebuildIndex()
	d.dirty = true
	return clone, true
}

// Update merges content and style patches into the block. The block's id
// and type never change. It reports whether any value actually changed and
// whether the block exists; a patch that restates the current values leaves
// the dirty flag alone.
func (d *Document) Update(blockID string, content *ContentPatch, style *StylePatch) (changed, ok bool) {
	b, ok := d.BlockByID(blockID)
	if !ok {
		return false, false
	}
	changed = b.applyContent(content)
	if b.applyStyle(style) {
		changed = true
	}
	if changed {
		d.dirty = true
	}
	return changed, true
}

// Delete removes the block. An emptied document is a distinct canvas state
// the client renders differently; the model just reports IsEmpty.
func (d *Document) Delete(blockID string) bool {
	i, ok := d.index[blockID]
	if !ok {
		return false
	}
	d.blocks = append(d.blocks[:i], d.blocks[i+1:]...)
	d.rebuildIndex()
	d.dirty = true
	return true
}

func (d *Document) rebuildIndex() {
	d.index = make(map[string]int, len(d.blocks))
	for i, b := range d.blocks {
		d.index[b.ID] = i
	}
}
