package editor

// DragMode distinguishes the two drag interactions: pulling a new block
// out of the palette versus reordering an existing block.
type DragMode string

const (
	DragPalette DragMode = "palette"
	DragBlock   DragMode = "block"
)

// DragState is the single active drag gesture. Only one exists per session;
// beginning a new drag replaces any stale one, and drag-end clears it
// unconditionally whether or not a drop happened.
type DragState struct {
	Mode      DragMode  `json:"mode"`
	BlockType BlockType `json:"blockType,omitempty"` // palette drags
	BlockID   string    `json:"blockId,omitempty"`   // block drags
}

// DropResult describes what a drop did to the document.
type DropResult struct {
	Inserted *Block `json:"inserted,omitempty"`
	Moved    bool   `json:"moved"`
}

// BeginPaletteDrag starts a palette→canvas drag carrying a block type.
func (s *Session) BeginPaletteDrag(t BlockType) {
	s.activeDrag = &DragState{Mode: DragPalette, BlockType: t}
}

// BeginBlockDrag starts a block reorder drag carrying an existing block id.
func (s *Session) BeginBlockDrag(blockID string) {
	s.activeDrag = &DragState{Mode: DragBlock, BlockID: blockID}
}

// ActiveDrag returns the in-flight drag gesture, or nil.
func (s *Session) ActiveDrag() *DragState { return s.activeDrag }

// Drop completes the active drag over targetID. An empty target means the
// drop landed on open canvas: palette drags append, block drags do nothing.
// The content and style for palette insertions are supplied by the caller
// from the block registry. The drag state survives until EndDrag so a late
// drag-end event still finds it.
func (s *Session) Drop(targetID string, content Content, style Style) DropResult {
	drag := s.activeDrag
	if drag == nil {
		return DropResult{}
	}

	switch drag.Mode {
	case DragPalette:
		atIndex := -1
		if targetID != "" {
			if i, ok := s.Doc.index[targetID]; ok {
				atIndex = i
			}
		}
		b := s.Doc.Insert(drag.BlockType, content, style, atIndex)
		return DropResult{Inserted: b}
	case DragBlock:
		if targetID == "" || targetID == drag.BlockID {
			return DropResult{}
		}
		return DropResult{Moved: s.Doc.MoveBefore(drag.BlockID, targetID)}
	}
	return DropResult{}
}

// EndDrag clears the drag state unconditionally. The client clears its
// drop-target highlights on the same event, so a cancelled drag never
// leaves stuck visual state.
func (s *Session) EndDrag() { s.activeDrag = nil }
