package editor

import "testing"

func newTestDoc(t *testing.T, types ...BlockType) (*Document, []*Block) {
	t.Helper()
	doc := NewDocument()
	blocks := make([]*Block, 0, len(types))
	for _, bt := range types {
		blocks = append(blocks, doc.Insert(bt, Content{Text: string(bt)}, DefaultStyle(), -1))
	}
	doc.ClearDirty()
	return doc, blocks
}

func assertOrder(t *testing.T, doc *Document, want []string) {
	t.Helper()
	got := doc.Blocks()
	if len(got) != len(want) {
		t.Fatalf("expected %d blocks, got %d", len(want), len(got))
	}
	for i, id := range want {
		if got[i].ID != id {
			t.Errorf("position %d: expected block %s, got %s", i, id, got[i].ID)
		}
	}
}

func TestInsertAppendsOnNegativeIndex(t *testing.T) {
	doc := NewDocument()
	first := doc.Insert(BlockHeading, Content{Text: "a"}, DefaultStyle(), -1)
	second := doc.Insert(BlockText, Content{Text: "b"}, DefaultStyle(), -1)

	assertOrder(t, doc, []string{first.ID, second.ID})
	if !doc.Dirty() {
		t.Error("insert should mark the document dirty")
	}
}

func TestInsertAtIndexShiftsFollowers(t *testing.T) {
	doc, blocks := newTestDoc(t, BlockHeading, BlockText)

	mid := doc.Insert(BlockQuote, Content{Text: "q"}, DefaultStyle(), 1)
	assertOrder(t, doc, []string{blocks[0].ID, mid.ID, blocks[1].ID})
}

func TestInsertOutOfRangeIndexAppends(t *testing.T) {
	doc, blocks := newTestDoc(t, BlockHeading)

	tail := doc.Insert(BlockText, Content{}, DefaultStyle(), 99)
	assertOrder(t, doc, []string{blocks[0].ID, tail.ID})
}

func TestMoveBeforeAdjustsForRemoval(t *testing.T) {
	doc, blocks := newTestDoc(t, BlockHeading, BlockText, BlockQuote)

	// Moving the first block before the third lands it in the middle.
	if !doc.MoveBefore(blocks[0].ID, blocks[2].ID) {
		t.Fatal("expected move to succeed")
	}
	assertOrder(t, doc, []string{blocks[1].ID, blocks[0].ID, blocks[2].ID})
}

func TestMoveBeforeSelfIsNoop(t *testing.T) {
	doc, blocks := newTestDoc(t, BlockHeading, BlockText)

	if doc.MoveBefore(blocks[0].ID, blocks[0].ID) {
		t.Error("moving a block before itself should be a no-op")
	}
	if doc.Dirty() {
		t.Error("no-op move should not dirty the document")
	}
}

func TestMoveBeforeUnknownIDIsNoop(t *testing.T) {
	doc, blocks := newTestDoc(t, BlockHeading, BlockText)

	if doc.MoveBefore("missing", blocks[1].ID) {
		t.Error("unknown source should be a no-op")
	}
	if doc.MoveBefore(blocks[0].ID, "missing") {
		t.Error("unknown target should be a no-op")
	}
	assertOrder(t, doc, []string{blocks[0].ID, blocks[1].ID})
}

func TestMoveUpDownBoundaries(t *testing.T) {
	doc, blocks := newTestDoc(t, BlockHeading, BlockText)

	if doc.MoveUp(blocks[0].ID) {
		t.Error("moving the top block up should be a no-op")
	}
	if doc.MoveDown(blocks[1].ID) {
		t.Error("moving the bottom block down should be a no-op")
	}
	if doc.Dirty() {
		t.Error("boundary moves should not dirty the document")
	}

	if !doc.MoveDown(blocks[0].ID) {
		t.Fatal("expected mid-document move to succeed")
	}
	assertOrder(t, doc, []string{blocks[1].ID, blocks[0].ID})

	if b, ok := doc.BlockByID(blocks[0].ID); !ok || b.ID != blocks[0].ID {
		t.Error("index lookup out of sync after swap")
	}
}

func TestDuplicateInsertsCloneAfterSource(t *testing.T) {
	doc, blocks := newTestDoc(t, BlockList, BlockText)
	doc.Update(blocks[0].ID, &ContentPatch{Items: []string{"one", "two"}}, nil)

	clone, ok := doc.Duplicate(blocks[0].ID)
	if !ok {
		t.Fatal("expected duplicate to succeed")
	}
	if clone.ID == blocks[0].ID {
		t.Error("clone must get a fresh id")
	}
	assertOrder(t, doc, []string{blocks[0].ID, clone.ID, blocks[1].ID})

	// The clone's item slice is independent of the source.
	clone.Content.Items[0] = "changed"
	if blocks[0].Content.Items[0] != "one" {
		t.Error("duplicate should deep-copy list items")
	}
}

func TestUpdateMergesPatches(t *testing.T) {
	doc, blocks := newTestDoc(t, BlockHeading)

	text := "Updated"
	color := "#ff0000"
	changed, ok := doc.Update(blocks[0].ID, &ContentPatch{Text: &text}, &StylePatch{Color: &color})
	if !ok {
		t.Fatal("expected update to succeed")
	}
	if !changed {
		t.Error("new values should report a change")
	}

	b, _ := doc.BlockByID(blocks[0].ID)
	if b.Content.Text != "Updated" || b.Style.Color != "#ff0000" {
		t.Errorf("patch not applied: %+v %+v", b.Content, b.Style)
	}
	if b.Style.WidthPercent != 100 {
		t.Error("unpatched style fields must be preserved")
	}
	if !doc.Dirty() {
		t.Error("update should mark the document dirty")
	}
}

func TestUpdateUnknownBlock(t *testing.T) {
	doc, _ := newTestDoc(t, BlockHeading)
	if _, ok := doc.Update("missing", nil, nil); ok {
		t.Error("updating an unknown block should report false")
	}
}

func TestUpdateRestatingValuesIsNotAChange(t *testing.T) {
	doc, blocks := newTestDoc(t, BlockHeading)
	text := "Same"
	doc.Update(blocks[0].ID, &ContentPatch{Text: &text}, nil)
	doc.ClearDirty()

	width := blocks[0].Style.WidthPercent
	changed, ok := doc.Update(blocks[0].ID, &ContentPatch{Text: &text}, &StylePatch{WidthPercent: &width})
	if !ok {
		t.Fatal("expected update to succeed")
	}
	if changed {
		t.Error("resubmitting current values must not report a change")
	}
	if doc.Dirty() {
		t.Error("resubmitting current values must not dirty the document")
	}
}

func TestDeleteEmptiesCanvas(t *testing.T) {
	doc, blocks := newTestDoc(t, BlockHeading)

	if !doc.Delete(blocks[0].ID) {
		t.Fatal("expected delete to succeed")
	}
	if !doc.IsEmpty() {
		t.Error("document should be empty after deleting the last block")
	}
	if _, ok := doc.BlockByID(blocks[0].ID); ok {
		t.Error("deleted block must leave the index")
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	doc, blocks := newTestDoc(t, BlockHeading, BlockImage)
	doc.SetMeta(Metadata{Title: "Scholarship Guide", Tags: "loans, visas"})

	restored := FromSnapshot(doc.Snapshot())
	if restored.Meta.Title != "Scholarship Guide" {
		t.Errorf("metadata lost in round trip: %+v", restored.Meta)
	}
	assertOrder(t, restored, []string{blocks[0].ID, blocks[1].ID})
	if _, ok := restored.BlockByID(blocks[1].ID); !ok {
		t.Error("restored document must rebuild its id index")
	}
}
