package services

import (
	"testing"

	"github.com/UniScopeHQ/composer-go/internal/domain/entities/editor"
)

func newTestInspector(t *testing.T) (*InspectorService, *EditorService) {
	t.Helper()
	editorSvc, _ := newTestEditor(t)
	return NewInspectorService(editorSvc, nil, testLogger(t)), editorSvc
}

func TestNormalizeVideoURL(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"https://www.youtube.com/watch?v=XYZ123", "https://www.youtube.com/embed/XYZ123"},
		{"https://youtube.com/watch?v=abc", "https://www.youtube.com/embed/abc"},
		{"https://youtu.be/XYZ123", "https://www.youtube.com/embed/XYZ123"},
		{"  https://youtu.be/XYZ123  ", "https://www.youtube.com/embed/XYZ123"},
		{"https://www.youtube.com/embed/XYZ123", "https://www.youtube.com/embed/XYZ123"},
		{"https://player.vimeo.com/video/123", "https://player.vimeo.com/video/123"},
		{"not a url", "not a url"},
	}
	for _, tc := range cases {
		if got := NormalizeVideoURL(tc.in); got != tc.want {
			t.Errorf("NormalizeVideoURL(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestInspectorOpenClosesPrevious(t *testing.T) {
	inspector, editorSvc := newTestInspector(t)
	session, _, _ := editorSvc.OpenSession("author-1")
	first, _ := editorSvc.InsertBlock(session.ID, editor.BlockHeading, -1)
	second, _ := editorSvc.InsertBlock(session.ID, editor.BlockText, -1)

	if _, err := inspector.Open(session.ID, first.ID); err != nil {
		t.Fatalf("Open: %v", err)
	}
	view, err := inspector.Open(session.ID, second.ID)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if view.ClosedBlockID != first.ID {
		t.Errorf("opening a second inspector should close the first, got %q", view.ClosedBlockID)
	}
	if !view.Editable || len(view.Fields) == 0 {
		t.Errorf("paragraph inspector should carry a schema: %+v", view)
	}
}

func TestInspectorSaveVideoNormalizesURL(t *testing.T) {
	inspector, editorSvc := newTestInspector(t)
	session, _, _ := editorSvc.OpenSession("author-1")
	block, _ := editorSvc.InsertBlock(session.ID, editor.BlockVideo, -1)

	saved, err := inspector.Save(session.ID, block.ID, map[string]string{
		"embedUrl": "https://youtu.be/XYZ123",
	})
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if saved.Content.EmbedURL != "https://www.youtube.com/embed/XYZ123" {
		t.Errorf("embed url = %q", saved.Content.EmbedURL)
	}
}

func TestInspectorSaveListParsesLines(t *testing.T) {
	inspector, editorSvc := newTestInspector(t)
	session, _, _ := editorSvc.OpenSession("author-1")
	block, _ := editorSvc.InsertBlock(session.ID, editor.BlockList, -1)

	saved, err := inspector.Save(session.ID, block.ID, map[string]string{
		"items":   "alpha\n\n  beta  \ngamma",
		"ordered": "numbered",
	})
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if len(saved.Content.Items) != 3 || saved.Content.Items[1] != "beta" {
		t.Errorf("items = %v", saved.Content.Items)
	}
	if !saved.Content.Ordered {
		t.Error("numbered selection should set ordered")
	}
}

func TestInspectorSaveClampsDimensions(t *testing.T) {
	inspector, editorSvc := newTestInspector(t)
	session, _, _ := editorSvc.OpenSession("author-1")
	block, _ := editorSvc.InsertBlock(session.ID, editor.BlockHeading, -1)

	saved, err := inspector.Save(session.ID, block.ID, map[string]string{
		"widthPercent": "5",
		"paddingPx":    "24",
	})
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if saved.Style.WidthPercent != 20 {
		t.Errorf("width should clamp to the minimum, got %d", saved.Style.WidthPercent)
	}
	if saved.Style.PaddingPx != 24 {
		t.Errorf("padding = %d", saved.Style.PaddingPx)
	}
}

func TestInspectorSaveButtonDefaultsHref(t *testing.T) {
	inspector, editorSvc := newTestInspector(t)
	session, _, _ := editorSvc.OpenSession("author-1")
	block, _ := editorSvc.InsertBlock(session.ID, editor.BlockButton, -1)

	saved, err := inspector.Save(session.ID, block.ID, map[string]string{
		"label": "Apply",
		"href":  "",
	})
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if saved.Content.Href != "#" {
		t.Errorf("blank href should fall back to #, got %q", saved.Content.Href)
	}
}

func TestInspectorSaveClosesPanel(t *testing.T) {
	inspector, editorSvc := newTestInspector(t)
	session, _, _ := editorSvc.OpenSession("author-1")
	block, _ := editorSvc.InsertBlock(session.ID, editor.BlockHeading, -1)

	inspector.Open(session.ID, block.ID)
	inspector.Save(session.ID, block.ID, map[string]string{"text": "Done"})

	if session.InspectorBlockID() != "" {
		t.Error("save should close the inspector")
	}
	if session.SaveStatus != editor.StatusUnsaved {
		t.Error("save should leave the document unsaved for autosave")
	}
}

func TestInspectorSaveWithoutChangesKeepsSavedStatus(t *testing.T) {
	inspector, editorSvc := newTestInspector(t)
	session, _, _ := editorSvc.OpenSession("author-1")
	block, _ := editorSvc.InsertBlock(session.ID, editor.BlockHeading, -1)

	// Simulate a completed autosave.
	session.Lock()
	session.Doc.ClearDirty()
	session.SaveStatus = editor.StatusSaved
	session.Unlock()

	inspector.Open(session.ID, block.ID)
	if _, err := inspector.Save(session.ID, block.ID, map[string]string{
		"text": block.Content.Text,
	}); err != nil {
		t.Fatalf("Save: %v", err)
	}

	session.Lock()
	defer session.Unlock()
	if session.SaveStatus != editor.StatusSaved {
		t.Errorf("no-op save flipped the indicator to %s", session.SaveStatus)
	}
	if session.Doc.Dirty() {
		t.Error("no-op save must not dirty the document")
	}
}
