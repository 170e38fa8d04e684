package services

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/UniScopeHQ/composer-go/internal/domain/entities/editor"
	"github.com/UniScopeHQ/composer-go/internal/domain/registry"
	"github.com/UniScopeHQ/composer-go/internal/infrastructure/observability/logging"
	"github.com/UniScopeHQ/composer-go/pkg/config"
)

// InspectorView is what the client renders when a block's edit panel
// opens: the form schema for its type plus the block's current state.
// Editable is false for types the registry has no schema for; the client
// shows a placeholder panel instead of a form.
type InspectorView struct {
	Editable      bool             `json:"editable"`
	Block         *editor.Block    `json:"block,omitempty"`
	Fields        []registry.Field `json:"fields,omitempty"`
	ClosedBlockID string           `json:"closedBlockId,omitempty"`
}

// InspectorService opens and saves the per-block edit panel. Only one
// inspector is open per session; opening a second closes the first.
type InspectorService struct {
	editor *EditorService
	media  *MediaService
	logger *logging.ChanneledLogger
}

// NewInspectorService creates the inspector service.
func NewInspectorService(editorSvc *EditorService, media *MediaService, logger *logging.ChanneledLogger) *InspectorService {
	return &InspectorService{
		editor: editorSvc,
		media:  media,
		logger: logger,
	}
}

// Open opens the inspector for a block, closing any other open inspector.
func (s *InspectorService) Open(sessionID, blockID string) (*InspectorView, error) {
	session, err := s.editor.Session(sessionID)
	if err != nil {
		return nil, err
	}

	session.Lock()
	defer session.Unlock()
	session.Touch()

	block, ok := session.Doc.BlockByID(blockID)
	if !ok {
		return nil, ErrBlockNotFound
	}

	closed := session.OpenInspector(blockID)

	fields, editable := registry.EditSchemaFor(block.Type)
	view := &InspectorView{
		Editable:      editable,
		Block:         block,
		Fields:        fields,
		ClosedBlockID: closed,
	}
	if !editable {
		s.logger.Editor().Warn("Inspector opened for uneditable block type",
			"sessionId", sessionID, "type", string(block.Type))
	}
	return view, nil
}

// Close closes the open inspector without saving.
func (s *InspectorService) Close(sessionID string) error {
	session, err := s.editor.Session(sessionID)
	if err != nil {
		return err
	}
	session.Lock()
	defer session.Unlock()
	session.CloseInspector()
	return nil
}

// Save applies the submitted form values to the block and closes the
// inspector. Values are parsed per the block type's schema; dimension
// fields are normalized afterwards so out-of-range submissions clamp
// instead of failing.
func (s *InspectorService) Save(sessionID, blockID string, values map[string]string) (*editor.Block, error) {
	session, err := s.editor.Session(sessionID)
	if err != nil {
		return nil, err
	}

	session.Lock()
	defer session.Unlock()
	session.Touch()

	block, ok := session.Doc.BlockByID(blockID)
	if !ok {
		return nil, ErrBlockNotFound
	}

	content, style := s.buildPatches(block.Type, values)
	changed, _ := session.Doc.Update(blockID, content, style)

	pre := block.Style
	block.Style.Normalize(config.BlockWidthMinPercent, config.BlockWidthMaxPercent)
	if block.Style != pre {
		session.Doc.MarkDirty()
		changed = true
	}

	session.CloseInspector()
	if changed {
		s.editor.markUnsaved(session)
	}

	return block, nil
}

// buildPatches translates raw form values into content and style patches
// for the given block type.
func (s *InspectorService) buildPatches(t editor.BlockType, values map[string]string) (*editor.ContentPatch, *editor.StylePatch) {
	content := &editor.ContentPatch{}
	style := &editor.StylePatch{}

	switch t {
	case editor.BlockHeading, editor.BlockText, editor.BlockQuote, editor.BlockCode:
		if v, ok := values["text"]; ok {
			content.Text = &v
		}
	case editor.BlockImage:
		s.applyImageValues(content, values)
		if v, ok := values["altText"]; ok {
			content.AltText = &v
		}
	case editor.BlockVideo:
		if v, ok := values["embedUrl"]; ok {
			normalized := NormalizeVideoURL(v)
			content.EmbedURL = &normalized
		}
	case editor.BlockButton:
		if v, ok := values["label"]; ok {
			content.Label = &v
		}
		if v, ok := values["href"]; ok {
			if v == "" {
				v = "#"
			}
			content.Href = &v
		}
	case editor.BlockList:
		if v, ok := values["items"]; ok {
			content.Items = splitListItems(v)
		}
		if v, ok := values["ordered"]; ok {
			ordered := v == "numbered" || v == "true"
			content.Ordered = &ordered
		}
	}

	applyStyleValues(style, values)
	return content, style
}

// applyImageValues resolves the image source. A file upload wins over a
// typed URL when both are present.
func (s *InspectorService) applyImageValues(content *editor.ContentPatch, values map[string]string) {
	if data, ok := values["file"]; ok && data != "" && s.media != nil {
		result, err := s.media.Upload(data)
		if err == nil {
			content.URL = &result.URL
			content.SrcSet = &result.SrcSet
			return
		}
		s.logger.Media().Warn("Inline image upload failed, keeping previous source", "error", err.Error())
	}
	if v, ok := values["url"]; ok && v != "" {
		content.URL = &v
		empty := ""
		content.SrcSet = &empty
	}
}

// applyStyleValues parses the shared style and dimension fields.
func applyStyleValues(style *editor.StylePatch, values map[string]string) {
	for _, name := range []string{"color", "fontFamily", "fontWeight", "fontStyle", "textAlign",
		"borderRadiusTier", "shadowTier", "alignment", "backgroundColor"} {
		v, ok := values[name]
		if !ok {
			continue
		}
		value := v
		switch name {
		case "color":
			style.Color = &value
		case "fontFamily":
			style.FontFamily = &value
		case "fontWeight":
			style.FontWeight = &value
		case "fontStyle":
			style.FontStyle = &value
		case "textAlign":
			style.TextAlign = &value
		case "borderRadiusTier":
			style.BorderRadius = &value
		case "shadowTier":
			style.Shadow = &value
		case "alignment":
			style.Alignment = &value
		case "backgroundColor":
			style.BackgroundColor = &value
		}
	}

	for _, name := range []string{"widthPercent", "minHeightPx", "paddingPx", "verticalMarginPx", "spacerHeightPx"} {
		v, ok := values[name]
		if !ok {
			continue
		}
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			continue
		}
		switch name {
		case "widthPercent":
			style.WidthPercent = &n
		case "minHeightPx":
			style.MinHeightPx = &n
		case "paddingPx":
			style.PaddingPx = &n
		case "verticalMarginPx":
			style.VerticalMarginPx = &n
		case "spacerHeightPx":
			style.SpacerHeightPx = &n
		}
	}

	if v, ok := values["manualResizeEnabled"]; ok {
		enabled := v == "on" || v == "true"
		style.ManualResize = &enabled
	}
}

// splitListItems turns the textarea value into list items, one per line,
// dropping blank lines.
func splitListItems(v string) []string {
	var items []string
	for _, line := range strings.Split(v, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			items = append(items, line)
		}
	}
	if items == nil {
		items = []string{}
	}
	return items
}

// NormalizeVideoURL rewrites the common YouTube URL shapes to their embed
// form. Anything unrecognized passes through unchanged so other providers'
// embed URLs keep working.
func NormalizeVideoURL(raw string) string {
	raw = strings.TrimSpace(raw)
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return raw
	}

	host := strings.TrimPrefix(u.Host, "www.")
	switch host {
	case "youtube.com", "m.youtube.com":
		if u.Path == "/watch" {
			if id := u.Query().Get("v"); id != "" {
				return "https://www.youtube.com/embed/" + id
			}
		}
	case "youtu.be":
		if id := strings.Trim(u.Path, "/"); id != "" {
			return "https://www.youtube.com/embed/" + id
		}
	}
	return raw
}
