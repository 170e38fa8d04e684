package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/microcosm-cc/bluemonday"

	"github.com/UniScopeHQ/composer-go/internal/domain/entities/editor"
	"github.com/UniScopeHQ/composer-go/internal/domain/entities/publishing"
	"github.com/UniScopeHQ/composer-go/internal/infrastructure/observability/logging"
	"github.com/UniScopeHQ/composer-go/internal/presentation/templates"
)

// PublishService serializes a session's document to post HTML and submits
// it to the blog platform's create endpoint. The editing session and its
// draft are untouched whether the submission succeeds or fails; clearing
// the canvas after a successful publish is the client's call.
type PublishService struct {
	endpoint  string
	client    *http.Client
	sanitizer *bluemonday.Policy
	logger    *logging.ChanneledLogger
}

// NewPublishService creates the publish service.
func NewPublishService(endpoint string, timeout time.Duration, logger *logging.ChanneledLogger) *PublishService {
	return &PublishService{
		endpoint:  endpoint,
		client:    &http.Client{Timeout: timeout},
		sanitizer: publishPolicy(),
		logger:    logger,
	}
}

// publishPolicy allows exactly the markup the block renderers emit:
// structural divs with inline styles, the text elements, images with
// srcset, anchors, and iframe video embeds.
func publishPolicy() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()
	p.AllowElements("article", "div", "span", "iframe")
	p.AllowAttrs("class").Globally()
	p.AllowAttrs("style").Globally()
	p.AllowStyles("width", "height", "min-height", "padding",
		"margin-left", "margin-right", "margin-top", "margin-bottom",
		"background-color", "border-radius", "box-shadow",
		"color", "font-family", "font-weight", "font-style", "text-align").Globally()
	p.AllowAttrs("srcset", "loading").OnElements("img")
	p.AllowAttrs("src", "frameborder", "allowfullscreen", "loading").OnElements("iframe")
	return p
}

// BuildPayload assembles the publish payload from a snapshot. Validation
// failures are local errors; nothing leaves the process.
func (s *PublishService) BuildPayload(snapshot *editor.Snapshot) (*publishing.Payload, error) {
	meta := snapshot.Meta
	if meta.Title == "" {
		return nil, ErrMissingTitle
	}
	if meta.AuthorName == "" {
		return nil, ErrMissingAuthor
	}

	slug := meta.Slug
	if slug == "" {
		slug = publishing.GenerateSlug(meta.Title)
	}
	// A title with no alphanumerics generates an empty slug; that blocks
	// submission the same as a missing title.
	if slug == "" {
		return nil, ErrMissingSlug
	}

	html := s.sanitizer.Sanitize(templates.RenderDocument(snapshot))
	plain := templates.PlainText(snapshot)

	excerpt := meta.Excerpt
	if excerpt == "" {
		excerpt = publishing.ExcerptFrom(plain)
	}

	return &publishing.Payload{
		Title:           meta.Title,
		Slug:            slug,
		Excerpt:         excerpt,
		Content:         html,
		Category:        meta.Category,
		AuthorName:      meta.AuthorName,
		Tags:            publishing.ParseTags(meta.Tags),
		FeaturedImage:   meta.FeaturedImage,
		IsFeatured:      meta.IsFeatured,
		IsPublished:     meta.IsPublished,
		CommentsEnabled: meta.CommentsEnabled,
		ReadTime:        publishing.EstimateReadTime(plain),
	}, nil
}

// Publish validates, serializes, and submits the session's document.
func (s *PublishService) Publish(session *editor.Session) (*publishing.Response, error) {
	session.Lock()
	snapshot := session.Doc.Snapshot()
	session.Unlock()

	payload, err := s.BuildPayload(snapshot)
	if err != nil {
		return nil, err
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode publish payload: %w", err)
	}

	resp, err := s.client.Post(s.endpoint, "application/json", bytes.NewReader(body))
	if err != nil {
		s.logger.Publish().Error("Publish submission failed",
			"sessionId", session.ID, "endpoint", s.endpoint, "error", err.Error())
		return nil, fmt.Errorf("publish request failed: %w", err)
	}
	defer resp.Body.Close()

	var result publishing.Response
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to parse publish response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 || !result.Success {
		s.logger.Publish().Error("Publish rejected by platform",
			"sessionId", session.ID, "status", resp.StatusCode, "message", result.Message)
		return &result, fmt.Errorf("publish rejected: %s", result.Message)
	}

	s.logger.Publish().Info("Post published",
		"sessionId", session.ID, "slug", result.Slug, "readTime", payload.ReadTime)
	return &result, nil
}

// Preview renders the document to sanitized post HTML without submitting.
func (s *PublishService) Preview(session *editor.Session) string {
	session.Lock()
	snapshot := session.Doc.Snapshot()
	session.Unlock()
	return s.sanitizer.Sanitize(templates.RenderDocument(snapshot))
}
