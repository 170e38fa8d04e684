package services

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/UniScopeHQ/composer-go/internal/domain/entities/editor"
	"github.com/UniScopeHQ/composer-go/internal/domain/entities/publishing"
)

func composedSnapshot(title, author string) *editor.Snapshot {
	doc := editor.NewDocument()
	doc.SetMeta(editor.Metadata{
		Title:      title,
		AuthorName: author,
		Category:   "scholarships",
		Tags:       "loans, visas",
	})
	doc.Insert(editor.BlockHeading, editor.Content{Text: "Funding Options"}, editor.DefaultStyle(), -1)
	doc.Insert(editor.BlockText, editor.Content{Text: strings.Repeat("word ", 250)}, editor.DefaultStyle(), -1)
	return doc.Snapshot()
}

func TestBuildPayloadValidation(t *testing.T) {
	svc := NewPublishService("http://unreachable.invalid", time.Second, testLogger(t))

	if _, err := svc.BuildPayload(composedSnapshot("", "Asha")); err != ErrMissingTitle {
		t.Errorf("missing title: got %v", err)
	}
	if _, err := svc.BuildPayload(composedSnapshot("A Guide", "")); err != ErrMissingAuthor {
		t.Errorf("missing author: got %v", err)
	}
	if _, err := svc.BuildPayload(composedSnapshot("!!!", "Asha")); err != ErrMissingSlug {
		t.Errorf("title with no sluggable characters: got %v", err)
	}
}

func TestBuildPayloadDerivesFields(t *testing.T) {
	svc := NewPublishService("http://unreachable.invalid", time.Second, testLogger(t))

	payload, err := svc.BuildPayload(composedSnapshot("Study In Canada!", "Asha"))
	if err != nil {
		t.Fatalf("BuildPayload: %v", err)
	}
	if payload.Slug != "study-in-canada" {
		t.Errorf("slug = %q", payload.Slug)
	}
	if payload.ReadTime != 2 {
		t.Errorf("252 words should read in 2 minutes, got %d", payload.ReadTime)
	}
	if len(payload.Tags) != 2 || payload.Tags[0] != "loans" {
		t.Errorf("tags = %v", payload.Tags)
	}
	if payload.Excerpt == "" {
		t.Error("excerpt should fall back to document text")
	}
	if !strings.Contains(payload.Content, "Funding Options") {
		t.Errorf("content html missing heading:\n%s", payload.Content)
	}
	if strings.Contains(payload.Content, "drag") || strings.Contains(payload.Content, "toolbar") {
		t.Error("published html must not carry editor affordances")
	}
}

func TestBuildPayloadKeepsExplicitSlugAndExcerpt(t *testing.T) {
	svc := NewPublishService("http://unreachable.invalid", time.Second, testLogger(t))

	doc := editor.NewDocument()
	doc.SetMeta(editor.Metadata{
		Title:      "A Title",
		AuthorName: "Asha",
		Slug:       "custom-slug",
		Excerpt:    "Hand-written excerpt.",
	})
	payload, err := svc.BuildPayload(doc.Snapshot())
	if err != nil {
		t.Fatalf("BuildPayload: %v", err)
	}
	if payload.Slug != "custom-slug" || payload.Excerpt != "Hand-written excerpt." {
		t.Errorf("explicit fields must win: %+v", payload)
	}
}

func TestPublishSubmitsAndParsesResponse(t *testing.T) {
	var received publishing.Payload
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&received)
		json.NewEncoder(w).Encode(publishing.Response{Success: true, Slug: received.Slug})
	}))
	defer server.Close()

	svc := NewPublishService(server.URL, time.Second, testLogger(t))
	session := editor.NewSession("author-1")
	session.Doc = editor.FromSnapshot(composedSnapshot("Study In Canada", "Asha"))

	result, err := svc.Publish(session)
	if err != nil {
		t.Fatalf("Publish: %v", err)
	}
	if result.Slug != "study-in-canada" {
		t.Errorf("response slug = %q", result.Slug)
	}
	if received.AuthorName != "Asha" || received.Category != "scholarships" {
		t.Errorf("payload fields lost in transit: %+v", received)
	}
}

func TestPublishValidationFailsLocally(t *testing.T) {
	requests := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
	}))
	defer server.Close()

	svc := NewPublishService(server.URL, time.Second, testLogger(t))
	session := editor.NewSession("author-1")
	session.Doc = editor.FromSnapshot(composedSnapshot("", "Asha"))

	if _, err := svc.Publish(session); err != ErrMissingTitle {
		t.Errorf("expected ErrMissingTitle, got %v", err)
	}
	if requests != 0 {
		t.Error("validation failures must not reach the network")
	}
}

func TestPublishRejectionLeavesDocumentIntact(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		json.NewEncoder(w).Encode(publishing.Response{Success: false, Message: "slug taken"})
	}))
	defer server.Close()

	svc := NewPublishService(server.URL, time.Second, testLogger(t))
	session := editor.NewSession("author-1")
	session.Doc = editor.FromSnapshot(composedSnapshot("Study In Canada", "Asha"))
	before := session.Doc.Len()

	result, err := svc.Publish(session)
	if err == nil {
		t.Fatal("platform rejection must surface as an error")
	}
	if result == nil || result.Message != "slug taken" {
		t.Errorf("rejection message should pass through: %+v", result)
	}
	if session.Doc.Len() != before {
		t.Error("a failed publish must leave the document untouched")
	}
}

func TestPublishTransportFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // connection refused from here on

	svc := NewPublishService(server.URL, time.Second, testLogger(t))
	session := editor.NewSession("author-1")
	session.Doc = editor.FromSnapshot(composedSnapshot("Study In Canada", "Asha"))

	if _, err := svc.Publish(session); err == nil {
		t.Fatal("transport failure must surface as an error")
	}
	if session.Doc.Len() == 0 {
		t.Error("document survives a failed submission")
	}
}

func TestPreviewRendersSanitizedHTML(t *testing.T) {
	svc := NewPublishService("http://unreachable.invalid", time.Second, testLogger(t))
	session := editor.NewSession("author-1")
	session.Doc = editor.FromSnapshot(composedSnapshot("Study In Canada", "Asha"))

	html := svc.Preview(session)
	if !strings.Contains(html, "Funding Options") {
		t.Errorf("preview missing content:\n%s", html)
	}
	if strings.Contains(html, "<script") {
		t.Errorf("preview must be sanitized:\n%s", html)
	}
}
