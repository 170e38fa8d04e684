// Package publishing defines the publish payload the composer submits to
// the platform's create-blog endpoint, and the pure helpers that derive its
// computed fields from document state.
package publishing

import (
	"strings"
	"unicode"
)

// Payload is the flattened, publishable form of a composed document.
type Payload struct {
	Title           string   `json:"title"`
	Slug            string   `json:"slug"`
	Excerpt         string   `json:"excerpt"`
	Content         string   `json:"content"` // sanitized HTML
	Category        string   `json:"category"`
	AuthorName      string   `json:"authorName"`
	Tags            []string `json:"tags"`
	FeaturedImage   string   `json:"featuredImage,omitempty"`
	IsFeatured      bool     `json:"isFeatured"`
	IsPublished     bool     `json:"isPublished"`
	CommentsEnabled bool     `json:"commentsEnabled"`
	ReadTime        int      `json:"readTime"` // minutes
}

// Response is the create-blog endpoint's reply. On success the slug names
// the created resource so the client can redirect to the published view.
type Response struct {
	Success bool   `json:"success"`
	Slug    string `json:"slug,omitempty"`
	Message string `json:"message,omitempty"`
}

// GenerateSlug derives a URL slug from a title: lowercased, punctuation
// stripped, whitespace collapsed to single hyphens. Idempotent, so a slug
// fed back through produces itself.
func GenerateSlug(title string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(title)) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
		case unicode.IsSpace(r) || r == '-':
			b.WriteRune('-')
		}
	}
	slug := b.String()
	for strings.Contains(slug, "--") {
		slug = strings.ReplaceAll(slug, "--", "-")
	}
	return strings.Trim(slug, "-")
}

// ParseTags splits a raw comma-separated tag string, trimming whitespace
// and dropping empties.
func ParseTags(raw string) []string {
	parts := strings.Split(raw, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

// ExcerptFrom derives a fallback excerpt from document text when the
// author left the excerpt field blank: the first 160 characters, cut at a
// word boundary.
func ExcerptFrom(text string) string {
	text = strings.Join(strings.Fields(text), " ")
	if len(text) <= 160 {
		return text
	}
	cut := strings.LastIndex(text[:160], " ")
	if cut <= 0 {
		cut = 160
	}
	return text[:cut] + "..."
}

// EstimateReadTime computes the read-time estimate in minutes at 200 words
// per minute, rounded up.
func EstimateReadTime(text string) int {
	words := len(strings.Fields(text))
	if words == 0 {
		return 0
	}
	return (words + 199) / 200
}
