package publishing

import (
	"strings"
	"testing"
)

func TestGenerateSlug(t *testing.T) {
	cases := []struct {
		title string
		want  string
	}{
		{"Top 10 Scholarships for 2026!", "top-10-scholarships-for-2026"},
		{"  Study in   Germany  ", "study-in-germany"},
		{"Loans & Visas: A Guide", "loans-visas-a-guide"},
		{"already-a-slug", "already-a-slug"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := GenerateSlug(tc.title); got != tc.want {
			t.Errorf("GenerateSlug(%q) = %q, want %q", tc.title, got, tc.want)
		}
	}
}

func TestGenerateSlugIdempotent(t *testing.T) {
	slug := GenerateSlug("How To Fund Your Master's Degree")
	if again := GenerateSlug(slug); again != slug {
		t.Errorf("slug not idempotent: %q -> %q", slug, again)
	}
}

func TestParseTags(t *testing.T) {
	tags := ParseTags(" loans , visas,,scholarships ")
	want := []string{"loans", "visas", "scholarships"}
	if len(tags) != len(want) {
		t.Fatalf("expected %d tags, got %v", len(want), tags)
	}
	for i, w := range want {
		if tags[i] != w {
			t.Errorf("tag %d: %q, want %q", i, tags[i], w)
		}
	}
	if got := ParseTags(""); len(got) != 0 {
		t.Errorf("empty input should produce no tags: %v", got)
	}
}

func TestEstimateReadTime(t *testing.T) {
	if got := EstimateReadTime(""); got != 0 {
		t.Errorf("empty document reads in 0 minutes, got %d", got)
	}
	if got := EstimateReadTime("word"); got != 1 {
		t.Errorf("single word rounds up to 1, got %d", got)
	}
	long := strings.Repeat("word ", 401)
	if got := EstimateReadTime(long); got != 3 {
		t.Errorf("401 words at 200wpm rounds up to 3, got %d", got)
	}
}

func TestExcerptFrom(t *testing.T) {
	short := "A short post."
	if got := ExcerptFrom(short); got != short {
		t.Errorf("short text passes through, got %q", got)
	}

	long := strings.Repeat("university ", 30)
	got := ExcerptFrom(long)
	if len(got) > 164 {
		t.Errorf("excerpt too long: %d chars", len(got))
	}
	if !strings.HasSuffix(got, "...") {
		t.Errorf("truncated excerpt should end with ellipsis: %q", got)
	}
	if strings.Contains(got, "  ") {
		t.Errorf("excerpt should collapse whitespace: %q", got)
	}
}
