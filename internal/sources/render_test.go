package sources

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func intPtr(n int) *int { return &n }

func TestTruncate(t *testing.T) {
	long := strings.Repeat("a", 300)
	got := Truncate(long, snippetLimit)
	if want := strings.Repeat("a", 150) + "..."; got != want {
		t.Fatalf("truncation: got %d chars %q...", len(got), got[:20])
	}

	short := "fits fine"
	if Truncate(short, snippetLimit) != short {
		t.Fatal("short strings must pass through untouched")
	}

	exact := strings.Repeat("b", 150)
	if Truncate(exact, snippetLimit) != exact {
		t.Fatal("exact-limit strings must not gain an ellipsis")
	}
}

func TestTruncateCountsRunes(t *testing.T) {
	long := strings.Repeat("é", 300)
	got := Truncate(long, snippetLimit)
	if n := utf8.RuneCountInString(strings.TrimSuffix(got, "...")); n != 150 {
		t.Fatalf("expected 150 runes kept, got %d", n)
	}
	if !utf8.ValidString(got) {
		t.Fatal("truncation split a rune")
	}
}

func TestRenderMarkdownNoSources(t *testing.T) {
	for _, p := range []*SourcesPayload{nil, {}} {
		out := RenderMarkdown(p)
		if !strings.Contains(out, "No specific sources cited") {
			t.Fatalf("expected explicit no-sources line, got %q", out)
		}
	}
}

func TestRenderKnowledgeBasePageReference(t *testing.T) {
	p := &SourcesPayload{KnowledgeBase: []KnowledgeBaseEntry{
		{Metadata: KnowledgeBaseMetadata{Source: "StudentHandbook.pdf", Page: intPtr(7)}},
		{Metadata: KnowledgeBaseMetadata{Source: "mystery.pdf"}},
	}}
	out := RenderMarkdown(p)

	if !strings.Contains(out, "From Official Handbooks:") {
		t.Fatal("missing handbook section header")
	}
	if !strings.Contains(out, "[City Tech - Student Handbook](https://www.citytech.cuny.edu/current-student/docs/StudentHandbook.pdf) (Page 7)") {
		t.Fatalf("known handbook with page rendered wrong:\n%s", out)
	}
	if !strings.Contains(out, "mystery.pdf (General Reference)") {
		t.Fatalf("unknown handbook must render literally with no link:\n%s", out)
	}
	if strings.Contains(out, "](mystery.pdf)") || strings.Contains(out, "[mystery.pdf]") {
		t.Fatal("unknown handbook must not be linked")
	}
}

func TestRenderSearchEntryDegradesFieldByField(t *testing.T) {
	p := &SourcesPayload{Search: []WebSearchEntry{
		{}, // everything missing
		{Source: "CUNY.edu", Content: strings.Repeat("x", 200), URL: "https://cuny.edu"},
	}}
	out := RenderMarkdown(p)

	if !strings.Contains(out, "Web Source") {
		t.Fatal("missing source must fall back to generic label")
	}
	if !strings.Contains(out, "Content details not available") {
		t.Fatal("missing content must render explicit placeholder")
	}
	if !strings.Contains(out, "Source link unavailable") {
		t.Fatal("missing URL must render explicit placeholder")
	}
	if !strings.Contains(out, strings.Repeat("x", 150)+"...") {
		t.Fatal("long content must be truncated with ellipsis")
	}
	if strings.Contains(out, strings.Repeat("x", 151)) {
		t.Fatal("content exceeded truncation limit")
	}
	if !strings.Contains(out, "[View Source](https://cuny.edu)") {
		t.Fatal("present URL must render a link")
	}
}

func TestRenderSchoolRecords(t *testing.T) {
	p := &SourcesPayload{Schools: []SchoolRecord{
		{Name: "Hunter College", URLs: SchoolURLs{Website: "https://hunter.cuny.edu"}},
		{},
	}}
	out := RenderMarkdown(p)

	if !strings.Contains(out, "Hunter College [(Visit Website)](https://hunter.cuny.edu)") {
		t.Fatalf("school with site rendered wrong:\n%s", out)
	}
	if !strings.Contains(out, "School (Website unavailable)") {
		t.Fatalf("empty school record must degrade:\n%s", out)
	}
}

func TestRenderProfessorLimitedInformationFallback(t *testing.T) {
	p := &SourcesPayload{ProfessorDB: map[string]any{}}
	out := RenderMarkdown(p)

	if !strings.Contains(out, "Professor Information:") {
		t.Fatal("professor section must render for a present record")
	}
	if !strings.Contains(out, "Limited information available") {
		t.Fatal("empty record must render the fallback")
	}
	if !strings.Contains(out, "ratemyprofessors.com") {
		t.Fatal("fallback must offer the external lookup link")
	}
}

func TestRenderProfessorCardSections(t *testing.T) {
	p := &SourcesPayload{ProfessorDB: map[string]any{
		"professor_info": map[string]any{
			"name":       "Ada Lovelace",
			"avg_rating": 4.5,
			"courses":    []any{"CS 101", "CS 202"},
		},
	}}
	out := RenderMarkdown(p)

	for _, want := range []string{"Ada Lovelace", "4.5/5", "CS 101, CS 202"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in card:\n%s", want, out)
		}
	}
	// Contact section had no data and must be absent, not rendered empty.
	for _, absent := range []string{"Office", "Email", "Phone"} {
		if strings.Contains(out, absent) {
			t.Fatalf("unresolved section leaked %q:\n%s", absent, out)
		}
	}
}

func TestAgentTypeLabel(t *testing.T) {
	cases := map[string]string{
		"professor":      "Professor Information System",
		"transfer":       "Transfer Knowledge Base",
		"recommendation": "Program Recommendation Engine",
		"browser":        "Web Search Engine",
		"error":          "Error Handling System",
		"":               "General Knowledge Base",
		"unknown-agent":  "General Knowledge Base",
	}
	for in, want := range cases {
		if got := AgentTypeLabel(in); got != want {
			t.Fatalf("AgentTypeLabel(%q) = %q, want %q", in, got, want)
		}
	}
}
