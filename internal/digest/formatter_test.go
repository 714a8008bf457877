package digest

import (
	"strings"
	"testing"
	"time"
)

func TestFormatTextPreservesOrderWithRanks(t *testing.T) {
	date := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	entries := []Entry{
		{ID: 4, Title: "Backend Engineer", Company: "Acme", Location: "Remote", Experience: "1-3", MatchScore: 90, ApplyURL: "https://example.com/4"},
		{ID: 2, Title: "Data Analyst", Company: "Globex", Location: "Pune", Experience: "0-1", MatchScore: 55},
	}

	text := FormatText(date, entries)

	if !strings.Contains(text, "2025-06-01") {
		t.Fatalf("expected date in header, got:\n%s", text)
	}

	first := strings.Index(text, "1. Backend Engineer")
	second := strings.Index(text, "2. Data Analyst")
	if first == -1 || second == -1 || second < first {
		t.Fatalf("expected one-based ranks in stored order, got:\n%s", text)
	}

	if !strings.Contains(text, "90% match") || !strings.Contains(text, "https://example.com/4") {
		t.Fatalf("expected score and apply url, got:\n%s", text)
	}
}

func TestFormatTextEmptyDigest(t *testing.T) {
	text := FormatText(time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), nil)
	if !strings.Contains(text, "No matching jobs today.") {
		t.Fatalf("expected empty-digest message, got:\n%s", text)
	}
}

func TestFormatTextDeterministic(t *testing.T) {
	date := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	entries := []Entry{{ID: 1, Title: "Backend Engineer", Company: "Acme", MatchScore: 85}}

	if FormatText(date, entries) != FormatText(date, entries) {
		t.Fatalf("expected identical output for identical input")
	}
}
