package chunker

import (
	"strings"
	"testing"
)

func TestChunk_ShortTextSingleChunk(t *testing.T) {
	c := New(500, 50)
	text := "A short legal notice."
	chunks := c.Chunk(text)
	if len(chunks) != 1 {
		t.Fatalf("expected 1 chunk, got %d", len(chunks))
	}
	if chunks[0] != text {
		t.Errorf("chunk should equal whole text, got %q", chunks[0])
	}
}

func TestChunk_EmptyText(t *testing.T) {
	c := New(500, 50)
	if chunks := c.Chunk(""); chunks != nil {
		t.Errorf("empty text should return nil, got %v", chunks)
	}
	if chunks := c.Chunk("   \n\t  "); chunks != nil {
		t.Errorf("whitespace-only text should return nil, got %v", chunks)
	}
}

func TestChunk_Deterministic(t *testing.T) {
	c := New(100, 20)
	text := strings.Repeat("The accused shall appear before the court. ", 30)
	first := c.Chunk(text)
	for i := 0; i < 5; i++ {
		again := c.Chunk(text)
		if len(again) != len(first) {
			t.Fatalf("run %d: chunk count changed: %d vs %d", i, len(again), len(first))
		}
		for j := range first {
			if again[j] != first[j] {
				t.Fatalf("run %d: chunk %d differs", i, j)
			}
		}
	}
}

func TestChunk_ExactCountNoSeparators(t *testing.T) {
	// 1200 runes with no separators: hard cuts at 500 with 50 overlap give
	// windows [0,500) [450,950) [900,1200).
	c := New(500, 50)
	text := strings.Repeat("abcdefghij", 120)
	chunks := c.Chunk(text)
	if len(chunks) != 3 {
		t.Fatalf("expected 3 chunks, got %d", len(chunks))
	}
	if len([]rune(chunks[0])) != 500 || len([]rune(chunks[1])) != 500 {
		t.Errorf("expected full-size leading chunks, got %d and %d", len([]rune(chunks[0])), len([]rune(chunks[1])))
	}
	if len([]rune(chunks[2])) != 300 {
		t.Errorf("expected final chunk of 300, got %d", len([]rune(chunks[2])))
	}
}

func TestChunk_OverlapBound(t *testing.T) {
	c := New(500, 50)
	text := strings.Repeat("x", 1200)
	chunks := c.Chunk(text)
	for i := 1; i < len(chunks); i++ {
		prev := []rune(chunks[i-1])
		cur := []rune(chunks[i])
		tail := string(prev[len(prev)-50:])
		head := string(cur[:50])
		if tail != head {
			t.Errorf("chunk %d does not repeat the trailing 50 runes of chunk %d", i, i-1)
		}
	}
}

func TestChunk_Coverage(t *testing.T) {
	// Consecutive chunks must leave no gap: each chunk starts at or before
	// the previous chunk's end, so every source position is covered.
	c := New(80, 10)
	text := "Article 21 protects life and personal liberty. No person shall be deprived of it except according to procedure established by law. " +
		"Article 14 guarantees equality before the law.\n\nSection 498A deals with cruelty by husband or relatives."
	chunks := c.Chunk(text)
	if len(chunks) < 2 {
		t.Fatalf("expected multiple chunks, got %d", len(chunks))
	}
	src := []rune(text)
	searchFrom := 0
	prevEnd := 0
	for i, ch := range chunks {
		runes := []rune(ch)
		start := runeIndexFrom(src, runes, searchFrom)
		if start < 0 {
			t.Fatalf("chunk %d not found in source from rune %d", i, searchFrom)
		}
		if start > prevEnd {
			t.Errorf("gap before chunk %d: starts at %d, previous ended at %d", i, start, prevEnd)
		}
		prevEnd = start + len(runes)
		searchFrom = start + 1
	}
	if prevEnd != len(src) {
		t.Errorf("last chunk ends at %d, source has %d runes", prevEnd, len(src))
	}
}

func runeIndexFrom(haystack, needle []rune, from int) int {
	for i := from; i+len(needle) <= len(haystack); i++ {
		if string(haystack[i:i+len(needle)]) == string(needle) {
			return i
		}
	}
	return -1
}

func TestChunk_PrefersSeparatorBoundaries(t *testing.T) {
	c := New(100, 10)
	// A paragraph break sits past the midpoint of the first window.
	text := strings.Repeat("a", 70) + "\n\n" + strings.Repeat("b", 200)
	chunks := c.Chunk(text)
	if len(chunks) < 2 {
		t.Fatalf("expected multiple chunks, got %d", len(chunks))
	}
	if !strings.HasSuffix(chunks[0], "\n\n") {
		t.Errorf("first chunk should end at the paragraph break, got %q", chunks[0])
	}
}

func TestChunk_SeparatorEarlyInWindow(t *testing.T) {
	c := New(500, 50)
	// The only paragraph break falls in the front fifth of the window and
	// the rest of the window has no separator at all. The cut must still
	// land on the break instead of hard-cutting mid run.
	text := strings.Repeat("a", 100) + "\n\n" + strings.Repeat("b", 600)
	chunks := c.Chunk(text)
	if len(chunks) < 2 {
		t.Fatalf("expected multiple chunks, got %d", len(chunks))
	}
	want := strings.Repeat("a", 100) + "\n\n"
	if chunks[0] != want {
		t.Errorf("first chunk should end at the paragraph break, got %d runes ending %q",
			len([]rune(chunks[0])), chunks[0][len(chunks[0])-5:])
	}
	last := chunks[len(chunks)-1]
	if !strings.HasSuffix(last, "b") {
		t.Errorf("last chunk should cover the tail, got %q", last)
	}
}

func TestChunk_FallsThroughSeparatorPriorities(t *testing.T) {
	c := New(500, 50)
	// No newline or sentence punctuation anywhere, only a single space near
	// the start of the window. The lowest-priority separator still beats a
	// hard cut.
	text := strings.Repeat("a", 30) + " " + strings.Repeat("b", 600)
	chunks := c.Chunk(text)
	if len(chunks) < 2 {
		t.Fatalf("expected multiple chunks, got %d", len(chunks))
	}
	want := strings.Repeat("a", 30) + " "
	if chunks[0] != want {
		t.Errorf("first chunk should end at the space, got %d runes", len([]rune(chunks[0])))
	}
}

func TestNew_ClampsBadConfig(t *testing.T) {
	c := New(0, -1)
	if c.Size() != 500 || c.Overlap() != 0 {
		t.Errorf("expected defaults 500/0, got %d/%d", c.Size(), c.Overlap())
	}
	c = New(10, 20)
	if c.Overlap() >= c.Size() {
		t.Errorf("overlap must be clamped below size, got %d/%d", c.Overlap(), c.Size())
	}
}
