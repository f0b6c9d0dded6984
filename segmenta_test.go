package segmenta_test

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/tsawler/segmenta"
	"github.com/tsawler/segmenta/model"
	"github.com/tsawler/segmenta/splitter"
)

func TestFromString_Chunks(t *testing.T) {
	chunks, warnings, err := segmenta.FromString("hello world foo bar").
		Separators([]string{" ", ""}).
		KeepSeparator(false).
		ChunkSize(10).
		ChunkOverlap(2).
		Chunks()
	if err != nil {
		t.Fatalf("Chunks() error = %v", err)
	}
	if len(warnings) != 0 {
		t.Errorf("unexpected warnings: %v", warnings)
	}

	want := []string{"hello", "world foo", "bar"}
	if !reflect.DeepEqual(chunks, want) {
		t.Errorf("Chunks() = %v, want %v", chunks, want)
	}
}

func TestFromString_MarkdownProfile(t *testing.T) {
	text := "# Title\n\nIntro paragraph.\n\n## Section One\n\nFirst section body.\n\n## Section Two\n\nSecond section body.\n"

	chunks, _, err := segmenta.FromString(text).
		Markdown().
		ChunkSize(40).
		ChunkOverlap(0).
		Chunks()
	if err != nil {
		t.Fatalf("Chunks() error = %v", err)
	}

	want := []string{
		"# Title\n\nIntro paragraph.",
		"## Section One\n\nFirst section body.",
		"## Section Two\n\nSecond section body.",
	}
	if !reflect.DeepEqual(chunks, want) {
		t.Errorf("Chunks() = %#v, want %#v", chunks, want)
	}
}

func TestSegmenter_Immutability(t *testing.T) {
	base := segmenta.FromString("alpha beta gamma delta epsilon zeta").
		Separators([]string{" ", ""}).
		KeepSeparator(false).
		ChunkOverlap(0)

	coarse, _, err := base.ChunkSize(100).Chunks()
	if err != nil {
		t.Fatalf("coarse Chunks() error = %v", err)
	}
	fine, _, err := base.ChunkSize(12).Chunks()
	if err != nil {
		t.Fatalf("fine Chunks() error = %v", err)
	}

	if len(coarse) != 1 {
		t.Errorf("coarse split should produce one chunk, got %v", coarse)
	}
	if len(fine) < 2 {
		t.Errorf("fine split should produce several chunks, got %v", fine)
	}

	// The base chain must be unaffected by either derived chain.
	again, _, err := base.ChunkSize(100).Chunks()
	if err != nil {
		t.Fatalf("repeat Chunks() error = %v", err)
	}
	if !reflect.DeepEqual(again, coarse) {
		t.Errorf("base chain was mutated: %v vs %v", again, coarse)
	}
}

func TestFromString_InvalidConfig(t *testing.T) {
	_, _, err := segmenta.FromString("text").ChunkSize(10).ChunkOverlap(20).Chunks()
	if err == nil {
		t.Fatal("expected configuration error for overlap > size")
	}
}

func TestFromString_EmptyInput(t *testing.T) {
	docs, warnings, err := segmenta.FromString("").Markdown().Documents()
	if err != nil {
		t.Fatalf("Documents() error = %v", err)
	}
	if len(docs) != 0 {
		t.Errorf("empty input should yield no documents, got %d", len(docs))
	}
	if len(warnings) != 0 {
		t.Errorf("unexpected warnings: %v", warnings)
	}
}

func TestFromFile_DetectsFormatAndMetadata(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "guide.md")
	content := "# Guide\n\nSome body text that explains things.\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	docs, _, err := segmenta.FromFile(path).
		ChunkSize(500).
		Metadata(map[string]any{"collection": "docs"}).
		Documents()
	if err != nil {
		t.Fatalf("Documents() error = %v", err)
	}
	if len(docs) != 1 {
		t.Fatalf("got %d documents, want 1", len(docs))
	}

	doc := docs[0]
	if doc.Metadata["source"] != path {
		t.Errorf("source metadata = %v, want %v", doc.Metadata["source"], path)
	}
	if doc.Metadata["format"] != "markdown" {
		t.Errorf("format metadata = %v, want markdown", doc.Metadata["format"])
	}
	if doc.Metadata["collection"] != "docs" {
		t.Errorf("caller metadata lost: %v", doc.Metadata)
	}
}

func TestFromFile_MissingFile(t *testing.T) {
	_, _, err := segmenta.FromFile(filepath.Join(t.TempDir(), "missing.md")).Chunks()
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestFromDocuments_CarriesMetadata(t *testing.T) {
	input := []model.Document{
		{PageContent: "one two three four five six", Metadata: map[string]any{"source": "a"}},
	}

	docs, _, err := segmenta.FromDocuments(input).
		Separators([]string{" ", ""}).
		KeepSeparator(false).
		ChunkSize(10).
		ChunkOverlap(0).
		Documents()
	if err != nil {
		t.Fatalf("Documents() error = %v", err)
	}
	if len(docs) < 2 {
		t.Fatalf("expected multiple documents, got %d", len(docs))
	}
	for i, doc := range docs {
		if doc.Metadata["source"] != "a" {
			t.Errorf("document %d lost metadata: %v", i, doc.Metadata)
		}
	}
}

func TestFromDocuments_MetadataOverlay(t *testing.T) {
	input := []model.Document{
		{PageContent: "one two three four", Metadata: map[string]any{"source": "a"}},
	}

	docs, _, err := segmenta.FromDocuments(input).
		Separators([]string{" ", ""}).
		KeepSeparator(false).
		ChunkSize(10).
		ChunkOverlap(0).
		Metadata(map[string]any{"collection": "notes"}).
		Documents()
	if err != nil {
		t.Fatalf("Documents() error = %v", err)
	}
	if len(docs) == 0 {
		t.Fatal("expected documents")
	}
	for i, doc := range docs {
		if doc.Metadata["source"] != "a" || doc.Metadata["collection"] != "notes" {
			t.Errorf("document %d metadata = %v", i, doc.Metadata)
		}
	}
	if _, ok := input[0].Metadata["collection"]; ok {
		t.Error("input document metadata was modified")
	}
}

func TestFromString_AddStartIndex(t *testing.T) {
	docs, _, err := segmenta.FromString("foo bar foo bar").
		Separators([]string{" ", ""}).
		KeepSeparator(false).
		ChunkSize(10).
		ChunkOverlap(0).
		AddStartIndex().
		Documents()
	if err != nil {
		t.Fatalf("Documents() error = %v", err)
	}

	prev := -1
	for i, doc := range docs {
		index, ok := doc.Metadata[model.StartIndexKey].(int)
		if !ok {
			t.Fatalf("document %d missing start_index", i)
		}
		if index < prev {
			t.Errorf("start_index not monotonic: %d after %d", index, prev)
		}
		prev = index
	}
}

func TestFromString_Warnings(t *testing.T) {
	chunks, warnings, err := segmenta.FromString("abcdefghij xy").
		Separators([]string{" "}).
		KeepSeparator(false).
		ChunkSize(4).
		ChunkOverlap(0).
		Chunks()
	if err != nil {
		t.Fatalf("Chunks() error = %v", err)
	}
	if len(chunks) != 2 {
		t.Fatalf("Chunks() = %v, want 2 chunks", chunks)
	}
	if len(warnings) != 1 {
		t.Fatalf("expected 1 warning, got %d", len(warnings))
	}
	formatted := segmenta.FormatWarnings(warnings)
	if !strings.Contains(formatted, "longer than the requested 4") {
		t.Errorf("FormatWarnings() = %q", formatted)
	}
}

func TestFromString_CustomLengthFunc(t *testing.T) {
	// Count words instead of runes.
	words := func(s string) int { return len(strings.Fields(s)) }

	chunks, _, err := segmenta.FromString("a b c d e f").
		Separators([]string{" ", ""}).
		KeepSeparator(false).
		ChunkSize(3).
		ChunkOverlap(0).
		LengthFunc(words).
		Chunks()
	if err != nil {
		t.Fatalf("Chunks() error = %v", err)
	}

	want := []string{"a b c", "d e f"}
	if !reflect.DeepEqual(chunks, want) {
		t.Errorf("Chunks() = %v, want %v", chunks, want)
	}
}

func TestMustChunks(t *testing.T) {
	chunks := segmenta.MustChunks(segmenta.FromString("tiny").Markdown().Chunks())
	if len(chunks) != 1 || chunks[0] != "tiny" {
		t.Errorf("MustChunks() = %v", chunks)
	}

	defer func() {
		if recover() == nil {
			t.Error("MustChunks should panic on error")
		}
	}()
	segmenta.MustChunks(segmenta.FromString("x").ChunkSize(1).ChunkOverlap(2).Chunks())
}

func TestFormatShorthand(t *testing.T) {
	viaShorthand, _, err := segmenta.FromString("<p>a</p><p>b</p>").HTML().ChunkSize(8).ChunkOverlap(0).Chunks()
	if err != nil {
		t.Fatalf("Chunks() error = %v", err)
	}
	viaFormat, _, err := segmenta.FromString("<p>a</p><p>b</p>").Format(splitter.FormatHTML).ChunkSize(8).ChunkOverlap(0).Chunks()
	if err != nil {
		t.Fatalf("Chunks() error = %v", err)
	}
	if !reflect.DeepEqual(viaShorthand, viaFormat) {
		t.Errorf("HTML() and Format(FormatHTML) diverge: %v vs %v", viaShorthand, viaFormat)
	}
}
