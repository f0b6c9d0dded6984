package model

import "testing"

func TestNewDocument(t *testing.T) {
	doc := NewDocument("some text")

	if doc.PageContent != "some text" {
		t.Errorf("PageContent = %q, want %q", doc.PageContent, "some text")
	}
	if doc.Metadata == nil {
		t.Error("Metadata should be initialized, got nil")
	}
	if len(doc.Metadata) != 0 {
		t.Errorf("Metadata should be empty, got %d entries", len(doc.Metadata))
	}
}

func TestCloneMetadata_Nil(t *testing.T) {
	cloned := CloneMetadata(nil)
	if cloned == nil {
		t.Fatal("CloneMetadata(nil) should return a non-nil map")
	}
	if len(cloned) != 0 {
		t.Errorf("expected empty map, got %d entries", len(cloned))
	}
}

func TestCloneMetadata_Independence(t *testing.T) {
	original := map[string]any{
		"source": "report.md",
		"page":   3,
		"tags":   []any{"draft", "internal"},
		"extra": map[string]any{
			"author": "ts",
		},
	}

	cloned := CloneMetadata(original)

	// Mutate every level of the clone.
	cloned["source"] = "other.md"
	cloned["tags"].([]any)[0] = "final"
	cloned["extra"].(map[string]any)["author"] = "someone else"

	if original["source"] != "report.md" {
		t.Errorf("original top-level value changed: %v", original["source"])
	}
	if original["tags"].([]any)[0] != "draft" {
		t.Errorf("original nested slice changed: %v", original["tags"])
	}
	if original["extra"].(map[string]any)["author"] != "ts" {
		t.Errorf("original nested map changed: %v", original["extra"])
	}
}

func TestCloneMetadata_StringSlice(t *testing.T) {
	original := map[string]any{"keywords": []string{"alpha", "beta"}}

	cloned := CloneMetadata(original)
	cloned["keywords"].([]string)[1] = "gamma"

	if got := original["keywords"].([]string)[1]; got != "beta" {
		t.Errorf("original string slice changed: %q", got)
	}
}
