package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"readmark/internal/content"
)

func TestWriteJSONKeepsURLsReadable(t *testing.T) {
	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	candidate := content.Candidate{
		ID:           "1",
		Title:        "Kaguya-sama: Love Is War & <More>",
		ThumbnailURL: "https://img.example.com/c.jpg?w=200&h=300",
		Source:       content.CatalogAniList,
	}
	if err := writeJSON(cmd, candidate); err != nil {
		t.Fatalf("writeJSON: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"w=200&h=300", "War & <More>"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q unescaped in %s", want, out)
		}
	}
	if !strings.HasSuffix(out, "}\n") {
		t.Fatalf("expected trailing newline, got %q", out)
	}

	var decoded content.Candidate
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if decoded.ThumbnailURL != candidate.ThumbnailURL || decoded.Title != candidate.Title {
		t.Fatalf("round trip mismatch: %+v", decoded)
	}
}
