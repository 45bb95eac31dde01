package tagger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeLabels(t *testing.T, names []string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "labels.txt")
	if err := os.WriteFile(path, []byte(strings.Join(names, "\n")+"\n"), 0644); err != nil {
		t.Fatalf("write labels: %v", err)
	}
	return path
}

func TestLoadLabels(t *testing.T) {
	names := []string{"ADJ", "NOUN", "PROPN", "VERB", "X"}
	ls, err := loadLabels(writeLabels(t, names))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ls.count() != 5 {
		t.Fatalf("expected 5 labels, got %d", ls.count())
	}
	if ls.propnIdx != 2 {
		t.Fatalf("expected PROPN at index 2, got %d", ls.propnIdx)
	}
	if ls.name(1) != "NOUN" {
		t.Fatalf("expected NOUN at index 1, got %q", ls.name(1))
	}
	if ls.name(99) != "X" {
		t.Fatalf("expected out-of-range fallback X, got %q", ls.name(99))
	}
}

func TestLoadLabelsMissingPROPN(t *testing.T) {
	if _, err := loadLabels(writeLabels(t, []string{"ADJ", "NOUN", "VERB"})); err == nil {
		t.Fatal("expected error for label set without PROPN")
	}
}

func TestLoadLabelsSkipsBlankLines(t *testing.T) {
	ls, err := loadLabels(writeLabels(t, []string{"NOUN", "", "PROPN"}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ls.count() != 2 {
		t.Fatalf("expected 2 labels, got %d", ls.count())
	}
	if ls.propnIdx != 1 {
		t.Fatalf("expected PROPN at index 1, got %d", ls.propnIdx)
	}
}

func TestNewFailsFastOnMissingArtifacts(t *testing.T) {
	dir := t.TempDir()
	_, err := New(dir)
	if err == nil {
		t.Fatal("expected error for empty model directory")
	}
	if !strings.Contains(err.Error(), "model.onnx") {
		t.Fatalf("expected message naming the missing artifact, got %v", err)
	}
}

func TestArgmax(t *testing.T) {
	tests := []struct {
		row  []float32
		want int
	}{
		{[]float32{0.1, 0.9, 0.3}, 1},
		{[]float32{2, 1, 0}, 0},
		{[]float32{-3, -1, -2}, 1},
	}
	for _, tt := range tests {
		if got := argmax(tt.row); got != tt.want {
			t.Fatalf("argmax(%v) = %d, want %d", tt.row, got, tt.want)
		}
	}
}
