package pipeline

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/crimson-sun/utvalg/internal/filter"
	"github.com/crimson-sun/utvalg/internal/model"
	"github.com/crimson-sun/utvalg/internal/output"
)

type stubDetector struct {
	propn map[string]bool
	err   error
}

func (s stubDetector) HasProperNoun(sentence string) (bool, error) {
	if s.err != nil {
		return false, s.err
	}
	return s.propn[sentence], nil
}

var prov = model.Provenance{
	SourceURL: "https://example.org/corpus",
	Rationale: "test rationale",
	Domain:    "General",
}

func writeInput(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.tsv")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write input: %v", err)
	}
	return path
}

func newPipeline(t *testing.T, det stubDetector, opts ...output.Option) (*Pipeline, string) {
	t.Helper()
	dir := t.TempDir()
	runner := filter.NewRunner(filter.DefaultCascade(), det)
	writer := output.New(dir, prov, opts...)
	return New(runner, writer), dir
}

func TestRunEndToEnd(t *testing.T) {
	input := writeInput(t,
		"1\tDet regner ute i dag.\n"+ // accepted
			"2\tHei (test).\n"+ // rejected: parentheses
			"3\tDette er Oslo.\n"+ // rejected: mid-sentence capital
			"bare-en-kolonne\n"+ // skipped, not counted
			"4\tHovedstaden vokser raskt nå.\n") // rejected by the detector

	det := stubDetector{propn: map[string]bool{"Hovedstaden vokser raskt nå.": true}}
	p, dir := newPipeline(t, det)

	res, err := p.Run(context.Background(), input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if res.Stats.TotalLines != 4 {
		t.Fatalf("expected TotalLines=4 (single-column line not counted), got %d", res.Stats.TotalLines)
	}
	if res.Stats.TotalFinal != 1 {
		t.Fatalf("expected TotalFinal=1, got %d", res.Stats.TotalFinal)
	}
	if got := res.Stats.Rejections("has_no_parentheses"); got != 1 {
		t.Fatalf("expected 1 parenthesis rejection, got %d", got)
	}
	if got := res.Stats.Rejections("basic_proper_noun_filter"); got != 1 {
		t.Fatalf("expected 1 heuristic rejection, got %d", got)
	}
	if got := res.Stats.Rejections(filter.LinguisticFilterName); got != 1 {
		t.Fatalf("expected 1 tagger rejection, got %d", got)
	}
	if res.Chunks != 1 {
		t.Fatalf("expected 1 chunk, got %d", res.Chunks)
	}

	data, err := os.ReadFile(filepath.Join(dir, "output_1.tsv"))
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	want := "Det regner ute i dag.\thttps://example.org/corpus\ttest rationale\t\tGeneral\n"
	if string(data) != want {
		t.Fatalf("output mismatch:\ngot:  %q\nwant: %q", string(data), want)
	}
}

func TestRunIdempotent(t *testing.T) {
	content := "1\tDet regner ute i dag.\n2\tHun liker å lese bøker.\n"
	input := writeInput(t, content)

	read := func() string {
		p, dir := newPipeline(t, stubDetector{}, output.WithSingleSentenceMode(true))
		if _, err := p.Run(context.Background(), input); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		data, err := os.ReadFile(filepath.Join(dir, "output_1.tsv"))
		if err != nil {
			t.Fatalf("read output: %v", err)
		}
		return string(data)
	}

	first := read()
	second := read()
	if first != second {
		t.Fatalf("two identical runs produced different output:\n%q\n%q", first, second)
	}
}

func TestRunDetectorErrorAborts(t *testing.T) {
	input := writeInput(t, "1\tDet regner ute i dag.\n")
	p, dir := newPipeline(t, stubDetector{err: errors.New("model exploded")})

	if _, err := p.Run(context.Background(), input); err == nil {
		t.Fatal("expected error from detector")
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("expected no output after aborted run, got %d entries", len(entries))
	}
}

func TestRunCancelledContext(t *testing.T) {
	input := writeInput(t, "1\tDet regner ute i dag.\n")
	p, _ := newPipeline(t, stubDetector{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := p.Run(ctx, input); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestRunMissingInput(t *testing.T) {
	p, _ := newPipeline(t, stubDetector{})
	if _, err := p.Run(context.Background(), filepath.Join(t.TempDir(), "nope.tsv")); err == nil {
		t.Fatal("expected error for missing input")
	}
}
