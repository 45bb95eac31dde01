// Package pipeline orchestrates the batch run: read the corpus, apply the
// fast cascade, apply the proper-noun tagger to the survivors, write the
// chunked output.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/crimson-sun/utvalg/internal/corpus"
	"github.com/crimson-sun/utvalg/internal/filter"
	"github.com/crimson-sun/utvalg/internal/output"
)

// Pipeline connects the cascade runner and the chunk writer.
type Pipeline struct {
	runner *filter.Runner
	writer *output.ChunkWriter
}

// New creates a Pipeline from the given components.
func New(runner *filter.Runner, writer *output.ChunkWriter) *Pipeline {
	return &Pipeline{
		runner: runner,
		writer: writer,
	}
}

// Result summarizes a completed run.
type Result struct {
	Stats  *filter.Stats
	Chunks int
}

// Run executes both filter passes over the corpus at inputPath and writes
// the survivors. Cancellation is honored between phases only; a run either
// completes and writes every chunk or aborts with an error.
func (p *Pipeline) Run(ctx context.Context, inputPath string) (Result, error) {
	records, err := corpus.ReadAll(inputPath)
	if err != nil {
		return Result{}, fmt.Errorf("pipeline: %w", err)
	}
	slog.Info("corpus loaded", "path", inputPath, "records", len(records))

	survivors := p.runner.FastPass(records)
	slog.Info("fast filters applied", "survivors", len(survivors))
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	final, err := p.runner.LinguisticPass(survivors)
	if err != nil {
		return Result{}, fmt.Errorf("pipeline: %w", err)
	}
	slog.Info("proper-noun tagger applied", "accepted", len(final))
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	chunks, err := p.writer.WriteAll(final)
	if err != nil {
		return Result{}, fmt.Errorf("pipeline: %w", err)
	}
	slog.Info("output written", "chunks", chunks)

	return Result{Stats: p.runner.Stats(), Chunks: chunks}, nil
}
