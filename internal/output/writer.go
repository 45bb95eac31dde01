// Package output writes accepted sentences into size-bounded TSV chunks.
package output

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"

	"github.com/crimson-sun/utvalg/internal/model"
)

const defaultBufSize = 64 * 1024 // 64KB

// chunkFilePattern names chunk files with a 1-based index.
const chunkFilePattern = "output_%d.tsv"

// Option configures a ChunkWriter.
type Option func(*ChunkWriter)

// WithChunkSize sets the maximum number of sentences per output file.
func WithChunkSize(n int) Option {
	return func(w *ChunkWriter) { w.chunkSize = n }
}

// WithSingleSentenceMode drops the provenance columns, emitting one bare
// sentence per line.
func WithSingleSentenceMode(on bool) Option {
	return func(w *ChunkWriter) { w.singleSentence = on }
}

// WithBufSize sets the bufio.Writer buffer size. Default: 64KB.
func WithBufSize(bytes int) Option {
	return func(w *ChunkWriter) { w.bufSize = bytes }
}

// ChunkWriter partitions a sentence sequence into contiguous chunks and
// serializes each to its own TSV file in the output directory. In full mode
// every line carries the run's provenance metadata; the fourth column is
// left empty for manual quality-assurance annotation.
type ChunkWriter struct {
	dir            string
	prov           model.Provenance
	chunkSize      int
	singleSentence bool
	bufSize        int
}

// DefaultChunkSize is the per-file sentence cap when none is configured.
const DefaultChunkSize = 1_000_000

// New creates a ChunkWriter targeting dir, which must already exist.
func New(dir string, prov model.Provenance, opts ...Option) *ChunkWriter {
	w := &ChunkWriter{
		dir:       dir,
		prov:      prov,
		chunkSize: DefaultChunkSize,
		bufSize:   defaultBufSize,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// WriteAll writes the sentences in order across ceil(len/chunkSize) chunk
// files and returns the number of files written. A write failure aborts;
// partially written chunks are left in place for the operator to inspect.
func (w *ChunkWriter) WriteAll(sentences []string) (int, error) {
	chunks := 0
	for start := 0; start < len(sentences); start += w.chunkSize {
		end := start + w.chunkSize
		if end > len(sentences) {
			end = len(sentences)
		}
		chunks++
		if err := w.writeChunk(chunks, sentences[start:end]); err != nil {
			return chunks, err
		}
	}
	return chunks, nil
}

// writeChunk serializes one chunk to its indexed file.
func (w *ChunkWriter) writeChunk(index int, sentences []string) error {
	path := filepath.Join(w.dir, fmt.Sprintf(chunkFilePattern, index))
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("output: create %s: %w", path, err)
	}

	bw := bufio.NewWriterSize(f, w.bufSize)
	for _, sentence := range sentences {
		if err := w.writeLine(bw, sentence); err != nil {
			f.Close()
			return fmt.Errorf("output: write %s: %w", path, err)
		}
	}

	if err := bw.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("output: flush %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("output: close %s: %w", path, err)
	}
	return nil
}

func (w *ChunkWriter) writeLine(bw *bufio.Writer, sentence string) error {
	if w.singleSentence {
		_, err := fmt.Fprintf(bw, "%s\n", sentence)
		return err
	}
	_, err := fmt.Fprintf(bw, "%s\t%s\t%s\t\t%s\n",
		sentence, w.prov.SourceURL, w.prov.Rationale, w.prov.Domain)
	return err
}
