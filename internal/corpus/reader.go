// Package corpus reads the tab-separated input corpus into memory.
package corpus

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/crimson-sun/utvalg/internal/model"
)

// Scanner buffer cap. Corpus lines are sentences, but crawled text can
// carry the odd pathological line.
const maxLineBytes = 1024 * 1024

// ReadAll loads every well-formed record from the TSV file at path. A
// well-formed line has at least two tab-separated columns: an ID (kept but
// otherwise ignored) and a sentence. Blank lines and lines with fewer than
// two columns are skipped silently and never counted.
func ReadAll(path string) ([]model.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("corpus: open %s: %w", path, err)
	}
	defer f.Close()

	var records []model.Record
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		parts := strings.Split(line, "\t")
		if len(parts) < 2 {
			continue
		}
		records = append(records, model.Record{
			ID:       parts[0],
			Sentence: strings.TrimSpace(parts[1]),
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("corpus: read %s: %w", path, err)
	}
	return records, nil
}
