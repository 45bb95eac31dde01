package tagger

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// properNounTag is the universal POS tag for proper nouns; labels.txt must
// contain it or the model cannot serve its one purpose here.
const properNounTag = "PROPN"

// labelSet maps the model's output indices to POS tag names, loaded from a
// labels.txt with one tag per 0-indexed line.
type labelSet struct {
	names    []string
	propnIdx int
}

func loadLabels(path string) (*labelSet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("labels: %w", err)
	}
	defer f.Close()

	ls := &labelSet{propnIdx: -1}
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		name := strings.TrimSpace(scanner.Text())
		if name == "" {
			continue
		}
		if name == properNounTag {
			ls.propnIdx = len(ls.names)
		}
		ls.names = append(ls.names, name)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("labels: read error: %w", err)
	}
	if len(ls.names) == 0 {
		return nil, fmt.Errorf("labels: file is empty: %s", path)
	}
	if ls.propnIdx < 0 {
		return nil, fmt.Errorf("labels: missing %s tag in %s", properNounTag, path)
	}
	return ls, nil
}

func (ls *labelSet) count() int {
	return len(ls.names)
}

// name returns the tag at idx, or "X" for an out-of-range index.
func (ls *labelSet) name(idx int) string {
	if idx < 0 || idx >= len(ls.names) {
		return "X"
	}
	return ls.names[idx]
}
