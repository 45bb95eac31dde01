// Package tagger runs a pretrained Norwegian part-of-speech model over
// candidate sentences to detect proper nouns. The model is a BERT-style
// token classifier exported to ONNX, loaded once at startup; a missing
// model is a construction error so the caller can abort before touching
// any data.
package tagger

import (
	"fmt"
	"os"
	"path/filepath"
)

// Expected artifacts inside the model directory.
const (
	modelFile  = "model.onnx"
	vocabFile  = "vocab.txt"
	labelsFile = "labels.txt"
)

// Tagger tags sentences with universal POS labels via local ONNX inference.
type Tagger struct {
	session *onnxSession
	tok     *tokenizer
	labels  *labelSet
}

// New loads the model, vocabulary, and label set from dir. Every artifact
// must be present; the returned error names the missing piece so operators
// can fix the installation.
func New(dir string) (*Tagger, error) {
	for _, name := range []string{modelFile, vocabFile, labelsFile} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			return nil, fmt.Errorf("tagger: model artifact %s not found in %s (download the POS model bundle into the model directory): %w", name, dir, err)
		}
	}

	sess, err := newONNXSession(filepath.Join(dir, modelFile))
	if err != nil {
		return nil, fmt.Errorf("tagger: %w", err)
	}

	tok, err := newTokenizer(filepath.Join(dir, vocabFile))
	if err != nil {
		sess.close()
		return nil, fmt.Errorf("tagger: %w", err)
	}

	labels, err := loadLabels(filepath.Join(dir, labelsFile))
	if err != nil {
		sess.close()
		return nil, fmt.Errorf("tagger: %w", err)
	}

	if int(sess.numLabels) != labels.count() {
		sess.close()
		return nil, fmt.Errorf("tagger: model emits %d labels but labels.txt lists %d",
			sess.numLabels, labels.count())
	}

	return &Tagger{session: sess, tok: tok, labels: labels}, nil
}

// Tag returns the POS label for each real token position in the sentence,
// excluding the [CLS]/[SEP] framing.
func (t *Tagger) Tag(sentence string) ([]string, error) {
	idxs, err := t.tagIndices(sentence)
	if err != nil {
		return nil, err
	}
	tags := make([]string, len(idxs))
	for i, idx := range idxs {
		tags[i] = t.labels.name(idx)
	}
	return tags, nil
}

// HasProperNoun reports whether any token in the sentence is tagged PROPN.
func (t *Tagger) HasProperNoun(sentence string) (bool, error) {
	idxs, err := t.tagIndices(sentence)
	if err != nil {
		return false, err
	}
	for _, idx := range idxs {
		if idx == t.labels.propnIdx {
			return true, nil
		}
	}
	return false, nil
}

// tagIndices runs inference and argmaxes the per-position logits for the
// real token positions (mask 1, excluding [CLS] at 0 and the closing [SEP]).
func (t *Tagger) tagIndices(sentence string) ([]int, error) {
	enc := t.tok.encode(sentence)

	logits, err := t.session.infer(enc)
	if err != nil {
		return nil, fmt.Errorf("tagger: %w", err)
	}

	n := int(t.session.numLabels)
	var idxs []int
	for pos := 1; pos < enc.realLen-1; pos++ {
		row := logits[pos*n : (pos+1)*n]
		idxs = append(idxs, argmax(row))
	}
	return idxs, nil
}

// Close releases ONNX Runtime resources.
func (t *Tagger) Close() error {
	if t.session != nil {
		return t.session.close()
	}
	return nil
}

func argmax(row []float32) int {
	best := 0
	for i := 1; i < len(row); i++ {
		if row[i] > row[best] {
			best = i
		}
	}
	return best
}
