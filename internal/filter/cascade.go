package filter

import (
	"fmt"

	"github.com/crimson-sun/utvalg/internal/model"
)

// LinguisticFilterName is the stats key for the proper-noun tagger stage.
const LinguisticFilterName = "proper_noun_filter"

// ProperNounDetector is the capability the linguistic stage consumes. The
// concrete implementation lives in internal/tagger; tests substitute a stub.
type ProperNounDetector interface {
	HasProperNoun(sentence string) (bool, error)
}

// Runner evaluates the two-stage cascade: the fast filters with
// short-circuit attribution, then the proper-noun detector over the
// survivors. Evaluation is sequential and order-preserving.
type Runner struct {
	fast     []Spec
	detector ProperNounDetector
	stats    *Stats
}

// NewRunner builds a Runner over the given fast filters and detector. Stats
// counters are seeded up front, fast filters first, the linguistic filter
// last.
func NewRunner(fast []Spec, detector ProperNounDetector) *Runner {
	names := make([]string, 0, len(fast)+1)
	for _, spec := range fast {
		names = append(names, spec.Name)
	}
	names = append(names, LinguisticFilterName)
	return &Runner{
		fast:     fast,
		detector: detector,
		stats:    NewStats(names),
	}
}

// Stats returns the runner's counters. Valid to read at any point; the
// report is only complete after both passes.
func (r *Runner) Stats() *Stats {
	return r.stats
}

// FastPass runs every record's sentence through the fast filters in order,
// stopping at the first rejection. The rejection is charged to that filter
// alone. Survivors come back in input order.
func (r *Runner) FastPass(records []model.Record) []string {
	var survivors []string
	for _, rec := range records {
		r.stats.TotalLines++
		if name, ok := r.acceptFast(rec.Sentence); !ok {
			r.stats.Reject(name)
			continue
		}
		survivors = append(survivors, rec.Sentence)
	}
	return survivors
}

// acceptFast reports whether the sentence passes every fast filter. On
// rejection it returns the name of the earliest failing filter.
func (r *Runner) acceptFast(sentence string) (string, bool) {
	for _, spec := range r.fast {
		if !spec.Accept(sentence) {
			return spec.Name, false
		}
	}
	return "", true
}

// LinguisticPass runs the detector over fast-stage survivors, keeping
// sentences without proper nouns. A detector error aborts the run: the
// model misbehaving is fatal, not a per-sentence skip.
func (r *Runner) LinguisticPass(survivors []string) ([]string, error) {
	var final []string
	for _, sentence := range survivors {
		hit, err := r.detector.HasProperNoun(sentence)
		if err != nil {
			return nil, fmt.Errorf("cascade: tagging %q: %w", sentence, err)
		}
		if hit {
			r.stats.Reject(LinguisticFilterName)
			continue
		}
		final = append(final, sentence)
	}
	r.stats.TotalFinal = len(final)
	return final, nil
}
