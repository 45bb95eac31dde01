package model

// Record is one parsed input line: an identifier and the sentence it carries.
// Only the sentence participates in filtering; the ID is kept for debugging.
type Record struct {
	ID       string
	Sentence string
}
