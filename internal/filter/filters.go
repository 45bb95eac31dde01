package filter

import (
	"strings"
	"unicode"
)

// Tunables for the length-based filters. The reading-time band targets short
// sentences suitable for recording; long words count double to approximate
// multi-syllable reading cost.
const (
	wordsPerMinute  = 100
	minReadingSec   = 2.0
	maxReadingSec   = 7.0
	longWordRunes   = 10
	maxWords        = 14
	allowedPunct    = ",.!?'’:;-"
	norwegianExtras = "æøåÆØÅ"
)

// Spec is a named fast filter. The name is the stable key rejections are
// counted under, so it must never change once reports depend on it.
type Spec struct {
	Name   string
	Accept func(sentence string) bool
}

// DefaultCascade returns the fast filters in evaluation order, cheapest
// first. The order is significant: a sentence is charged to the first
// filter that rejects it.
func DefaultCascade() []Spec {
	return []Spec{
		{Name: "starts_with_capital", Accept: startsWithCapital},
		{Name: "has_no_parentheses", Accept: hasNoParentheses},
		{Name: "ends_with_punctuation", Accept: endsWithPunctuation},
		{Name: "only_one_sentence", Accept: onlyOneSentence},
		{Name: "has_no_numbers", Accept: hasNoNumbers},
		{Name: "no_special_characters", Accept: noSpecialCharacters},
		{Name: "reading_time_filter", Accept: readingTimeInBand},
		{Name: "max_word_count_filter", Accept: underMaxWordCount},
		{Name: "basic_proper_noun_filter", Accept: noMidSentenceCapitals},
	}
}

// startsWithCapital accepts sentences whose first non-whitespace rune is an
// uppercase letter. Unicode-aware so Æ, Ø and Å qualify.
func startsWithCapital(sentence string) bool {
	stripped := strings.TrimLeftFunc(sentence, unicode.IsSpace)
	if stripped == "" {
		return false
	}
	r := []rune(stripped)[0]
	return unicode.IsUpper(r)
}

func hasNoParentheses(sentence string) bool {
	if strings.TrimSpace(sentence) == "" {
		return false
	}
	return !strings.ContainsAny(sentence, "()")
}

// endsWithPunctuation accepts sentences whose last non-whitespace rune is a
// full stop or question mark.
func endsWithPunctuation(sentence string) bool {
	stripped := strings.TrimRightFunc(sentence, unicode.IsSpace)
	if stripped == "" {
		return false
	}
	runes := []rune(stripped)
	last := runes[len(runes)-1]
	return last == '.' || last == '?'
}

// onlyOneSentence accepts strings containing exactly one end punctuation
// mark ('.' or '?'), and only in final position. Rejects multi-sentence
// strings and embedded stops such as abbreviations.
func onlyOneSentence(sentence string) bool {
	stripped := strings.TrimRightFunc(sentence, unicode.IsSpace)
	if stripped == "" {
		return false
	}
	total := strings.Count(stripped, ".") + strings.Count(stripped, "?")
	return total == 1 && endsWithPunctuation(stripped)
}

func hasNoNumbers(sentence string) bool {
	if strings.TrimSpace(sentence) == "" {
		return false
	}
	return !strings.ContainsFunc(sentence, unicode.IsDigit)
}

// noSpecialCharacters accepts sentences drawn entirely from the allow-list:
// ASCII letters, the Norwegian letters æøå in both cases, whitespace, and a
// small punctuation set. Anything else (digits are caught earlier, but also
// foreign diacritics, symbols, emoji) rejects.
func noSpecialCharacters(sentence string) bool {
	if strings.TrimSpace(sentence) == "" {
		return false
	}
	for _, r := range sentence {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		case strings.ContainsRune(norwegianExtras, r):
		case unicode.IsSpace(r):
		case strings.ContainsRune(allowedPunct, r):
		default:
			return false
		}
	}
	return true
}

// readingTimeInBand accepts sentences whose estimated reading time at
// wordsPerMinute falls within [minReadingSec, maxReadingSec]. Words longer
// than longWordRunes count as two.
func readingTimeInBand(sentence string) bool {
	words := strings.Fields(sentence)
	if len(words) == 0 {
		return false
	}
	effective := 0
	for _, w := range words {
		if len([]rune(w)) > longWordRunes {
			effective += 2
		} else {
			effective++
		}
	}
	seconds := float64(effective) / (wordsPerMinute / 60.0)
	return seconds >= minReadingSec && seconds <= maxReadingSec
}

func underMaxWordCount(sentence string) bool {
	n := len(strings.Fields(sentence))
	return n > 0 && n <= maxWords
}

// noMidSentenceCapitals rejects sentences where any word after the first
// starts with an uppercase letter. A cheap proper-noun screen that spares
// the tagger; the first word is exempt since sentence-initial
// capitalization is expected.
func noMidSentenceCapitals(sentence string) bool {
	words := strings.Fields(sentence)
	if len(words) == 0 {
		return false
	}
	for _, w := range words[1:] {
		if unicode.IsUpper([]rune(w)[0]) {
			return false
		}
	}
	return true
}
