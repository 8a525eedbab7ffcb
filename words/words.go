package words

import "regexp"

// wordPattern matches runs of letters joined by single interior hyphens or
// apostrophes.
var wordPattern = regexp.MustCompile(`\p{L}+(?:[-']\p{L}+)*`)

// Span is a word located in a text. Start and End are byte offsets, so
// text[Start:End] == Text.
type Span struct {
	Start int
	End   int
	Text  string
}

// Len returns the length of the word in bytes.
func (s Span) Len() int {
	return s.End - s.Start
}

// findSpans returns all non-overlapping word spans in text, left to right.
func findSpans(text string) []Span {
	if text == "" {
		return nil
	}

	matches := wordPattern.FindAllStringIndex(text, -1)
	if len(matches) == 0 {
		return nil
	}

	spans := make([]Span, len(matches))
	for i, m := range matches {
		spans[i] = Span{Start: m[0], End: m[1], Text: text[m[0]:m[1]]}
	}
	return spans
}

var defaultTokenizer = New()

// Split returns the words of text in order. It returns nil when text
// contains no words.
func Split(text string) []string {
	return defaultTokenizer.Split(text)
}

// Spans returns the word spans of text in order.
func Spans(text string) []Span {
	return defaultTokenizer.Spans(text)
}

// Count returns the number of words in text.
func Count(text string) int {
	return defaultTokenizer.Count(text)
}

// Capitalize uppercases the first letter of every word in text using a
// locale-independent mapping. Everything else is copied unchanged.
func Capitalize(text string) string {
	return defaultTokenizer.Capitalize(text)
}
