package words

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// Tokenizer splits and capitalizes text with a fixed configuration. The
// setters return modified copies, so a Tokenizer can be shared freely.
type Tokenizer struct {
	lang language.Tag

	normalize bool
	form      norm.Form
}

// New returns a Tokenizer with locale-independent casing and no
// normalization.
func New() *Tokenizer {
	return &Tokenizer{lang: language.Und}
}

// clone creates a copy of the Tokenizer.
func (t *Tokenizer) clone() *Tokenizer {
	c := *t
	return &c
}

// Language returns a copy of t that uppercases using the casing rules of tag.
func (t *Tokenizer) Language(tag language.Tag) *Tokenizer {
	c := t.clone()
	c.lang = tag
	return c
}

// Normalize returns a copy of t that applies form to the text before
// scanning. Spans and capitalized output then refer to the normalized text.
func (t *Tokenizer) Normalize(form norm.Form) *Tokenizer {
	c := t.clone()
	c.normalize = true
	c.form = form
	return c
}

// prepare applies the configured normalization, if any.
func (t *Tokenizer) prepare(text string) string {
	if !t.normalize || text == "" {
		return text
	}
	return t.form.String(text)
}

// Spans returns the word spans of text in order.
func (t *Tokenizer) Spans(text string) []Span {
	return findSpans(t.prepare(text))
}

// Split returns the words of text in order, or nil if there are none.
func (t *Tokenizer) Split(text string) []string {
	spans := t.Spans(text)
	if len(spans) == 0 {
		return nil
	}

	words := make([]string, len(spans))
	for i, s := range spans {
		words[i] = s.Text
	}
	return words
}

// Count returns the number of words in text.
func (t *Tokenizer) Count(text string) int {
	return len(t.Spans(text))
}

// Capitalize uppercases the first letter of every word in text. Characters
// outside words and the rest of each word are copied unchanged.
func (t *Tokenizer) Capitalize(text string) string {
	text = t.prepare(text)
	spans := findSpans(text)
	if len(spans) == 0 {
		return text
	}

	// A Caser keeps state between calls and must not be shared.
	upper := cases.Upper(t.lang)

	var b strings.Builder
	b.Grow(len(text))

	last := 0
	for _, s := range spans {
		b.WriteString(text[last:s.Start])

		first, size := utf8.DecodeRuneInString(s.Text)
		b.WriteRune(upperRune(upper, first))
		b.WriteString(s.Text[size:])

		last = s.End
	}
	b.WriteString(text[last:])

	return b.String()
}

// upperRune maps r to its uppercase form. Mappings that expand to more than
// one rune (ß -> SS) fall back to the simple one-to-one mapping.
func upperRune(upper cases.Caser, r rune) rune {
	mapped := upper.String(string(r))
	if m, size := utf8.DecodeRuneInString(mapped); size == len(mapped) && m != utf8.RuneError {
		return m
	}
	return unicode.ToUpper(r)
}
