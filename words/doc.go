// Package words splits natural-language text into words and capitalizes them.
//
// A word is one or more Unicode letters, optionally joined to further runs of
// letters by a single hyphen or apostrophe:
//
//	words.Split("mother-in-law's car")   // ["mother-in-law's", "car"]
//	words.Split("--hello--")             // ["hello"]
//	words.Split("word123abc")            // ["word", "abc"]
//
// Digits, punctuation, and whitespace only separate words. A hyphen or
// apostrophe belongs to a word only when letters appear on both sides of it.
//
// # Capitalization
//
// [Capitalize] uppercases the first letter of every word and copies all other
// characters unchanged:
//
//	words.Capitalize("it's уже-утро") // "It's Уже-утро"
//
// The package-level functions use a locale-independent uppercase mapping, so
// results do not depend on the environment. A [Tokenizer] can be configured
// with a language for language-specific casing, and with a Unicode
// normalization form applied before scanning:
//
//	tk := words.New().Language(language.Turkish)
//	tk.Capitalize("istanbul") // "İstanbul"
//
// Capitalization never changes the number of runes in the text.
//
// All functions are pure and safe for concurrent use.
package words
