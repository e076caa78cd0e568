//
// Copyright 2025 Google LLC. All rights reserved.
//
// screen-qa is licensed under the Apache License Version 2.0.
//

// Package answer canonicalizes free-text answers before comparison.
package answer

import (
	"strings"
	"unicode"
)

// NoAnswer is the reserved text answer meaning the question is
// unanswerable. Predictions and ground truths must use this exact value.
const NoAnswer = "<no answer>"

// asciiPunctuation is the fixed punctuation set removed during
// normalization.
const asciiPunctuation = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

// Normalize lowercases text, removes ASCII punctuation, removes the
// articles "a", "an" and "the", and collapses whitespace, in that order.
// Punctuation is deleted outright, which can fuse adjacent words;
// articles are replaced by a single space.
func Normalize(text string) string {
	text = strings.ToLower(text)
	text = strings.Map(func(r rune) rune {
		if strings.ContainsRune(asciiPunctuation, r) {
			return -1
		}
		return r
	}, text)
	text = removeArticles(text)
	return strings.Join(strings.Fields(text), " ")
}

// isWordRune reports whether r is a word character for article
// boundaries: Unicode letters, digits and underscore.
func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// removeArticles replaces each standalone article with a single space.
// A word is a maximal run of word characters, so an article fused to a
// non-ASCII letter is not standalone and stays untouched.
func removeArticles(text string) string {
	var out strings.Builder
	out.Grow(len(text))
	var word strings.Builder
	flush := func() {
		switch w := word.String(); w {
		case "a", "an", "the":
			out.WriteByte(' ')
		default:
			out.WriteString(w)
		}
		word.Reset()
	}
	for _, r := range text {
		if isWordRune(r) {
			word.WriteRune(r)
			continue
		}
		flush()
		out.WriteRune(r)
	}
	flush()
	return out.String()
}
