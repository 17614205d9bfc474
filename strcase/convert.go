// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Based on https://github.com/ettle/strcase
// Copyright (c) 2020 Liyan David Chang under the MIT License

package strcase

import (
	"strings"
	"unicode"
)

// WordCase is an enumeration of the ways to format a word.
type WordCase int

const (
	// Original - Preserve the original input strcase
	Original WordCase = iota
	// LowerCase - All letters lower cased (example)
	LowerCase
	// UpperCase - All letters upper cased (EXAMPLE)
	UpperCase
)

// SplitAction defines if and how to split a string
type SplitAction int

const (
	// Noop - Continue to next character
	Noop SplitAction = iota
	// Split - Split between words
	// e.g. to split between wordsWithoutDelimiters
	Split
	// SkipSplit - Split the word and drop the character
	// e.g. to split words with delimiters
	SkipSplit
)

// defaultSplitFn splits on delimiters, before a capital that follows a
// lower case letter, and before the last capital of a run of capitals
// that is followed by a lower case letter.
func defaultSplitFn(prev, curr, next rune) SplitAction {
	// the most common case will be that it's just a letter
	if unicode.IsLower(curr) && !unicode.IsDigit(prev) {
		return Noop
	}
	if unicode.IsUpper(prev) && unicode.IsUpper(curr) && unicode.IsUpper(next) {
		return Noop
	}

	if unicode.IsSpace(curr) || curr == '_' || curr == '-' || curr == '.' {
		return SkipSplit
	}

	if unicode.IsUpper(curr) {
		if unicode.IsLower(prev) {
			return Split
		} else if unicode.IsUpper(prev) && unicode.IsLower(next) {
			return Split
		}
	}
	return Noop
}

// ToWordCase converts the words in s to the given case,
// joining them with the given delimiter (none if 0).
func ToWordCase(s string, wordCase WordCase, delimiter rune) string {
	input := strings.TrimSpace(s)
	runes := []rune(input)
	if len(runes) == 0 {
		return ""
	}

	var b strings.Builder
	b.Grow(len(input) + 4) // room for delimiters where there were none

	firstWord := true
	addWord := func(start, end int) {
		if start == end {
			return
		}
		if !firstWord && delimiter != 0 {
			b.WriteRune(delimiter)
		}
		for _, r := range runes[start:end] {
			switch wordCase {
			case LowerCase:
				b.WriteRune(unicode.ToLower(r))
			case UpperCase:
				b.WriteRune(unicode.ToUpper(r))
			default:
				b.WriteRune(r)
			}
		}
		firstWord = false
	}

	var prev, curr rune
	next := runes[0]
	wordStart := 0
	for i := range runes {
		prev = curr
		curr = next
		if i+1 == len(runes) {
			next = 0
		} else {
			next = runes[i+1]
		}

		switch defaultSplitFn(prev, curr, next) {
		case Split:
			addWord(wordStart, i)
			wordStart = i
		case SkipSplit:
			addWord(wordStart, i)
			wordStart = i + 1
		}
	}
	addWord(wordStart, len(runes))
	return b.String()
}
