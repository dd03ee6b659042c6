package kana

import "strings"

// isDelimiter matches the token boundaries SegmentText splits on: the ASCII
// and full-width spaces plus the common Japanese punctuation marks.
func isDelimiter(r rune) bool {
	switch r {
	case ' ', '　', '。', '、', '！', '？':
		return true
	}
	return false
}

// SegmentText splits text on the delimiter set, discarding empty tokens and
// preserving left-to-right order. It is a plain delimiter split and never
// guesses word boundaries inside unbroken runs of text.
func SegmentText(text string) []string {
	return strings.FieldsFunc(text, isDelimiter)
}
