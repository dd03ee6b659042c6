package kana

import "strings"

// hiraganaToKatakana maps every Hiragana code point to its Katakana
// counterpart at the fixed +0x60 offset. Built once at init, read-only
// afterwards.
var hiraganaToKatakana map[rune]rune

func init() {
	hiraganaToKatakana = make(map[rune]rune, hiraganaLast-hiraganaFirst+1)
	for r := hiraganaFirst; r <= hiraganaLast; r++ {
		hiraganaToKatakana[r] = r + kanaOffset
	}
}

// ToKatakana converts Hiragana characters to Katakana. Anything outside the
// Hiragana block passes through unchanged. It never fails.
func ToKatakana(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if k, ok := hiraganaToKatakana[r]; ok {
			b.WriteRune(k)
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ToHiragana converts Katakana characters to Hiragana. Only code points
// with a Hiragana counterpart (ァ..ヶ) are shifted; ヷ..ヺ, the long-vowel
// mark, and everything outside the block pass through unchanged. That keeps
// ToKatakana(ToHiragana(s)) == s for any Katakana input.
func ToHiragana(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if r >= katakanaFirst && r <= katakanaPairedLast {
			b.WriteRune(r - kanaOffset)
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}
