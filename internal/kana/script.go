// Package kana converts between the Japanese kana scripts and romanizes
// kana text to Latin letters. All lookup tables are built once at init and
// never mutated, so every function is safe for concurrent use.
package kana

// Unicode block boundaries for the two kana scripts.
const (
	hiraganaFirst = 'ぁ' // ぁ
	hiraganaLast  = 'ゖ' // ゖ
	katakanaFirst = 'ァ' // ァ
	katakanaLast  = 'ー' // ー

	// Highest Katakana code point with a Hiragana counterpart (ヶ).
	// ヷ..ヺ and the long-vowel mark have no Hiragana equivalent.
	katakanaPairedLast = 'ヶ'

	// Fixed code-point distance between a Hiragana character and its
	// Katakana counterpart.
	kanaOffset = 0x60
)

// IsHiragana reports whether r falls in the Hiragana block.
func IsHiragana(r rune) bool {
	return r >= hiraganaFirst && r <= hiraganaLast
}

// IsKatakana reports whether r falls in the Katakana block, including the
// long-vowel mark ー.
func IsKatakana(r rune) bool {
	return r >= katakanaFirst && r <= katakanaLast
}

// IsKana reports whether r belongs to either kana script.
func IsKana(r rune) bool {
	return IsHiragana(r) || IsKatakana(r)
}
