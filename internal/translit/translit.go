// Package translit approximates Latin-script words as Katakana. It exists
// for proper nouns that should be transliterated phonetically instead of
// machine-translated. The output is a best-effort approximation, not a
// linguistically exact reading.
package translit

import (
	"strings"
	"unicode/utf8"
)

// wordSeparator joins transliterated words, middle-dot style.
const wordSeparator = "・"

// consonants are the letters eligible for the implied-"u" fallback.
const consonants = "bcdfghjklmnpqrstvwxyz"

// Transliterate converts a Latin-script word or short phrase to Katakana.
// Matching is case-insensitive and the output carries no case information.
// Empty or whitespace-only input is returned unchanged; characters the
// dictionary does not know pass through, so output is never empty for
// non-blank input.
func Transliterate(text string) string {
	if strings.TrimSpace(text) == "" {
		return text
	}
	words := strings.Fields(text)
	out := make([]string, len(words))
	for i, w := range words {
		out[i] = transliterateWord(strings.ToLower(w))
	}
	return strings.Join(out, wordSeparator)
}

func transliterateWord(word string) string {
	// A whole-word hit needs no scanning.
	if kana, ok := phoneticDict[word]; ok {
		return kana
	}

	word = trimSilentE(word)

	runes := []rune(word)
	var b strings.Builder
	for i := 0; i < len(runes); {
		n := maxKeyLen
		if rem := len(runes) - i; rem < n {
			n = rem
		}
		// Maximal munch: the longest dictionary key wins.
		matched := false
		for l := n; l >= 1; l-- {
			if kana, ok := phoneticDict[string(runes[i:i+l])]; ok {
				b.WriteString(kana)
				i += l
				matched = true
				break
			}
		}
		if matched {
			continue
		}
		b.WriteString(unmatched(runes, i))
		i++
	}
	return polish(b.String())
}

// trimSilentE drops a single trailing "e" (the English silent-e
// convention), leaving short words and double-e endings alone.
func trimSilentE(word string) string {
	if len(word) > 2 && strings.HasSuffix(word, "e") && !strings.HasSuffix(word, "ee") {
		return word[:len(word)-1]
	}
	return word
}

// unmatched resolves a character no dictionary key covers. A consonant with
// no vowel after it gets the default Japanese "u" implied; everything else
// falls back to a single-character lookup and finally to the raw character.
func unmatched(runes []rune, i int) string {
	r := runes[i]
	if isConsonant(r) && (i+1 >= len(runes) || isConsonant(runes[i+1])) {
		if kana, ok := phoneticDict[string(r)+"u"]; ok {
			return kana
		}
		return string(r)
	}
	if kana, ok := phoneticDict[string(r)]; ok {
		return kana
	}
	return string(r)
}

func isConsonant(r rune) bool {
	return strings.ContainsRune(consonants, r)
}

// longVowelCollapse rewrites doubled vowel kana and diphthong artifacts
// into single long-vowel forms.
var longVowelCollapse = strings.NewReplacer(
	"nン", "ン",
	"アア", "アー",
	"イイ", "イー",
	"ウウ", "ウー",
	"エエ", "エー",
	"オオ", "オー",
	"エイ", "エー",
	"オウ", "オー",
)

// polish is the post-processing pass over one assembled word.
func polish(word string) string {
	word = longVowelCollapse.Replace(word)
	if utf8.RuneCountInString(word) > 2 &&
		(strings.HasSuffix(word, "イ") || strings.HasSuffix(word, "ウ")) {
		word += "ー"
	}
	return word
}
