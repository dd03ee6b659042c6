package kana

import "strings"

// romajiEntries maps kana syllables to Hepburn-style romaji. Two-character
// entries (yōon and foreign combinations) must come before single
// characters: the scanner always tries the digraph first.
var romajiEntries = []struct {
	kana   string
	romaji string
}{
	// Yōon (two characters)
	{"きゃ", "kya"}, {"きゅ", "kyu"}, {"きょ", "kyo"},
	{"ぎゃ", "gya"}, {"ぎゅ", "gyu"}, {"ぎょ", "gyo"},
	{"しゃ", "sha"}, {"しゅ", "shu"}, {"しょ", "sho"},
	{"じゃ", "ja"}, {"じゅ", "ju"}, {"じょ", "jo"},
	{"ちゃ", "cha"}, {"ちゅ", "chu"}, {"ちょ", "cho"},
	{"にゃ", "nya"}, {"にゅ", "nyu"}, {"にょ", "nyo"},
	{"ひゃ", "hya"}, {"ひゅ", "hyu"}, {"ひょ", "hyo"},
	{"びゃ", "bya"}, {"びゅ", "byu"}, {"びょ", "byo"},
	{"ぴゃ", "pya"}, {"ぴゅ", "pyu"}, {"ぴょ", "pyo"},
	{"みゃ", "mya"}, {"みゅ", "myu"}, {"みょ", "myo"},
	{"りゃ", "rya"}, {"りゅ", "ryu"}, {"りょ", "ryo"},
	// Foreign combinations (reached after Katakana→Hiragana folding)
	{"てぃ", "ti"}, {"でぃ", "di"}, {"とぅ", "tu"}, {"どぅ", "du"},
	{"ふぁ", "fa"}, {"ふぃ", "fi"}, {"ふぇ", "fe"}, {"ふぉ", "fo"},
	{"うぃ", "wi"}, {"うぇ", "we"}, {"うぉ", "wo"},
	{"しぇ", "she"}, {"じぇ", "je"}, {"ちぇ", "che"},
	{"ゔぁ", "va"}, {"ゔぃ", "vi"}, {"ゔぇ", "ve"}, {"ゔぉ", "vo"},

	// Vowels
	{"あ", "a"}, {"い", "i"}, {"う", "u"}, {"え", "e"}, {"お", "o"},
	// K row
	{"か", "ka"}, {"き", "ki"}, {"く", "ku"}, {"け", "ke"}, {"こ", "ko"},
	{"が", "ga"}, {"ぎ", "gi"}, {"ぐ", "gu"}, {"げ", "ge"}, {"ご", "go"},
	// S row
	{"さ", "sa"}, {"し", "shi"}, {"す", "su"}, {"せ", "se"}, {"そ", "so"},
	{"ざ", "za"}, {"じ", "ji"}, {"ず", "zu"}, {"ぜ", "ze"}, {"ぞ", "zo"},
	// T row
	{"た", "ta"}, {"ち", "chi"}, {"つ", "tsu"}, {"て", "te"}, {"と", "to"},
	{"だ", "da"}, {"ぢ", "ji"}, {"づ", "zu"}, {"で", "de"}, {"ど", "do"},
	// N row
	{"な", "na"}, {"に", "ni"}, {"ぬ", "nu"}, {"ね", "ne"}, {"の", "no"},
	// H row
	{"は", "ha"}, {"ひ", "hi"}, {"ふ", "fu"}, {"へ", "he"}, {"ほ", "ho"},
	{"ば", "ba"}, {"び", "bi"}, {"ぶ", "bu"}, {"べ", "be"}, {"ぼ", "bo"},
	{"ぱ", "pa"}, {"ぴ", "pi"}, {"ぷ", "pu"}, {"ぺ", "pe"}, {"ぽ", "po"},
	// M row
	{"ま", "ma"}, {"み", "mi"}, {"む", "mu"}, {"め", "me"}, {"も", "mo"},
	// Y row
	{"や", "ya"}, {"ゆ", "yu"}, {"よ", "yo"},
	// R row
	{"ら", "ra"}, {"り", "ri"}, {"る", "ru"}, {"れ", "re"}, {"ろ", "ro"},
	// W row
	{"わ", "wa"}, {"ゐ", "wi"}, {"ゑ", "we"}, {"を", "wo"},
	// Small vowels (foreign-word fallback)
	{"ぁ", "a"}, {"ぃ", "i"}, {"ぅ", "u"}, {"ぇ", "e"}, {"ぉ", "o"},
	{"ゃ", "ya"}, {"ゅ", "yu"}, {"ょ", "yo"},
	// Specials
	{"ん", "n"}, {"っ", "tsu"}, {"ゔ", "vu"}, {"ー", "-"},
}

// romajiDigraphs and romajiSingles index the table by key length so the
// scanner can probe the two-character window first.
var (
	romajiDigraphs map[string]string
	romajiSingles  map[string]string
)

func init() {
	romajiDigraphs = make(map[string]string)
	romajiSingles = make(map[string]string)
	for _, e := range romajiEntries {
		if len([]rune(e.kana)) == 2 {
			romajiDigraphs[e.kana] = e.romaji
		} else {
			romajiSingles[e.kana] = e.romaji
		}
	}
}

// ToRomaji converts kana text to romaji. The input is folded to Hiragana
// first so a single table serves both scripts. The cursor moves strictly
// left to right: a digraph match consumes two characters, a single match
// one, and unmapped characters (Latin letters, punctuation, Kanji) pass
// through unchanged.
func ToRomaji(text string) string {
	runes := []rune(ToHiragana(text))
	var b strings.Builder
	for i := 0; i < len(runes); {
		// Sokuon doubles the first consonant of the following syllable.
		if runes[i] == 'っ' && i+1 < len(runes) {
			if next := syllableAt(runes, i+1); next != "" {
				b.WriteByte(next[0])
				i++
				continue
			}
		}
		if i+1 < len(runes) {
			if s, ok := romajiDigraphs[string(runes[i:i+2])]; ok {
				b.WriteString(s)
				i += 2
				continue
			}
		}
		if s, ok := romajiSingles[string(runes[i])]; ok {
			b.WriteString(s)
		} else {
			b.WriteRune(runes[i])
		}
		i++
	}
	return b.String()
}

// syllableAt returns the romaji of the syllable starting at position i, or
// "" when nothing matches there.
func syllableAt(runes []rune, i int) string {
	if i+1 < len(runes) {
		if s, ok := romajiDigraphs[string(runes[i:i+2])]; ok {
			return s
		}
	}
	if s, ok := romajiSingles[string(runes[i])]; ok {
		return s
	}
	return ""
}
