package translit

import (
	"strings"
	"testing"
)

func TestTransliterateWholeWord(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"hotel", "ホテル"},
		{"HOTEL", "ホテル"},
		{"coffee", "コーヒー"},
		{"john", "ジョン"},
		{"night", "ナイト"},
	}
	for _, tt := range tests {
		got := Transliterate(tt.input)
		if got != tt.want {
			t.Errorf("Transliterate(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestTransliterateScan(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"sara", "サラ"},
		{"kimono", "キモノ"},
		{"milk", "ミルク"},
		{"mint", "ミント"},
		{"station", "スタション"},
		// Silent trailing "e" is dropped before scanning.
		{"stone", "ストン"},
	}
	for _, tt := range tests {
		got := Transliterate(tt.input)
		if got != tt.want {
			t.Errorf("Transliterate(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

// "mac" must win over "ma" followed by a separate "c" lookup.
func TestTransliterateGreedyPriority(t *testing.T) {
	if _, ok := phoneticDict["mac"]; !ok {
		t.Fatal("dictionary is missing the \"mac\" entry the maximal-munch check relies on")
	}
	if _, ok := phoneticDict["ma"]; !ok {
		t.Fatal("dictionary is missing the \"ma\" entry the maximal-munch check relies on")
	}
	got := Transliterate("macs")
	if got != "マックス" {
		t.Errorf("Transliterate(%q) = %q, want %q", "macs", got, "マックス")
	}
	if !strings.HasPrefix(got, "マック") {
		t.Errorf("Transliterate(%q) = %q, consumed via the short key", "macs", got)
	}
}

func TestTransliteratePostProcessing(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		// エイ collapses to the long-vowel form.
		{"eiko", "エーコ"},
		// Longer than two kana and ending in イ grows a long-vowel mark.
		{"asai", "アサイー"},
	}
	for _, tt := range tests {
		got := Transliterate(tt.input)
		if got != tt.want {
			t.Errorf("Transliterate(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestTransliterateMultiWord(t *testing.T) {
	got := Transliterate("grand hotel park")
	want := "グランド・ホテル・パーク"
	if got != want {
		t.Errorf("Transliterate(%q) = %q, want %q", "grand hotel park", got, want)
	}
	if strings.HasPrefix(got, "・") || strings.HasSuffix(got, "・") {
		t.Errorf("Transliterate(%q) = %q, separator must only sit between words", "grand hotel park", got)
	}
	if strings.Count(got, "・") != 2 {
		t.Errorf("Transliterate(%q) = %q, want exactly 2 separators", "grand hotel park", got)
	}
}

func TestTransliterateBlankInput(t *testing.T) {
	for _, in := range []string{"", "   ", " \t "} {
		if got := Transliterate(in); got != in {
			t.Errorf("Transliterate(%q) = %q, want input unchanged", in, got)
		}
	}
}

func TestTransliteratePassthrough(t *testing.T) {
	// Characters outside every table survive unchanged.
	got := Transliterate("a1")
	if got != "ア1" {
		t.Errorf("Transliterate(%q) = %q, want %q", "a1", got, "ア1")
	}
}

// Latin→Katakana is one-directional: feeding the output back in must not
// reproduce the original.
func TestTransliterateNoRoundTrip(t *testing.T) {
	once := Transliterate("hotel")
	twice := Transliterate(once)
	if twice == "hotel" {
		t.Errorf("Transliterate(Transliterate(%q)) = %q, round trip must not hold", "hotel", twice)
	}
	if twice != once {
		t.Errorf("Transliterate(%q) = %q, Katakana input should pass through", once, twice)
	}
}

func TestDictionaryKeyLengths(t *testing.T) {
	for k := range phoneticDict {
		if len(k) < 1 || len(k) > maxKeyLen {
			t.Errorf("dictionary key %q has length %d, want 1..%d", k, len(k), maxKeyLen)
		}
		if strings.ToLower(k) != k {
			t.Errorf("dictionary key %q must be lowercase", k)
		}
	}
}
