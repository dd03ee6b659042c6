package kana

import "testing"

func TestToRomaji(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"あ", "a"},
		{"あいうえお", "aiueo"},
		{"ひらがな", "hiragana"},
		{"カタカナ", "katakana"},
		{"とうきょう", "toukyou"},
		{"しんぶん", "shinbun"},
		{"がっこう", "gakkou"},
		{"タワー", "tawa-"},
		{"ふじさん", "fujisan"},
		{"こんにちは", "konnichiha"},
		{"", ""},
	}
	for _, tt := range tests {
		got := ToRomaji(tt.input)
		if got != tt.want {
			t.Errorf("ToRomaji(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

// Digraphs must be consumed as one unit, never as their single-character
// decomposition.
func TestToRomajiDigraphPriority(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"きょ", "kyo"},
		{"きょう", "kyou"},
		{"しゃしん", "shashin"},
		{"ちゅうい", "chuui"},
		{"ジャパン", "japan"},
		{"ティー", "ti-"},
		{"ファイル", "fairu"},
	}
	for _, tt := range tests {
		got := ToRomaji(tt.input)
		if got != tt.want {
			t.Errorf("ToRomaji(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

// Unmapped characters pass through so mixed text stays lossless.
func TestToRomajiPassthrough(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Goとあ", "Gotoa"},
		{"漢字", "漢字"},
		{"a!b?", "a!b?"},
	}
	for _, tt := range tests {
		got := ToRomaji(tt.input)
		if got != tt.want {
			t.Errorf("ToRomaji(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
