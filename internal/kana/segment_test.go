package kana

import (
	"reflect"
	"testing"
)

func TestSegmentText(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"a b　c。d", []string{"a", "b", "c", "d"}},
		{"こんにちは。さようなら！", []string{"こんにちは", "さようなら"}},
		{"ひとつ、ふたつ、みっつ", []string{"ひとつ", "ふたつ", "みっつ"}},
		{"どうですか？はい", []string{"どうですか", "はい"}},
		{"　　", nil},
		{"。。。", nil},
		{"", nil},
		// No word-boundary detection inside unbroken runs.
		{"わたしはがくせいです", []string{"わたしはがくせいです"}},
	}
	for _, tt := range tests {
		got := SegmentText(tt.input)
		if len(got) == 0 && len(tt.want) == 0 {
			continue
		}
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("SegmentText(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
