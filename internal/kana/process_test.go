package kana

import (
	"fmt"
	"reflect"
	"testing"
)

func TestCreateReadingGuide(t *testing.T) {
	inputs := []string{"ひらがな", "トーキョー", "mixed あい", ""}
	for _, in := range inputs {
		want := fmt.Sprintf("%s (%s)", in, ToRomaji(in))
		if got := CreateReadingGuide(in); got != want {
			t.Errorf("CreateReadingGuide(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestProcessText(t *testing.T) {
	got := ProcessText("こんにちは。せかい")

	want := ProcessedText{
		Original:     "こんにちは。せかい",
		Hiragana:     "こんにちは。せかい",
		Katakana:     "コンニチハ。セカイ",
		Romaji:       "konnichiha。sekai",
		Segments:     []string{"こんにちは", "せかい"},
		ReadingGuide: "こんにちは。せかい (konnichiha。sekai)",
	}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("ProcessText() = %+v, want %+v", got, want)
	}
}

func TestProcessTextEmpty(t *testing.T) {
	got := ProcessText("")
	if got.Original != "" || got.Hiragana != "" || got.Katakana != "" || got.Romaji != "" {
		t.Errorf("ProcessText(\"\") = %+v, want empty fields", got)
	}
	if len(got.Segments) != 0 {
		t.Errorf("ProcessText(\"\").Segments = %q, want none", got.Segments)
	}
	if got.ReadingGuide != " ()" {
		t.Errorf("ProcessText(\"\").ReadingGuide = %q, want %q", got.ReadingGuide, " ()")
	}
}
