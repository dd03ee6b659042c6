package kana

import "fmt"

// ProcessedText aggregates every engine view of a single input value. It is
// a plain value with no further lifecycle; callers may retain or copy it
// freely.
type ProcessedText struct {
	Original     string
	Hiragana     string
	Katakana     string
	Romaji       string
	Segments     []string
	ReadingGuide string
}

// CreateReadingGuide pairs text with its romanization, furigana style.
func CreateReadingGuide(text string) string {
	return fmt.Sprintf("%s (%s)", text, ToRomaji(text))
}

// ProcessText runs every conversion on one value and returns the aggregate.
func ProcessText(text string) ProcessedText {
	return ProcessedText{
		Original:     text,
		Hiragana:     ToHiragana(text),
		Katakana:     ToKatakana(text),
		Romaji:       ToRomaji(text),
		Segments:     SegmentText(text),
		ReadingGuide: CreateReadingGuide(text),
	}
}
