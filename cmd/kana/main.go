// kana is a one-shot command line interface to the reading engine. It takes
// text on the command line (or stdin) and prints the requested form without
// touching the network or the cache.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/Rajeev-Jha-RJ/namelisttranslator/internal/kana"
	"github.com/Rajeev-Jha-RJ/namelisttranslator/internal/translit"
	"github.com/peterbourgon/ff/v4"
	"github.com/peterbourgon/ff/v4/ffhelp"
)

func main() {
	if err := mainE(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func mainE() error {
	fs := ff.NewFlagSet("kana")
	mode := fs.StringLong("mode", "guide", "Output: hiragana, katakana, romaji, segments, guide, translit, all")

	if err := ff.Parse(fs, os.Args[1:], ff.WithEnvVars()); err != nil {
		fmt.Printf("%s\n", ffhelp.Flags(fs))
		return fmt.Errorf("parsing flags: %w", err)
	}

	convert, err := converter(*mode)
	if err != nil {
		fmt.Printf("%s\n", ffhelp.Flags(fs))
		return err
	}

	args := fs.GetArgs()
	if len(args) > 0 {
		fmt.Println(convert(strings.Join(args, " ")))
		return nil
	}

	// No arguments: process stdin line by line.
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		fmt.Println(convert(scanner.Text()))
	}
	return scanner.Err()
}

func converter(mode string) (func(string) string, error) {
	switch mode {
	case "hiragana":
		return kana.ToHiragana, nil
	case "katakana":
		return kana.ToKatakana, nil
	case "romaji":
		return kana.ToRomaji, nil
	case "segments":
		return func(s string) string {
			return strings.Join(kana.SegmentText(s), "\t")
		}, nil
	case "guide":
		return kana.CreateReadingGuide, nil
	case "translit":
		return translit.Transliterate, nil
	case "all":
		return func(s string) string {
			p := kana.ProcessText(s)
			var b strings.Builder
			fmt.Fprintf(&b, "original:  %s\n", p.Original)
			fmt.Fprintf(&b, "hiragana:  %s\n", p.Hiragana)
			fmt.Fprintf(&b, "katakana:  %s\n", p.Katakana)
			fmt.Fprintf(&b, "romaji:    %s\n", p.Romaji)
			fmt.Fprintf(&b, "segments:  %s\n", strings.Join(p.Segments, " | "))
			fmt.Fprintf(&b, "guide:     %s", p.ReadingGuide)
			return b.String()
		}, nil
	default:
		return nil, fmt.Errorf("unknown mode %q", mode)
	}
}
