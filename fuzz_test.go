package runecursor

import (
	"testing"
	"unicode"
	"unicode/utf8"
)

const maxFuzzInput = 1 << 16 // 64 KiB

func addCorpusSeeds(f *testing.F) {
	seeds := []string{
		"",
		"a",
		"a\nb",
		"123 foobar竜<!>",
		"\x00\x00",
		"ж кириллица",
		"日本語テキスト",
		"🚀🚀🚀",
		"   \t\r\n",
		"ascii only but fairly long input with spaces and 1234567890",
	}
	for _, s := range seeds {
		f.Add(s)
	}
}

// FuzzCursorDrain: выкачивание через Bump эквивалентно []rune(input),
// финальная позиция равна байтовой длине входа.
func FuzzCursorDrain(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(t *testing.T, input string) {
		if len(input) > maxFuzzInput {
			input = input[:maxFuzzInput]
		}
		if !utf8.ValidString(input) {
			t.Skip("cursor requires valid UTF-8 input")
		}

		cur := New(input)
		want := []rune(input)
		for i, wr := range want {
			if cur.EOF() {
				t.Fatalf("EOF at rune %d of %d", i, len(want))
			}
			if peeked := cur.Peek(); peeked != wr {
				t.Fatalf("rune %d: Peek() = %q, want %q", i, peeked, wr)
			}
			r, ok := cur.Bump()
			if !ok || r != wr {
				t.Fatalf("rune %d: Bump() = (%q, %v), want (%q, true)", i, r, ok, wr)
			}
		}
		if !cur.EOF() {
			t.Fatalf("not EOF after draining, BytePos = %d", cur.BytePos())
		}
		if cur.BytePos() != uint32(len(input)) {
			t.Fatalf("final BytePos = %d, want %d", cur.BytePos(), len(input))
		}
		if cur.Rest() != "" {
			t.Fatalf("Rest() after drain = %q", cur.Rest())
		}
	})
}

// FuzzSkipWhileEquivalence: SkipWhile совпадает с эталонным Peek+Bump
// циклом для панели предикатов.
func FuzzSkipWhileEquivalence(f *testing.F) {
	addCorpusSeeds(f)
	preds := []func(rune) bool{
		func(r rune) bool { return r >= '0' && r <= '9' },
		unicode.IsLetter,
		unicode.IsSpace,
		func(rune) bool { return true },
		func(rune) bool { return false },
	}
	f.Fuzz(func(t *testing.T, input string) {
		if len(input) > maxFuzzInput {
			input = input[:maxFuzzInput]
		}
		if !utf8.ValidString(input) {
			t.Skip("cursor requires valid UTF-8 input")
		}

		for i, pred := range preds {
			a := New(input)
			b := New(input)
			for !a.EOF() {
				a.SkipWhile(pred)
				naiveSkip(&b, pred)
				if a.BytePos() != b.BytePos() {
					t.Fatalf("pred %d: SkipWhile pos %d, naive pos %d", i, a.BytePos(), b.BytePos())
				}
				// Сдвигаемся через несовпавший символ и продолжаем
				a.Bump()
				b.Bump()
			}
			if !b.EOF() {
				t.Fatalf("pred %d: reference cursor not at EOF", i)
			}
		}
	})
}
