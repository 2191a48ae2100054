package textbytes

import (
	"testing"
	"unicode/utf8"
)

// FuzzUTF8Roundtrip checks the substring identity law, the per-character
// substring law and code-point decoding against the standard library's rune
// handling on arbitrary well-formed input.
func FuzzUTF8Roundtrip(f *testing.F) {
	f.Add("")
	f.Add("hello")
	f.Add(sampleUTF8)
	f.Add("日本語テスト")
	f.Add("emoji 🎉 test")
	f.Add("\t AB CD \t\r\n")

	f.Fuzz(func(t *testing.T, s string) {
		// The scanner accepts a superset of strict UTF-8 (lead bytes
		// 0xC0-0xF7 with untrusted continuations); comparisons against
		// []rune only hold for strictly valid input.
		if !utf8.ValidString(s) {
			return
		}

		src := newText(s)
		dst := &Text{}
		runes := []rune(s)

		n, err := CharCount(src)
		if err != nil {
			t.Fatalf("CharCount(%q): %v", s, err)
		}
		if n != len(runes) {
			t.Fatalf("CharCount(%q) = %d, want %d", s, n, len(runes))
		}
		if n == 0 {
			return
		}

		if err := UTF8Substring(dst, src, 0, n); err != nil {
			t.Fatalf("full substring of %q: %v", s, err)
		}
		if dst.String() != s {
			t.Fatalf("full substring of %q = %q", s, dst.String())
		}

		offs := AcquireOffsets()
		defer ReleaseOffsets(offs)
		if err := FindCharOffsets(offs, src); err != nil {
			t.Fatalf("FindCharOffsets(%q): %v", s, err)
		}
		for i, want := range runes {
			if err := UTF8SubstringOffsets(dst, src, offs, i, i+1); err != nil {
				t.Fatalf("substring(%q, %d, %d): %v", s, i, i+1, err)
			}
			if dst.String() != string(want) {
				t.Fatalf("substring(%q, %d, %d) = %q, want %q", s, i, i+1, dst.String(), string(want))
			}
			r, err := UTF8CharAtOffsets(src, offs, i)
			if err != nil {
				t.Fatalf("charAt(%q, %d): %v", s, i, err)
			}
			if r != want {
				t.Fatalf("charAt(%q, %d) = %U, want %U", s, i, r, want)
			}
		}
	})
}

// FuzzUTF8Trim checks idempotence and that trimming never removes a
// multi-byte character.
func FuzzUTF8Trim(f *testing.F) {
	f.Add(" x ")
	f.Add("\t⁂𠜎\r\n")
	f.Add("\x00\x01inner\x1f")

	f.Fuzz(func(t *testing.T, s string) {
		if !utf8.ValidString(s) {
			return
		}

		src := newText(s)
		if err := UTF8TrimInPlace(src); err != nil {
			t.Fatalf("trim %q: %v", s, err)
		}
		once := src.String()
		if err := UTF8TrimInPlace(src); err != nil {
			t.Fatalf("second trim %q: %v", once, err)
		}
		if src.String() != once {
			t.Fatalf("trim not idempotent: %q -> %q", once, src.String())
		}

		if len(once) > 0 {
			if once[0] <= 0x20 || once[len(once)-1] <= 0x20 {
				t.Fatalf("trim left whitespace at an edge of %q", once)
			}
		}
	})
}
