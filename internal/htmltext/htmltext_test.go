// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package htmltext

import (
	"strings"
	"testing"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", "Brand X", "Brand X"},
		{"ampersand", "Brand &amp; Co", "Brand & Co"},
		{"numeric dash", "Site &#8211; Renewal", "Site – Renewal"},
		{"quotes", "&#8220;Quoted&#8221;", "“Quoted”"},
		{"japanese untouched", "コーポレートサイト", "コーポレートサイト"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Decode(tt.input); got != tt.want {
				t.Errorf("Decode(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

// Decoding an already-decoded title must be a no-op.
func TestDecodeIdempotent(t *testing.T) {
	inputs := []string{
		"Brand &amp; Co",
		"Site &#8211; Renewal",
		"&#8220;Quoted&#8221; &lt;b&gt;",
		"Already decoded – title",
		"ロゴ制作 &amp; ブランディング",
	}

	for _, in := range inputs {
		once := Decode(in)
		twice := Decode(once)
		if once != twice {
			t.Errorf("Decode not idempotent for %q: once=%q twice=%q", in, once, twice)
		}
	}
}

func TestPlainText(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"whitespace", "  \n ", ""},
		{"paragraph", "<p>Hello <strong>world</strong></p>\n", "Hello world"},
		{"entities", "<p>A &amp; B [&hellip;]</p>", "A & B […]"},
		{"drops script", "<p>x</p><script>alert(1)</script>", "x"},
		{"unclosed tags", "<p>open <em>emphasis", "open emphasis"},
		{"multiple blocks", "<p>one</p><p>two</p>", "one two"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PlainText(tt.input); got != tt.want {
				t.Errorf("PlainText(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestTruncate(t *testing.T) {
	if got := Truncate("short", 10); got != "short" {
		t.Errorf("Truncate short = %q", got)
	}
	if got := Truncate("anything", 0); got != "anything" {
		t.Errorf("Truncate with max 0 = %q", got)
	}

	long := strings.Repeat("word ", 40)
	got := Truncate(long, 50)
	if !strings.HasSuffix(got, "…") {
		t.Errorf("Truncate should end with an ellipsis, got %q", got)
	}
	if n := len([]rune(got)); n > 51 {
		t.Errorf("Truncate length = %d runes, want <= 51", n)
	}

	jp := strings.Repeat("あ", 30)
	got = Truncate(jp, 10)
	if got != strings.Repeat("あ", 10)+"…" {
		t.Errorf("Truncate multibyte = %q", got)
	}
}
