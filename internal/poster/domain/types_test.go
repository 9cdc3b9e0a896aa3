package domain

import "testing"

func TestParsePaperSize(t *testing.T) {
	cases := map[string]PaperSize{
		"LETTER":  SizeLetter,
		"letter":  SizeLetter,
		"A4":      SizeA4,
		"a4":      SizeA4,
		" a4 ":    SizeA4,
		"":        SizeLetter,
		"TABLOID": SizeLetter,
	}
	for in, want := range cases {
		if got := ParsePaperSize(in); got != want {
			t.Fatalf("ParsePaperSize(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestParseVariant(t *testing.T) {
	cases := map[string]Variant{
		"dark":  VariantDark,
		"DARK":  VariantDark,
		"light": VariantLight,
		"":      VariantLight,
		"sepia": VariantLight,
	}
	for in, want := range cases {
		if got := ParseVariant(in); got != want {
			t.Fatalf("ParseVariant(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestFormatContentType(t *testing.T) {
	if got := FormatPDF.ContentType(); got != "application/pdf" {
		t.Fatalf("pdf content type = %q", got)
	}
	if got := FormatPNG.ContentType(); got != "image/png" {
		t.Fatalf("png content type = %q", got)
	}
}
