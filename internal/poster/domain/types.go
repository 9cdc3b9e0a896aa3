package domain

import "strings"

// PaperSize is a physical print target. The pipeline supports exactly two.
type PaperSize string

const (
	SizeLetter PaperSize = "LETTER"
	SizeA4     PaperSize = "A4"
)

// ParsePaperSize maps a query value to a supported size, defaulting to LETTER.
func ParsePaperSize(raw string) PaperSize {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case string(SizeA4):
		return SizeA4
	default:
		return SizeLetter
	}
}

// Format is a download export format.
type Format string

const (
	FormatPDF Format = "pdf"
	FormatPNG Format = "png"
)

// ContentType returns the response content type for the format.
func (f Format) ContentType() string {
	if f == FormatPDF {
		return "application/pdf"
	}
	return "image/png"
}

// Variant selects a color scheme for templates that declare support for it.
type Variant string

const (
	VariantLight Variant = "light"
	VariantDark  Variant = "dark"
)

// ParseVariant maps a query value to a variant, defaulting to light.
func ParseVariant(raw string) Variant {
	if strings.ToLower(strings.TrimSpace(raw)) == string(VariantDark) {
		return VariantDark
	}
	return VariantLight
}

// PosterData is the per-request input to every poster template. It is built
// once from the business record and discarded after the render.
type PosterData struct {
	BusinessName string
	LogoURL      string
	ReviewURL    string
	QRDataURL    string
	CTALine      string
	Website      string
	Phone        string
}

// RenderOptions carries the caller-selected size and variant.
type RenderOptions struct {
	Size    PaperSize
	Variant Variant
}

// TemplateMetadata describes a registered poster template. Registered once at
// startup and read-only thereafter.
type TemplateMetadata struct {
	ID                  string      `json:"id"`
	Name                string      `json:"name"`
	Description         string      `json:"description"`
	PreviewThumbnailURL string      `json:"preview_thumbnail_url,omitempty"`
	Sizes               []PaperSize `json:"sizes"`
	SupportsVariant     bool        `json:"supports_variant"`
}
