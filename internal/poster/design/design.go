// Package design holds the shared CSS vocabulary for poster templates:
// physical paper dimensions and reusable style fragments parameterized by
// each template's palette. Nothing here ever touches business data.
package design

import (
	"fmt"
	"math"

	posterdomain "github.com/smallbiznis/reviewqr/internal/poster/domain"
)

const cssPixelsPerInch = 96

// Dimensions describes one physical paper target in the units the renderer
// needs: millimeters and inches for CSS/PDF, CSS pixels for raster export.
type Dimensions struct {
	WidthMM  float64
	HeightMM float64
	WidthIn  float64
	HeightIn float64
}

// DimensionsFor maps a paper size to its fixed physical dimensions.
// Letter is 215.9x279.4mm (8.5x11in); A4 is 210x297mm (8.27x11.69in).
func DimensionsFor(size posterdomain.PaperSize) Dimensions {
	if size == posterdomain.SizeA4 {
		return Dimensions{WidthMM: 210, HeightMM: 297, WidthIn: 8.27, HeightIn: 11.69}
	}
	return Dimensions{WidthMM: 215.9, HeightMM: 279.4, WidthIn: 8.5, HeightIn: 11}
}

// PixelWidth returns the raster width at the given DPI-equivalent scale.
func (d Dimensions) PixelWidth(scale float64) int {
	return int(math.Round(d.WidthIn * cssPixelsPerInch * scale))
}

// PixelHeight returns the raster height at the given DPI-equivalent scale.
func (d Dimensions) PixelHeight(scale float64) int {
	return int(math.Round(d.HeightIn * cssPixelsPerInch * scale))
}

// BaseBodyStyles emits the page-level CSS every template starts from: the
// @page box, an exact-size body with no margins, and the base typography.
func BaseBodyStyles(d Dimensions, background, color, fontFamily string) string {
	return fmt.Sprintf(`@page { size: %.2fin %.2fin; margin: 0; }
* { box-sizing: border-box; margin: 0; padding: 0; }
html, body { width: %.2fin; height: %.2fin; }
body {
  background: %s;
  color: %s;
  font-family: %s;
  overflow: hidden;
  -webkit-print-color-adjust: exact;
  print-color-adjust: exact;
}`, d.WidthIn, d.HeightIn, d.WidthIn, d.HeightIn, background, color, fontFamily)
}

// QRCardStyles emits the shared card treatment around the QR code.
func QRCardStyles(background, border string, radiusPx, paddingPx int) string {
	return fmt.Sprintf(`.qr-card {
  display: inline-block;
  background: %s;
  border: %s;
  border-radius: %dpx;
  padding: %dpx;
  box-shadow: 0 12px 32px rgba(0, 0, 0, 0.12);
}
.qr-card img { display: block; width: 2.6in; height: 2.6in; }`, background, border, radiusPx, paddingPx)
}

// HierarchyStyles emits the shared text hierarchy: headline, business name,
// call-to-action line, and the contact footer.
func HierarchyStyles(headlineColor, accentColor string) string {
	return fmt.Sprintf(`.headline { font-size: 54px; font-weight: 800; line-height: 1.1; color: %s; }
.business-name { font-size: 30px; font-weight: 600; }
.cta-line { font-size: 22px; color: %s; }
.contact { font-size: 16px; opacity: 0.8; }
.contact span + span::before { content: "  \2022  "; }`, headlineColor, accentColor)
}
