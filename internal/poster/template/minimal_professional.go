package template

import (
	"strings"

	"github.com/smallbiznis/reviewqr/internal/poster/design"
	posterdomain "github.com/smallbiznis/reviewqr/internal/poster/domain"
)

// minimal-professional is the only template that honors the dark variant.
func newMinimalProfessional() definition {
	return definition{
		meta: posterdomain.TemplateMetadata{
			ID:              "minimal-professional",
			Name:            "Minimal Professional",
			Description:     "Clean single-column layout with generous whitespace. Available in light and dark.",
			Sizes:           []posterdomain.PaperSize{posterdomain.SizeLetter, posterdomain.SizeA4},
			SupportsVariant: true,
		},
		defaultCTA: "Scan the code and tell us how we did.",
		tpl:        mustParse("minimal-professional", minimalProfessionalHTML),
		css: func(d design.Dimensions, v posterdomain.Variant) string {
			background, color, accent, card := "#ffffff", "#111827", "#2563eb", "#f8fafc"
			if v == posterdomain.VariantDark {
				background, color, accent, card = "#0f172a", "#f1f5f9", "#60a5fa", "#1e293b"
			}
			return strings.Join([]string{
				design.BaseBodyStyles(d, background, color, `"Inter", "Helvetica Neue", Arial, sans-serif`),
				design.QRCardStyles(card, "1px solid rgba(148, 163, 184, 0.35)", 24, 28),
				design.HierarchyStyles(color, accent),
				`.page { height: 100%; display: flex; flex-direction: column; align-items: center; justify-content: center; gap: 44px; text-align: center; padding: 0.9in; }
.logo { max-height: 0.9in; max-width: 3in; object-fit: contain; }
.rule { width: 1.2in; height: 3px; background: ` + accent + `; border-radius: 2px; }`,
			}, "\n")
		},
	}
}

const minimalProfessionalHTML = `<!doctype html>
<html lang="en">
<head>
<meta charset="utf-8">
<style>{{.CSS}}</style>
</head>
<body>
  <div class="page">
    {{if .LogoURL}}<img class="logo" src="{{.LogoURL}}" alt="">{{end}}
    <div class="headline">Enjoyed your visit?</div>
    <div class="rule"></div>
    <div class="business-name">{{.Name}}</div>
    <div class="qr-card"><img src="{{.QR}}" alt="Scan to leave a review"></div>
    <div class="cta-line">{{.CTA}}</div>
    <div class="contact">{{if .Website}}<span>{{.Website}}</span>{{end}}{{if .Phone}}<span>{{.Phone}}</span>{{end}}</div>
  </div>
</body>
</html>
`
