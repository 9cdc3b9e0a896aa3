package template

import (
	"strings"

	"github.com/smallbiznis/reviewqr/internal/poster/design"
	posterdomain "github.com/smallbiznis/reviewqr/internal/poster/domain"
)

func newModernGradient() definition {
	return definition{
		meta: posterdomain.TemplateMetadata{
			ID:          "modern-gradient",
			Name:        "Modern Gradient",
			Description: "Full-bleed indigo-to-teal gradient with a white review card.",
			Sizes:       []posterdomain.PaperSize{posterdomain.SizeLetter, posterdomain.SizeA4},
		},
		defaultCTA: "Scan. Rate. Done in 30 seconds.",
		tpl:        mustParse("modern-gradient", modernGradientHTML),
		css: func(d design.Dimensions, _ posterdomain.Variant) string {
			return strings.Join([]string{
				design.BaseBodyStyles(d, "linear-gradient(160deg, #4f46e5 0%, #0891b2 100%)", "#ffffff", `"Inter", "Helvetica Neue", sans-serif`),
				design.QRCardStyles("#ffffff", "none", 24, 28),
				design.HierarchyStyles("#ffffff", "rgba(255, 255, 255, 0.85)"),
				`.chip { display: inline-block; background: rgba(255, 255, 255, 0.16); border-radius: 999px; padding: 10px 28px; font-size: 18px; letter-spacing: 2px; text-transform: uppercase; }
.page { height: 100%; display: flex; flex-direction: column; align-items: center; justify-content: center; gap: 40px; text-align: center; padding: 1in; }`,
			}, "\n")
		},
	}
}

const modernGradientHTML = `<!doctype html>
<html lang="en">
<head>
<meta charset="utf-8">
<style>{{.CSS}}</style>
</head>
<body>
  <div class="page">
    <div class="chip">Rate your visit</div>
    <div class="headline">How did we do today?</div>
    <div class="business-name">{{.Name}}</div>
    <div class="qr-card"><img src="{{.QR}}" alt="Scan to leave a review"></div>
    <div class="cta-line">{{.CTA}}</div>
    <div class="contact">{{if .Website}}<span>{{.Website}}</span>{{end}}{{if .Phone}}<span>{{.Phone}}</span>{{end}}</div>
  </div>
</body>
</html>
`
