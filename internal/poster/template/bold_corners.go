package template

import (
	"strings"

	"github.com/smallbiznis/reviewqr/internal/poster/design"
	posterdomain "github.com/smallbiznis/reviewqr/internal/poster/domain"
)

func newBoldCorners() definition {
	return definition{
		meta: posterdomain.TemplateMetadata{
			ID:          "bold-corners",
			Name:        "Bold Corners",
			Description: "Four diagonal color wedges framing a centered review card.",
			Sizes:       []posterdomain.PaperSize{posterdomain.SizeLetter, posterdomain.SizeA4},
		},
		defaultCTA: "Your review helps us grow!",
		tpl:        mustParse("bold-corners", boldCornersHTML),
		css: func(d design.Dimensions, _ posterdomain.Variant) string {
			return strings.Join([]string{
				design.BaseBodyStyles(d, "#ffffff", "#1f2937", `"Poppins", "Segoe UI", sans-serif`),
				design.QRCardStyles("#ffffff", "none", 20, 24),
				design.HierarchyStyles("#111827", "#6b7280"),
				`.corner { position: absolute; width: 3.4in; height: 3.4in; }
.corner.tl { top: -1.7in; left: -1.7in; background: #4285f4; transform: rotate(45deg); }
.corner.tr { top: -1.7in; right: -1.7in; background: #ea4335; transform: rotate(45deg); }
.corner.bl { bottom: -1.7in; left: -1.7in; background: #fbbc05; transform: rotate(45deg); }
.corner.br { bottom: -1.7in; right: -1.7in; background: #34a853; transform: rotate(45deg); }
.page { position: relative; height: 100%; display: flex; flex-direction: column; align-items: center; justify-content: center; gap: 40px; text-align: center; padding: 1in; }`,
			}, "\n")
		},
	}
}

const boldCornersHTML = `<!doctype html>
<html lang="en">
<head>
<meta charset="utf-8">
<style>{{.CSS}}</style>
</head>
<body>
  <div class="page">
    <div class="corner tl"></div>
    <div class="corner tr"></div>
    <div class="corner bl"></div>
    <div class="corner br"></div>
    {{if .LogoURL}}<img class="logo" src="{{.LogoURL}}" alt="" style="max-height: 0.8in; max-width: 2.8in; object-fit: contain;">{{end}}
    <div class="headline">How was your experience?</div>
    <div class="business-name">{{.Name}}</div>
    <div class="qr-card"><img src="{{.QR}}" alt="Scan to leave a review"></div>
    <div class="cta-line">{{.CTA}}</div>
    <div class="contact">{{if .Website}}<span>{{.Website}}</span>{{end}}{{if .Phone}}<span>{{.Phone}}</span>{{end}}</div>
  </div>
</body>
</html>
`
