package template

import (
	"strings"

	"github.com/smallbiznis/reviewqr/internal/poster/design"
	posterdomain "github.com/smallbiznis/reviewqr/internal/poster/domain"
)

func newPlayfulDots() definition {
	return definition{
		meta: posterdomain.TemplateMetadata{
			ID:          "playful-dots",
			Name:        "Playful Dots",
			Description: "Confetti dot background with rounded, friendly typography.",
			Sizes:       []posterdomain.PaperSize{posterdomain.SizeLetter, posterdomain.SizeA4},
		},
		defaultCTA: "It only takes a moment!",
		tpl:        mustParse("playful-dots", playfulDotsHTML),
		css: func(d design.Dimensions, _ posterdomain.Variant) string {
			return strings.Join([]string{
				design.BaseBodyStyles(d, "#fefce8", "#1e3a5f", `"Baloo 2", "Comic Sans MS", sans-serif`),
				design.QRCardStyles("#ffffff", "4px solid #38bdf8", 30, 24),
				design.HierarchyStyles("#0c4a6e", "#f59e0b"),
				`body { background-image: radial-gradient(#fca5a5 9px, transparent 10px), radial-gradient(#93c5fd 7px, transparent 8px), radial-gradient(#fcd34d 11px, transparent 12px); background-position: 0.3in 0.4in, 1.4in 1.1in, 0.8in 2in; background-size: 2.2in 2.4in, 1.8in 2in, 2.6in 2.8in; }
.page { height: 100%; display: flex; flex-direction: column; align-items: center; justify-content: center; gap: 36px; text-align: center; padding: 1in; }
.bubble { background: #ffffff; border-radius: 24px; padding: 0.4in 0.6in; box-shadow: 0 10px 0 #fde68a; }`,
			}, "\n")
		},
	}
}

const playfulDotsHTML = `<!doctype html>
<html lang="en">
<head>
<meta charset="utf-8">
<style>{{.CSS}}</style>
</head>
<body>
  <div class="page">
    <div class="bubble">
      <div class="headline">Had fun? Tell us!</div>
      <div class="business-name">{{.Name}}</div>
    </div>
    <div class="qr-card"><img src="{{.QR}}" alt="Scan to leave a review"></div>
    <div class="cta-line">{{.CTA}}</div>
    <div class="contact">{{if .Website}}<span>{{.Website}}</span>{{end}}{{if .Phone}}<span>{{.Phone}}</span>{{end}}</div>
  </div>
</body>
</html>
`
