package template

import (
	"strings"

	"github.com/smallbiznis/reviewqr/internal/poster/design"
	posterdomain "github.com/smallbiznis/reviewqr/internal/poster/domain"
)

func newElegantSerif() definition {
	return definition{
		meta: posterdomain.TemplateMetadata{
			ID:          "elegant-serif",
			Name:        "Elegant Serif",
			Description: "Editorial serif layout with an off-center column and thin rules.",
			Sizes:       []posterdomain.PaperSize{posterdomain.SizeLetter, posterdomain.SizeA4},
		},
		defaultCTA: "A minute of your time means the world to us.",
		tpl:        mustParse("elegant-serif", elegantSerifHTML),
		css: func(d design.Dimensions, _ posterdomain.Variant) string {
			return strings.Join([]string{
				design.BaseBodyStyles(d, "#faf9f7", "#27272a", `"Playfair Display", "Times New Roman", serif`),
				design.QRCardStyles("#ffffff", "1px solid #d4d4d8", 2, 26),
				design.HierarchyStyles("#18181b", "#713f12"),
				`.column { height: 100%; display: flex; flex-direction: column; justify-content: center; gap: 34px; padding: 1.2in 1.2in 1.2in 1.6in; }
.kicker { font-size: 15px; letter-spacing: 6px; text-transform: uppercase; color: #713f12; }
.rule { width: 2in; height: 1px; background: #a1a1aa; }
.headline { font-style: italic; }`,
			}, "\n")
		},
	}
}

const elegantSerifHTML = `<!doctype html>
<html lang="en">
<head>
<meta charset="utf-8">
<style>{{.CSS}}</style>
</head>
<body>
  <div class="column">
    <div class="kicker">Guest reviews</div>
    <div class="headline">Was everything to your liking?</div>
    <div class="rule"></div>
    <div class="business-name">{{.Name}}</div>
    <div class="qr-card"><img src="{{.QR}}" alt="Scan to leave a review"></div>
    <div class="cta-line">{{.CTA}}</div>
    <div class="contact">{{if .Website}}<span>{{.Website}}</span>{{end}}{{if .Phone}}<span>{{.Phone}}</span>{{end}}</div>
  </div>
</body>
</html>
`
