package template

import (
	"strings"

	"github.com/smallbiznis/reviewqr/internal/poster/design"
	posterdomain "github.com/smallbiznis/reviewqr/internal/poster/domain"
)

func newClassicFrame() definition {
	return definition{
		meta: posterdomain.TemplateMetadata{
			ID:          "classic-frame",
			Name:        "Classic Frame",
			Description: "Double-rule border and centered copy, in the style of a framed notice.",
			Sizes:       []posterdomain.PaperSize{posterdomain.SizeLetter, posterdomain.SizeA4},
		},
		defaultCTA: "We appreciate your feedback.",
		tpl:        mustParse("classic-frame", classicFrameHTML),
		css: func(d design.Dimensions, _ posterdomain.Variant) string {
			return strings.Join([]string{
				design.BaseBodyStyles(d, "#fffdf8", "#292524", `"Libre Baskerville", "Georgia", serif`),
				design.QRCardStyles("#fffdf8", "1px solid #a8a29e", 4, 24),
				design.HierarchyStyles("#1c1917", "#78716c"),
				`.frame { position: absolute; inset: 0.45in; border: 3px double #44403c; }
.frame::after { content: ""; position: absolute; inset: 0.12in; border: 1px solid #a8a29e; }
.page { position: relative; height: 100%; display: flex; flex-direction: column; align-items: center; justify-content: center; gap: 34px; text-align: center; padding: 1.1in; }`,
			}, "\n")
		},
	}
}

const classicFrameHTML = `<!doctype html>
<html lang="en">
<head>
<meta charset="utf-8">
<style>{{.CSS}}</style>
</head>
<body>
  <div class="page">
    <div class="frame"></div>
    {{if .LogoURL}}<img class="logo" src="{{.LogoURL}}" alt="" style="max-height: 0.85in; max-width: 2.8in; object-fit: contain;">{{end}}
    <div class="business-name">{{.Name}}</div>
    <div class="headline">Kindly share your thoughts</div>
    <div class="qr-card"><img src="{{.QR}}" alt="Scan to leave a review"></div>
    <div class="cta-line">{{.CTA}}</div>
    <div class="contact">{{if .Website}}<span>{{.Website}}</span>{{end}}{{if .Phone}}<span>{{.Phone}}</span>{{end}}</div>
  </div>
</body>
</html>
`
