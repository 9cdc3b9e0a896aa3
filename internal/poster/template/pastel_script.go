package template

import (
	"strings"

	"github.com/smallbiznis/reviewqr/internal/poster/design"
	posterdomain "github.com/smallbiznis/reviewqr/internal/poster/domain"
)

func newPastelScript() definition {
	return definition{
		meta: posterdomain.TemplateMetadata{
			ID:          "pastel-script",
			Name:        "Pastel Script",
			Description: "Soft pastel palette with script accents for cafes and boutiques.",
			Sizes:       []posterdomain.PaperSize{posterdomain.SizeLetter, posterdomain.SizeA4},
		},
		defaultCTA: "Thank you for stopping by!",
		tpl:        mustParse("pastel-script", pastelScriptHTML),
		css: func(d design.Dimensions, _ posterdomain.Variant) string {
			return strings.Join([]string{
				design.BaseBodyStyles(d, "#fdf4ff", "#581c87", `"Quicksand", "Trebuchet MS", sans-serif`),
				design.QRCardStyles("#ffffff", "2px dashed #d8b4fe", 28, 26),
				design.HierarchyStyles("#6b21a8", "#a855f7"),
				`.script { font-family: "Pacifico", "Brush Script MT", cursive; font-size: 58px; color: #c026d3; }
.band { width: 100%; height: 0.45in; background: linear-gradient(90deg, #f0abfc, #c4b5fd, #a5f3fc); }
.page { height: calc(100% - 0.9in); display: flex; flex-direction: column; align-items: center; justify-content: center; gap: 34px; text-align: center; padding: 0.8in; }`,
			}, "\n")
		},
	}
}

const pastelScriptHTML = `<!doctype html>
<html lang="en">
<head>
<meta charset="utf-8">
<style>{{.CSS}}</style>
</head>
<body>
  <div class="band"></div>
  <div class="page">
    <div class="script">Tell us what you think</div>
    <div class="business-name">{{.Name}}</div>
    {{if .LogoURL}}<img class="logo" src="{{.LogoURL}}" alt="" style="max-height: 0.8in; max-width: 2.6in; object-fit: contain;">{{end}}
    <div class="qr-card"><img src="{{.QR}}" alt="Scan to leave a review"></div>
    <div class="cta-line">{{.CTA}}</div>
    <div class="contact">{{if .Website}}<span>{{.Website}}</span>{{end}}{{if .Phone}}<span>{{.Phone}}</span>{{end}}</div>
  </div>
  <div class="band"></div>
</body>
</html>
`
