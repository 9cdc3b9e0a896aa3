package template

import (
	"strings"

	"github.com/smallbiznis/reviewqr/internal/poster/design"
	posterdomain "github.com/smallbiznis/reviewqr/internal/poster/domain"
)

func newGoogleClassic() definition {
	return definition{
		meta: posterdomain.TemplateMetadata{
			ID:          "google-classic",
			Name:        "Google Classic",
			Description: "Familiar review prompt with the multicolor wordmark and star row.",
			Sizes:       []posterdomain.PaperSize{posterdomain.SizeLetter, posterdomain.SizeA4},
		},
		defaultCTA: "Review us on Google",
		tpl:        mustParse("google-classic", googleClassicHTML),
		css: func(d design.Dimensions, _ posterdomain.Variant) string {
			return strings.Join([]string{
				design.BaseBodyStyles(d, "#ffffff", "#202124", `"Roboto", "Arial", sans-serif`),
				design.QRCardStyles("#ffffff", "1px solid #dadce0", 16, 26),
				design.HierarchyStyles("#202124", "#5f6368"),
				`.wordmark { font-size: 64px; font-weight: 700; letter-spacing: -2px; }
.wordmark .b { color: #4285f4; } .wordmark .r { color: #ea4335; } .wordmark .y { color: #fbbc05; } .wordmark .g { color: #34a853; }
.stars { font-size: 44px; color: #fbbc05; letter-spacing: 8px; }
.page { height: 100%; display: flex; flex-direction: column; align-items: center; justify-content: center; gap: 36px; text-align: center; padding: 1in; }`,
			}, "\n")
		},
	}
}

const googleClassicHTML = `<!doctype html>
<html lang="en">
<head>
<meta charset="utf-8">
<style>{{.CSS}}</style>
</head>
<body>
  <div class="page">
    <div class="wordmark"><span class="b">G</span><span class="r">o</span><span class="y">o</span><span class="b">g</span><span class="g">l</span><span class="r">e</span></div>
    <div class="stars">&#9733;&#9733;&#9733;&#9733;&#9733;</div>
    <div class="headline">{{.CTA}}</div>
    <div class="business-name">{{.Name}}</div>
    <div class="qr-card"><img src="{{.QR}}" alt="Scan to leave a review"></div>
    <div class="contact">{{if .Website}}<span>{{.Website}}</span>{{end}}{{if .Phone}}<span>{{.Phone}}</span>{{end}}</div>
  </div>
</body>
</html>
`
