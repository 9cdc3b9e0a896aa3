package template

import (
	"strings"

	"github.com/smallbiznis/reviewqr/internal/poster/design"
	posterdomain "github.com/smallbiznis/reviewqr/internal/poster/domain"
)

func newPremiumDark() definition {
	return definition{
		meta: posterdomain.TemplateMetadata{
			ID:          "premium-dark",
			Name:        "Premium Dark",
			Description: "Gold-on-charcoal card for upscale venues. Always dark.",
			Sizes:       []posterdomain.PaperSize{posterdomain.SizeLetter, posterdomain.SizeA4},
		},
		defaultCTA: "Share your experience with us.",
		tpl:        mustParse("premium-dark", premiumDarkHTML),
		css: func(d design.Dimensions, _ posterdomain.Variant) string {
			return strings.Join([]string{
				design.BaseBodyStyles(d, "#101014", "#e7e5e4", `"Cormorant Garamond", "Georgia", serif`),
				design.QRCardStyles("#1c1c22", "1px solid #b4924c", 12, 30),
				design.HierarchyStyles("#f5f5f4", "#d4af6a"),
				`.card { border: 1px solid rgba(180, 146, 76, 0.55); border-radius: 10px; padding: 0.75in 0.6in; display: flex; flex-direction: column; align-items: center; gap: 36px; background: #16161c; }
.flourish { color: #b4924c; font-size: 26px; letter-spacing: 14px; }
.page { height: 100%; display: flex; align-items: center; justify-content: center; text-align: center; padding: 0.8in; }`,
			}, "\n")
		},
	}
}

const premiumDarkHTML = `<!doctype html>
<html lang="en">
<head>
<meta charset="utf-8">
<style>{{.CSS}}</style>
</head>
<body>
  <div class="page">
    <div class="card">
      <div class="flourish">&#10022; &#10022; &#10022;</div>
      {{if .LogoURL}}<img class="logo" src="{{.LogoURL}}" alt="" style="max-height: 0.8in; max-width: 2.6in; object-fit: contain;">{{end}}
      <div class="business-name">{{.Name}}</div>
      <div class="headline">Your opinion matters</div>
      <div class="qr-card"><img src="{{.QR}}" alt="Scan to leave a review"></div>
      <div class="cta-line">{{.CTA}}</div>
      <div class="contact">{{if .Website}}<span>{{.Website}}</span>{{end}}{{if .Phone}}<span>{{.Phone}}</span>{{end}}</div>
    </div>
  </div>
</body>
</html>
`
