package template

import (
	"strings"

	"github.com/smallbiznis/reviewqr/internal/poster/design"
	posterdomain "github.com/smallbiznis/reviewqr/internal/poster/domain"
)

func newOrganicBlobs() definition {
	return definition{
		meta: posterdomain.TemplateMetadata{
			ID:          "organic-blobs",
			Name:        "Organic Blobs",
			Description: "Soft blob shapes in warm tones behind a floating review card.",
			Sizes:       []posterdomain.PaperSize{posterdomain.SizeLetter, posterdomain.SizeA4},
		},
		defaultCTA: "Loved it? Let the world know.",
		tpl:        mustParse("organic-blobs", organicBlobsHTML),
		css: func(d design.Dimensions, _ posterdomain.Variant) string {
			return strings.Join([]string{
				design.BaseBodyStyles(d, "#fffbf5", "#44403c", `"Nunito", "Segoe UI", sans-serif`),
				design.QRCardStyles("#ffffff", "none", 36, 30),
				design.HierarchyStyles("#7c2d12", "#ea580c"),
				`.blob { position: absolute; filter: blur(2px); opacity: 0.85; }
.blob.one { top: -1.2in; right: -1in; width: 4in; height: 3.4in; background: #fed7aa; border-radius: 52% 48% 63% 37% / 55% 48% 52% 45%; }
.blob.two { bottom: -1.4in; left: -1.1in; width: 4.4in; height: 3.8in; background: #fbcfe8; border-radius: 39% 61% 47% 53% / 61% 38% 62% 39%; }
.blob.three { top: 3.6in; left: -0.9in; width: 2.4in; height: 2.2in; background: #bbf7d0; border-radius: 58% 42% 38% 62% / 49% 58% 42% 51%; }
.page { position: relative; height: 100%; display: flex; flex-direction: column; align-items: center; justify-content: center; gap: 38px; text-align: center; padding: 1in; }`,
			}, "\n")
		},
	}
}

const organicBlobsHTML = `<!doctype html>
<html lang="en">
<head>
<meta charset="utf-8">
<style>{{.CSS}}</style>
</head>
<body>
  <div class="page">
    <div class="blob one"></div>
    <div class="blob two"></div>
    <div class="blob three"></div>
    {{if .LogoURL}}<img class="logo" src="{{.LogoURL}}" alt="" style="max-height: 0.85in; max-width: 2.8in; object-fit: contain;">{{end}}
    <div class="headline">We'd love your feedback</div>
    <div class="business-name">{{.Name}}</div>
    <div class="qr-card"><img src="{{.QR}}" alt="Scan to leave a review"></div>
    <div class="cta-line">{{.CTA}}</div>
    <div class="contact">{{if .Website}}<span>{{.Website}}</span>{{end}}{{if .Phone}}<span>{{.Phone}}</span>{{end}}</div>
  </div>
</body>
</html>
`
