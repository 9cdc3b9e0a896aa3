// Package template holds the fixed set of poster templates. Each template is
// a pure function from (PosterData, RenderOptions) to an HTML document;
// html/template execution escapes every business-supplied string on the way
// through, so a business name like "<script>" can never break out of markup.
package template

import (
	"bytes"
	"html/template"
	"sort"
	"strings"

	"github.com/smallbiznis/reviewqr/internal/poster/design"
	posterdomain "github.com/smallbiznis/reviewqr/internal/poster/domain"
)

// MaxNameLength caps displayed business names so layouts survive long names.
const MaxNameLength = 40

type definition struct {
	meta       posterdomain.TemplateMetadata
	defaultCTA string
	tpl        *template.Template
	// css composes the shared design-system fragments with the template's
	// own palette and layout rules. Never sees business data.
	css func(d design.Dimensions, v posterdomain.Variant) string
}

// view is what template bodies execute against. QR and CSS are generated by
// this package, never caller-supplied, so marking them trusted is safe; every
// other field passes through contextual escaping.
type view struct {
	Name    string
	CTA     string
	Website string
	Phone   string
	LogoURL string
	QR      template.URL
	CSS     template.CSS
}

// Registry is built once at startup and read-only afterwards.
type Registry struct {
	templates map[string]definition
	order     []string
}

func NewRegistry() *Registry {
	r := &Registry{templates: make(map[string]definition)}
	for _, def := range []definition{
		newMinimalProfessional(),
		newBoldCorners(),
		newOrganicBlobs(),
		newGoogleClassic(),
		newPremiumDark(),
		newPastelScript(),
		newModernGradient(),
		newClassicFrame(),
		newPlayfulDots(),
		newElegantSerif(),
	} {
		r.templates[def.meta.ID] = def
		r.order = append(r.order, def.meta.ID)
	}
	sort.Strings(r.order)
	return r
}

// List returns metadata for every registered template, sorted by id.
func (r *Registry) List() []posterdomain.TemplateMetadata {
	out := make([]posterdomain.TemplateMetadata, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.templates[id].meta)
	}
	return out
}

// Metadata returns the metadata for one template id.
func (r *Registry) Metadata(id string) (posterdomain.TemplateMetadata, bool) {
	def, ok := r.templates[id]
	return def.meta, ok
}

// Render produces the HTML document for one poster. Callers must check
// metadata before assuming the variant changes output: templates that do not
// declare SupportsVariant render identically for light and dark.
func (r *Registry) Render(id string, data posterdomain.PosterData, opts posterdomain.RenderOptions) (string, error) {
	def, ok := r.templates[id]
	if !ok {
		return "", posterdomain.ErrTemplateNotFound
	}

	variant := opts.Variant
	if !def.meta.SupportsVariant {
		variant = posterdomain.VariantLight
	}

	cta := strings.TrimSpace(data.CTALine)
	if cta == "" {
		cta = def.defaultCTA
	}

	v := view{
		Name:    TruncateName(data.BusinessName, MaxNameLength),
		CTA:     cta,
		Website: strings.TrimSpace(data.Website),
		Phone:   strings.TrimSpace(data.Phone),
		LogoURL: strings.TrimSpace(data.LogoURL),
		QR:      template.URL(data.QRDataURL),
		CSS:     template.CSS(def.css(design.DimensionsFor(opts.Size), variant)),
	}

	var buf bytes.Buffer
	if err := def.tpl.Execute(&buf, v); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// TruncateName caps a display name at max runes, appending an ellipsis when
// truncation occurred. The result never exceeds max runes.
func TruncateName(name string, max int) string {
	name = strings.TrimSpace(name)
	if max <= 0 {
		return name
	}
	runes := []rune(name)
	if len(runes) <= max {
		return name
	}
	return strings.TrimSpace(string(runes[:max-1])) + "…"
}

func mustParse(id, body string) *template.Template {
	return template.Must(template.New(id).Parse(body))
}
