package domain

import (
	"context"
	"errors"

	businessdomain "github.com/smallbiznis/reviewqr/internal/business/domain"
)

// Download is the result of a cache-first poster export.
type Download struct {
	Bytes       []byte
	ContentType string
	Filename    string
	FromCache   bool
}

type Service interface {
	ListTemplates() []TemplateMetadata
	// Preview always renders fresh so the caller sees current business data.
	Preview(ctx context.Context, biz businessdomain.Business, templateID string, opts RenderOptions) ([]byte, error)
	// Download consults the file cache before rendering. The variant only
	// takes effect for templates that declare support for it.
	Download(ctx context.Context, biz businessdomain.Business, templateID string, size PaperSize, format Format, variant Variant) (*Download, error)
}

var (
	ErrTemplateNotFound  = errors.New("template_not_found")
	ErrUnsupportedFormat = errors.New("unsupported_format")
	ErrRenderFailed      = errors.New("render_failed")
)
