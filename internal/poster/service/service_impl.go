package service

import (
	"context"
	"fmt"
	"time"

	businessdomain "github.com/smallbiznis/reviewqr/internal/business/domain"
	"github.com/smallbiznis/reviewqr/internal/observability/metrics"
	postercache "github.com/smallbiznis/reviewqr/internal/poster/cache"
	posterdomain "github.com/smallbiznis/reviewqr/internal/poster/domain"
	"github.com/smallbiznis/reviewqr/internal/poster/qr"
	"github.com/smallbiznis/reviewqr/internal/poster/render"
	postertemplate "github.com/smallbiznis/reviewqr/internal/poster/template"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type Service struct {
	registry *postertemplate.Registry
	renderer render.Renderer
	cache    *postercache.FileCache
	metrics  *metrics.PosterMetrics
	log      *zap.Logger
}

type ServiceParam struct {
	fx.In

	Registry *postertemplate.Registry
	Renderer render.Renderer
	Cache    *postercache.FileCache
	Metrics  *metrics.PosterMetrics `optional:"true"`
	Log      *zap.Logger
}

func NewService(p ServiceParam) posterdomain.Service {
	return &Service{
		registry: p.Registry,
		renderer: p.Renderer,
		cache:    p.Cache,
		metrics:  p.Metrics,
		log:      p.Log.Named("poster.service"),
	}
}

func (s *Service) ListTemplates() []posterdomain.TemplateMetadata {
	return s.registry.List()
}

// Preview renders fresh on every call. Previews exist for rapid iteration
// across templates and sizes, so reflecting the exact current business data
// trumps speed here.
func (s *Service) Preview(ctx context.Context, biz businessdomain.Business, templateID string, opts posterdomain.RenderOptions) ([]byte, error) {
	if _, ok := s.registry.Metadata(templateID); !ok {
		return nil, posterdomain.ErrTemplateNotFound
	}

	html, err := s.renderHTML(biz, templateID, opts)
	if err != nil {
		return nil, err
	}

	bytes, err := s.renderBytes(ctx, html, opts.Size, posterdomain.FormatPNG)
	if err != nil {
		return nil, err
	}
	return bytes, nil
}

// Download is cache-first: the key embeds the business's last-update
// timestamp, so a stale entry can never be served for edited data. On a
// miss, the render result is persisted before returning; on failure nothing
// is cached, so a truncated file can never be served either.
func (s *Service) Download(ctx context.Context, biz businessdomain.Business, templateID string, size posterdomain.PaperSize, format posterdomain.Format, variant posterdomain.Variant) (*posterdomain.Download, error) {
	meta, ok := s.registry.Metadata(templateID)
	if !ok {
		return nil, posterdomain.ErrTemplateNotFound
	}
	if format != posterdomain.FormatPDF && format != posterdomain.FormatPNG {
		return nil, posterdomain.ErrUnsupportedFormat
	}

	// Collapse the variant before keying so templates that ignore it share
	// one cache entry across light and dark requests.
	if !meta.SupportsVariant {
		variant = posterdomain.VariantLight
	}

	filename := fmt.Sprintf("%s-%s-%s.%s", biz.Slug, templateID, size, format)
	path := s.cache.Path(biz.ID, templateID, size, format, variant, biz.CacheStamp())

	cached, err := s.cache.Read(path)
	if err != nil {
		return nil, err
	}
	if cached != nil {
		s.metrics.IncCacheEvent("hit")
		return &posterdomain.Download{
			Bytes:       cached,
			ContentType: format.ContentType(),
			Filename:    filename,
			FromCache:   true,
		}, nil
	}
	s.metrics.IncCacheEvent("miss")

	html, err := s.renderHTML(biz, templateID, posterdomain.RenderOptions{Size: size, Variant: variant})
	if err != nil {
		return nil, err
	}

	bytes, err := s.renderBytes(ctx, html, size, format)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Write(path, bytes); err != nil {
		return nil, err
	}

	s.log.Info("poster rendered",
		zap.String("business_id", biz.ID.String()),
		zap.String("template_id", templateID),
		zap.String("size", string(size)),
		zap.String("format", string(format)),
	)

	return &posterdomain.Download{
		Bytes:       bytes,
		ContentType: format.ContentType(),
		Filename:    filename,
	}, nil
}

func (s *Service) renderHTML(biz businessdomain.Business, templateID string, opts posterdomain.RenderOptions) (string, error) {
	qrDataURL, err := qr.DataURL(biz.ReviewURL, qr.DefaultSizePx)
	if err != nil {
		return "", err
	}

	data := posterdomain.PosterData{
		BusinessName: biz.Name,
		LogoURL:      biz.LogoURL,
		ReviewURL:    biz.ReviewURL,
		QRDataURL:    qrDataURL,
		CTALine:      biz.CTALine,
		Website:      biz.Website,
		Phone:        biz.Phone,
	}
	return s.registry.Render(templateID, data, opts)
}

func (s *Service) renderBytes(ctx context.Context, html string, size posterdomain.PaperSize, format posterdomain.Format) ([]byte, error) {
	start := time.Now()
	var (
		bytes []byte
		err   error
	)
	if format == posterdomain.FormatPDF {
		bytes, err = s.renderer.RenderPDF(ctx, html, size)
	} else {
		bytes, err = s.renderer.RenderPNG(ctx, html, size, render.DefaultScale)
	}

	result := "success"
	if err != nil {
		result = "failed"
	}
	s.metrics.ObserveRender(string(format), result, time.Since(start))
	return bytes, err
}
