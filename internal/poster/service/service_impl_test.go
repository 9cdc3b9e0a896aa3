package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	businessdomain "github.com/smallbiznis/reviewqr/internal/business/domain"
	postercache "github.com/smallbiznis/reviewqr/internal/poster/cache"
	posterdomain "github.com/smallbiznis/reviewqr/internal/poster/domain"
	postertemplate "github.com/smallbiznis/reviewqr/internal/poster/template"
	"go.uber.org/zap"
)

type fakeRenderer struct {
	pdfCalls int
	pngCalls int
	lastHTML string
	err      error
}

func (f *fakeRenderer) RenderPDF(_ context.Context, html string, _ posterdomain.PaperSize) ([]byte, error) {
	f.pdfCalls++
	f.lastHTML = html
	if f.err != nil {
		return nil, f.err
	}
	return []byte("%PDF-fake"), nil
}

func (f *fakeRenderer) RenderPNG(_ context.Context, html string, _ posterdomain.PaperSize, _ float64) ([]byte, error) {
	f.pngCalls++
	f.lastHTML = html
	if f.err != nil {
		return nil, f.err
	}
	return []byte("\x89PNG-fake"), nil
}

func newTestService(t *testing.T, renderer *fakeRenderer) posterdomain.Service {
	t.Helper()
	return NewService(ServiceParam{
		Registry: postertemplate.NewRegistry(),
		Renderer: renderer,
		Cache:    postercache.New(t.TempDir()),
		Log:      zap.NewNop(),
	})
}

func testBusiness() businessdomain.Business {
	return businessdomain.Business{
		ID:        snowflake.ID(42),
		Name:      "Coffee Spot",
		Slug:      "coffee-spot",
		ReviewURL: "https://g.page/r/abc/review",
		CreatedAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
		UpdatedAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}
}

func TestDownloadRendersOnceThenServesFromCache(t *testing.T) {
	renderer := &fakeRenderer{}
	svc := newTestService(t, renderer)
	biz := testBusiness()

	first, err := svc.Download(context.Background(), biz, "minimal-professional", posterdomain.SizeLetter, posterdomain.FormatPDF, posterdomain.VariantLight)
	if err != nil {
		t.Fatalf("first download: %v", err)
	}
	if first.FromCache {
		t.Fatalf("first download must be a miss")
	}
	if first.ContentType != "application/pdf" {
		t.Fatalf("content type = %q", first.ContentType)
	}
	if first.Filename != "coffee-spot-minimal-professional-LETTER.pdf" {
		t.Fatalf("filename = %q", first.Filename)
	}

	second, err := svc.Download(context.Background(), biz, "minimal-professional", posterdomain.SizeLetter, posterdomain.FormatPDF, posterdomain.VariantLight)
	if err != nil {
		t.Fatalf("second download: %v", err)
	}
	if !second.FromCache {
		t.Fatalf("second download must hit the cache")
	}
	if string(second.Bytes) != string(first.Bytes) {
		t.Fatalf("cached bytes differ from rendered bytes")
	}
	if renderer.pdfCalls != 1 {
		t.Fatalf("renderer called %d times, want 1", renderer.pdfCalls)
	}
}

func TestDownloadRerendersAfterBusinessUpdate(t *testing.T) {
	renderer := &fakeRenderer{}
	svc := newTestService(t, renderer)
	biz := testBusiness()

	if _, err := svc.Download(context.Background(), biz, "bold-corners", posterdomain.SizeA4, posterdomain.FormatPNG, posterdomain.VariantLight); err != nil {
		t.Fatalf("first download: %v", err)
	}

	biz.UpdatedAt = biz.UpdatedAt.Add(time.Minute)
	got, err := svc.Download(context.Background(), biz, "bold-corners", posterdomain.SizeA4, posterdomain.FormatPNG, posterdomain.VariantLight)
	if err != nil {
		t.Fatalf("second download: %v", err)
	}
	if got.FromCache {
		t.Fatalf("update must rotate the cache key")
	}
	if renderer.pngCalls != 2 {
		t.Fatalf("renderer called %d times, want 2", renderer.pngCalls)
	}
}

func TestDownloadHonorsDarkVariant(t *testing.T) {
	renderer := &fakeRenderer{}
	svc := newTestService(t, renderer)
	biz := testBusiness()

	dark, err := svc.Download(context.Background(), biz, "minimal-professional", posterdomain.SizeLetter, posterdomain.FormatPNG, posterdomain.VariantDark)
	if err != nil {
		t.Fatalf("dark download: %v", err)
	}
	if dark.FromCache {
		t.Fatalf("first dark download must be a miss")
	}
	if !strings.Contains(renderer.lastHTML, "#0f172a") {
		t.Fatalf("dark download must render the dark palette")
	}

	light, err := svc.Download(context.Background(), biz, "minimal-professional", posterdomain.SizeLetter, posterdomain.FormatPNG, posterdomain.VariantLight)
	if err != nil {
		t.Fatalf("light download: %v", err)
	}
	if light.FromCache {
		t.Fatalf("variants must not share a cache entry")
	}
	if strings.Contains(renderer.lastHTML, "#0f172a") {
		t.Fatalf("light download must not render the dark palette")
	}
	if renderer.pngCalls != 2 {
		t.Fatalf("renderer called %d times, want 2", renderer.pngCalls)
	}

	again, err := svc.Download(context.Background(), biz, "minimal-professional", posterdomain.SizeLetter, posterdomain.FormatPNG, posterdomain.VariantDark)
	if err != nil {
		t.Fatalf("repeat dark download: %v", err)
	}
	if !again.FromCache {
		t.Fatalf("repeat dark download must hit the cache")
	}
}

func TestDownloadVariantCollapsesWithoutSupport(t *testing.T) {
	renderer := &fakeRenderer{}
	svc := newTestService(t, renderer)
	biz := testBusiness()

	if _, err := svc.Download(context.Background(), biz, "bold-corners", posterdomain.SizeLetter, posterdomain.FormatPNG, posterdomain.VariantLight); err != nil {
		t.Fatalf("light download: %v", err)
	}
	got, err := svc.Download(context.Background(), biz, "bold-corners", posterdomain.SizeLetter, posterdomain.FormatPNG, posterdomain.VariantDark)
	if err != nil {
		t.Fatalf("dark download: %v", err)
	}
	if !got.FromCache {
		t.Fatalf("variant must collapse to one cache entry when unsupported")
	}
	if renderer.pngCalls != 1 {
		t.Fatalf("renderer called %d times, want 1", renderer.pngCalls)
	}
}

func TestDownloadUnknownTemplate(t *testing.T) {
	renderer := &fakeRenderer{}
	svc := newTestService(t, renderer)

	_, err := svc.Download(context.Background(), testBusiness(), "nope", posterdomain.SizeLetter, posterdomain.FormatPDF, posterdomain.VariantLight)
	if !errors.Is(err, posterdomain.ErrTemplateNotFound) {
		t.Fatalf("expected ErrTemplateNotFound, got %v", err)
	}
	if renderer.pdfCalls != 0 || renderer.pngCalls != 0 {
		t.Fatalf("renderer must not run for unknown template")
	}
}

func TestDownloadUnsupportedFormat(t *testing.T) {
	svc := newTestService(t, &fakeRenderer{})

	_, err := svc.Download(context.Background(), testBusiness(), "minimal-professional", posterdomain.SizeLetter, posterdomain.Format("svg"), posterdomain.VariantLight)
	if !errors.Is(err, posterdomain.ErrUnsupportedFormat) {
		t.Fatalf("expected ErrUnsupportedFormat, got %v", err)
	}
}

func TestDownloadFailureCachesNothing(t *testing.T) {
	renderer := &fakeRenderer{err: errors.New("chrome crashed")}
	svc := newTestService(t, renderer)
	biz := testBusiness()

	if _, err := svc.Download(context.Background(), biz, "minimal-professional", posterdomain.SizeLetter, posterdomain.FormatPDF, posterdomain.VariantLight); err == nil {
		t.Fatalf("expected render error")
	}

	renderer.err = nil
	got, err := svc.Download(context.Background(), biz, "minimal-professional", posterdomain.SizeLetter, posterdomain.FormatPDF, posterdomain.VariantLight)
	if err != nil {
		t.Fatalf("retry: %v", err)
	}
	if got.FromCache {
		t.Fatalf("failed render must not leave a cache entry")
	}
}

func TestPreviewAlwaysRendersFresh(t *testing.T) {
	renderer := &fakeRenderer{}
	svc := newTestService(t, renderer)
	biz := testBusiness()
	opts := posterdomain.RenderOptions{Size: posterdomain.SizeLetter, Variant: posterdomain.VariantLight}

	for i := 0; i < 3; i++ {
		if _, err := svc.Preview(context.Background(), biz, "minimal-professional", opts); err != nil {
			t.Fatalf("preview %d: %v", i, err)
		}
	}
	if renderer.pngCalls != 3 {
		t.Fatalf("preview must bypass the cache, renderer called %d times", renderer.pngCalls)
	}
}

func TestListTemplates(t *testing.T) {
	svc := newTestService(t, &fakeRenderer{})
	if got := len(svc.ListTemplates()); got != 10 {
		t.Fatalf("expected 10 templates, got %d", got)
	}
}
