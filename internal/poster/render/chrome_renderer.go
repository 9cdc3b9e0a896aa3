package render

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"github.com/smallbiznis/reviewqr/internal/poster/design"
	posterdomain "github.com/smallbiznis/reviewqr/internal/poster/domain"
	"go.uber.org/zap"
)

// ChromeRenderer exports HTML through a headless Chrome instance. Each call
// launches a fresh browser and tears it down; there is no pooling. The cache
// layer keeps this path off repeated requests, so simplicity wins over
// throughput here.
type ChromeRenderer struct {
	cfg Config
	log *zap.Logger
}

func NewChromeRenderer(cfg Config, log *zap.Logger) *ChromeRenderer {
	return &ChromeRenderer{
		cfg: cfg.withDefaults(),
		log: log.Named("poster.render"),
	}
}

func (r *ChromeRenderer) RenderPDF(ctx context.Context, html string, size posterdomain.PaperSize) ([]byte, error) {
	d := design.DimensionsFor(size)

	var buf []byte
	export := chromedp.ActionFunc(func(ctx context.Context) error {
		var err error
		buf, _, err = page.PrintToPDF().
			WithPrintBackground(true).
			WithPaperWidth(d.WidthIn).
			WithPaperHeight(d.HeightIn).
			WithMarginTop(0).
			WithMarginBottom(0).
			WithMarginLeft(0).
			WithMarginRight(0).
			WithPreferCSSPageSize(true).
			Do(ctx)
		return err
	})
	if err := r.run(ctx, html, nil, export); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf, nil
}

func (r *ChromeRenderer) RenderPNG(ctx context.Context, html string, size posterdomain.PaperSize, scale float64) ([]byte, error) {
	if scale <= 0 {
		scale = DefaultScale
	}
	d := design.DimensionsFor(size)
	viewport := chromedp.EmulateViewport(
		int64(d.PixelWidth(1)),
		int64(d.PixelHeight(1)),
		chromedp.EmulateScale(scale),
	)

	// Screenshot the body element rather than the full page to keep browser
	// chrome and scrollbar artifacts out of the export.
	var buf []byte
	export := chromedp.Screenshot("body", &buf, chromedp.ByQuery)
	if err := r.run(ctx, html, viewport, export); err != nil {
		return nil, fmt.Errorf("render png: %w", err)
	}
	return buf, nil
}

// run loads the document in a fresh browser and executes export. Every
// cancel func is deferred so the browser process is reaped on all paths,
// including launch failures and content-load timeouts.
func (r *ChromeRenderer) run(ctx context.Context, html string, viewport chromedp.Action, export chromedp.Action) error {
	ctx, cancel := context.WithTimeout(ctx, r.cfg.Timeout)
	defer cancel()

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-dev-shm-usage", true),
	)
	if r.cfg.ExecPath != "" {
		opts = append(opts, chromedp.ExecPath(r.cfg.ExecPath))
	}

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	defer cancelAlloc()

	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	defer cancelBrowser()

	docPath, cleanup, err := writeDocument(html)
	if err != nil {
		return err
	}
	defer cleanup()

	actions := make([]chromedp.Action, 0, 4)
	if viewport != nil {
		actions = append(actions, viewport)
	}
	actions = append(actions,
		chromedp.Navigate("file://"+docPath),
		chromedp.WaitReady("body", chromedp.ByQuery),
		export,
	)

	if err := chromedp.Run(browserCtx, actions...); err != nil {
		r.log.Warn("headless render failed", zap.Error(err))
		return err
	}
	return nil
}

func writeDocument(html string) (string, func(), error) {
	dir, err := os.MkdirTemp("", "reviewqr-poster-")
	if err != nil {
		return "", nil, err
	}
	path := filepath.Join(dir, "index.html")
	if err := os.WriteFile(path, []byte(html), 0o644); err != nil {
		os.RemoveAll(dir)
		return "", nil, err
	}
	return path, func() { os.RemoveAll(dir) }, nil
}
