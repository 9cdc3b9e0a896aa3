package render

import (
	"context"
	"time"

	posterdomain "github.com/smallbiznis/reviewqr/internal/poster/domain"
)

// DefaultScale is the DPI-equivalent factor for raster exports (2x ~ 192dpi).
const DefaultScale = 2.0

// DefaultTimeout bounds the content-load wait so a hanging external image
// fetch fails the render instead of hanging it.
const DefaultTimeout = 15 * time.Second

// Renderer converts a generated HTML document into export bytes at the
// requested physical paper size. Implementations must release every browser
// resource they acquire regardless of success or failure.
type Renderer interface {
	RenderPDF(ctx context.Context, html string, size posterdomain.PaperSize) ([]byte, error)
	RenderPNG(ctx context.Context, html string, size posterdomain.PaperSize, scale float64) ([]byte, error)
}

// Config controls the headless browser renderer.
type Config struct {
	// ExecPath overrides the Chrome binary path; empty resolves from PATH.
	ExecPath string
	// Timeout bounds a single render end to end.
	Timeout time.Duration
}

func (c Config) withDefaults() Config {
	if c.Timeout <= 0 {
		c.Timeout = DefaultTimeout
	}
	return c
}
