package server

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	posterdomain "github.com/smallbiznis/reviewqr/internal/poster/domain"
)

func (s *Server) ListPosterTemplates(c *gin.Context) {
	if _, ok := s.requireBusinessOwner(c); !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": s.posterSvc.ListTemplates()})
}

// PreviewPoster renders fresh PNG bytes, bypassing the cache so the preview
// always reflects current business data.
func (s *Server) PreviewPoster(c *gin.Context) {
	biz, ok := s.requireBusinessOwner(c)
	if !ok {
		return
	}

	templateID := strings.TrimSpace(c.Query("templateId"))
	if templateID == "" {
		AbortWithError(c, newValidationError("templateId", "missing_template_id", "templateId is required"))
		return
	}

	if userID, _ := s.userIDFromSession(c); !s.renderLimiter.Allow(userID.String()) {
		AbortWithError(c, ErrTooManyRequests)
		return
	}

	opts := posterdomain.RenderOptions{
		Size:    posterdomain.ParsePaperSize(c.Query("size")),
		Variant: posterdomain.ParseVariant(c.Query("variant")),
	}

	bytes, err := s.posterSvc.Preview(c.Request.Context(), *biz, templateID, opts)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.Data(http.StatusOK, "image/png", bytes)
}

func (s *Server) DownloadPosterPDF(c *gin.Context) {
	s.downloadPoster(c, posterdomain.FormatPDF)
}

func (s *Server) DownloadPosterPNG(c *gin.Context) {
	s.downloadPoster(c, posterdomain.FormatPNG)
}

func (s *Server) downloadPoster(c *gin.Context, format posterdomain.Format) {
	biz, ok := s.requireBusinessOwner(c)
	if !ok {
		return
	}

	templateID := strings.TrimSpace(c.Query("templateId"))
	if templateID == "" {
		AbortWithError(c, newValidationError("templateId", "missing_template_id", "templateId is required"))
		return
	}

	if userID, _ := s.userIDFromSession(c); !s.renderLimiter.Allow(userID.String()) {
		AbortWithError(c, ErrTooManyRequests)
		return
	}

	size := posterdomain.ParsePaperSize(c.Query("size"))
	variant := posterdomain.ParseVariant(c.Query("variant"))

	result, err := s.posterSvc.Download(c.Request.Context(), *biz, templateID, size, format, variant)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", result.Filename))
	c.Data(http.StatusOK, result.ContentType, result.Bytes)
}
