package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	businessdomain "github.com/smallbiznis/reviewqr/internal/business/domain"
	obscontext "github.com/smallbiznis/reviewqr/internal/observability/context"
)

func (s *Server) CreateBusiness(c *gin.Context) {
	userID, ok := s.userIDFromSession(c)
	if !ok {
		AbortWithError(c, ErrUnauthorized)
		return
	}

	var req businessdomain.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.businessSvc.Create(c.Request.Context(), userID, req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) ListBusinesses(c *gin.Context) {
	userID, ok := s.userIDFromSession(c)
	if !ok {
		AbortWithError(c, ErrUnauthorized)
		return
	}

	items, err := s.businessSvc.ListByOwner(c.Request.Context(), userID)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": items})
}

func (s *Server) GetBusiness(c *gin.Context) {
	biz, ok := s.requireBusinessOwner(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": gin.H{
		"id":         biz.ID.String(),
		"name":       biz.Name,
		"slug":       biz.Slug,
		"logo_url":   biz.LogoURL,
		"review_url": biz.ReviewURL,
		"cta_line":   biz.CTALine,
		"website":    biz.Website,
		"phone":      biz.Phone,
		"created_at": biz.CreatedAt,
		"updated_at": biz.UpdatedAt,
	}})
}

func (s *Server) UpdateBusiness(c *gin.Context) {
	userID, ok := s.userIDFromSession(c)
	if !ok {
		AbortWithError(c, ErrUnauthorized)
		return
	}

	id, err := businessdomain.ParseID(c.Param("businessId"))
	if err != nil {
		AbortWithError(c, ErrNotFound)
		return
	}

	var req businessdomain.UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.businessSvc.Update(c.Request.Context(), userID, id, req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

// requireBusinessOwner loads the business from the path and enforces that
// the session user owns it: unknown id is 404, someone else's business is a
// detail-free 403. Handlers must not touch the cache or renderer before
// this passes.
func (s *Server) requireBusinessOwner(c *gin.Context) (*businessdomain.Business, bool) {
	userID, ok := s.userIDFromSession(c)
	if !ok {
		AbortWithError(c, ErrUnauthorized)
		return nil, false
	}

	raw := strings.TrimSpace(c.Param("businessId"))
	id, err := businessdomain.ParseID(raw)
	if err != nil {
		AbortWithError(c, ErrNotFound)
		return nil, false
	}

	biz, err := s.businessSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		AbortWithError(c, err)
		return nil, false
	}
	if biz.OwnerID != userID {
		AbortWithError(c, ErrForbidden)
		return nil, false
	}

	c.Request = c.Request.WithContext(
		obscontext.WithBusinessID(c.Request.Context(), biz.ID.String()))
	return biz, true
}
