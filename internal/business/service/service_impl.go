package service

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	businessdomain "github.com/smallbiznis/reviewqr/internal/business/domain"
	"github.com/smallbiznis/reviewqr/internal/cache"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	maxNameLength = 120
	lookupTTL     = 30 * time.Second
)

type Service struct {
	db    *gorm.DB
	log   *zap.Logger
	genID *snowflake.Node
	byID  cache.Cache[snowflake.ID, businessdomain.Business]
}

type ServiceParam struct {
	fx.In

	DB    *gorm.DB
	Log   *zap.Logger
	GenID *snowflake.Node
}

func NewService(p ServiceParam) businessdomain.Service {
	return &Service{
		db:    p.DB,
		log:   p.Log.Named("business.service"),
		genID: p.GenID,
		byID:  cache.NewTTLCache[snowflake.ID, businessdomain.Business](),
	}
}

func (s *Service) Create(ctx context.Context, ownerID snowflake.ID, req businessdomain.CreateRequest) (*businessdomain.Response, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" || len(name) > maxNameLength {
		return nil, businessdomain.ErrInvalidName
	}
	reviewURL := strings.TrimSpace(req.ReviewURL)
	if !validHTTPURL(reviewURL) {
		return nil, businessdomain.ErrInvalidReviewURL
	}

	id := s.genID.Generate()
	biz := businessdomain.Business{
		ID:        id,
		OwnerID:   ownerID,
		Name:      name,
		Slug:      s.uniqueSlug(ctx, name, id),
		LogoURL:   strings.TrimSpace(req.LogoURL),
		ReviewURL: reviewURL,
		CTALine:   strings.TrimSpace(req.CTALine),
		Website:   strings.TrimSpace(req.Website),
		Phone:     strings.TrimSpace(req.Phone),
		Extras:    datatypes.JSONMap(req.Extras),
	}
	if err := s.db.WithContext(ctx).Create(&biz).Error; err != nil {
		return nil, err
	}

	s.log.Info("business created",
		zap.String("business_id", biz.ID.String()),
		zap.String("slug", biz.Slug),
	)
	resp := toResponse(biz)
	return &resp, nil
}

func (s *Service) GetByID(ctx context.Context, id snowflake.ID) (*businessdomain.Business, error) {
	if cached, ok := s.byID.Get(id); ok {
		return &cached, nil
	}

	var biz businessdomain.Business
	err := s.db.WithContext(ctx).First(&biz, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, businessdomain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	s.byID.Set(id, biz, lookupTTL)
	return &biz, nil
}

func (s *Service) Update(ctx context.Context, ownerID snowflake.ID, id snowflake.ID, req businessdomain.UpdateRequest) (*businessdomain.Response, error) {
	var biz businessdomain.Business
	err := s.db.WithContext(ctx).First(&biz, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, businessdomain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if biz.OwnerID != ownerID {
		return nil, businessdomain.ErrNotOwner
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" || len(name) > maxNameLength {
			return nil, businessdomain.ErrInvalidName
		}
		biz.Name = name
	}
	if req.ReviewURL != nil {
		reviewURL := strings.TrimSpace(*req.ReviewURL)
		if !validHTTPURL(reviewURL) {
			return nil, businessdomain.ErrInvalidReviewURL
		}
		biz.ReviewURL = reviewURL
	}
	if req.LogoURL != nil {
		biz.LogoURL = strings.TrimSpace(*req.LogoURL)
	}
	if req.CTALine != nil {
		biz.CTALine = strings.TrimSpace(*req.CTALine)
	}
	if req.Website != nil {
		biz.Website = strings.TrimSpace(*req.Website)
	}
	if req.Phone != nil {
		biz.Phone = strings.TrimSpace(*req.Phone)
	}
	if req.Extras != nil {
		biz.Extras = datatypes.JSONMap(req.Extras)
	}

	// Save bumps UpdatedAt, which rotates every poster cache key for this
	// business. Stale files are left for the sweep worker.
	if err := s.db.WithContext(ctx).Save(&biz).Error; err != nil {
		return nil, err
	}
	s.byID.Delete(id)

	resp := toResponse(biz)
	return &resp, nil
}

func (s *Service) ListByOwner(ctx context.Context, ownerID snowflake.ID) ([]businessdomain.Response, error) {
	var rows []businessdomain.Business
	err := s.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]businessdomain.Response, 0, len(rows))
	for _, row := range rows {
		out = append(out, toResponse(row))
	}
	return out, nil
}

// uniqueSlug slugifies the display name and disambiguates collisions with a
// short ID suffix so the slug can appear in download filenames.
func (s *Service) uniqueSlug(ctx context.Context, name string, id snowflake.ID) string {
	slug := Slugify(name)
	if slug == "" {
		slug = "business"
	}

	var count int64
	if err := s.db.WithContext(ctx).
		Model(&businessdomain.Business{}).
		Where("slug = ?", slug).
		Count(&count).Error; err == nil && count == 0 {
		return slug
	}
	return fmt.Sprintf("%s-%s", slug, strings.ToLower(id.Base36()))
}

// Slugify lowercases and collapses non-alphanumeric runs to single hyphens.
func Slugify(value string) string {
	var b strings.Builder
	lastHyphen := true
	for _, r := range strings.ToLower(strings.TrimSpace(value)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}
	return strings.Trim(b.String(), "-")
}

func validHTTPURL(raw string) bool {
	if raw == "" {
		return false
	}
	parsed, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (parsed.Scheme == "http" || parsed.Scheme == "https") && parsed.Host != ""
}

func toResponse(biz businessdomain.Business) businessdomain.Response {
	return businessdomain.Response{
		ID:        biz.ID.String(),
		OwnerID:   biz.OwnerID.String(),
		Name:      biz.Name,
		Slug:      biz.Slug,
		LogoURL:   biz.LogoURL,
		ReviewURL: biz.ReviewURL,
		CTALine:   biz.CTALine,
		Website:   biz.Website,
		Phone:     biz.Phone,
		Extras:    map[string]any(biz.Extras),
		CreatedAt: biz.CreatedAt,
		UpdatedAt: biz.UpdatedAt,
	}
}
