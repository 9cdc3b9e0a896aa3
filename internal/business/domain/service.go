package domain

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
)

type CreateRequest struct {
	Name      string         `json:"name"`
	ReviewURL string         `json:"review_url"`
	LogoURL   string         `json:"logo_url"`
	CTALine   string         `json:"cta_line"`
	Website   string         `json:"website"`
	Phone     string         `json:"phone"`
	Extras    map[string]any `json:"extras"`
}

type UpdateRequest struct {
	Name      *string        `json:"name"`
	ReviewURL *string        `json:"review_url"`
	LogoURL   *string        `json:"logo_url"`
	CTALine   *string        `json:"cta_line"`
	Website   *string        `json:"website"`
	Phone     *string        `json:"phone"`
	Extras    map[string]any `json:"extras"`
}

type Response struct {
	ID        string         `json:"id"`
	OwnerID   string         `json:"owner_id"`
	Name      string         `json:"name"`
	Slug      string         `json:"slug"`
	LogoURL   string         `json:"logo_url,omitempty"`
	ReviewURL string         `json:"review_url"`
	CTALine   string         `json:"cta_line,omitempty"`
	Website   string         `json:"website,omitempty"`
	Phone     string         `json:"phone,omitempty"`
	Extras    map[string]any `json:"extras,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

type Service interface {
	Create(ctx context.Context, ownerID snowflake.ID, req CreateRequest) (*Response, error)
	GetByID(ctx context.Context, id snowflake.ID) (*Business, error)
	Update(ctx context.Context, ownerID snowflake.ID, id snowflake.ID, req UpdateRequest) (*Response, error)
	ListByOwner(ctx context.Context, ownerID snowflake.ID) ([]Response, error)
}

func ParseID(raw string) (snowflake.ID, error) {
	return snowflake.ParseString(strings.TrimSpace(raw))
}

var (
	ErrInvalidID        = errors.New("invalid_id")
	ErrInvalidName      = errors.New("invalid_name")
	ErrInvalidReviewURL = errors.New("invalid_review_url")
	ErrNotFound         = errors.New("not_found")
	ErrNotOwner         = errors.New("not_owner")
)
