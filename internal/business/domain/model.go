package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
	"gorm.io/datatypes"
)

// Business is a tenant-owned location that collects reviews through QR
// posters. Poster cache keys derive from UpdatedAt, so any mutation here
// invalidates previously rendered posters without explicit eviction.
type Business struct {
	ID        snowflake.ID      `gorm:"primaryKey"`
	OwnerID   snowflake.ID      `gorm:"not null;index"`
	Name      string            `gorm:"type:text;not null"`
	Slug      string            `gorm:"type:text;not null;uniqueIndex"`
	LogoURL   string            `gorm:"type:text"`
	ReviewURL string            `gorm:"type:text;not null"`
	CTALine   string            `gorm:"type:text"`
	Website   string            `gorm:"type:text"`
	Phone     string            `gorm:"type:text"`
	Extras    datatypes.JSONMap `gorm:"type:jsonb"`
	CreatedAt time.Time         `gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt time.Time         `gorm:"not null;default:CURRENT_TIMESTAMP"`
}

// TableName sets the database table name.
func (Business) TableName() string { return "businesses" }

// CacheStamp is the timestamp poster cache keys embed: UpdatedAt, falling
// back to CreatedAt for rows that were never updated.
func (b Business) CacheStamp() time.Time {
	if b.UpdatedAt.IsZero() {
		return b.CreatedAt
	}
	return b.UpdatedAt
}
