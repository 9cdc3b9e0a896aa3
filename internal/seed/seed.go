package seed

import (
	"context"
	"errors"
	"time"

	"github.com/bwmarrin/snowflake"
	authdomain "github.com/smallbiznis/reviewqr/internal/auth/domain"
	"github.com/smallbiznis/reviewqr/internal/auth/password"
	businessdomain "github.com/smallbiznis/reviewqr/internal/business/domain"
	"gorm.io/gorm"
)

const (
	demoOwnerEmail    = "owner@reviewqr.dev"
	demoOwnerPassword = "owner"
	demoOwnerDisplay  = "Demo Owner"
	demoBusinessName  = "Coffee Spot"
	demoBusinessSlug  = "coffee-spot"
	demoReviewURL     = "https://search.google.com/local/writereview?placeid=demo"
	demoSessionID     = "dev-session"
	demoSessionTTL    = 90 * 24 * time.Hour
)

// EnsureDemoData seeds a demo owner, business, and long-lived session for
// local development. Never run in production.
func EnsureDemoData(db *gorm.DB) error {
	if db == nil {
		return errors.New("seed database handle is required")
	}

	node, err := snowflake.NewNode(1)
	if err != nil {
		return err
	}

	ctx := context.Background()
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		owner, err := ensureDemoOwner(tx, node)
		if err != nil {
			return err
		}
		if err := ensureDemoBusiness(tx, node, owner.ID); err != nil {
			return err
		}
		return ensureDemoSession(tx, owner.ID)
	})
}

func ensureDemoOwner(tx *gorm.DB, node *snowflake.Node) (*authdomain.User, error) {
	var user authdomain.User
	err := tx.First(&user, "email = ?", demoOwnerEmail).Error
	if err == nil {
		return &user, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := password.Hash(demoOwnerPassword)
	if err != nil {
		return nil, err
	}
	user = authdomain.User{
		ID:           node.Generate(),
		Email:        demoOwnerEmail,
		DisplayName:  demoOwnerDisplay,
		PasswordHash: hash,
	}
	if err := tx.Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func ensureDemoBusiness(tx *gorm.DB, node *snowflake.Node, ownerID snowflake.ID) error {
	var count int64
	if err := tx.Model(&businessdomain.Business{}).
		Where("slug = ?", demoBusinessSlug).
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	biz := businessdomain.Business{
		ID:        node.Generate(),
		OwnerID:   ownerID,
		Name:      demoBusinessName,
		Slug:      demoBusinessSlug,
		ReviewURL: demoReviewURL,
		CTALine:   "Scan to share your visit with us!",
	}
	return tx.Create(&biz).Error
}

func ensureDemoSession(tx *gorm.DB, userID snowflake.ID) error {
	var count int64
	if err := tx.Model(&authdomain.Session{}).
		Where("id = ?", demoSessionID).
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	session := authdomain.Session{
		ID:        demoSessionID,
		UserID:    userID,
		ExpiresAt: time.Now().UTC().Add(demoSessionTTL),
	}
	return tx.Create(&session).Error
}
