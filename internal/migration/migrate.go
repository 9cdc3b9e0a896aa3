package migration

import (
	authdomain "github.com/smallbiznis/reviewqr/internal/auth/domain"
	businessdomain "github.com/smallbiznis/reviewqr/internal/business/domain"
	"gorm.io/gorm"
)

// RunMigrations brings the schema up to date at startup.
func RunMigrations(db *gorm.DB) error {
	return db.AutoMigrate(
		&authdomain.User{},
		&authdomain.Session{},
		&businessdomain.Business{},
	)
}
