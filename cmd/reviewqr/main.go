package main

import (
	"github.com/bwmarrin/snowflake"
	"github.com/smallbiznis/reviewqr/internal/business"
	"github.com/smallbiznis/reviewqr/internal/clock"
	"github.com/smallbiznis/reviewqr/internal/config"
	"github.com/smallbiznis/reviewqr/internal/migration"
	"github.com/smallbiznis/reviewqr/internal/observability"
	"github.com/smallbiznis/reviewqr/internal/poster"
	"github.com/smallbiznis/reviewqr/internal/poster/sweep"
	"github.com/smallbiznis/reviewqr/internal/seed"
	"github.com/smallbiznis/reviewqr/internal/server"
	"github.com/smallbiznis/reviewqr/pkg/db"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

func main() {
	app := fx.New(
		config.Module,
		observability.Module,
		fx.Provide(RegisterSnowflake),
		db.Module,
		clock.Module,
		fx.Invoke(func(conn *gorm.DB, cfg config.Config) error {
			if err := migration.RunMigrations(conn); err != nil {
				return err
			}
			if !cfg.IsProduction() {
				return seed.EnsureDemoData(conn)
			}
			return nil
		}),

		business.Module,
		poster.Module,
		sweep.Module,
		server.Module,
	)
	app.Run()
}

func RegisterSnowflake() *snowflake.Node {
	node, err := snowflake.NewNode(1)
	if err != nil {
		panic(err)
	}
	return node
}
