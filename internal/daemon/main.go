// Package daemon boots the storefront: database, migrations, seed data and
// the web service.
package daemon

import (
	"fmt"

	"github.com/glebarez/sqlite"
	"github.com/rs/zerolog/log"
	gormmysql "gorm.io/driver/mysql"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/storefront-admin/storefront-admin/internal/config"
	"github.com/storefront-admin/storefront-admin/internal/db/dsn"
	"github.com/storefront-admin/storefront-admin/internal/db/models"
	"github.com/storefront-admin/storefront-admin/internal/web"
)

// maxOpenConns caps the pool for serverless-style databases that throttle
// concurrent connections.
const maxOpenConns = 3

// Daemon represents the main application daemon.
type Daemon struct {
	cfg        *config.Config
	webService *web.Service
}

// Start starts the Daemon's web service and blocks until shutdown.
func (d *Daemon) Start() error {
	go d.webService.WaitShutdown()

	return d.webService.Start(fmt.Sprintf(":%d", d.cfg.Webserver.Port))
}

// New creates a new Daemon instance with the provided configuration.
func New(cfg *config.Config) *Daemon {
	if cfg == nil {
		log.Fatal().Msg("config is nil")
		return nil
	}

	db, err := openDatabase(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect database")
		return nil
	}

	if err = db.AutoMigrate(
		&models.Setting{},
		&models.Product{},
		&models.Order{},
	); err != nil {
		log.Fatal().Err(err).Msg("failed to migrate database")
		return nil
	}

	seed(cfg, db)

	return &Daemon{
		cfg:        cfg,
		webService: web.New(cfg, db),
	}
}

// openDatabase opens the configured engine and caps the connection pool.
func openDatabase(cfg *config.Config) (*gorm.DB, error) {
	var dialector gorm.Dialector

	switch cfg.DB.GormEngine {
	case "postgres":
		dialector = gormpostgres.Open(dsn.Postgres(cfg))
	case "mysql":
		dialector = gormmysql.Open(dsn.Create(cfg))
	default:
		name := cfg.DB.Name
		if name == "" {
			name = "storefront.db"
		}

		dialector = sqlite.Open(name)
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	sqlDB.SetMaxOpenConns(maxOpenConns)

	return db, nil
}
