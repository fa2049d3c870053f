package daemon

import (
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/storefront-admin/storefront-admin/internal/config"
	"github.com/storefront-admin/storefront-admin/internal/db/controller/storesettings"
	"github.com/storefront-admin/storefront-admin/internal/db/models"
)

func seed(_ *config.Config, db *gorm.DB) {
	// Seed default settings if the table is empty: providers start
	// disabled and the store charges in usd until an admin changes it.

	var count int64
	db.Model(&models.Setting{}).Count(&count)
	if count == 0 {
		defaults := storesettings.Settings{
			Currency: "usd",
		}

		if err := defaults.Save(db); err != nil {
			log.Error().Err(err).Msg("failed to seed default settings")
		}
	}
}
