package app

import (
	"path/filepath"

	"github.com/minbarhq/core/internal/modules/content/appointment"
	"github.com/minbarhq/core/internal/modules/content/conversion"
	"github.com/minbarhq/core/internal/modules/content/debate"
	"github.com/minbarhq/core/internal/modules/content/donation"
	"github.com/minbarhq/core/internal/modules/content/news"
	"github.com/minbarhq/core/internal/modules/media"
	"github.com/minbarhq/core/internal/modules/site"
)

func (a *App) registerRoutes() {
	r := a.router
	db := a.db

	api := r.Group("/api")

	media.NewHandler(a.cfg).RegisterRoutes(api)

	site.NewSettingsHandler(site.NewSettingsService(db)).RegisterRoutes(api)
	site.NewCampaignHandler(site.NewCampaignService(db)).RegisterRoutes(api)

	news.NewHandler(db).RegisterRoutes(api, "/news")
	debate.NewHandler(db).RegisterRoutes(api, "/debates")
	conversion.NewHandler(db).RegisterRoutes(api, "/conversions")
	appointment.NewHandler(db).RegisterRoutes(api, "/appointments")
	donation.NewHandler(db).RegisterRoutes(api, "/donations")

	// Locally stored uploads resolve under /uploads.
	r.Static("/uploads", filepath.Join(a.cfg.StaticDir, "uploads"))

	// Everything else falls through to the SPA entry page.
	r.NoRoute(a.serveSPA)
}
