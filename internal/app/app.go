package app

import (
	"github.com/rs/zerolog"

	"github.com/nurpe/obras-portal/internal/config"
	"github.com/nurpe/obras-portal/internal/db"
	"github.com/nurpe/obras-portal/internal/excel"
	"github.com/nurpe/obras-portal/internal/pdf"
	"github.com/nurpe/obras-portal/internal/repository"
	"github.com/nurpe/obras-portal/internal/service"
)

// App holds the services shared by the HTTP server and the report CLI.
type App struct {
	Portal  *service.PortalService
	Admin   *service.AdminService
	Reports *service.ReportService
}

func New(cfg *config.Config, log zerolog.Logger) (*App, error) {
	store, err := db.New(cfg, log)
	if err != nil {
		return nil, err
	}

	projects := repository.NewProjectRepository(store)
	users := repository.NewUserRepository(store)
	profiles := repository.NewProfileRepository(store)
	settings := repository.NewSettingsRepository(store)

	portal := service.NewPortalService(projects, users, cfg)
	return &App{
		Portal:  portal,
		Admin:   service.NewAdminService(projects, users, profiles, settings, cfg),
		Reports: service.NewReportService(portal, excel.NewGenerator(), pdf.NewGenerator()),
	}, nil
}
