package misc

import (
	"github.com/techhorizons/website/internal/config"
	"github.com/techhorizons/website/internal/drivers/rdb"
	"github.com/techhorizons/website/internal/ui"
)

type Service struct {
	config *config.Config
	rdb    *rdb.Service
	ui     ui.Service
}

func New(config *config.Config, rdb *rdb.Service, ui ui.Service) *Service {
	return &Service{
		config: config,
		rdb:    rdb,
		ui:     ui,
	}
}
