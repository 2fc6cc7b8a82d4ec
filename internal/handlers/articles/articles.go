package articles

import (
	artsRepo "github.com/techhorizons/website/internal/repositories/articles"
	pagesRepo "github.com/techhorizons/website/internal/repositories/pages"

	"github.com/techhorizons/website/internal/config"
	"github.com/techhorizons/website/internal/ui"
)

type Service struct {
	artsRepo  *artsRepo.Repository
	pagesRepo *pagesRepo.Repository
	ui        ui.Service
	config    *config.Config
}

func New(
	artsRepo *artsRepo.Repository,
	pagesRepo *pagesRepo.Repository,
	ui ui.Service,
	config *config.Config,
) *Service {
	return &Service{
		artsRepo:  artsRepo,
		pagesRepo: pagesRepo,
		ui:        ui,
		config:    config,
	}
}
