package sitemaps

import (
	artsRepo "github.com/techhorizons/website/internal/repositories/articles"
	catsRepo "github.com/techhorizons/website/internal/repositories/categories"

	"github.com/techhorizons/website/internal/config"
)

type Service struct {
	artsRepo *artsRepo.Repository
	catsRepo *catsRepo.Repository
	config   *config.Config
}

func New(
	artsRepo *artsRepo.Repository,
	catsRepo *catsRepo.Repository,
	config *config.Config,
) *Service {
	return &Service{
		artsRepo: artsRepo,
		catsRepo: catsRepo,
		config:   config,
	}
}
