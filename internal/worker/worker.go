// Package worker keeps the Redis cache hot for crawler traffic.
// On a schedule it re-fetches the heavy collections through the same
// repositories the app uses, so expired cache entries are refilled
// before a visitor or a crawler has to pay for the fetch.
package worker

import (
	"context"
	"fmt"
	"log"

	"github.com/techhorizons/website/internal/cms"
	"github.com/techhorizons/website/internal/config"
	"github.com/techhorizons/website/internal/drivers/rdb"
	"github.com/techhorizons/website/internal/repositories/articles"
	"github.com/techhorizons/website/internal/repositories/categories"
	"github.com/techhorizons/website/internal/repositories/navigation"
	"github.com/techhorizons/website/internal/repositories/pages"

	"github.com/go-co-op/gocron/v2"
)

type Service struct {
	artsRepo  *articles.Repository
	catsRepo  *categories.Repository
	pagesRepo *pages.Repository
	navRepo   *navigation.Repository
	rdb       *rdb.Service
	config    *config.Config
}

func New() *Service {

	// Create essential services
	cfg := config.New()

	rdbService, err := rdb.New(cfg)
	if err != nil {
		log.Fatalf("failed to create the Redis service; %v", err)
	}

	cmsClient := cms.New(cfg)

	return &Service{
		artsRepo:  articles.New(cmsClient, rdbService, cfg),
		catsRepo:  categories.New(cmsClient, rdbService, cfg),
		pagesRepo: pages.New(cmsClient, rdbService, cfg),
		navRepo:   navigation.New(cmsClient, rdbService, cfg),
		rdb:       rdbService,
		config:    cfg,
	}
}

// Run warms the cache on a schedule until the context is done
func (s *Service) Run(ctx context.Context) error {

	defer func() {
		if err := s.rdb.Close(); err != nil {
			log.Printf("error closing the Redis client; %v", err)
		}
	}()

	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return fmt.Errorf("failed to create gocron scheduler: %w", err)
	}

	_, err = scheduler.NewJob(
		gocron.DurationJob(s.config.WarmInterval),
		gocron.NewTask(s.warm),
		gocron.WithName("cache-warm"),
		gocron.WithStartAt(gocron.WithStartImmediately()),
	)
	if err != nil {
		return fmt.Errorf("failed to create the cache warming job: %w", err)
	}

	log.Printf("Worker running, warming the cache every %v...", s.config.WarmInterval)
	scheduler.Start()

	// Block until an interruption signal
	<-ctx.Done()

	log.Println("Worker shutting down...")
	return scheduler.Shutdown()
}

// One warming pass over the heavy collections
func (s *Service) warm() {

	ctx, cancel := context.WithTimeout(context.Background(), 2*s.config.CMSTimeout)
	defer cancel()

	if _, err := s.artsRepo.GetAll(ctx); err != nil {
		log.Printf("failed to warm the articles; %v", err)
	}

	if _, err := s.artsRepo.GetMainHeadlines(ctx); err != nil {
		log.Printf("failed to warm the main headlines; %v", err)
	}

	if _, err := s.artsRepo.GetSubHeadlines(ctx); err != nil {
		log.Printf("failed to warm the sub headlines; %v", err)
	}

	if _, err := s.artsRepo.GetLinkingArticles(ctx); err != nil {
		log.Printf("failed to warm the linking articles; %v", err)
	}

	if _, err := s.catsRepo.GetCategories(ctx); err != nil {
		log.Printf("failed to warm the categories; %v", err)
	}

	if _, err := s.pagesRepo.GetPages(ctx); err != nil {
		log.Printf("failed to warm the pages; %v", err)
	}

	if _, err := s.navRepo.GetNavigation(ctx); err != nil {
		log.Printf("failed to warm the navigation; %v", err)
	}
}
