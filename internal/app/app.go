package app

import (
	"fmt"
	"log"
	"net/http"
	"time"

	artsHandlers "github.com/techhorizons/website/internal/handlers/articles"
	catsHandlers "github.com/techhorizons/website/internal/handlers/categories"
	feedsHandlers "github.com/techhorizons/website/internal/handlers/feeds"
	miscHandlers "github.com/techhorizons/website/internal/handlers/misc"
	sitemapsHandlers "github.com/techhorizons/website/internal/handlers/sitemaps"
	artsRepo "github.com/techhorizons/website/internal/repositories/articles"
	catsRepo "github.com/techhorizons/website/internal/repositories/categories"
	navRepo "github.com/techhorizons/website/internal/repositories/navigation"
	pagesRepo "github.com/techhorizons/website/internal/repositories/pages"

	"github.com/techhorizons/website/internal/cms"
	"github.com/techhorizons/website/internal/config"
	"github.com/techhorizons/website/internal/drivers/rdb"
	"github.com/techhorizons/website/internal/middlewares"
	"github.com/techhorizons/website/internal/ui"
)

type App struct {
	config   *config.Config
	rdb      *rdb.Service
	mw       *middlewares.Service
	articles *artsHandlers.Service
	cats     *catsHandlers.Service
	sitemaps *sitemapsHandlers.Service
	feeds    *feedsHandlers.Service
	misc     *miscHandlers.Service
	server   *http.Server
}

// New wires the whole application together
func New() *App {

	// Create essential services
	cfg := config.New()

	rdbService, err := rdb.New(cfg)
	if err != nil {
		log.Fatalf("failed to create the Redis service; %v", err)
	}

	cmsClient := cms.New(cfg)

	// Create the content repositories
	articles := artsRepo.New(cmsClient, rdbService, cfg)
	categories := catsRepo.New(cmsClient, rdbService, cfg)
	pages := pagesRepo.New(cmsClient, rdbService, cfg)
	navigation := navRepo.New(cmsClient, rdbService, cfg)

	// Create the UI service (templates, static files)
	uiService := ui.New(navigation, cfg)

	// Create the HTTP server
	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       time.Minute,
	}

	return &App{
		config:   cfg,
		rdb:      rdbService,
		mw:       middlewares.New(uiService, cfg),
		articles: artsHandlers.New(articles, pages, uiService, cfg),
		cats:     catsHandlers.New(articles, categories, uiService, cfg),
		sitemaps: sitemapsHandlers.New(articles, categories, cfg),
		feeds:    feedsHandlers.New(articles, cfg),
		misc:     miscHandlers.New(cfg, rdbService, uiService),
		server:   server,
	}
}

// Close the connections the app holds
func (a *App) cleanup() error {
	return a.rdb.Close()
}
