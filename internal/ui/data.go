package ui

import (
	"log"
	"net/http"

	"github.com/techhorizons/website/internal/models"
)

// NewData creates the default data struct to be passed to the templates.
// Instead of manually invoking this function in each route it is invoked
// in a middleware and passed downstream as value to the request context.
func (s *service) NewData(w http.ResponseWriter, r *http.Request) *models.TemplateData {

	// The navigation is served from cache past the first request
	nav, err := s.navRepo.GetNavigation(r.Context())
	if err != nil {
		// The site is usable without navigation, log and move on
		log.Printf("unable to fetch the navigation on URI '%s': %v", r.RequestURI, err)
	}

	return &models.TemplateData{
		AppName:        s.config.AppName,
		AppDescription: s.config.AppDescription,
		Title:          s.config.AppName,
		Description:    s.config.AppDescription,
		SiteURL:        s.config.SiteURL(),
		CanonicalURL:   s.config.SiteURL() + r.URL.Path,
		Navigation:     &nav,
	}
}
