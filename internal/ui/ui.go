package ui

import (
	"net/http"
	"regexp"
	"sync"

	"github.com/techhorizons/website/internal/config"
	"github.com/techhorizons/website/internal/models"
	"github.com/techhorizons/website/internal/repositories/navigation"

	"github.com/tdewolff/minify"
	"github.com/tdewolff/minify/css"
	"github.com/tdewolff/minify/html"
	"github.com/tdewolff/minify/js"
	"github.com/tdewolff/minify/json"
	"github.com/tdewolff/minify/xml"
)

type Service interface {
	// Get the map containing the static files
	StaticFiles() models.StaticFiles
	// Get the map containing the generated text files
	TextFiles() models.TextFiles
	// Create new template data
	NewData(w http.ResponseWriter, r *http.Request) *models.TemplateData
	// Write HTML template to response
	RenderHTML(w http.ResponseWriter, r *http.Request, templateName string, data *models.TemplateData)
	// Write JSON to response
	WriteJSON(w http.ResponseWriter, r *http.Request, data any)
	// Write HTML error page to response
	HTMLError(w http.ResponseWriter, r *http.Request, status int, data *models.TemplateData)
	// Write JSON error to response
	JSONError(w http.ResponseWriter, r *http.Request, statusCode int)
}

type service struct {
	templates   models.TemplateMap
	staticFiles models.StaticFiles
	textFiles   models.TextFiles
	navRepo     *navigation.Repository
	config      *config.Config
}

var validJS = regexp.MustCompile("^(application|text)/(x-)?(java|ecma)script$")
var validXML = regexp.MustCompile("[/+]xml$")

var (
	uiInstance *service
	once       sync.Once
)

// New parses the embedded templates and static files once
// and returns the UI service.
func New(navRepo *navigation.Repository, config *config.Config) Service {
	once.Do(func() {
		m := minify.New()
		m.AddFunc("text/css", css.Minify)
		m.AddFunc("text/html", html.Minify)
		m.AddFuncRegexp(validJS, js.Minify)
		m.AddFuncRegexp(validXML, xml.Minify)
		m.AddFunc("application/manifest+json", json.Minify)

		uiInstance = &service{
			templates:   parseTemplates(m),
			staticFiles: parseStaticFiles(m, "static"),
			textFiles:   parseTextFiles(config),
			navRepo:     navRepo,
			config:      config,
		}
	})

	return uiInstance
}

// StaticFiles gets the map containing the static files
func (s *service) StaticFiles() models.StaticFiles {
	return s.staticFiles
}

// TextFiles gets the map containing the generated text files
func (s *service) TextFiles() models.TextFiles {
	return s.textFiles
}
