// Package migrate imports a legacy JSON export of articles
// into the content store. The command is idempotent, articles
// whose slug already exists in the store are skipped.
package migrate

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/techhorizons/website/internal/cms"
	"github.com/techhorizons/website/internal/config"
	"github.com/techhorizons/website/internal/utils"

	"github.com/gosimple/slug"
)

// legacyCategoryMapping maps category names found in the old
// WordPress export to the category slugs in the content store.
// Names absent from the map are slugified as-is.
var legacyCategoryMapping = map[string]string{
	"IA":               "intelligence-artificielle",
	"AI":               "intelligence-artificielle",
	"Jeux Vidéo":       "jeux-video",
	"Sécurité":         "cybersecurite",
	"Objets Connectés": "objets-connectes",
	"Réseaux Sociaux":  "reseaux-sociaux",
	"Développement":    "developpement",
	"Actualités":       "actualites",
}

// legacyArticle is one record of the legacy JSON export
type legacyArticle struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Slug        string   `json:"slug"`
	Category    string   `json:"category"`
	Tags        []string `json:"tags"`
	Published   string   `json:"published"`
	Body        string   `json:"body"`
}

type Service struct {
	cms    *cms.Client
	config *config.Config
	retry  *utils.RetryConfig
}

// New creates the migration service
func New(cms *cms.Client, config *config.Config) *Service {
	return &Service{
		cms:    cms,
		config: config,
		retry: &utils.RetryConfig{
			MaxRetries: 3,
			Delay:      time.Second,
			MaxJitter:  500 * time.Millisecond,
		},
	}
}

// Run reads the legacy JSON export at the given path and creates
// one article document in the content store per record. Records
// whose slug already exists are skipped, a failed record is logged
// and does not stop the run.
func (s *Service) Run(ctx context.Context, path string) error {

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("could not read the export file; %w", err)
	}

	arts, err := parseExport(data)
	if err != nil {
		return err
	}
	log.Printf("Found %d articles in the export", len(arts))

	// One lookup of all the category IDs upfront
	catIDs, err := s.fetchCategoryIDs(ctx)
	if err != nil {
		return fmt.Errorf("could not fetch the categories; %w", err)
	}

	var migrated, skipped, failed int
	for i := range arts {

		art := &arts[i]
		artSlug := deriveSlug(art)
		if artSlug == "" {
			log.Printf("Skipping an article with no usable slug: %q", art.Title)
			failed++
			continue
		}

		exists, err := s.exists(ctx, artSlug)
		if err != nil {
			log.Printf("Could not check '%s' for existence; %v", artSlug, err)
			failed++
			continue
		}

		if exists {
			skipped++
			continue
		}

		doc := buildDoc(art, artSlug, catIDs)
		if _, err := utils.Retry(ctx, s.retry, func() (struct{}, error) {
			return struct{}{}, s.cms.Mutate(ctx, []map[string]any{{"create": doc}})
		}); err != nil {
			log.Printf("Could not create '%s'; %v", artSlug, err)
			failed++
			continue
		}

		migrated++
	}

	log.Printf(
		"Migration done: %d migrated, %d skipped, %d failed",
		migrated, skipped, failed,
	)

	if failed > 0 {
		return fmt.Errorf("%d articles failed to migrate", failed)
	}

	return nil
}

// parseExport decodes the legacy JSON export, an array of records
func parseExport(data []byte) ([]legacyArticle, error) {
	var arts []legacyArticle
	if err := json.Unmarshal(data, &arts); err != nil {
		return nil, fmt.Errorf("could not decode the export file; %w", err)
	}
	return arts, nil
}

// deriveSlug takes the record's own slug when present,
// slugifies the title otherwise
func deriveSlug(art *legacyArticle) string {
	if art.Slug != "" {
		return slug.Make(art.Slug)
	}
	return slug.Make(art.Title)
}

// resolveCategorySlug maps a legacy category name to a content
// store category slug
func resolveCategorySlug(name string) string {
	if mapped, ok := legacyCategoryMapping[name]; ok {
		return mapped
	}
	return slug.Make(name)
}

// fetchCategoryIDs returns a category slug to document ID index
func (s *Service) fetchCategoryIDs(ctx context.Context) (map[string]string, error) {

	var cats []struct {
		ID   string `json:"_id"`
		Slug string `json:"slug"`
	}

	query := `*[_type == "category"]{_id, "slug": slug.current}`
	if err := s.cms.Query(ctx, query, nil, &cats); err != nil {
		return nil, err
	}

	index := make(map[string]string, len(cats))
	for _, cat := range cats {
		index[cat.Slug] = cat.ID
	}

	return index, nil
}

// exists reports whether an article with the given slug
// is already in the content store
func (s *Service) exists(ctx context.Context, artSlug string) (bool, error) {

	var id string
	query := `*[_type == "article" && slug.current == $slug][0]._id`
	params := map[string]any{"slug": artSlug}

	if err := s.cms.Query(ctx, query, params, &id); err != nil {
		return false, err
	}

	return id != "", nil
}

// buildDoc assembles the article document for the create mutation
func buildDoc(art *legacyArticle, artSlug string, catIDs map[string]string) map[string]any {

	doc := map[string]any{
		"_type":       "article",
		"title":       art.Title,
		"description": art.Description,
		"slug":        map[string]any{"current": artSlug},
		"body":        art.Body,
	}

	if art.Published != "" {
		doc["publishedTime"] = art.Published
	}

	if len(art.Tags) > 0 {
		doc["tags"] = art.Tags
	}

	if id, ok := catIDs[resolveCategorySlug(art.Category)]; ok {
		doc["categories"] = []map[string]any{{
			"_type": "reference",
			"_ref":  id,
			"_key":  artSlug[:min(8, len(artSlug))],
		}}
	}

	return doc
}
